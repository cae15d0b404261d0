package properties

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property es una propiedad rural (fazenda) de un owner.
type Property struct {
	ID           string
	Name         string
	Municipality string
	State        string
	AreaHectares decimal.Decimal // NUMERIC(10,2)
	OwnerID      string

	CreatedAt time.Time
}

// Listing es la propiedad con el nombre del owner ya resuelto (join).
type Listing struct {
	Property
	OwnerName string
}
