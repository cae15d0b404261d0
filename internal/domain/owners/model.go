package owners

import "time"

// Owner es el titular de una o más propiedades rurales.
type Owner struct {
	ID    string
	Name  string
	TaxID string // CPF/CNPJ, único
	Email string
	Phone string

	CreatedAt time.Time
}
