package memory

import (
	"sync"

	"progest/internal/domain/accounts"
	"progest/internal/domain/animals"
	"progest/internal/domain/batches"
	"progest/internal/domain/owners"
	"progest/internal/domain/properties"
)

// Store guarda las cinco tablas bajo un solo lock para poder validar
// claves foráneas y únicas igual que lo haría la base.
type Store struct {
	mu sync.RWMutex

	owners     map[string]owners.Owner
	ownerOrder []string
	taxIDs     map[string]string

	properties map[string]properties.Property
	kinds      map[string]animals.Kind
	batches    map[string]batches.Batch
	batchOrder []string

	users     map[string]accounts.User // por username
	userOrder []string
}

func NewStore() *Store {
	return &Store{
		owners:     make(map[string]owners.Owner),
		taxIDs:     make(map[string]string),
		properties: make(map[string]properties.Property),
		kinds:      make(map[string]animals.Kind),
		batches:    make(map[string]batches.Batch),
		users:      make(map[string]accounts.User),
	}
}
