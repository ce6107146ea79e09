package store

import "github.com/rookgm/salesadmin/internal/models"

// collection names
const (
	Customers = "customers"
	Sellers   = "sellers"
	Platforms = "platforms"
	Statuses  = "statuses"
	Orders    = "orders"
)

// Store holds one independent collection per entity type
type Store struct {
	Customers *Collection[models.Customer]
	Sellers   *Collection[models.Seller]
	Platforms *Collection[models.Platform]
	Statuses  *Collection[models.Status]
	Orders    *Collection[models.Order]
}

// New creates new empty Store
func New() *Store {
	return &Store{
		Customers: NewCollection[models.Customer](Customers),
		Sellers:   NewCollection[models.Seller](Sellers),
		Platforms: NewCollection[models.Platform](Platforms),
		Statuses:  NewCollection[models.Status](Statuses),
		Orders:    NewCollection[models.Order](Orders),
	}
}

// Subscribe registers fn on every collection
func (s *Store) Subscribe(fn func(name string)) {
	s.Customers.Subscribe(fn)
	s.Sellers.Subscribe(fn)
	s.Platforms.Subscribe(fn)
	s.Statuses.Subscribe(fn)
	s.Orders.Subscribe(fn)
}
