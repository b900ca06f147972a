package repository

import "github.com/billora/billora-api/internal/domain/entity"

// CustomerRepository is the external customer store consumed by the resolver.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	// Search matches term case-insensitively as a substring of name, phone
	// or email. No server-side pagination: the full filtered set is returned.
	Search(term string) ([]*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
}
