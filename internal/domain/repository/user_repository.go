package repository

import "github.com/billora/billora-api/internal/domain/entity"

// UserRepository backs authentication.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
