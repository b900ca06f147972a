package entity

import "time"

// User roles.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// User is an operator account for the API.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
