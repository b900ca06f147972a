package entity

import "time"

// Customer is a billable party attached to documents.
type Customer struct {
	ID        string
	FullName  string
	Email     string
	Phone     string
	VATNumber string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
