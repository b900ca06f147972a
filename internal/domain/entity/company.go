package entity

import "time"

// Company is the seller profile printed in the document header.
type Company struct {
	ID        string
	Name      string
	VATNumber string
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
