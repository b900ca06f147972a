package dto

import "github.com/billora/billora-api/internal/domain/entity"

// CustomerPayload creates or updates a customer. All four identity fields
// are mandatory; validation runs before any store call.
type CustomerPayload struct {
	FullName  string `json:"fullName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	VATNumber string `json:"vatNumber" validate:"required"`
	Address   string `json:"address"`
}

// CustomerResponse is the API shape of a customer.
type CustomerResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	VATNumber string `json:"vatNumber"`
	Address   string `json:"address"`
}

// PrefillResponse is the create-form prefill guess derived from a search
// term. At most one field is populated.
type PrefillResponse struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ToCustomerResponse maps the entity.
func ToCustomerResponse(c *entity.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		VATNumber: c.VATNumber,
		Address:   c.Address,
	}
}
