package dto

import (
	"time"

	"github.com/billora/billora-api/internal/domain/entity"
)

// CompanyPayload creates or replaces the seller profile.
type CompanyPayload struct {
	Name      string `json:"name" validate:"required,min=2,max=160"`
	VATNumber string `json:"vatNumber" validate:"required,min=3,max=32"`
	Address   string `json:"address" validate:"required,max=240"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// CompanyResponse is the seller profile as served.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	VATNumber string    `json:"vatNumber"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToCompanyResponse maps the entity.
func ToCompanyResponse(c *entity.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		VATNumber: c.VATNumber,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		UpdatedAt: c.UpdatedAt,
	}
}
