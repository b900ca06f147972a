package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billora/billora-api/internal/application/billing"
	"github.com/billora/billora-api/internal/application/dto"
)

// CompanyHandler serves the seller profile printed on documents.
type CompanyHandler struct {
	uc *billing.CompanyUseCase
}

// NewCompanyHandler builds the handler.
func NewCompanyHandler(uc *billing.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Profile returns the seller profile. 404 until first setup.
// GET /api/company
func (h *CompanyHandler) Profile(c *fiber.Ctx) error {
	company, err := h.uc.Profile()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(company)
}

// Save creates or replaces the seller profile (admin only).
// PUT /api/company
func (h *CompanyHandler) Save(c *fiber.Ctx) error {
	var in dto.CompanyPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	company, err := h.uc.Save(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(company)
}
