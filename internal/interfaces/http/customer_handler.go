package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billora/billora-api/internal/application/billing"
	"github.com/billora/billora-api/internal/application/dto"
)

// CustomerHandler serves the customer directory used by document editing.
type CustomerHandler struct {
	uc *billing.CustomerUseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *billing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List pages through the directory.
// GET /api/customers?limit=&offset=
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	customers, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customers)
}

// Search filters by name, phone or email. Terms shorter than two
// characters return an empty set without touching the store.
// GET /api/customers/search?q=
func (h *CustomerHandler) Search(c *fiber.Ctx) error {
	customers, err := h.uc.Search(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customers)
}

// Prefill guesses which field a free-typed term belongs to, for seeding a
// new-customer form from the search box.
// GET /api/customers/prefill?q=
func (h *CustomerHandler) Prefill(c *fiber.Ctx) error {
	return c.JSON(h.uc.PrefillGuess(c.Query("q")))
}

// Create registers a customer.
// POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Update replaces a customer's details. Documents keep their own snapshot,
// so already issued pages do not change.
// PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CustomerPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}
