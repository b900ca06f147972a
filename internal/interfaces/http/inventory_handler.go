package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billora/billora-api/internal/application/billing"
)

// InventoryHandler serves the read-only stock snapshot.
type InventoryHandler struct {
	uc *billing.InventoryUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *billing.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Snapshot returns the full catalog with current quantities.
// GET /api/inventory
func (h *InventoryHandler) Snapshot(c *fiber.Ctx) error {
	items, err := h.uc.Snapshot()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// GetByID returns one catalog item.
// GET /api/inventory/:id
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}
