package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billora/billora-api/internal/application/billing"
	"github.com/billora/billora-api/internal/application/dto"
)

// SettlementHandler serves invoice payment settlement.
type SettlementHandler struct {
	uc *billing.SettlementUseCase
}

// NewSettlementHandler builds the handler.
func NewSettlementHandler(uc *billing.SettlementUseCase) *SettlementHandler {
	return &SettlementHandler{uc: uc}
}

// Settle records a payment transaction and completes the invoice. A 502
// with code STATUS_UPDATE_FAILED means the payment was recorded but the
// invoice still reads pending; retry via the retry-status endpoint.
// POST /api/invoices/:id/settle
func (h *SettlementHandler) Settle(c *fiber.Ctx) error {
	var in dto.SettleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Settle(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RetryStatus re-attempts only the status flip for an invoice whose
// payment transaction already exists.
// POST /api/invoices/:id/settle/retry
func (h *SettlementHandler) RetryStatus(c *fiber.Ctx) error {
	out, err := h.uc.RetryStatusUpdate(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
