package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billora/billora-api/internal/application/dto"
	"github.com/billora/billora-api/internal/domain/entity"
	"github.com/billora/billora-api/internal/domain/repository"
)

// SequenceHandler previews the next document number for the editor header.
// Numbers are assigned just in time at save, never reserved, so the value
// shown here can be taken by a concurrent save in the meantime.
type SequenceHandler struct {
	repo repository.SequenceRepository
}

// NewSequenceHandler builds the handler.
func NewSequenceHandler(repo repository.SequenceRepository) *SequenceHandler {
	return &SequenceHandler{repo: repo}
}

// Next returns the next ID for a kind ("invoice" or "quotation").
// GET /api/sequences/next?kind=
func (h *SequenceHandler) Next(c *fiber.Ctx) error {
	kind := entity.DocumentKind(c.Query("kind", string(entity.KindInvoice)))
	if kind != entity.KindInvoice && kind != entity.KindQuotation {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "kind must be invoice or quotation",
		})
	}
	id, err := h.repo.NextDocumentID(kind)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"kind": kind, "nextId": id})
}

// NextTransaction returns the next transaction ID, shown in the settlement
// dialog before the operator confirms. Same non-reserving caveat applies.
// GET /api/sequences/transaction
func (h *SequenceHandler) NextTransaction(c *fiber.Ctx) error {
	id, err := h.repo.NextTransactionID()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"nextId": id})
}
