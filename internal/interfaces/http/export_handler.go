package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/billora/billora-api/internal/application/billing"
	"github.com/billora/billora-api/internal/domain/render"
)

// ExportHandler serves the rendered A4 page as a PDF stream.
type ExportHandler struct {
	uc *billing.ExportUseCase
}

// NewExportHandler builds the handler.
func NewExportHandler(uc *billing.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Export renders and streams the page. target selects the scale profile:
// "preview", "print" or "download" (the default). Print and preview are
// served inline, download as an attachment.
// GET /api/documents/:id/export?target=
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	target := c.Query("target", render.ProfileExport.Name)

	artifact, err := h.uc.Export(c.Context(), c.Params("id"), target)
	if err != nil {
		return respondError(c, err)
	}

	disposition := "attachment"
	if artifact.Inline {
		disposition = "inline"
	}
	c.Set(fiber.HeaderContentType, artifact.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, artifact.Filename))
	return c.Send(artifact.Bytes)
}
