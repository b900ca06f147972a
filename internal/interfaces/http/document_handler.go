package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billora/billora-api/internal/application/billing"
	"github.com/billora/billora-api/internal/application/dto"
	"github.com/billora/billora-api/internal/domain/entity"
)

// DocumentHandler serves one document kind. The router mounts it once for
// invoices and once for quotations; the kind pins the listing and is forced
// into every create payload so a quotation cannot arrive via the invoice
// routes.
type DocumentHandler struct {
	uc   *billing.DocumentUseCase
	kind entity.DocumentKind
}

// NewDocumentHandler builds the handler for one kind.
func NewDocumentHandler(uc *billing.DocumentUseCase, kind entity.DocumentKind) *DocumentHandler {
	return &DocumentHandler{uc: uc, kind: kind}
}

// List pages through documents of this kind, newest first.
// GET /api/{invoices|quotations}?limit=&offset=
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	docs, err := h.uc.List(c.Context(), h.kind, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(docs)
}

// GetByID returns the full document with items, totals and warnings.
// GET /api/{invoices|quotations}/:id
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	doc, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doc)
}

// Create validates, snapshots the customer, assigns the next sequential ID
// and persists the document.
// POST /api/{invoices|quotations}
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.Kind = h.kind
	doc, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// Update replaces an editable document. Kind and ID are immutable; only
// pending documents accept edits.
// PUT /api/{invoices|quotations}/:id
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.Kind = h.kind
	doc, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doc)
}

// AddItem appends a line or merges it into an existing line for the same
// catalog item. Exceeding available stock is rejected with 409.
// POST /api/{invoices|quotations}/:id/items
func (h *DocumentHandler) AddItem(c *fiber.Ctx) error {
	var in dto.LineItemPayload
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	doc, err := h.uc.AddItem(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doc)
}

// UpdateItem edits quantity or unit price of one line. Invalid numeric
// input falls back to the previous value instead of erroring.
// PUT /api/{invoices|quotations}/:id/items/:itemID
func (h *DocumentHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	doc, err := h.uc.UpdateItem(c.Context(), c.Params("id"), c.Params("itemID"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doc)
}

// RemoveItem deletes one line and recomputes totals.
// DELETE /api/{invoices|quotations}/:id/items/:itemID
func (h *DocumentHandler) RemoveItem(c *fiber.Ctx) error {
	doc, err := h.uc.RemoveItem(c.Context(), c.Params("id"), c.Params("itemID"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doc)
}

// CommitDiscount parses and clamps the discount percentage to [0, 100],
// then recomputes totals.
// PUT /api/{invoices|quotations}/:id/discount
func (h *DocumentHandler) CommitDiscount(c *fiber.Ctx) error {
	var in dto.DiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	doc, err := h.uc.CommitDiscount(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doc)
}

// UpdateStatus moves the document through its status machine. Completing an
// invoice is refused here; that transition only happens through settlement.
// PUT /api/{invoices|quotations}/:id/status
func (h *DocumentHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	doc, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doc)
}
