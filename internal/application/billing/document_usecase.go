package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/billora/billora-api/internal/application/dto"
	"github.com/billora/billora-api/internal/domain"
	"github.com/billora/billora-api/internal/domain/document"
	"github.com/billora/billora-api/internal/domain/entity"
	"github.com/billora/billora-api/internal/domain/repository"
)

// DocumentUseCase drives document composition: create/update of drafts,
// line item operations against a fresh inventory snapshot, discount commit
// and non-settling status transitions.
type DocumentUseCase struct {
	docRepo       repository.DocumentRepository
	customerRepo  repository.CustomerRepository
	inventoryRepo repository.InventoryRepository
	seqRepo       repository.SequenceRepository
	txRepo        repository.TransactionRepository
	stockPolicy   document.StockPolicy
}

// NewDocumentUseCase builds the use case.
func NewDocumentUseCase(
	docRepo repository.DocumentRepository,
	customerRepo repository.CustomerRepository,
	inventoryRepo repository.InventoryRepository,
	seqRepo repository.SequenceRepository,
	txRepo repository.TransactionRepository,
	stockPolicy document.StockPolicy,
) *DocumentUseCase {
	return &DocumentUseCase{
		docRepo:       docRepo,
		customerRepo:  customerRepo,
		inventoryRepo: inventoryRepo,
		seqRepo:       seqRepo,
		txRepo:        txRepo,
		stockPolicy:   stockPolicy,
	}
}

// Create assembles a new document from the request, assigns the next
// sequential ID just-in-time, folds the item payload against the current
// snapshot and persists it. Totals always come from the server-side
// recomputation, never from the client.
func (uc *DocumentUseCase) Create(ctx context.Context, in dto.SaveDocumentRequest) (*dto.DocumentResponse, error) {
	if err := dto.Check(in); err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	id, err := uc.seqRepo.NextDocumentID(in.Kind)
	if err != nil {
		return nil, fmt.Errorf("allocate document id: %w", err)
	}

	now := time.Now()
	doc := &entity.Document{
		ID:                 id,
		Kind:               in.Kind,
		CustomerID:         customer.ID,
		CustomerSnapshot:   customer,
		DiscountPercentage: document.ClampPercent(in.DiscountPercentage),
		ApplyTax:           in.Kind == entity.KindInvoice && in.ApplyTax,
		IssueDate:          in.IssueDate,
		DueDate:            in.DueDate,
		Status:             entity.PaymentPending,
		Notes:              in.Notes,
		Vehicle: entity.VehicleInfo{
			Model:     in.Vehicle.Model,
			PlateNo:   in.Vehicle.PlateNo,
			ChassisNo: in.Vehicle.ChassisNo,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	sess, err := uc.buildSession(doc, in.Items)
	if err != nil {
		return nil, err
	}
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	if err := uc.docRepo.Create(doc); err != nil {
		return nil, err
	}
	return uc.respond(doc, sess), nil
}

// Update replaces an editable draft. Only documents still in Pending may be
// edited.
func (uc *DocumentUseCase) Update(ctx context.Context, id string, in dto.SaveDocumentRequest) (*dto.DocumentResponse, error) {
	if err := dto.Check(in); err != nil {
		return nil, err
	}
	doc, err := uc.loadEditable(id)
	if err != nil {
		return nil, err
	}
	if doc.Kind != in.Kind {
		return nil, fmt.Errorf("%w: document kind is immutable", domain.ErrInvalidInput)
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	doc.CustomerID = customer.ID
	doc.CustomerSnapshot = customer
	doc.Items = nil
	doc.DiscountPercentage = document.ClampPercent(in.DiscountPercentage)
	doc.ApplyTax = doc.Kind == entity.KindInvoice && in.ApplyTax
	doc.IssueDate = in.IssueDate
	doc.DueDate = in.DueDate
	doc.Notes = in.Notes
	doc.Vehicle = entity.VehicleInfo{
		Model:     in.Vehicle.Model,
		PlateNo:   in.Vehicle.PlateNo,
		ChassisNo: in.Vehicle.ChassisNo,
	}
	doc.UpdatedAt = time.Now()

	sess, err := uc.buildSession(doc, in.Items)
	if err != nil {
		return nil, err
	}
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	if err := uc.docRepo.Update(doc); err != nil {
		return nil, err
	}
	return uc.respond(doc, sess), nil
}

// Get returns one document with its items and current stock warnings.
func (uc *DocumentUseCase) Get(ctx context.Context, id string) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	stock, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	sess := document.NewSession(doc, stock, uc.stockPolicy)
	return uc.respond(doc, sess), nil
}

// List pages documents of one kind.
func (uc *DocumentUseCase) List(ctx context.Context, kind entity.DocumentKind, page dto.PageRequest) ([]*dto.DocumentResponse, error) {
	page.DefaultPage()
	docs, err := uc.docRepo.ListByKind(kind, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, dto.FromDocument(d))
	}
	return out, nil
}

// AddItem is the interactive add: rejected outright on stock overflow, with
// the remaining availability in the error.
func (uc *DocumentUseCase) AddItem(ctx context.Context, id string, in dto.LineItemPayload) (*dto.DocumentResponse, error) {
	if err := dto.Check(in); err != nil {
		return nil, err
	}
	doc, err := uc.loadEditable(id)
	if err != nil {
		return nil, err
	}
	stock, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	sess := document.NewSession(doc, stock, uc.stockPolicy)
	if err := sess.AddItem(in.InventoryItemID, in.Quantity, in.UnitPrice); err != nil {
		return nil, err
	}
	doc.UpdatedAt = time.Now()
	if err := uc.docRepo.Update(doc); err != nil {
		return nil, err
	}
	return uc.respond(doc, sess), nil
}

// UpdateItem applies raw quantity/price edits with fallback-on-invalid.
func (uc *DocumentUseCase) UpdateItem(ctx context.Context, id, itemID string, in dto.UpdateItemRequest) (*dto.DocumentResponse, error) {
	doc, err := uc.loadEditable(id)
	if err != nil {
		return nil, err
	}
	stock, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	sess := document.NewSession(doc, stock, uc.stockPolicy)
	if in.Quantity != "" {
		if err := sess.UpdateQuantity(itemID, in.Quantity); err != nil {
			return nil, err
		}
	}
	if in.UnitPrice != "" {
		if err := sess.UpdateUnitPrice(itemID, in.UnitPrice); err != nil {
			return nil, err
		}
	}
	doc.UpdatedAt = time.Now()
	if err := uc.docRepo.Update(doc); err != nil {
		return nil, err
	}
	return uc.respond(doc, sess), nil
}

// RemoveItem drops a row unconditionally.
func (uc *DocumentUseCase) RemoveItem(ctx context.Context, id, itemID string) (*dto.DocumentResponse, error) {
	doc, err := uc.loadEditable(id)
	if err != nil {
		return nil, err
	}
	stock, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	sess := document.NewSession(doc, stock, uc.stockPolicy)
	if err := sess.RemoveItem(itemID); err != nil {
		return nil, err
	}
	doc.UpdatedAt = time.Now()
	if err := uc.docRepo.Update(doc); err != nil {
		return nil, err
	}
	return uc.respond(doc, sess), nil
}

// CommitDiscount clamps and applies a typed discount percentage.
func (uc *DocumentUseCase) CommitDiscount(ctx context.Context, id string, in dto.DiscountRequest) (*dto.DocumentResponse, error) {
	doc, err := uc.loadEditable(id)
	if err != nil {
		return nil, err
	}
	stock, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	sess := document.NewSession(doc, stock, uc.stockPolicy)
	sess.SetDiscountRaw(in.Value)
	sess.CommitDiscount()
	doc.UpdatedAt = time.Now()
	if err := uc.docRepo.Update(doc); err != nil {
		return nil, err
	}
	return uc.respond(doc, sess), nil
}

// UpdateStatus runs non-settling transitions through the state machine.
// Entering Completed on an invoice must go through the settlement sub-flow
// and is refused here.
func (uc *DocumentUseCase) UpdateStatus(ctx context.Context, id string, in dto.StatusRequest) (*dto.DocumentResponse, error) {
	if err := dto.Check(in); err != nil {
		return nil, err
	}
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.Kind == entity.KindInvoice && in.Status == entity.PaymentCompleted {
		return nil, fmt.Errorf("%w: Completed requires the settlement flow", domain.ErrInvalidTransition)
	}
	tx, err := uc.txRepo.GetByDocumentID(id)
	if err != nil {
		return nil, err
	}
	if err := document.CanTransition(doc.Kind, doc.Status, in.Status, tx != nil); err != nil {
		return nil, err
	}
	if err := uc.docRepo.UpdateStatus(id, in.Status); err != nil {
		return nil, err
	}
	doc.Status = in.Status
	return dto.FromDocument(doc), nil
}

// loadEditable fetches a document that can still be mutated. Anything past
// Pending is frozen for composition purposes.
func (uc *DocumentUseCase) loadEditable(id string) (*entity.Document, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.Status != entity.PaymentPending {
		return nil, fmt.Errorf("%w: document is %s", domain.ErrConflict, doc.Status)
	}
	return doc, nil
}

func (uc *DocumentUseCase) snapshot() (document.StockView, error) {
	items, err := uc.inventoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("load inventory snapshot: %w", err)
	}
	view := make(document.StockView, len(items))
	for _, it := range items {
		view[it.ID] = *it
	}
	return view, nil
}

// buildSession folds the item payload into the document (duplicates by
// inventory ref merge into one row) and wraps it for editing. Unknown
// inventory refs fail; overflow does not, so an over-committed draft can
// still be saved under the advisory policy. Strict enforcement happens in
// Session.Validate.
func (uc *DocumentUseCase) buildSession(doc *entity.Document, items []dto.LineItemPayload) (*document.Session, error) {
	stock, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	merged := make(map[string]int)
	for _, in := range items {
		if in.Quantity <= 0 || (in.UnitPrice != nil && in.UnitPrice.IsNegative()) {
			return nil, fmt.Errorf("%w: item quantity must be positive and price non-negative", domain.ErrInvalidInput)
		}
		stockItem, ok := stock[in.InventoryItemID]
		if !ok {
			return nil, fmt.Errorf("%w: inventory item %s", domain.ErrNotFound, in.InventoryItemID)
		}
		if idx, exists := merged[in.InventoryItemID]; exists {
			line := &doc.Items[idx]
			line.Quantity += in.Quantity
			line.Total = document.LineTotal(line.Quantity, line.UnitPrice)
			continue
		}
		// Omitted price takes the catalog sell price; explicit zero stays free.
		price := stockItem.SellPrice
		if in.UnitPrice != nil {
			price = *in.UnitPrice
		}
		doc.Items = append(doc.Items, entity.LineItem{
			ID:              uuid.New().String(),
			InventoryItemID: in.InventoryItemID,
			ItemName:        stockItem.Name,
			Quantity:        in.Quantity,
			UnitPrice:       price,
			Total:           document.LineTotal(in.Quantity, price),
		})
		merged[in.InventoryItemID] = len(doc.Items) - 1
	}
	return document.NewSession(doc, stock, uc.stockPolicy), nil
}

func (uc *DocumentUseCase) respond(doc *entity.Document, sess *document.Session) *dto.DocumentResponse {
	resp := dto.FromDocument(doc)
	for _, w := range sess.Warnings() {
		resp.Warnings = append(resp.Warnings, w.Error())
	}
	return resp
}

// IsStockExceeded reports whether err is the advisory stock rejection.
func IsStockExceeded(err error) (*document.StockExceededError, bool) {
	var se *document.StockExceededError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
