package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billora/billora-api/internal/domain"
	"github.com/billora/billora-api/internal/domain/entity"
)

// StockPolicy controls how stock-exceeded conditions are treated at save
// time. Adds are always rejected on overflow; advisory mode still lets an
// already over-committed document (stale snapshot) be saved, strict mode
// fails Validate as well.
type StockPolicy int

const (
	StockAdvisory StockPolicy = iota
	StockStrict
)

// ErrPriceLocked is returned when mutating the unit price on a quotation,
// where prices are fixed from the catalog at add time.
var ErrPriceLocked = errors.New("unit price is fixed on quotations")

// StockView is the read-only inventory snapshot loaded at editing-session
// start, keyed by inventory item ID. It is not refreshed automatically.
type StockView map[string]entity.InventoryItem

// NewStockView indexes a snapshot slice by item ID.
func NewStockView(items []entity.InventoryItem) StockView {
	v := make(StockView, len(items))
	for _, it := range items {
		v[it.ID] = it
	}
	return v
}

// StockExceededError is the advisory rejection of an add that would push the
// committed quantity for an inventory item beyond the snapshot stock.
type StockExceededError struct {
	InventoryItemID string
	Remaining       int64 // snapshot quantity minus quantity already in the document
	InCart          int64
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("%d items available (%d already in cart)", e.Remaining, e.InCart)
}

// Session is one editing session over a single document: a mutable item set
// against a finite stock snapshot. Line items are held keyed by inventory
// item ID so the one-line-per-item invariant is structurally guaranteed,
// while insertion order is preserved for display. Every mutation recomputes
// the derived totals synchronously before returning.
type Session struct {
	doc      *entity.Document
	stock    StockView
	policy   StockPolicy
	discount *DiscountInput
	byRef    map[string]int // inventory item ID -> index into doc.Items
}

// NewSession wraps a document for editing against the given snapshot.
func NewSession(doc *entity.Document, stock StockView, policy StockPolicy) *Session {
	s := &Session{
		doc:      doc,
		stock:    stock,
		policy:   policy,
		discount: NewDiscountInput(doc.DiscountPercentage),
		byRef:    make(map[string]int, len(doc.Items)),
	}
	for i, it := range doc.Items {
		s.byRef[it.InventoryItemID] = i
	}
	s.recompute()
	return s
}

// Document returns the document under edit with totals up to date.
func (s *Session) Document() *entity.Document { return s.doc }

// AddItem appends a new line item or merges into an existing one referencing
// the same inventory item. A nil unitPrice takes the catalog sell price; an
// explicit zero is a free line. On overflow the session is left untouched
// and a *StockExceededError reports the remaining availability.
func (s *Session) AddItem(inventoryItemID string, quantity int64, unitPrice *decimal.Decimal) error {
	if quantity <= 0 || (unitPrice != nil && unitPrice.IsNegative()) {
		return domain.ErrInvalidInput
	}
	stockItem, ok := s.stock[inventoryItemID]
	if !ok {
		return domain.ErrNotFound
	}

	if idx, exists := s.byRef[inventoryItemID]; exists {
		line := &s.doc.Items[idx]
		merged := line.Quantity + quantity
		if merged > stockItem.Quantity {
			return &StockExceededError{
				InventoryItemID: inventoryItemID,
				Remaining:       stockItem.Quantity - line.Quantity,
				InCart:          line.Quantity,
			}
		}
		// Merged row keeps its current unit price.
		line.Quantity = merged
		line.Total = LineTotal(line.Quantity, line.UnitPrice)
		s.recompute()
		return nil
	}

	if quantity > stockItem.Quantity {
		return &StockExceededError{
			InventoryItemID: inventoryItemID,
			Remaining:       stockItem.Quantity,
			InCart:          0,
		}
	}
	price := stockItem.SellPrice
	if unitPrice != nil {
		price = *unitPrice
	}
	s.doc.Items = append(s.doc.Items, entity.LineItem{
		ID:              uuid.New().String(),
		InventoryItemID: inventoryItemID,
		ItemName:        stockItem.Name,
		Quantity:        quantity,
		UnitPrice:       price,
		Total:           LineTotal(quantity, price),
	})
	s.byRef[inventoryItemID] = len(s.doc.Items) - 1
	s.recompute()
	return nil
}

// UpdateQuantity sets a new quantity from raw input. Non-numeric or
// non-positive input silently keeps the previous quantity (edit-in-place
// tolerance for in-progress typing).
func (s *Session) UpdateQuantity(itemID, raw string) error {
	line := s.findLine(itemID)
	if line == nil {
		return domain.ErrNotFound
	}
	if q, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil && q > 0 {
		line.Quantity = q
	}
	line.Total = LineTotal(line.Quantity, line.UnitPrice)
	s.recompute()
	return nil
}

// UpdateUnitPrice sets a new unit price from raw input with the same
// fallback-on-invalid policy. Only invoices allow price edits.
func (s *Session) UpdateUnitPrice(itemID, raw string) error {
	if s.doc.Kind == entity.KindQuotation {
		return ErrPriceLocked
	}
	line := s.findLine(itemID)
	if line == nil {
		return domain.ErrNotFound
	}
	if p, err := decimal.NewFromString(strings.TrimSpace(raw)); err == nil && !p.IsNegative() {
		line.UnitPrice = p
	}
	line.Total = LineTotal(line.Quantity, line.UnitPrice)
	s.recompute()
	return nil
}

// RemoveItem drops a line item unconditionally.
func (s *Session) RemoveItem(itemID string) error {
	line := s.findLine(itemID)
	if line == nil {
		return domain.ErrNotFound
	}
	items := s.doc.Items[:0]
	for _, it := range s.doc.Items {
		if it.ID != itemID {
			items = append(items, it)
		}
	}
	s.doc.Items = items
	s.reindex()
	s.recompute()
	return nil
}

// SetDiscountRaw stores an in-progress discount value without clamping.
func (s *Session) SetDiscountRaw(raw string) {
	s.discount.SetRaw(raw)
}

// CommitDiscount clamps and applies the typed discount percentage.
func (s *Session) CommitDiscount() decimal.Decimal {
	pct := s.discount.Commit()
	s.doc.DiscountPercentage = pct
	s.recompute()
	return pct
}

// Warnings reports lines whose committed quantity exceeds the snapshot,
// which can happen when items were added before stock dropped. Advisory
// either way: the caller decides whether to surface or enforce.
func (s *Session) Warnings() []*StockExceededError {
	var out []*StockExceededError
	for _, it := range s.doc.Items {
		stockItem, ok := s.stock[it.InventoryItemID]
		if !ok {
			continue
		}
		if it.Quantity > stockItem.Quantity {
			out = append(out, &StockExceededError{
				InventoryItemID: it.InventoryItemID,
				Remaining:       stockItem.Quantity,
				InCart:          it.Quantity,
			})
		}
	}
	return out
}

// Validate is the save-time check. Under StockAdvisory an over-committed
// document still passes; under StockStrict the first overflow fails it.
func (s *Session) Validate() error {
	if s.policy == StockAdvisory {
		return nil
	}
	if warns := s.Warnings(); len(warns) > 0 {
		return warns[0]
	}
	return nil
}

func (s *Session) findLine(itemID string) *entity.LineItem {
	for i := range s.doc.Items {
		if s.doc.Items[i].ID == itemID {
			return &s.doc.Items[i]
		}
	}
	return nil
}

func (s *Session) reindex() {
	s.byRef = make(map[string]int, len(s.doc.Items))
	for i, it := range s.doc.Items {
		s.byRef[it.InventoryItemID] = i
	}
}

func (s *Session) recompute() {
	t := ComputeTotals(s.doc.Items, s.doc.DiscountPercentage, s.doc.ApplyTax)
	s.doc.SubTotal = t.SubTotal
	s.doc.DiscountAmount = t.DiscountAmount
	s.doc.TaxAmount = t.TaxAmount
	s.doc.TotalAmount = t.TotalAmount
}
