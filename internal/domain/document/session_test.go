package document_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billora/billora-api/internal/domain"
	"github.com/billora/billora-api/internal/domain/document"
	"github.com/billora/billora-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

func testStock() document.StockView {
	return document.NewStockView([]entity.InventoryItem{
		{ID: "item-a", SKU: "A-1", Name: "Brake Pad", Quantity: 5, SellPrice: decimal.NewFromInt(100)},
		{ID: "item-b", SKU: "B-1", Name: "Oil Filter", Quantity: 3, SellPrice: decimal.NewFromInt(50)},
	})
}

func newInvoiceSession(policy document.StockPolicy) *document.Session {
	doc := &entity.Document{ID: "INV-00001", Kind: entity.KindInvoice, Status: entity.PaymentPending}
	return document.NewSession(doc, testStock(), policy)
}

func price(v int64) *decimal.Decimal {
	p := decimal.NewFromInt(v)
	return &p
}

// ──────────────────────────────────────────────────────────────────────────────
// AddItem
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_AddItem_MergesDuplicateReference(t *testing.T) {
	s := newInvoiceSession(document.StockAdvisory)

	require.NoError(t, s.AddItem("item-a", 2, nil))
	require.NoError(t, s.AddItem("item-a", 1, nil))

	doc := s.Document()
	require.Len(t, doc.Items, 1, "duplicate adds must merge into one line")
	assert.Equal(t, int64(3), doc.Items[0].Quantity)
	assert.True(t, doc.Items[0].Total.Equal(decimal.NewFromInt(300)))
}

func TestSession_AddItem_MergeKeepsExistingUnitPrice(t *testing.T) {
	s := newInvoiceSession(document.StockAdvisory)

	require.NoError(t, s.AddItem("item-a", 1, price(90)))
	// A different price on the merged add is ignored; the line keeps 90.
	require.NoError(t, s.AddItem("item-a", 1, price(500)))

	doc := s.Document()
	require.Len(t, doc.Items, 1)
	assert.True(t, doc.Items[0].UnitPrice.Equal(decimal.NewFromInt(90)))
	assert.True(t, doc.Items[0].Total.Equal(decimal.NewFromInt(180)))
}

func TestSession_AddItem_NilPriceUsesCatalogPrice(t *testing.T) {
	s := newInvoiceSession(document.StockAdvisory)

	require.NoError(t, s.AddItem("item-b", 2, nil))

	doc := s.Document()
	assert.True(t, doc.Items[0].UnitPrice.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "Oil Filter", doc.Items[0].ItemName)
}

func TestSession_AddItem_ExplicitZeroPriceIsFreeLine(t *testing.T) {
	s := newInvoiceSession(document.StockAdvisory)

	require.NoError(t, s.AddItem("item-b", 2, price(0)))

	doc := s.Document()
	assert.True(t, doc.Items[0].UnitPrice.IsZero(), "explicit zero is kept, not replaced by the catalog price")
	assert.True(t, doc.Items[0].Total.IsZero())
	assert.True(t, doc.SubTotal.IsZero())
}

func TestSession_AddItem_RejectsOverflowOnMerge(t *testing.T) {
	s := newInvoiceSession(document.StockAdvisory)
	require.NoError(t, s.AddItem("item-a", 3, nil))

	err := s.AddItem("item-a", 3, nil)

	var stockErr *document.StockExceededError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "2 items available (3 already in cart)", stockErr.Error())
	// Rejected add leaves the session untouched.
	assert.Equal(t, int64(3), s.Document().Items[0].Quantity)
}

func TestSession_AddItem_RejectsOverflowOnFirstAdd(t *testing.T) {
	s := newInvoiceSession(document.StockAdvisory)

	err := s.AddItem("item-a", 6, nil)

	var stockErr *document.StockExceededError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "5 items available (0 already in cart)", stockErr.Error())
	assert.Empty(t, s.Document().Items)
}

func TestSession_AddItem_UnknownReference(t *testing.T) {
	s := newInvoiceSession(document.StockAdvisory)

	assert.ErrorIs(t, s.AddItem("missing", 1, nil), domain.ErrNotFound)
}

func TestSession_AddItem_InvalidInput(t *testing.T) {
	s := newInvoiceSession(document.StockAdvisory)

	assert.ErrorIs(t, s.AddItem("item-a", 0, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, s.AddItem("item-a", 1, price(-1)), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edit in place
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_UpdateQuantity_FallsBackOnInvalidInput(t *testing.T) {
	s := newInvoiceSession(document.StockAdvisory)
	require.NoError(t, s.AddItem("item-a", 2, nil))
	itemID := s.Document().Items[0].ID

	require.NoError(t, s.UpdateQuantity(itemID, "not-a-number"))
	assert.Equal(t, int64(2), s.Document().Items[0].Quantity, "invalid input keeps previous quantity")

	require.NoError(t, s.UpdateQuantity(itemID, " 4 "))
	assert.Equal(t, int64(4), s.Document().Items[0].Quantity)
	assert.True(t, s.Document().SubTotal.Equal(decimal.NewFromInt(400)), "totals follow the edit")
}

func TestSession_UpdateUnitPrice_Invoice(t *testing.T) {
	s := newInvoiceSession(document.StockAdvisory)
	require.NoError(t, s.AddItem("item-a", 2, nil))
	itemID := s.Document().Items[0].ID

	require.NoError(t, s.UpdateUnitPrice(itemID, "80.50"))
	assert.True(t, s.Document().Items[0].UnitPrice.Equal(decimal.RequireFromString("80.50")))

	require.NoError(t, s.UpdateUnitPrice(itemID, "garbage"))
	assert.True(t, s.Document().Items[0].UnitPrice.Equal(decimal.RequireFromString("80.50")), "invalid input keeps previous price")
}

func TestSession_UpdateUnitPrice_LockedOnQuotation(t *testing.T) {
	doc := &entity.Document{ID: "QUO-00001", Kind: entity.KindQuotation, Status: entity.QuotePending}
	s := document.NewSession(doc, testStock(), document.StockAdvisory)
	require.NoError(t, s.AddItem("item-a", 1, nil))

	err := s.UpdateUnitPrice(doc.Items[0].ID, "10")

	assert.ErrorIs(t, err, document.ErrPriceLocked)
}

func TestSession_RemoveItem(t *testing.T) {
	s := newInvoiceSession(document.StockAdvisory)
	require.NoError(t, s.AddItem("item-a", 2, nil))
	require.NoError(t, s.AddItem("item-b", 1, nil))
	itemID := s.Document().Items[0].ID

	require.NoError(t, s.RemoveItem(itemID))

	doc := s.Document()
	require.Len(t, doc.Items, 1)
	assert.True(t, doc.SubTotal.Equal(decimal.NewFromInt(50)))

	// The freed reference can be added again as a fresh line.
	require.NoError(t, s.AddItem("item-a", 1, nil))
	assert.Len(t, s.Document().Items, 2)

	assert.ErrorIs(t, s.RemoveItem("nope"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Discount commit
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_CommitDiscount_ClampsAndRecomputes(t *testing.T) {
	s := newInvoiceSession(document.StockAdvisory)
	require.NoError(t, s.AddItem("item-a", 2, nil)) // subtotal 200

	s.SetDiscountRaw("150")
	pct := s.CommitDiscount()

	assert.True(t, pct.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.Document().DiscountAmount.Equal(decimal.NewFromInt(200)))
	assert.True(t, s.Document().TotalAmount.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock policy at save time
// ──────────────────────────────────────────────────────────────────────────────

func overCommittedSession(policy document.StockPolicy) *document.Session {
	// Document loaded with more committed than the snapshot has, as after
	// stock dropped between editing sessions.
	doc := &entity.Document{
		ID:   "INV-00002",
		Kind: entity.KindInvoice,
		Items: []entity.LineItem{{
			ID:              "line-1",
			InventoryItemID: "item-b",
			ItemName:        "Oil Filter",
			Quantity:        7,
			UnitPrice:       decimal.NewFromInt(50),
			Total:           decimal.NewFromInt(350),
		}},
	}
	return document.NewSession(doc, testStock(), policy)
}

func TestSession_Warnings_ReportOverCommittedLines(t *testing.T) {
	s := overCommittedSession(document.StockAdvisory)

	warns := s.Warnings()

	require.Len(t, warns, 1)
	assert.Equal(t, "item-b", warns[0].InventoryItemID)
	assert.Equal(t, "3 items available (7 already in cart)", warns[0].Error())
}

func TestSession_Validate_AdvisoryPassesOverCommit(t *testing.T) {
	s := overCommittedSession(document.StockAdvisory)

	assert.NoError(t, s.Validate())
}

func TestSession_Validate_StrictFailsOverCommit(t *testing.T) {
	s := overCommittedSession(document.StockStrict)

	var stockErr *document.StockExceededError
	assert.ErrorAs(t, s.Validate(), &stockErr)
}
