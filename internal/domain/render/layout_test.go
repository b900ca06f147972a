package render_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billora/billora-api/internal/domain/document"
	"github.com/billora/billora-api/internal/domain/entity"
	"github.com/billora/billora-api/internal/domain/render"
)

func sampleDocument(kind entity.DocumentKind, itemCount int) *entity.Document {
	doc := &entity.Document{
		ID:        "INV-00042",
		Kind:      kind,
		Status:    entity.PaymentPending,
		IssueDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC),
		ApplyTax:  kind == entity.KindInvoice,
		Notes:     "Payment within 30 days.",
		CustomerSnapshot: &entity.Customer{
			FullName:  "Jordan Velez",
			VATNumber: "VAT-778",
			Phone:     "555123",
			Email:     "jordan@example.com",
		},
		Vehicle: entity.VehicleInfo{Model: "Hilux", PlateNo: "ABC-123"},
	}
	for i := 0; i < itemCount; i++ {
		doc.Items = append(doc.Items, entity.LineItem{
			ID:              fmt.Sprintf("line-%d", i),
			InventoryItemID: fmt.Sprintf("item-%d", i),
			ItemName:        fmt.Sprintf("Part %d", i),
			Quantity:        1,
			UnitPrice:       decimal.NewFromInt(100),
			Total:           decimal.NewFromInt(100),
		})
	}
	t := document.ComputeTotals(doc.Items, doc.DiscountPercentage, doc.ApplyTax)
	doc.SubTotal, doc.DiscountAmount, doc.TaxAmount, doc.TotalAmount =
		t.SubTotal, t.DiscountAmount, t.TaxAmount, t.TotalAmount
	return doc
}

func sampleSeller() *entity.Company {
	return &entity.Company{Name: "Billora Motors", VATNumber: "VAT-001", Address: "12 Dock Rd"}
}

func TestCompose_InvoiceHeader(t *testing.T) {
	l := render.Compose(sampleDocument(entity.KindInvoice, 2), sampleSeller())

	assert.Equal(t, "TAX INVOICE", l.Title)
	assert.Equal(t, "Due Date", l.DueLabel)
	assert.Equal(t, "INV-00042", l.DocumentID)
	assert.Equal(t, "15/03/2026", l.IssueDate)
	assert.Equal(t, "14/04/2026", l.DueDate)
	assert.Equal(t, "Billora Motors", l.Seller.Name)
	assert.Equal(t, "Jordan Velez", l.Customer.Name)
	assert.Equal(t, "Hilux  |  Plate: ABC-123", l.Vehicle)
}

func TestCompose_QuotationHeader(t *testing.T) {
	doc := sampleDocument(entity.KindQuotation, 1)
	doc.ID = "QUO-00007"

	l := render.Compose(doc, sampleSeller())

	assert.Equal(t, "QUOTATION", l.Title)
	assert.Equal(t, "Valid Until", l.DueLabel)
	assert.Empty(t, l.Totals.TaxLabel, "quotations never show a tax row")
}

func TestCompose_CustomerComesFromSnapshot(t *testing.T) {
	doc := sampleDocument(entity.KindInvoice, 1)
	doc.CustomerSnapshot = nil

	l := render.Compose(doc, sampleSeller())

	assert.Empty(t, l.Customer.Name, "no snapshot, no customer block")
}

func TestCompose_TableTruncatesAtCapacity(t *testing.T) {
	l := render.Compose(sampleDocument(entity.KindInvoice, 20), sampleSeller())

	require.Len(t, l.Table.Rows, render.TableRowCapacity)
	assert.Equal(t, 4, l.Table.Truncated)
	assert.Equal(t, 1, l.Table.Rows[0].Index)
	assert.Equal(t, render.TableRowCapacity, l.Table.Rows[render.TableRowCapacity-1].Index)
}

func TestCompose_AlternatingRowShading(t *testing.T) {
	l := render.Compose(sampleDocument(entity.KindInvoice, 4), sampleSeller())

	assert.False(t, l.Table.Rows[0].Shaded)
	assert.True(t, l.Table.Rows[1].Shaded)
	assert.False(t, l.Table.Rows[2].Shaded)
	assert.True(t, l.Table.Rows[3].Shaded)
}

func TestCompose_TotalsAndTaxRow(t *testing.T) {
	l := render.Compose(sampleDocument(entity.KindInvoice, 25), sampleSeller())

	// 25 x 100 with 18% tax: formatting includes thousands separators.
	assert.Equal(t, "2,500.00", l.Totals.SubTotal)
	assert.Equal(t, "Tax (18%)", l.Totals.TaxLabel)
	assert.Equal(t, "450.00", l.Totals.Tax)
	assert.Equal(t, "2,950.00", l.Totals.Total)
}

func TestCompose_VerificationString(t *testing.T) {
	l := render.Compose(sampleDocument(entity.KindInvoice, 1), sampleSeller())

	assert.Equal(t, "invoice|INV-00042|2026-03-15|118.00|Pending", l.Verification)
}

func TestCompose_Deterministic(t *testing.T) {
	doc := sampleDocument(entity.KindInvoice, 5)
	seller := sampleSeller()

	assert.Equal(t, render.Compose(doc, seller), render.Compose(doc, seller))
}

func TestProfileFor(t *testing.T) {
	assert.Equal(t, render.ProfilePreview, render.ProfileFor("preview"))
	assert.Equal(t, render.ProfilePrint, render.ProfileFor("print"))
	assert.Equal(t, render.ProfileExport, render.ProfileFor("download"))
	assert.Equal(t, render.ProfileExport, render.ProfileFor(""))

	assert.InDelta(t, 76.8, render.ProfilePreview.DPI(), 0.001)
	assert.InDelta(t, 192.0, render.ProfilePrint.DPI(), 0.001)
	assert.InDelta(t, 240.0, render.ProfileExport.DPI(), 0.001)
}
