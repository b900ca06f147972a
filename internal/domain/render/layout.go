// Package render composes the fixed A4 layout of a document. Composition is
// pure and deterministic: it turns a document plus the seller profile into a
// positioned block model that any rendering surface (PDF, print stream) can
// draw without further business logic.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/billora/billora-api/internal/domain/entity"
)

// TableRowCapacity is how many line rows fit the table's vertical band.
// A longer item list truncates visually with an overflow marker; the page
// never grows or paginates (fixed-template limitation, kept as designed).
const TableRowCapacity = 16

var moneyPrinter = message.NewPrinter(language.English)

// Layout is the complete view model for one A4 page.
type Layout struct {
	Title        string // "TAX INVOICE" or "QUOTATION"
	DocumentID   string
	IssueDate    string
	DueLabel     string // "Due Date" or "Valid Until"
	DueDate      string
	Status       string
	Seller       PartyBlock
	Customer     PartyBlock
	Vehicle      string
	Table        TableBlock
	Totals       TotalsBlock
	Notes        string
	Verification string // QR payload
}

// PartyBlock renders either the seller header or the customer block.
type PartyBlock struct {
	Name      string
	VATNumber string
	Address   string
	Phone     string
	Email     string
}

// TableRow is one rendered line of the item table.
type TableRow struct {
	Index     int
	Name      string
	Quantity  string
	UnitPrice string
	Total     string
	Shaded    bool // alternating row shading
}

// TableBlock is the line-item table with its truncation marker.
type TableBlock struct {
	Rows      []TableRow
	Truncated int // rows dropped beyond the vertical band
}

// TotalsBlock is the right-aligned totals column.
type TotalsBlock struct {
	SubTotal    string
	DiscountPct string
	Discount    string
	TaxLabel    string // empty when tax does not apply
	Tax         string
	Total       string
}

// Money formats a monetary value with thousands separators and two decimals
// for presentation. Internal arithmetic is never pre-rounded.
func Money(d interface{ InexactFloat64() float64 }) string {
	return moneyPrinter.Sprintf("%.2f", d.InexactFloat64())
}

// Compose lays the document onto the fixed template. The customer block uses
// the denormalized snapshot carried by the document, so a later edit of the
// live customer record does not change an already issued document.
func Compose(doc *entity.Document, seller *entity.Company) Layout {
	l := Layout{
		DocumentID: doc.ID,
		IssueDate:  doc.IssueDate.Format("02/01/2006"),
		DueDate:    doc.DueDate.Format("02/01/2006"),
		Status:     doc.Status,
		Notes:      doc.Notes,
	}
	if doc.Kind == entity.KindQuotation {
		l.Title = "QUOTATION"
		l.DueLabel = "Valid Until"
	} else {
		l.Title = "TAX INVOICE"
		l.DueLabel = "Due Date"
	}

	if seller != nil {
		l.Seller = PartyBlock{
			Name:      seller.Name,
			VATNumber: seller.VATNumber,
			Address:   seller.Address,
			Phone:     seller.Phone,
			Email:     seller.Email,
		}
	}
	if c := doc.CustomerSnapshot; c != nil {
		l.Customer = PartyBlock{
			Name:      c.FullName,
			VATNumber: c.VATNumber,
			Address:   c.Address,
			Phone:     c.Phone,
			Email:     c.Email,
		}
	}

	l.Vehicle = vehicleLine(doc.Vehicle)
	l.Table = composeTable(doc.Items)
	l.Totals = composeTotals(doc)
	l.Verification = verificationString(doc)
	return l
}

func composeTable(items []entity.LineItem) TableBlock {
	t := TableBlock{}
	for i, it := range items {
		if i >= TableRowCapacity {
			t.Truncated = len(items) - TableRowCapacity
			break
		}
		t.Rows = append(t.Rows, TableRow{
			Index:     i + 1,
			Name:      it.ItemName,
			Quantity:  fmt.Sprintf("%d", it.Quantity),
			UnitPrice: Money(it.UnitPrice),
			Total:     Money(it.Total),
			Shaded:    i%2 == 1,
		})
	}
	return t
}

func composeTotals(doc *entity.Document) TotalsBlock {
	t := TotalsBlock{
		SubTotal:    Money(doc.SubTotal),
		DiscountPct: doc.DiscountPercentage.StringFixed(0) + "%",
		Discount:    Money(doc.DiscountAmount),
		Total:       Money(doc.TotalAmount),
	}
	if doc.Kind == entity.KindInvoice && doc.ApplyTax {
		t.TaxLabel = "Tax (18%)"
		t.Tax = Money(doc.TaxAmount)
	}
	return t
}

func vehicleLine(v entity.VehicleInfo) string {
	parts := make([]string, 0, 3)
	if v.Model != "" {
		parts = append(parts, v.Model)
	}
	if v.PlateNo != "" {
		parts = append(parts, "Plate: "+v.PlateNo)
	}
	if v.ChassisNo != "" {
		parts = append(parts, "Chassis: "+v.ChassisNo)
	}
	return strings.Join(parts, "  |  ")
}

// verificationString is the QR payload: kind|id|date|total|status.
func verificationString(doc *entity.Document) string {
	return strings.Join([]string{
		string(doc.Kind),
		doc.ID,
		doc.IssueDate.Format("2006-01-02"),
		doc.TotalAmount.StringFixed(2),
		doc.Status,
	}, "|")
}
