package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind distinguishes the two variants of one document shape.
type DocumentKind string

const (
	KindInvoice   DocumentKind = "invoice"
	KindQuotation DocumentKind = "quotation"
)

// Payment statuses (invoices).
const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
	PaymentRejected  = "Rejected"
)

// Quotation statuses. Accepted, Rejected and Expired are terminal.
const (
	QuotePending  = "Pending"
	QuoteAccepted = "Accepted"
	QuoteRejected = "Rejected"
	QuoteExpired  = "Expired"
)

// Document is the header of an invoice or quotation. SubTotal, DiscountAmount,
// TaxAmount and TotalAmount are derived fields: they are recomputed after every
// item or discount mutation and never mutated directly.
type Document struct {
	ID                 string // sequential human-readable ID, immutable once assigned
	Kind               DocumentKind
	CustomerID         string
	CustomerSnapshot   *Customer // denormalized copy used for rendering; may diverge from the live record
	Items              []LineItem
	SubTotal           decimal.Decimal
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	TaxAmount          decimal.Decimal
	TotalAmount        decimal.Decimal
	ApplyTax           bool // invoices only
	IssueDate          time.Time
	DueDate            time.Time // due date (invoice) or valid-until (quotation)
	Status             string    // payment status (invoice) or quotation status
	Notes              string
	Vehicle            VehicleInfo
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// VehicleInfo is the free-form metadata block printed on the document.
type VehicleInfo struct {
	Model     string
	PlateNo   string
	ChassisNo string
}

// LineItem is one row of the document. At most one line item exists per
// inventory item per document; re-adding the same inventory item merges
// quantities instead of duplicating rows.
type LineItem struct {
	ID              string // client-generated, opaque
	InventoryItemID string
	ItemName        string // snapshot, survives inventory rename
	Quantity        int64
	UnitPrice       decimal.Decimal
	Total           decimal.Decimal // Quantity * UnitPrice
}
