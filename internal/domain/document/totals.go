// Package document implements the composition and settlement engine for
// invoices and quotations: line item management against a stock snapshot,
// derived totals, the discount commit cycle and the payment state machine.
package document

import (
	"github.com/shopspring/decimal"

	"github.com/billora/billora-api/internal/domain/entity"
)

// TaxRate is the flat tax applied to invoice subtotals when ApplyTax is set.
var TaxRate = decimal.New(18, -2) // 18%

var oneHundred = decimal.NewFromInt(100)

// Totals are the derived financial fields of a document.
type Totals struct {
	SubTotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
}

// LineTotal computes quantity * unitPrice for one row.
func LineTotal(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity))
}

// ComputeTotals derives subtotal, discount, tax and grand total from the
// current item list. It is pure: re-derivable from the document snapshot
// alone, with no hidden accumulator state. Values are carried at full
// precision; 2-decimal rounding happens at presentation time only, so
// rounding error does not compound across many items.
//
// totalAmount = subTotal + taxAmount - discountAmount, clamped to >= 0.
func ComputeTotals(items []entity.LineItem, discountPct decimal.Decimal, applyTax bool) Totals {
	var subTotal decimal.Decimal
	for _, it := range items {
		subTotal = subTotal.Add(LineTotal(it.Quantity, it.UnitPrice))
	}

	discount := subTotal.Mul(discountPct).Div(oneHundred)

	tax := decimal.Zero
	if applyTax {
		tax = subTotal.Mul(TaxRate)
	}

	total := subTotal.Add(tax).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Totals{
		SubTotal:       subTotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		TotalAmount:    total,
	}
}
