package document

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DiscountInput models the two-phase clamp of the discount percentage field:
// the raw typed string is accepted unclamped while editing (the user may pass
// through "150" on the way to "15"), and only Commit parses and clamps it to
// [0, 100]. Invalid raw input falls back to the previous committed value.
type DiscountInput struct {
	raw       string
	committed decimal.Decimal
}

// NewDiscountInput starts from an already-committed percentage.
func NewDiscountInput(committed decimal.Decimal) *DiscountInput {
	return &DiscountInput{
		raw:       committed.String(),
		committed: ClampPercent(committed),
	}
}

// SetRaw stores an in-progress typed value without validation.
func (d *DiscountInput) SetRaw(s string) {
	d.raw = s
}

// Raw returns the live (possibly out-of-range) typed value.
func (d *DiscountInput) Raw() string { return d.raw }

// Committed returns the last committed percentage.
func (d *DiscountInput) Committed() decimal.Decimal { return d.committed }

// Commit parses and clamps the raw value. Non-numeric input keeps the
// previous committed value; the raw field is re-synced to whatever was
// committed so the next edit starts from a valid state.
func (d *DiscountInput) Commit() decimal.Decimal {
	parsed, err := decimal.NewFromString(strings.TrimSpace(d.raw))
	if err == nil {
		d.committed = ClampPercent(parsed)
	}
	d.raw = d.committed.String()
	return d.committed
}

// ClampPercent bounds a discount percentage to [0, 100]. Every path that
// stores a percentage on a document goes through it, including saves that
// carry the value directly instead of the typed input.
func ClampPercent(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(oneHundred) {
		return oneHundred
	}
	return v
}
