package document_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/billora/billora-api/internal/domain/document"
)

func TestDiscountInput_RawIsNotClampedUntilCommit(t *testing.T) {
	d := document.NewDiscountInput(decimal.NewFromInt(10))

	// Typing "150" on the way to "15" stays visible as typed.
	d.SetRaw("150")
	assert.Equal(t, "150", d.Raw())
	assert.True(t, d.Committed().Equal(decimal.NewFromInt(10)), "commit has not run yet")
}

func TestDiscountInput_CommitClampsRange(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
	}{
		{"15", 15},
		{"150", 100},
		{"-5", 0},
		{"0", 0},
		{"100", 100},
	}
	for _, tc := range cases {
		d := document.NewDiscountInput(decimal.Zero)
		d.SetRaw(tc.raw)
		got := d.Commit()
		assert.True(t, got.Equal(decimal.NewFromInt(tc.want)), "raw %q: got %s", tc.raw, got)
	}
}

func TestDiscountInput_InvalidCommitKeepsPrevious(t *testing.T) {
	d := document.NewDiscountInput(decimal.NewFromInt(25))

	d.SetRaw("abc")
	got := d.Commit()

	assert.True(t, got.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "25", d.Raw(), "raw re-syncs to the committed value")
}
