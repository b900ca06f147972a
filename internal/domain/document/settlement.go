package document

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/billora/billora-api/internal/domain"
	"github.com/billora/billora-api/internal/domain/entity"
)

// AmountTolerance is the maximum accepted difference between the payment
// amount and the document total at settlement.
var AmountTolerance = decimal.New(1, -2) // 0.01

// CanTransition checks a status transition for a document of the given kind.
// hasTransaction must be true when a payment transaction already exists for
// the document: Completed is then no longer reversible, and the recorded
// transaction is never deleted by transitioning away.
func CanTransition(kind entity.DocumentKind, from, to string, hasTransaction bool) error {
	if from == to {
		return nil
	}
	switch kind {
	case entity.KindInvoice:
		switch {
		case from == entity.PaymentPending && to == entity.PaymentCompleted:
			return nil
		case from == entity.PaymentPending && to == entity.PaymentRejected:
			return nil
		case from == entity.PaymentRejected && to == entity.PaymentPending:
			return nil
		case from == entity.PaymentCompleted && to == entity.PaymentPending:
			// Rollback path: only while the settlement sub-flow was cancelled
			// before a transaction was actually recorded.
			if hasTransaction {
				return fmt.Errorf("%w: %s has a recorded transaction", domain.ErrInvalidTransition, from)
			}
			return nil
		}
	case entity.KindQuotation:
		if from == entity.QuotePending {
			switch to {
			case entity.QuoteAccepted, entity.QuoteRejected, entity.QuoteExpired:
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, to)
}

// SettlementDetails is the operator-supplied payment information for the
// settlement sub-flow.
type SettlementDetails struct {
	Method        string
	BankName      string
	AccountNumber string
	Reference     string
	Amount        decimal.Decimal
	Date          time.Time
}

// ApplyCashDefaults fills the sentinel bank fields and synthesizes a
// CASH-<timestamp> reference when the method is Cash. It never overwrites a
// reference the operator already typed.
func (d *SettlementDetails) ApplyCashDefaults(now time.Time) {
	if d.Method != entity.MethodCash {
		return
	}
	d.BankName = entity.BankFieldNA
	d.AccountNumber = entity.BankFieldNA
	if d.Reference == "" {
		d.Reference = fmt.Sprintf("CASH-%d", now.Unix())
	}
}

// Validate checks the details against the document total before any
// transaction is created. All failures are validation errors reported
// inline; nothing here touches a store.
func (d SettlementDetails) Validate(totalAmount decimal.Decimal) error {
	if d.Date.IsZero() {
		return fmt.Errorf("%w: payment date is required", domain.ErrInvalidInput)
	}
	if !d.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidInput)
	}
	if d.Amount.Sub(totalAmount).Abs().GreaterThan(AmountTolerance) {
		return fmt.Errorf("%w: got %s, document total is %s",
			domain.ErrSettlementMismatch, d.Amount.StringFixed(2), totalAmount.StringFixed(2))
	}
	switch d.Method {
	case entity.MethodCash, entity.MethodCard, entity.MethodBankTransfer, entity.MethodBankDeposit, entity.MethodCheque:
	default:
		return fmt.Errorf("%w: unknown payment method %q", domain.ErrInvalidInput, d.Method)
	}
	if d.Method != entity.MethodCash && d.Reference == "" {
		return fmt.Errorf("%w: transaction reference is required for %s", domain.ErrInvalidInput, d.Method)
	}
	if entity.RequiresBankDetails(d.Method) {
		if d.BankName == "" || d.AccountNumber == "" {
			return fmt.Errorf("%w: bank name and account number are required for %s", domain.ErrInvalidInput, d.Method)
		}
	}
	return nil
}
