package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted at settlement.
const (
	MethodCash         = "Cash"
	MethodCard         = "Card"
	MethodBankTransfer = "Bank Transfer"
	MethodBankDeposit  = "Bank Deposit"
	MethodCheque       = "Cheque"
)

// BankFieldNA is the sentinel written into bank fields when the method is Cash.
const BankFieldNA = "N/A"

// PaymentTransaction records one settlement. Immutable once created.
type PaymentTransaction struct {
	ID            string // sequentially assigned, fetched just-in-time
	DocumentID    string
	Method        string
	BankName      string
	AccountNumber string
	Reference     string
	Amount        decimal.Decimal
	Date          time.Time
	CreatedAt     time.Time
}

// RequiresBankDetails reports whether the method needs bank name and account
// number in addition to a transaction reference.
func RequiresBankDetails(method string) bool {
	switch method {
	case MethodBankTransfer, MethodBankDeposit, MethodCheque:
		return true
	}
	return false
}
