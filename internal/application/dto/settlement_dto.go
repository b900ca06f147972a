package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/billora/billora-api/internal/domain/entity"
)

// SettleRequest is the payment detail payload of the settlement sub-flow.
// Bank fields are conditionally required by method; that rule lives in the
// domain validation, not in tags.
type SettleRequest struct {
	Method        string          `json:"method" validate:"required"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	Reference     string          `json:"reference"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
}

// TransactionResponse is the API shape of a recorded settlement.
type TransactionResponse struct {
	ID            string          `json:"id"`
	DocumentID    string          `json:"documentId"`
	Method        string          `json:"method"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	Reference     string          `json:"reference"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
}

// SettleResponse returns both effects of a confirmed settlement.
type SettleResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Document    *DocumentResponse   `json:"document"`
}

// ToTransactionResponse maps the entity.
func ToTransactionResponse(tx *entity.PaymentTransaction) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		DocumentID:    tx.DocumentID,
		Method:        tx.Method,
		BankName:      tx.BankName,
		AccountNumber: tx.AccountNumber,
		Reference:     tx.Reference,
		Amount:        tx.Amount,
		Date:          tx.Date,
	}
}
