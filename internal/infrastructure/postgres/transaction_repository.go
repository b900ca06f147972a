package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/billora/billora-api/internal/domain"
	"github.com/billora/billora-api/internal/domain/entity"
	"github.com/billora/billora-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo is insert-only; settlements are never updated or deleted.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository builds the adapter.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create records a settlement.
func (r *TransactionRepo) Create(tx *entity.PaymentTransaction) error {
	query := `
		INSERT INTO payment_transactions
			(id, document_id, method, bank_name, account_number, reference, amount, transaction_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.DocumentID, tx.Method, tx.BankName, tx.AccountNumber,
		tx.Reference, tx.Amount, tx.Date, tx.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByDocumentID returns the latest transaction for a document, nil when
// none exists.
func (r *TransactionRepo) GetByDocumentID(documentID string) (*entity.PaymentTransaction, error) {
	query := `
		SELECT id, document_id, method, bank_name, account_number, reference, amount, transaction_date, created_at
		FROM payment_transactions WHERE document_id = $1
		ORDER BY created_at DESC LIMIT 1`
	var tx entity.PaymentTransaction
	err := r.q.QueryRow(context.Background(), query, documentID).Scan(
		&tx.ID, &tx.DocumentID, &tx.Method, &tx.BankName, &tx.AccountNumber,
		&tx.Reference, &tx.Amount, &tx.Date, &tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &tx, nil
}
