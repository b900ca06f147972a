package repository

import "github.com/billora/billora-api/internal/domain/entity"

// TransactionRepository is insert-only: a recorded settlement is immutable.
type TransactionRepository interface {
	Create(tx *entity.PaymentTransaction) error
	// GetByDocumentID returns the latest transaction for a document, or nil
	// when none exists. Used to detect orphaned transactions on retry and to
	// guard the Completed -> Pending rollback.
	GetByDocumentID(documentID string) (*entity.PaymentTransaction, error)
}
