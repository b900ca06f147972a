package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/billora/billora-api/internal/application/dto"
	"github.com/billora/billora-api/internal/domain"
	"github.com/billora/billora-api/internal/domain/document"
	"github.com/billora/billora-api/internal/domain/entity"
	"github.com/billora/billora-api/internal/domain/repository"
	"github.com/billora/billora-api/pkg/logger"
)

// SettlementUseCase runs the payment settlement sub-flow: validate the
// supplied details, fetch a transaction ID just-in-time, record the
// immutable transaction, then move the document to Completed. The two
// writes are not atomic; a failed status update after a persisted
// transaction is surfaced as ErrStatusUpdateFailed so the retry path can
// re-attempt only the status update.
type SettlementUseCase struct {
	docRepo repository.DocumentRepository
	txRepo  repository.TransactionRepository
	seqRepo repository.SequenceRepository
	log     *logger.Logger
}

// NewSettlementUseCase builds the use case.
func NewSettlementUseCase(
	docRepo repository.DocumentRepository,
	txRepo repository.TransactionRepository,
	seqRepo repository.SequenceRepository,
	log *logger.Logger,
) *SettlementUseCase {
	return &SettlementUseCase{docRepo: docRepo, txRepo: txRepo, seqRepo: seqRepo, log: log}
}

// Settle performs the confirmed settlement of an invoice.
func (uc *SettlementUseCase) Settle(ctx context.Context, documentID string, in dto.SettleRequest) (*dto.SettleResponse, error) {
	if err := dto.Check(in); err != nil {
		return nil, err
	}
	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.Kind != entity.KindInvoice {
		return nil, fmt.Errorf("%w: quotations have no payment leg", domain.ErrInvalidInput)
	}

	existing, err := uc.txRepo.GetByDocumentID(documentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if doc.Status == entity.PaymentCompleted {
			return nil, fmt.Errorf("%w: document is already settled", domain.ErrConflict)
		}
		// Orphaned transaction from an earlier partial failure: creating a
		// second one would duplicate the payment. Only the status update may
		// be retried.
		return nil, fmt.Errorf("%w: orphaned transaction %s detected, retry the status update",
			domain.ErrStatusUpdateFailed, existing.ID)
	}

	if err := document.CanTransition(doc.Kind, doc.Status, entity.PaymentCompleted, false); err != nil {
		return nil, err
	}

	details := document.SettlementDetails{
		Method:        in.Method,
		BankName:      in.BankName,
		AccountNumber: in.AccountNumber,
		Reference:     in.Reference,
		Amount:        in.Amount,
		Date:          in.Date,
	}
	details.ApplyCashDefaults(time.Now())
	if err := details.Validate(doc.TotalAmount); err != nil {
		return nil, err
	}

	// Transaction ID is fetched just-in-time, never pre-allocated.
	txID, err := uc.seqRepo.NextTransactionID()
	if err != nil {
		return nil, fmt.Errorf("allocate transaction id: %w", err)
	}
	tx := &entity.PaymentTransaction{
		ID:            txID,
		DocumentID:    doc.ID,
		Method:        details.Method,
		BankName:      details.BankName,
		AccountNumber: details.AccountNumber,
		Reference:     details.Reference,
		Amount:        details.Amount,
		Date:          details.Date,
		CreatedAt:     time.Now(),
	}
	if err := uc.txRepo.Create(tx); err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}

	if err := uc.docRepo.UpdateStatus(doc.ID, entity.PaymentCompleted); err != nil {
		// The transaction is already on disk; the document stays Pending.
		uc.log.Error().Err(err).
			Str("document_id", doc.ID).
			Str("transaction_id", tx.ID).
			Msg("settlement status update failed after transaction was recorded")
		return nil, fmt.Errorf("%w: transaction %s", domain.ErrStatusUpdateFailed, tx.ID)
	}
	doc.Status = entity.PaymentCompleted

	uc.log.Info().
		Str("document_id", doc.ID).
		Str("transaction_id", tx.ID).
		Str("method", tx.Method).
		Msg("document settled")

	return &dto.SettleResponse{
		Transaction: dto.ToTransactionResponse(tx),
		Document:    dto.FromDocument(doc),
	}, nil
}

// RetryStatusUpdate finishes a partially failed settlement: it re-attempts
// only the status update for a document that already has an orphaned
// transaction. It never creates another transaction.
func (uc *SettlementUseCase) RetryStatusUpdate(ctx context.Context, documentID string) (*dto.SettleResponse, error) {
	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	tx, err := uc.txRepo.GetByDocumentID(documentID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, fmt.Errorf("%w: no transaction recorded for this document", domain.ErrConflict)
	}
	if doc.Status != entity.PaymentCompleted {
		if err := uc.docRepo.UpdateStatus(doc.ID, entity.PaymentCompleted); err != nil {
			return nil, fmt.Errorf("%w: transaction %s", domain.ErrStatusUpdateFailed, tx.ID)
		}
		doc.Status = entity.PaymentCompleted
		uc.log.Info().
			Str("document_id", doc.ID).
			Str("transaction_id", tx.ID).
			Msg("settlement status update retried successfully")
	}
	return &dto.SettleResponse{
		Transaction: dto.ToTransactionResponse(tx),
		Document:    dto.FromDocument(doc),
	}, nil
}
