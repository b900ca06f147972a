package postgres

import (
	"context"
	"fmt"

	"github.com/billora/billora-api/internal/domain/entity"
	"github.com/billora/billora-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// ID prefixes for the human-readable sequences. All three are four
// characters, so the numeric suffix starts at position 5.
const (
	invoicePrefix     = "INV-"
	quotationPrefix   = "QUO-"
	transactionPrefix = "TXN-"
)

// SequenceRepo allocates the next human-readable ID by reading back the
// highest existing numeric suffix. The suffix is compared as an integer,
// not as text, so the sequence keeps advancing once it outgrows the
// five-digit padding. There is NO reservation: two concurrent callers can
// receive the same value and the later insert fails on the primary key.
// Preserved behavior, flagged as a known limitation.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository builds the adapter.
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// NextDocumentID returns e.g. "INV-00042" for an invoice.
func (r *SequenceRepo) NextDocumentID(kind entity.DocumentKind) (string, error) {
	prefix := invoicePrefix
	if kind == entity.KindQuotation {
		prefix = quotationPrefix
	}
	n, err := r.nextSuffix(`SELECT MAX(substring(id from 5)::int) FROM documents WHERE kind = $1`, string(kind))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%05d", prefix, n), nil
}

// NextTransactionID returns e.g. "TXN-00007".
func (r *SequenceRepo) NextTransactionID() (string, error) {
	n, err := r.nextSuffix(`SELECT MAX(substring(id from 5)::int) FROM payment_transactions`)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%05d", transactionPrefix, n), nil
}

func (r *SequenceRepo) nextSuffix(query string, args ...any) (int, error) {
	var last *int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&last); err != nil {
		return 0, fmt.Errorf("read last sequence id: %w", err)
	}
	if last == nil {
		// Empty table: sequence starts at 1.
		return 1, nil
	}
	return *last + 1, nil
}
