package repository

import "github.com/billora/billora-api/internal/domain/entity"

// SequenceRepository hands out the next human-readable IDs just-in-time.
// Allocation is a readback, not a reservation: two concurrent operators can
// legitimately receive the same "next" value. Known limitation, preserved.
type SequenceRepository interface {
	NextDocumentID(kind entity.DocumentKind) (string, error)
	NextTransactionID() (string, error)
}
