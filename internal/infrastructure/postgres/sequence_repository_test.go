package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billora/billora-api/internal/domain/entity"
	"github.com/billora/billora-api/internal/infrastructure/postgres"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

// maxRow plays the single-row result of the MAX(...) readback. A nil value
// is the aggregate over an empty table.
type maxRow struct {
	value *int
}

func (r maxRow) Scan(dest ...any) error {
	*(dest[0].(**int)) = r.value
	return nil
}

type fakeSeqQuerier struct {
	max      *int
	lastSQL  string
	lastArgs []any
}

func (q *fakeSeqQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (q *fakeSeqQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (q *fakeSeqQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.lastSQL = sql
	q.lastArgs = args
	return maxRow{value: q.max}
}

func intPtr(v int) *int { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Next IDs
// ──────────────────────────────────────────────────────────────────────────────

func TestSequenceRepo_EmptyTableStartsAtOne(t *testing.T) {
	q := &fakeSeqQuerier{}
	repo := postgres.NewSequenceRepository(q)

	id, err := repo.NextDocumentID(entity.KindInvoice)

	require.NoError(t, err)
	assert.Equal(t, "INV-00001", id)
	assert.Equal(t, []any{"invoice"}, q.lastArgs, "readback is scoped to the document kind")
}

func TestSequenceRepo_NextDocumentID(t *testing.T) {
	q := &fakeSeqQuerier{max: intPtr(41)}
	repo := postgres.NewSequenceRepository(q)

	invID, err := repo.NextDocumentID(entity.KindInvoice)
	require.NoError(t, err)
	assert.Equal(t, "INV-00042", invID)

	quoID, err := repo.NextDocumentID(entity.KindQuotation)
	require.NoError(t, err)
	assert.Equal(t, "QUO-00042", quoID)
}

func TestSequenceRepo_ContinuesPastFiveDigitPadding(t *testing.T) {
	q := &fakeSeqQuerier{max: intPtr(99999)}
	repo := postgres.NewSequenceRepository(q)

	id, err := repo.NextDocumentID(entity.KindInvoice)

	require.NoError(t, err)
	assert.Equal(t, "INV-100000", id, "the sequence must not regress once the suffix outgrows the padding")
}

func TestSequenceRepo_ComparesSuffixNumerically(t *testing.T) {
	q := &fakeSeqQuerier{max: intPtr(6)}
	repo := postgres.NewSequenceRepository(q)

	id, err := repo.NextTransactionID()

	require.NoError(t, err)
	assert.Equal(t, "TXN-00007", id)
	assert.Contains(t, q.lastSQL, "substring(id from 5)::int", "ordering happens on the parsed integer, not the text")
}
