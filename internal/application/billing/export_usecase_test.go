package billing_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billora/billora-api/internal/application/billing"
	"github.com/billora/billora-api/internal/domain"
	"github.com/billora/billora-api/internal/domain/entity"
	"github.com/billora/billora-api/internal/domain/render"
)

// blockingRenderer parks inside Render until released, so a test can hold an
// export in flight.
type blockingRenderer struct {
	started   chan struct{}
	release   chan struct{}
	startOnce sync.Once
}

func (r *blockingRenderer) Render(_ context.Context, _ render.Layout, _ render.ScaleProfile) ([]byte, error) {
	if r.started != nil {
		r.startOnce.Do(func() { close(r.started) })
	}
	if r.release != nil {
		<-r.release
	}
	return []byte("%PDF-1.7 fake"), nil
}

func exportFixtures() *fakeDocumentRepo {
	repo := newFakeDocumentRepo()
	repo.docs["INV-00001"] = &entity.Document{
		ID:          "INV-00001",
		Kind:        entity.KindInvoice,
		Status:      entity.PaymentPending,
		IssueDate:   time.Now(),
		DueDate:     time.Now(),
		TotalAmount: decimal.NewFromInt(100),
	}
	return repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_ArtifactShape(t *testing.T) {
	uc := billing.NewExportUseCase(exportFixtures(), &fakeCompanyRepo{}, &blockingRenderer{}, testLogger())

	artifact, err := uc.Export(context.Background(), "INV-00001", "download")

	require.NoError(t, err)
	assert.Equal(t, "invoice-INV-00001.pdf", artifact.Filename)
	assert.Equal(t, "application/pdf", artifact.ContentType)
	assert.False(t, artifact.Inline, "download is served as attachment")
	assert.NotEmpty(t, artifact.Bytes)
}

func TestExport_PrintAndPreviewAreInline(t *testing.T) {
	uc := billing.NewExportUseCase(exportFixtures(), &fakeCompanyRepo{}, &blockingRenderer{}, testLogger())

	for _, target := range []string{"print", "preview"} {
		artifact, err := uc.Export(context.Background(), "INV-00001", target)
		require.NoError(t, err)
		assert.True(t, artifact.Inline, target)
	}
}

func TestExport_UnknownDocument(t *testing.T) {
	uc := billing.NewExportUseCase(exportFixtures(), &fakeCompanyRepo{}, &blockingRenderer{}, testLogger())

	_, err := uc.Export(context.Background(), "INV-99999", "download")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExport_RejectsConcurrentExportOfSameDocument(t *testing.T) {
	renderer := &blockingRenderer{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	uc := billing.NewExportUseCase(exportFixtures(), &fakeCompanyRepo{}, renderer, testLogger())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := uc.Export(context.Background(), "INV-00001", "download")
		assert.NoError(t, err)
	}()

	<-renderer.started
	_, err := uc.Export(context.Background(), "INV-00001", "print")
	assert.ErrorIs(t, err, domain.ErrExportInProgress)

	close(renderer.release)
	wg.Wait()

	// Guard released: the document can be exported again.
	_, err = uc.Export(context.Background(), "INV-00001", "download")
	assert.NoError(t, err)
}
