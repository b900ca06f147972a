package billing

import (
	"context"
	"fmt"
	"sync"

	"github.com/billora/billora-api/internal/domain"
	"github.com/billora/billora-api/internal/domain/render"
	"github.com/billora/billora-api/internal/domain/repository"
	"github.com/billora/billora-api/pkg/logger"
)

// ExportArtifact is the downloadable or printable output of the pipeline.
type ExportArtifact struct {
	Filename    string
	ContentType string
	Inline      bool // inline for print/preview, attachment for download
	Bytes       []byte
}

// ExportUseCase composes the fixed A4 layout for a document and hands it to
// the renderer. One export runs per document at a time: a competing
// print/download trigger while another is active is rejected with
// ErrExportInProgress rather than queued.
type ExportUseCase struct {
	docRepo     repository.DocumentRepository
	companyRepo repository.CompanyRepository
	renderer    DocumentRenderer
	log         *logger.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewExportUseCase builds the use case.
func NewExportUseCase(
	docRepo repository.DocumentRepository,
	companyRepo repository.CompanyRepository,
	renderer DocumentRenderer,
	log *logger.Logger,
) *ExportUseCase {
	return &ExportUseCase{
		docRepo:     docRepo,
		companyRepo: companyRepo,
		renderer:    renderer,
		log:         log,
		inFlight:    make(map[string]struct{}),
	}
}

// Export renders one document at the scale profile for target
// ("download", "print" or "preview"). The in-flight guard is released on
// every path, including render failure, so the busy state can never stick.
func (uc *ExportUseCase) Export(ctx context.Context, documentID, target string) (*ExportArtifact, error) {
	if !uc.acquire(documentID) {
		return nil, domain.ErrExportInProgress
	}
	defer uc.release(documentID)

	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	seller, err := uc.companyRepo.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("load seller profile: %w", err)
	}

	layout := render.Compose(doc, seller)
	profile := render.ProfileFor(target)

	bytes, err := uc.renderer.Render(ctx, layout, profile)
	if err != nil {
		uc.log.Error().Err(err).
			Str("document_id", documentID).
			Str("target", target).
			Msg("document render failed")
		return nil, fmt.Errorf("render document: %w", err)
	}

	uc.log.Info().
		Str("document_id", documentID).
		Str("target", target).
		Float64("dpi", profile.DPI()).
		Int("size_bytes", len(bytes)).
		Msg("document exported")

	return &ExportArtifact{
		Filename:    fmt.Sprintf("%s-%s.pdf", doc.Kind, doc.ID),
		ContentType: "application/pdf",
		Inline:      target == render.ProfilePrint.Name || target == render.ProfilePreview.Name,
		Bytes:       bytes,
	}, nil
}

func (uc *ExportUseCase) acquire(documentID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, busy := uc.inFlight[documentID]; busy {
		return false
	}
	uc.inFlight[documentID] = struct{}{}
	return true
}

func (uc *ExportUseCase) release(documentID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inFlight, documentID)
}
