package billing

import (
	"context"

	"github.com/billora/billora-api/internal/domain/render"
)

// DocumentRenderer rasterizes a composed layout at the requested scale and
// returns the single-page A4 artifact bytes. Implementations must fail
// loudly when the background template cannot be loaded instead of emitting
// a blank page.
type DocumentRenderer interface {
	Render(ctx context.Context, layout render.Layout, profile render.ScaleProfile) ([]byte, error)
}
