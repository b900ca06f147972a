package pdf_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billora/billora-api/internal/domain/render"
	"github.com/billora/billora-api/internal/infrastructure/pdf"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

func sampleLayout() render.Layout {
	return render.Layout{
		Title:      "TAX INVOICE",
		DocumentID: "INV-00042",
		IssueDate:  "15/03/2026",
		DueLabel:   "Due Date",
		DueDate:    "15/04/2026",
		Status:     "Pending",
		Seller: render.PartyBlock{
			Name: "Billora Motors", VATNumber: "VAT-100200", Address: "12 Harbor Rd",
		},
		Customer: render.PartyBlock{
			Name: "Jordan Velez", VATNumber: "VAT-778", Phone: "555123",
		},
		Table: render.TableBlock{
			Rows: []render.TableRow{
				{Index: 1, Name: "Brake Pad", Quantity: "2", UnitPrice: "100.00", Total: "200.00"},
				{Index: 2, Name: "Oil Filter", Quantity: "1", UnitPrice: "50.00", Total: "50.00", Shaded: true},
			},
		},
		Totals: render.TotalsBlock{
			SubTotal: "250.00", DiscountPct: "0%", Discount: "0.00",
			TaxLabel: "Tax (18%)", Tax: "45.00", Total: "295.00",
		},
		Notes:        "Payment due within 30 days.",
		Verification: "invoice|INV-00042|2026-03-15|295.00|Pending",
	}
}

// writeTemplatePNG drops a small valid PNG into dir and returns its path.
func writeTemplatePNG(t *testing.T, dir string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	path := filepath.Join(dir, "template.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

// ──────────────────────────────────────────────────────────────────────────────
// Render
// ──────────────────────────────────────────────────────────────────────────────

func TestMarotoRenderer_WithoutTemplate(t *testing.T) {
	r := pdf.NewMarotoRenderer("")

	got, err := r.Render(context.Background(), sampleLayout(), render.ProfileExport)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(got, []byte("%PDF")), "output is a PDF document")
}

func TestMarotoRenderer_WithBackgroundTemplate(t *testing.T) {
	path := writeTemplatePNG(t, t.TempDir())
	r := pdf.NewMarotoRenderer(path)

	got, err := r.Render(context.Background(), sampleLayout(), render.ProfilePrint)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(got, []byte("%PDF")))
}

func TestMarotoRenderer_MissingTemplateFailsLoudly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")
	r := pdf.NewMarotoRenderer(path)

	_, err := r.Render(context.Background(), sampleLayout(), render.ProfileExport)

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestMarotoRenderer_UnsupportedTemplateExtension(t *testing.T) {
	r := pdf.NewMarotoRenderer("/tmp/template.bmp")

	_, err := r.Render(context.Background(), sampleLayout(), render.ProfileExport)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported template image")
}
