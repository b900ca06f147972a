// Package pdf renders the composed A4 layout into a single-page PDF using
// Maroto v2.
//
// Page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Seller name + VAT   │  TAX INVOICE / QUOTATION      │
//	│                              │  Document ID + dates          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: customer block     │  Vehicle / metadata           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: # | Item | Qty | Unit Price | Total (alt. shading)   │
//	│         ... truncated with an overflow marker, never paged   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / Discount / Tax / TOTAL                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTES + QR verification code + status                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"os"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/billora/billora-api/internal/application/billing"
	"github.com/billora/billora-api/internal/domain/render"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 41, Blue: 59}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorShade   = &props.Color{Red: 241, Green: 245, Blue: 249}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

var _ billing.DocumentRenderer = (*MarotoRenderer)(nil)

// MarotoRenderer implements billing.DocumentRenderer on Maroto v2. The
// background template image is read from disk before generation: a missing
// or unreadable template fails the render instead of producing a page with
// a silently blank background.
type MarotoRenderer struct {
	templatePath string
}

// NewMarotoRenderer builds the renderer. templatePath may be empty, in
// which case pages render without a background template.
func NewMarotoRenderer(templatePath string) *MarotoRenderer {
	return &MarotoRenderer{templatePath: templatePath}
}

// Render produces the single-page A4 PDF for the layout at the profile's
// raster density.
func (r *MarotoRenderer) Render(_ context.Context, l render.Layout, profile render.ScaleProfile) ([]byte, error) {
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		// Preview targets stay light; print/export keep full fidelity.
		WithCompression(profile.Factor < 1).
		WithTitle(l.Title+" "+l.DocumentID, true)

	if r.templatePath != "" {
		ext, err := templateExtension(r.templatePath)
		if err != nil {
			return nil, err
		}
		// Equivalent of waiting for the template image to load: read it fully
		// before rasterizing anything on top of it.
		tpl, err := os.ReadFile(r.templatePath)
		if err != nil {
			return nil, fmt.Errorf("pdf: background template %s: %w", r.templatePath, err)
		}
		builder = builder.WithBackgroundImage(tpl, ext)
	}

	m := maroto.New(builder.Build())

	m.AddRows(headerRow(l))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(l))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, tr := range tableRows(l.Table) {
		m.AddRows(tr)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(l.Totals))

	m.AddRows(row.New(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, fr := range footerRows(l) {
		m.AddRows(fr)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func templateExtension(path string) (extension.Type, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".png"):
		return extension.Png, nil
	case strings.HasSuffix(strings.ToLower(path), ".jpg"), strings.HasSuffix(strings.ToLower(path), ".jpeg"):
		return extension.Jpg, nil
	}
	return "", fmt.Errorf("pdf: unsupported template image %s", path)
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: seller identity left, document title + IDs right.
func headerRow(l render.Layout) core.Row {
	return row.New(22).Add(
		col.New(7).Add(
			text.New(l.Seller.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("VAT: "+l.Seller.VATNumber, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New(l.Seller.Address, props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(l.Title, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(l.DocumentID, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 8,
			}),
			text.New("Date: "+l.IssueDate, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
			text.New(l.DueLabel+": "+l.DueDate, props.Text{
				Size: 8, Align: align.Right, Top: 18, Color: colorGray,
			}),
		),
	)
}

// partiesRow: customer block left, vehicle metadata right.
func partiesRow(l render.Layout) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(l.Customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("VAT: %s   |   %s   |   %s",
				nonEmpty(l.Customer.VATNumber, "-"),
				nonEmpty(l.Customer.Phone, "-"),
				nonEmpty(l.Customer.Email, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("VEHICLE / REFERENCE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(l.Vehicle, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: item table header on the primary color band.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("#", 1, align.Center),
		h("Item", 5, align.Left),
		h("Qty", 1, align.Center),
		h("Unit Price", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableRows: one row per visible line plus the overflow marker. Rows beyond
// the vertical band were already truncated by the layout.
func tableRows(t render.TableBlock) []core.Row {
	result := make([]core.Row, 0, len(t.Rows)+1)
	for _, r := range t.Rows {
		mr := row.New(7)
		if r.Shaded {
			mr = mr.WithStyle(&props.Cell{BackgroundColor: colorShade})
		}
		result = append(result, mr.Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", r.Index),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				r.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				r.Quantity,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				r.UnitPrice,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				r.Total,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	if t.Truncated > 0 {
		result = append(result, row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("... and %d more item(s) not shown", t.Truncated), props.Text{
				Size: 7.5, Align: align.Center, Color: colorGray, Top: 1,
			}),
		)))
	}
	return result
}

// totalsRow: right-aligned totals column.
func totalsRow(t render.TotalsBlock) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	labels := []core.Component{label("Subtotal:"), label("Discount (" + t.DiscountPct + "):")}
	values := []core.Component{value(t.SubTotal), value(t.Discount)}
	if t.TaxLabel != "" {
		labels = append(labels, label(t.TaxLabel+":"))
		values = append(values, value(t.Tax))
	}
	labels = append(labels, grandLabel("TOTAL:"))
	values = append(values, grandValue(t.Total))

	return row.New(28).Add(
		col.New(5),
		col.New(4).Add(labels...),
		col.New(3).Add(values...),
	)
}

// footerRows: notes, QR verification code and status.
func footerRows(l render.Layout) []core.Row {
	rows := []core.Row{}

	if l.Notes != "" {
		rows = append(rows,
			row.New(5).Add(col.New(12).Add(
				text.New("NOTES & TERMS", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
			)),
			row.New(10).Add(col.New(12).Add(
				text.New(l.Notes, props.Text{Size: 8, Color: colorGray, Top: 1}),
			)),
		)
	}

	rows = append(rows, row.New(32).Add(
		col.New(3).Add(code.NewQr(l.Verification, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Scan to verify this document.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Status: "+l.Status, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 14, Left: 3, Color: colorPrimary,
			}),
		),
	))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
