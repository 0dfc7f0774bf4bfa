// =============================================================================
// Supplier Label Generator - Label Renderer Module
// =============================================================================
//
// This module draws resolved rows onto fixed-size PDF pages. It owns every
// drawing decision: outlined grid cells at absolute coordinates, bold
// captions versus regular values, the shared horizontal-centering rule,
// and vector barcode bars scaled into their reserved sub-rectangles.
//
// The renderer walks the static label geometry top to bottom with a
// vertical cursor, one row height per row. It draws only what it is given:
// value resolution happens upstream (resolver), symbol encoding happens
// upstream (barcode via the assembler). An empty value leaves its cell
// outlined but blank; a missing symbol for a non-empty value degrades to
// the literal text centered in the barcode area.
//
// PAGE BREAKS:
//   The first Page call starts the first page; every later call issues a
//   page break before drawing, so the document has exactly one page per
//   rendered row.
//
// =============================================================================

package render

import (
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/agilomatrix/label-generator/internal/barcode"
	"github.com/agilomatrix/label-generator/internal/layout"
	"github.com/agilomatrix/label-generator/internal/types"
)

// =============================================================================
// TEXT STYLES
// =============================================================================

// textStyle is one of the small fixed set of named text styles used on a
// label. Styles are data constructed once, not per-cell font fiddling.
type textStyle struct {
	family string
	weight string
	size   float64
}

var (
	// styleLabel is used for column captions and static header text.
	styleLabel = textStyle{family: "Helvetica", weight: "B", size: 11}

	// styleValue is used for field values.
	styleValue = textStyle{family: "Helvetica", weight: "", size: 11}

	// styleFallback is used for literal text standing in for an
	// unencodable barcode.
	styleFallback = textStyle{family: "Helvetica", weight: "", size: 9}
)

// Geometry constants shared by every text cell: the text baseline sits
// baselineDrop below the row's vertical midpoint; the two-line static
// header offsets its lines around the midpoint.
const (
	baselineDrop   = 0.15
	staticLineUp   = 0.15
	staticLineDown = 0.25
	borderWidth    = 0.035 // 1pt in cm
)

// =============================================================================
// RENDERER STRUCTURE
// =============================================================================

// Renderer draws label pages into one PDF document.
type Renderer struct {
	doc  *fpdf.Fpdf
	geom *layout.Geometry
}

// New creates a Renderer for the given label geometry. The underlying
// document uses the geometry's exact page size; nothing else about the
// page is configurable.
func New(geom *layout.Geometry) *Renderer {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "cm",
		Size:           fpdf.SizeType{Wd: geom.PageWidth, Ht: geom.PageHeight},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetDrawColor(0, 0, 0)
	doc.SetFillColor(0, 0, 0)

	return &Renderer{doc: doc, geom: geom}
}

// Page draws one complete label page from a resolved row.
//
// PARAMETERS:
//   - values: The display strings per canonical field.
//   - symbols: Pre-encoded barcode symbols per field. A field with a
//     non-empty value but no symbol entry is drawn as literal fallback
//     text in the barcode area; a field with an empty value draws nothing
//     there.
func (r *Renderer) Page(values types.ResolvedRow, symbols map[types.CanonicalField]*barcode.Symbol) {
	r.doc.AddPage()
	r.doc.SetLineWidth(borderWidth)

	y := r.geom.TopY
	for _, row := range r.geom.Rows {
		x := r.geom.MarginX
		for _, cell := range row.Cells {
			r.doc.Rect(x, y, cell.Width, row.Height, "D")
			r.drawCell(cell, x, y, row.Height, values, symbols)
			x += cell.Width
		}
		y += row.Height
	}
}

// drawCell dispatches on the cell kind. The cell border is already drawn.
func (r *Renderer) drawCell(cell layout.Cell, x, y, h float64, values types.ResolvedRow, symbols map[types.CanonicalField]*barcode.Symbol) {
	switch cell.Kind {
	case layout.CellStatic:
		r.drawStatic(cell, x, y, h)

	case layout.CellLabel:
		r.setStyle(styleLabel)
		r.centeredText(cell.Text[0], x, cell.Width, y+h/2+baselineDrop)

	case layout.CellValue:
		if v := values[cell.Field]; v != "" {
			r.setStyle(styleValue)
			r.centeredText(v, x, cell.Width, y+h/2+baselineDrop)
		}

	case layout.CellValueLeft:
		if v := values[cell.Field]; v != "" {
			r.setStyle(styleValue)
			r.doc.Text(x+r.geom.ValueIndent, y+h/2+baselineDrop, v)
		}

	case layout.CellBarcode:
		r.drawBarcodeCell(cell, x, y, h, values[cell.Field], symbols[cell.Field])
	}
}

// drawStatic draws the fixed header text. A single line sits on the
// standard baseline; two lines straddle the row midpoint.
func (r *Renderer) drawStatic(cell layout.Cell, x, y, h float64) {
	r.setStyle(styleLabel)
	mid := y + h/2

	if len(cell.Text) == 1 {
		r.centeredText(cell.Text[0], x, cell.Width, mid+baselineDrop)
		return
	}

	r.centeredText(cell.Text[0], x, cell.Width, mid-staticLineUp)
	r.centeredText(cell.Text[1], x, cell.Width, mid+staticLineDown)
}

// drawBarcodeCell fills the cell's inset sub-rectangle with the symbol's
// vector bars, or with centered fallback text when the value could not be
// encoded. A blank value leaves the sub-rectangle empty.
func (r *Renderer) drawBarcodeCell(cell layout.Cell, x, y, h float64, value string, sym *barcode.Symbol) {
	if strings.TrimSpace(value) == "" {
		return
	}

	inset := r.geom.BarcodeInset
	bx := x + inset
	by := y + inset
	bw := cell.Width - 2*inset
	bh := h - 2*inset

	if sym == nil {
		// Encoder signaled "not renderable": draw the literal value
		// centered in the symbol's target area instead.
		r.setStyle(styleFallback)
		r.centeredText(value, bx, bw, by+bh/2+baselineDrop)
		return
	}

	moduleWidth := bw / float64(sym.TotalModules())
	cx := bx + float64(barcode.QuietZone)*moduleWidth
	for i, m := range sym.Modules {
		w := float64(m) * moduleWidth
		if i%2 == 0 {
			r.doc.Rect(cx, by, w, bh, "F")
		}
		cx += w
	}
}

// =============================================================================
// SHARED TEXT PLACEMENT
// =============================================================================

// centeredText is the single place horizontal text placement is computed:
// the string is measured in the active font and offset so its midpoint
// aligns with the midpoint of the given span.
func (r *Renderer) centeredText(text string, x, width, baselineY float64) {
	w := r.doc.GetStringWidth(text)
	r.doc.Text(x+width/2-w/2, baselineY, text)
}

// setStyle activates one of the named text styles.
func (r *Renderer) setStyle(s textStyle) {
	r.doc.SetFont(s.family, s.weight, s.size)
}

// =============================================================================
// DOCUMENT OUTPUT
// =============================================================================

// PageCount returns the number of pages drawn so far.
func (r *Renderer) PageCount() int {
	return r.doc.PageCount()
}

// Err returns the document's sticky error, if any drawing call failed.
func (r *Renderer) Err() error {
	if r.doc.Ok() {
		return nil
	}
	return r.doc.Error()
}

// Output finalizes the document and writes the PDF bytes. A failure here
// is fatal for the whole document; no partial output is produced.
func (r *Renderer) Output(w io.Writer) error {
	return r.doc.Output(w)
}
