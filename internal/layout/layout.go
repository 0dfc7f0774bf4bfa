// =============================================================================
// Supplier Label Generator - Label Geometry Module
// =============================================================================
//
// This module holds the static grid geometry for each label template. A
// geometry is pure data: page dimensions plus a fixed sequence of rows,
// each row a sequence of cells with explicit widths and a content kind.
// The renderer walks this data with a vertical cursor; nothing in a
// geometry is ever constructed from input, and nothing is mutated per row.
//
// Both templates share one abstraction. Adding a template means adding a
// geometry value, not a code path.
//
// All dimensions are in centimeters.
//
// =============================================================================

package layout

import (
	"fmt"

	"github.com/agilomatrix/label-generator/internal/types"
)

// =============================================================================
// CELL AND ROW STRUCTURES
// =============================================================================

// CellKind describes what a grid cell contains.
type CellKind int

const (
	// CellStatic is fixed bold text, one line per Text entry, such as the
	// organization header.
	CellStatic CellKind = iota

	// CellLabel is a bold column caption ("Part No", "Quantity", ...).
	CellLabel

	// CellValue is a field value, horizontally centered.
	CellValue

	// CellValueLeft is a field value drawn left-aligned (description).
	CellValueLeft

	// CellBarcode reserves a sub-rectangle for the field's barcode symbol.
	CellBarcode
)

// Cell is one outlined rectangle of the label grid.
type Cell struct {
	// Width is the cell width in cm.
	Width float64

	// Kind selects how the cell content is drawn.
	Kind CellKind

	// Field is the canonical field whose value the cell shows.
	// Unset for static and label cells.
	Field types.CanonicalField

	// Text holds the literal lines of static and label cells.
	Text []string
}

// Row is one horizontal band of the grid.
type Row struct {
	// Height is the row height in cm.
	Height float64

	// Cells are drawn left to right starting at the page's left margin.
	Cells []Cell
}

// =============================================================================
// GEOMETRY STRUCTURE
// =============================================================================

// Geometry is the full static layout of one label template.
type Geometry struct {
	// ID is the template identifier ("standard", "wide").
	ID string

	// PageWidth and PageHeight are the fixed page dimensions in cm.
	PageWidth  float64
	PageHeight float64

	// MarginX is the left edge of the grid.
	MarginX float64

	// TopY is the top edge of the first row.
	TopY float64

	// BarcodeInset is the margin between a barcode cell's border and the
	// symbol's sub-rectangle, applied on all four sides.
	BarcodeInset float64

	// ValueIndent is the left indent of left-aligned value cells.
	ValueIndent float64

	// Fields lists the canonical fields this template presents.
	Fields []types.CanonicalField

	// Rows is the grid, in top-to-bottom drawing order.
	Rows []Row
}

// BarcodeFields returns the fields that have a barcode cell in this
// geometry, in drawing order.
func (g *Geometry) BarcodeFields() []types.CanonicalField {
	var fields []types.CanonicalField
	for _, row := range g.Rows {
		for _, cell := range row.Cells {
			if cell.Kind == CellBarcode {
				fields = append(fields, cell.Field)
			}
		}
	}
	return fields
}

// ByID returns the geometry for a template identifier.
func ByID(id string) (*Geometry, error) {
	switch id {
	case Standard.ID:
		return &Standard, nil
	case Wide.ID:
		return &Wide, nil
	default:
		return nil, fmt.Errorf("unknown label template %q", id)
	}
}

// =============================================================================
// STANDARD TEMPLATE (10cm x 15cm)
// =============================================================================

// Standard is the nine-field 10x15 supplier label: organization header and
// date, then ASN, part number and quantity rows with barcodes, the
// description band, net/gross weights side by side, and the shipper row.
var Standard = Geometry{
	ID:           "standard",
	PageWidth:    10,
	PageHeight:   15,
	MarginX:      0.5,
	TopY:         0.5,
	BarcodeInset: 0.1,
	ValueIndent:  0.2,
	Fields: []types.CanonicalField{
		types.FieldDocumentDate,
		types.FieldASNNo,
		types.FieldPartNo,
		types.FieldDescription,
		types.FieldQuantity,
		types.FieldNetWeight,
		types.FieldGrossWeight,
		types.FieldShipperID,
		types.FieldShipperName,
	},
	Rows: []Row{
		{Height: 1.0, Cells: []Cell{
			{Width: 5.5, Kind: CellStatic, Text: []string{"Pinnacle Mobility Solutions", "Pvt. Ltd."}},
			{Width: 1.4, Kind: CellLabel, Text: []string{"Date"}},
			{Width: 2.3, Kind: CellValue, Field: types.FieldDocumentDate},
		}},
		{Height: 1.0, Cells: []Cell{
			{Width: 2.5, Kind: CellLabel, Text: []string{"ASN No"}},
			{Width: 3.0, Kind: CellValue, Field: types.FieldASNNo},
			{Width: 3.7, Kind: CellBarcode, Field: types.FieldASNNo},
		}},
		{Height: 1.0, Cells: []Cell{
			{Width: 2.5, Kind: CellLabel, Text: []string{"Part No"}},
			{Width: 3.0, Kind: CellValue, Field: types.FieldPartNo},
			{Width: 3.7, Kind: CellBarcode, Field: types.FieldPartNo},
		}},
		{Height: 1.0, Cells: []Cell{
			{Width: 2.5, Kind: CellLabel, Text: []string{"Description"}},
			{Width: 6.7, Kind: CellValueLeft, Field: types.FieldDescription},
		}},
		{Height: 1.0, Cells: []Cell{
			{Width: 2.5, Kind: CellLabel, Text: []string{"Quantity"}},
			{Width: 3.0, Kind: CellValue, Field: types.FieldQuantity},
			{Width: 3.7, Kind: CellBarcode, Field: types.FieldQuantity},
		}},
		{Height: 1.0, Cells: []Cell{
			{Width: 2.5, Kind: CellLabel, Text: []string{"Net Wt"}},
			{Width: 2.1, Kind: CellValue, Field: types.FieldNetWeight},
			{Width: 2.5, Kind: CellLabel, Text: []string{"Gross Wt"}},
			{Width: 2.1, Kind: CellValue, Field: types.FieldGrossWeight},
		}},
		{Height: 1.0, Cells: []Cell{
			{Width: 2.5, Kind: CellLabel, Text: []string{"Shipper"}},
			{Width: 2.5, Kind: CellValue, Field: types.FieldShipperID},
			{Width: 4.2, Kind: CellValue, Field: types.FieldShipperName},
		}},
	},
}

// =============================================================================
// WIDE TEMPLATE (18cm x 12cm)
// =============================================================================

// Wide is the landscape variant used where the label pocket is wider than
// tall. It carries the same first seven fields plus full-width shipper and
// receiver bands in place of the shipper id/name pair.
var Wide = Geometry{
	ID:           "wide",
	PageWidth:    18,
	PageHeight:   12,
	MarginX:      0.5,
	TopY:         0.5,
	BarcodeInset: 0.1,
	ValueIndent:  0.2,
	Fields: []types.CanonicalField{
		types.FieldDocumentDate,
		types.FieldASNNo,
		types.FieldPartNo,
		types.FieldDescription,
		types.FieldQuantity,
		types.FieldNetWeight,
		types.FieldGrossWeight,
		types.FieldShipper,
		types.FieldReceiver,
	},
	Rows: []Row{
		{Height: 1.2, Cells: []Cell{
			{Width: 9.0, Kind: CellStatic, Text: []string{"Pinnacle Mobility Solutions", "Pvt. Ltd."}},
			{Width: 3.0, Kind: CellLabel, Text: []string{"Date"}},
			{Width: 5.0, Kind: CellValue, Field: types.FieldDocumentDate},
		}},
		{Height: 1.2, Cells: []Cell{
			{Width: 4.0, Kind: CellLabel, Text: []string{"ASN No"}},
			{Width: 5.5, Kind: CellValue, Field: types.FieldASNNo},
			{Width: 7.5, Kind: CellBarcode, Field: types.FieldASNNo},
		}},
		{Height: 1.2, Cells: []Cell{
			{Width: 4.0, Kind: CellLabel, Text: []string{"Part No"}},
			{Width: 5.5, Kind: CellValue, Field: types.FieldPartNo},
			{Width: 7.5, Kind: CellBarcode, Field: types.FieldPartNo},
		}},
		{Height: 1.2, Cells: []Cell{
			{Width: 4.0, Kind: CellLabel, Text: []string{"Description"}},
			{Width: 13.0, Kind: CellValueLeft, Field: types.FieldDescription},
		}},
		{Height: 1.2, Cells: []Cell{
			{Width: 4.0, Kind: CellLabel, Text: []string{"Quantity"}},
			{Width: 5.5, Kind: CellValue, Field: types.FieldQuantity},
			{Width: 7.5, Kind: CellBarcode, Field: types.FieldQuantity},
		}},
		{Height: 1.2, Cells: []Cell{
			{Width: 4.0, Kind: CellLabel, Text: []string{"Net Wt"}},
			{Width: 4.5, Kind: CellValue, Field: types.FieldNetWeight},
			{Width: 4.0, Kind: CellLabel, Text: []string{"Gross Wt"}},
			{Width: 4.5, Kind: CellValue, Field: types.FieldGrossWeight},
		}},
		{Height: 1.2, Cells: []Cell{
			{Width: 4.0, Kind: CellLabel, Text: []string{"Shipper"}},
			{Width: 13.0, Kind: CellValue, Field: types.FieldShipper},
		}},
		{Height: 1.2, Cells: []Cell{
			{Width: 4.0, Kind: CellLabel, Text: []string{"Receiver"}},
			{Width: 13.0, Kind: CellValue, Field: types.FieldReceiver},
		}},
	},
}
