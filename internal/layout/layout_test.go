package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agilomatrix/label-generator/internal/types"
)

func TestByID(t *testing.T) {
	std, err := ByID("standard")
	require.NoError(t, err)
	assert.Equal(t, &Standard, std)

	wide, err := ByID("wide")
	require.NoError(t, err)
	assert.Equal(t, &Wide, wide)

	_, err = ByID("a6")
	assert.Error(t, err)
}

func TestStandardGeometry(t *testing.T) {
	assert.Equal(t, 10.0, Standard.PageWidth)
	assert.Equal(t, 15.0, Standard.PageHeight)
	assert.Len(t, Standard.Fields, 9)
	assert.Len(t, Standard.Rows, 7)
}

func TestWideGeometry(t *testing.T) {
	assert.Equal(t, 18.0, Wide.PageWidth)
	assert.Equal(t, 12.0, Wide.PageHeight)
	assert.Len(t, Wide.Fields, 9)
	assert.Len(t, Wide.Rows, 8)
}

func TestBarcodeFields(t *testing.T) {
	expected := []types.CanonicalField{
		types.FieldASNNo,
		types.FieldPartNo,
		types.FieldQuantity,
	}

	assert.Equal(t, expected, Standard.BarcodeFields())
	assert.Equal(t, expected, Wide.BarcodeFields())
}

func TestRowsFitThePage(t *testing.T) {
	for _, geom := range []*Geometry{&Standard, &Wide} {
		t.Run(geom.ID, func(t *testing.T) {
			// Every row's cells must span the same width, and the grid
			// must fit inside the page on both axes.
			var gridWidth float64
			for i, cell := range geom.Rows[0].Cells {
				require.Greater(t, cell.Width, 0.0, "row 0 cell %d", i)
				gridWidth += cell.Width
			}
			assert.LessOrEqual(t, geom.MarginX+gridWidth, geom.PageWidth)

			totalHeight := geom.TopY
			for r, row := range geom.Rows {
				require.Greater(t, row.Height, 0.0, "row %d", r)
				totalHeight += row.Height

				var width float64
				for _, cell := range row.Cells {
					width += cell.Width
				}
				assert.InDelta(t, gridWidth, width, 1e-9, "row %d width", r)
			}
			assert.LessOrEqual(t, totalHeight, geom.PageHeight)
		})
	}
}

func TestValueCellsNameTemplateFields(t *testing.T) {
	for _, geom := range []*Geometry{&Standard, &Wide} {
		t.Run(geom.ID, func(t *testing.T) {
			inTemplate := make(map[types.CanonicalField]bool, len(geom.Fields))
			for _, f := range geom.Fields {
				inTemplate[f] = true
			}

			covered := make(map[types.CanonicalField]bool)
			for _, row := range geom.Rows {
				for _, cell := range row.Cells {
					switch cell.Kind {
					case CellValue, CellValueLeft, CellBarcode:
						assert.True(t, inTemplate[cell.Field], "cell field %s not in template fields", cell.Field)
						covered[cell.Field] = true
					default:
						assert.NotEmpty(t, cell.Text, "static cell without text")
					}
				}
			}

			// Every template field appears in the grid.
			for _, f := range geom.Fields {
				assert.True(t, covered[f], "field %s has no cell", f)
			}
		})
	}
}
