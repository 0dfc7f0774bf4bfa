package render

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agilomatrix/label-generator/internal/barcode"
	"github.com/agilomatrix/label-generator/internal/layout"
	"github.com/agilomatrix/label-generator/internal/types"
)

func sampleValues() types.ResolvedRow {
	return types.ResolvedRow{
		types.FieldDocumentDate: "11-07-24",
		types.FieldASNNo:        "ASN123",
		types.FieldPartNo:       "P100",
		types.FieldDescription:  "Brake cable assembly",
		types.FieldQuantity:     "5",
		types.FieldNetWeight:    "480",
		types.FieldGrossWeight:  "500",
		types.FieldShipperID:    "V12345",
		types.FieldShipperName:  "Acme Parts",
	}
}

func sampleSymbols(t *testing.T, values types.ResolvedRow) map[types.CanonicalField]*barcode.Symbol {
	t.Helper()
	symbols := make(map[types.CanonicalField]*barcode.Symbol)
	for _, field := range layout.Standard.BarcodeFields() {
		if values[field] == "" {
			continue
		}
		sym, err := barcode.Encode(values[field])
		require.NoError(t, err)
		symbols[field] = sym
	}
	return symbols
}

func output(t *testing.T, r *Renderer) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Output(&buf))
	return buf.Bytes()
}

func TestPageProducesOnePage(t *testing.T) {
	r := New(&layout.Standard)
	values := sampleValues()

	r.Page(values, sampleSymbols(t, values))

	assert.Equal(t, 1, r.PageCount())
	require.NoError(t, r.Err())

	pdf := output(t, r)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Contains(t, string(pdf), "/Count 1")
}

func TestEveryPageCallAddsAPage(t *testing.T) {
	r := New(&layout.Standard)
	values := sampleValues()
	symbols := sampleSymbols(t, values)

	for i := 0; i < 3; i++ {
		r.Page(values, symbols)
	}

	assert.Equal(t, 3, r.PageCount())
	assert.Contains(t, string(output(t, r)), "/Count 3")
}

func TestBlankASNDrawsNoBarcodeOrText(t *testing.T) {
	// A blank value draws neither value text nor a symbol; the page still
	// renders cleanly with its empty outlined cells.
	values := sampleValues()
	values[types.FieldASNNo] = ""

	r := New(&layout.Standard)
	r.Page(values, sampleSymbols(t, values))

	assert.Equal(t, 1, r.PageCount())
	require.NoError(t, r.Err())
	assert.NotEmpty(t, output(t, r))
}

func TestMissingSymbolFallsBackToText(t *testing.T) {
	// A non-empty value with no symbol entry renders as literal text in
	// the barcode area instead of failing the page.
	values := sampleValues()
	r := New(&layout.Standard)

	r.Page(values, nil)

	assert.Equal(t, 1, r.PageCount())
	require.NoError(t, r.Err())
	assert.NotEmpty(t, output(t, r))
}

func TestWideTemplateRenders(t *testing.T) {
	values := types.ResolvedRow{
		types.FieldDocumentDate: "11-07-24",
		types.FieldASNNo:        "ASN123",
		types.FieldPartNo:       "P100",
		types.FieldDescription:  "Brake cable assembly",
		types.FieldQuantity:     "5",
		types.FieldNetWeight:    "480",
		types.FieldGrossWeight:  "500",
		types.FieldShipper:      "Acme Parts Pvt. Ltd.",
		types.FieldReceiver:     "Pinnacle Mobility Solutions",
	}

	r := New(&layout.Wide)
	r.Page(values, sampleSymbols(t, values))

	assert.Equal(t, 1, r.PageCount())
	require.NoError(t, r.Err())
	assert.NotEmpty(t, output(t, r))
}

func TestLongRunOfPages(t *testing.T) {
	r := New(&layout.Standard)
	symbols := sampleSymbols(t, sampleValues())

	const pages = 40
	for i := 0; i < pages; i++ {
		values := sampleValues()
		values[types.FieldPartNo] = fmt.Sprintf("P%03d", i)
		r.Page(values, symbols)
	}

	assert.Equal(t, pages, r.PageCount())
	assert.Contains(t, string(output(t, r)), fmt.Sprintf("/Count %d", pages))
}
