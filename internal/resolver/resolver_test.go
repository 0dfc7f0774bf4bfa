package resolver

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agilomatrix/label-generator/internal/config"
	"github.com/agilomatrix/label-generator/internal/types"
)

var standardFields = []types.CanonicalField{
	types.FieldDocumentDate,
	types.FieldASNNo,
	types.FieldPartNo,
	types.FieldDescription,
	types.FieldQuantity,
	types.FieldNetWeight,
	types.FieldGrossWeight,
	types.FieldShipperID,
	types.FieldShipperName,
}

func newResolver(mapping types.ColumnMapping) *Resolver {
	return New(mapping, config.Default().FieldRules(), standardFields)
}

func TestFieldReturnsMappedCellValue(t *testing.T) {
	r := newResolver(types.ColumnMapping{types.FieldPartNo: "Part No"})
	rec := types.Record{"Part No": types.TextValue("AB-1234")}

	assert.Equal(t, "AB-1234", r.Field(rec, types.FieldPartNo, 1))
}

func TestFieldTrimsWhitespace(t *testing.T) {
	r := newResolver(types.ColumnMapping{types.FieldQuantity: "Qty"})
	rec := types.Record{"Qty": types.TextValue("  25  ")}

	assert.Equal(t, "25", r.Field(rec, types.FieldQuantity, 1))
}

func TestFieldUnmappedUsesDefault(t *testing.T) {
	r := newResolver(types.ColumnMapping{})
	rec := types.Record{}

	assert.Equal(t, "1", r.Field(rec, types.FieldQuantity, 1))
	assert.Equal(t, "480", r.Field(rec, types.FieldNetWeight, 1))
	assert.Equal(t, "500", r.Field(rec, types.FieldGrossWeight, 1))
	assert.Equal(t, "V12345", r.Field(rec, types.FieldShipperID, 1))
}

func TestFieldEmptyCellUsesDefault(t *testing.T) {
	r := newResolver(types.ColumnMapping{types.FieldQuantity: "Qty"})
	rec := types.Record{"Qty": types.TextValue("   ")}

	assert.Equal(t, "1", r.Field(rec, types.FieldQuantity, 1))
}

func TestFieldBlankAllowedResolvesEmpty(t *testing.T) {
	r := newResolver(types.ColumnMapping{})

	// The ASN field permits blanks: no column and no value means an
	// empty display string, not a substituted default.
	assert.Equal(t, "", r.Field(types.Record{}, types.FieldASNNo, 1))

	r = newResolver(types.ColumnMapping{types.FieldASNNo: "ASN"})
	rec := types.Record{"ASN": types.TextValue("")}
	assert.Equal(t, "", r.Field(rec, types.FieldASNNo, 1))
}

func TestFieldRowPlaceholderInDefault(t *testing.T) {
	r := newResolver(types.ColumnMapping{})

	assert.Equal(t, "PART1", r.Field(types.Record{}, types.FieldPartNo, 1))
	assert.Equal(t, "PART7", r.Field(types.Record{}, types.FieldPartNo, 7))
	assert.Equal(t, "PART120", r.Field(types.Record{}, types.FieldPartNo, 120))
}

func TestFieldFormatsDates(t *testing.T) {
	r := newResolver(types.ColumnMapping{types.FieldDocumentDate: "Date"})
	rec := types.Record{"Date": {
		Kind: types.ValueDate,
		Text: "2024-07-11",
		Date: time.Date(2024, 7, 11, 0, 0, 0, 0, time.UTC),
	}}

	assert.Equal(t, "11-07-24", r.Field(rec, types.FieldDocumentDate, 1))
}

func TestFieldDateAsTextPassesThrough(t *testing.T) {
	// A cell that only looks like a date but was not classified as one
	// keeps its literal text form.
	r := newResolver(types.ColumnMapping{types.FieldDocumentDate: "Date"})
	rec := types.Record{"Date": types.TextValue("week 29")}

	assert.Equal(t, "week 29", r.Field(rec, types.FieldDocumentDate, 1))
}

func TestFieldTruncation(t *testing.T) {
	r := newResolver(types.ColumnMapping{
		types.FieldDescription: "Desc",
		types.FieldShipperName: "Vendor",
	})

	tests := []struct {
		name     string
		field    types.CanonicalField
		header   string
		input    string
		expected string
	}{
		{
			name:     "description at limit unchanged",
			field:    types.FieldDescription,
			header:   "Desc",
			input:    strings.Repeat("a", 25),
			expected: strings.Repeat("a", 25),
		},
		{
			name:     "description over limit cut to 22 plus ellipsis",
			field:    types.FieldDescription,
			header:   "Desc",
			input:    strings.Repeat("a", 30),
			expected: strings.Repeat("a", 22) + "...",
		},
		{
			name:     "shipper name at limit unchanged",
			field:    types.FieldShipperName,
			header:   "Vendor",
			input:    strings.Repeat("b", 15),
			expected: strings.Repeat("b", 15),
		},
		{
			name:     "shipper name over limit cut to 12 plus ellipsis",
			field:    types.FieldShipperName,
			header:   "Vendor",
			input:    strings.Repeat("b", 16),
			expected: strings.Repeat("b", 12) + "...",
		},
		{
			name:     "accented description under limit unchanged",
			field:    types.FieldDescription,
			header:   "Desc",
			input:    strings.Repeat("é", 20),
			expected: strings.Repeat("é", 20),
		},
		{
			name:     "accented description over limit cut on character boundary",
			field:    types.FieldDescription,
			header:   "Desc",
			input:    strings.Repeat("é", 30),
			expected: strings.Repeat("é", 22) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := types.Record{tt.header: types.TextValue(tt.input)}
			assert.Equal(t, tt.expected, r.Field(rec, tt.field, 1))
		})
	}
}

func TestResolveRowCoversAllTemplateFields(t *testing.T) {
	r := newResolver(types.ColumnMapping{types.FieldPartNo: "Part No"})
	rec := types.Record{"Part No": types.TextValue("AB-1234")}

	row := r.ResolveRow(rec, 3)

	assert.Len(t, row, len(standardFields))
	assert.Equal(t, "AB-1234", row[types.FieldPartNo])
	assert.Equal(t, "11-07-24", row[types.FieldDocumentDate])
	assert.Equal(t, "", row[types.FieldASNNo])
	assert.Equal(t, "1", row[types.FieldQuantity])
}

func TestFieldNumericCellKeepsSourceForm(t *testing.T) {
	r := newResolver(types.ColumnMapping{types.FieldNetWeight: "Net Wt"})
	rec := types.Record{"Net Wt": {Kind: types.ValueNumber, Text: "480.5"}}

	assert.Equal(t, "480.5", r.Field(rec, types.FieldNetWeight, 1))
}
