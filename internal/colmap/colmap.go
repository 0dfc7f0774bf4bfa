// =============================================================================
// Supplier Label Generator - Column Mapper Module
// =============================================================================
//
// This module resolves the correspondence between canonical label fields and
// the actual column headers of an uploaded table. Supplier spreadsheets name
// their columns inconsistently ("Part No", "PART_NO", "PartNumber", ...), so
// detection is keyword-driven rather than exact:
//
//   For each canonical field, keywords are scanned in their configured
//   order; for each keyword, headers are scanned in their original
//   left-to-right order; the first header whose upper-cased form contains
//   the upper-cased keyword as a substring is selected and the scan for
//   that field stops. A field with no match maps to nothing, which is the
//   normal "use default" path, not an error.
//
// Fields do not compete: the same header may be selected for more than one
// field when keyword lists overlap (a header named "ID" can feed both a
// generic id field and shipper_id). This is accepted behavior.
//
// =============================================================================

package colmap

import (
	"strings"

	"github.com/agilomatrix/label-generator/internal/config"
	"github.com/agilomatrix/label-generator/internal/types"
)

// Resolve builds the column mapping for one table.
//
// PARAMETERS:
//   - headers: The column headers in their original left-to-right order.
//   - rules: The effective field rules carrying the ordered keyword lists.
//
// RETURNS:
//   - A ColumnMapping with an entry for every field that matched a header.
//     Fields without a match have no entry.
//
// The result is deterministic: the same headers and rules always produce
// the same mapping. Resolve never fails.
func Resolve(headers []string, rules map[types.CanonicalField]config.FieldRule) types.ColumnMapping {
	// Uppercase the headers once; every keyword comparison reuses them.
	upper := make([]string, len(headers))
	for i, h := range headers {
		upper[i] = strings.ToUpper(strings.TrimSpace(h))
	}

	mapping := make(types.ColumnMapping, len(rules))

	for field, rule := range rules {
		if header, ok := match(headers, upper, rule.Keywords); ok {
			mapping[field] = header
		}
	}

	return mapping
}

// match scans keywords in order and headers left to right, returning the
// first header containing a keyword.
func match(headers, upper []string, keywords []string) (string, bool) {
	for _, keyword := range keywords {
		kw := strings.ToUpper(strings.TrimSpace(keyword))
		if kw == "" {
			continue
		}
		for i, h := range upper {
			if strings.Contains(h, kw) {
				return headers[i], true
			}
		}
	}
	return "", false
}
