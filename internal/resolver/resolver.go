// =============================================================================
// Supplier Label Generator - Value Resolver Module
// =============================================================================
//
// This module turns raw table cells into the finished display strings a
// label carries. Resolution is a pure function of (row, mapping, rules) and
// is kept strictly separate from drawing so it is testable without a
// rendering backend.
//
// RESOLUTION RULES (in order):
//   1. Field has no mapped column      -> "" if blank-allowed, else default
//   2. Cell missing or empty after trim -> same as (1)
//   3. Cell is a calendar date          -> formatted as DD-MM-YY
//   4. Otherwise                        -> trimmed string form of the cell
//
// After resolution, the field's truncation rule is applied (description and
// shipper name have display-length limits on the standard template).
//
// Nothing here raises an error: malformed values fall back to their literal
// string form, and absent data falls back to defaults. Bad input is
// expected input.
//
// =============================================================================

package resolver

import (
	"strconv"
	"strings"

	"github.com/agilomatrix/label-generator/internal/config"
	"github.com/agilomatrix/label-generator/internal/types"
)

// DateFormat is the display format for calendar dates (DD-MM-YY).
const DateFormat = "02-01-06"

// rowPlaceholder in a default value is replaced with the 1-based row number,
// so defaults like "PART{row}" stay unique per label.
const rowPlaceholder = "{row}"

// Resolver resolves display values for the canonical fields of one table.
// It is read-only after construction and safe for concurrent use.
type Resolver struct {
	mapping types.ColumnMapping
	rules   map[types.CanonicalField]config.FieldRule
	fields  []types.CanonicalField
}

// New creates a Resolver for one table.
//
// PARAMETERS:
//   - mapping: The column mapping built once from the table headers.
//   - rules: The effective field rules (defaults, blank policy, truncation).
//   - fields: The canonical fields of the active label template.
func New(mapping types.ColumnMapping, rules map[types.CanonicalField]config.FieldRule, fields []types.CanonicalField) *Resolver {
	return &Resolver{
		mapping: mapping,
		rules:   rules,
		fields:  fields,
	}
}

// ResolveRow produces the display strings for all template fields of one
// row. rowNum is the 1-based row number, used for row-dependent defaults.
func (r *Resolver) ResolveRow(rec types.Record, rowNum int) types.ResolvedRow {
	resolved := make(types.ResolvedRow, len(r.fields))
	for _, field := range r.fields {
		resolved[field] = r.Field(rec, field, rowNum)
	}
	return resolved
}

// Field resolves the display string for a single canonical field.
// Every input produces a string; Field never fails.
func (r *Resolver) Field(rec types.Record, field types.CanonicalField, rowNum int) string {
	rule := r.rules[field]

	value, ok := r.lookup(rec, field)
	if !ok {
		return rule.Truncate.Apply(r.fallback(rule, rowNum))
	}

	var display string
	if value.Kind == types.ValueDate {
		display = value.Date.Format(DateFormat)
	} else {
		display = strings.TrimSpace(value.Text)
	}

	if display == "" {
		return rule.Truncate.Apply(r.fallback(rule, rowNum))
	}

	return rule.Truncate.Apply(display)
}

// lookup fetches the raw cell for a field's mapped column. The second
// return is false when the field is unmapped or the row has no such cell.
func (r *Resolver) lookup(rec types.Record, field types.CanonicalField) (types.Value, bool) {
	header := r.mapping[field]
	if header == "" {
		return types.Value{}, false
	}
	value, ok := rec[header]
	return value, ok
}

// fallback returns the blank-or-default value for a field with no usable
// cell, expanding the {row} placeholder.
func (r *Resolver) fallback(rule config.FieldRule, rowNum int) string {
	if rule.BlankAllowed {
		return ""
	}
	return strings.ReplaceAll(rule.Default, rowPlaceholder, strconv.Itoa(rowNum))
}
