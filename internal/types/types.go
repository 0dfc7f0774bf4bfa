// =============================================================================
// Supplier Label Generator - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - tableparser
//   - colmap
//   - resolver
//   - render
//   - assembler
//
// =============================================================================

package types

import "time"

// =============================================================================
// CANONICAL FIELDS
// =============================================================================

// CanonicalField identifies one of the fixed semantic slots a label presents,
// independent of how the source spreadsheet names its columns.
type CanonicalField string

const (
	FieldDocumentDate CanonicalField = "document_date"
	FieldASNNo        CanonicalField = "asn_no"
	FieldPartNo       CanonicalField = "part_no"
	FieldDescription  CanonicalField = "description"
	FieldQuantity     CanonicalField = "quantity"
	FieldNetWeight    CanonicalField = "net_weight"
	FieldGrossWeight  CanonicalField = "gross_weight"
	FieldShipperID    CanonicalField = "shipper_id"
	FieldShipperName  CanonicalField = "shipper_name"

	// Fields used by the wide label template in place of shipper id/name.
	FieldShipper  CanonicalField = "shipper"
	FieldReceiver CanonicalField = "receiver"
)

// =============================================================================
// CELL VALUES
// =============================================================================

// ValueKind describes the scalar type a cell held in the source table.
type ValueKind int

const (
	// ValueText is a plain text cell.
	ValueText ValueKind = iota

	// ValueNumber is a numeric cell. Text holds the string form as it
	// appeared in the source.
	ValueNumber

	// ValueDate is a calendar date cell. Date holds the parsed value.
	ValueDate
)

// Value is a single cell value from the source table.
type Value struct {
	// Kind is the scalar type of the cell.
	Kind ValueKind

	// Text is the trimmed string form of the cell. Always set.
	Text string

	// Date is the parsed date. Only valid when Kind is ValueDate.
	Date time.Time
}

// TextValue returns a plain text Value.
func TextValue(s string) Value {
	return Value{Kind: ValueText, Text: s}
}

// =============================================================================
// TABLE
// =============================================================================

// Record is one row of the source table, keyed by header name.
type Record map[string]Value

// Table is the parsed source table. Header order and row order are
// preserved from the source file; row order is the output page order.
type Table struct {
	// Headers contains the column headers in their original left-to-right
	// order, each trimmed. Duplicate headers keep the first occurrence.
	Headers []string

	// Records contains the data rows in source order.
	Records []Record

	// SourceFile is the path to the source file, for error reporting.
	SourceFile string
}

// =============================================================================
// MAPPING AND RESOLUTION RESULTS
// =============================================================================

// ColumnMapping is the resolved correspondence between canonical fields and
// source headers for one table. A missing or empty entry means the field has
// no matching column and resolves via its default/blank policy.
//
// A ColumnMapping is built once per table and must not be modified after
// construction; it is safely shared across concurrent row resolution.
type ColumnMapping map[CanonicalField]string

// ResolvedRow maps each canonical field to its finished display string for
// one row. Built per row, never shared across rows.
type ResolvedRow map[CanonicalField]string
