// =============================================================================
// Supplier Label Generator - Table Parser Module
// =============================================================================
//
// This module parses spreadsheet files from supplier shipping systems into
// the in-memory Table the label pipeline consumes. Two formats are
// supported:
//   - CSV  (configurable delimiter)
//   - XLSX (first sheet)
//
// Both parsers produce the same shape: trimmed headers in their original
// left-to-right order, and one Record per non-blank data row, in source
// order. Cell values are classified as text, number, or calendar date so
// the resolver can apply date formatting.
//
// =============================================================================

package tableparser

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/agilomatrix/label-generator/internal/config"
	"github.com/agilomatrix/label-generator/internal/types"
)

// Parse reads a spreadsheet file, dispatching on the file extension.
//
// PARAMETERS:
//   - path: The path to the input file (.csv, .xlsx, .xlsm).
//   - settings: CSV parsing settings; ignored for XLSX input.
//
// RETURNS:
//   - The parsed Table.
//   - An error if the format is unsupported or the file cannot be parsed.
func Parse(path string, settings config.CSVSettings) (*types.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ParseCSV(path, settings)
	case ".xlsx", ".xlsm":
		return ParseXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
}

// =============================================================================
// SHARED ROW HANDLING
// =============================================================================

// dateLayouts are the layouts a text cell must match to be classified as a
// calendar date. Only unambiguous forms are attempted; anything else stays
// a literal string rather than risking a misread.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
}

// classify turns a raw cell string into a typed Value.
func classify(raw string) types.Value {
	text := strings.TrimSpace(raw)
	if text == "" {
		return types.TextValue("")
	}

	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, text); err == nil {
			return types.Value{Kind: types.ValueDate, Text: text, Date: d}
		}
	}

	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return types.Value{Kind: types.ValueNumber, Text: text}
	}

	return types.TextValue(text)
}

// buildTable assembles a Table from raw header and data rows. Headers are
// trimmed; a duplicate header keeps its first column and later columns
// with the same name are ignored. Blank rows are skipped.
func buildTable(source string, headerRow []string, dataRows [][]string) *types.Table {
	headers := make([]string, 0, len(headerRow))
	seen := make(map[string]bool, len(headerRow))

	// columnHeader[i] is the header owning column i, or "" for ignored
	// duplicate columns.
	columnHeader := make([]string, len(headerRow))
	for i, h := range headerRow {
		h = strings.TrimSpace(h)
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		headers = append(headers, h)
		columnHeader[i] = h
	}

	table := &types.Table{
		Headers:    headers,
		SourceFile: source,
	}

	for _, row := range dataRows {
		if isBlank(row) {
			continue
		}
		rec := make(types.Record, len(headers))
		for i, cell := range row {
			if i >= len(columnHeader) || columnHeader[i] == "" {
				continue
			}
			rec[columnHeader[i]] = classify(cell)
		}
		table.Records = append(table.Records, rec)
	}

	return table
}

// isBlank reports whether a row contains only empty cells.
func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
