// =============================================================================
// Supplier Label Generator - XLSX Parser
// =============================================================================
//
// XLSX input handling via excelize. Data is taken from the first sheet.
// Cell values arrive as their formatted string forms, which for date cells
// depend on the workbook's display format (often 2-digit-year forms the
// shared text classification would leave as literals). Date cells are
// therefore detected from their raw serial values: a cell whose raw form
// is a serial number displayed as something other than a plain number is a
// formatted date, and its serial converts to the calendar date directly.
// Everything else goes through the same text/number classification as CSV
// cells, so both input paths feed identical Tables into the pipeline.
//
// =============================================================================

package tableparser

import (
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/agilomatrix/label-generator/internal/types"
)

// ParseXLSX reads the first sheet of an XLSX workbook into a Table.
//
// PARAMETERS:
//   - path: The path to the XLSX file.
//
// RETURNS:
//   - The parsed Table. The first non-blank row is the header row.
//   - An error if the file cannot be opened or read.
func ParseXLSX(path string) (*types.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	rawRows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	headerIdx := -1
	for i, row := range rows {
		if !isBlank(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, fmt.Errorf("no header row found in %s", path)
	}

	normalizeDateCells(rows[headerIdx+1:], rawRows[headerIdx+1:])

	return buildTable(path, rows[headerIdx], rows[headerIdx+1:]), nil
}

// normalizeDateCells rewrites formatted date cells to their ISO form so the
// shared cell classification tags them as dates regardless of the
// workbook's display format.
func normalizeDateCells(rows, rawRows [][]string) {
	for i := range rows {
		if i >= len(rawRows) {
			return
		}
		for j := range rows[i] {
			if j >= len(rawRows[i]) {
				break
			}
			if d, ok := dateFromSerial(rawRows[i][j], rows[i][j]); ok {
				rows[i][j] = d.Format("2006-01-02")
			}
		}
	}
}

// dateFromSerial reports whether a cell holds a formatted date, judged from
// its raw serial value. A date cell's raw form is a number while its
// display form is not; a plain numeric cell displays as a number even when
// a format changes its digits.
func dateFromSerial(raw, formatted string) (time.Time, bool) {
	if raw == formatted || raw == "" {
		return time.Time{}, false
	}
	if _, err := strconv.ParseFloat(formatted, 64); err == nil {
		return time.Time{}, false
	}

	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return time.Time{}, false
	}
	d, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	// Serials below 1 are time-of-day fractions, not calendar dates.
	if d.Year() < 1900 {
		return time.Time{}, false
	}
	return d, true
}
