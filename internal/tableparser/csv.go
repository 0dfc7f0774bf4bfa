// =============================================================================
// Supplier Label Generator - CSV Parser
// =============================================================================
//
// CSV input handling. The reader is configured from the CSV settings in
// the main configuration (delimiter); quoting follows RFC 4180 as
// implemented by encoding/csv. Ragged rows are accepted: short rows
// simply leave their trailing fields unset.
//
// =============================================================================

package tableparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/agilomatrix/label-generator/internal/config"
	"github.com/agilomatrix/label-generator/internal/types"
)

// ParseCSV reads a CSV file into a Table.
//
// PARAMETERS:
//   - path: The path to the CSV file.
//   - settings: The CSV parsing settings from the main configuration.
//
// RETURNS:
//   - The parsed Table. The first non-blank record is the header row.
//   - An error if the file cannot be read or is not valid CSV.
func ParseCSV(path string, settings config.CSVSettings) (*types.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return parseCSVReader(file, path, settings)
}

// parseCSVReader parses CSV content from any reader. Split out so tests
// can feed in-memory data without touching the filesystem.
func parseCSVReader(r io.Reader, source string, settings config.CSVSettings) (*types.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiterRune(settings.Delimiter)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	// The header row is the first non-blank record.
	headerIdx := -1
	for i, row := range rows {
		if !isBlank(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, fmt.Errorf("no header row found in %s", source)
	}

	return buildTable(source, rows[headerIdx], rows[headerIdx+1:]), nil
}

// delimiterRune converts the configured delimiter string to a rune,
// falling back to comma.
func delimiterRune(delimiter string) rune {
	if delimiter == "" {
		return ','
	}
	return []rune(delimiter)[0]
}
