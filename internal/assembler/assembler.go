// =============================================================================
// Supplier Label Generator - Document Assembler Module
// =============================================================================
//
// This module contains the core pipeline. It takes a parsed table and
// produces the finished multi-page PDF, one label page per row, in row
// order.
//
// ASSEMBLY PIPELINE:
//   1. Resolve the column mapping once from the table headers
//   2. Resolve display values and encode barcode symbols per row
//   3. Render one page per row onto the label geometry
//   4. Serialize the document to bytes
//
// CONCURRENCY:
//   Rows are independent: no row's resolved values or symbols depend on
//   any other row. Step 2 therefore runs on a small worker pool writing
//   into an index-addressed slice, so results land in input order without
//   coordination. Drawing (step 3) appends pages to one output stream and
//   is the only ordering-sensitive step; it stays sequential. The column
//   mapping and geometry are read-only during the whole build.
//
//   Cancellation aborts the build before any output bytes are produced;
//   a partial document is never returned.
//
// =============================================================================

package assembler

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/agilomatrix/label-generator/internal/barcode"
	"github.com/agilomatrix/label-generator/internal/colmap"
	"github.com/agilomatrix/label-generator/internal/config"
	"github.com/agilomatrix/label-generator/internal/layout"
	"github.com/agilomatrix/label-generator/internal/logging"
	"github.com/agilomatrix/label-generator/internal/render"
	"github.com/agilomatrix/label-generator/internal/resolver"
	"github.com/agilomatrix/label-generator/internal/types"
)

// =============================================================================
// RESULT STRUCTURES
// =============================================================================

// Result represents the outcome of processing a single input file.
type Result struct {
	// FilePath is the path to the input file that was processed.
	FilePath string

	// OutputFile is the path to the generated PDF.
	// This is empty if processing failed.
	OutputFile string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed.
	Error error

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about one document build.
type Stats struct {
	// Rows is the number of table rows processed.
	Rows int

	// Pages is the number of pages in the output document.
	// Always equal to Rows on success.
	Pages int

	// MappedFields is the number of the template's canonical fields that
	// matched a source column.
	MappedFields int

	// BarcodeFallbacks is the number of barcode areas rendered as literal
	// text because the value could not be encoded.
	BarcodeFallbacks int

	// Duration is the time taken to build the document.
	Duration time.Duration
}

// =============================================================================
// ASSEMBLER STRUCTURE
// =============================================================================

// Assembler builds label documents for one template configuration.
// It is read-only after construction and may be reused across tables.
type Assembler struct {
	geom    *layout.Geometry
	rules   map[types.CanonicalField]config.FieldRule
	workers int
	logger  logging.Logger
}

// New creates an Assembler.
//
// PARAMETERS:
//   - geom: The label geometry of the active template.
//   - rules: The effective field rules.
//   - workers: Row-preparation concurrency; values below 1 mean sequential.
//   - logger: Pipeline logger; nil discards all output.
func New(geom *layout.Geometry, rules map[types.CanonicalField]config.FieldRule, workers int, logger logging.Logger) *Assembler {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Assembler{
		geom:    geom,
		rules:   rules,
		workers: workers,
		logger:  logger,
	}
}

// preparedRow is the fully computed input for one page: display values
// plus the pre-encoded symbols for the geometry's barcode fields.
type preparedRow struct {
	values    types.ResolvedRow
	symbols   map[types.CanonicalField]*barcode.Symbol
	fallbacks int
}

// =============================================================================
// BUILD
// =============================================================================

// Build produces the finished document for one table.
//
// RETURNS:
//   - The serialized PDF bytes, one page per table row in table order.
//   - Build statistics.
//   - An error only for fatal conditions: cancellation or an output
//     backend failure. Bad input data never fails a build.
func (a *Assembler) Build(ctx context.Context, table *types.Table) ([]byte, Stats, error) {
	start := time.Now()
	stats := Stats{Rows: len(table.Records)}

	// =========================================================================
	// STEP 1: RESOLVE THE COLUMN MAPPING
	// =========================================================================
	// Built once from the headers; read-only for the rest of the build.

	mapping := colmap.Resolve(table.Headers, a.rules)
	for _, field := range a.geom.Fields {
		if mapping[field] != "" {
			stats.MappedFields++
		}
	}
	a.logger.Debug("mapped %d of %d canonical fields", stats.MappedFields, len(a.geom.Fields))

	res := resolver.New(mapping, a.rules, a.geom.Fields)

	// =========================================================================
	// STEP 2: PREPARE ROWS (CONCURRENT)
	// =========================================================================
	// Each worker writes to its own slice index, so the prepared rows come
	// out in input order with no further sorting.

	prepared := make([]preparedRow, len(table.Records))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < a.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				prepared[i] = a.prepareRow(table.Records[i], i, res)
			}
		}()
	}

feed:
	for i := range table.Records {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		// Discard everything; partial documents are not a valid output.
		return nil, stats, err
	}

	// =========================================================================
	// STEP 3: RENDER PAGES (SEQUENTIAL)
	// =========================================================================
	// Pages must land in the output stream in input order; drawing is the
	// single sequential step.

	r := render.New(a.geom)
	for i := range prepared {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		r.Page(prepared[i].values, prepared[i].symbols)
		stats.BarcodeFallbacks += prepared[i].fallbacks
	}
	stats.Pages = r.PageCount()

	if err := r.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to render document: %w", err)
	}

	// =========================================================================
	// STEP 4: SERIALIZE
	// =========================================================================

	var buf bytes.Buffer
	if err := r.Output(&buf); err != nil {
		return nil, stats, fmt.Errorf("failed to finalize document: %w", err)
	}

	stats.Duration = time.Since(start)
	a.logger.Debug("built %d page(s) in %s", stats.Pages, stats.Duration)

	return buf.Bytes(), stats, nil
}

// prepareRow resolves one row's display values and encodes the symbols for
// the template's barcode fields. rowIndex is 0-based.
func (a *Assembler) prepareRow(rec types.Record, rowIndex int, res *resolver.Resolver) preparedRow {
	p := preparedRow{
		values:  res.ResolveRow(rec, rowIndex+1),
		symbols: make(map[types.CanonicalField]*barcode.Symbol),
	}

	for _, field := range a.geom.BarcodeFields() {
		value := p.values[field]
		if strings.TrimSpace(value) == "" {
			// Blank value: no symbol, and the renderer leaves the
			// barcode area empty.
			continue
		}
		sym, err := barcode.Encode(value)
		if err != nil {
			// Degrades to literal text in the symbol's place. Expected
			// input variability, so debug only.
			a.logger.Debug("row %d: field %s not encodable: %v", rowIndex+1, field, err)
			p.fallbacks++
			continue
		}
		p.symbols[field] = sym
	}

	return p
}
