// =============================================================================
// Supplier Label Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which is the main command for
// converting shipment spreadsheets into label PDFs.
//
// COMMAND USAGE:
//   labelgen generate [flags]
//
// FLAGS:
//   --input       : Input directory to scan (overrides config)
//   --output      : Output directory for PDFs (overrides config)
//   --template    : Label template id (overrides config)
//   --single      : Process only a single file (specify with --file)
//   --file        : Path to a specific file to process (used with --single)
//   --dry-run     : Build documents but do not write output files
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Discover spreadsheet files in the input directory
//   3. For each file (concurrently):
//      a. Parse the table (CSV or XLSX)
//      b. Resolve the column mapping and per-row values
//      c. Render one label page per row with barcodes
//      d. Write the PDF to the output directory
//      e. Archive the processed input
//   4. Print a summary report
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/agilomatrix/label-generator/internal/assembler"
	"github.com/agilomatrix/label-generator/internal/config"
	"github.com/agilomatrix/label-generator/internal/layout"
	"github.com/agilomatrix/label-generator/internal/logging"
	"github.com/agilomatrix/label-generator/internal/tableparser"
	"github.com/agilomatrix/label-generator/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// inputDir overrides the configured input directory.
var inputDir string

// outputDir overrides the configured output directory.
var outputDir string

// templateID overrides the configured label template.
var templateID string

// singleFile indicates whether to process only a single file.
var singleFile bool

// filePath is the path to a specific file to process (used with --single).
var filePath string

// dryRun builds documents without writing output files.
var dryRun bool

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate label PDFs from shipment spreadsheets",
	Long: `The generate command scans the input directory for CSV and XLSX files and
converts each one into a multi-page PDF of shipping labels, one page per
data row.

Files are processed concurrently; an error in one file does not affect the
processing of others.

On successful processing:
  - The generated PDF is placed in the output directory
  - The original spreadsheet is moved to the archive directory

On error:
  - The original spreadsheet remains in the input directory
  - Processing continues for other files`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&inputDir, "input", "", "Input directory to scan (overrides config)")
	generateCmd.Flags().StringVar(&outputDir, "output", "", "Output directory for PDFs (overrides config)")
	generateCmd.Flags().StringVar(&templateID, "template", "", "Label template id: standard or wide (overrides config)")
	generateCmd.Flags().BoolVar(&singleFile, "single", false, "Process only a single file (use with --file)")
	generateCmd.Flags().StringVar(&filePath, "file", "", "Path to a specific file to process (used with --single)")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Build documents but do not write output files")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runGenerate orchestrates the label generation pipeline.
func runGenerate(ctx context.Context) error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cfg)

	logger, flush, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer flush()

	geom, err := layout.ByID(cfg.Template)
	if err != nil {
		return err
	}
	rules := cfg.FieldRules()

	if !dryRun {
		if err := utils.EnsureDirs(cfg.OutputDir, cfg.ArchiveDir); err != nil {
			return err
		}
	}

	// Ctrl-C cancels the whole run; in-flight documents are discarded
	// rather than written partially.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	// =========================================================================
	// STEP 2: DISCOVER INPUT FILES
	// =========================================================================

	inputFiles, err := discoverInputFiles(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("failed to discover input files: %w", err)
	}

	if len(inputFiles) == 0 {
		fmt.Println("No spreadsheet files found in the input directory.")
		return nil
	}

	fmt.Printf("Found %d file(s) to process\n", len(inputFiles))

	// =========================================================================
	// STEP 3: PROCESS FILES CONCURRENTLY
	// =========================================================================
	// Each file is independent; errors in one do not stop the others.

	asm := assembler.New(geom, rules, cfg.Workers, logger)

	var wg sync.WaitGroup
	results := make(chan assembler.Result, len(inputFiles))

	for _, file := range inputFiles {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			results <- processFile(ctx, path, cfg, asm, logger)
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 4: COLLECT RESULTS AND PRINT SUMMARY
	// =========================================================================

	var successCount, errorCount, pageCount int
	for result := range results {
		if result.Success {
			successCount++
			pageCount += result.Stats.Pages
			fmt.Printf("  + %s -> %s (%d page(s))\n",
				filepath.Base(result.FilePath), result.OutputFile, result.Stats.Pages)
		} else {
			errorCount++
			fmt.Printf("  x %s: %v\n", filepath.Base(result.FilePath), result.Error)
		}
	}

	elapsed := time.Since(startTime)
	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:     %d\n", len(inputFiles))
	fmt.Printf("Successful:      %d\n", successCount)
	fmt.Printf("Errors:          %d\n", errorCount)
	fmt.Printf("Pages:           %d\n", pageCount)
	fmt.Printf("Time elapsed:    %s\n", elapsed)

	return ctx.Err()
}

// =============================================================================
// PER-FILE PIPELINE
// =============================================================================

// processFile runs the full pipeline for one input file and reports the
// outcome.
func processFile(ctx context.Context, path string, cfg *config.MainConfig, asm *assembler.Assembler, logger logging.Logger) assembler.Result {
	result := assembler.Result{FilePath: path}

	table, err := tableparser.Parse(path, cfg.CSV)
	if err != nil {
		result.Error = fmt.Errorf("failed to parse table: %w", err)
		return result
	}
	logger.Info("processing %s: %d row(s)", filepath.Base(path), len(table.Records))

	pdf, stats, err := asm.Build(ctx, table)
	result.Stats = stats
	if err != nil {
		result.Error = fmt.Errorf("failed to build document: %w", err)
		return result
	}

	if dryRun {
		result.Success = true
		result.OutputFile = "(dry run)"
		return result
	}

	outName := utils.OutputFileName(cfg.OutputNameFormat, cfg.Template)
	outPath := filepath.Join(cfg.OutputDir, outName)
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		return result
	}
	result.OutputFile = outPath

	if err := utils.ArchiveFile(path, cfg.ArchiveDir); err != nil {
		// Log but do not fail: the document was produced.
		logger.Warn("failed to archive %s: %v", path, err)
	}

	result.Success = true
	return result
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// applyFlagOverrides layers command-line flags over the loaded config.
func applyFlagOverrides(cfg *config.MainConfig) {
	if inputDir != "" {
		cfg.InputDir = inputDir
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if templateID != "" {
		cfg.Template = templateID
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
}

// discoverInputFiles returns the spreadsheet files to process: either the
// one named by --single/--file, or every supported file in the input
// directory.
func discoverInputFiles(dir string) ([]string, error) {
	if singleFile {
		if filePath == "" {
			return nil, fmt.Errorf("--single requires --file")
		}
		return []string{filePath}, nil
	}

	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv", ".xlsx", ".xlsm":
			files = append(files, path)
		}
		return nil
	})

	return files, err
}
