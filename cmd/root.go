// =============================================================================
// Supplier Label Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (labelgen)
//   ├── generateCmd (labelgen generate)
//   └── versionCmd (labelgen version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "labelgen",
	Short: "Supplier Label Generator - Turn shipment spreadsheets into printable barcode labels",
	Long: `Supplier Label Generator converts tabular shipment records (CSV or XLSX)
into fixed-size printable PDF labels, one label page per record, with
scannable Code 128 barcodes for the key fields.

Column detection is keyword-driven: inconsistently named spreadsheet
columns are mapped onto the canonical label fields automatically, and
missing data falls back to configurable defaults.

Key Features:
  - Keyword-based column detection with configurable dictionaries
  - Fixed 10cm x 15cm label geometry (plus a wide 18cm x 12cm variant)
  - Code 128 barcodes for ASN, part number and quantity
  - Concurrent processing of multiple input files
  - Automatic file archival on successful processing

Example Usage:
  labelgen generate                     # Process all files in the input directory
  labelgen generate --config ./my.yaml  # Use a custom configuration file
  labelgen generate --single --file shipment.xlsx --output ./out`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
