// =============================================================================
// Supplier Label Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Supplier Label Generator CLI. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   labelgen generate  - Convert spreadsheets in the input directory to label PDFs
//   labelgen version   - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core pipeline (mapping, resolution, encoding, rendering)
//   - pkg/       : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/agilomatrix/label-generator/cmd"
)

func main() {
	cmd.Execute()
}
