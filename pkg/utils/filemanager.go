// =============================================================================
// Supplier Label Generator - File Manager Utilities
// =============================================================================
//
// Shared filesystem helpers for the generate command: output directory
// handling, unique output file naming, and archival of processed inputs.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// DIRECTORY HANDLING
// =============================================================================

// EnsureDirs creates each directory (and parents) if it does not exist.
func EnsureDirs(paths ...string) error {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
	}
	return nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// OutputFileName generates an output file name from a format string.
//
// PARAMETERS:
//   - format: The name format. Placeholders:
//     {uuid}      - a random UUID
//     {timestamp} - current timestamp (YYYYMMDD_HHMMSS)
//     {template}  - the active template id
//   - template: The template id substituted for {template}.
//
// The returned name always carries a .pdf extension.
func OutputFileName(format, template string) string {
	name := format
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{template}", template)

	if filepath.Ext(name) != ".pdf" {
		name += ".pdf"
	}

	return name
}

// =============================================================================
// ARCHIVAL
// =============================================================================

// ArchiveFile moves a processed input file into the archive directory,
// keeping its base name. A rename is attempted first; if the archive
// directory is on a different filesystem the file is copied and the
// original removed.
func ArchiveFile(src, archiveDir string) error {
	dst := filepath.Join(archiveDir, filepath.Base(src))

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("failed to archive %s: %w", src, err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("failed to remove archived source %s: %w", src, err)
	}
	return nil
}

// copyFile copies src to dst, creating or truncating dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
