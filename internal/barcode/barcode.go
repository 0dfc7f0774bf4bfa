// =============================================================================
// Supplier Label Generator - Barcode Encoder Module
// =============================================================================
//
// This module encodes short text values as Code 128 linear symbols. A
// symbol is expressed as a sequence of module widths (bars and spaces,
// starting with a bar) so the renderer can draw it as crisp vector
// rectangles scaled to any target area; a raster helper is available for
// image embedding.
//
// POLICY:
//   - Blank values are never encoded. Callers must skip barcode rendering
//     entirely for blank values so the label region stays visually empty.
//     Encode returns ErrEmptyInput if called with one anyway.
//   - The Code 128 check character is part of the symbol.
//   - A quiet zone of at least ten modules is reserved on both sides.
//   - No human-readable line is produced; value text is drawn separately
//     by the renderer.
//   - Encoding failures (unsupported characters) are reported as errors;
//     the caller degrades to drawing the literal text instead.
//
// =============================================================================

package barcode

import (
	"errors"
	"fmt"
	"image"
	"strings"

	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// QuietZone is the number of blank modules reserved on each side of the
// symbol. Ten modules is the Code 128 minimum.
const QuietZone = 10

// ErrEmptyInput is returned when the input is empty or whitespace-only.
var ErrEmptyInput = errors.New("barcode: empty input")

// =============================================================================
// SYMBOL STRUCTURE
// =============================================================================

// Symbol is a linear Code 128 symbol derived deterministically from an
// input string. It is immutable once built.
type Symbol struct {
	// Text is the encoded input text. The check character is part of the
	// module sequence but not of Text.
	Text string

	// Modules holds the alternating bar/space widths of the symbol, in
	// modules. The first entry is a bar; Code 128 symbols start and end
	// with a bar. Quiet zones are not included.
	Modules []int

	code bc.Barcode
}

// TotalModules returns the full symbol width in modules, quiet zones
// included.
func (s *Symbol) TotalModules() int {
	total := 2 * QuietZone
	for _, m := range s.Modules {
		total += m
	}
	return total
}

// Raster scales the symbol to a raster image of the given pixel size, for
// callers embedding the symbol as an image rather than drawing vector bars.
func (s *Symbol) Raster(width, height int) (image.Image, error) {
	img, err := bc.Scale(s.code, width, height)
	if err != nil {
		return nil, fmt.Errorf("barcode: scale: %w", err)
	}
	return img, nil
}

// =============================================================================
// ENCODING
// =============================================================================

// Encode produces the Code 128 symbol for a non-blank text value.
//
// RETURNS:
//   - The encoded Symbol.
//   - ErrEmptyInput for blank input, or an encoding error for input outside
//     the symbology's character set. On error the caller renders the
//     literal text in the symbol's place instead.
func Encode(text string) (*Symbol, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	code, err := code128.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("barcode: encode %q: %w", text, err)
	}

	return &Symbol{
		Text:    text,
		Modules: moduleWidths(code),
		code:    code,
	}, nil
}

// moduleWidths run-length encodes the one-module-high barcode image into
// alternating bar/space widths. The encoder output is one pixel per module.
func moduleWidths(img image.Image) []int {
	bounds := img.Bounds()

	var widths []int
	barRun := true // a Code 128 symbol always begins with a bar
	run := 0

	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		if isBar(img, x, bounds.Min.Y) == barRun {
			run++
			continue
		}
		widths = append(widths, run)
		barRun = !barRun
		run = 1
	}
	if run > 0 {
		widths = append(widths, run)
	}

	return widths
}

// isBar reports whether the module at x is a bar (black).
func isBar(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r == 0 && g == 0 && b == 0
}
