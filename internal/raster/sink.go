// Package raster renders board cells onto a terminal-cell grid using
// half-block glyphs: every terminal row carries two image pixel rows, the
// upper one as the foreground of ▀ and the lower one as the background.
package raster

import "github.com/pixslide/pixslide/internal/core"

// Sink receives drawing operations in emission order. Implementations are
// expected to buffer; the rasterizer never flushes, batching is the
// caller's responsibility.
type Sink interface {
	// MoveTo positions the cursor at an absolute (column, row) cell.
	MoveTo(col, row int)

	// SetForeground sets the foreground color for subsequent prints.
	SetForeground(c core.Color)

	// SetBackground sets the background color for subsequent prints.
	// core.Reset selects the terminal's default background.
	SetBackground(c core.Color)

	// Reset clears all styling back to the terminal defaults.
	Reset()

	// Print writes n copies of glyph at the cursor using the current style
	// and advances the cursor by n columns.
	Print(glyph rune, n int)
}

// Half-block glyphs. The upper block shows the foreground color on the top
// half of the cell and the background color on the bottom half; the lower
// block is used when only the bottom pixel carries a color.
const (
	glyphBlank rune = ' '
	glyphUpper rune = '▀'
	glyphLower rune = '▄'
)
