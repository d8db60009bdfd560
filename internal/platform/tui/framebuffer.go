package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pixslide/pixslide/internal/core"
)

// Cell is one styled character cell of the frame buffer.
type Cell struct {
	Rune   rune
	Fg, Bg core.Color
}

// FrameBuffer is a styled character grid implementing raster.Sink. It
// decouples the rasterizer from the terminal: drawing operations land in the
// grid, and the platform turns the grid into a styled string per frame.
// Because the grid persists between frames, redrawing only the two cells a
// move changed is enough to keep the whole board current.
type FrameBuffer struct {
	width  int
	height int
	cells  [][]Cell

	// Cursor and pending style for the Sink interface.
	curX, curY int
	fg, bg     core.Color
}

// NewFrameBuffer creates a cleared frame buffer with the given dimensions.
func NewFrameBuffer(width, height int) *FrameBuffer {
	f := &FrameBuffer{
		width:  width,
		height: height,
	}
	f.cells = make([][]Cell, height)
	for y := range f.cells {
		f.cells[y] = make([]Cell, width)
	}
	f.Clear()
	return f
}

// Width returns the buffer width in characters.
func (f *FrameBuffer) Width() int {
	return f.width
}

// Height returns the buffer height in characters.
func (f *FrameBuffer) Height() int {
	return f.height
}

// Clear fills the buffer with unstyled spaces and resets the pending style.
func (f *FrameBuffer) Clear() {
	for y := range f.cells {
		for x := range f.cells[y] {
			f.cells[y][x] = Cell{Rune: ' '}
		}
	}
	f.curX, f.curY = 0, 0
	f.fg, f.bg = core.Reset, core.Reset
}

// MoveTo positions the cursor at an absolute (column, row) cell.
func (f *FrameBuffer) MoveTo(col, row int) {
	f.curX, f.curY = col, row
}

// SetForeground sets the foreground color for subsequent prints.
func (f *FrameBuffer) SetForeground(c core.Color) {
	f.fg = c
}

// SetBackground sets the background color for subsequent prints.
func (f *FrameBuffer) SetBackground(c core.Color) {
	f.bg = c
}

// Reset clears the pending style back to the terminal defaults.
func (f *FrameBuffer) Reset() {
	f.fg, f.bg = core.Reset, core.Reset
}

// Print writes n copies of glyph with the current style and advances the
// cursor. Cells outside the buffer are silently clipped.
func (f *FrameBuffer) Print(glyph rune, n int) {
	for i := 0; i < n; i++ {
		if f.curX >= 0 && f.curX < f.width && f.curY >= 0 && f.curY < f.height {
			f.cells[f.curY][f.curX] = Cell{Rune: glyph, Fg: f.fg, Bg: f.bg}
		}
		f.curX++
	}
}

// CellAt returns the cell at the given position.
// Returns an unstyled space for out-of-bounds coordinates.
func (f *FrameBuffer) CellAt(x, y int) Cell {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Cell{Rune: ' '}
	}
	return f.cells[y][x]
}

// String converts the buffer to a styled string for display.
// Adjacent cells sharing the same colors are grouped into one lipgloss run
// to minimize ANSI escape sequences.
func (f *FrameBuffer) String() string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(f.width*f.height*2 + f.height)

	for y := 0; y < f.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < f.width {
			start := f.cells[y][x]

			var run strings.Builder
			for x < f.width {
				cell := f.cells[y][x]
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Fg.IsReset() && start.Bg.IsReset() {
				sb.WriteString(run.String())
				continue
			}

			style := lipgloss.NewStyle()
			if !start.Fg.IsReset() {
				style = style.Foreground(lipgloss.Color(start.Fg.Hex()))
			}
			if !start.Bg.IsReset() {
				style = style.Background(lipgloss.Color(start.Bg.Hex()))
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
