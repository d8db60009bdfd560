package raster

import (
	"fmt"

	"github.com/pixslide/pixslide/internal/core"
	"github.com/pixslide/pixslide/internal/pixel"
	"github.com/pixslide/pixslide/internal/puzzle"
)

// Renderer draws the visual content of board cells into a Sink. It maps a
// board position through the puzzle's permutation to a source pixel region
// and emits that region as styled half-block runs.
type Renderer struct {
	px    *pixel.Buffer
	board *puzzle.Puzzle

	imageSize int
	boardSize int
	cellWidth int // pixels per tile edge == terminal columns per cell
	cellRows  int // terminal rows per cell == cellWidth/2
}

// New validates the buffer/board pairing and returns a renderer.
// The buffer edge must be an exact multiple of the board size and each tile
// must span an even number of pixels so rows pair up into half blocks.
// Violations fail here, before anything is drawn.
func New(px *pixel.Buffer, board *puzzle.Puzzle) (*Renderer, error) {
	imageSize := px.Size()
	boardSize := board.Size()

	if imageSize%boardSize != 0 {
		return nil, fmt.Errorf("raster: image size %d is not a multiple of board size %d",
			imageSize, boardSize)
	}
	cellWidth := imageSize / boardSize
	if cellWidth%2 != 0 {
		return nil, fmt.Errorf("raster: tile edge %d is odd, cannot pair pixel rows", cellWidth)
	}

	return &Renderer{
		px:        px,
		board:     board,
		imageSize: imageSize,
		boardSize: boardSize,
		cellWidth: cellWidth,
		cellRows:  cellWidth / 2,
	}, nil
}

// CellWidth returns the width of one board cell in terminal columns.
func (r *Renderer) CellWidth() int {
	return r.cellWidth
}

// CellRows returns the height of one board cell in terminal rows.
func (r *Renderer) CellRows() int {
	return r.cellRows
}

// ScreenRows returns the total board height in terminal rows.
func (r *Renderer) ScreenRows() int {
	return r.cellRows * r.boardSize
}

// ScreenCols returns the total board width in terminal columns.
func (r *Renderer) ScreenCols() int {
	return r.cellWidth * r.boardSize
}

// RenderBoard draws every board cell in increasing position order.
func (r *Renderer) RenderBoard(s Sink) {
	for pos := 0; pos < r.boardSize*r.boardSize; pos++ {
		r.RenderCell(s, pos)
	}
}

// RenderCell draws the single board cell at pos: cellRows rows of cellWidth
// styled glyphs, top to bottom. The cell holding the blank tile is emitted
// as unstyled spaces. Adjacent columns with identical upper/lower pixel
// pairs are merged into one styled run to cut down on sink traffic; the
// resulting screen content is identical to per-column emission.
func (r *Renderer) RenderCell(s Sink, pos int) {
	tile := r.board.Tile(pos)

	screenX := pos % r.boardSize * r.cellWidth
	screenY := pos / r.boardSize * r.cellRows

	if tile == puzzle.BlankTile(r.boardSize) {
		for row := 0; row < r.cellRows; row++ {
			s.MoveTo(screenX, screenY+row)
			s.Reset()
			s.Print(glyphBlank, r.cellWidth)
		}
		return
	}

	imgX := tile % r.boardSize * r.cellWidth
	imgY := tile / r.boardSize * r.cellWidth

	for row := 0; row < r.cellRows; row++ {
		s.MoveTo(screenX, screenY+row)

		upperY := imgY + 2*row
		runLen := 0
		var runUpper, runLower core.Color

		for x := 0; x < r.cellWidth; x++ {
			upper := r.px.At(imgX+x, upperY)
			lower := r.px.At(imgX+x, upperY+1)

			if runLen > 0 && upper == runUpper && lower == runLower {
				runLen++
				continue
			}
			if runLen > 0 {
				emitRun(s, runUpper, runLower, runLen)
			}
			runUpper, runLower, runLen = upper, lower, 1
		}
		emitRun(s, runUpper, runLower, runLen)

		s.Reset()
	}
}

// emitRun writes one coalesced run of n columns sharing the same pixel pair.
func emitRun(s Sink, upper, lower core.Color, n int) {
	switch {
	case upper.IsReset() && lower.IsReset():
		s.Reset()
		s.Print(glyphBlank, n)
	case upper.IsReset():
		s.SetForeground(lower)
		s.SetBackground(core.Reset)
		s.Print(glyphLower, n)
	default:
		s.SetForeground(upper)
		s.SetBackground(lower)
		s.Print(glyphUpper, n)
	}
}
