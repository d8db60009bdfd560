package raster

import (
	"testing"

	"github.com/pixslide/pixslide/internal/core"
	"github.com/pixslide/pixslide/internal/pixel"
	"github.com/pixslide/pixslide/internal/puzzle"
)

// recordSink captures the raw operation stream for assertions.
type recordOp struct {
	kind     string // "move", "fg", "bg", "reset", "print"
	col, row int
	color    core.Color
	glyph    rune
	n        int
}

type recordSink struct {
	ops []recordOp
}

func (s *recordSink) MoveTo(col, row int) {
	s.ops = append(s.ops, recordOp{kind: "move", col: col, row: row})
}

func (s *recordSink) SetForeground(c core.Color) {
	s.ops = append(s.ops, recordOp{kind: "fg", color: c})
}

func (s *recordSink) SetBackground(c core.Color) {
	s.ops = append(s.ops, recordOp{kind: "bg", color: c})
}

func (s *recordSink) Reset() {
	s.ops = append(s.ops, recordOp{kind: "reset"})
}

func (s *recordSink) Print(glyph rune, n int) {
	s.ops = append(s.ops, recordOp{kind: "print", glyph: glyph, n: n})
}

// paintSink replays the operation stream onto a cell grid, producing the
// final visible state regardless of how the runs were batched.
type paintCell struct {
	glyph  rune
	fg, bg core.Color
}

type paintSink struct {
	w, h   int
	x, y   int
	fg, bg core.Color
	cells  [][]paintCell
}

func newPaintSink(w, h int) *paintSink {
	s := &paintSink{w: w, h: h}
	s.cells = make([][]paintCell, h)
	for y := range s.cells {
		s.cells[y] = make([]paintCell, w)
		for x := range s.cells[y] {
			s.cells[y][x] = paintCell{glyph: ' '}
		}
	}
	return s
}

func (s *paintSink) MoveTo(col, row int)        { s.x, s.y = col, row }
func (s *paintSink) SetForeground(c core.Color) { s.fg = c }
func (s *paintSink) SetBackground(c core.Color) { s.bg = c }
func (s *paintSink) Reset()                     { s.fg, s.bg = core.Reset, core.Reset }

func (s *paintSink) Print(glyph rune, n int) {
	for i := 0; i < n; i++ {
		if s.x >= 0 && s.x < s.w && s.y >= 0 && s.y < s.h {
			s.cells[s.y][s.x] = paintCell{glyph: glyph, fg: s.fg, bg: s.bg}
		}
		s.x++
	}
}

// uniformBuffer builds a size×size buffer filled with one color.
func uniformBuffer(t *testing.T, size int, c core.Color) *pixel.Buffer {
	t.Helper()
	px := make([]core.Color, size*size)
	for i := range px {
		px[i] = c
	}
	buf, err := pixel.NewBuffer(px, size)
	if err != nil {
		t.Fatalf("NewBuffer() failed: %v", err)
	}
	return buf
}

func TestNewValidation(t *testing.T) {
	board, err := puzzle.Identity(3)
	if err != nil {
		t.Fatalf("Identity() failed: %v", err)
	}

	// 4 is not a multiple of 3.
	if _, err := New(uniformBuffer(t, 4, core.RGB(1, 2, 3)), board); err == nil {
		t.Error("image size not a multiple of board size should fail")
	}

	// 6/3 = 2 pixels per tile is fine; 9/3 = 3 is odd and cannot pair rows.
	if _, err := New(uniformBuffer(t, 6, core.RGB(1, 2, 3)), board); err != nil {
		t.Errorf("6x6 buffer on a 3x3 board failed: %v", err)
	}
	if _, err := New(uniformBuffer(t, 9, core.RGB(1, 2, 3)), board); err == nil {
		t.Error("odd tile edge should fail")
	}
}

func TestCellGeometry(t *testing.T) {
	board, _ := puzzle.Identity(2)
	r, err := New(uniformBuffer(t, 32, core.RGB(9, 9, 9)), board)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if r.CellWidth() != 16 {
		t.Errorf("CellWidth() = %d, expected 16", r.CellWidth())
	}
	if r.CellRows() != 8 {
		t.Errorf("CellRows() = %d, expected 8", r.CellRows())
	}
	if r.ScreenCols() != 32 || r.ScreenRows() != 16 {
		t.Errorf("screen = %dx%d, expected 32x16", r.ScreenCols(), r.ScreenRows())
	}
}

func TestBlankCellEmitsOnlyResetSpaces(t *testing.T) {
	board, _ := puzzle.Identity(2)
	r, err := New(uniformBuffer(t, 8, core.RGB(200, 0, 0)), board)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Position 3 holds tile 3, the blank of a 2x2 board.
	rec := &recordSink{}
	r.RenderCell(rec, 3)

	rows, printed := 0, 0
	for _, op := range rec.ops {
		switch op.kind {
		case "move":
			rows++
		case "print":
			if op.glyph != ' ' {
				t.Errorf("blank cell printed glyph %q", op.glyph)
			}
			printed += op.n
		case "fg", "bg":
			t.Errorf("blank cell set a color: %+v", op)
		}
	}
	if rows != r.CellRows() {
		t.Errorf("blank cell moved cursor %d times, expected %d rows", rows, r.CellRows())
	}
	if printed != r.CellRows()*r.CellWidth() {
		t.Errorf("blank cell printed %d glyphs, expected %d", printed, r.CellRows()*r.CellWidth())
	}

	// And the painted result is spaces with default styling.
	paint := newPaintSink(r.ScreenCols(), r.ScreenRows())
	r.RenderCell(paint, 3)
	for y := r.CellRows(); y < 2*r.CellRows(); y++ {
		for x := r.CellWidth(); x < 2*r.CellWidth(); x++ {
			c := paint.cells[y][x]
			if c.glyph != ' ' || !c.fg.IsReset() || !c.bg.IsReset() {
				t.Fatalf("blank cell left styled content at (%d,%d): %+v", x, y, c)
			}
		}
	}
}

func TestGlyphSelection(t *testing.T) {
	red := core.RGB(255, 0, 0)
	blue := core.RGB(0, 0, 255)

	// One 2x2 tile per board cell on a 2x2 board. Tile 0's region holds all
	// four upper/lower combinations, one per column pair... it is 2 pixels
	// wide, so use the two columns for (color,color) and (reset,color).
	px := make([]core.Color, 16)
	set := func(x, y int, c core.Color) { px[y*4+x] = c }
	set(0, 0, red) // column 0: upper red, lower blue -> ▀ fg=red bg=blue
	set(0, 1, blue)
	set(1, 1, blue) // column 1: upper reset, lower blue -> ▄ fg=blue bg=reset

	buf, err := pixel.NewBuffer(px, 4)
	if err != nil {
		t.Fatalf("NewBuffer() failed: %v", err)
	}
	board, _ := puzzle.Identity(2)
	r, err := New(buf, board)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	paint := newPaintSink(r.ScreenCols(), r.ScreenRows())
	r.RenderCell(paint, 0)

	c0 := paint.cells[0][0]
	if c0.glyph != '▀' || c0.fg != red || c0.bg != blue {
		t.Errorf("cell (0,0) = %+v, expected upper block red on blue", c0)
	}
	c1 := paint.cells[0][1]
	if c1.glyph != '▄' || c1.fg != blue || !c1.bg.IsReset() {
		t.Errorf("cell (1,0) = %+v, expected lower block blue on reset", c1)
	}

	// Tile 1's region is untouched reset pixels -> plain spaces.
	r.RenderCell(paint, 1)
	c2 := paint.cells[0][2]
	if c2.glyph != ' ' || !c2.fg.IsReset() || !c2.bg.IsReset() {
		t.Errorf("cell (2,0) = %+v, expected unstyled space", c2)
	}
}

func TestRunCoalescing(t *testing.T) {
	colA := core.RGB(10, 0, 0)
	colB := core.RGB(0, 10, 0)
	colC := core.RGB(0, 0, 10)

	// 4-wide tile row with columns A, B, B, C: the two identical middle
	// columns must merge into a single run of length 2.
	size := 8 // 2x2 board, 4x4 pixel tiles
	px := make([]core.Color, size*size)
	cols := []core.Color{colA, colB, colB, colC}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			px[y*size+x] = cols[x]
		}
	}
	buf, err := pixel.NewBuffer(px, size)
	if err != nil {
		t.Fatalf("NewBuffer() failed: %v", err)
	}
	board, _ := puzzle.Identity(2)
	r, err := New(buf, board)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	rec := &recordSink{}
	r.RenderCell(rec, 0)

	// Check the run lengths of the first emitted row: 1, 2, 1.
	var runs []int
	for _, op := range rec.ops[1:] { // skip the initial MoveTo
		if op.kind == "move" {
			break
		}
		if op.kind == "print" {
			runs = append(runs, op.n)
		}
	}
	want := []int{1, 2, 1}
	if len(runs) != len(want) {
		t.Fatalf("row runs = %v, expected %v", runs, want)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Fatalf("row runs = %v, expected %v", runs, want)
		}
	}

	// Coalescing must be invisible: the painted grid matches per-column
	// expectations exactly.
	paint := newPaintSink(r.ScreenCols(), r.ScreenRows())
	r.RenderCell(paint, 0)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			c := paint.cells[y][x]
			if c.glyph != '▀' || c.fg != cols[x] || c.bg != cols[x] {
				t.Errorf("painted cell (%d,%d) = %+v, expected %v over %v", x, y, c, cols[x], cols[x])
			}
		}
	}
}

func TestRenderBoardCoversAllPositionsInOrder(t *testing.T) {
	board, _ := puzzle.Identity(2)
	r, err := New(uniformBuffer(t, 8, core.RGB(1, 1, 1)), board)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	rec := &recordSink{}
	r.RenderBoard(rec)

	var moves [][2]int
	for _, op := range rec.ops {
		if op.kind == "move" {
			moves = append(moves, [2]int{op.col, op.row})
		}
	}

	// Two rows per cell, cells visited in position order.
	want := [][2]int{
		{0, 0}, {0, 1},
		{4, 0}, {4, 1},
		{0, 2}, {0, 3},
		{4, 2}, {4, 3},
	}
	if len(moves) != len(want) {
		t.Fatalf("cursor moves = %v, expected %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Fatalf("cursor moves = %v, expected %v", moves, want)
		}
	}
}

func TestMovedTileRedraw(t *testing.T) {
	// After a legal move, re-rendering just the two reported cells brings
	// the painted grid in line with a full redraw.
	board, _ := puzzle.Identity(2)
	buf := uniformBuffer(t, 8, core.RGB(50, 60, 70))
	r, err := New(buf, board)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	partial := newPaintSink(r.ScreenCols(), r.ScreenRows())
	r.RenderBoard(partial)

	from, to, ok := board.Move(puzzle.DirDown)
	if !ok {
		t.Fatal("DirDown should be legal from identity")
	}
	r.RenderCell(partial, from)
	r.RenderCell(partial, to)

	full := newPaintSink(r.ScreenCols(), r.ScreenRows())
	r.RenderBoard(full)

	for y := 0; y < r.ScreenRows(); y++ {
		for x := 0; x < r.ScreenCols(); x++ {
			if partial.cells[y][x] != full.cells[y][x] {
				t.Fatalf("minimal redraw diverged at (%d,%d): %+v vs %+v",
					x, y, partial.cells[y][x], full.cells[y][x])
			}
		}
	}
}
