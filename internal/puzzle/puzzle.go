// Package puzzle implements the sliding-tile board: a permutation of tile
// indices over board positions, legal-move validation, solved detection, and
// generation of random starting states that are guaranteed solvable.
//
// The package is pure logic with no external dependencies so it stays
// testable in isolation.
package puzzle

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrBoardTooSmall is returned for board sizes below 2.
var ErrBoardTooSmall = errors.New("puzzle: board size must be 2 or larger")

// BlankTile returns the reserved blank tile value for an n×n board.
// The position holding it renders empty and is the only position adjacent
// tiles may swap into.
func BlankTile(n int) int {
	return n*n - 1
}

// Puzzle owns the tile permutation of an n×n sliding puzzle.
// tiles[pos] names the original image tile occupying board position pos;
// the slice is a permutation of [0, n²) at all times.
type Puzzle struct {
	size  int
	tiles []int
}

// New generates a board with a uniformly random, solvable start permutation.
// Unsolvable draws are rejected and re-rolled; since exactly half of all
// permutations are solvable this terminates after ~2 attempts on average.
func New(size int, rng *rand.Rand) (*Puzzle, error) {
	if size < 2 {
		return nil, ErrBoardTooSmall
	}

	tiles := rng.Perm(size * size)
	for !Solvable(size, tiles) {
		tiles = rng.Perm(size * size)
	}

	// The rejection loop proves this by construction; a failure here means
	// the generator or the predicate is broken, which is fatal.
	if !Solvable(size, tiles) {
		panic("puzzle: generated permutation is not solvable")
	}

	return &Puzzle{size: size, tiles: tiles}, nil
}

// FromTiles builds a board from an explicit permutation.
// The slice is copied; it must be a permutation of [0, size²).
func FromTiles(size int, tiles []int) (*Puzzle, error) {
	if size < 2 {
		return nil, ErrBoardTooSmall
	}
	if len(tiles) != size*size {
		return nil, fmt.Errorf("puzzle: want %d tiles, got %d", size*size, len(tiles))
	}

	seen := make([]bool, len(tiles))
	for _, t := range tiles {
		if t < 0 || t >= len(tiles) || seen[t] {
			return nil, fmt.Errorf("puzzle: tiles are not a permutation of [0, %d)", len(tiles))
		}
		seen[t] = true
	}

	p := &Puzzle{size: size, tiles: make([]int, len(tiles))}
	copy(p.tiles, tiles)
	return p, nil
}

// Identity builds a solved board, mainly useful for previews and tests.
func Identity(size int) (*Puzzle, error) {
	if size < 2 {
		return nil, ErrBoardTooSmall
	}
	tiles := make([]int, size*size)
	for i := range tiles {
		tiles[i] = i
	}
	return &Puzzle{size: size, tiles: tiles}, nil
}

// Size returns the board dimension n.
func (p *Puzzle) Size() int {
	return p.size
}

// Tile returns the tile value at the given board position.
func (p *Puzzle) Tile(pos int) int {
	return p.tiles[pos]
}

// Tiles returns a copy of the current permutation.
func (p *Puzzle) Tiles() []int {
	out := make([]int, len(p.tiles))
	copy(out, p.tiles)
	return out
}

// BlankPos returns the board position currently holding the blank tile.
func (p *Puzzle) BlankPos() int {
	blank := BlankTile(p.size)
	for pos, t := range p.tiles {
		if t == blank {
			return pos
		}
	}
	panic("puzzle: no blank tile on board")
}

// IsSolved reports whether the permutation is the identity.
func (p *Puzzle) IsSolved() bool {
	for i, t := range p.tiles {
		if i != t {
			return false
		}
	}
	return true
}

// Move slides a tile into the blank in the given direction.
// On a legal move it swaps the two entries and returns both board positions
// so the caller can redraw exactly those cells. A move off the board edge is
// not an error: it returns ok=false and leaves the permutation unchanged.
func (p *Puzzle) Move(dir Direction) (from, to int, ok bool) {
	dx, dy := dir.Offset()

	blank := p.BlankPos()
	destX := blank%p.size + dx
	destY := blank/p.size + dy

	if destX < 0 || destX >= p.size || destY < 0 || destY >= p.size {
		return 0, 0, false
	}

	dest := destY*p.size + destX
	p.tiles[blank], p.tiles[dest] = p.tiles[dest], p.tiles[blank]
	return blank, dest, true
}

// Solvable reports whether the permutation can reach the identity by legal
// moves, using the classic 15-puzzle parity test: count inversions among the
// non-blank tiles read in position order; on odd boards the count must be
// even, on even boards the parity must differ from the parity of the blank's
// row counted from the bottom (1-indexed).
//
// See https://www.cs.bham.ac.uk/~mdr/teaching/modules04/java2/TilesSolvability.html
func Solvable(size int, tiles []int) bool {
	blank := BlankTile(size)

	inversions := 0
	for i, a := range tiles {
		if a == blank {
			continue
		}
		for _, b := range tiles[i+1:] {
			if b != blank && b < a {
				inversions++
			}
		}
	}

	if size%2 == 1 {
		return inversions%2 == 0
	}

	blankPos := 0
	for pos, t := range tiles {
		if t == blank {
			blankPos = pos
			break
		}
	}
	blankRowFromBottom := size - blankPos/size

	return (blankRowFromBottom%2 == 0) != (inversions%2 == 0)
}
