package raster

import (
	"fmt"

	"github.com/pixslide/pixslide/internal/core"
)

// FitImageSize picks the image edge for a boardSize board inside a terminal
// of termW×termH character cells. Starting from boardSize it doubles while
// the result still fits min((termH-1)·2, termW): half-block rendering shows
// two pixel rows per terminal row, and one row stays free for the HUD.
//
// The smallest workable image edge is 2·boardSize (one even-width tile per
// cell), so a boardSize board needs at least 2n columns and n+1 rows; the
// error spells that bound out instead of a generic "too large".
func FitImageSize(termW, termH, boardSize int) (int, error) {
	maxImage := core.Min((termH-1)*2, termW)

	size := boardSize
	for size*2 <= maxImage {
		size *= 2
	}

	if boardSize > size/2 {
		return 0, fmt.Errorf(
			"raster: terminal %dx%d is too small for a %dx%d board (need at least %dx%d)",
			termW, termH, boardSize, boardSize, 2*boardSize, boardSize+1)
	}
	return size, nil
}
