// Package pixel supplies square RGBA sample buffers for the rasterizer:
// image decoding, optional square cropping, stretch-resizing to a requested
// edge, and an embedded fallback image.
package pixel

import (
	"fmt"

	"github.com/pixslide/pixslide/internal/core"
)

// Buffer is an immutable square grid of samples. Each sample is either an
// opaque color or core.Reset for fully transparent pixels.
type Buffer struct {
	size int
	px   []core.Color
}

// NewBuffer wraps a sample slice as a size×size buffer.
// It fails fast when the slice does not hold exactly size² samples, so a
// malformed buffer can never reach the rasterizer mid-draw.
func NewBuffer(px []core.Color, size int) (*Buffer, error) {
	if size < 1 {
		return nil, fmt.Errorf("pixel: buffer size %d is not positive", size)
	}
	if len(px) != size*size {
		return nil, fmt.Errorf("pixel: want %d samples for a %dx%d buffer, got %d",
			size*size, size, size, len(px))
	}
	return &Buffer{size: size, px: px}, nil
}

// Size returns the buffer edge length in pixels.
func (b *Buffer) Size() int {
	return b.size
}

// At returns the sample at (x, y).
func (b *Buffer) At(x, y int) core.Color {
	return b.px[y*b.size+x]
}
