package pixel

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	// Register decoders for the supported input formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/pixslide/pixslide/internal/core"
)

// LoadFile decodes the image at path.
func LoadFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pixel: open image: %w", err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("pixel: decode %s: %w", path, err)
	}
	return img, nil
}

// Default returns the embedded fallback image, used when no path is given.
func Default() image.Image {
	img, err := decode(bytes.NewReader(defaultPNG))
	if err != nil {
		// The asset is compiled in; failing to decode it is a build defect.
		panic(fmt.Sprintf("pixel: embedded default image: %v", err))
	}
	return img
}

func decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

// FromImage resamples img into a size×size buffer.
//
// With crop set, the image is first cropped to the top-left square of its
// smaller dimension; otherwise the full image is stretched to the square
// target. Scaling uses CatmullRom interpolation. Samples with zero alpha
// map to core.Reset so they render as blank terminal cells.
func FromImage(img image.Image, size int, crop bool) (*Buffer, error) {
	if size < 1 {
		return nil, fmt.Errorf("pixel: target size %d is not positive", size)
	}

	src := img.Bounds()
	if crop {
		edge := core.Min(src.Dx(), src.Dy())
		src = image.Rect(src.Min.X, src.Min.Y, src.Min.X+edge, src.Min.Y+edge)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	if src.Dx() == size && src.Dy() == size {
		draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	}

	px := make([]core.Color, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := dst.NRGBAAt(x, y)
			if c.A == 0 {
				px[y*size+x] = core.Reset
			} else {
				px[y*size+x] = core.RGB(c.R, c.G, c.B)
			}
		}
	}

	return NewBuffer(px, size)
}
