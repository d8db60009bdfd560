// Package core provides fundamental types and utilities shared across the
// puzzle, rasterizer, and platform layers. It contains no TUI dependencies
// so the game logic stays pure and testable.
package core

import colorful "github.com/lucasb-eyer/go-colorful"

// Color is a terminal cell color: either an opaque 24-bit RGB value or the
// "reset" color. The zero value is reset; transparent pixels and unstyled
// cells carry it and render with the terminal's defaults.
type Color struct {
	R, G, B uint8
	opaque  bool
}

// Reset is the default/transparent color.
var Reset = Color{}

// RGB returns an opaque color with the given components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, opaque: true}
}

// IsReset reports whether the color is the reset/transparent marker.
func (c Color) IsReset() bool {
	return !c.opaque
}

// Hex returns the color as a "#rrggbb" string for styling libraries.
// The reset color has no hex form; callers must check IsReset first.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
