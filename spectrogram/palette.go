// SPDX-License-Identifier: EPL-2.0

package spectrogram

import (
	"fmt"
	"image/color"
	"math"
)

// Palette is an ordered list of color stops, interpolated linearly between
// neighbours. The first stop maps 0.0 and the last one maps 1.0.
type Palette []color.RGBA

var defaultPalette = Palette{
	{R: 12, G: 16, B: 48, A: 255},    // deep navy
	{R: 72, G: 28, B: 128, A: 255},   // indigo
	{R: 36, G: 120, B: 240, A: 255},  // bright blue
	{R: 248, G: 144, B: 40, A: 255},  // orange
	{R: 255, G: 236, B: 160, A: 255}, // soft yellow
}

// DefaultPalette returns a copy of the five stop navy to yellow palette.
func DefaultPalette() Palette {
	p := make(Palette, len(defaultPalette))
	copy(p, defaultPalette)
	return p
}

// Validate reports palettes that cannot be interpolated.
func (p Palette) Validate() error {
	if len(p) < 2 {
		return fmt.Errorf("%w: palette needs at least 2 stops, got %d", ErrInvalidConfig, len(p))
	}
	return nil
}

// Map clamps v to [0,1], raises it to gamma and returns the interpolated
// palette color. Alpha is always opaque. NaN maps like 0.
func (p Palette) Map(v, gamma float64) color.RGBA {
	switch len(p) {
	case 0:
		return color.RGBA{A: 255}
	case 1:
		return opaque(p[0])
	}

	if math.IsNaN(v) || v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}

	segments := len(p) - 1
	scaled := math.Pow(v, gamma) * float64(segments)
	idx := int(math.Floor(scaled))
	if idx > segments-1 {
		idx = segments - 1
	}
	frac := scaled - float64(idx)

	lo, hi := p[idx], p[idx+1]

	return color.RGBA{
		R: lerp(lo.R, hi.R, frac),
		G: lerp(lo.G, hi.G, frac),
		B: lerp(lo.B, hi.B, frac),
		A: 255,
	}
}

// MapColor maps v through DefaultPalette.
func MapColor(v, gamma float64) color.RGBA {
	return defaultPalette.Map(v, gamma)
}

func lerp(a, b uint8, frac float64) uint8 {
	v := math.Round(float64(a) + frac*(float64(b)-float64(a)))
	return uint8(max(0, min(255, v)))
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}
