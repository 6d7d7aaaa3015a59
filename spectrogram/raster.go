// SPDX-License-Identifier: EPL-2.0

package spectrogram

import (
	"fmt"
	"image"
	"image/color"
)

// Image is a packed RGB raster: 3 bytes per pixel, rows top to bottom,
// no stride padding.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// At returns the pixel at column x of row y as an opaque color.
func (img *Image) At(x, y int) color.RGBA {
	i := (y*img.Width + x) * 3
	return color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 255}
}

// RGBA copies the raster into an opaque *image.RGBA.
func (img *Image) RGBA() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i, j := 0, 0; i+2 < len(img.Pix); i, j = i+3, j+4 {
		dst.Pix[j] = img.Pix[i]
		dst.Pix[j+1] = img.Pix[i+1]
		dst.Pix[j+2] = img.Pix[i+2]
		dst.Pix[j+3] = 255
	}
	return dst
}

// Generate runs the full pipeline over mono samples: Extract, Normalize and
// Rasterize. The first failing stage aborts the run.
func Generate(samples []float32, cfg Config) (*Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m, err := extract(samples, cfg)
	if err != nil {
		return nil, err
	}

	if err := Normalize(m); err != nil {
		return nil, err
	}

	return rasterize(m, cfg)
}

// Rasterize averages every cfg.Downsample consecutive bins of each row into
// one pixel (the last group of a row may be shorter) and colors it with the
// configured palette and gamma. m is expected to be normalized.
func Rasterize(m Matrix, cfg Config) (*Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return rasterize(m, cfg)
}

func rasterize(m Matrix, cfg Config) (*Image, error) {
	if len(m) == 0 {
		return nil, fmt.Errorf("%w: empty spectrogram", ErrInsufficientData)
	}

	bins := m.Bins()
	factor := cfg.Downsample
	width := (bins + factor - 1) / factor
	palette := cfg.palette()

	img := &Image{
		Width:  width,
		Height: len(m),
		Pix:    make([]byte, 0, width*len(m)*3),
	}

	for y, row := range m {
		if len(row) != bins {
			return nil, fmt.Errorf("%w: row %d has %d bins, row 0 has %d", ErrRaggedMatrix, y, len(row), bins)
		}

		for start := 0; start < bins; start += factor {
			end := min(start+factor, bins)

			var sum float64
			for _, v := range row[start:end] {
				sum += v
			}

			c := palette.Map(sum/float64(end-start), cfg.Gamma)
			img.Pix = append(img.Pix, c.R, c.G, c.B)
		}
	}

	return img, nil
}
