// SPDX-License-Identifier: EPL-2.0

package spectrogram

import (
	"fmt"
	"math/cmplx"
)

// Matrix is a time-major spectrogram: one row per window, one value per
// frequency bin, lowest frequency first.
type Matrix [][]float64

// Windows returns the number of rows.
func (m Matrix) Windows() int { return len(m) }

// Bins returns the row length, or 0 for an empty matrix.
func (m Matrix) Bins() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Extract computes the magnitude spectrum of every complete window of samples.
// It fails with ErrInsufficientData when not even one window fits.
func Extract(samples []float32, cfg Config) (Matrix, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return extract(samples, cfg)
}

func extract(samples []float32, cfg Config) (Matrix, error) {
	width := cfg.WindowWidth()
	windows := len(samples) / width
	if windows == 0 {
		return nil, fmt.Errorf("%w: got %d samples, one window needs %d",
			ErrInsufficientData, len(samples), width)
	}

	bins := cfg.NyquistBins()
	fft := cfg.transformer()
	buf := make([]complex128, width)
	m := make(Matrix, windows)

	for i := range windows {
		window := samples[i*width : (i+1)*width]
		for j, s := range window {
			buf[j] = complex(float64(s), 0)
		}

		if err := fft.Transform(buf); err != nil {
			return nil, fmt.Errorf("window %d: %w", i, err)
		}

		row := make([]float64, bins)
		for j := range row {
			row[j] = cmplx.Abs(buf[j])
		}
		m[i] = row
	}

	return m, nil
}
