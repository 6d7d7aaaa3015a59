// SPDX-License-Identifier: EPL-2.0

package spectrogram

import (
	"fmt"
	"math"
)

const (
	DefaultSampleRate       = 44100
	DefaultFrameSizeDivisor = 32
	DefaultDownsample       = 32
	DefaultGamma            = 0.2
)

// Config holds the engine parameters. Build it once (DefaultConfig, then
// override fields) and pass it by value; the engine never modifies it.
type Config struct {
	// SampleRate of the input samples in Hz.
	SampleRate int
	// FrameSizeDivisor sets the window width to SampleRate / FrameSizeDivisor.
	FrameSizeDivisor int
	// Downsample is the number of frequency bins averaged into one pixel.
	Downsample int
	// Gamma is the exponent applied to normalized values before coloring.
	Gamma float64
	// Palette used for coloring. Nil means DefaultPalette.
	Palette Palette
	// Transformer computes the forward FFT. Nil means a new GonumFFT per run.
	Transformer Transformer
}

// DefaultConfig returns the configuration the command line tool starts from.
func DefaultConfig() Config {
	return Config{
		SampleRate:       DefaultSampleRate,
		FrameSizeDivisor: DefaultFrameSizeDivisor,
		Downsample:       DefaultDownsample,
		Gamma:            DefaultGamma,
		Palette:          DefaultPalette(),
	}
}

// Validate reports the first out of range parameter, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, c.SampleRate)
	case c.FrameSizeDivisor <= 0:
		return fmt.Errorf("%w: frame size divisor must be positive, got %d", ErrInvalidConfig, c.FrameSizeDivisor)
	case c.FrameSizeDivisor > c.SampleRate:
		return fmt.Errorf("%w: frame size divisor %d exceeds sample rate %d",
			ErrInvalidConfig, c.FrameSizeDivisor, c.SampleRate)
	case c.Downsample <= 0:
		return fmt.Errorf("%w: downsample factor must be positive, got %d", ErrInvalidConfig, c.Downsample)
	case c.Gamma <= 0 || math.IsNaN(c.Gamma) || math.IsInf(c.Gamma, 0):
		return fmt.Errorf("%w: gamma must be a positive number, got %v", ErrInvalidConfig, c.Gamma)
	}

	if c.Palette != nil {
		if err := c.Palette.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// WindowWidth is the number of samples per analysis window.
func (c Config) WindowWidth() int {
	if c.FrameSizeDivisor <= 0 {
		return 0
	}
	return c.SampleRate / c.FrameSizeDivisor
}

// NyquistBins is the number of magnitudes kept per window.
func (c Config) NyquistBins() int {
	w := c.WindowWidth()
	if half := w / 2; half > 0 {
		return half
	}
	return w
}

// Width is the number of pixel columns the rasterizer produces.
func (c Config) Width() int {
	if c.Downsample <= 0 {
		return 0
	}
	return (c.NyquistBins() + c.Downsample - 1) / c.Downsample
}

func (c Config) palette() Palette {
	if c.Palette == nil {
		return defaultPalette
	}
	return c.Palette
}

func (c Config) transformer() Transformer {
	if c.Transformer == nil {
		return NewGonumFFT()
	}
	return c.Transformer
}
