// SPDX-License-Identifier: EPL-2.0

// Package spectrogram turns mono PCM samples into a colored spectrogram raster.
//
// The engine is a linear batch pipeline with four stages:
//   - Extract slices the samples into non-overlapping windows and computes the
//     magnitude spectrum of each one with a forward Fourier transform
//   - Normalize divides every magnitude by the global maximum
//   - Palette.Map turns a normalized value into a color (gamma, then palette
//     interpolation)
//   - Rasterize averages groups of frequency bins into pixels and lays the
//     rows out in time order
//
// Generate runs the whole pipeline:
//
//	cfg := spectrogram.DefaultConfig()
//	cfg.SampleRate = 8000
//	img, err := spectrogram.Generate(samples, cfg)
//	if err != nil {
//	    // errors.Is(err, spectrogram.ErrSilence) etc.
//	}
//	// img.Pix holds img.Width*img.Height RGB triplets
//
// # Windows
//
// The window width is SampleRate / FrameSizeDivisor samples. A trailing
// window shorter than that is dropped; there is no zero padding and no
// overlap. No window function is applied, each window is transformed as is.
//
// Only the lower half of every spectrum is kept (the input is real, so the
// upper half mirrors it). With the defaults (44100 Hz, divisor 32) a window
// is 1378 samples wide and yields 689 frequency bins.
//
// # Image Layout
//
// Row 0 is the earliest window and column 0 the lowest frequency band.
// Pixels are packed as R, G, B bytes, row-major, without padding, so the
// buffer length is always Width*Height*3.
//
// # Transform Backends
//
// The Fourier transform sits behind the Transformer interface. GonumFFT
// (gonum.org/v1/gonum/dsp/fourier) is the default, GoDSPFFT
// (github.com/mjibson/go-dsp/fft) is the alternative, and any function with the
// right shape can be used through TransformerFunc.
//
// # Errors
//
// Every stage fails fast:
//   - ErrInvalidConfig: a parameter is out of range
//   - ErrInsufficientData: fewer samples than one window
//   - ErrSilence: the loudest bin is at or below SilenceEpsilon
//   - ErrRaggedMatrix: matrix rows of different lengths were handed to Rasterize
package spectrogram
