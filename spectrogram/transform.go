// SPDX-License-Identifier: EPL-2.0

package spectrogram

import (
	"fmt"
	"strings"

	dspfft "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Transformer computes a forward discrete Fourier transform of buf in place.
// The transform size is len(buf). Results are unnormalized.
type Transformer interface {
	Transform(buf []complex128) error
}

// TransformerFunc adapts a plain function to the Transformer interface.
type TransformerFunc func(buf []complex128) error

func (f TransformerFunc) Transform(buf []complex128) error { return f(buf) }

// GonumFFT is backed by gonum's CmplxFFT. The plan for the last used size is
// kept, so reusing one value for many equal sized windows is cheap.
// Not safe for concurrent use.
type GonumFFT struct {
	plan *fourier.CmplxFFT
}

func NewGonumFFT() *GonumFFT {
	return &GonumFFT{}
}

func (g *GonumFFT) Transform(buf []complex128) error {
	if len(buf) == 0 {
		return fmt.Errorf("%w: empty transform buffer", ErrInvalidConfig)
	}

	if g.plan == nil || g.plan.Len() != len(buf) {
		g.plan = fourier.NewCmplxFFT(len(buf))
	}

	g.plan.Coefficients(buf, buf)

	return nil
}

// GoDSPFFT is backed by github.com/mjibson/go-dsp/fft, which uses radix-2 for
// power of two sizes and Bluestein's algorithm otherwise.
type GoDSPFFT struct{}

func (GoDSPFFT) Transform(buf []complex128) error {
	if len(buf) == 0 {
		return fmt.Errorf("%w: empty transform buffer", ErrInvalidConfig)
	}

	copy(buf, dspfft.FFT(buf))

	return nil
}

// Backend names accepted by NewTransformer.
const (
	BackendGonum = "gonum"
	BackendGoDSP = "godsp"
)

// NewTransformer resolves a backend by name: "gonum" (also the empty string)
// or "godsp".
func NewTransformer(name string) (Transformer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendGonum:
		return NewGonumFFT(), nil
	case BackendGoDSP, "go-dsp":
		return GoDSPFFT{}, nil
	}

	return nil, fmt.Errorf("%w: unknown fft backend %q", ErrInvalidConfig, name)
}
