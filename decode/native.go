// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"context"
	"fmt"
	"os"

	"github.com/ik5/audspectro/audio"
	"github.com/ik5/audspectro/formats/aiff"
	"github.com/ik5/audspectro/formats/flac"
	"github.com/ik5/audspectro/formats/mp3"
	"github.com/ik5/audspectro/formats/vorbis"
	"github.com/ik5/audspectro/formats/wav"
)

// DefaultRegistry returns a registry with every built-in format decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// Native decodes in process with the format packages, picked by file
// extension. A nil Registry means DefaultRegistry. threads is ignored.
type Native struct {
	Registry *audio.Registry
}

func (n Native) Decode(ctx context.Context, path string, sampleRate, _ int) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := checkRate(sampleRate); err != nil {
		return nil, err
	}

	reg := n.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}

	dec, format, ok := reg.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %w: %q (have %v)", ErrDecode, ErrUnsupportedFormat, format, reg.Formats())
	}

	if err := checkSource(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}
	defer src.Close()

	samples, err := ToMono(src, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return samples, nil
}

// ToMono drains src, downmixes it and resamples to sampleRate. The result
// is clamped to [-1, 1].
func ToMono(src audio.Source, sampleRate int) ([]float32, error) {
	interleaved, err := audio.ReadAll(src, 0)
	if err != nil {
		return nil, err
	}

	mono, err := audio.Downmix(interleaved, src.Channels())
	if err != nil {
		return nil, err
	}

	out, err := audio.Resample(mono, src.SampleRate(), sampleRate)
	if err != nil {
		return nil, err
	}
	audio.Clamp(out)

	return out, nil
}
