// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audspectro/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader the source needs.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec      oggReader
	rate     int
	channels int
}

func newSource(dec oggReader) (*source, error) {
	if dec.Channels() <= 0 {
		return nil, ErrNoChannels
	}

	return &source{
		dec:      dec,
		rate:     dec.SampleRate(),
		channels: dec.Channels(),
	}, nil
}

func (s *source) SampleRate() int { return s.rate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// ReadSamples reads whole frames only. oggvorbis counts interleaved values,
// not frames, so n is passed through unchanged.
func (s *source) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / s.channels
	if frames == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:frames*s.channels])
	if err != nil {
		return n, fmt.Errorf("%w", err)
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return newSource(dec)
}
