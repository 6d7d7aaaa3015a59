// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audspectro/audio"
	goflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameParser is the part of *flac.Stream the source needs.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream   frameParser
	rate     int
	channels int
	scale    float32
	pending  []float32 // decoded but not yet returned, interleaved
	done     bool
}

func newSource(stream frameParser, sampleRate, channels, bitDepth int) (*source, error) {
	if channels <= 0 {
		return nil, audio.ErrInvalidChannels
	}
	if sampleRate <= 0 {
		return nil, audio.ErrInvalidSampleRate
	}
	if bitDepth < 4 || bitDepth > 32 {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return &source{
		stream:   stream,
		rate:     sampleRate,
		channels: channels,
		scale:    1 / float32(int64(1)<<(bitDepth-1)),
	}, nil
}

func (s *source) SampleRate() int { return s.rate }
func (s *source) Channels() int   { return s.channels }

func (s *source) Close() error {
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(dst) {
		if len(s.pending) == 0 {
			if s.done {
				return n, io.EOF
			}
			if err := s.next(); err != nil {
				return n, err
			}
			continue
		}

		c := copy(dst[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	return n, nil
}

// next decodes one frame into pending.
func (s *source) next() error {
	f, err := s.stream.ParseNext()
	if errors.Is(err, io.EOF) {
		s.done = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("parse frame: %w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, len(f.Subframes), s.channels)
	}

	blockSize := len(f.Subframes[0].Samples)
	buf := s.pending[:0]
	if cap(buf) < blockSize*s.channels {
		buf = make([]float32, 0, blockSize*s.channels)
	}
	for i := range blockSize {
		for _, sub := range f.Subframes {
			buf = append(buf, float32(sub.Samples[i])*s.scale)
		}
	}
	s.pending = buf

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := goflac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	src, err := newSource(stream,
		int(stream.Info.SampleRate),
		int(stream.Info.NChannels),
		int(stream.Info.BitsPerSample))
	if err != nil {
		stream.Close()
		return nil, err
	}

	return src, nil
}
