// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// PCMBufferReader is the reading half of the go-audio wav and aiff decoders.
// PCMBuffer returns 0 samples and a nil error at the end of the data.
type PCMBufferReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// IntSource adapts a go-audio integer PCM reader to Source.
type IntSource struct {
	r          PCMBufferReader
	sampleRate int
	channels   int
	scale      float32
	buf        *goaudio.IntBuffer
	closer     io.Closer
}

// NewIntSource wraps r. Signed 16, 24 and 32 bit samples are supported.
// closer may be nil.
func NewIntSource(r PCMBufferReader, format *goaudio.Format, bitDepth int, closer io.Closer) (*IntSource, error) {
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrInvalidChannels
	}
	if format.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	return &IntSource{
		r:          r,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      1 / float32(int64(1)<<(bitDepth-1)),
		buf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, defaultReadSize),
			SourceBitDepth: bitDepth,
		},
		closer: closer,
	}, nil
}

func (s *IntSource) SampleRate() int { return s.sampleRate }
func (s *IntSource) Channels() int   { return s.channels }

func (s *IntSource) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *IntSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.r.PCMBuffer(s.buf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) * s.scale
	}

	if err != nil {
		return n, fmt.Errorf("%w", err)
	}

	return n, nil
}
