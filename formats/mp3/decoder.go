// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audspectro/audio"
)

// go-mp3 always emits interleaved stereo 16-bit little-endian PCM.
const (
	outputChannels = 2
	bytesPerSample = 2
)

// mp3Reader is the part of gomp3.Decoder the source needs.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec  mp3Reader
	buf  []byte
	odd  []byte // half a sample left over from the previous Read
	rate int
}

func newSource(dec mp3Reader) *source {
	return &source{
		dec:  dec,
		rate: dec.SampleRate(),
		odd:  make([]byte, 0, 1),
	}
}

func (s *source) SampleRate() int { return s.rate }
func (s *source) Channels() int   { return outputChannels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst)*bytesPerSample - len(s.odd)
	if cap(s.buf) < len(dst)*bytesPerSample {
		s.buf = make([]byte, len(dst)*bytesPerSample)
	}
	s.buf = append(s.buf[:0], s.odd...)
	s.odd = s.odd[:0]

	n, err := s.dec.Read(s.buf[len(s.buf) : len(s.buf)+want])
	s.buf = s.buf[:len(s.buf)+n]

	samples := len(s.buf) / bytesPerSample
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:]))
		dst[i] = float32(v) / 32768
	}
	if len(s.buf)%bytesPerSample != 0 {
		s.odd = append(s.odd, s.buf[len(s.buf)-1])
	}

	if err != nil {
		return samples, fmt.Errorf("%w", err)
	}

	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return newSource(dec), nil
}
