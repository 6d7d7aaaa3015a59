// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audspectro/audio"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Decoder implements audio.Decoder for RIFF/WAVE input.
type Decoder struct{}

// Decode parses the headers and positions the reader at the PCM data.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := audio.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %#x", ErrOnlyIntegerPCM, dec.WavAudioFormat)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	src, err := audio.NewIntSource(dec, dec.Format(), int(dec.BitDepth), nil)
	if errors.Is(err, audio.ErrUnsupportedBitDepth) {
		return nil, fmt.Errorf("%w: got %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	return src, nil
}
