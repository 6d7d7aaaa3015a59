// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	"github.com/ik5/audspectro/audio"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := audio.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		if dec.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotAiffFile, dec.Err())
		}
		return nil, ErrNotAiffFile
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	src, err := audio.NewIntSource(dec, format, int(dec.BitDepth), nil)
	if errors.Is(err, audio.ErrUnsupportedBitDepth) {
		return nil, fmt.Errorf("%w: got %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}

	return src, nil
}
