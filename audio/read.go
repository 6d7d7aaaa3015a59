// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const (
	defaultReadSize = 4096
	maxEmptyReads   = 100
)

// ReadAll drains src and returns every interleaved sample it produced.
// bufSize is the read chunk in samples; values below 1 use 4096. The chunk
// is rounded down to a whole number of frames.
func ReadAll(src Source, bufSize int) ([]float32, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}

	if bufSize <= 0 {
		bufSize = defaultReadSize
	}
	bufSize = max(channels, bufSize-bufSize%channels)

	var out []float32
	buf := make([]float32, bufSize)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("read samples: %w", err)
		}

		if n > 0 {
			empty = 0
		} else if empty++; empty >= maxEmptyReads {
			return out, fmt.Errorf("read samples: %w", io.ErrNoProgress)
		}
	}
}
