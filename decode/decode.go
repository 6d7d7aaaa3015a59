// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Decoder turns an audio file into mono float32 PCM at sampleRate.
// threads is a hint; implementations may ignore it.
type Decoder interface {
	Decode(ctx context.Context, path string, sampleRate, threads int) ([]float32, error)
}

// Names accepted by New.
const (
	NameFFmpeg = "ffmpeg"
	NameNative = "native"
)

// New resolves a decoder by name. An empty name selects ffmpeg.
func New(name string) (Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameFFmpeg:
		return FFmpeg{}, nil
	case NameNative:
		return Native{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownDecoder, name, NameFFmpeg, NameNative)
	}
}

func checkSource(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w: %s", ErrDecode, ErrSourceNotFound, path)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %w: %s is a directory", ErrDecode, ErrSourceNotFound, path)
	}
	return nil
}

func checkRate(sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrDecode, sampleRate)
	}
	return nil
}
