// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

const defaultFFmpeg = "ffmpeg"

// FFmpeg decodes through an ffmpeg subprocess that writes raw f32le mono
// samples to stdout. Binary defaults to "ffmpeg" looked up on PATH.
type FFmpeg struct {
	Binary string
}

func (f FFmpeg) binary() string {
	if f.Binary == "" {
		return defaultFFmpeg
	}
	return f.Binary
}

// Args returns the ffmpeg command line, without the binary.
func (f FFmpeg) Args(path string, sampleRate, threads int) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-nostdin",
		"-i", path,
		"-ac", "1",
		"-ar", strconv.Itoa(sampleRate),
		"-f", "f32le",
		"-threads", strconv.Itoa(max(threads, 0)),
		"-",
	}
}

func (f FFmpeg) Decode(ctx context.Context, path string, sampleRate, threads int) ([]float32, error) {
	if err := checkSource(path); err != nil {
		return nil, err
	}
	if err := checkRate(sampleRate); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, f.binary(), f.Args(path, sampleRate, threads)...)
	out, err := cmd.Output()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg := strings.TrimSpace(string(exitErr.Stderr))
		if msg == "" {
			msg = exitErr.String()
		}
		return nil, fmt.Errorf("%w: ffmpeg exited with %d: %s", ErrDecode, exitErr.ExitCode(), msg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: run %s: %w", ErrDecode, f.binary(), err)
	}

	samples, err := ParseF32LE(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return samples, nil
}

// ParseF32LE converts raw little-endian IEEE 754 float32 bytes to samples.
func ParseF32LE(b []byte) ([]float32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMisalignedStream, len(b))
	}

	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}

	return out, nil
}
