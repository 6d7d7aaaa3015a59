// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds synthetic audio helpers shared by the tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates interleaved float32 frames from a waveform function.
// It satisfies audio.Source structurally so the audio package tests can use
// it without an import cycle.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // frames to generate per channel
	generated  int
	closed     bool
	waveform   func(frame int, channel int) float32
}

// NewMockSource creates a source producing frames frames of channels channels.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSineSource creates a source with the same sine tone on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame int, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * frequency * float64(frame) / float64(sampleRate)))
	})
}

// NewConstantSource creates a source with a constant value on every channel.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	count := min(len(dst)/m.channels, m.frames-m.generated)
	for f := range count {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += count

	if m.generated >= m.frames {
		return count * m.channels, io.EOF
	}

	return count * m.channels, nil
}
