// SPDX-License-Identifier: EPL-2.0

package spectrogram

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audspectro/internal/audiotest"
)

func TestExtract_WindowCountAndLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		sampleRate  int
		divisor     int
		samples     int
		wantWindows int
		wantBins    int
	}{
		{name: "exact fit", sampleRate: 8000, divisor: 8, samples: 16000, wantWindows: 16, wantBins: 500},
		{name: "trailing remainder dropped", sampleRate: 8000, divisor: 8, samples: 16999, wantWindows: 16, wantBins: 500},
		{name: "single window", sampleRate: 100, divisor: 1, samples: 150, wantWindows: 1, wantBins: 50},
		{name: "odd window width", sampleRate: 9, divisor: 1, samples: 27, wantWindows: 3, wantBins: 4},
		{name: "window of one sample", sampleRate: 10, divisor: 10, samples: 7, wantWindows: 7, wantBins: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			cfg.SampleRate = tt.sampleRate
			cfg.FrameSizeDivisor = tt.divisor

			m, err := Extract(audiotest.Ramp(tt.samples), cfg)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}

			if m.Windows() != tt.wantWindows {
				t.Errorf("Windows() = %d, want %d", m.Windows(), tt.wantWindows)
			}
			for i, row := range m {
				if len(row) != tt.wantBins {
					t.Errorf("len(row %d) = %d, want %d", i, len(row), tt.wantBins)
				}
			}
		})
	}
}

func TestExtract_WindowBoundaries(t *testing.T) {
	t.Parallel()

	const width = 10

	samples := audiotest.Ramp(35)

	var seen [][]complex128
	recorder := TransformerFunc(func(buf []complex128) error {
		seen = append(seen, append([]complex128(nil), buf...))
		return nil
	})

	cfg := DefaultConfig()
	cfg.SampleRate = width
	cfg.FrameSizeDivisor = 1
	cfg.Transformer = recorder

	if _, err := Extract(samples, cfg); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(seen) != 3 {
		t.Fatalf("transform called %d times, want 3", len(seen))
	}

	for i, buf := range seen {
		if len(buf) != width {
			t.Fatalf("window %d has %d samples, want %d", i, len(buf), width)
		}
		for j, c := range buf {
			want := complex(float64(samples[i*width+j]), 0)
			if c != want {
				t.Errorf("window %d sample %d = %v, want %v", i, j, c, want)
			}
		}
	}
}

func TestExtract_ConstantSignal(t *testing.T) {
	t.Parallel()

	const width = 16

	samples := make([]float32, width*2)
	for i := range samples {
		samples[i] = 0.5
	}

	cfg := DefaultConfig()
	cfg.SampleRate = width
	cfg.FrameSizeDivisor = 1

	m, err := Extract(samples, cfg)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	// All energy lands in the DC bin, unscaled.
	for i, row := range m {
		if math.Abs(row[0]-width*0.5) > 1e-9 {
			t.Errorf("row %d DC = %v, want %v", i, row[0], width*0.5)
		}
		for j := 1; j < len(row); j++ {
			if row[j] > 1e-9 {
				t.Errorf("row %d bin %d = %v, want 0", i, j, row[j])
			}
		}
	}
}

func TestExtract_SingleSampleWindows(t *testing.T) {
	t.Parallel()

	samples := []float32{0.25, -0.75, 0}

	cfg := DefaultConfig()
	cfg.SampleRate = 1
	cfg.FrameSizeDivisor = 1

	m, err := Extract(samples, cfg)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := []float64{0.25, 0.75, 0}
	for i, row := range m {
		if len(row) != 1 {
			t.Fatalf("len(row %d) = %d, want 1", i, len(row))
		}
		if math.Abs(row[0]-want[i]) > 1e-9 {
			t.Errorf("row %d = %v, want %v", i, row[0], want[i])
		}
	}
}

func TestExtract_SineLandsInItsBin(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.SampleRate = 8000
	cfg.FrameSizeDivisor = 8

	// 1000 Hz over 1000 sample windows at 8 kHz is bin 125.
	m, err := Extract(audiotest.Sine(8000, 8000, 1000, 0.8), cfg)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	for i, row := range m {
		peak := 0
		for j, v := range row {
			if v > row[peak] {
				peak = j
			}
		}
		if peak != 125 {
			t.Errorf("row %d peak bin = %d, want 125", i, peak)
		}
	}
}

func TestExtract_InsufficientData(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.SampleRate = 8000
	cfg.FrameSizeDivisor = 8

	for _, n := range []int{0, 1, 999} {
		_, err := Extract(audiotest.Ramp(n), cfg)
		if !errors.Is(err, ErrInsufficientData) {
			t.Errorf("Extract(%d samples) error = %v, want ErrInsufficientData", n, err)
		}
	}
}

func TestExtract_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.FrameSizeDivisor = 0

	_, err := Extract(audiotest.Ramp(100000), cfg)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Extract() error = %v, want ErrInvalidConfig", err)
	}
}

func TestExtract_TransformError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	cfg := DefaultConfig()
	cfg.SampleRate = 4
	cfg.FrameSizeDivisor = 1
	cfg.Transformer = TransformerFunc(func([]complex128) error { return boom })

	_, err := Extract(audiotest.Ramp(8), cfg)
	if !errors.Is(err, boom) {
		t.Errorf("Extract() error = %v, want %v", err, boom)
	}
}
