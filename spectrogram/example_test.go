// SPDX-License-Identifier: EPL-2.0

package spectrogram_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/ik5/audspectro/spectrogram"
)

// Example_generate renders two seconds of a 440 Hz tone.
func Example_generate() {
	const sampleRate = 8000

	samples := make([]float32, 2*sampleRate)
	for i := range samples {
		samples[i] = float32(math.Sin(2 * math.Pi * 440 * float64(i) / sampleRate))
	}

	cfg := spectrogram.DefaultConfig()
	cfg.SampleRate = sampleRate
	cfg.FrameSizeDivisor = 8
	cfg.Downsample = 4

	img, err := spectrogram.Generate(samples, cfg)
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	fmt.Printf("%dx%d, %d bytes\n", img.Width, img.Height, len(img.Pix))
	// Output: 125x16, 6000 bytes
}

// Example_silence shows the error returned for a silent input.
func Example_silence() {
	cfg := spectrogram.DefaultConfig()

	_, err := spectrogram.Generate(make([]float32, cfg.SampleRate), cfg)
	fmt.Println(errors.Is(err, spectrogram.ErrSilence))
	// Output: true
}

func ExampleMapColor() {
	fmt.Println(spectrogram.MapColor(0, spectrogram.DefaultGamma))
	fmt.Println(spectrogram.MapColor(1, spectrogram.DefaultGamma))
	// Output:
	// {12 16 48 255}
	// {255 236 160 255}
}
