// SPDX-License-Identifier: EPL-2.0

// Command tonegen writes a mono 16-bit sine wave WAV file, handy as
// spectrogram input.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/fatih/color"

	"github.com/ik5/audspectro/formats/wav"
	"github.com/ik5/audspectro/utils"
)

func main() {
	freq := flag.Float64("freq", 1000, "tone frequency in Hz")
	rate := flag.Int("rate", 8000, "sample rate in Hz")
	dur := flag.Float64("dur", 2, "duration in seconds")
	amp := flag.Float64("amp", 0.9, "peak amplitude, 0..1")
	out := flag.String("o", "tone.wav", "output WAV file")
	flag.Parse()

	if err := run(*out, *rate, *freq, *dur, *amp); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	color.New(color.FgGreen).Printf("%s: %.0f Hz for %.2fs at %d Hz\n", *out, *freq, *dur, *rate)
}

func run(path string, rate int, freq, dur, amp float64) error {
	if rate <= 0 || dur <= 0 {
		return fmt.Errorf("rate and duration must be positive")
	}
	if freq < 0 || freq > float64(rate)/2 {
		return fmt.Errorf("frequency %.1f Hz is outside 0..%d Hz", freq, rate/2)
	}

	n := int(math.Round(dur * float64(rate)))
	pcm := make([]int16, n)
	for i := range pcm {
		s := amp * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
		pcm[i] = utils.Float32ToInt16(float32(s))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := wav.WriteWAV16(w, rate, pcm); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
