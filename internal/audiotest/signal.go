// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Sine returns n mono samples of a sine tone with the given amplitude.
func Sine(sampleRate, n int, frequency, amplitude float64) []float32 {
	out := make([]float32, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = float32(amplitude * math.Sin(2*math.Pi*frequency*t))
	}
	return out
}

// Silence returns n zero samples.
func Silence(n int) []float32 {
	return make([]float32, n)
}

// Ramp returns n samples rising linearly from 0 to just below 1.
func Ramp(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i) / float32(n)
	}
	return out
}
