// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/audspectro/utils"
)

// Resample converts mono samples from srcRate to dstRate using Catmull-Rom
// cubic interpolation. When downsampling, a one-pole low-pass at the
// destination Nyquist frequency runs first to limit aliasing.
// The output holds floor(len(samples) * dstRate / srcRate) samples.
func Resample(samples []float32, srcRate, dstRate int) ([]float32, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidSampleRate, srcRate, dstRate)
	}

	if srcRate == dstRate || len(samples) == 0 {
		return append([]float32(nil), samples...), nil
	}

	src := samples
	if dstRate < srcRate {
		src = lowPass(samples, float64(srcRate), float64(dstRate)/2)
	}

	ratio := float64(srcRate) / float64(dstRate)
	n := int(int64(len(src)) * int64(dstRate) / int64(srcRate))
	out := make([]float32, n)
	last := len(src) - 1

	at := func(i int) float32 {
		return src[max(0, min(last, i))]
	}

	for i := range out {
		pos := float64(i) * ratio
		j := int(math.Floor(pos))
		x := float32(pos - float64(j))

		out[i] = utils.CubicInterpolate(at(j-1), at(j), at(j+1), at(j+2), x)
	}

	return out, nil
}

// lowPass is a first-order RC filter: y[n] = a*x[n] + (1-a)*y[n-1].
func lowPass(in []float32, sampleRate, cutoff float64) []float32 {
	rc := 1 / (2 * math.Pi * cutoff)
	dt := 1 / sampleRate
	alpha := float32(dt / (rc + dt))

	out := make([]float32, len(in))
	prev := in[0]
	for i, x := range in {
		prev = alpha*x + (1-alpha)*prev
		out[i] = prev
	}

	return out
}
