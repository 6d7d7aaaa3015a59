// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Downmix averages interleaved frames into a mono signal. Mono input is
// copied unchanged.
func Downmix(interleaved []float32, channels int) ([]float32, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}
	if len(interleaved)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples, %d channels", ErrPartialFrame, len(interleaved), channels)
	}

	frames := len(interleaved) / channels
	out := make([]float32, frames)

	switch channels {
	case 1:
		copy(out, interleaved)
	case 2:
		for f := range frames {
			out[f] = (interleaved[2*f] + interleaved[2*f+1]) * 0.5
		}
	default:
		inv := 1 / float32(channels)
		for f := range frames {
			var sum float32
			for _, s := range interleaved[f*channels : (f+1)*channels] {
				sum += s
			}
			out[f] = sum * inv
		}
	}

	return out, nil
}

// Clamp limits every sample of s to [-1, 1] in place.
func Clamp(s []float32) {
	for i, v := range s {
		s[i] = max(-1, min(1, v))
	}
}
