// SPDX-License-Identifier: EPL-2.0

package spectrogram

import "fmt"

// SilenceEpsilon is the largest peak magnitude still treated as silence.
const SilenceEpsilon = 1e-9

// Max returns the largest value in m, or 0 for an empty matrix.
func Max(m Matrix) float64 {
	var peak float64
	for _, row := range m {
		for _, v := range row {
			if v > peak {
				peak = v
			}
		}
	}
	return peak
}

// Normalize divides every value of m by its global maximum, in place.
// On ErrSilence m is left untouched.
func Normalize(m Matrix) error {
	if len(m) == 0 {
		return fmt.Errorf("%w: empty spectrogram", ErrInsufficientData)
	}

	peak := Max(m)
	if peak <= SilenceEpsilon {
		return fmt.Errorf("%w: peak magnitude %g", ErrSilence, peak)
	}

	for _, row := range m {
		for j := range row {
			row[j] /= peak
		}
	}

	return nil
}
