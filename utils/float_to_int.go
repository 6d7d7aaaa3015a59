// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a sample in [-1, 1] to 16-bit PCM, clamping values
// outside the range. The scale is symmetric, so -1 maps to -32767.
func Float32ToInt16(x float32) int16 {
	x = max(-1, min(1, x))
	return int16(math.Round(float64(x) * math.MaxInt16))
}
