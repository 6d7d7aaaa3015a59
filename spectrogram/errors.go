// SPDX-License-Identifier: EPL-2.0

package spectrogram

import "errors"

var (
	ErrInvalidConfig    = errors.New("invalid spectrogram configuration")
	ErrInsufficientData = errors.New("insufficient audio data")
	ErrSilence          = errors.New("insufficient signal energy")
	ErrRaggedMatrix     = errors.New("spectrogram rows differ in length")
)
