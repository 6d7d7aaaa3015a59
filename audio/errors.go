// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrPartialFrame        = errors.New("sample count must be multiple of channels")
	ErrInvalidChannels     = errors.New("channel count must be positive")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")
)
