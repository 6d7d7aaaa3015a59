// SPDX-License-Identifier: EPL-2.0

package decode

import "errors"

var (
	// ErrDecode is wrapped by every failure of a Decoder.
	ErrDecode = errors.New("audio decode failed")

	ErrSourceNotFound    = errors.New("audio source not found")
	ErrMisalignedStream  = errors.New("decoded byte stream is not a whole number of float32 samples")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrUnknownDecoder    = errors.New("unknown decoder")
)
