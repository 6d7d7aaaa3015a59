// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrNotFlacFile         = errors.New("not a FLAC stream")
	ErrUnsupportedBitDepth = errors.New("FLAC bit depth must be between 4 and 32")
	ErrChannelMismatch     = errors.New("FLAC frame channel count differs from stream info")
)
