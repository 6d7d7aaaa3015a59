// SPDX-License-Identifier: EPL-2.0

package imagesink

import "errors"

var (
	// ErrImage is wrapped by every failure of this package.
	ErrImage = errors.New("image write failed")

	ErrDimensionMismatch = errors.New("pixel buffer does not match image dimensions")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)
