// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input has no readable FORM/COMM header.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth is returned for anything but 16, 24 or 32-bit PCM.
	ErrUnsupportedBitDepth = errors.New("only 16, 24 and 32-bit PCM AIFF is supported")

	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
