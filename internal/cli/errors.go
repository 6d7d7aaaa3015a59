// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"

	"github.com/ik5/audspectro/spectrogram"
)

var (
	// ErrUsage marks command line mistakes; it maps to exit status 2.
	ErrUsage = errors.New("usage error")

	ErrMissingInput = fmt.Errorf("%w: input path is required (-i)", spectrogram.ErrInvalidConfig)
)
