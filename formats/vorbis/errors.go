// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	ErrNotVorbisFile = errors.New("not an Ogg Vorbis stream")
	ErrNoChannels    = errors.New("vorbis stream reports no channels")
)
