// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes straight to float32, so samples are passed through without
// scaling. Channel count and sample rate come from the identification header.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if errors.Is(err, vorbis.ErrNotVorbisFile) {
//	    // missing or corrupt Ogg/Vorbis headers
//	}
package vorbis
