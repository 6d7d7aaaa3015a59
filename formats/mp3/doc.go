// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio through
// github.com/hajimehoshi/go-mp3.
//
// The underlying decoder always produces stereo 16-bit PCM, so the returned
// source reports two channels even for mono files; the samples are the same
// in both channels in that case.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if errors.Is(err, mp3.ErrNotMP3File) {
//	    // no MPEG frame found
//	}
package mp3
