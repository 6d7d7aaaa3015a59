// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files through github.com/go-audio/aiff.
//
// Signed 16, 24 and 32-bit PCM is supported with any channel count and
// sample rate. Samples come out interleaved as float32 in [-1, 1].
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // 8-bit or AIFF-C
//	}
//
// AIFF is big-endian and stores its sample rate as an 80-bit extended float;
// both are handled by the underlying decoder. Inputs that cannot seek are
// buffered in memory.
package aiff
