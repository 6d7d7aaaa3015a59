// SPDX-License-Identifier: EPL-2.0

// Package wav decodes integer PCM WAV files and writes mono 16-bit ones.
//
// Decoding is done by github.com/go-audio/wav; 16, 24 and 32-bit integer
// PCM is accepted, mono or multi-channel, at any sample rate. IEEE float and
// 8-bit files are rejected.
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// Readers that cannot seek are buffered in memory first.
//
// WriteWAV16 emits a canonical 44-byte header followed by little-endian
// samples; the spectrogram tools use it to produce test tones.
package wav
