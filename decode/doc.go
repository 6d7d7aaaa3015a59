// SPDX-License-Identifier: EPL-2.0

// Package decode turns audio files into mono float32 PCM at a requested
// sample rate.
//
// FFmpeg shells out to an ffmpeg binary and reads raw f32le from its stdout;
// it handles anything ffmpeg can open. Native decodes WAV, AIFF, MP3, Ogg
// Vorbis and FLAC in process, then downmixes and resamples with the audio
// package.
//
//	dec, err := decode.New("native")
//	samples, err := dec.Decode(ctx, "tone.wav", 44100, 16)
//
// Every error wraps ErrDecode.
package decode
