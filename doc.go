// SPDX-License-Identifier: EPL-2.0

// Package audspectro renders audio files as spectrogram images.
//
// A Job names an input, an output and a spectrogram.Config. Render runs the
// whole pipeline: the input is decoded to mono float32 PCM (package decode),
// split into fixed windows and transformed (package spectrogram), normalized,
// color mapped, and finally written to disk (package imagesink).
//
//	job := audspectro.NewJob("song.mp3")
//	job.Output = "song.png"
//	res, err := audspectro.Render(ctx, job, slog.Default())
//
// Errors keep their sentinels from the lower packages, so callers can use
// errors.Is with spectrogram.ErrInvalidConfig, spectrogram.ErrSilence,
// spectrogram.ErrInsufficientData, decode.ErrDecode or imagesink.ErrImage.
//
// # Packages
//
//   - spectrogram: the engine (extract, normalize, color map, rasterize)
//   - decode: ffmpeg and native decoders
//   - audio: sources, registry, downmix and resampling
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis, formats/flac
//   - imagesink: PNG, JPEG, BMP and TIFF output
//
// The spectrogram command wraps Render; tonegen writes test tones.
package audspectro
