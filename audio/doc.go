// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding primitives the spectrogram tools build on.
//
// Decoders in the formats subpackages return a Source. A Source is read to
// the end with ReadAll, folded to one channel with Downmix and brought to the
// analysis sample rate with Resample:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	interleaved, err := audio.ReadAll(src, 4096)
//	mono, err := audio.Downmix(interleaved, src.Channels())
//	samples, err := audio.Resample(mono, src.SampleRate(), 44100)
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are float32 in [-1.0, 1.0], interleaved by channel. ReadSamples
// returns io.EOF once the stream is exhausted.
//
// # Format Registry
//
// A Registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, format, ok := registry.ForPath("song.WAV") // "wav"
//
// # Resampling
//
// Resample uses Catmull-Rom cubic interpolation. Downsampling runs a
// first-order low-pass at the destination Nyquist frequency first. Equal
// rates return a copy of the input.
//
// # Integer PCM
//
// IntSource adapts the go-audio decoders (github.com/go-audio/wav and
// github.com/go-audio/aiff), which produce integer buffers, to Source.
package audio
