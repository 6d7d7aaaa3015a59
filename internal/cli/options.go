// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ik5/audspectro"
	"github.com/ik5/audspectro/decode"
	"github.com/ik5/audspectro/spectrogram"
)

// Environment variables read by Parse. Flags override them.
const (
	EnvSampleRate   = "AUDSPECTRO_SAMPLE_RATE"
	EnvFrameDivisor = "AUDSPECTRO_FRAME_DIVISOR"
	EnvDownsample   = "AUDSPECTRO_DOWNSAMPLE"
	EnvGamma        = "AUDSPECTRO_GAMMA"
	EnvJobs         = "AUDSPECTRO_JOBS"
	EnvDecoder      = "AUDSPECTRO_DECODER"
	EnvFFT          = "AUDSPECTRO_FFT"
)

// Options is the parsed command line.
type Options struct {
	Input        string
	Output       string
	SampleRate   int
	FrameDivisor int
	Downsample   int
	Gamma        float64
	Jobs         int
	Decoder      string
	FFT          string
	Verbose      bool
}

// Defaults reads the environment through getenv. Unparsable values fall
// back to the built-in default.
func Defaults(getenv func(string) string) Options {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	return Options{
		Output:       audspectro.DefaultOutput,
		SampleRate:   envInt(getenv, EnvSampleRate, spectrogram.DefaultSampleRate),
		FrameDivisor: envInt(getenv, EnvFrameDivisor, spectrogram.DefaultFrameSizeDivisor),
		Downsample:   envInt(getenv, EnvDownsample, spectrogram.DefaultDownsample),
		Gamma:        envFloat(getenv, EnvGamma, spectrogram.DefaultGamma),
		Jobs:         envInt(getenv, EnvJobs, audspectro.DefaultThreads),
		Decoder:      envStr(getenv, EnvDecoder, decode.NameFFmpeg),
		FFT:          envStr(getenv, EnvFFT, spectrogram.BackendGonum),
	}
}

func newFlagSet(o *Options) *flag.FlagSet {
	fs := flag.NewFlagSet("spectrogram", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	for _, name := range []string{"i", "input"} {
		fs.StringVar(&o.Input, name, o.Input, "input audio file (required)")
	}
	for _, name := range []string{"o", "output"} {
		fs.StringVar(&o.Output, name, o.Output, "output image; .png .jpg .bmp or .tiff")
	}
	for _, name := range []string{"r", "sample-rate"} {
		fs.IntVar(&o.SampleRate, name, o.SampleRate, "analysis sample rate in Hz")
	}
	for _, name := range []string{"f", "frame-divisor"} {
		fs.IntVar(&o.FrameDivisor, name, o.FrameDivisor, "window width is sample rate / divisor")
	}
	for _, name := range []string{"d", "downsample"} {
		fs.IntVar(&o.Downsample, name, o.Downsample, "frequency bins averaged per pixel")
	}
	for _, name := range []string{"g", "gamma"} {
		fs.Float64Var(&o.Gamma, name, o.Gamma, "brightness curve exponent")
	}
	for _, name := range []string{"j", "jobs"} {
		fs.IntVar(&o.Jobs, name, o.Jobs, "thread hint for the ffmpeg decoder")
	}
	fs.StringVar(&o.Decoder, "decoder", o.Decoder, "decoder: ffmpeg or native")
	fs.StringVar(&o.FFT, "fft", o.FFT, "FFT backend: gonum or godsp")
	for _, name := range []string{"v", "verbose"} {
		fs.BoolVar(&o.Verbose, name, o.Verbose, "log every pipeline step")
	}

	return fs
}

// Parse builds Options from args (without the program name) on top of the
// environment defaults. flag.ErrHelp is returned as is for -h.
func Parse(args []string, getenv func(string) string) (Options, error) {
	o := Defaults(getenv)
	fs := newFlagSet(&o)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return o, err
		}
		return o, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("%w: unexpected arguments %v", ErrUsage, fs.Args())
	}
	if strings.TrimSpace(o.Input) == "" {
		return o, fmt.Errorf("%w: %w", ErrUsage, ErrMissingInput)
	}

	return o, nil
}

// Usage writes the flag summary to w.
func Usage(w io.Writer) {
	o := Defaults(nil)
	fs := newFlagSet(&o)
	fs.SetOutput(w)

	fmt.Fprintln(w, "usage: spectrogram -i <input> [-o a.png] [flags]")
	fs.PrintDefaults()
}

// Job converts the options into a render job.
func (o Options) Job() (audspectro.Job, error) {
	tr, err := spectrogram.NewTransformer(o.FFT)
	if err != nil {
		return audspectro.Job{}, err
	}

	dec, err := decode.New(o.Decoder)
	if err != nil {
		return audspectro.Job{}, fmt.Errorf("%w: %w", spectrogram.ErrInvalidConfig, err)
	}

	cfg := spectrogram.DefaultConfig()
	cfg.SampleRate = o.SampleRate
	cfg.FrameSizeDivisor = o.FrameDivisor
	cfg.Downsample = o.Downsample
	cfg.Gamma = o.Gamma
	cfg.Transformer = tr

	job := audspectro.Job{
		Input:   o.Input,
		Output:  o.Output,
		Threads: o.Jobs,
		Config:  cfg,
		Decoder: dec,
	}

	return job, job.Validate()
}

func envStr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(getenv func(string) string, key string, fallback int) int {
	if v := getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(getenv func(string) string, key string, fallback float64) float64 {
	if v := getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
