// SPDX-License-Identifier: EPL-2.0

package audspectro

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ik5/audspectro/decode"
	"github.com/ik5/audspectro/imagesink"
	"github.com/ik5/audspectro/spectrogram"
)

const (
	DefaultOutput  = "./a.png"
	DefaultThreads = 16
)

// Job is one input file rendered to one image.
type Job struct {
	Input  string
	Output string
	// Threads is forwarded to decoders that accept a hint.
	Threads int
	Config  spectrogram.Config
	// Decoder defaults to decode.FFmpeg.
	Decoder decode.Decoder
}

// NewJob returns a job for input with every default applied.
func NewJob(input string) Job {
	return Job{
		Input:   input,
		Output:  DefaultOutput,
		Threads: DefaultThreads,
		Config:  spectrogram.DefaultConfig(),
	}
}

func (j Job) Validate() error {
	if strings.TrimSpace(j.Input) == "" {
		return fmt.Errorf("%w: input path is required", spectrogram.ErrInvalidConfig)
	}
	if j.Threads < 0 {
		return fmt.Errorf("%w: threads must not be negative, got %d", spectrogram.ErrInvalidConfig, j.Threads)
	}
	return j.Config.Validate()
}

func (j Job) output() string {
	if j.Output == "" {
		return DefaultOutput
	}
	return j.Output
}

func (j Job) decoder() decode.Decoder {
	if j.Decoder == nil {
		return decode.FFmpeg{}
	}
	return j.Decoder
}

// Result describes a rendered image.
type Result struct {
	Output  string
	Samples int
	Width   int
	Height  int
	Elapsed time.Duration
}

// Render decodes the job input, generates the spectrogram and saves it.
// A nil logger uses slog.Default.
func Render(ctx context.Context, job Job, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	out := job.output()

	logger.DebugContext(ctx, "decoding",
		slog.String("input", job.Input),
		slog.Int("sample_rate", job.Config.SampleRate),
		slog.Int("threads", job.Threads))

	samples, err := job.decoder().Decode(ctx, job.Input, job.Config.SampleRate, job.Threads)
	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "decoded",
		slog.Int("samples", len(samples)),
		slog.Int("window", job.Config.WindowWidth()),
		slog.Int("windows", len(samples)/job.Config.WindowWidth()))

	img, err := spectrogram.Generate(samples, job.Config)
	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "generated",
		slog.Int("width", img.Width),
		slog.Int("height", img.Height))

	if err := imagesink.Save(out, img.Width, img.Height, img.Pix); err != nil {
		return nil, err
	}

	res := &Result{
		Output:  out,
		Samples: len(samples),
		Width:   img.Width,
		Height:  img.Height,
		Elapsed: time.Since(start),
	}

	logger.InfoContext(ctx, "spectrogram saved",
		slog.String("path", res.Output),
		slog.Int("width", res.Width),
		slog.Int("height", res.Height),
		slog.Duration("elapsed", res.Elapsed))

	return res, nil
}
