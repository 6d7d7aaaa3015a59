// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"

	"github.com/ik5/audspectro"
	"github.com/ik5/audspectro/spectrogram"
)

// Exit statuses returned by Run.
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
)

var (
	red   = color.New(color.FgRed)
	green = color.New(color.FgGreen)
	faint = color.New(color.Faint)
)

// ExitCode maps an error from Parse, Job or Render to a process status.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, ErrUsage), errors.Is(err, spectrogram.ErrInvalidConfig):
		return ExitUsage
	default:
		return ExitFailed
	}
}

// Run is the whole spectrogram command. Logs go to stderr, the summary to
// stdout.
func Run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	opts, err := Parse(args, getenv)
	if errors.Is(err, flag.ErrHelp) {
		Usage(stderr)
		return ExitOK
	}
	if err != nil {
		red.Fprintln(stderr, "error:", err)
		Usage(stderr)
		return ExitCode(err)
	}

	job, err := opts.Job()
	if err != nil {
		red.Fprintln(stderr, "error:", err)
		return ExitCode(err)
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	res, err := audspectro.Render(ctx, job, logger)
	if err != nil {
		red.Fprintln(stderr, "error:", err)
		return ExitCode(err)
	}

	green.Fprintf(stdout, "%s ", res.Output)
	faint.Fprintf(stdout, "%dx%d from %d samples in %s\n",
		res.Width, res.Height, res.Samples, res.Elapsed.Round(time.Millisecond))

	return ExitOK
}
