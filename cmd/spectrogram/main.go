// SPDX-License-Identifier: EPL-2.0

// Command spectrogram renders an audio file as a spectrogram image.
//
//	spectrogram -i song.mp3 -o song.png -r 22050 -d 16
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/audspectro/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], os.Getenv, os.Stdout, os.Stderr)
	cancel()

	os.Exit(code)
}
