// SPDX-License-Identifier: EPL-2.0

// Package cli parses the spectrogram command line and runs a render.
package cli
