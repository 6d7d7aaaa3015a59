// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams through github.com/mewkiz/flac.
//
// Frames are decoded one at a time and their subframes interleaved, so a
// read may span several frames. Samples are scaled by the bit depth in the
// STREAMINFO block.
package flac
