// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

const writeChunk = 8192

// WriteWAV16 writes samples as a canonical 44-byte header mono 16-bit PCM WAV.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	const (
		channels      = 1
		bitsPerSample = 16
		blockAlign    = channels * bitsPerSample / 8
	)

	dataSize := uint32(len(samples) * blockAlign)

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], channels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	buf := make([]byte, 0, min(len(samples), writeChunk)*2)
	for start := 0; start < len(samples); start += writeChunk {
		buf = buf[:0]
		for _, s := range samples[start:min(start+writeChunk, len(samples))] {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("write samples at %d: %w", start, err)
		}
	}

	return nil
}
