// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ik5/audspectro/audio"
)

type failWriter struct{ after int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("disk full")
	}
	w.after--
	return len(p), nil
}

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, []int16{1, -1, 2}); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	b := buf.Bytes()
	if len(b) != 44+6 {
		t.Fatalf("len = %d, want 50", len(b))
	}

	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{name: "riff size", got: binary.LittleEndian.Uint32(b[4:8]), want: 42},
		{name: "format", got: uint32(binary.LittleEndian.Uint16(b[20:22])), want: 1},
		{name: "channels", got: uint32(binary.LittleEndian.Uint16(b[22:24])), want: 1},
		{name: "sample rate", got: binary.LittleEndian.Uint32(b[24:28]), want: 8000},
		{name: "byte rate", got: binary.LittleEndian.Uint32(b[28:32]), want: 16000},
		{name: "bits", got: uint32(binary.LittleEndian.Uint16(b[34:36])), want: 16},
		{name: "data size", got: binary.LittleEndian.Uint32(b[40:44]), want: 6},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" || string(b[36:40]) != "data" {
		t.Errorf("bad chunk markers in %q", b[:44])
	}
}

func TestWriteWAV16_RoundTrip(t *testing.T) {
	t.Parallel()

	// Longer than one write chunk.
	samples := make([]int16, writeChunk*2+17)
	for i := range samples {
		samples[i] = int16(i*7 - 30000)
	}

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 22050, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got, err := audio.ReadAll(src, 1000)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if len(got) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
	}
	for i, s := range samples {
		if want := float32(s) / 32768; got[i] != want {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestWriteWAV16_Errors(t *testing.T) {
	t.Parallel()

	if err := WriteWAV16(&failWriter{after: 0}, 8000, []int16{1}); err == nil {
		t.Error("WriteWAV16() header write error = nil")
	}
	if err := WriteWAV16(&failWriter{after: 1}, 8000, []int16{1}); err == nil {
		t.Error("WriteWAV16() data write error = nil")
	}
	if err := WriteWAV16(&failWriter{after: 1}, 8000, nil); err != nil {
		t.Errorf("WriteWAV16(no samples) error = %v", err)
	}
}
