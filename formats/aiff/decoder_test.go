// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math/bits"
	"testing"

	"github.com/ik5/audspectro/audio"
)

// extended80 encodes an integral sample rate as an IEEE 754 80-bit float.
func extended80(rate int) []byte {
	out := make([]byte, 10)
	e := bits.Len64(uint64(rate)) - 1
	binary.BigEndian.PutUint16(out[0:2], uint16(16383+e))
	binary.BigEndian.PutUint64(out[2:10], uint64(rate)<<(63-e))
	return out
}

// createAIFFFile builds a minimal FORM/AIFF with COMM and SSND chunks.
func createAIFFFile(sampleRate, channels, bitsPerSample int, samples []int32) []byte {
	bytesPerSample := bitsPerSample / 8
	data := new(bytes.Buffer)
	for _, s := range samples {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(s)<<(32-bitsPerSample))
		data.Write(b[:bytesPerSample])
	}

	comm := new(bytes.Buffer)
	binary.Write(comm, binary.BigEndian, int16(channels))
	binary.Write(comm, binary.BigEndian, uint32(len(samples)/channels))
	binary.Write(comm, binary.BigEndian, int16(bitsPerSample))
	comm.Write(extended80(sampleRate))

	body := new(bytes.Buffer)
	body.WriteString("AIFF")
	body.WriteString("COMM")
	binary.Write(body, binary.BigEndian, uint32(comm.Len()))
	body.Write(comm.Bytes())
	body.WriteString("SSND")
	binary.Write(body, binary.BigEndian, uint32(8+data.Len()))
	binary.Write(body, binary.BigEndian, uint32(0)) // offset
	binary.Write(body, binary.BigEndian, uint32(0)) // block size
	body.Write(data.Bytes())

	out := new(bytes.Buffer)
	out.WriteString("FORM")
	binary.Write(out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

func TestExtended80(t *testing.T) {
	t.Parallel()

	// 44100 Hz is the well known 40 0E AC 44 00 ...
	want := []byte{0x40, 0x0E, 0xAC, 0x44, 0, 0, 0, 0, 0, 0}
	if got := extended80(44100); !bytes.Equal(got, want) {
		t.Errorf("extended80(44100) = % x, want % x", got, want)
	}
}

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
		bits       int
		samples    []int32
		want       []float32
	}{
		{
			name:       "mono 16 bit",
			sampleRate: 8000,
			channels:   1,
			bits:       16,
			samples:    []int32{0, 16384, -16384, -32768},
			want:       []float32{0, 0.5, -0.5, -1},
		},
		{
			name:       "stereo 16 bit",
			sampleRate: 44100,
			channels:   2,
			bits:       16,
			samples:    []int32{8192, -8192, 16384, -16384},
			want:       []float32{0.25, -0.25, 0.5, -0.5},
		},
		{
			name:       "mono 24 bit",
			sampleRate: 48000,
			channels:   1,
			bits:       24,
			samples:    []int32{4194304, -2097152},
			want:       []float32{0.5, -0.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := createAIFFFile(tt.sampleRate, tt.channels, tt.bits, tt.samples)

			src, err := Decoder{}.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			defer src.Close()

			if src.SampleRate() != tt.sampleRate {
				t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), tt.sampleRate)
			}
			if src.Channels() != tt.channels {
				t.Errorf("Channels() = %d, want %d", src.Channels(), tt.channels)
			}

			got, err := audio.ReadAll(src, 0)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ReadAll() len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	data := createAIFFFile(22050, 1, 16, []int32{1, 2, 3, 4})

	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "not AIFF", data: []byte("This is not AIFF data"), want: ErrNotAiffFile},
		{name: "empty", data: []byte{}, want: ErrNotAiffFile},
		{name: "8 bit", data: createAIFFFile(8000, 1, 8, []int32{1, 2}), want: ErrUnsupportedBitDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{err: ErrNotAiffFile, want: "not an AIFF file"},
		{err: ErrUnsupportedBitDepth, want: "only 16, 24 and 32-bit PCM AIFF is supported"},
		{err: ErrUnsupportedAiffLayout, want: "unsupported AIFF layout"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}
