// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, []int16{1, -1, 300}); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != headerSize+6 {
		t.Fatalf("file size = %d, want %d", len(data), headerSize+6)
	}

	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", binary.LittleEndian.Uint32(data[4:8]), 36 + 6},
		{"format", uint32(binary.LittleEndian.Uint16(data[20:22])), 1},
		{"channels", uint32(binary.LittleEndian.Uint16(data[22:24])), 1},
		{"sample rate", binary.LittleEndian.Uint32(data[24:28]), 8000},
		{"byte rate", binary.LittleEndian.Uint32(data[28:32]), 16000},
		{"block align", uint32(binary.LittleEndian.Uint16(data[32:34])), 2},
		{"bits", uint32(binary.LittleEndian.Uint16(data[34:36])), 16},
		{"data size", binary.LittleEndian.Uint32(data[40:44]), 6},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	if got := int16(binary.LittleEndian.Uint16(data[46:48])); got != -1 {
		t.Errorf("second sample = %d, want -1", got)
	}
}

func TestWriteWAV16_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 20000)
	for i := range samples {
		samples[i] = int16((i%200 - 100) * 300)
	}

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 22050, samples); err != nil {
		t.Fatal(err)
	}

	src, err := Decoder{}.Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got := readAll(t, src)
	if len(got) != len(samples) {
		t.Fatalf("read %d samples, want %d", len(got), len(samples))
	}
	for i, s := range samples {
		if got[i] != float32(s)/32768 {
			t.Fatalf("sample %d = %v, want %v", i, got[i], float32(s)/32768)
		}
	}
}

func TestWriteWAV16_WriterError(t *testing.T) {
	t.Parallel()

	if err := WriteWAV16(failWriter{}, 8000, []int16{1}); err == nil {
		t.Error("WriteWAV16() error = nil, want writer error")
	}
}

func TestEncode_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	samples := []int16{0, 12000, -12000, 32767, -32768, 5}
	if err := Encode(f, 11025, samples); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	want := new(bytes.Buffer)
	if err := WriteWAV16(want, 11025, samples); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want.Bytes()) {
		t.Errorf("Encode() and WriteWAV16() disagree:\n got %x\nwant %x", got, want.Bytes())
	}
}
