// SPDX-License-Identifier: EPL-2.0

package intpcm

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockReader behaves like the go-audio decoders: it reports the end of the
// data with (0, nil).
type mockReader struct {
	sampleRate int
	channels   int
	samples    []int
	offset     int
	err        error
}

func (m *mockReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func TestSource_ReadsUntilEOF(t *testing.T) {
	t.Parallel()

	dec := &mockReader{sampleRate: 8000, channels: 1, samples: []int{0, 16384, -16384, 32767, -32768}}
	src, err := New(dec, 16, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if src.SampleRate() != 8000 || src.Channels() != 1 {
		t.Errorf("metadata = %d Hz/%d ch, want 8000 Hz/1 ch", src.SampleRate(), src.Channels())
	}

	buf := make([]float32, 3)
	var got []float32
	for {
		n, err := src.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768, -1}
	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}

	if n, err := src.ReadSamples(buf); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_UnsignedOffset(t *testing.T) {
	t.Parallel()

	src, err := New(&mockReader{sampleRate: 8000, channels: 1, samples: []int{0, 128, 255}}, 8, 128)
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]float32, 8)
	n, _ := src.ReadSamples(buf)
	if n != 3 || buf[0] != -1 || buf[1] != 0 || buf[2] <= 0 {
		t.Errorf("ReadSamples() = %v, want [-1 0 >0]", buf[:n])
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	if _, err := New(&mockReader{sampleRate: 8000, channels: 0}, 16, 0); !errors.Is(err, ErrBadFormat) {
		t.Errorf("New() error = %v, want ErrBadFormat", err)
	}

	if _, err := New(&mockReader{sampleRate: 8000, channels: 1}, 12, 0); err == nil {
		t.Error("New() accepted a 12-bit depth")
	}

	readErr := errors.New("bad chunk")
	src, err := New(&mockReader{sampleRate: 8000, channels: 1, err: readErr}, 16, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, readErr) {
		t.Errorf("ReadSamples() error = %v, want %v", err, readErr)
	}
}
