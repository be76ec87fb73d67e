// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/afskdecode/audio"
)

// mockMP3Reader hands out PCM bytes in fixed, possibly odd, slices the way
// go-mp3 can.
type mockMP3Reader struct {
	sampleRate int
	data       []byte
	offset     int
	step       int
	err        error
}

func newMock(step int, samples ...int16) *mockMP3Reader {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, samples)

	return &mockMP3Reader{sampleRate: 44100, data: buf.Bytes(), step: step}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.offset >= len(m.data) {
		if m.err != nil {
			return 0, m.err
		}
		return 0, io.EOF
	}

	n := copy(buf[:min(len(buf), m.step)], m.data[m.offset:])
	m.offset += n

	return n, nil
}

func drain(t *testing.T, src audio.Source, bufSize int) ([]float32, error) {
	t.Helper()

	var out []float32
	err := audio.Drain(src, bufSize, func(chunk []float32) error {
		if len(chunk)%2 != 0 {
			t.Errorf("chunk of %d samples splits a stereo frame", len(chunk))
		}
		out = append(out, chunk...)
		return nil
	})

	return out, err
}

func TestSource_OddByteReads(t *testing.T) {
	t.Parallel()

	samples := []int16{1000, -1000, 2000, -2000, 16384, -16384, 0, 32767}

	for _, step := range []int{1, 3, 5, 7, 1024} {
		src := &source{dec: newMock(step, samples...), sampleRate: 44100}

		got, err := drain(t, src, 4)
		if err != nil {
			t.Fatalf("step %d: Drain() error = %v", step, err)
		}
		if len(got) != len(samples) {
			t.Fatalf("step %d: read %d samples, want %d", step, len(got), len(samples))
		}
		for i, s := range samples {
			if want := float32(s) / 32768; got[i] != want {
				t.Errorf("step %d: sample %d = %v, want %v", step, i, got[i], want)
			}
		}
	}
}

func TestSource_DropsTrailingPartialFrame(t *testing.T) {
	t.Parallel()

	mock := newMock(3, 100, 200, 300)
	src := &source{dec: mock, sampleRate: 44100}

	got, err := drain(t, src, 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("read %d samples, want 2", len(got))
	}

	if n, err := src.ReadSamples(make([]float32, 4)); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMock(4), sampleRate: 44100}
	if _, err := src.ReadSamples(make([]float32, 1)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples(1) error = %v, want ErrInvalidDstSize", err)
	}
	if src.Channels() != 2 || src.SampleRate() != 44100 {
		t.Errorf("metadata = %d ch/%d Hz, want 2 ch/44100 Hz", src.Channels(), src.SampleRate())
	}

	mock := newMock(4, 1, 2)
	mock.err = io.ErrUnexpectedEOF
	src = &source{dec: mock, sampleRate: 44100}
	if _, err := drain(t, src, 8); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Drain() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not MP3 data")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}
