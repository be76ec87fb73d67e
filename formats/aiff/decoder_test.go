// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    io.Reader
	}{
		{"text", bytes.NewReader([]byte("This is not AIFF data"))},
		{"empty", bytes.NewReader(nil)},
		{"wav header", bytes.NewReader([]byte("RIFF\x24\x00\x00\x00WAVEfmt "))},
		{"non-seekable text", io.MultiReader(bytes.NewReader([]byte("FORM nope")))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(tt.r)
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestDecoder_ReadError(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(failingReader{})
	if err == nil || errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want the read error", err)
	}
}
