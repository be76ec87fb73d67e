// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/afskdecode/audio"
	"github.com/ik5/afskdecode/internal/pcm"
)

const (
	// go-mp3 always produces 16-bit little-endian stereo
	channels   = 2
	frameBytes = channels * 2

	maxEmptyReads = 100
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// buf[:held] are bytes of an incomplete frame from the previous read
	held int
	done bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / channels
	if frames == 0 {
		if len(dst) == 0 {
			return 0, nil
		}
		return 0, audio.ErrInvalidDstSize
	}
	if s.done {
		return 0, io.EOF
	}

	need := frames * frameBytes
	if cap(s.buf) < need {
		buf := make([]byte, need)
		copy(buf, s.buf[:s.held])
		s.buf = buf
	}
	s.buf = s.buf[:need]

	n, empty := s.held, 0
	var err error
	for n < frameBytes && err == nil {
		var m int
		m, err = s.dec.Read(s.buf[n:])
		n += m
		if m == 0 && err == nil {
			if empty++; empty >= maxEmptyReads {
				err = io.ErrNoProgress
			}
		}
	}

	whole := n - n%frameBytes
	samples := whole / 2
	for i := range samples {
		dst[i] = pcm.Int16ToFloat32(int16(binary.LittleEndian.Uint16(s.buf[2*i:])))
	}
	s.held = copy(s.buf, s.buf[whole:n])

	switch {
	case errors.Is(err, io.EOF):
		// a trailing partial frame is dropped
		s.done, s.held = true, 0
		return samples, io.EOF
	case err != nil:
		return samples, fmt.Errorf("%w", err)
	}

	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
