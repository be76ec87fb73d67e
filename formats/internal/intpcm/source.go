// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts go-audio decoders, which hand out integer PCM
// through PCMBuffer, to the float32 audio.Source interface.
package intpcm

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/afskdecode/internal/pcm"
)

// Reader is the subset of the go-audio wav and aiff decoders used here.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source implements audio.Source over a Reader.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	offset     int
	scale      float32
	intBuf     *goaudio.IntBuffer
	done       bool
}

// New wraps dec. offset is subtracted from every raw sample before scaling
// and is non-zero only for unsigned encodings.
func New(dec Reader, bitDepth, offset int) (*Source, error) {
	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate <= 0 {
		return nil, ErrBadFormat
	}

	scale, err := pcm.FullScale(bitDepth)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &Source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		offset:     offset,
		scale:      scale,
	}, nil
}

var ErrBadFormat = errors.New("missing or invalid format information")

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if errors.Is(err, io.EOF) {
		s.done, err = true, io.EOF
	} else if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	// go-audio signals the end of the data chunk with (0, nil)
	if n == 0 {
		s.done = true
		return 0, io.EOF
	}

	return pcm.IntsToFloat32(dst, s.intBuf.Data[:n], s.offset, s.scale), err
}
