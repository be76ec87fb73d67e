// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Resampler streams from src to target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// A one-pole low-pass filter softens aliasing when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames per output frame
	channels int

	// hist[0..3] hold frames t-1, t, t+1, t+2; live counts the real
	// (not duplicated) frames in hist[1..3].
	hist    [4][]float32
	live    int
	pos     float64
	started bool

	// frames read from src and not yet moved into hist
	buf      []float32
	off, end int
	eof      bool
	err      error
	empty    int

	filter      []float32
	filterAlpha float32
}

func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d Hz", ErrInvalidRate, src.SampleRate(), dstRate)
	}

	channels := src.Channels()
	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		buf:      make([]float32, channels*1024),
	}
	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}
	if r.step > 1 {
		r.filter = make([]float32, channels)
		r.filterAlpha = 0.5
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) Close() error    { return closeSource(r.src) }

// next copies the following source frame into frame. It reports false once
// the source is exhausted or failed.
func (r *Resampler) next(frame []float32) bool {
	for r.end-r.off < r.channels {
		if r.eof {
			return false
		}

		n, err := r.src.ReadSamples(r.buf)
		r.off, r.end = 0, n-n%r.channels
		switch {
		case errors.Is(err, io.EOF):
			r.eof = true
		case err != nil:
			r.eof, r.err = true, fmt.Errorf("%w", err)
		case n == 0:
			r.empty++
			if r.empty >= maxEmptyReads {
				r.eof, r.err = true, io.ErrNoProgress
			}
		default:
			r.empty = 0
		}
	}

	copy(frame, r.buf[r.off:r.off+r.channels])
	r.off += r.channels

	if r.filter != nil {
		if !r.started {
			copy(r.filter, frame)
		}
		for c := range frame {
			frame[c] = r.filterAlpha*frame[c] + (1-r.filterAlpha)*r.filter[c]
			r.filter[c] = frame[c]
		}
	}

	return true
}

func (r *Resampler) prime() bool {
	if !r.next(r.hist[1]) {
		return false
	}
	r.started = true
	copy(r.hist[0], r.hist[1])
	r.live = 1

	for k := 2; k < 4; k++ {
		if r.next(r.hist[k]) {
			r.live++
		} else {
			copy(r.hist[k], r.hist[k-1])
		}
	}

	return true
}

// advance moves the window one source frame forward. It reports false when
// the current frame was the last real one.
func (r *Resampler) advance() bool {
	if r.live <= 1 {
		return false
	}

	r.hist[0], r.hist[1], r.hist[2], r.hist[3] = r.hist[1], r.hist[2], r.hist[3], r.hist[0]
	r.live--
	if r.live == 2 && r.next(r.hist[3]) {
		r.live++
	} else {
		copy(r.hist[3], r.hist[2])
	}

	return true
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.started && !r.prime() {
		return 0, r.finish()
	}

	written := 0
	for written < len(dst) {
		for r.pos >= 1 {
			if !r.advance() {
				if written > 0 {
					return written, nil
				}
				return 0, r.finish()
			}
			r.pos--
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[written+c] = cubic(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}
		written += r.channels
		r.pos += r.step
	}

	return written, nil
}

func (r *Resampler) finish() error {
	if r.err != nil {
		return r.err
	}

	return io.EOF
}

// cubic performs Catmull-Rom interpolation between y1 and y2; x is the
// fractional position (0 <= x <= 1).
func cubic(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}
