// SPDX-License-Identifier: EPL-2.0

package afskdecode

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ik5/afskdecode/afsk"
	"github.com/ik5/afskdecode/audio"
	"github.com/ik5/afskdecode/checksum"
	"github.com/ik5/afskdecode/frame"
	"github.com/ik5/afskdecode/samplebits"
)

// Message is a decoded and validated recording.
type Message struct {
	// Bytes as framed on tape, markers and checksums included.
	Bytes []byte
	// Payload is Bytes with the markers and checksums removed.
	Payload []byte

	SampleRate int
	Width      int
	Samples    int
	Symbols    int
}

type Option func(*Decoder)

// WithLogger sets the logger used for per-stage debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Decoder) { d.log = l }
}

// WithRegistry replaces DefaultRegistry for DecodeFile.
func WithRegistry(r *audio.Registry) Option {
	return func(d *Decoder) { d.registry = r }
}

// Decoder runs the load, demodulate, extract and checksum stages in turn.
// It holds no per-message state, so one Decoder may serve several
// goroutines.
type Decoder struct {
	cfg      Config
	log      zerolog.Logger
	registry *audio.Registry
}

func New(cfg Config, opts ...Option) *Decoder {
	d := &Decoder{
		cfg: cfg,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.registry == nil {
		d.registry = DefaultRegistry()
	}

	return d
}

// DecodeFile picks a decoder by file extension and decodes the recording.
func (d *Decoder) DecodeFile(path string) (*Message, error) {
	dec, format, ok := d.registry.ForPath(path)
	if !ok {
		return nil, &StageError{Stage: StageLoad, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &StageError{Stage: StageLoad, Err: err}
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, &StageError{Stage: StageLoad, Err: fmt.Errorf("decoding %s: %w", format, err)}
	}
	defer src.Close()

	d.log.Debug().Str("path", path).Str("format", format).Msg("opened recording")

	return d.Decode(src)
}

// Decode runs the pipeline over src. src is read to the end but not closed.
func (d *Decoder) Decode(src audio.Source) (*Message, error) {
	samples, err := samplebits.Load(src, d.cfg.Config)
	if err != nil {
		return nil, &StageError{Stage: StageLoad, Err: err}
	}

	msg := &Message{
		SampleRate: samples.SampleRate,
		Width:      samples.Width,
		Samples:    samples.Bits.Len(),
	}
	d.log.Debug().
		Int("rate", samples.SampleRate).
		Int("channels", samples.Channels).
		Int("total", samples.Total).
		Int("samples", msg.Samples).
		Int("width", samples.Width).
		Msg("samples loaded")

	symbols, err := afsk.Demodulate(samples.Bits, samples.Width)
	if err != nil {
		return nil, &StageError{Stage: StageDemodulate, Err: err}
	}
	msg.Symbols = symbols.Len()
	d.log.Debug().Int("symbols", msg.Symbols).Msg("demodulated")

	msg.Bytes, err = frame.Extract(symbols)
	if err != nil {
		return nil, &StageError{Stage: StageExtract, Err: err}
	}
	d.log.Debug().Int("bytes", len(msg.Bytes)).Msg("frames extracted")

	msg.Payload, err = checksum.Verify(msg.Bytes)
	if err != nil {
		if me := (*checksum.MismatchError)(nil); errors.As(err, &me) {
			d.log.Debug().Int("index", me.Index).Msg("checksum mismatch")
		}
		return nil, &StageError{Stage: StageChecksum, Err: err}
	}
	d.log.Debug().Int("payload", len(msg.Payload)).Msg("checksum passed")

	return msg, nil
}
