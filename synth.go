// SPDX-License-Identifier: EPL-2.0

package afskdecode

import (
	"fmt"
	"time"

	"github.com/ik5/afskdecode/afsk"
	"github.com/ik5/afskdecode/bitset"
	"github.com/ik5/afskdecode/checksum"
	"github.com/ik5/afskdecode/frame"
	"github.com/ik5/afskdecode/internal/pcm"
	"github.com/ik5/afskdecode/samplebits"
)

// toneMargin of carrier is added to the lead-in and the trail-out.
const toneMargin = 200 * time.Millisecond

// Synthesize renders payload as a mono 16-bit recording at rate that Decode
// reads back: a lead tone of 1 symbols, the sealed message, and a trailing
// tone.
func Synthesize(payload []byte, rate int, cfg Config) ([]int16, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	msg, err := checksum.Seal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return render(msg, rate, cfg)
}

// render frames msg as is, without sealing it.
func render(msg []byte, rate int, cfg Config) ([]int16, error) {
	width := cfg.Width(rate)
	if width < afsk.MinWidth {
		return nil, fmt.Errorf("%w: %d Hz gives %d samples per rectangle",
			samplebits.ErrRateTooLow, rate, width)
	}

	symbols := bitset.New(0)
	appendTone(symbols, cfg.LeadIn+toneMargin, rate, width)
	body := frame.Encode(msg)
	for i := range body.Len() {
		symbols.Append(body.Get(i))
	}
	appendTone(symbols, cfg.TrailOut+toneMargin, rate, width)

	bits, err := afsk.Modulate(symbols, width)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	level := pcm.Float32ToInt16(float32(cfg.Amplitude))
	out := make([]int16, bits.Len())
	for i := range out {
		// negative samples read as 1
		if bits.Get(i) != cfg.Invert {
			out[i] = -level
		} else {
			out[i] = level
		}
	}

	return out, nil
}

// appendTone adds 1 symbols lasting about d. A run of 1 symbols is a plain
// square wave with one rectangle per symbol.
func appendTone(symbols *bitset.Set, d time.Duration, rate, width int) {
	n := int64(rate) * int64(d) / int64(time.Second) / int64(width)
	for range n {
		symbols.Append(true)
	}
}
