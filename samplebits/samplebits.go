// SPDX-License-Identifier: EPL-2.0

package samplebits

import (
	"fmt"

	"github.com/ik5/afskdecode/afsk"
	"github.com/ik5/afskdecode/audio"
	"github.com/ik5/afskdecode/bitset"
)

// Samples is a binarized recording ready for afsk.Demodulate.
type Samples struct {
	Bits       *bitset.Set
	Width      int
	SampleRate int
	// Channels of the source before folding to mono.
	Channels int
	// Total frames read, lead-in and trail-out included.
	Total int
}

// Load reads src to the end and keeps one bit per frame between the lead-in
// and the trail-out. It does not close src.
func Load(src audio.Source, cfg Config) (*Samples, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidConfig, channels)
	}

	mono, err := monoSource(src, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.MinSampleRate > 0 && mono.SampleRate() < cfg.MinSampleRate {
		if mono, err = audio.NewResampler(mono, cfg.MinSampleRate); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	rate := mono.SampleRate()
	width := cfg.Width(rate)
	if width < afsk.MinWidth {
		return nil, fmt.Errorf("%w: %d Hz gives %d samples per rectangle", ErrRateTooLow, rate, width)
	}

	skip := frames(cfg.LeadIn, rate)
	bits := bitset.New(0)
	total := 0

	err = audio.Drain(mono, cfg.BufSize, func(chunk []float32) error {
		for _, v := range chunk {
			if total >= skip {
				// the sign bit of the sample, as it would be stored in PCM
				bits.Append((v < 0) != cfg.Invert)
			}
			total++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	keep := total - frames(cfg.LeadIn+cfg.TrailOut-cfg.Slack, rate)
	keep -= keep % 8
	if keep <= 0 {
		return nil, fmt.Errorf("%w: %d frames at %d Hz", ErrNoSamples, total, rate)
	}
	bits.Truncate(keep)

	return &Samples{
		Bits:       bits,
		Width:      width,
		SampleRate: rate,
		Channels:   channels,
		Total:      total,
	}, nil
}

func monoSource(src audio.Source, cfg Config) (audio.Source, error) {
	switch {
	case src.Channels() == 1:
		if cfg.Channel != 0 {
			return nil, fmt.Errorf("%w: %d of 1", audio.ErrInvalidChannel, cfg.Channel)
		}
		return src, nil
	case cfg.Mix:
		return audio.NewMonoMixer(src), nil
	default:
		sel, err := audio.NewChannelSelector(src, cfg.Channel)
		if err != nil {
			return nil, err
		}
		return sel, nil
	}
}
