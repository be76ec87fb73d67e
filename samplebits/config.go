// SPDX-License-Identifier: EPL-2.0

package samplebits

import (
	"fmt"
	"time"
)

// Config controls how a recording is cut and binarized.
type Config struct {
	// Threshold is the duration of one rectangle, half a cycle of the
	// fast tone.
	Threshold time.Duration `yaml:"threshold"`
	// LeadIn is skipped at the start of the recording.
	LeadIn time.Duration `yaml:"lead_in"`
	// TrailOut is dropped at the end, less Slack.
	TrailOut time.Duration `yaml:"trail_out"`
	Slack    time.Duration `yaml:"slack"`

	// MinSampleRate upsamples slower recordings to this rate. Zero disables
	// resampling.
	MinSampleRate int `yaml:"min_sample_rate"`

	// Channel picks the channel to decode. Mix averages all of them
	// instead.
	Channel int  `yaml:"channel"`
	Mix     bool `yaml:"mix"`

	// Invert reads non-negative samples as 1.
	Invert bool `yaml:"invert"`

	// BufSize is the number of samples requested per read.
	BufSize int `yaml:"buf_size"`
}

func DefaultConfig() Config {
	return Config{
		Threshold: 320 * time.Microsecond,
		LeadIn:    2500 * time.Millisecond,
		TrailOut:  500 * time.Millisecond,
		Slack:     10 * time.Millisecond,
		BufSize:   4096,
	}
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch {
	case c.Threshold <= 0:
		return fmt.Errorf("%w: threshold %v", ErrInvalidConfig, c.Threshold)
	case c.LeadIn < 0 || c.TrailOut < 0 || c.Slack < 0:
		return fmt.Errorf("%w: negative lead-in, trail-out or slack", ErrInvalidConfig)
	case c.Slack > c.TrailOut:
		return fmt.Errorf("%w: slack %v exceeds trail-out %v", ErrInvalidConfig, c.Slack, c.TrailOut)
	case c.MinSampleRate < 0:
		return fmt.Errorf("%w: min sample rate %d", ErrInvalidConfig, c.MinSampleRate)
	case c.Channel < 0:
		return fmt.Errorf("%w: channel %d", ErrInvalidConfig, c.Channel)
	case c.BufSize <= 0:
		return fmt.Errorf("%w: buffer size %d", ErrInvalidConfig, c.BufSize)
	}

	return nil
}

// Width returns the rectangle width in samples at rate.
func (c Config) Width(rate int) int {
	return int(int64(rate) * int64(c.Threshold) / int64(time.Second))
}

// frames converts d to a whole number of frames at rate, rounding down.
func frames(d time.Duration, rate int) int {
	return int(int64(rate) * int64(d) / int64(time.Second))
}
