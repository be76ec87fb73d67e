// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/afskdecode/internal/audiotest"
)

func stereo(left, right float32) *audiotest.MockSource {
	return audiotest.NewMockSource(8000, 2, 100, func(sample int, channel int) float32 {
		if channel == 0 {
			return left
		}
		return right
	})
}

func TestMonoMixer_StereoToMono(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(stereo(0.4, 0.6))
	if mixer.Channels() != 1 {
		t.Errorf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
	}
	if mixer.SampleRate() != 8000 {
		t.Errorf("MonoMixer.SampleRate() = %d, want 8000", mixer.SampleRate())
	}

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Fatalf("ReadSamples() n = %d, want 10", n)
	}

	for i := range n {
		if math.Abs(float64(buf[i]-0.5)) > 1e-6 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewConstantSource(8000, 1, 100, -0.25))

	buf := make([]float32, 200)
	n, err := mixer.ReadSamples(buf)
	if !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 100 {
		t.Fatalf("ReadSamples() n = %d, want 100", n)
	}
	if buf[99] != -0.25 {
		t.Errorf("buf[99] = %v, want -0.25", buf[99])
	}
}

func TestChannelSelector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		channel int
		want    float32
	}{
		{0, -0.3},
		{1, 0.7},
	}

	for _, tt := range tests {
		sel, err := NewChannelSelector(stereo(-0.3, 0.7), tt.channel)
		if err != nil {
			t.Fatalf("NewChannelSelector(%d) error = %v", tt.channel, err)
		}

		buf := make([]float32, 4)
		n, err := sel.ReadSamples(buf)
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
		for i := range n {
			if buf[i] != tt.want {
				t.Errorf("channel %d: buf[%d] = %v, want %v", tt.channel, i, buf[i], tt.want)
			}
		}
	}

	if _, err := NewChannelSelector(stereo(0, 0), 2); !errors.Is(err, ErrInvalidChannel) {
		t.Errorf("NewChannelSelector(2) error = %v, want ErrInvalidChannel", err)
	}
}

func TestChannelSelector_ClosePropagates(t *testing.T) {
	t.Parallel()

	src := stereo(0, 0)
	sel, err := NewChannelSelector(src, 0)
	if err != nil {
		t.Fatal(err)
	}

	if err := sel.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed {
		t.Error("Close() did not close the wrapped source")
	}
}
