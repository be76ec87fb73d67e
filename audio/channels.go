// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// frameReader pulls whole frames from an interleaved source into a scratch
// buffer that grows on demand.
type frameReader struct {
	src Source
	tmp []float32
}

func (f *frameReader) read(frames int) ([]float32, int, error) {
	channels := f.src.Channels()
	need := frames * channels
	if cap(f.tmp) < need {
		f.tmp = make([]float32, max(need, 8192))
	}

	n, err := f.src.ReadSamples(f.tmp[:need])
	return f.tmp[:n], n / channels, err
}

func closeSource(src Source) error {
	if err := src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// MonoMixer folds all channels into one by averaging them.
type MonoMixer struct {
	fr frameReader
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{fr: frameReader{src: src}}
}

func (m *MonoMixer) SampleRate() int { return m.fr.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) Close() error    { return closeSource(m.fr.src) }

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.fr.src.Channels()
	if channels == 1 {
		return m.fr.src.ReadSamples(dst)
	}

	in, frames, err := m.fr.read(len(dst))
	inv := 1 / float32(channels)
	for f := range frames {
		var sum float32
		for _, v := range in[f*channels : (f+1)*channels] {
			sum += v
		}
		dst[f] = sum * inv
	}

	return frames, err
}

// ChannelSelector keeps a single channel of an interleaved source and drops
// the others.
type ChannelSelector struct {
	fr      frameReader
	channel int
}

func NewChannelSelector(src Source, channel int) (*ChannelSelector, error) {
	if channel < 0 || channel >= src.Channels() {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidChannel, channel, src.Channels())
	}

	return &ChannelSelector{fr: frameReader{src: src}, channel: channel}, nil
}

func (c *ChannelSelector) SampleRate() int { return c.fr.src.SampleRate() }
func (c *ChannelSelector) Channels() int   { return 1 }
func (c *ChannelSelector) Close() error    { return closeSource(c.fr.src) }

func (c *ChannelSelector) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := c.fr.src.Channels()
	if channels == 1 {
		return c.fr.src.ReadSamples(dst)
	}

	in, frames, err := c.fr.read(len(dst))
	for f := range frames {
		dst[f] = in[f*channels+c.channel]
	}

	return frames, err
}
