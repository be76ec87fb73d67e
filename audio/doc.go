// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample stream primitives the decoder reads
// recordings through.
//
// This package contains:
//   - Source interface for audio input
//   - Drain, the read-until-EOF loop every consumer needs
//   - MonoMixer and ChannelSelector for folding channels into one
//   - Resampler for sample rate conversion
//   - Registry mapping file extensions to decoders
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Every decoder in formats/ returns a Source, and the processors here wrap
// one, so they chain:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	up, _ := audio.NewResampler(src, 44100)
//	mono, _ := audio.NewChannelSelector(up, 0)
//
// # Channels
//
// Tone recordings normally carry the same signal on every channel.
// ChannelSelector keeps one of them untouched; MonoMixer averages them,
// which helps when one channel is noisier than the other.
//
// # Resampling
//
// The Resampler uses Catmull-Rom interpolation. The decoder only upsamples,
// to give very low rate recordings enough samples per carrier half-cycle.
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]; only their sign matters to the
// decoder.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. Drain hides
// that detail:
//
//	err := audio.Drain(src, 4096, func(chunk []float32) error {
//	    // process chunk
//	    return nil
//	})
package audio
