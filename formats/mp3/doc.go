// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: always 2, go-mp3 duplicates mono streams
//   - Sample rate: as stored in the file
//
// go-mp3 hands out bytes, not samples, and a read may stop in the middle
// of a frame. The source holds the partial frame back until the next read
// so every chunk it returns contains whole stereo frames.
//
// To convert to mono or resample, use the audio package:
//
//	mono := audio.NewMonoMixer(source)
//	resampled, err := audio.NewResampler(mono, 44100)
package mp3
