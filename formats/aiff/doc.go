// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to parse the container and
// shares the integer-to-float conversion with the wav package.
//
// # Supported Formats
//
//   - Uncompressed AIFF
//   - 8, 16, 24 and 32-bit signed samples
//   - Any channel count and sample rate
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("tape.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The decoder returns an audio.Source that provides samples as float32
// values normalized to the range [-1.0, 1.0]. Since go-audio needs to seek,
// readers without Seek are buffered in memory first.
package aiff
