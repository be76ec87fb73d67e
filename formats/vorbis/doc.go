// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure Go decoder.
//
//	file, _ := os.Open("tape.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Samples are interleaved float32 values, for stereo files
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// Lossy compression smears sharp square edges, so a tape that decodes
// from WAV may fail once converted to Vorbis at a low bitrate.
package vorbis
