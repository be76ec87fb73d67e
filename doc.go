// SPDX-License-Identifier: EPL-2.0

// Package afskdecode recovers messages recorded as AFSK tone bursts.
//
// A recording passes four stages, each in its own package:
//
//  1. samplebits.Load cuts the lead and trail tones and keeps the sign of
//     every remaining sample;
//  2. afsk.Demodulate measures rectangles of constant sign and pairs them
//     into symbols;
//  3. frame.Extract reads 11-symbol units (start bit, 8 data bits LSB first,
//     two stop bits) from the first 0x42 byte to the first 0x00 byte;
//  4. checksum.Verify checks the 30-byte units behind the 0x42 0x03 marker.
//
// Decoder runs them in order and reports the failing stage as a
// *StageError.
//
// # Quick Start
//
//	dec := afskdecode.New(afskdecode.DefaultConfig())
//	msg, err := dec.DecodeFile("tape.wav")
//	if err != nil {
//	    var se *afskdecode.StageError
//	    if errors.As(err, &se) {
//	        // se.Stage tells where the recording broke
//	    }
//	}
//	fmt.Printf("%s\n", msg.Payload)
//
// # Formats
//
// DecodeFile chooses a decoder by extension through DefaultRegistry:
//   - WAV via formats/wav (PCM, 8 to 32 bits)
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Any other audio.Source can be passed to Decode directly.
//
// # Configuration
//
// Config carries the timing of the recording (rectangle threshold, lead
// and trail tones) and is usually loaded from YAML:
//
//	threshold: 320us
//	lead_in: 2.5s
//	trail_out: 500ms
//	slack: 10ms
//	channel: 0
//
// # Generating Recordings
//
// Synthesize produces samples that Decode reads back, which is how the
// tests and the afskgen command build their input:
//
//	samples, _ := afskdecode.Synthesize([]byte("HELLO"), 44100, cfg)
//	wav.WriteWAV16(w, 44100, samples)
package afskdecode
