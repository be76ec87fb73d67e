// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is built on github.com/go-audio/wav, which walks the RIFF
// chunks, so files with LIST or other extra chunks before the data chunk
// are accepted.
//
// # Supported Formats
//
//   - Integer PCM (format tag 1)
//   - 8-bit unsigned, 16, 24 and 32-bit signed samples
//   - Any channel count and sample rate
//
// # Decoding WAV Files
//
//	file, _ := os.Open("tape.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides interleaved float32
// samples in the range [-1.0, 1.0]. Readers that cannot seek are buffered
// in memory first.
//
// # Writing WAV Files
//
// WriteWAV16 streams a mono 16-bit file to any io.Writer. Encode produces
// the same bytes through the go-audio encoder and needs an io.WriteSeeker
// such as *os.File.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrUnsupportedEncoding: compressed or floating point data
//   - ErrUnsupportedBitDepth: a sample size other than 8, 16, 24 or 32 bits
//
// All of them are wrapped, so test with errors.Is.
package wav
