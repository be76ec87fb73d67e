// SPDX-License-Identifier: EPL-2.0

// Package bitset provides the packed bit buffer shared by every decoding
// stage.
//
// Samples, demodulated symbols and anything else that is naturally one bit
// wide are stored eight to a byte, least significant bit first:
//
//	b := bitset.New(16)
//	b.Set(9)          // byte 1, bit 1
//	b.Get(9)          // true
//	b.Bytes()         // []byte{0x00, 0x02}
//
// Growing buffers use Append, which is how the demodulator emits symbols
// without knowing their count up front.
//
// Reads and writes past Len never panic: Get returns false and Set is a
// no-op. Decoders work on noisy recordings and treat the buffer bounds as
// data, not as a programming contract.
package bitset
