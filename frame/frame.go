// SPDX-License-Identifier: EPL-2.0

package frame

import (
	"fmt"

	"github.com/ik5/afskdecode/bitset"
)

const (
	// UnitBits is the length of one framed byte: a 0 start bit, eight data
	// bits least significant first, and two 1 stop bits.
	UnitBits = 11
	// MinSymbols is the shortest symbol stream Extract accepts.
	MinSymbols = 8

	StartIndicator byte = 0x42
	EndIndicator   byte = 0x00
)

// Extract assembles framed bytes from a symbol stream.
//
// The stream is searched one symbol at a time for a unit whose start bit is
// 0 and whose stop bits are 1, so it does not have to begin on a unit
// boundary. Bytes decoded before the first StartIndicator are dropped. The
// message ends after EndIndicator is appended or when fewer than UnitBits
// symbols remain; a message cut short is returned as is.
func Extract(symbols *bitset.Set) ([]byte, error) {
	n := symbols.Len()
	if n < MinSymbols {
		return nil, fmt.Errorf("%w: %d symbols", ErrInsufficientBits, n)
	}

	msg := make([]byte, 0, n/UnitBits)
	started := false

	for i := 0; i+UnitBits <= n; i++ {
		if symbols.Get(i) || !symbols.Get(i+9) || !symbols.Get(i+10) {
			continue
		}

		var b byte
		for j := range 8 {
			if symbols.Get(i + 1 + j) {
				b |= 1 << j
			}
		}
		i += UnitBits - 1

		if !started && b == StartIndicator {
			started = true
		}
		if !started {
			continue
		}

		msg = append(msg, b)
		if b == EndIndicator {
			break
		}
	}

	return msg, nil
}

// Encode frames msg into symbols, one unit per byte.
func Encode(msg []byte) *bitset.Set {
	symbols := bitset.New(0)
	for _, b := range msg {
		symbols.Append(false)
		for j := range 8 {
			symbols.Append(b>>j&1 == 1)
		}
		symbols.Append(true)
		symbols.Append(true)
	}

	return symbols
}
