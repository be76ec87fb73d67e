// SPDX-License-Identifier: EPL-2.0

package checksum

import (
	"bytes"
	"fmt"
)

const (
	// UnitSize is the number of payload bytes covered by one checksum byte.
	UnitSize = 30
	// MinBytes is the shortest message Validate accepts.
	MinBytes = 4

	StartIndicator  byte = 0x42
	StartIndicator2 byte = 0x03
	EndIndicator    byte = 0x00

	// PadByte fills the last unit of a sealed payload.
	PadByte byte = ' '
)

// Sum returns the sum of b modulo 256.
func Sum(b []byte) byte {
	var s byte
	for _, v := range b {
		s += v
	}

	return s
}

// Validate checks every unit of msg against its checksum byte.
func Validate(msg []byte) error {
	_, err := Verify(msg)
	return err
}

// Verify checks msg and returns the payload of its units with markers and
// checksum bytes removed.
//
// Bytes are skipped until the two byte start marker. From there on the
// message is a sequence of UnitSize payload bytes, each sequence followed by
// its checksum, up to an EndIndicator at a unit boundary or the end of msg.
// The first bad unit rejects the whole message.
func Verify(msg []byte) ([]byte, error) {
	if len(msg) < MinBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrInsufficientBytes, len(msg))
	}

	var payload []byte
	started := false

	for i := 0; i < len(msg); {
		if !started {
			if msg[i] == StartIndicator && i+1 < len(msg) && msg[i+1] == StartIndicator2 {
				started = true
				i += 2
				continue
			}
			i++
			continue
		}

		if msg[i] == EndIndicator {
			break
		}

		if i+UnitSize >= len(msg) {
			return nil, &TruncatedError{Index: i, Remaining: len(msg) - i}
		}

		unit := msg[i : i+UnitSize]
		if sum := Sum(unit); sum != msg[i+UnitSize] {
			return nil, &MismatchError{Index: i, Want: sum, Got: msg[i+UnitSize]}
		}

		payload = append(payload, unit...)
		i += UnitSize + 1
	}

	if !started {
		return nil, ErrMissingStart
	}

	return payload, nil
}

// Seal frames payload as a complete message: the start marker, one
// checksummed unit per UnitSize bytes and the end marker. The last unit is
// padded with PadByte.
//
// A zero byte inside a unit, or a unit whose checksum is zero, would end the
// message early once framed, so such payloads are rejected.
func Seal(payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrUnencodable)
	}
	if i := bytes.IndexByte(payload, EndIndicator); i >= 0 {
		return nil, fmt.Errorf("%w: zero byte at offset %d", ErrUnencodable, i)
	}

	units := (len(payload) + UnitSize - 1) / UnitSize
	msg := make([]byte, 0, 2+units*(UnitSize+1)+1)
	msg = append(msg, StartIndicator, StartIndicator2)

	for u := range units {
		unit := bytes.Repeat([]byte{PadByte}, UnitSize)
		copy(unit, payload[u*UnitSize:])

		sum := Sum(unit)
		if sum == EndIndicator {
			return nil, fmt.Errorf("%w: unit %d sums to zero", ErrUnencodable, u)
		}

		msg = append(msg, unit...)
		msg = append(msg, sum)
	}

	return append(msg, EndIndicator), nil
}
