// SPDX-License-Identifier: EPL-2.0

package checksum

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientBytes = errors.New("message too short to validate")
	ErrMissingStart      = errors.New("message start marker not found")
	ErrMismatch          = errors.New("checksum mismatch")
	ErrTruncatedUnit     = errors.New("message unit runs past the end of the message")
	ErrUnencodable       = errors.New("payload cannot be framed")
)

// MismatchError reports the unit whose checksum byte disagrees with the sum
// of its payload. Index is the offset of the unit's first byte.
type MismatchError struct {
	Index int
	Want  byte
	Got   byte
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("checksum fails at message index %d", e.Index)
}

func (e *MismatchError) Unwrap() error { return ErrMismatch }

// TruncatedError reports a unit that starts at Index but has only
// Remaining bytes left in the message, checksum included.
type TruncatedError struct {
	Index     int
	Remaining int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("message unit at index %d has %d of %d bytes",
		e.Index, e.Remaining, UnitSize+1)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncatedUnit }
