// SPDX-License-Identifier: EPL-2.0

package afsk

// Pending records the value of a rectangle that has not been paired yet.
type Pending uint8

const (
	PendingNone Pending = iota
	PendingZero
	PendingOne
)

func pendingOf(v bool) Pending {
	if v {
		return PendingOne
	}

	return PendingZero
}

func (p Pending) String() string {
	switch p {
	case PendingZero:
		return "zero"
	case PendingOne:
		return "one"
	default:
		return "none"
	}
}
