// SPDX-License-Identifier: EPL-2.0

package afsk

import (
	"fmt"

	"github.com/ik5/afskdecode/bitset"
)

// MinWidth is the narrowest rectangle Demodulate accepts. The one sample
// tolerance shrinks the scan window to width-1, which must stay positive.
const MinWidth = 2

// Demodulate converts binarized samples into symbols.
//
// samples holds one bit per audio sample and width is the nominal number of
// samples per rectangle (half a carrier cycle). Two adjacent rectangles with
// the same value form a 0 symbol; a value change between a pending rectangle
// and the next one forms a 1 symbol. A rectangle left unpaired at the end is
// emitted as a final 1.
//
// A rectangle may be one sample shorter than width, but never two in a
// row: after a short rectangle the next one is scanned at full width.
func Demodulate(samples *bitset.Set, width int) (*bitset.Set, error) {
	if samples.Len() == 0 {
		return nil, ErrNoSamples
	}
	if width < MinWidth {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if samples.Len() < width {
		return nil, fmt.Errorf("%w: %d samples, rectangle is %d",
			ErrInsufficientSamples, samples.Len(), width)
	}

	symbols := bitset.New(0)

	var (
		// samples already known to match at the head of the next window
		prevMatch int
		// the previous rectangle used the shorter width
		tolerated bool
		pending   = PendingNone
	)

	limit := samples.Len() - width + 1
	for i := 0; i < limit; {
		window := width - 1
		if tolerated {
			window = width
		}

		head := 0
		if prevMatch >= 2 {
			head = prevMatch - 1
		}

		// Walk the window backwards; the first mismatch marks where the
		// current rectangle really starts.
		mismatch := -1
		for j := window - 2; j >= head; j-- {
			if samples.Get(i+j) != samples.Get(i+j+1) {
				mismatch = j
				break
			}
		}

		if mismatch >= 0 {
			prevMatch = window - mismatch - 1
			tolerated = false
			i += window - prevMatch
			continue
		}

		switch {
		case tolerated:
			tolerated = false
		case samples.Get(i+window-1) != samples.Get(i+window):
			tolerated = true
		default:
			window++
		}

		v := pendingOf(samples.Get(i))
		switch pending {
		case PendingNone:
			pending = v
		case v:
			symbols.Append(false)
			pending = PendingNone
		default:
			symbols.Append(true)
			pending = v
		}

		prevMatch = 0
		i += window
	}

	if pending != PendingNone {
		symbols.Append(true)
	}

	return symbols, nil
}
