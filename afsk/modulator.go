// SPDX-License-Identifier: EPL-2.0

package afsk

import (
	"fmt"

	"github.com/ik5/afskdecode/bitset"
)

// Rectangles returns the rectangle values that Demodulate turns back into
// symbols.
//
// A 1 that ends the stream while a rectangle is pending is left to the
// final flush of Demodulate and produces no rectangle of its own.
func Rectangles(symbols *bitset.Set) []bool {
	n := symbols.Len()
	rects := make([]bool, 0, 2*n)

	// While a rectangle is pending its value is always last.
	var last, pending bool
	push := func(v bool) {
		rects = append(rects, v)
		last = v
	}

	for i := range n {
		one := symbols.Get(i)
		switch {
		case !one && pending:
			push(last)
			pending = false
		case !one:
			push(!last)
			push(last)
		case i == n-1 && pending:
			// flushed by Demodulate
		case i == n-1:
			push(!last)
			pending = true
		case pending:
			push(!last)
		default:
			push(!last)
			push(!last)
			pending = true
		}
	}

	return rects
}

// Render expands rectangles into samples, widths[k] samples for rects[k].
func Render(rects []bool, widths []int) (*bitset.Set, error) {
	if len(rects) != len(widths) {
		return nil, fmt.Errorf("%w: %d rectangles, %d widths",
			ErrWidthCount, len(rects), len(widths))
	}

	total := 0
	for k, w := range widths {
		if w < 1 {
			return nil, fmt.Errorf("%w: rectangle %d is %d samples", ErrInvalidWidth, k, w)
		}
		total += w
	}

	samples := bitset.New(total)
	pos := 0
	for k, v := range rects {
		for range widths[k] {
			if v {
				samples.Set(pos)
			}
			pos++
		}
	}

	return samples, nil
}

// Modulate renders symbols as rectangles of a fixed width.
func Modulate(symbols *bitset.Set, width int) (*bitset.Set, error) {
	if width < MinWidth {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}

	rects := Rectangles(symbols)
	widths := make([]int, len(rects))
	for k := range widths {
		widths[k] = width
	}

	return Render(rects, widths)
}
