// SPDX-License-Identifier: EPL-2.0

package bitset

import "strings"

// Set is a length-tracked bit array packed eight bits per byte.
// Bit i lives in byte i/8 at bit position i%8.
type Set struct {
	data []byte
	size int
}

// New returns a zeroed Set holding size bits.
func New(size int) *Set {
	if size < 0 {
		size = 0
	}

	return &Set{
		data: make([]byte, (size+7)/8),
		size: size,
	}
}

// FromBytes wraps an existing packed buffer. size is clamped to the number
// of bits data can hold.
func FromBytes(data []byte, size int) *Set {
	if size < 0 {
		size = 0
	}
	if size > len(data)*8 {
		size = len(data) * 8
	}

	return &Set{data: data, size: size}
}

// Parse builds a Set from a string of '0' and '1' runes. Any other rune is
// skipped, so "0110 1001" is accepted.
func Parse(s string) *Set {
	b := New(0)
	for _, r := range s {
		switch r {
		case '0':
			b.Append(false)
		case '1':
			b.Append(true)
		}
	}

	return b
}

// Len reports the number of bits in the set.
func (b *Set) Len() int {
	if b == nil {
		return 0
	}

	return b.size
}

// Get reports whether bit pos is set. Out of range positions read as 0.
func (b *Set) Get(pos int) bool {
	if b == nil || pos < 0 || pos >= b.size {
		return false
	}

	return b.data[pos/8]>>(pos%8)&1 == 1
}

// Set turns bit pos on. Out of range positions are ignored.
func (b *Set) Set(pos int) {
	if pos < 0 || pos >= b.size {
		return
	}
	b.data[pos/8] |= 1 << (pos % 8)
}

// Clear turns bit pos off. Out of range positions are ignored.
func (b *Set) Clear(pos int) {
	if pos < 0 || pos >= b.size {
		return
	}
	b.data[pos/8] &^= 1 << (pos % 8)
}

// Append grows the set by one bit.
func (b *Set) Append(v bool) {
	if b.size%8 == 0 && b.size/8 == len(b.data) {
		b.data = append(b.data, 0)
	}
	b.size++
	if v {
		b.Set(b.size - 1)
	}
}

// Truncate shrinks the set to n bits. Bits past n are cleared so a later
// Append never resurrects them.
func (b *Set) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= b.size {
		return
	}
	for i := n; i < b.size && i%8 != 0; i++ {
		b.Clear(i)
	}
	b.data = b.data[:(n+7)/8]
	b.size = n
}

// Bytes returns the packed backing store. The slice is shared with the set.
func (b *Set) Bytes() []byte {
	if b == nil {
		return nil
	}

	return b.data
}

// Count returns the number of set bits.
func (b *Set) Count() int {
	n := 0
	for i := range b.Len() {
		if b.Get(i) {
			n++
		}
	}

	return n
}

// Equal reports whether both sets hold the same bits.
func (b *Set) Equal(o *Set) bool {
	if b.Len() != o.Len() {
		return false
	}
	for i := range b.Len() {
		if b.Get(i) != o.Get(i) {
			return false
		}
	}

	return true
}

func (b *Set) String() string {
	var sb strings.Builder
	sb.Grow(b.Len())
	for i := range b.Len() {
		if b.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
