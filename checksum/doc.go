// SPDX-License-Identifier: EPL-2.0

// Package checksum validates decoded messages.
//
// A message looks like
//
//	0x42 0x03 | b0 .. b29 sum | b0 .. b29 sum | ... | 0x00
//
// where every sum is the sum of the preceding 30 bytes modulo 256.
//
// Validate returns nil when every unit checks out. A bad unit yields a
// *MismatchError carrying its index:
//
//	var mismatch *checksum.MismatchError
//	if errors.As(err, &mismatch) {
//	    fmt.Println("bad unit at", mismatch.Index)
//	}
//
// Seal builds such a message from a payload.
package checksum
