// SPDX-License-Identifier: EPL-2.0

// Package afsk turns binarized audio samples into symbols.
//
// The carrier is recorded as runs of samples with a constant sign. Each run
// is cut into rectangles about Width samples long, where Width is the
// number of samples in half a cycle of the fast tone. Rectangles are then
// paired:
//
//	pending  next      symbol  pending after
//	none     v         -       v
//	v        v         0       none
//	v        !v        1       !v
//
// A long half cycle (two rectangles of equal value) therefore reads as 0,
// and every short half cycle after the first reads as 1.
//
// # Jitter
//
// Sample clocks rarely divide the carrier evenly, so a rectangle may come
// out one sample short. Demodulate accepts that once and then insists on a
// full width for the next rectangle, which keeps the error from drifting.
// A rectangle one sample too long is absorbed by re-aligning on the next
// transition.
//
// # Generating signals
//
// Rectangles, Render and Modulate run the scheme backwards. They are used
// to produce test recordings:
//
//	samples, _ := afsk.Modulate(bitset.Parse("0110"), 14)
//	symbols, _ := afsk.Demodulate(samples, 14) // "0110"
package afsk
