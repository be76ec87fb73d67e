// SPDX-License-Identifier: EPL-2.0

// Package frame converts between symbol streams and framed bytes.
//
// Every byte travels as an eleven symbol unit:
//
//	0  d0 d1 d2 d3 d4 d5 d6 d7  1 1
//	^  data, LSB first          stop
//	start
//
// A message starts with StartIndicator (0x42) and ends with EndIndicator
// (0x00). Anything decoded before the first 0x42, such as the tail of the
// lead tone, is not part of the message.
package frame
