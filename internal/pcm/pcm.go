// SPDX-License-Identifier: EPL-2.0

// Package pcm converts between integer PCM samples and the normalized
// float32 samples used by audio sources.
package pcm

import (
	"errors"
	"fmt"
)

var ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

// FullScale returns the magnitude that maps to 1.0 for signed samples of
// the given bit depth.
func FullScale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float32(uint64(1) << (bitDepth - 1)), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// IntsToFloat32 normalizes src into dst. offset is subtracted first, which
// lets unsigned 8-bit data share the path with signed data.
func IntsToFloat32(dst []float32, src []int, offset int, scale float32) int {
	n := min(len(dst), len(src))
	inv := 1 / scale
	for i := range n {
		dst[i] = float32(src[i]-offset) * inv
	}

	return n
}

func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768
}

func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from overflowing
	return int16(x * 32767)
}
