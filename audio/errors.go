// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrInvalidBufSize = errors.New("buffer size must be positive")
	ErrInvalidChannel = errors.New("channel out of range")
	ErrInvalidRate    = errors.New("sample rate must be positive")
)
