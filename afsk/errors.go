// SPDX-License-Identifier: EPL-2.0

package afsk

import "errors"

var (
	ErrNoSamples           = errors.New("no samples to demodulate")
	ErrInsufficientSamples = errors.New("fewer samples than one rectangle")
	ErrInvalidWidth        = errors.New("invalid rectangle width")
	ErrWidthCount          = errors.New("rectangle and width counts differ")
)
