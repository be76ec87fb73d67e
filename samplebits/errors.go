// SPDX-License-Identifier: EPL-2.0

package samplebits

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid sample configuration")
	ErrRateTooLow    = errors.New("sample rate too low for the rectangle threshold")
	ErrNoSamples     = errors.New("no samples left between lead-in and trail-out")
)
