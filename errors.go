// SPDX-License-Identifier: EPL-2.0

package afskdecode

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// Stage names a step of the decoding pipeline.
type Stage string

const (
	StageLoad       Stage = "load"
	StageDemodulate Stage = "demodulate"
	StageExtract    Stage = "extract"
	StageChecksum   Stage = "checksum"
)

// StageError reports which step of the pipeline failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
