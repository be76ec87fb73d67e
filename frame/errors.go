// SPDX-License-Identifier: EPL-2.0

package frame

import "errors"

var ErrInsufficientBits = errors.New("not enough symbols to hold a byte")
