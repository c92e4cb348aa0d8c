// SPDX-License-Identifier: MIT

package matrixio

import "errors"

// ErrMalformedInput indicates text that does not describe a finite rectangular matrix.
var ErrMalformedInput = errors.New("matrixio: malformed input")
