// SPDX-License-Identifier: MIT

package symnmf

import (
	"errors"
	"fmt"
)

var (
	// ErrBadConfig indicates a Config field outside its documented range.
	ErrBadConfig = errors.New("symnmf: invalid config")

	// ErrDegenerateUpdate indicates a zero denominator under StrictDivision.
	ErrDegenerateUpdate = errors.New("symnmf: zero denominator in update")

	// ErrInvalidK indicates a cluster count outside [1, n).
	ErrInvalidK = errors.New("symnmf: invalid number of clusters")

	// ErrInvalidAffinity indicates an affinity matrix whose mean is negative or non-finite.
	ErrInvalidAffinity = errors.New("symnmf: affinity mean must be finite and non-negative")
)

func symnmfErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
