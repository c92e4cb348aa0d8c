// SPDX-License-Identifier: MIT

package affinity

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularDegree indicates a zero degree under WithStrictDegree.
	ErrSingularDegree = errors.New("affinity: zero degree")

	// ErrNotDiagonal indicates a degree matrix with non-zero off-diagonal entries.
	ErrNotDiagonal = errors.New("affinity: degree matrix is not diagonal")
)

// affinityErrorf wraps err with an operation tag, preserving it for errors.Is.
func affinityErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
