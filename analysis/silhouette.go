// SPDX-License-Identifier: MIT

package analysis

import (
	"errors"
	"fmt"

	"github.com/NirBendov/symnmf/matrix"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrSingleCluster indicates fewer than two distinct labels.
	ErrSingleCluster = errors.New("analysis: silhouette needs at least two clusters")

	// ErrLabelCount indicates len(labels) differs from the number of points.
	ErrLabelCount = errors.New("analysis: one label per point required")
)

// Silhouette returns the mean silhouette coefficient of labels over the rows of x.
//
// For point i with a(i) the mean distance to the rest of its cluster and
// b(i) the smallest mean distance to another cluster,
// s(i) = (b − a) / max(a, b). Members of single-point clusters, and points
// with a = b = 0, score 0.
//
// Complexity: Time O(n²·d), Space O(n·c) for c clusters.
func Silhouette(x matrix.Matrix, labels []int) (float64, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return 0, fmt.Errorf("Silhouette: %w", err)
	}
	n := x.Rows()
	if len(labels) != n {
		return 0, fmt.Errorf("Silhouette: %d labels for %d points: %w", len(labels), n, ErrLabelCount)
	}
	pts, err := points(x)
	if err != nil {
		return 0, fmt.Errorf("Silhouette: %w", err)
	}

	// Dense cluster ids in order of first appearance.
	ids := make(map[int]int)
	for _, l := range labels {
		if _, ok := ids[l]; !ok {
			ids[l] = len(ids)
		}
	}
	c := len(ids)
	if c < 2 {
		return 0, fmt.Errorf("Silhouette: %w", ErrSingleCluster)
	}
	size := make([]int, c)
	for _, l := range labels {
		size[ids[l]]++
	}

	total := 0.0
	sum := make([]float64, c)
	for i := 0; i < n; i++ {
		own := ids[labels[i]]
		if size[own] == 1 {
			continue
		}
		for j := range sum {
			sum[j] = 0
		}
		for j := 0; j < n; j++ {
			if j != i {
				sum[ids[labels[j]]] += floats.Distance(pts[i], pts[j], 2)
			}
		}
		a := sum[own] / float64(size[own]-1)
		b := -1.0
		for cl := 0; cl < c; cl++ {
			if cl == own {
				continue
			}
			if m := sum[cl] / float64(size[cl]); b < 0 || m < b {
				b = m
			}
		}
		if den := max(a, b); den > 0 {
			total += (b - a) / den
		}
	}

	return total / float64(n), nil
}

func points(x matrix.Matrix) ([][]float64, error) {
	if d, ok := x.(*matrix.Dense); ok {
		return d.ToRows(), nil
	}
	out := make([][]float64, x.Rows())
	for i := range out {
		out[i] = make([]float64, x.Cols())
		for j := range out[i] {
			v, err := x.At(i, j)
			if err != nil {
				return nil, err
			}
			out[i][j] = v
		}
	}

	return out, nil
}
