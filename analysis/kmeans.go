// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"

	"github.com/NirBendov/symnmf/matrix"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// KMeansLabels partitions the rows of x into k clusters with Lloyd's
// algorithm and labels each point with its nearest final centroid.
func KMeansLabels(x matrix.Matrix, k int) ([]int, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("KMeansLabels: %w", err)
	}
	pts, err := points(x)
	if err != nil {
		return nil, fmt.Errorf("KMeansLabels: %w", err)
	}
	if k < 1 || k >= len(pts) {
		return nil, fmt.Errorf("KMeansLabels: k=%d, n=%d: %w", k, len(pts), ErrInvalidK)
	}

	obs := make(clusters.Observations, len(pts))
	for i, p := range pts {
		obs[i] = clusters.Coordinates(p)
	}
	cc, err := kmeans.New().Partition(obs, k)
	if err != nil {
		return nil, fmt.Errorf("KMeansLabels: %w", err)
	}

	labels := make([]int, len(obs))
	for i, o := range obs {
		labels[i] = cc.Nearest(o)
	}

	return labels, nil
}
