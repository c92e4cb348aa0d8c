// SPDX-License-Identifier: MIT

package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/NirBendov/symnmf/matrix"
	"github.com/NirBendov/symnmf/symnmf"
)

// ErrInvalidK aliases the factorization's cluster-count error so both
// methods reject the same k.
var ErrInvalidK = symnmf.ErrInvalidK

// Report holds the silhouette score of each method. A method whose labels
// collapse into a single cluster scores NaN.
type Report struct {
	SymNMF float64
	KMeans float64
}

// Compare clusters x into k groups with SymNMF and with k-means and scores both.
func Compare(x matrix.Matrix, k int, cfg symnmf.Config, seed uint64) (Report, error) {
	var r Report

	f, err := symnmf.Factorize(x, k, cfg, seed)
	if err != nil {
		return r, fmt.Errorf("Compare: %w", err)
	}
	labels, err := f.Labels()
	if err != nil {
		return r, fmt.Errorf("Compare: %w", err)
	}
	if r.SymNMF, err = score(x, labels); err != nil {
		return r, fmt.Errorf("Compare: symnmf: %w", err)
	}

	if labels, err = KMeansLabels(x, k); err != nil {
		return r, fmt.Errorf("Compare: %w", err)
	}
	if r.KMeans, err = score(x, labels); err != nil {
		return r, fmt.Errorf("Compare: kmeans: %w", err)
	}

	return r, nil
}

// score is Silhouette with a collapsed clustering mapped to NaN.
func score(x matrix.Matrix, labels []int) (float64, error) {
	s, err := Silhouette(x, labels)
	if errors.Is(err, ErrSingleCluster) {
		return math.NaN(), nil
	}

	return s, err
}
