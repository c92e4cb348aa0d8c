// SPDX-License-Identifier: MIT

// Package affinity builds the graph matrices that SymNMF factorizes.
//
// Given n data points X (n×d), the pipeline is:
//
//	A = Similarity(X)      A[i][j] = exp(-‖xi − xj‖² / 2), A[i][i] = 0
//	D = Degree(A)          D[i][i] = Σ_j A[i][j], zero elsewhere
//	W = Normalize(A, D)    W = D^(-1/2) · A · D^(-1/2)
//
// DDG and Norm compose the stages directly from X.
//
// Numeric policy:
//   - By default a zero degree (an isolated point, or n = 1) is not an error:
//     D^(-1/2) holds +Inf there and W carries NaN/Inf entries.
//   - WithStrictDegree turns that case into ErrSingularDegree before any
//     multiplication is performed.
//
// Every stage returns a freshly allocated *matrix.Dense; inputs are never
// mutated. All stages are deterministic: the same X yields bitwise identical
// A, D and W.
package affinity
