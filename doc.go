// Package symnmf is the root of a small clustering toolkit built around
// Symmetric Non-negative Matrix Factorization (SymNMF).
//
// Points X (n×d) become a Gaussian similarity graph, the graph is
// degree-normalized into W, and W ≈ H·Hᵀ is factorized with a damped
// multiplicative update. The row-wise argmax of H assigns each point to one
// of k clusters.
//
// Everything is organized under these subpackages:
//
//	matrix/        owned Dense type, Mul/Transpose/Sub kernels, validators, gonum interop
//	affinity/      Similarity, Degree, Normalize and the DDG/Norm composites
//	symnmf/        Optimize, Config, Initialize, Objective, Labels, Factorize
//	matrixio/      text matrix reader (tokenizer) and 4-decimal writer
//	api/           the same operations over [][]float64 with deep-copy boundaries
//	analysis/      silhouette scoring of SymNMF against k-means
//	cmd/symnmf/    CLI: symnmf [flags] <sym|ddg|norm|symnmf> <file>
//	cmd/analysis/  CLI: analysis <k> <file>
//
// All computation is sequential and deterministic for a fixed seed; library
// packages never log and report failures as sentinel errors matched with
// errors.Is.
//
// Quick start:
//
//	x, _ := matrixio.ReadFile("points.txt")
//	f, err := symnmf.Factorize(x, 3, symnmf.DefaultConfig(), symnmf.DefaultSeed)
//	if err != nil {
//		// handle symnmf.ErrInvalidK, matrix.ErrDimensionMismatch, ...
//	}
//	labels, _ := f.Labels()
//
// Install:
//
//	go install github.com/NirBendov/symnmf/cmd/...@latest
package symnmf
