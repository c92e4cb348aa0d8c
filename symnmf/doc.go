// SPDX-License-Identifier: MIT

// Package symnmf implements Symmetric Non-negative Matrix Factorization.
//
// Given a symmetric non-negative affinity matrix W (n×n) and an initial
// non-negative factor H (n×k), Optimize approaches a local minimum of
//
//	min_{H ≥ 0} ‖W − H·Hᵀ‖_F²
//
// with the damped multiplicative update
//
//	H ← H ∘ (1 − β + β · (W·H) ⊘ (H·Hᵀ·H))
//
// until the squared Frobenius change between consecutive iterates drops
// below Epsilon, or MaxIter updates have been applied. H is updated in place
// and always holds the last applied update.
//
// Around the optimizer the package provides:
//   - Initialize: random non-negative start, uniform in [0, 2·sqrt(mean(W)/k)).
//   - Objective:  ‖W − H·Hᵀ‖_F.
//   - Labels:     hard cluster assignment by per-row argmax of H.
//   - Factorize:  X → W (package affinity) → Initialize → Optimize.
//
// Numeric policy:
//   - Default: a zero denominator in (H·Hᵀ·H) produces NaN/Inf in H, and a
//     NaN change never satisfies the convergence test.
//   - Config.StrictDivision: such a step returns ErrDegenerateUpdate and H
//     keeps the previous iterate.
//
// The package does not log. Progress is observable through Config.OnIteration.
package symnmf
