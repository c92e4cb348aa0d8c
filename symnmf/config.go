// SPDX-License-Identifier: MIT

package symnmf

import (
	"context"
	"fmt"
	"math"
)

// Defaults for Config.
const (
	DefaultMaxIter = 300
	DefaultEpsilon = 1e-4
	DefaultBeta    = 0.5

	// DefaultSeed seeds Initialize in Factorize callers that have no preference.
	DefaultSeed uint64 = 1234
)

// Config controls Optimize.
//
// Fields:
//   - Ctx:            checked before every iteration; nil means context.Background().
//   - MaxIter:        iteration ceiling, ≥ 1.
//   - Epsilon:        convergence threshold on ‖H_next − H‖_F², > 0.
//   - Beta:           damping factor, in (0, 1].
//   - StrictDivision: a zero entry in H·Hᵀ·H returns ErrDegenerateUpdate.
//   - OnIteration:    called after every applied update with the 1-based
//     iteration number and its squared change.
type Config struct {
	Ctx            context.Context
	MaxIter        int
	Epsilon        float64
	Beta           float64
	StrictDivision bool
	OnIteration    func(iter int, delta float64)
}

// DefaultConfig returns MaxIter=300, Epsilon=1e-4, Beta=0.5, no hook.
func DefaultConfig() Config {
	return Config{
		Ctx:     context.Background(),
		MaxIter: DefaultMaxIter,
		Epsilon: DefaultEpsilon,
		Beta:    DefaultBeta,
	}
}

// Validate reports the first field outside its range, wrapped in ErrBadConfig.
func (c Config) Validate() error {
	if c.MaxIter < 1 {
		return fmt.Errorf("%w: MaxIter=%d, want ≥ 1", ErrBadConfig, c.MaxIter)
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon <= 0 {
		return fmt.Errorf("%w: Epsilon=%g, want finite > 0", ErrBadConfig, c.Epsilon)
	}
	if math.IsNaN(c.Beta) || c.Beta <= 0 || c.Beta > 1 {
		return fmt.Errorf("%w: Beta=%g, want in (0, 1]", ErrBadConfig, c.Beta)
	}

	return nil
}

func (c Config) context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}

	return c.Ctx
}
