// SPDX-License-Identifier: MIT

package affinity

// DefaultStrictDegree keeps the propagate-NaN/Inf policy for zero degrees.
const DefaultStrictDegree = false

// Option configures Normalize and Norm.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them through gatherOptions.
type Options struct {
	strictDegree bool // DefaultStrictDegree
}

// WithStrictDegree makes Normalize return ErrSingularDegree when any
// D[i][i] == 0, instead of producing NaN/Inf entries in W.
func WithStrictDegree() Option {
	return func(o *Options) { o.strictDegree = true }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{strictDegree: DefaultStrictDegree}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
