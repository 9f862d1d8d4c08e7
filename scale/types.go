// Package scale: options and variants for standardization.

package scale

// Variant selects the standard-deviation denominator.
//
//   - SampleVariance     — denominator N−1 (Bessel's correction). This is
//     the convention of mainstream statistical software and the default.
//   - PopulationVariance — denominator N. Produces systematically smaller
//     σ for small N; use only when the data is the whole population.
type Variant int

const (
	// SampleVariance divides by N−1. Requires at least two values.
	SampleVariance Variant = iota

	// PopulationVariance divides by N.
	PopulationVariance
)

// Options configures standardization.
//
// Fields:
//   - Variant — standard-deviation denominator (see Variant).
//   - Epsilon — non-negative tolerance for degenerate detection: a column
//     with σ ≤ Epsilon (or range/IQR ≤ Epsilon for the other scalers) is
//     rejected with ErrDegenerateColumn. The default 0 demands exact zero.
//
// Example:
//
//	opts := scale.DefaultOptions()
//	opts.Variant = scale.PopulationVariance
//	z, err := scale.Standardize(vals, &opts)
type Options struct {
	Variant Variant
	Epsilon float64
}

// DefaultOptions returns the canonical configuration:
// sample variance, exact-zero degenerate detection.
func DefaultOptions() Options {
	return Options{Variant: SampleVariance, Epsilon: 0}
}

// gatherOptions resolves a possibly-nil *Options into a validated value.
func gatherOptions(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Epsilon < 0 {
		return o, ErrBadOptions
	}
	if o.Variant != SampleVariance && o.Variant != PopulationVariance {
		return o, ErrBadOptions
	}

	return o, nil
}
