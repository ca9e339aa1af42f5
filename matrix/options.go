// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective set.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by IsSymmetric.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles finite-only validation on ingestion and Set.
	// Off by default: literal construction always succeeds and IEEE special
	// values propagate through arithmetic and the determinant.
	DefaultValidateNaNInf = false

	// DefaultStreamingPermutations selects the permutation source used by
	// Determinant. When false, all n! orderings are materialised up front.
	DefaultStreamingPermutations = false
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	streaming      bool    // DefaultStreamingPermutations
}

// WithEpsilon sets the tolerance used by structural checks (IsSymmetric).
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf makes constructors and Set reject NaN and ±Inf with
// ErrNaNInf. The flag is stored per matrix and preserved by Clone.
//
// Writes through Ref bypass the policy: a reference is a raw pointer.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf restores the permissive default.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithStreamingPermutations makes Determinant enumerate orderings one at a
// time with Heap's algorithm instead of materialising all n! of them.
// Memory drops from O(n·n!) to O(n); the summation order changes, so results
// may differ from the default in the last bits.
func WithStreamingPermutations() Option {
	return func(o *Options) { o.streaming = true }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		streaming:      DefaultStreamingPermutations,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
