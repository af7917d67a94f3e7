// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the text codec.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Zero options reproduce the canonical format exactly, so
//     Parse(Format(m)) == m holds under defaults.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package matrix

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFloatFormat is the strconv verb used for float elements.
	// 'f' never emits an exponent, so 1e21 formats as 1000000000000000000000.
	DefaultFloatFormat byte = 'f'

	// DefaultPrecision of -1 selects the shortest decimal that round-trips.
	DefaultPrecision = -1

	// DefaultRejectNaNInf keeps Parse permissive: "NaN" and "Inf" tokens are
	// accepted for float element types unless WithRejectNaNInf is applied.
	DefaultRejectNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFloatFormatInvalid = "matrix: WithFloatFormat: verb must be one of 'f', 'g', 'e'"
	panicPrecisionInvalid   = "matrix: WithPrecision: precision must be >= -1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	floatFormat  byte // DefaultFloatFormat
	precision    int  // DefaultPrecision
	rejectNaNInf bool // DefaultRejectNaNInf
}

// WithFloatFormat sets the strconv verb for float elements ('f', 'g' or 'e').
// Panics on any other verb.
// Note: 'e' output still parses back, but is no longer the canonical form.
func WithFloatFormat(verb byte) Option {
	switch verb {
	case 'f', 'g', 'e':
	default:
		panic(fmt.Sprintf("%s (got %q)", panicFloatFormatInvalid, verb))
	}
	return func(o *Options) { o.floatFormat = verb }
}

// WithPrecision sets the digit count for float elements. -1 means shortest
// round-trip representation. Panics for p < -1.
func WithPrecision(p int) Option {
	if p < -1 {
		panic(fmt.Sprintf("%s (got %d)", panicPrecisionInvalid, p))
	}
	return func(o *Options) { o.precision = p }
}

// WithRejectNaNInf makes Parse fail with ErrNaNInf on NaN or ±Inf elements.
// It has no effect for integer element types.
func WithRejectNaNInf() Option {
	return func(o *Options) { o.rejectNaNInf = true }
}

// defaultOptions returns the zero-configuration state.
func defaultOptions() Options {
	return Options{
		floatFormat:  DefaultFloatFormat,
		precision:    DefaultPrecision,
		rejectNaNInf: DefaultRejectNaNInf,
	}
}

// gatherOptions applies opts over defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
