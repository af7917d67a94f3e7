// SPDX-License-Identifier: MIT

// Package matrix - numeric capability layer.
//
// Purpose:
//   - Define the Number constraint every Matrix element must satisfy.
//   - Expose the additive and multiplicative identities (Zero/One) once,
//     instead of repeating them per concrete kind.
//   - Provide per-kind element codecs (parse/format) resolved once per call
//     from the element's reflect.Kind, so named types (~int, ~float64) work too.
//
// Determinism:
//   - Integer kinds always use base 10; float kinds use strconv with the
//     element's native bit size, so a float32 formats as its shortest float32 decimal.

package matrix

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Matrix can hold: every signed and
// unsigned integer kind and both floating-point kinds (including named types).
type Number interface {
	constraints.Integer | constraints.Float
}

// Zero returns the additive identity of T.
// Complexity: O(1).
func Zero[T Number]() T { return 0 }

// One returns the multiplicative identity of T.
// Complexity: O(1).
func One[T Number]() T { return 1 }

// toFloat64 promotes any Number to float64. Used by Div/DivScalar.
func toFloat64[T Number](v T) float64 { return float64(v) }

// elementKind classifies T into one of the three codec families.
type elementKind uint8

const (
	kindSigned elementKind = iota
	kindUnsigned
	kindFloat
)

// kindOf resolves the codec family and bit size of T.
// Complexity: O(1), one reflect lookup per call.
func kindOf[T Number]() (elementKind, int) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kindSigned, t.Bits()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return kindUnsigned, t.Bits()
	default: // Float32, Float64: the Number constraint admits nothing else.
		return kindFloat, t.Bits()
	}
}

// elementParser returns a function parsing one trimmed token as T.
// The returned error is the raw strconv error; callers wrap it.
func elementParser[T Number]() func(token string) (T, error) {
	kind, bits := kindOf[T]()
	switch kind {
	case kindSigned:
		return func(token string) (T, error) {
			v, err := strconv.ParseInt(token, 10, bits)
			if err != nil {
				return 0, err
			}
			return T(v), nil
		}
	case kindUnsigned:
		return func(token string) (T, error) {
			// one leading '+' is accepted, as for signed kinds
			v, err := strconv.ParseUint(strings.TrimPrefix(token, "+"), 10, bits)
			if err != nil {
				return 0, err
			}
			return T(v), nil
		}
	default:
		return func(token string) (T, error) {
			v, err := strconv.ParseFloat(token, bits)
			// overflowing literals ("1e400") become ±Inf like "inf" does;
			// WithRejectNaNInf decides whether infinities are allowed.
			if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0)) {
				return 0, err
			}
			return T(v), nil
		}
	}
}

// Infinity literals emitted by the formatter; strconv.ParseFloat reads them back.
const (
	_fmtPosInf = "inf"
	_fmtNegInf = "-inf"
)

// elementFormatter returns a function rendering one element of T.
// verb and prec apply to float kinds only (see WithFloatFormat, WithPrecision).
// Infinities render as "inf"/"-inf", NaN as "NaN".
func elementFormatter[T Number](verb byte, prec int) func(v T) string {
	kind, bits := kindOf[T]()
	switch kind {
	case kindSigned:
		return func(v T) string { return strconv.FormatInt(int64(v), 10) }
	case kindUnsigned:
		return func(v T) string { return strconv.FormatUint(uint64(v), 10) }
	default:
		return func(v T) string {
			f := float64(v)
			switch {
			case math.IsInf(f, 1):
				return _fmtPosInf
			case math.IsInf(f, -1):
				return _fmtNegInf
			}
			return strconv.FormatFloat(f, verb, prec, bits)
		}
	}
}
