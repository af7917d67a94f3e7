// SPDX-License-Identifier: MIT

// Package matrix - canonical text codec.
//
// Grammar (after trimming surrounding whitespace):
//
//	matrix  = "[" row { ";" row } "]"
//	row     = element { "," element }
//
// Element tokens are trimmed individually before numeric parsing. Output never
// contains whitespace: [1,2,3;4,5,6].
//
// Parsing is strict left-to-right: the first violation aborts and no partial
// matrix is returned. Row i's column count is checked before its elements are
// parsed, so "[1,x;2]" reports ErrParseNumber while "[1,2;3]" reports
// ErrColumnsNotAligned.

package matrix

import (
	"encoding"
	"fmt"
	"math"
	"strings"
)

const (
	opParse  = "Parse"
	opFormat = "Format"

	_fmtOpen   = "["
	_fmtClose  = "]"
	_fmtColSep = ","
	_fmtRowSep = ";"
)

var (
	_ encoding.TextMarshaler   = (*Matrix[int])(nil)
	_ encoding.TextUnmarshaler = (*Matrix[int])(nil)
)

// String renders m in the canonical form. A nil matrix renders as "<nil>".
func (m *Matrix[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	return format(m, defaultOptions())
}

// Format renders m using the float options in opts (WithFloatFormat,
// WithPrecision). Without options it equals m.String().
// Errors: ErrNilMatrix.
func Format[T Number](m *Matrix[T], opts ...Option) (string, error) {
	if err := ValidateNotNil(m); err != nil {
		return "", matrixErrorf(opFormat, err)
	}
	return format(m, gatherOptions(opts...)), nil
}

// format emits "[", each element followed by "," (not last in its row),
// ";" (last in its row but not the last row) or nothing (last element),
// then "]".
func format[T Number](m *Matrix[T], o Options) string {
	fmtElem := elementFormatter[T](o.floatFormat, o.precision)
	n := len(m.data)

	var b strings.Builder
	b.Grow(2 + n*4)
	b.WriteString(_fmtOpen)
	for i, v := range m.data {
		b.WriteString(fmtElem(v))
		switch {
		case i == n-1:
		case (i+1)%m.c == 0:
			b.WriteString(_fmtRowSep)
		default:
			b.WriteString(_fmtColSep)
		}
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// Parse reads a matrix in the canonical form.
//
// Errors (first violation wins):
//   - ErrWrongBracketFormat: fewer than 2 bytes after trimming, or not "[...]".
//   - ErrColumnsNotAligned: a row's element count differs from the first row's.
//   - ErrParseNumber: a token is not a valid T (the strconv cause is wrapped too).
//   - ErrNaNInf: a NaN/±Inf float token under WithRejectNaNInf.
//
// Rows = number of ';' groups; cols = element count of the first group.
// Complexity: O(len(s)).
func Parse[T Number](s string, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)

	s = strings.TrimSpace(s)
	if len(s) < 2 || !strings.HasPrefix(s, _fmtOpen) || !strings.HasSuffix(s, _fmtClose) {
		return nil, matrixErrorf(opParse, ErrWrongBracketFormat)
	}
	body := s[1 : len(s)-1]

	parseElem := elementParser[T]()
	kind, _ := kindOf[T]()
	checkFinite := o.rejectNaNInf && kind == kindFloat

	var (
		rows, cols int
		data       []T
	)
	for i, rowText := range strings.Split(body, _fmtRowSep) {
		tokens := strings.Split(rowText, _fmtColSep)
		if i == 0 {
			cols = len(tokens)
			data = make([]T, 0, cols)
		} else if len(tokens) != cols {
			return nil, matrixErrorf(opParse,
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(tokens), cols, ErrColumnsNotAligned))
		}
		rows++
		for j, tok := range tokens {
			tok = strings.TrimSpace(tok)
			v, err := parseElem(tok)
			if err != nil {
				return nil, matrixErrorf(opParse,
					fmt.Errorf("element (%d,%d) %q: %w: %w", i, j, tok, ErrParseNumber, err))
			}
			if checkFinite {
				if f := toFloat64(v); math.IsNaN(f) || math.IsInf(f, 0) {
					return nil, matrixErrorf(opParse, fmt.Errorf("element (%d,%d) %q: %w", i, j, tok, ErrNaNInf))
				}
			}
			data = append(data, v)
		}
	}

	return &Matrix[T]{r: rows, c: cols, data: data}, nil
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (m *Matrix[T]) MarshalText() ([]byte, error) {
	if m == nil {
		return nil, matrixErrorf(opFormat, ErrNilMatrix)
	}
	return []byte(format(m, defaultOptions())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error m is left unchanged.
func (m *Matrix[T]) UnmarshalText(text []byte) error {
	if m == nil {
		return matrixErrorf(opParse, ErrNilMatrix)
	}
	parsed, err := Parse[T](string(text))
	if err != nil {
		return err
	}
	*m = *parsed

	return nil
}
