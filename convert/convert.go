// SPDX-License-Identifier: MIT

// Package convert parses decimal text into any matrix.Number type.
//
// Floating targets are lenient: text that is not a number becomes a quiet NaN
// with a nil error, so a malformed cell in a data file loads as a missing value.
// Integer targets are strict: malformed text is ErrSyntax and a value that
// does not fit the target width is ErrRange. Both are reported through
// *ConversionError.
//
// Leading and trailing whitespace is ignored. Integers are base 10 and the
// whole remaining text must be consumed ("12abc" is a syntax error).
package convert

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/densemap/matrix"
)

const panicMustParse = "convert: MustParse: "

// Parse converts text to T.
//
// Implementation:
//   - Stage 1: trim surrounding whitespace and resolve T's kind and width.
//   - Stage 2: float kinds go through strconv.ParseFloat, signed kinds through
//     strconv.ParseInt, unsigned kinds through strconv.ParseUint, all with
//     T's bit size so width overflow is detected by strconv.
//
// Behavior highlights:
//   - float syntax error ⇒ NaN, nil.
//   - float overflow ⇒ ±Inf with a *ConversionError wrapping ErrRange.
//   - integer errors ⇒ zero value with a *ConversionError.
func Parse[T matrix.Number](text string) (T, error) {
	var zero T
	rt := reflect.TypeOf(zero)
	s := strings.TrimSpace(text)

	switch rt.Kind() {
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rt.Bits())
		if err == nil {
			return T(f), nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return T(f), conversionError(text, rt, ErrRange)
		}

		return T(math.NaN()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, rt.Bits())
		if err != nil {
			return zero, conversionError(text, rt, classify(err))
		}

		return T(n), nil

	default: // unsigned kinds
		u, err := parseUnsigned(s, rt.Bits())
		if err != nil {
			return zero, conversionError(text, rt, err)
		}

		return T(u), nil
	}
}

// Convert parses text and stores the result in *out.
// *out is left untouched when an error is returned; for floating targets
// unparsable text stores NaN and returns nil.
func Convert[T matrix.Number](text string, out *T) error {
	if out == nil {
		return ErrNilOutput
	}
	v, err := Parse[T](text)
	if err != nil {
		return err
	}
	*out = v

	return nil
}

// MustParse is Parse that panics on error. Intended for constants in tests
// and examples.
func MustParse[T matrix.Number](text string) T {
	v, err := Parse[T](text)
	if err != nil {
		panic(panicMustParse + err.Error())
	}

	return v
}

// parseUnsigned accepts an optional '+' and reports negative numbers as
// ErrRange rather than a syntax error; "-0" is zero.
func parseUnsigned(s string, bits int) (uint64, error) {
	if strings.HasPrefix(s, "-") {
		n, err := strconv.ParseInt(s, 10, 64)
		switch {
		case err == nil && n == 0:
			return 0, nil
		case err == nil, errors.Is(err, strconv.ErrRange):
			return 0, ErrRange
		default:
			return 0, ErrSyntax
		}
	}
	u, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, bits)
	if err != nil {
		return 0, classify(err)
	}

	return u, nil
}

// classify maps strconv errors onto the package sentinels.
func classify(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrRange
	}

	return ErrSyntax
}

func conversionError(text string, rt reflect.Type, err error) error {
	return &ConversionError{Text: text, Type: rt.String(), Err: err}
}
