// SPDX-License-Identifier: MIT
// Package convert: sentinel errors and the ConversionError carrier.

package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates text that is not a number of the target kind.
	// Floating targets never return it; they yield NaN instead.
	ErrSyntax = errors.New("convert: invalid syntax")

	// ErrRange indicates a well-formed number that does not fit the target type
	// (integer width, negative into unsigned, or float overflow).
	ErrRange = errors.New("convert: value out of range")

	// ErrNilOutput is returned by Convert when the output pointer is nil.
	ErrNilOutput = errors.New("convert: nil output pointer")
)

// ConversionError records which text failed to convert to which type.
// Err is ErrSyntax or ErrRange.
type ConversionError struct {
	Text string // input as given, before trimming
	Type string // target type name, e.g. "int32"
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%v: %q as %s", e.Err, e.Text, e.Type)
}

func (e *ConversionError) Unwrap() error { return e.Err }
