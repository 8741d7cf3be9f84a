// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for dense layout.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective layout.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Shape-dependent checks (rowSkip ≥ cols) happen in constructors and are
//     reported as ErrBadShape, because options do not know the column count.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPadding is the number of unused slots appended to every row.
	// 0 ⇒ rowSkip == cols (contiguous rows).
	DefaultPadding = 0

	// DefaultRowSkip of 0 means "derive from cols + padding".
	DefaultRowSkip = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRowSkipInvalid = "matrix: WithRowSkip: rowSkip must be > 0"
	panicPaddingInvalid = "matrix: WithPadding: padding must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective layout after applying Option setters.
// Fields are unexported; public constructors accept ...Option.
type Options struct {
	rowSkip int // explicit stride; 0 ⇒ cols + padding
	padding int // extra slots per row when rowSkip is not explicit
}

// WithRowSkip sets an explicit row stride.
// Implementation:
//   - Stage 1: validate rowSkip > 0 (panic otherwise).
//   - Stage 2: return a setter; NewDense later checks rowSkip ≥ cols.
//
// Notes:
//   - An explicit rowSkip takes precedence over WithPadding regardless of order.
func WithRowSkip(rowSkip int) Option {
	if rowSkip <= 0 {
		panic(panicRowSkipInvalid)
	}

	return func(o *Options) { o.rowSkip = rowSkip }
}

// WithPadding appends p unused slots to every row (rowSkip = cols + p).
// Panics when p < 0.
func WithPadding(p int) Option {
	if p < 0 {
		panic(panicPaddingInvalid)
	}

	return func(o *Options) { o.padding = p }
}

// gatherOptions applies user setters over the documented defaults.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		rowSkip: DefaultRowSkip,
		padding: DefaultPadding,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// stride resolves the row stride for a given column count.
func (o Options) stride(cols int) int {
	if o.rowSkip > 0 {
		return o.rowSkip
	}

	return cols + o.padding
}
