// SPDX-License-Identifier: MIT

// Package matrixio: functional options for the CSV reader and writer.
// The same Option set drives ReadCSV, LoadCSV and WriteCSV; options that do
// not apply to an operation are ignored by it.
package matrixio

import "github.com/katalvlaran/densemap/matrix"

const (
	// DefaultComma is the field delimiter.
	DefaultComma = ','

	// DefaultComment of 0 disables comment lines.
	DefaultComment = 0

	// DefaultPadding is the row padding of loaded matrices.
	DefaultPadding = matrix.DefaultPadding
)

const (
	panicCommaInvalid   = "matrixio: WithComma: delimiter must not be 0, '\"', '\\r' or '\\n'"
	panicCommentInvalid = "matrixio: WithComment: comment must not be '\"', '\\r' or '\\n'"
	panicPaddingInvalid = "matrixio: WithPadding: padding must be >= 0"
)

// Option mutates Options.
type Option func(*Options)

// Options holds the resolved reader/writer settings.
type Options struct {
	comma   rune
	comment rune
	padding int
}

// WithComma sets the field delimiter (e.g. '\t' or ';').
func WithComma(r rune) Option {
	if r == 0 || !validDelim(r) {
		panic(panicCommaInvalid)
	}

	return func(o *Options) { o.comma = r }
}

// WithComment makes lines starting with r be skipped by the reader.
func WithComment(r rune) Option {
	if !validDelim(r) {
		panic(panicCommentInvalid)
	}

	return func(o *Options) { o.comment = r }
}

// WithPadding makes loaded matrices use rowSkip = cols + p.
func WithPadding(p int) Option {
	if p < 0 {
		panic(panicPaddingInvalid)
	}

	return func(o *Options) { o.padding = p }
}

func validDelim(r rune) bool {
	return r != '"' && r != '\r' && r != '\n'
}

func gatherOptions(opts ...Option) Options {
	o := Options{comma: DefaultComma, comment: DefaultComment, padding: DefaultPadding}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
