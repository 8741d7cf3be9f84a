// SPDX-License-Identifier: MIT
// Package matrixio - CSV text loader and writer.
//
// Purpose:
//   - Turn delimited text into a *matrix.Dense[T], one record per row.
//   - Cells are converted with convert.Parse[T]: float cells that are not
//     numbers load as NaN, integer cells that are not numbers fail with the
//     cell coordinates attached.

package matrixio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/densemap/convert"
	"github.com/katalvlaran/densemap/matrix"
)

// ReadCSV reads every record from r into a rows×cols matrix.
//
// Implementation:
//   - Stage 1: read records with encoding/csv (leading spaces trimmed, the
//     first record fixes the column count).
//   - Stage 2: convert each cell with convert.Parse[T] into a row-major slice.
//   - Stage 3: build the Dense with the configured padding.
//
// Errors:
//   - ErrEmptyInput, ErrRagged, a wrapped *convert.ConversionError for a bad
//     cell, or the underlying read error.
func ReadCSV[T matrix.Number](r io.Reader, opts ...Option) (*matrix.Dense[T], error) {
	o := gatherOptions(opts...)
	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.Comment = o.comment
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		vals       []T
		rows, cols int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("ReadCSV: %w: %v", ErrRagged, err)
		}
		if err != nil {
			return nil, ioErrorf("ReadCSV", err)
		}
		if rows == 0 {
			cols = len(rec)
		}
		for c, field := range rec {
			v, perr := convert.Parse[T](field)
			if perr != nil {
				return nil, cellErrorf(rows, c, perr)
			}
			vals = append(vals, v)
		}
		rows++
	}
	if rows == 0 {
		return nil, ioErrorf("ReadCSV", ErrEmptyInput)
	}

	return matrix.NewDenseFrom(rows, cols, vals, matrix.WithPadding(o.padding))
}

// LoadCSV opens path and reads it with ReadCSV.
func LoadCSV[T matrix.Number](path string, opts ...Option) (*matrix.Dense[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf("LoadCSV", err)
	}
	defer f.Close()

	return ReadCSV[T](f, opts...)
}

// WriteCSV writes m as one record per row, formatting cells with
// convert.Format so ReadCSV reads them back unchanged. Only WithComma applies.
func WriteCSV[T matrix.Number](w io.Writer, m matrix.Matrix[T], opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return ioErrorf("WriteCSV", err)
	}
	o := gatherOptions(opts...)
	cw := csv.NewWriter(w)
	cw.Comma = o.comma

	rec := make([]string, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := range rec {
			v, err := m.At(i, j)
			if err != nil {
				return ioErrorf("WriteCSV", err)
			}
			rec[j] = convert.Format(v)
		}
		if err := cw.Write(rec); err != nil {
			return ioErrorf("WriteCSV", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
