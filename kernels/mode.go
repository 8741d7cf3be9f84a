// SPDX-License-Identifier: MIT

package kernels

import (
	"fmt"
	"strings"
)

// Mode selects one of the five access patterns of the kernel.
type Mode uint8

const (
	// FullMap applies the function to every element; Index is ignored.
	FullMap Mode = iota

	// RowMap applies the function to row Index; other cells are copied through.
	RowMap

	// ColumnMap applies the function to column Index; other cells are copied through.
	ColumnMap

	// RowReduce sums f over row Index into a 1×1 result.
	RowReduce

	// ColumnReduce sums f over column Index into a 1×1 result.
	ColumnReduce

	modeCount // sentinel; keep last
)

var modeNames = [modeCount]string{
	FullMap:      "FullMap",
	RowMap:       "RowMap",
	ColumnMap:    "ColumnMap",
	RowReduce:    "RowReduce",
	ColumnReduce: "ColumnReduce",
}

// String returns the mode name, or Mode(n) for unknown values.
func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}

	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Valid reports whether m is one of the five defined modes.
func (m Mode) Valid() bool { return m < modeCount }

// RequiresIndex reports whether the mode selects a row or column.
func (m Mode) RequiresIndex() bool { return m != FullMap && m.Valid() }

// IsReduce reports whether the mode collapses to a 1×1 result.
func (m Mode) IsReduce() bool { return m == RowReduce || m == ColumnReduce }

// IsRowSelector reports whether Index addresses a row.
func (m Mode) IsRowSelector() bool { return m == RowMap || m == RowReduce }

// modeAliases maps command-line spellings onto modes.
var modeAliases = map[string]Mode{
	"full":         FullMap,
	"map":          FullMap,
	"row":          RowMap,
	"col":          ColumnMap,
	"column":       ColumnMap,
	"row-sum":      RowReduce,
	"row-reduce":   RowReduce,
	"col-sum":      ColumnReduce,
	"column-sum":   ColumnReduce,
	"col-reduce":   ColumnReduce,
	"fullmap":      FullMap,
	"rowmap":       RowMap,
	"columnmap":    ColumnMap,
	"rowreduce":    RowReduce,
	"columnreduce": ColumnReduce,
}

// ParseMode resolves a case-insensitive mode name ("row", "col-sum", "FullMap", ...).
// Returns ErrUnknownMode for anything else.
func ParseMode(s string) (Mode, error) {
	if m, ok := modeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}

	return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
}

// Op describes one kernel invocation: the access pattern and, for every
// mode except FullMap, the selected row or column.
type Op struct {
	Mode  Mode
	Index int
}

// FullMapOp maps every element.
func FullMapOp() Op { return Op{Mode: FullMap} }

// RowMapOp maps row i.
func RowMapOp(i int) Op { return Op{Mode: RowMap, Index: i} }

// ColumnMapOp maps column j.
func ColumnMapOp(j int) Op { return Op{Mode: ColumnMap, Index: j} }

// RowReduceOp sums f over row i.
func RowReduceOp(i int) Op { return Op{Mode: RowReduce, Index: i} }

// ColumnReduceOp sums f over column j.
func ColumnReduceOp(j int) Op { return Op{Mode: ColumnReduce, Index: j} }

// OpFromFlags translates the flag-form calling convention into an Op.
//   - isMatrix=false selects reduction: RowReduce when isRow, else ColumnReduce.
//   - isMatrix=true selects a targeted map: RowMap when isRow, else ColumnMap.
//
// FullMap is not reachable from the flag form; use FullMapOp or MapAll.
// An index that does not fit in int becomes -1 so it fails validation.
func OpFromFlags(isMatrix, isRow bool, index int64) Op {
	i := int(index)
	if int64(i) != index {
		i = -1
	}
	switch {
	case isMatrix && isRow:
		return RowMapOp(i)
	case isMatrix:
		return ColumnMapOp(i)
	case isRow:
		return RowReduceOp(i)
	default:
		return ColumnReduceOp(i)
	}
}

// String renders the op as Mode or Mode[index].
func (o Op) String() string {
	if o.Mode.RequiresIndex() {
		return fmt.Sprintf("%s[%d]", o.Mode, o.Index)
	}

	return o.Mode.String()
}

// Validate checks the mode and, when required, the index against a rows×cols source.
// Implementation:
//   - Stage 1: unknown mode ⇒ ErrUnknownMode.
//   - Stage 2: FullMap ⇒ ok (Index ignored).
//   - Stage 3: row selectors need 0 ≤ Index < rows, column selectors 0 ≤ Index < cols;
//     violation ⇒ ErrInvalidIndex wrapped with the mode, index and bound.
//
// Complexity: O(1).
func (o Op) Validate(rows, cols int) error {
	if !o.Mode.Valid() {
		return kernelErrorf(o.Mode.String(), ErrUnknownMode)
	}
	if !o.Mode.RequiresIndex() {
		return nil
	}
	bound, axis := cols, "column"
	if o.Mode.IsRowSelector() {
		bound, axis = rows, "row"
	}
	if o.Index < 0 || o.Index >= bound {
		return fmt.Errorf("%s: %s %d not in [0,%d): %w", o.Mode, axis, o.Index, bound, ErrInvalidIndex)
	}

	return nil
}
