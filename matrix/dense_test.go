// Package matrix_test contains unit tests for the strided Dense implementation.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemap/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[float64](0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense[int32](5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense[uint8](-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseRowSkip verifies the stride resolution from options.
func TestNewDenseRowSkip(t *testing.T) {
	m := MustDense[float64](t, 3, 4)
	require.Equal(t, 4, m.RowSkip())
	require.Len(t, m.Values(), 12)

	p := MustDense[float64](t, 3, 4, matrix.WithPadding(2))
	require.Equal(t, 6, p.RowSkip())
	require.Len(t, p.Values(), 18)

	// explicit rowSkip wins over padding, regardless of order
	s := MustDense[float64](t, 3, 4, matrix.WithRowSkip(7), matrix.WithPadding(1))
	require.Equal(t, 7, s.RowSkip())

	_, err := matrix.NewDense[float64](3, 4, matrix.WithRowSkip(3))
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestOptionPanics checks that nonsensical option values are programmer errors.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithRowSkip(0) })
	require.Panics(t, func() { matrix.WithPadding(-1) })
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense[float64](t, 2, 2, matrix.WithPadding(3))

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	// column 2 exists physically (padding) but not logically
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGetStrided validates that Set/At use the i*rowSkip+j offset.
func TestSetGetStrided(t *testing.T) {
	m := MustDense[int64](t, 2, 3, matrix.WithPadding(2)) // rowSkip = 5

	require.NoError(t, m.Set(1, 2, 42))
	require.Equal(t, int64(42), MustAt[int64](t, m, 1, 2))
	require.Equal(t, int64(42), m.Values()[1*5+2])

	// padding untouched
	require.Equal(t, int64(0), m.Values()[3])
	require.Equal(t, int64(0), m.Values()[4])
}

// TestNewDenseFrom checks row-major fill with and without padding.
func TestNewDenseFrom(t *testing.T) {
	vals := []float32{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, vals, matrix.WithPadding(1))
	require.NoError(t, err)
	require.Equal(t, []float32{1, 2, 3, 0, 4, 5, 6, 0}, m.Values())

	// input is copied
	vals[0] = 99
	require.Equal(t, float32(1), MustAt[float32](t, m, 0, 0))

	_, err = matrix.NewDenseFrom(2, 3, []float32{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestWrapDense verifies zero-copy wrapping and buffer-length validation.
func TestWrapDense(t *testing.T) {
	buf := []int32{1, 2, -1, 3, 4} // 2x2, rowSkip 3, last row unpadded
	m, err := matrix.WrapDense(2, 2, 3, buf)
	require.NoError(t, err)
	require.Equal(t, int32(3), MustAt[int32](t, m, 1, 0))

	require.NoError(t, m.Set(0, 1, 20))
	require.Equal(t, int32(20), buf[1]) // shared storage

	_, err = matrix.WrapDense(2, 2, 3, buf[:4])
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.WrapDense(2, 3, 2, buf)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.WrapDense(0, 3, 3, buf)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowSlice checks that Row returns exactly the logical elements and aliases storage.
func TestRowSlice(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}, matrix.WithPadding(4))

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)
	require.Equal(t, 3, cap(row)) // cannot grow into padding

	row[0] = 40
	require.Equal(t, 40.0, MustAt[float64](t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy with the same stride.
func TestCloneIndependence(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 0, 0, 2}, matrix.WithPadding(1))

	clone := m.Clone()
	require.Equal(t, m.RowSkip(), clone.RowSkip())
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 3.0))
	require.Equal(t, 1.0, MustAt[float64](t, m, 0, 0))
	require.Equal(t, 3.0, MustAt[float64](t, clone, 0, 0))
}

// TestEqualIgnoresPadding compares matrices with different strides.
func TestEqualIgnoresPadding(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []int8{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []int8{1, 2, 3, 4}, matrix.WithPadding(3))
	b.Values()[2] = 99 // scribble on padding

	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
	require.True(t, a.Equal(hide[int8]{b})) // fallback path

	require.NoError(t, b.Set(1, 1, 5))
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))
	require.False(t, a.Equal(MustDense[int8](t, 2, 3)))
}

// TestFillAndDo checks that Fill and Do only touch logical elements.
func TestFillAndDo(t *testing.T) {
	m := MustDense[uint16](t, 2, 2, matrix.WithPadding(1))
	m.Fill(7)
	require.Equal(t, []uint16{7, 7, 0, 7, 7, 0}, m.Values())

	var visited int
	m.Do(func(i, j int, v uint16) bool {
		visited++
		require.Equal(t, uint16(7), v)
		return visited < 3
	})
	require.Equal(t, 3, visited)
}

// TestStringOutput checks that String() formats logical elements only.
func TestStringOutput(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2.5, 3, 4}, matrix.WithPadding(2))
	require.Equal(t, "[1, 2.5]\n[3, 4]\n", m.String())

	n := NewFilledDense(t, 1, 3, []int32{-1, 0, 1})
	require.Equal(t, "[-1, 0, 1]\n", n.String())
}

// TestCloneMatrix materializes a non-Dense source.
func TestCloneMatrix(t *testing.T) {
	src := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}, matrix.WithPadding(1))

	fromHidden, err := matrix.CloneMatrix[float64](hide[float64]{src})
	require.NoError(t, err)
	require.Equal(t, 3, fromHidden.RowSkip())
	require.True(t, src.Equal(fromHidden))

	fromDense, err := matrix.CloneMatrix[float64](src)
	require.NoError(t, err)
	require.Equal(t, 4, fromDense.RowSkip())

	_, err = matrix.CloneMatrix[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
