// SPDX-License-Identifier: MIT
// Package matrixio - raw binary matrix files.
//
// Layout (all little-endian):
//
//	offset  size  field
//	0       4     magic "DMX1"
//	4       1     element kind (reflect.Kind of T)
//	5       1     element size in bytes
//	6       2     reserved, zero
//	8       8     rows
//	16      8     cols
//	24      8     rowSkip (≥ cols)
//	32      ...   rows*rowSkip elements, row-major, padding slots included
//
// int and uint are always stored as 8 bytes so files do not depend on the
// writer's word size.

package matrixio

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"reflect"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/densemap/matrix"
)

const (
	rawMagic      = "DMX1"
	rawHeaderSize = 32
)

type rawHeader struct {
	kind     reflect.Kind
	elemSize int
	rows     int
	cols     int
	rowSkip  int
}

// elemLayout returns the on-disk kind and width of T.
func elemLayout[T matrix.Number]() (reflect.Kind, int) {
	var zero T
	rt := reflect.TypeOf(zero)
	switch k := rt.Kind(); k {
	case reflect.Int, reflect.Uint:
		return k, 8
	default:
		return k, int(rt.Size())
	}
}

// ReadRaw memory-maps path read-only and decodes it into a new Dense that
// keeps the file's rowSkip. The mapping is released before returning.
//
// Errors:
//   - ErrBadHeader (short file, wrong magic, impossible shape),
//     ErrElementType (file holds another element type), ErrTruncated.
func ReadRaw[T matrix.Number](path string) (*matrix.Dense[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf("ReadRaw", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, ioErrorf("ReadRaw", err)
	}
	if info.Size() < rawHeaderSize {
		return nil, ioErrorf("ReadRaw", ErrBadHeader)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, ioErrorf("ReadRaw", err)
	}
	defer data.Unmap()

	m, err := decodeRaw[T](data)
	if err != nil {
		return nil, ioErrorf("ReadRaw", err)
	}

	return m, nil
}

func decodeRaw[T matrix.Number](data []byte) (*matrix.Dense[T], error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	kind, size := elemLayout[T]()
	if h.kind != kind || h.elemSize != size {
		return nil, fmt.Errorf("%w: file has %s/%d, want %s/%d", ErrElementType, h.kind, h.elemSize, kind, size)
	}

	n := h.rows * h.rowSkip
	payload := data[rawHeaderSize:]
	if uint64(len(payload))/uint64(size) < uint64(n) {
		return nil, fmt.Errorf("%w: need %d elements of %d bytes, have %d bytes", ErrTruncated, n, size, len(payload))
	}

	buf := make([]T, n)
	for i := range buf {
		buf[i] = decodeElem[T](kind, payload[i*size:])
	}

	return matrix.WrapDense(h.rows, h.cols, h.rowSkip, buf)
}

func parseHeader(data []byte) (rawHeader, error) {
	if len(data) < rawHeaderSize || string(data[:4]) != rawMagic {
		return rawHeader{}, ErrBadHeader
	}
	le := binary.LittleEndian
	rows, cols, skip := le.Uint64(data[8:]), le.Uint64(data[16:]), le.Uint64(data[24:])
	const limit = math.MaxInt32
	if rows == 0 || cols == 0 || skip < cols || rows > limit || skip > limit {
		return rawHeader{}, fmt.Errorf("%w: shape %dx%d rowSkip %d", ErrBadHeader, rows, cols, skip)
	}

	return rawHeader{
		kind:     reflect.Kind(data[4]),
		elemSize: int(data[5]),
		rows:     int(rows),
		cols:     int(cols),
		rowSkip:  int(skip),
	}, nil
}

func decodeElem[T matrix.Number](kind reflect.Kind, b []byte) T {
	le := binary.LittleEndian
	switch kind {
	case reflect.Float32:
		return T(math.Float32frombits(le.Uint32(b)))
	case reflect.Float64:
		return T(math.Float64frombits(le.Uint64(b)))
	case reflect.Int8:
		return T(int8(b[0]))
	case reflect.Int16:
		return T(int16(le.Uint16(b)))
	case reflect.Int32:
		return T(int32(le.Uint32(b)))
	case reflect.Int, reflect.Int64:
		return T(int64(le.Uint64(b)))
	case reflect.Uint8:
		return T(b[0])
	case reflect.Uint16:
		return T(le.Uint16(b))
	case reflect.Uint32:
		return T(le.Uint32(b))
	default:
		return T(le.Uint64(b))
	}
}

// WriteRaw stores m in the raw layout, padding slots included, so ReadRaw
// returns a matrix with the same rowSkip.
func WriteRaw[T matrix.Number](path string, m *matrix.Dense[T]) error {
	if err := matrix.ValidateNotNil[T](m); err != nil {
		return ioErrorf("WriteRaw", err)
	}
	kind, size := elemLayout[T]()
	n := m.Rows() * m.RowSkip()
	vals := m.Values()
	if len(vals) > n {
		vals = vals[:n]
	}

	// views over foreign buffers may omit the last row's padding; it is written as zeros
	out := make([]byte, rawHeaderSize+n*size)
	copy(out, rawMagic)
	out[4] = byte(kind)
	out[5] = byte(size)
	le := binary.LittleEndian
	le.PutUint64(out[8:], uint64(m.Rows()))
	le.PutUint64(out[16:], uint64(m.Cols()))
	le.PutUint64(out[24:], uint64(m.RowSkip()))
	for i, v := range vals {
		encodeElem(kind, out[rawHeaderSize+i*size:], v)
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return ioErrorf("WriteRaw", err)
	}

	return nil
}

func encodeElem[T matrix.Number](kind reflect.Kind, b []byte, v T) {
	le := binary.LittleEndian
	switch kind {
	case reflect.Float32:
		le.PutUint32(b, math.Float32bits(float32(v)))
	case reflect.Float64:
		le.PutUint64(b, math.Float64bits(float64(v)))
	case reflect.Int8, reflect.Uint8:
		b[0] = byte(v)
	case reflect.Int16, reflect.Uint16:
		le.PutUint16(b, uint16(v))
	case reflect.Int32, reflect.Uint32:
		le.PutUint32(b, uint32(v))
	default:
		le.PutUint64(b, uint64(v))
	}
}
