package convert

import (
	"reflect"
	"strconv"

	"github.com/katalvlaran/densemap/matrix"
)

// Format renders v as decimal text that Parse[T] reads back exactly.
// Floats use the shortest representation for T's width; NaN and ±Inf
// render as "NaN", "+Inf", "-Inf".
func Format[T matrix.Number](v T) string {
	rt := reflect.TypeOf(v)
	switch rt.Kind() {
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(float64(v), 'g', -1, rt.Bits())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return strconv.FormatUint(uint64(v), 10)
	}
}
