package convert_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densemap/convert"
)

func ExampleParse() {
	f, err := convert.Parse[float64]("abc")
	fmt.Println(f, err)

	_, err = convert.Parse[int32]("abc")
	fmt.Println(errors.Is(err, convert.ErrSyntax))

	_, err = convert.Parse[uint8]("300")
	fmt.Println(err)
	// Output:
	// NaN <nil>
	// true
	// convert: value out of range: "300" as uint8
}
