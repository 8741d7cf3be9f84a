package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// signed covers the element types the CLI loads; negate and abs need a sign.
type signed interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// funcNames is kept sorted for the funcs listing.
var funcNames = []string{"abs", "double", "identity", "inc", "negate", "square"}

// lookupFunc returns the named unary function for T.
func lookupFunc[T signed](name string) (func(T) T, error) {
	switch strings.ToLower(name) {
	case "identity":
		return func(x T) T { return x }, nil
	case "double":
		return func(x T) T { return x + x }, nil
	case "square":
		return func(x T) T { return x * x }, nil
	case "negate":
		return func(x T) T { return -x }, nil
	case "abs":
		return func(x T) T {
			if x < 0 {
				return -x
			}
			return x
		}, nil
	case "inc":
		return func(x T) T { return x + 1 }, nil
	default:
		return nil, fmt.Errorf("unknown function %q (have %s)", name, strings.Join(funcNames, ", "))
	}
}

func newFuncsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "funcs",
		Short: "List the named functions accepted by --fn",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, n := range funcNames {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
		},
	}
}
