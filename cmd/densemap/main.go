// Command densemap loads a dense matrix, applies a named scalar function in
// one of the kernel modes and prints the result as CSV.
//
// Usage:
//
//	densemap map --input m.csv --fn double --mode row --index 1
//	densemap map --input m.raw --raw --type int32 --fn square --mode col-sum --index 0
//	densemap funcs
//
// Modes: full, row, col, row-sum, col-sum (see kernels.ParseMode for aliases).
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("densemap: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "densemap",
		Short:         "Map and reduce dense matrices with named scalar functions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMapCmd(), newFuncsCmd())

	return root
}
