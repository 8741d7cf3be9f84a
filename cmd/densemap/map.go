package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/katalvlaran/densemap/kernels"
	"github.com/katalvlaran/densemap/matrix"
	"github.com/katalvlaran/densemap/matrixio"
	"github.com/spf13/cobra"
)

// mapConfig holds the parsed flags of the map command.
type mapConfig struct {
	input   string
	fn      string
	mode    string
	index   int
	typ     string
	raw     bool
	comma   string
	padding int
	verbose bool
}

func newMapCmd() *cobra.Command {
	var cfg mapConfig
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Apply a named function to a matrix, one of its rows or columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMap(cmd.OutOrStdout(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.input, "input", "i", "", "matrix file (CSV, or raw with --raw)")
	f.StringVar(&cfg.fn, "fn", "identity", "function name (see 'densemap funcs')")
	f.StringVarP(&cfg.mode, "mode", "m", "full", "full | row | col | row-sum | col-sum")
	f.IntVar(&cfg.index, "index", 0, "row or column index for non-full modes")
	f.StringVarP(&cfg.typ, "type", "t", "float64", "element type: float64 | float32 | int64 | int32")
	f.BoolVar(&cfg.raw, "raw", false, "read the input as a raw binary matrix")
	f.StringVar(&cfg.comma, "comma", ",", "CSV field delimiter for input and output")
	f.IntVar(&cfg.padding, "padding", 0, "row padding of the loaded matrix")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "log shapes and timing to stderr")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// runMap dispatches on the element type; the result type equals it.
func runMap(out io.Writer, cfg mapConfig) error {
	switch cfg.typ {
	case "float64":
		return mapAs[float64](out, cfg)
	case "float32":
		return mapAs[float32](out, cfg)
	case "int64":
		return mapAs[int64](out, cfg)
	case "int32":
		return mapAs[int32](out, cfg)
	default:
		return fmt.Errorf("unsupported --type %q", cfg.typ)
	}
}

func mapAs[T signed](out io.Writer, cfg mapConfig) error {
	comma := []rune(cfg.comma)
	if len(comma) != 1 || comma[0] == 0 || comma[0] == '"' || comma[0] == '\r' || comma[0] == '\n' {
		return fmt.Errorf("--comma must be a single delimiter character, got %q", cfg.comma)
	}
	if cfg.padding < 0 {
		return fmt.Errorf("--padding must be >= 0, got %d", cfg.padding)
	}
	fn, err := lookupFunc[T](cfg.fn)
	if err != nil {
		return err
	}
	mode, err := kernels.ParseMode(cfg.mode)
	if err != nil {
		return err
	}
	op := kernels.Op{Mode: mode, Index: cfg.index}

	start := time.Now()
	src, err := load[T](cfg, comma[0])
	if err != nil {
		return err
	}
	if cfg.verbose {
		log.Printf("loaded %s: %dx%d rowSkip=%d type=%s in %v",
			cfg.input, src.Rows(), src.Cols(), src.RowSkip(), cfg.typ, time.Since(start))
	}

	start = time.Now()
	res, err := kernels.Map[T, T](nil, nil, src, fn, op)
	if err != nil {
		return err
	}
	if cfg.verbose {
		log.Printf("%s %s: result %dx%d in %v", op, cfg.fn, res.Rows(), res.Cols(), time.Since(start))
	}

	return matrixio.WriteCSV[T](out, res, matrixio.WithComma(comma[0]))
}

func load[T signed](cfg mapConfig, comma rune) (*matrix.Dense[T], error) {
	if cfg.raw {
		return matrixio.ReadRaw[T](cfg.input)
	}

	return matrixio.LoadCSV[T](cfg.input, matrixio.WithComma(comma), matrixio.WithPadding(cfg.padding))
}
