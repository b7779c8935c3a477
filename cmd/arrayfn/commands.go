package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/KasperOmsK/arrayfn"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// operation binds one arrayfn function to a subcommand. apply receives the
// raw values and returns the result to print.
type operation struct {
	use     string
	short   string
	example string
	apply   func(values []string) (any, error)
}

// numeric wraps a float64 operation so that values are strictly parsed first.
func numeric[Out any](fn func([]float64) Out) func([]string) (any, error) {
	return func(values []string) (any, error) {
		numbers, err := parseNumbers(values)
		if err != nil {
			return nil, err
		}
		return fn(numbers), nil
	}
}

// text wraps an operation over raw strings.
func text[Out any](fn func([]string) Out) func([]string) (any, error) {
	return func(values []string) (any, error) {
		return fn(values), nil
	}
}

var operations = []operation{
	{"bookend", "Keep only the first and last number", "1 2 3", numeric(arrayfn.Bookend[float64])},
	{"triple", "Multiply every number by 3", "1 2.5", numeric(arrayfn.Triple[float64])},
	{"parse", "Parse integers, using 0 for anything unparsable", "-- 3 x -4 0", text(arrayfn.ParseIntegers)},
	{"strip-dollars", "Drop a leading $ and parse integers", "'$5' 10 '$abc'", text(arrayfn.StripDollarsAndParse)},
	{"shout", "Uppercase strings ending in ! and drop those ending in ?", "'hi!' 'what?' ok", text(arrayfn.ShoutFilterQuestions)},
	{"count-short", "Count strings shorter than 4 characters", "a bb ccc dddd", text(arrayfn.CountShort)},
	{"all-rgb", "Report whether every string is red, blue or green", "red blue green", text(arrayfn.AllInColorSet)},
	{"sum-expr", "Print the numbers as an addition with its sum", "1 2 3", numeric(arrayfn.SumExpression[float64])},
	{"inject-sum", "Insert the running sum after the first negative number", "-- 1 9 -5 7", numeric(arrayfn.InjectRunningSumAfterFirstNegative[float64])},
}

func operationCommands() []*cobra.Command {
	return arrayfn.Map(operations, func(op operation) *cobra.Command {
		return &cobra.Command{
			Use:     op.use + " [values...]",
			Short:   op.short,
			Example: "  arrayfn " + op.use + " " + op.example,
			Args:    cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, op, args)
			},
		}
	})
}

func runOperation(cmd *cobra.Command, op operation, args []string) error {
	values, err := readValues(args)
	if err != nil {
		return err
	}

	logger.Debug("Applying operation", zap.String("op", op.use), zap.Int("values", len(values)))

	result, err := op.apply(values)
	if err != nil {
		return fmt.Errorf("%s: %w", op.use, err)
	}
	return writeResult(cmd.OutOrStdout(), result)
}

// writeResult prints slices as JSON arrays and scalars as plain text.
func writeResult(w io.Writer, result any) error {
	switch v := result.(type) {
	case string, int, bool:
		_, err := fmt.Fprintln(w, v)
		return err
	default:
		out, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
}
