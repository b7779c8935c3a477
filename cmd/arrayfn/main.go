// Command arrayfn applies the arrayfn operations to values given on the
// command line or read from a YAML file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose   bool
	inputFile string

	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "arrayfn",
		Short: "Apply small array transformations to a list of values",
		Long: `arrayfn applies one transformation to a list of values.

Values are taken from the positional arguments, or from --file, a YAML
(or JSON) document whose root is a sequence. Put "--" before the values
when one of them starts with a dash, such as a negative number.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return nil
			}

			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "read values from a YAML sequence instead of arguments")

	root.AddCommand(operationCommands()...)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if logger != nil {
			logger.Error("command failed", zap.Error(err))
		}
		os.Exit(1)
	}
}
