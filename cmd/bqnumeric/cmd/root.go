package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// Error is the class of command line errors.
var Error = errs.Class("bqnumeric")

type options struct {
	format  Format
	verbose bool
	logger  *zap.Logger
}

// NewRootCommand returns the bqnumeric command with its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &options{
		format: FormatHex,
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:   "bqnumeric",
		Short: "Convert decimals to and from BigQuery NUMERIC byte strings",
		Long: `bqnumeric converts decimals to the byte strings used for BigQuery NUMERIC
values (value * 10^9, minimal two's complement, least significant byte
first) and back.

Negative decimals must follow "--" so they are not read as flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			defer Error.WrapP(&err)

			if !opts.verbose {
				return nil
			}

			opts.logger, err = zap.NewDevelopment()

			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log each conversion to stderr")
	addFormatFlag(flags, &opts.format)

	root.AddCommand(
		newEncodeCommand(opts),
		newDecodeCommand(opts),
	)

	return root
}

// Execute runs the root command and exits non-zero on failure. This is
// called by main.main().
func Execute() {
	err := NewRootCommand().Execute()
	if err != nil {
		os.Exit(1)
	}
}
