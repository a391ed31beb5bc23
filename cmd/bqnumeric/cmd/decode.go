package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/bqnumeric"
	"github.com/calebcase/bqnumeric/numeric"
	"github.com/calebcase/bqnumeric/order"
)

func newDecodeCommand(opts *options) *cobra.Command {
	var bigEndian, fixed bool

	cmd := &cobra.Command{
		Use:   "decode BYTES...",
		Short: "Decode NUMERIC byte strings to decimals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer Error.WrapP(&err)

			for _, arg := range args {
				data, err := opts.format.Parse(arg)
				if err != nil {
					return err
				}

				if bigEndian {
					data = order.Reverse(data)
				}

				d, err := bqnumeric.Decode(data)
				if err != nil {
					opts.logger.Debug("decode failed", zap.String("data", arg), zap.Error(err))

					return err
				}

				text := d.String()
				if fixed {
					text = d.StringFixed(numeric.Scale)
				}

				opts.logger.Debug("decoded", zap.String("data", arg), zap.String("value", text))

				_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&bigEndian, "big-endian", false, "read the two's complement bytes most significant first")
	flags.BoolVar(&fixed, "fixed", false, "print all 9 fractional digits")

	return cmd
}
