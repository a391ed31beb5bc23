package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/bqnumeric"
	"github.com/calebcase/bqnumeric/order"
)

func newEncodeCommand(opts *options) *cobra.Command {
	var bigEndian bool

	cmd := &cobra.Command{
		Use:   "encode DECIMAL...",
		Short: "Encode decimals as NUMERIC byte strings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer Error.WrapP(&err)

			for _, arg := range args {
				d, err := decimal.NewFromString(arg)
				if err != nil {
					return err
				}

				data, err := bqnumeric.Encode(d)
				if err != nil {
					opts.logger.Debug("encode failed", zap.String("value", arg), zap.Error(err))

					return err
				}

				if bigEndian {
					data = order.Reverse(data)
				}

				opts.logger.Debug("encoded",
					zap.String("value", arg),
					zap.Binary("data", data),
					zap.Bool("big_endian", bigEndian),
				)

				_, err = fmt.Fprintln(cmd.OutOrStdout(), opts.format.Render(data))
				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&bigEndian, "big-endian", false, "print the two's complement bytes most significant first")

	return cmd
}
