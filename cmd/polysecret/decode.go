package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvas/polysecret/radix"
)

func newDecodeCommand() *cobra.Command {
	var base int

	cmd := &cobra.Command{
		Use:   "decode VALUE",
		Short: "Print the decimal value of a number written in another base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := radix.Decode(args[0], base)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), value.String())
			return err
		},
	}

	cmd.Flags().IntVarP(&base, "base", "b", 10, "base of VALUE, 2 to 36")

	return cmd
}
