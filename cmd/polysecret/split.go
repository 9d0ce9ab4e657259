package main

import (
	"errors"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/vitalvas/polysecret/shamir"
	"github.com/vitalvas/polysecret/sharefile"
)

func newSplitCommand(a *app) *cobra.Command {
	var (
		secret string
		total  int
		needed int
		base   int
		bits   int
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret into a share document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, ok := new(big.Int).SetString(secret, 10)
			if !ok {
				return errors.New("invalid --secret value: not a decimal integer")
			}

			options := []shamir.SplitOption{shamir.WithCoefficientBits(bits)}
			if base != 0 {
				options = append(options, shamir.WithBase(base))
			}

			req := shamir.Request{N: total, K: needed}

			shares, err := shamir.Split(value, req, options...)
			if err != nil {
				return err
			}

			doc := &sharefile.Document{N: req.N, K: req.K, Shares: shares}

			if out != "" {
				if err := sharefile.Save(out, doc); err != nil {
					return err
				}
				a.logger.Info("shares written", "path", out, "n", req.N, "k", req.K)
				return nil
			}

			docFormat, err := sharefile.ParseFormat(format)
			if err != nil {
				return err
			}

			data, err := sharefile.Marshal(doc, docFormat)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&secret, "secret", "", "secret as a non-negative decimal integer")
	flags.IntVarP(&total, "total", "n", 0, "number of shares to create")
	flags.IntVarP(&needed, "threshold", "k", 0, "number of shares needed to recover")
	flags.IntVar(&base, "base", 0, "encoding base for every share, random per share when 0")
	flags.IntVar(&bits, "bits", 64, "size in bits of the random coefficients")
	flags.StringVar(&format, "format", "json", "document format on stdout: json, yaml, cbor")
	flags.StringVar(&out, "out", "", "write the document to this file, format from the extension")

	_ = cmd.MarkFlagRequired("secret")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("threshold")

	return cmd
}
