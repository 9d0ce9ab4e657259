package main

import (
	"context"
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitalvas/polysecret/batch"
	"github.com/vitalvas/polysecret/report"
)

func newRecoverCommand(a *app) *cobra.Command {
	var (
		output  string
		workers int
		at      string
	)

	cmd := &cobra.Command{
		Use:   "recover FILE...",
		Short: "Recover the secret from one or more share files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("output") {
				a.cfg.Output = output
			}
			if flags.Changed("workers") {
				a.cfg.Workers = workers
			}

			x, ok := new(big.Int).SetString(at, 10)
			if !ok {
				return fmt.Errorf("invalid --at value %q", at)
			}

			format, err := report.ResolveFormat(a.cfg.Output, outputFile(cmd))
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if a.cfg.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
				defer cancel()
			}

			outcomes, err := batch.Recover(ctx, a.logger, args, batch.Options{
				Workers: a.cfg.Workers,
				At:      x,
			})
			if err != nil {
				return err
			}

			reports := make([]report.Report, 0, len(outcomes))
			for _, outcome := range outcomes {
				r := report.New(outcome.Path, outcome.Request, x, outcome.Result)
				a.logger.Info("secret recovered",
					"path", r.Source,
					"points", len(r.Points),
					"fingerprint", r.Fingerprint,
				)
				reports = append(reports, r)
			}

			return report.Write(cmd.OutOrStdout(), reports, format)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "auto", "output format: auto, text, json, yaml, cbor")
	flags.IntVarP(&workers, "workers", "w", 0, "files processed at once, 0 for no limit")
	flags.StringVar(&at, "at", "0", "evaluate the polynomial at this x instead of 0")

	return cmd
}

// outputFile returns the command output when it is a file, for terminal detection.
func outputFile(cmd *cobra.Command) *os.File {
	if file, ok := cmd.OutOrStdout().(*os.File); ok {
		return file
	}
	return nil
}
