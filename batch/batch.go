package batch

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/vitalvas/polysecret/shamir"
	"github.com/vitalvas/polysecret/sharefile"
	"github.com/vitalvas/polysecret/xcmd"
)

// Options configure a batch recovery.
type Options struct {
	// Workers bounds the number of files processed at once, unbounded when <= 0.
	Workers int
	// At is the x at which polynomials are evaluated, 0 when nil.
	At *big.Int
}

// Outcome is the reconstruction of one share file.
type Outcome struct {
	Path    string
	Request shamir.Request
	Result  *shamir.Result
}

// Recover loads and reconstructs every file in paths concurrently.
// Outcomes follow the order of paths. The first failure cancels the
// remaining files and is returned wrapped with its path.
func Recover(ctx context.Context, logger *slog.Logger, paths []string, opts Options) ([]Outcome, error) {
	at := opts.At
	if at == nil {
		at = new(big.Int)
	}

	outcomes := make([]Outcome, len(paths))

	group, _ := xcmd.ErrGroup(ctx)
	group.SetLimit(opts.Workers)

	for i, path := range paths {
		group.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()

			outcome, err := recoverFile(path, at)
			if err != nil {
				logger.Error("recovery failed", "path", path, "error", err)
				return fmt.Errorf("%s: %w", path, err)
			}

			logger.Debug("recovered",
				"path", path,
				"n", outcome.Request.N,
				"k", outcome.Request.K,
				"duration", time.Since(start),
			)

			outcomes[i] = outcome
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

func recoverFile(path string, at *big.Int) (Outcome, error) {
	doc, err := sharefile.Load(path)
	if err != nil {
		return Outcome{}, err
	}

	req := doc.Request()

	result, err := shamir.ReconstructAt(doc.Shares, req, at)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Path: path, Request: req, Result: result}, nil
}
