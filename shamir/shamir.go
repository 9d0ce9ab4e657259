package shamir

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"slices"

	"github.com/vitalvas/polysecret/radix"
)

// Request describes how many shares exist and how many are needed.
type Request struct {
	// N is the total number of shares; only indices in [1, N] are considered.
	N int
	// K is the threshold, the number of points used for interpolation.
	K int
}

// Validate checks that 1 <= K <= N.
func (r Request) Validate() error {
	if r.K < 1 {
		return ErrInvalidThreshold
	}

	if r.N < r.K {
		return ErrInvalidTotal
	}

	return nil
}

// Result is the outcome of a reconstruction.
type Result struct {
	// Secret is the value of the interpolated polynomial at the requested x.
	Secret *big.Int
	// Points are the points used for interpolation, in ascending x order.
	Points []Point
}

// Reconstruct recovers the constant term of the polynomial behind shares.
//
// Shares with an index outside [1, N] are ignored. The remaining shares are
// decoded in ascending index order and the first K points are interpolated
// at x = 0. Any decoding error aborts the reconstruction.
func Reconstruct(shares []EncodedShare, req Request) (*Result, error) {
	return ReconstructAt(shares, req, new(big.Int))
}

// ReconstructAt is like Reconstruct but evaluates the polynomial at x.
func ReconstructAt(shares []EncodedShare, req Request, x *big.Int) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	points, err := decodeShares(shares, req.N)
	if err != nil {
		return nil, err
	}

	if len(points) < req.K {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientPoints, req.K, len(points))
	}

	// Use only the required number of points
	points = points[:req.K]

	value, err := InterpolateInt(points, x)
	if err != nil {
		return nil, err
	}

	return &Result{Secret: value, Points: points}, nil
}

// decodeShares selects shares with index in [1, n], orders them by index and decodes them.
func decodeShares(shares []EncodedShare, n int) ([]Point, error) {
	selected := make([]EncodedShare, 0, len(shares))
	for _, share := range shares {
		if share.Index >= 1 && share.Index <= n {
			selected = append(selected, share)
		}
	}

	slices.SortStableFunc(selected, func(a, b EncodedShare) int {
		return a.Index - b.Index
	})

	points := make([]Point, 0, len(selected))
	for _, share := range selected {
		point, err := share.Decode()
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}

	return points, nil
}

const defaultCoefficientBits = 64

type splitOptions struct {
	base            int
	coefficientBits int
	random          io.Reader
}

// SplitOption configures Split.
type SplitOption func(*splitOptions)

// WithBase writes every share in the given base instead of a random one.
func WithBase(base int) SplitOption {
	return func(o *splitOptions) {
		o.base = base
	}
}

// WithCoefficientBits sets the size of the random coefficients.
func WithCoefficientBits(bits int) SplitOption {
	return func(o *splitOptions) {
		o.coefficientBits = bits
	}
}

// WithRand sets the randomness source, crypto/rand by default.
func WithRand(r io.Reader) SplitOption {
	return func(o *splitOptions) {
		o.random = r
	}
}

// Split creates N shares of secret, any K of which reconstruct it.
//
// The shares are samples at x = 1..N of a random integer polynomial of
// degree K-1 whose constant term is secret. Each ordinate is written in the
// base chosen with WithBase, or in a random base per share.
func Split(secret *big.Int, req Request, options ...SplitOption) ([]EncodedShare, error) {
	opts := &splitOptions{
		coefficientBits: defaultCoefficientBits,
		random:          rand.Reader,
	}
	for _, option := range options {
		option(opts)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if secret.Sign() < 0 {
		return nil, ErrNegativeSecret
	}

	if opts.base != 0 && !radix.ValidBase(opts.base) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBase, opts.base)
	}

	if opts.coefficientBits < 1 {
		return nil, fmt.Errorf("shamir: coefficient bits must be positive, got %d", opts.coefficientBits)
	}

	poly, err := newRandomPolynomial(opts.random, secret, req.K, opts.coefficientBits)
	if err != nil {
		return nil, err
	}

	shares := make([]EncodedShare, req.N)
	for i := range req.N {
		// x-coordinates are 1, 2, 3, ... (never 0)
		x := big.NewInt(int64(i + 1))

		base := opts.base
		if base == 0 {
			base, err = randomBase(opts.random)
			if err != nil {
				return nil, err
			}
		}

		shares[i], err = Encode(Point{X: x, Y: poly.Evaluate(x)}, base)
		if err != nil {
			return nil, err
		}
	}

	return shares, nil
}

// newRandomPolynomial creates a random polynomial of degree (threshold-1)
// with non-negative coefficients and the given secret as the constant term.
func newRandomPolynomial(random io.Reader, secret *big.Int, threshold, bits int) (*Polynomial, error) {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits))

	coefficients := make([]*big.Int, threshold)
	coefficients[0] = new(big.Int).Set(secret)

	for i := 1; i < threshold; i++ {
		coef, err := rand.Int(random, limit)
		if err != nil {
			return nil, err
		}
		coefficients[i] = coef
	}

	return NewPolynomial(coefficients...), nil
}

func randomBase(random io.Reader) (int, error) {
	n, err := rand.Int(random, big.NewInt(radix.MaxBase-radix.MinBase+1))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + radix.MinBase, nil
}
