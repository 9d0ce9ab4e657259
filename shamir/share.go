package shamir

import (
	"fmt"
	"math/big"

	"github.com/vitalvas/polysecret/radix"
)

// EncodedShare is a single share as it appears in input data:
// the ordinate is kept as a numeral in its own base.
type EncodedShare struct {
	// Index is the x-coordinate of the share, 1-based.
	Index int
	// Base is the radix of Value, between 2 and 36.
	Base int
	// Value is the y-coordinate written in Base.
	Value string
}

// Decode converts the share into a point, x being the share index.
func (s EncodedShare) Decode() (Point, error) {
	y, err := radix.Decode(s.Value, s.Base)
	if err != nil {
		return Point{}, fmt.Errorf("share %d: %w", s.Index, err)
	}

	return Point{X: big.NewInt(int64(s.Index)), Y: y}, nil
}

// Encode creates a share for point p with its ordinate written in base.
// The x coordinate of p must fit an int.
func Encode(p Point, base int) (EncodedShare, error) {
	value, err := radix.Encode(p.Y, base)
	if err != nil {
		return EncodedShare{}, fmt.Errorf("share %s: %w", p.X, err)
	}

	return EncodedShare{
		Index: int(p.X.Int64()),
		Base:  base,
		Value: value,
	}, nil
}
