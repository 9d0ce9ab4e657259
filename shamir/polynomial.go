package shamir

import (
	"fmt"
	"math/big"
)

// Point is a sample (x, y) of a polynomial with integer coordinates.
type Point struct {
	X *big.Int
	Y *big.Int
}

// NewPoint creates a point with a small x coordinate.
func NewPoint(x int64, y *big.Int) Point {
	return Point{X: big.NewInt(x), Y: new(big.Int).Set(y)}
}

// String renders the point as (x, y).
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// Polynomial is a polynomial with integer coefficients.
// Coefficients[0] is the constant term (the secret).
type Polynomial struct {
	Coefficients []*big.Int
}

// NewPolynomial creates a polynomial from coefficients, constant term first.
func NewPolynomial(coefficients ...*big.Int) *Polynomial {
	return &Polynomial{Coefficients: coefficients}
}

// Degree returns the index of the highest non-zero coefficient,
// or -1 for the zero polynomial.
func (p *Polynomial) Degree() int {
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		if p.Coefficients[i].Sign() != 0 {
			return i
		}
	}
	return -1
}

// Evaluate evaluates the polynomial at point x using Horner's method.
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	if len(p.Coefficients) == 0 {
		return big.NewInt(0)
	}

	// a_n*x^n + ... + a_1*x + a_0 = ((a_n*x + a_{n-1})*x + ... + a_1)*x + a_0
	result := new(big.Int).Set(p.Coefficients[len(p.Coefficients)-1])

	for i := len(p.Coefficients) - 2; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p.Coefficients[i])
	}

	return result
}

// Interpolate evaluates at x the unique polynomial of minimal degree passing
// through all points, using the Lagrange form
//
//	f(x) = Σ_j y_j · Π_{i≠j} (x - x_i) / (x_j - x_i)
//
// Each term is built from exact integer products and the terms are summed as
// rationals, so the result is exact for any input size.
func Interpolate(points []Point, x *big.Int) (*big.Rat, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	if err := checkDistinct(points); err != nil {
		return nil, err
	}

	result := new(big.Rat)
	diff := new(big.Int)

	for j := range points {
		numerator := new(big.Int).Set(points[j].Y)
		denominator := big.NewInt(1)

		for i := range points {
			if i == j {
				continue
			}

			// numerator *= (x - x_i)
			numerator.Mul(numerator, diff.Sub(x, points[i].X))

			// denominator *= (x_j - x_i), non-zero since abscissae are distinct
			denominator.Mul(denominator, diff.Sub(points[j].X, points[i].X))
		}

		result.Add(result, new(big.Rat).SetFrac(numerator, denominator))
	}

	return result, nil
}

// InterpolateInt is like Interpolate but requires the result to be an integer.
func InterpolateInt(points []Point, x *big.Int) (*big.Int, error) {
	value, err := Interpolate(points, x)
	if err != nil {
		return nil, err
	}

	if !value.IsInt() {
		return nil, fmt.Errorf("%w: %s", ErrNonIntegral, value.RatString())
	}

	return new(big.Int).Set(value.Num()), nil
}

func checkDistinct(points []Point) error {
	seen := make(map[string]bool, len(points))
	for _, p := range points {
		key := p.X.String()
		if seen[key] {
			return fmt.Errorf("%w: x = %s", ErrDuplicateAbscissa, key)
		}
		seen[key] = true
	}
	return nil
}
