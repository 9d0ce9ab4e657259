package shamir

import (
	"math/big"
	mrand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func points(pairs ...int64) []Point {
	result := make([]Point, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		result = append(result, NewPoint(pairs[i], big.NewInt(pairs[i+1])))
	}
	return result
}

func TestPolynomialEvaluate(t *testing.T) {
	// f(x) = 5 + 3x + 2x^2
	poly := NewPolynomial(
		big.NewInt(5), // constant term
		big.NewInt(3), // x coefficient
		big.NewInt(2), // x^2 coefficient
	)

	tests := []struct {
		x        int64
		expected int64
	}{
		{0, 5},  // f(0) = 5
		{1, 10}, // f(1) = 5 + 3 + 2 = 10
		{2, 19}, // f(2) = 5 + 6 + 8 = 19
		{3, 32}, // f(3) = 5 + 9 + 18 = 32
		{-2, 7}, // f(-2) = 5 - 6 + 8 = 7
	}

	for _, tt := range tests {
		result := poly.Evaluate(big.NewInt(tt.x))
		assert.Equal(t, tt.expected, result.Int64(), "f(%d)", tt.x)
	}
}

func TestPolynomialEvaluateEmpty(t *testing.T) {
	poly := NewPolynomial()
	result := poly.Evaluate(big.NewInt(5))
	assert.Equal(t, int64(0), result.Int64())
}

func TestPolynomialDegree(t *testing.T) {
	assert.Equal(t, -1, NewPolynomial().Degree())
	assert.Equal(t, -1, NewPolynomial(big.NewInt(0)).Degree())
	assert.Equal(t, 0, NewPolynomial(big.NewInt(7)).Degree())
	assert.Equal(t, 2, NewPolynomial(big.NewInt(1), big.NewInt(0), big.NewInt(4), big.NewInt(0)).Degree())
}

func TestInterpolate(t *testing.T) {
	t.Run("quadratic polynomial at zero", func(t *testing.T) {
		// y = x^2 + 3
		result, err := InterpolateInt(points(1, 4, 2, 7, 3, 12), big.NewInt(0))
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.Int64())
	})

	t.Run("single point", func(t *testing.T) {
		for _, x := range []int64{0, 5, -3, 1000} {
			result, err := InterpolateInt(points(5, 42), big.NewInt(x))
			require.NoError(t, err)
			assert.Equal(t, int64(42), result.Int64())
		}
	})

	t.Run("linear polynomial", func(t *testing.T) {
		// f(x) = 3 + 2x
		result, err := InterpolateInt(points(1, 5, 2, 7), big.NewInt(0))
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.Int64())
	})

	t.Run("target equals a sampled abscissa", func(t *testing.T) {
		pts := points(1, 10, 4, -3, 9, 77, 12, 5)
		for _, p := range pts {
			result, err := Interpolate(pts, p.X)
			require.NoError(t, err)
			assert.True(t, result.IsInt())
			assert.Equal(t, 0, p.Y.Cmp(result.Num()), "x = %s", p.X)
		}
	})

	t.Run("target zero is a sampled abscissa", func(t *testing.T) {
		result, err := InterpolateInt(points(0, 9, 1, 4, 2, 1), big.NewInt(0))
		require.NoError(t, err)
		assert.Equal(t, int64(9), result.Int64())
	})

	t.Run("order of points does not matter", func(t *testing.T) {
		a, err := InterpolateInt(points(1, 4, 2, 7, 3, 12), big.NewInt(0))
		require.NoError(t, err)
		b, err := InterpolateInt(points(3, 12, 1, 4, 2, 7), big.NewInt(0))
		require.NoError(t, err)
		assert.Equal(t, 0, a.Cmp(b))
	})

	t.Run("non integral result", func(t *testing.T) {
		// line through (1, 0) and (3, 1) is (x-1)/2, f(0) = -1/2
		value, err := Interpolate(points(1, 0, 3, 1), big.NewInt(0))
		require.NoError(t, err)
		assert.Equal(t, "-1/2", value.RatString())

		_, err = InterpolateInt(points(1, 0, 3, 1), big.NewInt(0))
		assert.ErrorIs(t, err, ErrNonIntegral)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Interpolate(nil, big.NewInt(0))
		assert.ErrorIs(t, err, ErrNoPoints)
	})

	t.Run("duplicate x coordinates", func(t *testing.T) {
		_, err := Interpolate(points(1, 10, 1, 20, 3, 30), big.NewInt(0))
		assert.ErrorIs(t, err, ErrDuplicateAbscissa)
	})

	t.Run("duplicate x coordinates with equal y", func(t *testing.T) {
		_, err := Interpolate(points(2, 10, 2, 10), big.NewInt(0))
		assert.ErrorIs(t, err, ErrDuplicateAbscissa)
	})

	t.Run("inputs are not modified", func(t *testing.T) {
		pts := points(1, 4, 2, 7, 3, 12)
		_, err := Interpolate(pts, big.NewInt(10))
		require.NoError(t, err)
		assert.Equal(t, points(1, 4, 2, 7, 3, 12), pts)
	})
}

func TestInterpolateReproducesPolynomial(t *testing.T) {
	rng := mrand.New(mrand.NewPCG(1, 2))

	for degree := 0; degree <= 12; degree++ {
		coefficients := make([]*big.Int, degree+1)
		for i := range coefficients {
			// large signed coefficients, well beyond float64 precision
			c := new(big.Int).Lsh(big.NewInt(rng.Int64N(1<<40)-(1<<39)), uint(rng.IntN(120)))
			coefficients[i] = c
		}
		poly := NewPolynomial(coefficients...)

		sample := make([]Point, 0, degree+1)
		for _, x := range rng.Perm(50)[:degree+1] {
			bx := big.NewInt(int64(x) - 20)
			sample = append(sample, Point{X: bx, Y: poly.Evaluate(bx)})
		}

		for x := int64(-30); x <= 30; x += 7 {
			bx := big.NewInt(x)
			result, err := InterpolateInt(sample, bx)
			require.NoError(t, err)
			assert.Equal(t, 0, poly.Evaluate(bx).Cmp(result), "degree %d at x = %d", degree, x)
		}
	}
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(3, -12)", NewPoint(3, big.NewInt(-12)).String())
}

func BenchmarkInterpolate(b *testing.B) {
	poly := NewPolynomial()
	for i := range 16 {
		poly.Coefficients = append(poly.Coefficients, new(big.Int).Lsh(big.NewInt(int64(i+1)), 200))
	}

	sample := make([]Point, 0, 16)
	for x := int64(1); x <= 16; x++ {
		bx := big.NewInt(x)
		sample = append(sample, Point{X: bx, Y: poly.Evaluate(bx)})
	}

	zero := big.NewInt(0)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = InterpolateInt(sample, zero)
	}
}
