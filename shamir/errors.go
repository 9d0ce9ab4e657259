package shamir

import (
	"errors"

	"github.com/vitalvas/polysecret/radix"
)

var (
	// ErrInvalidBase is returned when a share declares a base outside [2, 36].
	ErrInvalidBase = radix.ErrInvalidBase

	// ErrInvalidDigit is returned when a share value contains a character that is not a digit of its base.
	ErrInvalidDigit = radix.ErrInvalidDigit

	// ErrInvalidThreshold is returned when threshold is less than 1.
	ErrInvalidThreshold = errors.New("shamir: threshold must be at least 1")

	// ErrInvalidTotal is returned when total shares is less than threshold.
	ErrInvalidTotal = errors.New("shamir: total shares must be at least equal to threshold")

	// ErrInsufficientPoints is returned when fewer than threshold shares can be decoded.
	ErrInsufficientPoints = errors.New("shamir: insufficient points for reconstruction")

	// ErrDuplicateAbscissa is returned when two points share the same x coordinate.
	ErrDuplicateAbscissa = errors.New("shamir: duplicate x coordinates detected")

	// ErrNoPoints is returned when interpolation is called without points.
	ErrNoPoints = errors.New("shamir: at least one point is required")

	// ErrNonIntegral is returned when the interpolated value is not an integer.
	ErrNonIntegral = errors.New("shamir: interpolated value is not an integer")

	// ErrNegativeSecret is returned when trying to split a negative secret.
	ErrNegativeSecret = errors.New("shamir: secret must be non-negative")
)
