package radix

import (
	"errors"
	"fmt"
	"math/big"
)

const (
	// MinBase is the smallest supported base.
	MinBase = 2
	// MaxBase is the largest supported base, limited by the alphabet size.
	MaxBase = 36

	// Alphabet lists the digits in value order, lower-case letters after 9.
	Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var (
	// ErrInvalidBase is returned when the base is outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("radix: base must be between 2 and 36")

	// ErrInvalidDigit is returned when a character is not a digit of the base.
	ErrInvalidDigit = errors.New("radix: invalid digit")

	// ErrNegative is returned when encoding a negative value.
	ErrNegative = errors.New("radix: negative values cannot be encoded")
)

// ValidBase reports whether base can be used by Decode and Encode.
func ValidBase(base int) bool {
	return base >= MinBase && base <= MaxBase
}

// DigitValue returns the value of a single digit, case-insensitive.
// The second result is false when r is not part of the alphabet.
func DigitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}

// Decode parses value as a positional numeral in the given base,
// most significant digit first.
//
// Digits are folded left to right (result = result*base + digit) on an
// arbitrary-precision accumulator, so long values in large bases are exact.
func Decode(value string, base int) (*big.Int, error) {
	if !ValidBase(base) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBase, base)
	}

	if len(value) == 0 {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidDigit)
	}

	bigBase := big.NewInt(int64(base))
	digit := new(big.Int)
	result := new(big.Int)

	for pos, r := range value {
		d, ok := DigitValue(r)
		if !ok || d >= base {
			return nil, fmt.Errorf("%w: %q at position %d for base %d", ErrInvalidDigit, r, pos, base)
		}

		result.Mul(result, bigBase)
		result.Add(result, digit.SetInt64(int64(d)))
	}

	return result, nil
}

// Encode renders n in the given base using lower-case digits.
func Encode(n *big.Int, base int) (string, error) {
	if !ValidBase(base) {
		return "", fmt.Errorf("%w: got %d", ErrInvalidBase, base)
	}

	if n.Sign() < 0 {
		return "", ErrNegative
	}

	if n.Sign() == 0 {
		return "0", nil
	}

	bigBase := big.NewInt(int64(base))
	value := new(big.Int).Set(n)
	mod := new(big.Int)

	var digits []byte
	for value.Sign() > 0 {
		value.DivMod(value, bigBase, mod)
		digits = append(digits, Alphabet[mod.Int64()])
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return string(digits), nil
}

// MustDecode is like Decode but panics on error. Intended for constants and tests.
func MustDecode(value string, base int) *big.Int {
	n, err := Decode(value, base)
	if err != nil {
		panic(err)
	}
	return n
}

