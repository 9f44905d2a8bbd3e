package lovelace

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// PerADA is the number of lovelace in one ADA.
const PerADA = 1_000_000

// Exponents are capped so big.Rat never expands an absurd power of ten.
var decimalRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d{1,3})?$`)

var (
	ErrInvalid    = errors.New("not a decimal number")
	ErrNegative   = errors.New("negative amount")
	ErrFractional = errors.New("fractional lovelace")
	ErrRange      = errors.New("amount out of range")
)

// Parse reads an integer lovelace quantity. Any decimal notation is accepted
// as long as the value is a whole number, so "5e6" and "5000000.0" both
// yield 5000000.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if !decimalRe.MatchString(s) {
		return 0, ErrInvalid
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return 0, ErrInvalid
	}
	switch {
	case r.Sign() < 0:
		return 0, ErrNegative
	case !r.IsInt():
		return 0, ErrFractional
	case !r.Num().IsInt64():
		return 0, ErrRange
	}
	return r.Num().Int64(), nil
}

// FromADA converts an ADA quantity to lovelace, rounding half away from zero
// on the exact decimal value. It reports false for absent, non-numeric,
// non-finite, negative or out-of-range input.
func FromADA(v any) (int64, bool) {
	s, ok := decimalString(v)
	if !ok || !decimalRe.MatchString(s) {
		return 0, false
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok || r.Sign() < 0 {
		return 0, false
	}
	r.Mul(r, big.NewRat(PerADA, 1))

	// floor((2*num + den) / (2*den)) for a non-negative value
	num := new(big.Int).Mul(r.Num(), big.NewInt(2))
	num.Add(num, r.Denom())
	den := new(big.Int).Mul(r.Denom(), big.NewInt(2))
	q := new(big.Int).Quo(num, den)
	if !q.IsInt64() {
		return 0, false
	}
	return q.Int64(), true
}

func decimalString(v any) (string, bool) {
	switch n := v.(type) {
	case nil:
		return "", false
	case json.Number:
		return n.String(), true
	case string:
		return strings.TrimSpace(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return "", false
		}
		return strconv.FormatFloat(n, 'g', -1, 64), true
	case float32:
		return decimalString(float64(n))
	case int:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	default:
		return "", false
	}
}
