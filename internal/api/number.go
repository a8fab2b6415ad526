package api

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var errInvalidNumber = errors.New("invalid number")

// decimalLiteral admits plain decimal numbers with optional sign, fraction and
// exponent. Hex, NaN and Infinity spellings accepted by ParseFloat are not.
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseDrawNumber parses the number path segment. Any decimal literal whose
// value is an integer is accepted, so "3.0" and "1e1" are valid while "3.5" is
// not. The 1..50 domain is deliberately not enforced; values beyond the
// int32 storage type are rejected because no row can hold them.
func ParseDrawNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !decimalLiteral.MatchString(s) {
		return 0, errInvalidNumber
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errInvalidNumber
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, errInvalidNumber
	}
	return int(f), nil
}
