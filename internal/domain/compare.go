package domain

import (
	"cmp"
	"errors"
	"strconv"
	"strings"
)

// CompareLines orders two lines. When both parse as decimal floating-point
// numbers (surrounding whitespace ignored) they are compared numerically,
// otherwise ordinally as strings. A number is
// never compared numerically against a non-number, so a mixed sequence can
// end up in an order that is not globally consistent.
//
// The result is -1, 0 or +1.
func CompareLines(a, b string) int {
	x, aok := parseNumber(a)
	y, bok := parseNumber(b)
	if aok && bok {
		return cmp.Compare(x, y)
	}
	return strings.Compare(a, b)
}

// parseNumber reports whether s is a decimal float literal. Go-only syntax
// (digit separators, hex mantissas) is rejected. Out-of-range values still
// count: ParseFloat hands back ±Inf for them.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.ContainsRune(s, '_') || isHex(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return f, true
	}
	if errors.Is(err, strconv.ErrRange) {
		return f, true
	}
	return 0, false
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
