package num

import (
	"bytes"
	"errors"
	"math"
	"strconv"
)

// ParseFloat parses a float/double lexical value for the requested bit size.
// Besides decimal and exponent notation it accepts INF, -INF and NaN.
// Magnitudes beyond the bit size round to an infinity rather than fail.
func ParseFloat(b []byte, bits int) (float64, *ParseError) {
	b = trimXMLSpace(b)
	if len(b) == 0 {
		return 0, &ParseError{Kind: ParseEmpty}
	}
	switch {
	case bytes.Equal(b, []byte("INF")):
		return math.Inf(1), nil
	case bytes.Equal(b, []byte("-INF")):
		return math.Inf(-1), nil
	case bytes.Equal(b, []byte("NaN")):
		return math.NaN(), nil
	}
	if !isFloatLexical(b) {
		return 0, &ParseError{Kind: ParseBadChar}
	}
	return parseFloat(b, bits)
}

// ScanFloat reads the longest floating-point prefix of b the way atof does in
// the C locale. Leading whitespace is skipped, "inf", "infinity" and "nan" are
// recognized case-insensitively, and input without a numeric prefix yields 0.
// ScanFloat never fails.
func ScanFloat(b []byte, bits int) float64 {
	b = skipCSpace(b)
	neg, i := sign(b)
	rest := b[i:]
	switch {
	case hasFoldPrefix(rest, "inf"):
		if neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case hasFoldPrefix(rest, "nan"):
		return math.NaN()
	}
	n := floatPrefix(rest)
	if n == 0 {
		return 0
	}
	f, _ := parseFloat(b[:i+n], bits)
	return f
}

func parseFloat(b []byte, bits int) (float64, *ParseError) {
	f, err := strconv.ParseFloat(string(b), bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, &ParseError{Kind: ParseBadChar}
	}
	return f, nil
}

// floatPrefix returns the length of the longest unsigned decimal float prefix.
func floatPrefix(b []byte) int {
	i := 0
	intDigits := 0
	for i < len(b) && isDigit(b[i]) {
		i++
		intDigits++
	}
	fracDigits := 0
	if i < len(b) && b[i] == '.' {
		j := i + 1
		for j < len(b) && isDigit(b[j]) {
			j++
			fracDigits++
		}
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(b) && isDigit(b[j]) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	return i
}

func hasFoldPrefix(b []byte, prefix string) bool {
	return len(b) >= len(prefix) && bytes.EqualFold(b[:len(prefix)], []byte(prefix))
}

func isFloatLexical(value []byte) bool {
	if len(value) == 0 {
		return false
	}
	i := 0
	if value[i] == '+' || value[i] == '-' {
		i++
		if i == len(value) {
			return false
		}
	}
	n := floatPrefix(value[i:])
	return n > 0 && i+n == len(value)
}
