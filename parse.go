package bignum

import (
	"strconv"
	"strings"
)

// This file implements the literal parser and cross-kind factory/widening
// surface: dispatching a textual literal to the right
// value kind, coercing between kinds via Of/From, and widening
// heterogeneous Sum/Min/Max.

// parseIntegerLiteral parses `[+-]? digits`.
func parseIntegerLiteral(s string) (string, error) {
	if s == "" {
		return "", newError(KindNumberFormat, "empty numeric literal")
	}
	neg := false
	i := 0
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		i++
	}
	if i == len(s) {
		return "", newError(KindNumberFormat, "missing digits in %q", s)
	}
	for j := i; j < len(s); j++ {
		if s[j] < '0' || s[j] > '9' {
			return "", newError(KindNumberFormat, "invalid character %q in %q", s[j], s)
		}
	}
	return canonical(neg, s[i:]), nil
}

// parseDecimalLiteral parses `[+-]? (digits)? (.(digits)?)? ([eE][+-]?digits)?`,
// requiring at least one digit in the integral or fractional part. The
// returned scale is len(fractional) - exponent; a negative final scale is
// normalized by appending zeros.
func parseDecimalLiteral(s string) (unscaled string, scale int, err error) {
	orig := s
	if s == "" {
		return "", 0, newError(KindNumberFormat, "empty numeric literal")
	}
	neg := false
	i := 0
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		i++
	}

	intStart := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	intPart := s[intStart:i]

	fracPart := ""
	if i < len(s) && s[i] == '.' {
		i++
		fracStart := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		fracPart = s[fracStart:i]
	}

	if intPart == "" && fracPart == "" {
		return "", 0, newError(KindNumberFormat, "no digits in %q", orig)
	}

	exponent := 0
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		expNeg := false
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			expNeg = s[i] == '-'
			i++
		}
		expStart := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == expStart {
			return "", 0, newError(KindNumberFormat, "missing exponent digits in %q", orig)
		}
		expVal, convErr := strconv.Atoi(s[expStart:i])
		if convErr != nil {
			return "", 0, newError(KindNumberFormat, "exponent out of range in %q", orig)
		}
		if expNeg {
			expVal = -expVal
		}
		exponent = expVal
	}

	if i != len(s) {
		return "", 0, newError(KindNumberFormat, "unexpected trailing characters in %q", orig)
	}

	if intPart == "" {
		intPart = "0"
	}
	digits := intPart + fracPart
	scale = len(fracPart) - exponent
	if scale < 0 {
		digits += zeros(-scale)
		scale = 0
	}
	return canonical(neg, digits), scale, nil
}

// parseRationalLiteral parses `[+-]? digits / digits`.
func parseRationalLiteral(s string) (num, den string, err error) {
	idx := strings.IndexByte(s, '/')
	if idx < 0 {
		return "", "", newError(KindNumberFormat, "missing '/' in rational literal %q", s)
	}
	num, err = parseIntegerLiteral(s[:idx])
	if err != nil {
		return "", "", err
	}
	if idx+1 < len(s) && (s[idx+1] == '+' || s[idx+1] == '-') {
		return "", "", newError(KindNumberFormat, "signed denominator in rational literal %q", s)
	}
	den, err = parseIntegerLiteral(s[idx+1:])
	if err != nil {
		return "", "", err
	}
	if isZeroDigits(absString(den)) {
		return "", "", newError(KindDivisionByZero, "zero denominator in %q", s)
	}
	return num, den, nil
}

// Parse dispatches a textual literal to the right value kind: a literal
// containing '/' is rational, one containing '.', 'e', or 'E' is decimal,
// otherwise it is an integer.
func Parse(s string) (Number, error) {
	switch {
	case strings.ContainsRune(s, '/'):
		return NewBigRationalFromString(s)
	case strings.ContainsAny(s, ".eE"):
		return NewBigDecimalFromString(s)
	default:
		return NewBigIntegerFromString(s)
	}
}

// OfBigInteger coerces n to BigInteger, failing with RoundingNecessary if
// n carries a non-zero fractional part.
func OfBigInteger(n Number) (BigInteger, error) {
	switch v := n.(type) {
	case BigInteger:
		return v, nil
	case BigDecimal:
		return v.ToBigInteger()
	case BigRational:
		if v.Denominator().Equal(IntOne) {
			return v.Numerator(), nil
		}
		return BigInteger{}, newError(KindRoundingNecessary, "%s is not an integer", v.String())
	default:
		return BigInteger{}, newError(KindInvalidArgument, "unsupported Number implementation")
	}
}

// OfBigDecimal coerces n to BigDecimal, failing with RoundingNecessary if
// n (a rational) has no terminating decimal expansion.
func OfBigDecimal(n Number) (BigDecimal, error) {
	switch v := n.(type) {
	case BigInteger:
		return BigDecimal{v, 0}, nil
	case BigDecimal:
		return v, nil
	case BigRational:
		return v.ToBigDecimal()
	default:
		return BigDecimal{}, newError(KindInvalidArgument, "unsupported Number implementation")
	}
}

// OfBigRational coerces n to BigRational; this direction always succeeds.
func OfBigRational(n Number) BigRational {
	return n.ToBigRational()
}

func widenTo(n Number, kind ValueKind) (Number, error) {
	switch kind {
	case KindIntegerValue:
		return n, nil
	case KindDecimalValue:
		return OfBigDecimal(n)
	default:
		return n.ToBigRational(), nil
	}
}

// Sum widens to the broadest kind among values, reordering so a rational
// accumulator absorbs integers/decimals losslessly: when the
// broadest kind is rational, every addend is folded in via ToBigRational
// directly rather than first downgrading it through BigDecimal.
func Sum(values ...Number) (Number, error) {
	if len(values) == 0 {
		return IntZero, nil
	}
	switch widestKind(values) {
	case KindIntegerValue:
		acc := IntZero
		for _, v := range values {
			acc = acc.Plus(v.(BigInteger))
		}
		return acc, nil
	case KindDecimalValue:
		acc := DecZero
		for _, v := range values {
			d, err := OfBigDecimal(v)
			if err != nil {
				return nil, err
			}
			acc = acc.Plus(d)
		}
		return acc, nil
	default:
		acc := RatZero
		for _, v := range values {
			acc = acc.Plus(v.ToBigRational())
		}
		return acc, nil
	}
}

// Min returns the least value, widened to the broadest encountered kind.
func Min(values ...Number) (Number, error) {
	if len(values) == 0 {
		return nil, newError(KindInvalidArgument, "Min requires at least one value")
	}
	best := values[0]
	for _, v := range values[1:] {
		if compareNumbers(v, best) < 0 {
			best = v
		}
	}
	return widenTo(best, widestKind(values))
}

// Max returns the greatest value, widened to the broadest encountered kind.
func Max(values ...Number) (Number, error) {
	if len(values) == 0 {
		return nil, newError(KindInvalidArgument, "Max requires at least one value")
	}
	best := values[0]
	for _, v := range values[1:] {
		if compareNumbers(v, best) > 0 {
			best = v
		}
	}
	return widenTo(best, widestKind(values))
}
