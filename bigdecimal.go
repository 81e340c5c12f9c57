package bignum

import (
	"database/sql/driver"
)

// BigDecimal is an exact fixed-scale decimal: an unscaled BigInteger paired
// with a non-negative scale, representing unscaled * 10^(-scale). Scale is
// part of identity: 1 and 1.0 compare equal but are not structurally
// identical, and scale-preserving operations preserve it.
type BigDecimal struct {
	unscaled BigInteger
	scale    int
}

var (
	DecZero = BigDecimal{IntZero, 0}
	DecOne  = BigDecimal{IntOne, 0}
	DecTen  = BigDecimal{IntTen, 0}
)

// NewBigDecimal pairs an unscaled BigInteger with a scale; scale must be
// non-negative.
func NewBigDecimal(unscaled BigInteger, scale int) (BigDecimal, error) {
	if scale < 0 {
		return BigDecimal{}, newError(KindInvalidArgument, "scale must be non-negative, got %d", scale)
	}
	return BigDecimal{unscaled, scale}, nil
}

// NewBigDecimalFromString parses s under the decimal grammar.
func NewBigDecimalFromString(s string) (BigDecimal, error) {
	unscaled, scale, err := parseDecimalLiteral(s)
	if err != nil {
		return BigDecimal{}, err
	}
	return BigDecimal{newBigIntegerFromCanonical(unscaled), scale}, nil
}

func MustBigDecimal(s string) BigDecimal {
	v, err := NewBigDecimalFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (x BigDecimal) Unscaled() BigInteger { return x.unscaled }
func (x BigDecimal) Scale() int           { return x.scale }

func (x BigDecimal) Sign() int {
	return x.unscaled.Sign()
}

func (x BigDecimal) IsZero() bool {
	return x.unscaled.IsZero()
}

// liftUnscaled computes u's canonical digit string re-expressed at
// targetScale >= curScale (appending zeros, exact by construction).
func liftUnscaled(u string, curScale, targetScale int) string {
	if targetScale <= curScale {
		return u
	}
	return calc().Mul(u, "1"+zeros(targetScale-curScale))
}

func commonScale(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Plus: result scale = max(x.scale, y.scale).
func (x BigDecimal) Plus(y BigDecimal) BigDecimal {
	s := commonScale(x.scale, y.scale)
	u := calc().Add(liftUnscaled(x.unscaled.v, x.scale, s), liftUnscaled(y.unscaled.v, y.scale, s))
	return BigDecimal{BigInteger{u}, s}
}

// Minus: result scale = max(x.scale, y.scale).
func (x BigDecimal) Minus(y BigDecimal) BigDecimal {
	s := commonScale(x.scale, y.scale)
	u := calc().Sub(liftUnscaled(x.unscaled.v, x.scale, s), liftUnscaled(y.unscaled.v, y.scale, s))
	return BigDecimal{BigInteger{u}, s}
}

// Times: result scale = x.scale + y.scale.
func (x BigDecimal) Times(y BigDecimal) BigDecimal {
	return BigDecimal{BigInteger{calc().Mul(x.unscaled.v, y.unscaled.v)}, x.scale + y.scale}
}

// DividedBy computes x/y at the caller-provided scale. Both operands are
// always lifted through the general formula below, even when y is 1 at a
// matching scale: short-circuiting that case would silently ignore the
// requested target scale.
func (x BigDecimal) DividedBy(y BigDecimal, scale int, mode RoundingMode) (BigDecimal, error) {
	if scale < 0 {
		return BigDecimal{}, newError(KindInvalidArgument, "scale must be non-negative, got %d", scale)
	}
	if y.IsZero() {
		return BigDecimal{}, newError(KindDivisionByZero, "division by zero")
	}
	exp := y.scale - x.scale + scale
	var numerator, denominator string
	if exp >= 0 {
		numerator = calc().Mul(x.unscaled.v, "1"+zeros(exp))
		denominator = y.unscaled.v
	} else {
		numerator = x.unscaled.v
		denominator = calc().Mul(y.unscaled.v, "1"+zeros(-exp))
	}
	unscaled, err := calc().DivRound(numerator, denominator, mode)
	if err != nil {
		return BigDecimal{}, err
	}
	return BigDecimal{BigInteger{unscaled}, scale}, nil
}

func mustDivExact(a, b string) string {
	q, _, _ := calc().DivQR(a, b)
	return q
}

// DividedByExact computes x/y only if its reduced denominator has no
// prime factors other than 2 and 5, rendering the result with trailing
// zeros stripped.
func (x BigDecimal) DividedByExact(y BigDecimal) (BigDecimal, error) {
	if y.IsZero() {
		return BigDecimal{}, newError(KindDivisionByZero, "division by zero")
	}
	num := calc().Mul(x.unscaled.v, "1"+zeros(y.scale))
	den := calc().Mul(y.unscaled.v, "1"+zeros(x.scale))
	if signOf(den) < 0 {
		num, den = calc().Neg(num), calc().Neg(den)
	}
	g := calc().GCD(num, den)
	num, den = mustDivExact(num, g), mustDivExact(den, g)
	scale, ok := computeScaleFromReducedFractionDenominator(den)
	if !ok {
		return BigDecimal{}, newError(KindRoundingNecessary, "x/y has no terminating decimal expansion")
	}
	numerator2 := calc().Mul(num, "1"+zeros(scale))
	unscaled := mustDivExact(numerator2, den)
	return BigDecimal{BigInteger{unscaled}, scale}.StrippedOfTrailingZeros(), nil
}

// Quotient returns the truncated integer division of the values, scale 0.
func (x BigDecimal) Quotient(y BigDecimal) (BigDecimal, error) {
	s := commonScale(x.scale, y.scale)
	xu := BigInteger{liftUnscaled(x.unscaled.v, x.scale, s)}
	yu := BigInteger{liftUnscaled(y.unscaled.v, y.scale, s)}
	q, err := xu.Quotient(yu)
	if err != nil {
		return BigDecimal{}, err
	}
	return BigDecimal{q, 0}, nil
}

// Remainder returns scale max(x.scale, y.scale), sign following the
// dividend.
func (x BigDecimal) Remainder(y BigDecimal) (BigDecimal, error) {
	s := commonScale(x.scale, y.scale)
	xu := BigInteger{liftUnscaled(x.unscaled.v, x.scale, s)}
	yu := BigInteger{liftUnscaled(y.unscaled.v, y.scale, s)}
	r, err := xu.Remainder(yu)
	if err != nil {
		return BigDecimal{}, err
	}
	return BigDecimal{r, s}, nil
}

// Sqrt computes the square root to the given scale, correctly rounded.
// It computes an intermediate floor integer square root two digits
// beyond the requested scale; if that root is inexact, a non-zero sticky
// digit is appended so the discarded tail is never exactly zero or
// exactly half, then the result is rounded to scale with mode.
func (x BigDecimal) Sqrt(scale int, mode RoundingMode) (BigDecimal, error) {
	if x.Sign() < 0 {
		return BigDecimal{}, newError(KindNegativeNumber, "square root of negative BigDecimal")
	}
	if scale < 0 {
		return BigDecimal{}, newError(KindInvalidArgument, "scale must be non-negative, got %d", scale)
	}
	const extraDigits = 2
	m := 2*(scale+extraDigits) - x.scale
	var numerator string
	exact := true
	if m >= 0 {
		numerator = calc().Mul(x.unscaled.v, "1"+zeros(m))
	} else {
		var rem string
		numerator, rem, _ = calc().DivQR(x.unscaled.v, "1"+zeros(-m))
		exact = isZeroDigits(absString(rem))
	}
	u, err := calc().Sqrt(numerator)
	if err != nil {
		return BigDecimal{}, err
	}
	uScale := scale + extraDigits
	if !exact || calc().Cmp(calc().Mul(u, u), numerator) != 0 {
		u = calc().Add(calc().Mul(u, "10"), "1")
		uScale++
	}
	unscaled, err := scaleValue(u, uScale, scale, mode)
	if err != nil {
		return BigDecimal{}, err
	}
	return BigDecimal{BigInteger{unscaled}, scale}, nil
}

// ToScale rescales x to scale, rounding per mode.
func (x BigDecimal) ToScale(scale int, mode RoundingMode) (BigDecimal, error) {
	if scale < 0 {
		return BigDecimal{}, newError(KindInvalidArgument, "scale must be non-negative, got %d", scale)
	}
	unscaled, err := scaleValue(x.unscaled.v, x.scale, scale, mode)
	if err != nil {
		return BigDecimal{}, err
	}
	return BigDecimal{BigInteger{unscaled}, scale}, nil
}

// WithPointMovedLeft shifts the decimal point left by places, increasing
// scale; a resulting negative scale is normalized by appending zeros and
// clamping scale to 0.
func (x BigDecimal) WithPointMovedLeft(places int) BigDecimal {
	newScale := x.scale + places
	if newScale >= 0 {
		return BigDecimal{x.unscaled, newScale}
	}
	return BigDecimal{BigInteger{calc().Mul(x.unscaled.v, "1"+zeros(-newScale))}, 0}
}

// WithPointMovedRight shifts the decimal point right by places.
func (x BigDecimal) WithPointMovedRight(places int) BigDecimal {
	return x.WithPointMovedLeft(-places)
}

// StrippedOfTrailingZeros removes trailing zero digits from the unscaled
// value, reducing scale accordingly but never below 0.
func (x BigDecimal) StrippedOfTrailingZeros() BigDecimal {
	if x.IsZero() {
		return DecZero
	}
	neg, digits := splitSign(x.unscaled.v)
	scale := x.scale
	for scale > 0 && len(digits) > 1 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
		scale--
	}
	return BigDecimal{BigInteger{canonical(neg, digits)}, scale}
}

// ToBigInteger succeeds iff the fractional part is zero.
func (x BigDecimal) ToBigInteger() (BigInteger, error) {
	unscaled, ok := tryScaleExactly(x.unscaled.v, x.scale, 0)
	if !ok {
		return BigInteger{}, newError(KindRoundingNecessary, "BigDecimal %s has a non-zero fractional part", x.String())
	}
	return BigInteger{unscaled}, nil
}

// CompareTo lifts both operands to the larger scale and compares unscaled
// integers.
func (x BigDecimal) CompareTo(y BigDecimal) int {
	s := commonScale(x.scale, y.scale)
	xu := liftUnscaled(x.unscaled.v, x.scale, s)
	yu := liftUnscaled(y.unscaled.v, y.scale, s)
	return calc().Cmp(xu, yu)
}

func (x BigDecimal) Equal(y BigDecimal) bool {
	return x.unscaled.v == y.unscaled.v && x.scale == y.scale
}

// Min returns the numerically lesser of x and y.
func (x BigDecimal) Min(y BigDecimal) BigDecimal {
	if x.CompareTo(y) <= 0 {
		return x
	}
	return y
}

// Max returns the numerically greater of x and y.
func (x BigDecimal) Max(y BigDecimal) BigDecimal {
	if x.CompareTo(y) >= 0 {
		return x
	}
	return y
}

// String renders integral digits, a '.', and exactly `scale` fractional
// digits (zero-padded); no exponent is ever used.
func (x BigDecimal) String() string {
	neg, mag := splitSign(x.unscaled.v)
	mag = padUnscaledValue(mag, x.scale)
	if x.scale == 0 {
		return canonical(neg, mag)
	}
	intPart := mag[:len(mag)-x.scale]
	fracPart := mag[len(mag)-x.scale:]
	sign := ""
	if neg {
		sign = "-"
	}
	return sign + intPart + "." + fracPart
}

// --- Number interface ---

func (x BigDecimal) Kind() ValueKind {
	return KindDecimalValue
}

func (x BigDecimal) Negate() Number {
	return x.Negated()
}

func (x BigDecimal) Negated() BigDecimal {
	return BigDecimal{x.unscaled.Negated(), x.scale}
}

func (x BigDecimal) Abs() BigDecimal {
	return BigDecimal{x.unscaled.Abs(), x.scale}
}

func (x BigDecimal) ToBigRational() BigRational {
	return newBigRationalReduced(x.unscaled.v, "1"+zeros(x.scale))
}

// --- encoding/database interop, grounded on govalues/decimal's
// MarshalText/Scan/Value (decimal.go) ---

func (x BigDecimal) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *BigDecimal) UnmarshalText(text []byte) error {
	v, err := NewBigDecimalFromString(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x BigDecimal) Value() (driver.Value, error) {
	return x.String(), nil
}

func (x *BigDecimal) Scan(value any) error {
	switch v := value.(type) {
	case string:
		return x.UnmarshalText([]byte(v))
	case []byte:
		return x.UnmarshalText(v)
	default:
		return newError(KindNumberFormat, "unsupported Scan source type %T for BigDecimal", value)
	}
}
