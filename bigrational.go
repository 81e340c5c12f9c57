package bignum

import "strings"

// BigRational is an exact fraction: a canonical signed numerator over a
// positive denominator. Reduction divides both by their GCD and
// moves sign onto the numerator; this implementation always reduces
// eagerly rather than deferring it (see DESIGN.md), so every BigRational
// this package returns is already in lowest terms.
type BigRational struct {
	numerator   string
	denominator string
	reduced     bool
}

var (
	RatZero = BigRational{"0", "1", true}
	RatOne  = BigRational{"1", "1", true}
	RatTen  = BigRational{"10", "1", true}
)

// newBigRationalReduced builds a BigRational from a raw numerator and a
// nonzero denominator, normalizing sign onto the numerator and dividing
// out the GCD.
func newBigRationalReduced(num, den string) BigRational {
	if signOf(den) < 0 {
		num, den = calc().Neg(num), calc().Neg(den)
	}
	if isZeroDigits(absString(num)) {
		return BigRational{"0", "1", true}
	}
	g := calc().GCD(num, den)
	if cmpMagnitude(absString(g), "1") != 0 {
		num, den = mustDivExact(num, g), mustDivExact(den, g)
	}
	return BigRational{num, den, true}
}

// NewBigRational builds a reduced fraction num/den; den must be nonzero.
func NewBigRational(num, den BigInteger) (BigRational, error) {
	if den.IsZero() {
		return BigRational{}, newError(KindDivisionByZero, "zero denominator")
	}
	return newBigRationalReduced(num.v, den.v), nil
}

// NewBigRationalFromString parses s. A literal containing '/' uses the
// rational grammar `[+-]? digits / digits`; otherwise s is parsed as a
// decimal (or plain integer) literal and embedded losslessly, so e.g.
// "1.125" yields 9/8.
func NewBigRationalFromString(s string) (BigRational, error) {
	if strings.ContainsRune(s, '/') {
		num, den, err := parseRationalLiteral(s)
		if err != nil {
			return BigRational{}, err
		}
		return newBigRationalReduced(num, den), nil
	}
	d, err := NewBigDecimalFromString(s)
	if err != nil {
		return BigRational{}, err
	}
	return d.ToBigRational(), nil
}

func MustBigRational(s string) BigRational {
	v, err := NewBigRationalFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (p BigRational) Numerator() BigInteger   { return BigInteger{p.numerator} }
func (p BigRational) Denominator() BigInteger { return BigInteger{p.denominator} }

func (p BigRational) Sign() int {
	return signOf(p.numerator)
}

func (p BigRational) IsZero() bool {
	return isZeroDigits(absString(p.numerator))
}

func (p BigRational) Plus(q BigRational) BigRational {
	num := calc().Add(calc().Mul(p.numerator, q.denominator), calc().Mul(q.numerator, p.denominator))
	den := calc().Mul(p.denominator, q.denominator)
	return newBigRationalReduced(num, den)
}

func (p BigRational) Minus(q BigRational) BigRational {
	num := calc().Sub(calc().Mul(p.numerator, q.denominator), calc().Mul(q.numerator, p.denominator))
	den := calc().Mul(p.denominator, q.denominator)
	return newBigRationalReduced(num, den)
}

func (p BigRational) Times(q BigRational) BigRational {
	return newBigRationalReduced(calc().Mul(p.numerator, q.numerator), calc().Mul(p.denominator, q.denominator))
}

// DividedBy fails with DivisionByZero if q is zero.
func (p BigRational) DividedBy(q BigRational) (BigRational, error) {
	if q.IsZero() {
		return BigRational{}, newError(KindDivisionByZero, "division by zero")
	}
	return newBigRationalReduced(calc().Mul(p.numerator, q.denominator), calc().Mul(p.denominator, q.numerator)), nil
}

// Reciprocal fails with DivisionByZero if p is zero.
func (p BigRational) Reciprocal() (BigRational, error) {
	if p.IsZero() {
		return BigRational{}, newError(KindDivisionByZero, "reciprocal of zero")
	}
	return newBigRationalReduced(p.denominator, p.numerator), nil
}

func (p BigRational) Negated() BigRational {
	return BigRational{calc().Neg(p.numerator), p.denominator, true}
}

func (p BigRational) Abs() BigRational {
	return BigRational{absString(p.numerator), p.denominator, true}
}

// Power raises p to e, including negative exponents when p is non-zero.
// A negative exponent on a zero base raises DivisionByZero rather than
// returning 1.
func (p BigRational) Power(e int64) (BigRational, error) {
	if e == 0 {
		return RatOne, nil
	}
	if e > 0 {
		n, _ := calc().Pow(p.numerator, uint64(e))
		d, _ := calc().Pow(p.denominator, uint64(e))
		return newBigRationalReduced(n, d), nil
	}
	if p.IsZero() {
		return BigRational{}, newError(KindDivisionByZero, "zero raised to a negative power")
	}
	n, _ := calc().Pow(p.denominator, uint64(-e))
	d, _ := calc().Pow(p.numerator, uint64(-e))
	return newBigRationalReduced(n, d), nil
}

// GetIntegralPart is numerator quotient denominator (truncated).
func (p BigRational) GetIntegralPart() BigInteger {
	q, _, _ := calc().DivQR(p.numerator, p.denominator)
	return BigInteger{q}
}

// GetFractionalPart is (numerator remainder denominator)/denominator; the
// remainder carries the dividend's sign, so GetIntegralPart() plus
// GetFractionalPart() always round-trips to p.
func (p BigRational) GetFractionalPart() BigRational {
	_, r, _ := calc().DivQR(p.numerator, p.denominator)
	return newBigRationalReduced(r, p.denominator)
}

// ToBigDecimal succeeds iff the reduced denominator's only prime factors
// are 2 and 5.
func (p BigRational) ToBigDecimal() (BigDecimal, error) {
	scale, ok := computeScaleFromReducedFractionDenominator(p.denominator)
	if !ok {
		return BigDecimal{}, newError(KindRoundingNecessary, "%s/%s has no terminating decimal expansion", p.numerator, p.denominator)
	}
	unscaled := mustDivExact(calc().Mul(p.numerator, "1"+zeros(scale)), p.denominator)
	return BigDecimal{BigInteger{unscaled}, scale}, nil
}

// ToScale renders p at a caller-chosen scale with rounding: numerator and
// denominator are each taken at scale 0 and divided with the target scale
// and mode.
func (p BigRational) ToScale(scale int, mode RoundingMode) (BigDecimal, error) {
	numDec := BigDecimal{BigInteger{p.numerator}, 0}
	denDec := BigDecimal{BigInteger{p.denominator}, 0}
	return numDec.DividedBy(denDec, scale, mode)
}

// ToRepeatingDecimalString performs long division, tracking the output
// position at which each remainder was first seen; when a remainder
// recurs, the repeating block is wrapped in parentheses.
func (p BigRational) ToRepeatingDecimalString() string {
	neg := p.Sign() < 0
	n := absString(p.numerator)
	d := p.denominator
	integral, remainder, _ := calc().DivQR(n, d)

	var sb strings.Builder
	if neg {
		sb.WriteString("-")
	}
	sb.WriteString(integral)
	if remainder == "0" {
		return sb.String()
	}
	sb.WriteString(".")

	seen := make(map[string]int)
	var frac []byte
	for {
		if remainder == "0" {
			sb.Write(frac)
			return sb.String()
		}
		if idx, ok := seen[remainder]; ok {
			sb.Write(frac[:idx])
			sb.WriteString("(")
			sb.Write(frac[idx:])
			sb.WriteString(")")
			return sb.String()
		}
		seen[remainder] = len(frac)
		scaled := calc().Mul(remainder, "10")
		digit, next, _ := calc().DivQR(scaled, d)
		frac = append(frac, digit[len(digit)-1])
		remainder = next
	}
}

// CompareTo cross-multiplies, safe since both denominators are positive.
func (p BigRational) CompareTo(q BigRational) int {
	return calc().Cmp(calc().Mul(p.numerator, q.denominator), calc().Mul(q.numerator, p.denominator))
}

func (p BigRational) Equal(q BigRational) bool {
	return p.numerator == q.numerator && p.denominator == q.denominator
}

// Min returns the numerically lesser of p and q.
func (p BigRational) Min(q BigRational) BigRational {
	if p.CompareTo(q) <= 0 {
		return p
	}
	return q
}

// Max returns the numerically greater of p and q.
func (p BigRational) Max(q BigRational) BigRational {
	if p.CompareTo(q) >= 0 {
		return p
	}
	return q
}

// String renders "n" if the denominator is 1, else "n/d"; the sign
// prefixes only the numerator.
func (p BigRational) String() string {
	if p.denominator == "1" {
		return p.numerator
	}
	return p.numerator + "/" + p.denominator
}

// --- Number interface ---

func (p BigRational) Kind() ValueKind {
	return KindRationalValue
}

func (p BigRational) Negate() Number {
	return p.Negated()
}

func (p BigRational) ToBigRational() BigRational {
	return p
}
