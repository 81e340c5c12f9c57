package bignum

import (
	"database/sql/driver"
	"fmt"
)

// BigInteger is an arbitrary-precision signed integer. The zero value is
// not a valid BigInteger; use IntZero or one of the constructors. Canonical
// form: a sign-prefixed decimal digit string with no leading
// zeros; 0 is unique and never carries a minus sign.
type BigInteger struct {
	v string
}

// IntZero, IntOne, IntTen are the memoized singletons for BigInteger.
var (
	IntZero = BigInteger{"0"}
	IntOne  = BigInteger{"1"}
	IntTen  = BigInteger{"10"}
)

// NewBigIntegerFromString parses s under the integer grammar
// `[+-]? digits`, stripping leading zeros and normalizing -0.
func NewBigIntegerFromString(s string) (BigInteger, error) {
	digits, err := parseIntegerLiteral(s)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{digits}, nil
}

// MustBigInteger is like NewBigIntegerFromString but panics on error; use
// only for literals known at compile time to be valid.
func MustBigInteger(s string) BigInteger {
	v, err := NewBigIntegerFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// NewBigIntegerFromInt64 converts a native int64 exactly.
func NewBigIntegerFromInt64(n int64) BigInteger {
	return BigInteger{fmt.Sprintf("%d", n)}
}

func newBigIntegerFromCanonical(digits string) BigInteger {
	return BigInteger{digits}
}

// String renders the canonical decimal digit string.
func (a BigInteger) String() string {
	return a.v
}

// Sign returns -1, 0, or 1.
func (a BigInteger) Sign() int {
	return signOf(a.v)
}

func (a BigInteger) IsZero() bool {
	return isZeroDigits(absString(a.v))
}

func (a BigInteger) Plus(b BigInteger) BigInteger {
	return BigInteger{calc().Add(a.v, b.v)}
}

func (a BigInteger) Minus(b BigInteger) BigInteger {
	return BigInteger{calc().Sub(a.v, b.v)}
}

func (a BigInteger) Times(b BigInteger) BigInteger {
	return BigInteger{calc().Mul(a.v, b.v)}
}

// DividedBy divides a by b, rounding an inexact quotient per mode. It
// fails with DivisionByZero if b is zero, or RoundingNecessary if mode is
// Unnecessary and the division is inexact.
func (a BigInteger) DividedBy(b BigInteger, mode RoundingMode) (BigInteger, error) {
	q, err := calc().DivRound(a.v, b.v, mode)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{q}, nil
}

// Quotient is truncated toward zero.
func (a BigInteger) Quotient(b BigInteger) (BigInteger, error) {
	q, _, err := calc().DivQR(a.v, b.v)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{q}, nil
}

// Remainder carries the sign of the dividend.
func (a BigInteger) Remainder(b BigInteger) (BigInteger, error) {
	_, r, err := calc().DivQR(a.v, b.v)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{r}, nil
}

func (a BigInteger) QuotientAndRemainder(b BigInteger) (q, r BigInteger, err error) {
	qs, rs, err := calc().DivQR(a.v, b.v)
	if err != nil {
		return BigInteger{}, BigInteger{}, err
	}
	return BigInteger{qs}, BigInteger{rs}, nil
}

func (a BigInteger) Power(e uint64) (BigInteger, error) {
	v, err := calc().Pow(a.v, e)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v}, nil
}

// Mod is the Euclidean remainder in [0, m); m must be positive.
func (a BigInteger) Mod(m BigInteger) (BigInteger, error) {
	v, err := calc().Mod(a.v, m.v)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v}, nil
}

// ModInverse fails with NoInverse if a and m are not coprime.
func (a BigInteger) ModInverse(m BigInteger) (BigInteger, error) {
	v, err := calc().ModInverse(a.v, m.v)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v}, nil
}

func (a BigInteger) ModPow(e, m BigInteger) (BigInteger, error) {
	v, err := calc().ModPow(a.v, e.v, m.v)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v}, nil
}

func (a BigInteger) GCD(b BigInteger) BigInteger {
	return BigInteger{calc().GCD(a.v, b.v)}
}

func (a BigInteger) LCM(b BigInteger) BigInteger {
	return BigInteger{calc().LCM(a.v, b.v)}
}

// Sqrt computes the integer square root under mode: Down
// and Floor return the floor root; Up and Ceiling return the ceiling
// root; Unnecessary fails unless a is a perfect square; every Half* mode
// compares 2*remainder to 2*s+1, which (since that comparison is never an
// exact tie) makes them all agree with HalfUp.
func (a BigInteger) Sqrt(mode RoundingMode) (BigInteger, error) {
	if a.Sign() < 0 {
		return BigInteger{}, newError(KindNegativeNumber, "square root of negative BigInteger: %s", a.v)
	}
	floor, err := calc().Sqrt(a.v)
	if err != nil {
		return BigInteger{}, err
	}
	remainder := calc().Sub(a.v, calc().Mul(floor, floor))
	if isZeroDigits(absString(remainder)) {
		return BigInteger{floor}, nil
	}
	switch mode {
	case Unnecessary:
		return BigInteger{}, newError(KindRoundingNecessary, "%s is not a perfect square", a.v)
	case Down, Floor:
		return BigInteger{floor}, nil
	case Up, Ceiling:
		return BigInteger{calc().Add(floor, "1")}, nil
	default:
		// 2*s+1 is the distance from s^2 to (s+1)^2; compare 2*remainder to
		// it directly (never an exact tie, so every Half* mode agrees).
		twiceRemainder := calc().Add(remainder, remainder)
		twiceSPlusOne := calc().Add(calc().Add(floor, floor), "1")
		if calc().Cmp(twiceRemainder, twiceSPlusOne) >= 0 {
			return BigInteger{calc().Add(floor, "1")}, nil
		}
		return BigInteger{floor}, nil
	}
}

func (a BigInteger) Negated() BigInteger {
	return BigInteger{calc().Neg(a.v)}
}

func (a BigInteger) Abs() BigInteger {
	return BigInteger{absString(a.v)}
}

func (a BigInteger) And(b BigInteger) BigInteger {
	return BigInteger{calc().And(a.v, b.v)}
}

func (a BigInteger) Or(b BigInteger) BigInteger {
	return BigInteger{calc().Or(a.v, b.v)}
}

func (a BigInteger) Xor(b BigInteger) BigInteger {
	return BigInteger{calc().Xor(a.v, b.v)}
}

// Not returns the two's-complement bitwise negation: ~a = -a-1.
func (a BigInteger) Not() BigInteger {
	return BigInteger{calc().Sub(calc().Neg(a.v), "1")}
}

func (a BigInteger) ShiftedLeft(bits uint) BigInteger {
	factor, _ := calc().Pow("2", uint64(bits))
	return BigInteger{calc().Mul(a.v, factor)}
}

// ShiftedRight is an arithmetic shift: it rounds toward -∞, matching
// floor-division by 2^bits.
func (a BigInteger) ShiftedRight(bits uint) BigInteger {
	factor, _ := calc().Pow("2", uint64(bits))
	v, _ := calc().DivRound(a.v, factor, Floor)
	return BigInteger{v}
}

// GetBitLength returns, for a non-negative value, the number of bits of a
// in base 2; for a negative value, the bit length of |a|-1,
// which is the minimal two's-complement magnitude width.
func (a BigInteger) GetBitLength() int {
	if a.Sign() >= 0 {
		return bitLength(a.v)
	}
	return bitLength(calc().Sub(absString(a.v), "1"))
}

func bitLength(unsignedDigits string) int {
	n := 0
	v := canonicalDigits(unsignedDigits)
	for !isZeroDigits(v) {
		v, _, _ = calc().DivQR(v, "2")
		n++
	}
	return n
}

// GetLowestSetBit returns the index of the rightmost set bit, or -1 if a
// is zero.
func (a BigInteger) GetLowestSetBit() int {
	if a.IsZero() {
		return -1
	}
	v := a.v
	n := 0
	for {
		q, r, _ := calc().DivQR(v, "2")
		if r != "0" {
			return n
		}
		v = q
		n++
	}
}

func (a BigInteger) IsBitSet(bit int) bool {
	return a.ShiftedRight(uint(bit)).IsOdd()
}

// SetBit returns a with bit forced to 1.
func (a BigInteger) SetBit(bit int) BigInteger {
	if a.IsBitSet(bit) {
		return a
	}
	power := BigInteger{"1"}.ShiftedLeft(uint(bit))
	return a.Plus(power)
}

// ClearBit returns a with bit forced to 0.
func (a BigInteger) ClearBit(bit int) BigInteger {
	if !a.IsBitSet(bit) {
		return a
	}
	power := BigInteger{"1"}.ShiftedLeft(uint(bit))
	return a.Minus(power)
}

// FlipBit returns a with bit toggled.
func (a BigInteger) FlipBit(bit int) BigInteger {
	if a.IsBitSet(bit) {
		return a.ClearBit(bit)
	}
	return a.SetBit(bit)
}

func (a BigInteger) IsEven() bool {
	_, r, _ := calc().DivQR(a.v, "2")
	return r == "0"
}

func (a BigInteger) IsOdd() bool {
	return !a.IsEven()
}

func (a BigInteger) CompareTo(b BigInteger) int {
	return calc().Cmp(a.v, b.v)
}

func (a BigInteger) Equal(b BigInteger) bool {
	return a.v == b.v
}

// Min returns the lesser of a and b.
func (a BigInteger) Min(b BigInteger) BigInteger {
	if a.CompareTo(b) <= 0 {
		return a
	}
	return b
}

// Max returns the greater of a and b.
func (a BigInteger) Max(b BigInteger) BigInteger {
	if a.CompareTo(b) >= 0 {
		return a
	}
	return b
}

// --- Number interface (kind.go) ---

func (a BigInteger) Kind() ValueKind {
	return KindIntegerValue
}

func (a BigInteger) Negate() Number {
	return a.Negated()
}

func (a BigInteger) ToBigRational() BigRational {
	return BigRational{numerator: a.v, denominator: "1", reduced: true}
}

// --- encoding/database interop, grounded on govalues/decimal's
// MarshalText/Scan/Value (decimal.go) ---

func (a BigInteger) MarshalText() ([]byte, error) {
	return []byte(a.v), nil
}

func (a *BigInteger) UnmarshalText(text []byte) error {
	v, err := NewBigIntegerFromString(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a BigInteger) Value() (driver.Value, error) {
	return a.v, nil
}

func (a *BigInteger) Scan(value any) error {
	switch v := value.(type) {
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		return a.UnmarshalText(v)
	case int64:
		*a = NewBigIntegerFromInt64(v)
		return nil
	default:
		return newError(KindNumberFormat, "unsupported Scan source type %T for BigInteger", value)
	}
}
