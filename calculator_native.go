package bignum

import "math/big"

// nativeImpl implements the five Calculator primitives as a thin wrapper
// over math/big.Int, translating canonical digit strings in and out.
// Grounded on govalues/decimal's bint (type bint big.Int): the teacher
// keeps a *big.Int under a distinct name so it can hang its own method set
// off it; this module does the same but the method set is just the five
// primitives, since everything else comes from genericOps.
type nativeImpl struct{}

func parseBig(s string) *big.Int {
	z := new(big.Int)
	// Canonical digit strings always parse; malformed input is rejected
	// earlier by the parser (parse.go), not here.
	z.SetString(s, 10)
	return z
}

func (nativeImpl) Add(a, b string) string {
	return new(big.Int).Add(parseBig(a), parseBig(b)).String()
}

func (nativeImpl) Sub(a, b string) string {
	return new(big.Int).Sub(parseBig(a), parseBig(b)).String()
}

func (nativeImpl) Mul(a, b string) string {
	return new(big.Int).Mul(parseBig(a), parseBig(b)).String()
}

// DivQR implements truncated (toward zero) division: q*b+r=a, |r|<|b|,
// sign(r)=sign(a) when r != 0. math/big.Int.QuoRem already has exactly
// this truncating semantics.
func (nativeImpl) DivQR(a, b string) (string, string, error) {
	bb := parseBig(b)
	if bb.Sign() == 0 {
		return "", "", newError(KindDivisionByZero, "division by zero")
	}
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(parseBig(a), bb, r)
	return q.String(), r.String(), nil
}

func (nativeImpl) Cmp(a, b string) int {
	return parseBig(a).Cmp(parseBig(b))
}

// NewNativeCalculator returns a Calculator backed by math/big. It is the
// default autodetected backend: a thin wrapper over the host's native
// big-integer library.
func NewNativeCalculator() Calculator {
	n := nativeImpl{}
	return nativeCalculator{nativeImpl: n, genericOps: genericOps{p: n}}
}

type nativeCalculator struct {
	nativeImpl
	genericOps
}
