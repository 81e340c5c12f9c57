package bignum

import (
	"strconv"
	"strings"
)

// genericOps implements every Calculator method beyond the five primitives
// (Add, Sub, Mul, DivQR, Cmp) purely in terms of those primitives. Both
// NativeCalculator and PortableCalculator embed a genericOps bound to their
// own primitives, so GCD, ModPow, Sqrt, bitwise logic, and base conversion
// are written once and shared by every backend — see DESIGN.md.
type genericOps struct {
	p primitives
}

func (g genericOps) DivQ(a, b string) (string, error) {
	q, _, err := g.p.DivQR(a, b)
	return q, err
}

func (g genericOps) DivR(a, b string) (string, error) {
	_, r, err := g.p.DivQR(a, b)
	return r, err
}

// DivRound divides a by b and rounds the (possibly non-exact) quotient per
// mode. See rounding.go.
func (g genericOps) DivRound(a, b string, mode RoundingMode) (string, error) {
	if signOf(b) == 0 {
		return "", newError(KindDivisionByZero, "division by zero")
	}
	q, r, err := g.p.DivQR(a, b)
	if err != nil {
		return "", err
	}
	if isZeroDigits(absString(r)) {
		return q, nil
	}
	sign := signOf(a) * signOf(b)
	twiceR := g.p.Add(absString(r), absString(r))
	cmp := g.p.Cmp(twiceR, absString(b))
	roundAway, err := decideRoundAway(mode, sign, false, cmp, absString(q))
	if err != nil {
		return "", err
	}
	if !roundAway {
		return q, nil
	}
	if sign > 0 {
		return g.p.Add(q, "1"), nil
	}
	return g.p.Sub(q, "1"), nil
}

// Pow computes a^e by repeated squaring.
func (g genericOps) Pow(a string, e uint64) (string, error) {
	if e == 0 {
		return "1", nil
	}
	result := "1"
	base := a
	exp := e
	for exp > 0 {
		if exp&1 == 1 {
			result = g.p.Mul(result, base)
		}
		exp >>= 1
		if exp > 0 {
			base = g.p.Mul(base, base)
		}
	}
	return result, nil
}

// Mod returns the Euclidean remainder of a modulo m, in [0, m).
func (g genericOps) Mod(a, m string) (string, error) {
	if signOf(m) == 0 {
		return "", newError(KindDivisionByZero, "modulus must be non-zero")
	}
	if signOf(m) < 0 {
		return "", newError(KindInvalidArgument, "modulus must be positive, got %s", m)
	}
	_, r, err := g.p.DivQR(a, m)
	if err != nil {
		return "", err
	}
	if signOf(r) < 0 {
		r = g.p.Add(r, m)
	}
	return r, nil
}

// ModPow computes base^exp mod m using square-and-multiply, with exp itself
// an arbitrary-precision non-negative integer.
func (g genericOps) ModPow(base, exp, mod string) (string, error) {
	if signOf(mod) == 0 {
		return "", newError(KindDivisionByZero, "modulus must be non-zero")
	}
	if signOf(mod) < 0 {
		return "", newError(KindInvalidArgument, "modulus must be positive, got %s", mod)
	}
	if signOf(exp) < 0 {
		return "", newError(KindInvalidArgument, "exponent must be non-negative, got %s", exp)
	}
	b, err := g.Mod(base, mod)
	if err != nil {
		return "", err
	}
	result := "1"
	e := exp
	for signOf(e) > 0 {
		q, r, err := g.p.DivQR(e, "2")
		if err != nil {
			return "", err
		}
		if r != "0" {
			result, err = g.Mod(g.p.Mul(result, b), mod)
			if err != nil {
				return "", err
			}
		}
		b, err = g.Mod(g.p.Mul(b, b), mod)
		if err != nil {
			return "", err
		}
		e = q
	}
	return result, nil
}

// GCD returns the non-negative greatest common divisor; gcd(0,0) = 0.
func (g genericOps) GCD(a, b string) string {
	x := absString(a)
	y := absString(b)
	for signOf(y) != 0 {
		_, r, _ := g.p.DivQR(x, y)
		x, y = y, absString(r)
	}
	return x
}

// LCM returns the non-negative least common multiple; 0 if either is 0.
func (g genericOps) LCM(a, b string) string {
	if signOf(a) == 0 || signOf(b) == 0 {
		return "0"
	}
	d := g.GCD(a, b)
	prod := absString(g.p.Mul(a, b))
	q, _, _ := g.p.DivQR(prod, d)
	return q
}

// ModInverse computes a's inverse modulo m via the extended Euclidean
// algorithm, failing with KindNoInverse if gcd(a,m) != 1.
func (g genericOps) ModInverse(a, m string) (string, error) {
	if signOf(m) == 0 {
		return "", newError(KindDivisionByZero, "modulus must be non-zero")
	}
	if signOf(m) < 0 {
		return "", newError(KindInvalidArgument, "modulus must be positive, got %s", m)
	}
	aMod, err := g.Mod(a, m)
	if err != nil {
		return "", err
	}
	oldR, r := aMod, m
	oldS, s := "1", "0"
	for signOf(r) != 0 {
		q, _, err := g.p.DivQR(oldR, r)
		if err != nil {
			return "", err
		}
		oldR, r = r, g.p.Sub(oldR, g.p.Mul(q, r))
		oldS, s = s, g.p.Sub(oldS, g.p.Mul(q, s))
	}
	if cmpMagnitude(absString(oldR), "1") != 0 {
		return "", newError(KindNoInverse, "modular inverse does not exist: gcd(%s, %s) != 1", a, m)
	}
	return g.Mod(oldS, m)
}

// Sqrt computes the integer floor square root of a non-negative n via
// Newton's iteration seeded at 10^⌈len(n)/2⌉, with a final adjustment loop
// that guarantees x^2 <= n < (x+1)^2 regardless of how the iteration
// terminated.
func (g genericOps) Sqrt(n string) (string, error) {
	if signOf(n) < 0 {
		return "", newError(KindNegativeNumber, "square root of negative number: %s", n)
	}
	if isZeroDigits(absString(n)) {
		return "0", nil
	}
	digits := canonicalDigits(absString(n))
	guessExp := (len(digits) + 1) / 2
	x := "1" + strings.Repeat("0", guessExp)
	for i := 0; i < 2*len(digits)+64; i++ {
		q, _, err := g.p.DivQR(n, x)
		if err != nil {
			return "", err
		}
		next, _, err := g.p.DivQR(g.p.Add(x, q), "2")
		if err != nil {
			return "", err
		}
		if g.p.Cmp(next, x) >= 0 {
			break
		}
		x = next
	}
	for g.p.Cmp(g.p.Mul(x, x), n) > 0 {
		x = g.p.Sub(x, "1")
	}
	for {
		next := g.p.Add(x, "1")
		if g.p.Cmp(g.p.Mul(next, next), n) > 0 {
			break
		}
		x = next
	}
	return x, nil
}

func (g genericOps) Neg(a string) string {
	return negateString(a)
}

// --- bitwise two's-complement logic, representation-independent ---

func (g genericOps) bitLen(s string) int {
	m := absString(s)
	n := 0
	for !isZeroDigits(m) {
		m, _, _ = g.p.DivQR(m, "2")
		n++
	}
	return n
}

// toTwosComplementBits returns the length-bit, LSB-first two's-complement
// representation of s, truncated/sign-extended to length bits.
func (g genericOps) toTwosComplementBits(s string, length int) []byte {
	bits := make([]byte, length)
	var val string
	if signOf(s) >= 0 {
		val = s
	} else {
		pow := "1"
		for i := 0; i < length; i++ {
			pow = g.p.Mul(pow, "2")
		}
		val = g.p.Sub(pow, absString(s))
	}
	for i := 0; i < length && !isZeroDigits(absString(val)); i++ {
		q, r, _ := g.p.DivQR(val, "2")
		if r == "1" {
			bits[i] = 1
		}
		val = q
	}
	return bits
}

func (g genericOps) fromTwosComplementBits(bits []byte) string {
	length := len(bits)
	val := "0"
	pow := "1"
	for i := 0; i < length; i++ {
		if bits[i] == 1 {
			val = g.p.Add(val, pow)
		}
		pow = g.p.Mul(pow, "2")
	}
	if bits[length-1] == 1 {
		val = g.p.Sub(val, pow)
	}
	return val
}

func (g genericOps) bitwise(a, b string, op func(x, y byte) byte) string {
	length := g.bitLen(a)
	if lb := g.bitLen(b); lb > length {
		length = lb
	}
	length += 2
	ba := g.toTwosComplementBits(a, length)
	bb := g.toTwosComplementBits(b, length)
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = op(ba[i], bb[i])
	}
	return g.fromTwosComplementBits(out)
}

func (g genericOps) And(a, b string) string {
	return g.bitwise(a, b, func(x, y byte) byte { return x & y })
}

func (g genericOps) Or(a, b string) string {
	return g.bitwise(a, b, func(x, y byte) byte { return x | y })
}

func (g genericOps) Xor(a, b string) string {
	return g.bitwise(a, b, func(x, y byte) byte { return x ^ y })
}

// --- base conversion ---

func validateAlphabet(alphabet string, base int) error {
	if len(alphabet) < 2 {
		return newError(KindInvalidArgument, "alphabet must have at least 2 symbols, got %d", len(alphabet))
	}
	if base != len(alphabet) {
		return newError(KindInvalidArgument, "base %d does not match alphabet length %d", base, len(alphabet))
	}
	seen := make(map[byte]bool, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		if seen[alphabet[i]] {
			return newError(KindInvalidArgument, "alphabet contains duplicate symbol %q", alphabet[i])
		}
		seen[alphabet[i]] = true
	}
	return nil
}

func (g genericOps) convertUnsignedFromBase(digits, alphabet string) (string, error) {
	if digits == "" {
		return "", newError(KindNumberFormat, "empty digit string")
	}
	index := make(map[byte]int, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		index[alphabet[i]] = i
	}
	val := "0"
	baseStr := strconv.Itoa(len(alphabet))
	for i := 0; i < len(digits); i++ {
		idx, ok := index[digits[i]]
		if !ok {
			return "", newError(KindNumberFormat, "invalid digit %q for given alphabet", digits[i])
		}
		val = g.p.Add(g.p.Mul(val, baseStr), strconv.Itoa(idx))
	}
	return val, nil
}

func (g genericOps) convertUnsignedToBase(mag, alphabet string) (string, error) {
	mag = canonicalDigits(mag)
	if isZeroDigits(mag) {
		return string(alphabet[0]), nil
	}
	baseStr := strconv.Itoa(len(alphabet))
	var out []byte
	cur := mag
	for !isZeroDigits(cur) {
		q, r, err := g.p.DivQR(cur, baseStr)
		if err != nil {
			return "", err
		}
		idx, convErr := strconv.Atoi(r)
		if convErr != nil {
			return "", newError(KindInvalidArgument, "unexpected remainder %q", r)
		}
		out = append(out, alphabet[idx])
		cur = q
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

// FromBase parses a signed digit string in the given base (2-36, digits
// 0-9a-z, case-insensitive) into a canonical base-10 digit string.
func (g genericOps) FromBase(s string, base int) (string, error) {
	if base < 2 || base > 36 {
		return "", newError(KindInvalidArgument, "base %d out of range [2,36]", base)
	}
	neg, digits := splitSign(s)
	digits = strings.ToLower(digits)
	mag, err := g.convertUnsignedFromBase(digits, digitAlphabet[:base])
	if err != nil {
		return "", err
	}
	return canonical(neg, mag), nil
}

// ToBase renders n (base-10 digit string) in the given base (2-36),
// lowercase, with a leading '-' if negative.
func (g genericOps) ToBase(n string, base int) (string, error) {
	if base < 2 || base > 36 {
		return "", newError(KindInvalidArgument, "base %d out of range [2,36]", base)
	}
	neg, mag := splitSign(n)
	out, err := g.convertUnsignedToBase(mag, digitAlphabet[:base])
	if err != nil {
		return "", err
	}
	if neg {
		return "-" + out, nil
	}
	return out, nil
}

// FromArbitraryBase parses an unsigned, byte-oriented digit string under a
// caller-supplied alphabet; it never accepts a sign, matching use cases
// like encoding opaque identifiers.
func (g genericOps) FromArbitraryBase(s string, alphabet string, base int) (string, error) {
	if err := validateAlphabet(alphabet, base); err != nil {
		return "", err
	}
	return g.convertUnsignedFromBase(s, alphabet)
}

// ToArbitraryBase renders a non-negative n under a caller-supplied
// alphabet; negative input fails with KindNegativeNumber.
func (g genericOps) ToArbitraryBase(n string, alphabet string, base int) (string, error) {
	if err := validateAlphabet(alphabet, base); err != nil {
		return "", err
	}
	neg, mag := splitSign(n)
	if neg {
		return "", newError(KindNegativeNumber, "cannot express negative value %s in an arbitrary base", n)
	}
	return g.convertUnsignedToBase(mag, alphabet)
}
