package bignum

import "strconv"

// This file covers BigInteger's byte I/O, base conversion, and random
// generation. Byte layout is computed directly from the magnitude's bit
// length rather than via GetBitLength()'s public n-1-for-negative
// convention (see DESIGN.md), which for values like -128 yields a
// two-byte [0xFF, 0x80] rather than the one-byte minimal encoding a
// strict two's-complement-minimal scheme would produce.

func toMagnitudeBytesMinimal(mag string) []byte {
	mag = canonicalDigits(absString(mag))
	if isZeroDigits(mag) {
		return []byte{0}
	}
	var out []byte
	cur := mag
	for !isZeroDigits(cur) {
		q, r, _ := calc().DivQR(cur, "256")
		rv, _ := strconv.Atoi(r)
		out = append(out, byte(rv))
		cur = q
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func padBytesLeft(b []byte, width int) []byte {
	if len(b) >= width {
		return b
	}
	out := make([]byte, width)
	copy(out[width-len(b):], b)
	return out
}

func hornerFromBytes(data []byte) string {
	v := "0"
	for _, b := range data {
		v = calc().Add(calc().Mul(v, "256"), strconv.Itoa(int(b)))
	}
	return v
}

// ToBytes renders a as big-endian bytes. Unsigned form rejects negative
// values; signed form is two's complement, sized so the sign bit is
// correct, prepending a 0x00 or 0xFF byte only when the magnitude's own
// high bit would otherwise misrepresent the sign.
func (a BigInteger) ToBytes(signed bool) ([]byte, error) {
	if !signed {
		if a.Sign() < 0 {
			return nil, newError(KindNegativeNumber, "unsigned byte export of negative BigInteger: %s", a.v)
		}
		return toMagnitudeBytesMinimal(a.v), nil
	}
	mag := absString(a.v)
	byteLen := bitLength(mag)/8 + 1
	if a.Sign() >= 0 {
		return padBytesLeft(toMagnitudeBytesMinimal(a.v), byteLen), nil
	}
	twoPow, _ := calc().Pow("256", uint64(byteLen))
	twosComp := calc().Sub(twoPow, mag)
	return padBytesLeft(toMagnitudeBytesMinimal(twosComp), byteLen), nil
}

// FromBytes parses big-endian bytes. Unsigned form treats data as a plain
// magnitude; signed form interprets the top bit of the first byte as the
// two's-complement sign bit.
func FromBytes(data []byte, signed bool) (BigInteger, error) {
	if len(data) == 0 {
		return IntZero, nil
	}
	if !signed || data[0]&0x80 == 0 {
		return BigInteger{canonical(false, hornerFromBytes(data))}, nil
	}
	unsigned := hornerFromBytes(data)
	twoPow, _ := calc().Pow("256", uint64(len(data)))
	return BigInteger{calc().Sub(unsigned, twoPow)}, nil
}

// FromBase parses s in the given base (2-36, digits 0-9a-z, case
// insensitive on input).
func FromBase(s string, base int) (BigInteger, error) {
	v, err := calc().FromBase(s, base)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v}, nil
}

// ToBase renders a in the given base (2-36), lowercase.
func (a BigInteger) ToBase(base int) (string, error) {
	return calc().ToBase(a.v, base)
}

// FromArbitraryBase parses an unsigned, byte-oriented digit string under a
// caller-supplied alphabet.
func FromArbitraryBase(s string, alphabet string, base int) (BigInteger, error) {
	v, err := calc().FromArbitraryBase(s, alphabet, base)
	if err != nil {
		return BigInteger{}, err
	}
	return BigInteger{v}, nil
}

// ToArbitraryBase renders a non-negative a under a caller-supplied
// alphabet; fails with NegativeNumber if a is negative.
func (a BigInteger) ToArbitraryBase(alphabet string, base int) (string, error) {
	return calc().ToArbitraryBase(a.v, alphabet, base)
}

// RandomBits draws ⌈n/8⌉ bytes from source, masks excess bits in the top
// byte so the result has at most n significant bits, and interprets it as
// an unsigned BigInteger.
func RandomBits(n int, source RandomSource) (BigInteger, error) {
	if n < 0 {
		return BigInteger{}, newError(KindInvalidArgument, "bit count must be non-negative, got %d", n)
	}
	if n == 0 {
		return IntZero, nil
	}
	if source == nil {
		source = defaultRandomSource
	}
	numBytes := (n + 7) / 8
	raw, err := source(numBytes)
	raw, err = checkRandomBytes(raw, numBytes, err)
	if err != nil {
		return BigInteger{}, err
	}
	excessBits := numBytes*8 - n
	if excessBits > 0 {
		raw[0] &= byte(0xFF >> excessBits)
	}
	return BigInteger{canonical(false, hornerFromBytes(raw))}, nil
}

// RandomRange draws a uniform value in [min, max) via rejection sampling
// over RandomBits(bitLength(max-min)).
func RandomRange(min, max BigInteger, source RandomSource) (BigInteger, error) {
	span := max.Minus(min)
	if span.Sign() <= 0 {
		return BigInteger{}, newError(KindInvalidArgument, "min must be less than max, got min=%s max=%s", min.v, max.v)
	}
	bits := bitLength(span.v)
	for {
		candidate, err := RandomBits(bits, source)
		if err != nil {
			return BigInteger{}, err
		}
		if candidate.CompareTo(span) < 0 {
			return min.Plus(candidate), nil
		}
	}
}
