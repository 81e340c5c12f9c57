package bignum

// Must variants panic instead of returning an error, for callers who can
// prove at the call site that the operation cannot fail (e.g. a constant
// divisor known to be non-zero). Grounded on govalues/decimal's
// MustAdd/MustSub/MustMul/MustQuo (musts.go), generalized across all
// three value kinds and their fallible operations.

func MustDividedBy(a, b BigInteger, mode RoundingMode) BigInteger {
	v, err := a.DividedBy(b, mode)
	if err != nil {
		panic(err)
	}
	return v
}

func MustMod(a, m BigInteger) BigInteger {
	v, err := a.Mod(m)
	if err != nil {
		panic(err)
	}
	return v
}

func MustModInverse(a, m BigInteger) BigInteger {
	v, err := a.ModInverse(m)
	if err != nil {
		panic(err)
	}
	return v
}

func MustModPow(a, e, m BigInteger) BigInteger {
	v, err := a.ModPow(e, m)
	if err != nil {
		panic(err)
	}
	return v
}

func MustSqrtInt(a BigInteger, mode RoundingMode) BigInteger {
	v, err := a.Sqrt(mode)
	if err != nil {
		panic(err)
	}
	return v
}

func MustDecimalDividedBy(x, y BigDecimal, scale int, mode RoundingMode) BigDecimal {
	v, err := x.DividedBy(y, scale, mode)
	if err != nil {
		panic(err)
	}
	return v
}

func MustToScale(x BigDecimal, scale int, mode RoundingMode) BigDecimal {
	v, err := x.ToScale(scale, mode)
	if err != nil {
		panic(err)
	}
	return v
}

func MustSqrtDecimal(x BigDecimal, scale int, mode RoundingMode) BigDecimal {
	v, err := x.Sqrt(scale, mode)
	if err != nil {
		panic(err)
	}
	return v
}

func MustRationalDividedBy(p, q BigRational) BigRational {
	v, err := p.DividedBy(q)
	if err != nil {
		panic(err)
	}
	return v
}

func MustReciprocal(p BigRational) BigRational {
	v, err := p.Reciprocal()
	if err != nil {
		panic(err)
	}
	return v
}
