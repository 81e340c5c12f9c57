package bignum

// ValueKind orders the three number kinds for widening: sum/min/max over
// heterogeneous inputs widens to the broadest encountered kind (integer <
// decimal < rational).
type ValueKind int

const (
	KindIntegerValue ValueKind = iota
	KindDecimalValue
	KindRationalValue
)

func (k ValueKind) String() string {
	switch k {
	case KindIntegerValue:
		return "Integer"
	case KindDecimalValue:
		return "Decimal"
	case KindRationalValue:
		return "Rational"
	default:
		return "Unknown"
	}
}

// Number is the small abstract surface every value kind implements: a
// tagged-sum dispatch that lets Sum/Min/Max and cross-kind Of/CompareTo
// operate over BigInteger, BigDecimal, and BigRational without the caller
// first picking a concrete type.
type Number interface {
	Kind() ValueKind
	String() string
	Sign() int
	// Negate returns the additive inverse as a Number; concrete types also
	// expose a same-type Negated() for fluent chaining.
	Negate() Number
	// ToBigRational always succeeds: rational is the widest of the three
	// kinds, so every value embeds into it losslessly.
	ToBigRational() BigRational
}

// compareNumbers cross-multiplies after widening both operands to
// BigRational (safe since denominators are always positive).
func compareNumbers(a, b Number) int {
	return a.ToBigRational().CompareTo(b.ToBigRational())
}

// widestKind returns the broadest ValueKind among values, per the integer <
// decimal < rational ordering.
func widestKind(values []Number) ValueKind {
	k := KindIntegerValue
	for _, v := range values {
		if v.Kind() > k {
			k = v.Kind()
		}
	}
	return k
}
