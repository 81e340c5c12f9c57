package bignum

// RoundingMode names a policy for resolving a quotient that does not divide
// exactly.
type RoundingMode int

const (
	// Unnecessary asserts the division is exact; it fails if it is not.
	Unnecessary RoundingMode = iota
	// Up rounds away from zero.
	Up
	// Down truncates toward zero.
	Down
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
	// HalfUp rounds to the nearest neighbor, ties away from zero.
	HalfUp
	// HalfDown rounds to the nearest neighbor, ties toward zero.
	HalfDown
	// HalfCeiling rounds to the nearest neighbor, ties toward +∞.
	HalfCeiling
	// HalfFloor rounds to the nearest neighbor, ties toward -∞.
	HalfFloor
	// HalfEven rounds to the nearest neighbor, ties to the adjacent even
	// digit (banker's rounding).
	HalfEven
)

func (m RoundingMode) String() string {
	switch m {
	case Unnecessary:
		return "Unnecessary"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Ceiling:
		return "Ceiling"
	case Floor:
		return "Floor"
	case HalfUp:
		return "HalfUp"
	case HalfDown:
		return "HalfDown"
	case HalfCeiling:
		return "HalfCeiling"
	case HalfFloor:
		return "HalfFloor"
	case HalfEven:
		return "HalfEven"
	default:
		return "RoundingMode(invalid)"
	}
}

// lastDigitOdd reports whether the final digit of an unsigned decimal digit
// string is odd. Used for HalfEven parity, read directly off the digit
// string per SPEC_FULL.md §7 (both calculator backends hand the rounding
// engine a decimal string, so parity never needs a base-2 round trip).
func lastDigitOdd(digits string) bool {
	if digits == "" {
		return false
	}
	d := digits[len(digits)-1]
	return (d-'0')%2 == 1
}

// decideRoundAway applies mode to decide whether an unsigned truncated
// quotient should be incremented by one (i.e. rounded away from zero),
// given:
//
//   - sign: -1 or +1, the sign of the true (un-truncated) quotient.
//   - remainderIsZero: whether the division was exact.
//   - cmpTwiceRemainderToDivisor: sign of compare(2*|remainder|, |divisor|).
//   - quotientDigits: the unsigned truncated quotient, for HalfEven parity.
//
// It returns an error iff mode is Unnecessary and the division is inexact.
func decideRoundAway(mode RoundingMode, sign int, remainderIsZero bool, cmpTwiceRemainderToDivisor int, quotientDigits string) (bool, error) {
	if remainderIsZero {
		return false, nil
	}
	switch mode {
	case Unnecessary:
		return false, newError(KindRoundingNecessary, "rounding necessary: inexact division with Unnecessary mode")
	case Up:
		return true, nil
	case Down:
		return false, nil
	case Ceiling:
		return sign > 0, nil
	case Floor:
		return sign < 0, nil
	case HalfUp:
		return cmpTwiceRemainderToDivisor >= 0, nil
	case HalfDown:
		return cmpTwiceRemainderToDivisor > 0, nil
	case HalfCeiling:
		if cmpTwiceRemainderToDivisor > 0 {
			return true, nil
		}
		if cmpTwiceRemainderToDivisor == 0 {
			return sign > 0, nil
		}
		return false, nil
	case HalfFloor:
		if cmpTwiceRemainderToDivisor > 0 {
			return true, nil
		}
		if cmpTwiceRemainderToDivisor == 0 {
			return sign < 0, nil
		}
		return false, nil
	case HalfEven:
		if cmpTwiceRemainderToDivisor > 0 {
			return true, nil
		}
		if cmpTwiceRemainderToDivisor == 0 {
			return lastDigitOdd(quotientDigits), nil
		}
		return false, nil
	default:
		return false, newError(KindInvalidArgument, "invalid rounding mode %d", int(mode))
	}
}
