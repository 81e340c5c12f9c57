package bignum

// This file implements the decimal helper functions shared by BigDecimal
// and BigRational: scale adjustment, exactness checks, and the
// denominator-to-scale test behind toBigDecimal. Grounded on
// christopherganda/go-bigdecimal's helper.go, which keeps exactly this kind
// of small numeric utility separate from the value type's methods.

// scaleValue adjusts unscaled (at curScale) to targetScale, applying mode
// when targetScale < curScale and the division is inexact. It returns the
// new unscaled digit string.
func scaleValue(unscaled string, curScale, targetScale int, mode RoundingMode) (string, error) {
	if targetScale >= curScale {
		return liftUnscaled(unscaled, curScale, targetScale), nil
	}
	divisor := "1" + zeros(curScale-targetScale)
	return calc().DivRound(unscaled, divisor, mode)
}

// tryScaleExactly adjusts unscaled (at curScale) to targetScale only if no
// information is discarded; ok is false if exact adjustment is impossible.
func tryScaleExactly(unscaled string, curScale, targetScale int) (result string, ok bool) {
	if targetScale >= curScale {
		return unscaled + zeros(targetScale-curScale), true
	}
	divisor := "1" + zeros(curScale-targetScale)
	q, r, err := calc().DivQR(unscaled, divisor)
	if err != nil || !isZeroDigits(absString(r)) {
		return "", false
	}
	return q, true
}

// computeScaleFromReducedFractionDenominator returns the minimum
// non-negative scale s such that d divides 10^s, for a reduced d > 0, by
// stripping factors of 2 and 5 and checking the residue is 1. ok is false
// if d has any other prime factor.
func computeScaleFromReducedFractionDenominator(d string) (scale int, ok bool) {
	residue := canonicalDigits(absString(d))
	twos, fives := 0, 0
	for {
		q, r, _ := calc().DivQR(residue, "2")
		if r != "0" {
			break
		}
		residue = q
		twos++
	}
	for {
		q, r, _ := calc().DivQR(residue, "5")
		if r != "0" {
			break
		}
		residue = q
		fives++
	}
	if residue != "1" {
		return 0, false
	}
	if twos > fives {
		return twos, true
	}
	return fives, true
}

// padUnscaledValue left-pads an unsigned digit string so it has at least
// scale+1 significant positions, so the rightmost `scale` digits are always
// a well-defined fractional part.
func padUnscaledValue(unscaled string, scale int) string {
	return padLeft(unscaled, scale+1)
}

func zeros(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
