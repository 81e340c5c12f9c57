package bignum

import "strings"

// This file holds the canonical signed-decimal-digit-string helpers shared
// by every Calculator backend and by the rounding engine. A canonical
// string is an optional leading '-' followed by one or more ASCII digits,
// no leading zeros (except the single digit "0", which never carries a
// sign).

// splitSign separates a canonical or near-canonical signed digit string
// into its sign and unsigned magnitude digits.
func splitSign(s string) (neg bool, digits string) {
	if s == "" {
		return false, "0"
	}
	if s[0] == '-' {
		return true, s[1:]
	}
	if s[0] == '+' {
		return false, s[1:]
	}
	return false, s
}

// stripLeadingZeros removes leading zeros from an unsigned digit string,
// leaving a single "0" if the value is zero.
func stripLeadingZeros(digits string) string {
	i := 0
	for i < len(digits)-1 && digits[i] == '0' {
		i++
	}
	return digits[i:]
}

// canonicalDigits normalizes an unsigned digit string: strips leading
// zeros, rejects empty input by treating it as zero.
func canonicalDigits(digits string) string {
	if digits == "" {
		return "0"
	}
	return stripLeadingZeros(digits)
}

// canonical builds a canonical signed digit string from a sign and
// unsigned magnitude, normalizing -0 to 0.
func canonical(neg bool, digits string) string {
	digits = canonicalDigits(digits)
	if digits == "0" {
		return "0"
	}
	if neg {
		return "-" + digits
	}
	return digits
}

// isZeroDigits reports whether an unsigned digit string represents zero.
func isZeroDigits(digits string) bool {
	for i := 0; i < len(digits); i++ {
		if digits[i] != '0' {
			return false
		}
	}
	return true
}

// cmpMagnitude compares two unsigned, leading-zero-free digit strings.
func cmpMagnitude(a, b string) int {
	a = canonicalDigits(a)
	b = canonicalDigits(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// signOf returns -1, 0, or 1 for a canonical signed digit string.
func signOf(s string) int {
	neg, digits := splitSign(s)
	if isZeroDigits(digits) {
		return 0
	}
	if neg {
		return -1
	}
	return 1
}

// negateString returns the canonical negation of a signed digit string.
func negateString(s string) string {
	neg, digits := splitSign(s)
	if isZeroDigits(digits) {
		return "0"
	}
	return canonical(!neg, digits)
}

// absString returns the canonical absolute value of a signed digit string.
func absString(s string) string {
	_, digits := splitSign(s)
	return canonical(false, digits)
}

// padLeft left-pads digits with zeros to at least n characters.
func padLeft(digits string, n int) string {
	if len(digits) >= n {
		return digits
	}
	return strings.Repeat("0", n-len(digits)) + digits
}

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
