package bignum

import (
	"strconv"
	"strings"
)

// This file implements the portable Calculator backend: direct schoolbook
// arithmetic on base-1e9 limbs, with no dependency on any big-integer
// library. It is grounded on govalues/decimal's fint block (integer.go):
// the teacher picks the largest uint64-safe block for a single machine
// word; this backend generalizes that same block size to a limb slice of
// unbounded length, so the sum of two blocks plus carry always fits in a
// native machine word. Division has no single-word fast path in this file
// (the native backend already covers that performance case); it instead
// always takes the general long-division path, using binary search to
// find each quotient limb, which keeps the algorithm simple enough to get
// right without a compiler to check it against.

const (
	limbBase   = 1_000_000_000 // 10^9, the largest power of 10 whose square fits a uint64 product
	limbDigits = 9
)

// parseLimbs converts an unsigned canonical digit string into little-endian
// base-1e9 limbs.
func parseLimbs(digits string) []uint32 {
	digits = canonicalDigits(digits)
	n := len(digits)
	limbCount := (n + limbDigits - 1) / limbDigits
	limbs := make([]uint32, limbCount)
	pos := n
	for i := 0; i < limbCount; i++ {
		start := pos - limbDigits
		if start < 0 {
			start = 0
		}
		v, _ := strconv.ParseUint(digits[start:pos], 10, 32)
		limbs[i] = uint32(v)
		pos = start
	}
	return normalizeLimbs(limbs)
}

// limbsToString renders little-endian base-1e9 limbs as an unsigned digit
// string.
func limbsToString(limbs []uint32) string {
	limbs = normalizeLimbs(limbs)
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(limbs[len(limbs)-1]), 10))
	for i := len(limbs) - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(limbs[i]), 10)
		sb.WriteString(strings.Repeat("0", limbDigits-len(s)))
		sb.WriteString(s)
	}
	return sb.String()
}

// normalizeLimbs trims high zero limbs, keeping at least one limb.
func normalizeLimbs(limbs []uint32) []uint32 {
	n := len(limbs)
	for n > 1 && limbs[n-1] == 0 {
		n--
	}
	return limbs[:n]
}

func isZeroLimbs(limbs []uint32) bool {
	limbs = normalizeLimbs(limbs)
	return len(limbs) == 1 && limbs[0] == 0
}

func cmpLimbs(a, b []uint32) int {
	a, b = normalizeLimbs(a), normalizeLimbs(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func addLimbs(a, b []uint32) []uint32 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint32, n+1)
	var carry uint64
	for i := 0; i < n; i++ {
		var av, bv uint64
		if i < len(a) {
			av = uint64(a[i])
		}
		if i < len(b) {
			bv = uint64(b[i])
		}
		sum := av + bv + carry
		out[i] = uint32(sum % limbBase)
		carry = sum / limbBase
	}
	out[n] = uint32(carry)
	return normalizeLimbs(out)
}

// subLimbs computes a-b, requiring a >= b.
func subLimbs(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow int64
	for i := 0; i < len(a); i++ {
		av := int64(a[i])
		var bv int64
		if i < len(b) {
			bv = int64(b[i])
		}
		d := av - bv - borrow
		if d < 0 {
			d += limbBase
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(d)
	}
	return normalizeLimbs(out)
}

// mulLimbs multiplies with per-row carry propagation, so every accumulator
// slot stays below 2*limbBase^2 regardless of operand length.
func mulLimbs(a, b []uint32) []uint32 {
	res := make([]uint64, len(a)+len(b)+1)
	for i := 0; i < len(a); i++ {
		if a[i] == 0 {
			continue
		}
		ai := uint64(a[i])
		var carry uint64
		for j := 0; j < len(b); j++ {
			prod := ai*uint64(b[j]) + res[i+j] + carry
			res[i+j] = prod % limbBase
			carry = prod / limbBase
		}
		k := i + len(b)
		for carry > 0 {
			prod := res[k] + carry
			res[k] = prod % limbBase
			carry = prod / limbBase
			k++
		}
	}
	out := make([]uint32, len(res))
	for i, v := range res {
		out[i] = uint32(v)
	}
	return normalizeLimbs(out)
}

// mulLimbsSmall multiplies limbs by a scalar strictly less than limbBase.
func mulLimbsSmall(limbs []uint32, scalar uint64) []uint32 {
	if scalar == 0 {
		return []uint32{0}
	}
	out := make([]uint64, len(limbs)+1)
	var carry uint64
	for i, v := range limbs {
		prod := uint64(v)*scalar + carry
		out[i] = prod % limbBase
		carry = prod / limbBase
	}
	out[len(limbs)] = carry
	res := make([]uint32, len(out))
	for i, v := range out {
		res[i] = uint32(v)
	}
	return normalizeLimbs(res)
}

// shiftInLimb computes remainder*limbBase + newLimb, i.e. brings down the
// next limb during long division.
func shiftInLimb(remainder []uint32, newLimb uint32) []uint32 {
	out := make([]uint32, len(remainder)+1)
	out[0] = newLimb
	copy(out[1:], remainder)
	return normalizeLimbs(out)
}

// divModLimbs performs unsigned long division, one limb (base-1e9 digit)
// of the quotient at a time, choosing each quotient limb by binary search
// over a sliding window of remainder limbs.
func divModLimbs(a, b []uint32) (q, r []uint32) {
	quotient := make([]uint32, len(a))
	remainder := []uint32{0}
	for i := len(a) - 1; i >= 0; i-- {
		remainder = shiftInLimb(remainder, a[i])
		lo, hi := uint64(0), uint64(limbBase-1)
		var d uint64
		for lo <= hi {
			mid := lo + (hi-lo)/2
			if cmpLimbs(mulLimbsSmall(b, mid), remainder) <= 0 {
				d = mid
				lo = mid + 1
			} else {
				if mid == 0 {
					break
				}
				hi = mid - 1
			}
		}
		quotient[i] = uint32(d)
		remainder = subLimbs(remainder, mulLimbsSmall(b, d))
	}
	return normalizeLimbs(quotient), normalizeLimbs(remainder)
}

// portableImpl implements the five Calculator primitives directly, with no
// external big-integer library.
type portableImpl struct{}

func (portableImpl) Add(a, b string) string {
	negA, magA := splitSign(a)
	negB, magB := splitSign(b)
	la, lb := parseLimbs(magA), parseLimbs(magB)
	if negA == negB {
		return canonical(negA, limbsToString(addLimbs(la, lb)))
	}
	switch cmpLimbs(la, lb) {
	case 0:
		return "0"
	case 1:
		return canonical(negA, limbsToString(subLimbs(la, lb)))
	default:
		return canonical(negB, limbsToString(subLimbs(lb, la)))
	}
}

func (p portableImpl) Sub(a, b string) string {
	return p.Add(a, negateString(b))
}

func (portableImpl) Mul(a, b string) string {
	negA, magA := splitSign(a)
	negB, magB := splitSign(b)
	la, lb := parseLimbs(magA), parseLimbs(magB)
	prod := mulLimbs(la, lb)
	if isZeroLimbs(prod) {
		return "0"
	}
	return canonical(negA != negB, limbsToString(prod))
}

func (portableImpl) DivQR(a, b string) (string, string, error) {
	negB, magB := splitSign(b)
	lb := parseLimbs(magB)
	if isZeroLimbs(lb) {
		return "", "", newError(KindDivisionByZero, "division by zero")
	}
	negA, magA := splitSign(a)
	la := parseLimbs(magA)
	q, r := divModLimbs(la, lb)
	negQ := negA != negB && !isZeroLimbs(q)
	negR := negA && !isZeroLimbs(r)
	return canonical(negQ, limbsToString(q)), canonical(negR, limbsToString(r)), nil
}

func (portableImpl) Cmp(a, b string) int {
	negA, magA := splitSign(a)
	negB, magB := splitSign(b)
	la, lb := parseLimbs(magA), parseLimbs(magB)
	if isZeroLimbs(la) {
		negA = false
	}
	if isZeroLimbs(lb) {
		negB = false
	}
	switch {
	case negA && !negB:
		return -1
	case !negA && negB:
		return 1
	case !negA && !negB:
		return cmpLimbs(la, lb)
	default:
		return -cmpLimbs(la, lb)
	}
}

// NewPortableCalculator returns a Calculator with no external dependency,
// suitable as a fallback when no native backend is available, or for
// deterministic testing of the generic algorithms against a second,
// independently-implemented set of primitives.
func NewPortableCalculator() Calculator {
	p := portableImpl{}
	return portableCalculator{portableImpl: p, genericOps: genericOps{p: p}}
}

type portableCalculator struct {
	portableImpl
	genericOps
}
