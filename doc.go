/*
Package bignum implements arbitrary-precision integers, exact fixed-scale
decimals, and exact rationals over a pluggable big-integer kernel.

# Three Kinds

BigInteger is a canonical signed decimal digit string with no leading
zeros; 0 never carries a minus sign.

BigDecimal pairs a BigInteger unscaled value with a non-negative scale,
representing unscaled * 10^(-scale). Scale is part of identity: 1 and 1.0
are numerically equal but structurally distinct, and scale-preserving
operations preserve it.

BigRational stores a numerator and a positive denominator, always reduced
so that gcd(|numerator|, denominator) = 1, with sign carried on the
numerator. 0 is represented as 0/1.

All three are immutable; every operation returns a fresh value.

# Calculator Kernel

Every arithmetic operation ultimately delegates to a Calculator, an
interface over canonical signed decimal digit strings. Two backends ship
with this package: NewNativeCalculator wraps math/big, and
NewPortableCalculator does direct schoolbook arithmetic on base-1e9 limbs
with no external dependency. A process-wide registry (SetCalculator,
Default) selects between them, autodetecting the native backend on first
use unless overridden.

# Rounding

Any operation that may discard information (decimal division, integer
division with a target rounding, square root) takes a RoundingMode. The
Unnecessary mode asserts the result is exact and fails otherwise; the
rest name a specific policy for the discarded remainder, including the
half-to-even ("banker's") convention common in financial systems.

# Errors

Failures surface as a sentinel-wrapped error classified by ErrorKind,
inspectable with Kind(err). No operation returns a partial result or
retries silently.
*/
package bignum
