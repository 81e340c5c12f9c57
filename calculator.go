package bignum

import (
	"sync"
	"sync/atomic"
)

// Calculator is the arbitrary-precision integer arithmetic kernel every
// value type in this package delegates to. All inputs and outputs are
// canonical signed decimal digit strings (see strdigits.go); this keeps the
// interface representation-agnostic so a caller can supply an entirely
// different backend (e.g. one backed by a hardware bignum unit) without
// this package knowing the difference.
//
// Two backends ship with this package: NewNativeCalculator, a thin wrapper
// over math/big, and NewPortableCalculator, a direct schoolbook implementation
// operating on base-1e9 limbs. The registry (Default, SetCalculator)
// selects between them.
type Calculator interface {
	Add(a, b string) string
	Sub(a, b string) string
	Mul(a, b string) string
	DivQR(a, b string) (q, r string, err error)
	DivQ(a, b string) (string, error)
	DivR(a, b string) (string, error)
	DivRound(a, b string, mode RoundingMode) (string, error)
	Pow(a string, e uint64) (string, error)
	ModPow(base, exp, mod string) (string, error)
	Mod(a, m string) (string, error)
	ModInverse(a, m string) (string, error)
	GCD(a, b string) string
	LCM(a, b string) string
	Sqrt(n string) (string, error)
	Cmp(a, b string) int
	Neg(a string) string
	And(a, b string) string
	Or(a, b string) string
	Xor(a, b string) string
	FromBase(s string, base int) (string, error)
	ToBase(n string, base int) (string, error)
	FromArbitraryBase(s string, alphabet string, base int) (string, error)
	ToArbitraryBase(n string, alphabet string, base int) (string, error)
}

// primitives is the small set of operations a Calculator backend must
// implement itself; calculator_generic.go derives everything else in the
// Calculator interface from these five, so a new backend only ever has to
// supply this subset.
type primitives interface {
	Add(a, b string) string
	Sub(a, b string) string
	Mul(a, b string) string
	DivQR(a, b string) (q, r string, err error)
	Cmp(a, b string) int
}

var (
	registry     atomic.Pointer[Calculator]
	autodetectOn sync.Once
)

// SetCalculator overrides the process-wide calculator. It is a
// single-assignment cell: concurrent reads are safe without
// synchronization once populated; concurrent writers racing SetCalculator
// is not a supported usage and is expected only at startup or in tests.
func SetCalculator(c Calculator) {
	registry.Store(&c)
	// An explicit assignment preempts the lazy autodetect.
	autodetectOn.Do(func() {})
}

// Default returns the active calculator, autodetecting the fastest
// available backend on first use if none was explicitly set.
func Default() Calculator {
	autodetectOn.Do(func() {
		if registry.Load() == nil {
			c := NewNativeCalculator()
			registry.Store(&c)
		}
	})
	p := registry.Load()
	if p == nil {
		// Extremely unlikely race between the Do closure storing and this
		// load; fall back directly rather than block.
		return NewNativeCalculator()
	}
	return *p
}

func calc() Calculator {
	return Default()
}
