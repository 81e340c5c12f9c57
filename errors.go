package bignum

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the errors this package returns, so callers can
// branch on category instead of matching error strings.
type ErrorKind int

const (
	// KindNumberFormat marks a malformed textual literal.
	KindNumberFormat ErrorKind = iota
	// KindInvalidArgument marks an out-of-range base, negative scale,
	// negative exponent, negative bit-count, negative modulus,
	// min > max, or a malformed alphabet.
	KindInvalidArgument
	// KindDivisionByZero marks a zero divisor, zero modulus, zero
	// denominator, or reciprocal of zero.
	KindDivisionByZero
	// KindRoundingNecessary marks a rounding decision required while the
	// mode is Unnecessary.
	KindRoundingNecessary
	// KindNegativeNumber marks an operation given a negative operand it
	// cannot accept (square root, unsigned byte export, arbitrary-base
	// export).
	KindNegativeNumber
	// KindIntegerOverflow marks a value that does not fit a requested
	// native integer range.
	KindIntegerOverflow
	// KindNoInverse marks a modular inverse that does not exist.
	KindNoInverse
	// KindRandomSource marks a failing or malformed random callback.
	KindRandomSource
)

func (k ErrorKind) String() string {
	switch k {
	case KindNumberFormat:
		return "NumberFormat"
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindDivisionByZero:
		return "DivisionByZero"
	case KindRoundingNecessary:
		return "RoundingNecessary"
	case KindNegativeNumber:
		return "NegativeNumber"
	case KindIntegerOverflow:
		return "IntegerOverflow"
	case KindNoInverse:
		return "NoInverse"
	case KindRandomSource:
		return "RandomSource"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// numError is the concrete error type returned by this package. It wraps a
// sentinel per ErrorKind so errors.Is still works against the package-level
// Err* values below.
type numError struct {
	kind ErrorKind
	msg  string
	err  error // sentinel for errors.Is/errors.As
}

func (e *numError) Error() string {
	return e.msg
}

func (e *numError) Unwrap() error {
	return e.err
}

// Kind returns the ErrorKind of err, or ok=false if err was not produced by
// this package.
func Kind(err error) (k ErrorKind, ok bool) {
	var ne *numError
	if errors.As(err, &ne) {
		return ne.kind, true
	}
	return 0, false
}

// Sentinel errors, one per kind, usable with errors.Is.
var (
	ErrNumberFormat      = errors.New("invalid numeric literal")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrRoundingNecessary = errors.New("rounding necessary")
	ErrNegativeNumber    = errors.New("negative number not accepted")
	ErrIntegerOverflow   = errors.New("integer overflow")
	ErrNoInverse         = errors.New("modular inverse does not exist")
	ErrRandomSource      = errors.New("random source failed")
)

func sentinelFor(kind ErrorKind) error {
	switch kind {
	case KindNumberFormat:
		return ErrNumberFormat
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindDivisionByZero:
		return ErrDivisionByZero
	case KindRoundingNecessary:
		return ErrRoundingNecessary
	case KindNegativeNumber:
		return ErrNegativeNumber
	case KindIntegerOverflow:
		return ErrIntegerOverflow
	case KindNoInverse:
		return ErrNoInverse
	case KindRandomSource:
		return ErrRandomSource
	default:
		return errors.New("unknown error")
	}
}

// newError builds a numError of the given kind with a formatted message.
func newError(kind ErrorKind, format string, args ...any) error {
	return &numError{
		kind: kind,
		msg:  fmt.Sprintf(format, args...),
		err:  sentinelFor(kind),
	}
}
