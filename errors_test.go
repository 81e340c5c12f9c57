package bignum

import (
	"errors"
	"testing"
)

func TestKind(t *testing.T) {
	_, err := MustBigInteger("1").DividedBy(IntZero, Down)
	kind, ok := Kind(err)
	if !ok {
		t.Fatalf("Kind(err) ok = false, want true")
	}
	if kind != KindDivisionByZero {
		t.Errorf("Kind(err) = %v, want DivisionByZero", kind)
	}

	if _, ok := Kind(errors.New("not ours")); ok {
		t.Errorf("Kind(unrelated error) ok = true, want false")
	}
}

func TestErrorsIs(t *testing.T) {
	_, err := MustBigInteger("1").DividedBy(IntZero, Down)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("errors.Is(err, ErrDivisionByZero) = false, want true")
	}
}

func TestErrorKind_String(t *testing.T) {
	kinds := []ErrorKind{
		KindNumberFormat, KindInvalidArgument, KindDivisionByZero,
		KindRoundingNecessary, KindNegativeNumber, KindIntegerOverflow,
		KindNoInverse, KindRandomSource,
	}
	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		if s == "" {
			t.Errorf("ErrorKind(%d).String() is empty", int(k))
		}
		if seen[s] {
			t.Errorf("duplicate ErrorKind String() value %q", s)
		}
		seen[s] = true
	}
}
