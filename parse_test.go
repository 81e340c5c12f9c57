package bignum

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in       string
		wantKind ValueKind
		wantStr  string
	}{
		{"42", KindIntegerValue, "42"},
		{"-7", KindIntegerValue, "-7"},
		{"1.5", KindDecimalValue, "1.5"},
		{"1e3", KindDecimalValue, "1000"},
		{"3/4", KindRationalValue, "3/4"},
	}
	for _, tt := range cases {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
		}
		if got.Kind() != tt.wantKind {
			t.Errorf("Parse(%q).Kind() = %v, want %v", tt.in, got.Kind(), tt.wantKind)
		}
		if got.String() != tt.wantStr {
			t.Errorf("Parse(%q).String() = %s, want %s", tt.in, got.String(), tt.wantStr)
		}
	}
}

func TestOfBigInteger(t *testing.T) {
	d := MustBigDecimal("5.00")
	got, err := OfBigInteger(d)
	if err != nil {
		t.Fatalf("OfBigInteger(5.00) unexpected error: %v", err)
	}
	if got.String() != "5" {
		t.Errorf("OfBigInteger(5.00) = %s, want 5", got)
	}
	if _, err := OfBigInteger(MustBigDecimal("5.01")); err == nil {
		t.Errorf("OfBigInteger(5.01) should fail")
	}

	r := MustBigRational("10/2")
	got2, err := OfBigInteger(r)
	if err != nil {
		t.Fatalf("OfBigInteger(10/2) unexpected error: %v", err)
	}
	if got2.String() != "5" {
		t.Errorf("OfBigInteger(10/2) = %s, want 5", got2)
	}
	if _, err := OfBigInteger(MustBigRational("1/3")); err == nil {
		t.Errorf("OfBigInteger(1/3) should fail")
	}
}

func TestOfBigDecimal(t *testing.T) {
	i := MustBigInteger("7")
	got, err := OfBigDecimal(i)
	if err != nil {
		t.Fatalf("OfBigDecimal(7) unexpected error: %v", err)
	}
	if got.String() != "7" {
		t.Errorf("OfBigDecimal(7) = %s, want 7", got)
	}

	r := MustBigRational("1/8")
	got2, err := OfBigDecimal(r)
	if err != nil {
		t.Fatalf("OfBigDecimal(1/8) unexpected error: %v", err)
	}
	if got2.String() != "0.125" {
		t.Errorf("OfBigDecimal(1/8) = %s, want 0.125", got2)
	}

	if _, err := OfBigDecimal(MustBigRational("1/3")); err == nil {
		t.Errorf("OfBigDecimal(1/3) should fail")
	}
}

func TestOfBigRational(t *testing.T) {
	i := MustBigInteger("5")
	if got := OfBigRational(i).String(); got != "5" {
		t.Errorf("OfBigRational(5) = %s, want 5", got)
	}
	d := MustBigDecimal("0.25")
	if got := OfBigRational(d).String(); got != "1/4" {
		t.Errorf("OfBigRational(0.25) = %s, want 1/4", got)
	}
}

func TestSum(t *testing.T) {
	empty, err := Sum()
	if err != nil || empty.String() != "0" {
		t.Errorf("Sum() = %v, %v, want 0, nil", empty, err)
	}

	allInts, err := Sum(MustBigInteger("1"), MustBigInteger("2"), MustBigInteger("3"))
	if err != nil {
		t.Fatalf("Sum(ints) error: %v", err)
	}
	if allInts.Kind() != KindIntegerValue || allInts.String() != "6" {
		t.Errorf("Sum(1,2,3) = %v (%v), want 6 (Integer)", allInts, allInts.Kind())
	}

	mixed, err := Sum(MustBigInteger("1"), MustBigDecimal("0.5"))
	if err != nil {
		t.Fatalf("Sum(mixed) error: %v", err)
	}
	if mixed.Kind() != KindDecimalValue || mixed.String() != "1.5" {
		t.Errorf("Sum(1, 0.5) = %v (%v), want 1.5 (Decimal)", mixed, mixed.Kind())
	}

	withRational, err := Sum(MustBigInteger("1"), MustBigRational("1/3"))
	if err != nil {
		t.Fatalf("Sum(with rational) error: %v", err)
	}
	if withRational.Kind() != KindRationalValue || withRational.String() != "4/3" {
		t.Errorf("Sum(1, 1/3) = %v (%v), want 4/3 (Rational)", withRational, withRational.Kind())
	}
}

func TestMinMax(t *testing.T) {
	min, err := Min(MustBigInteger("5"), MustBigDecimal("2.5"), MustBigRational("1/2"))
	if err != nil {
		t.Fatalf("Min error: %v", err)
	}
	if min.Kind() != KindRationalValue || min.String() != "1/2" {
		t.Errorf("Min(5, 2.5, 1/2) = %v (%v), want 1/2 (Rational)", min, min.Kind())
	}

	max, err := Max(MustBigInteger("5"), MustBigDecimal("2.5"), MustBigRational("1/2"))
	if err != nil {
		t.Fatalf("Max error: %v", err)
	}
	if max.Kind() != KindRationalValue || max.String() != "5" {
		t.Errorf("Max(5, 2.5, 1/2) = %v (%v), want 5 (Rational)", max, max.Kind())
	}

	if _, err := Min(); err == nil {
		t.Errorf("Min() with no values should fail")
	}
	if _, err := Max(); err == nil {
		t.Errorf("Max() with no values should fail")
	}
}
