package bignum

import "testing"

func TestCanonical(t *testing.T) {
	cases := []struct {
		neg    bool
		digits string
		want   string
	}{
		{false, "007", "7"},
		{true, "007", "-7"},
		{false, "0", "0"},
		{true, "0", "0"},
		{true, "000", "0"},
	}
	for _, tt := range cases {
		if got := canonical(tt.neg, tt.digits); got != tt.want {
			t.Errorf("canonical(%v, %q) = %q, want %q", tt.neg, tt.digits, got, tt.want)
		}
	}
}

func TestSplitSign(t *testing.T) {
	cases := []struct {
		in         string
		wantNeg    bool
		wantDigits string
	}{
		{"-42", true, "42"},
		{"+42", false, "42"},
		{"42", false, "42"},
		{"", false, "0"},
	}
	for _, tt := range cases {
		neg, digits := splitSign(tt.in)
		if neg != tt.wantNeg || digits != tt.wantDigits {
			t.Errorf("splitSign(%q) = (%v,%q), want (%v,%q)", tt.in, neg, digits, tt.wantNeg, tt.wantDigits)
		}
	}
}

func TestCmpMagnitude(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1", "2", -1},
		{"10", "2", 1},
		{"007", "7", 0},
		{"100", "99", 1},
	}
	for _, tt := range cases {
		if got := cmpMagnitude(tt.a, tt.b); got != tt.want {
			t.Errorf("cmpMagnitude(%q,%q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSignOf(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"-0", 0},
		{"5", 1},
		{"-5", -1},
	}
	for _, tt := range cases {
		if got := signOf(tt.in); got != tt.want {
			t.Errorf("signOf(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNegateAndAbsString(t *testing.T) {
	if got := negateString("5"); got != "-5" {
		t.Errorf("negateString(5) = %s, want -5", got)
	}
	if got := negateString("-5"); got != "5" {
		t.Errorf("negateString(-5) = %s, want 5", got)
	}
	if got := negateString("0"); got != "0" {
		t.Errorf("negateString(0) = %s, want 0", got)
	}
	if got := absString("-5"); got != "5" {
		t.Errorf("absString(-5) = %s, want 5", got)
	}
	if got := absString("5"); got != "5" {
		t.Errorf("absString(5) = %s, want 5", got)
	}
}

func TestPadLeft(t *testing.T) {
	if got := padLeft("7", 3); got != "007" {
		t.Errorf("padLeft(7,3) = %s, want 007", got)
	}
	if got := padLeft("1234", 3); got != "1234" {
		t.Errorf("padLeft(1234,3) = %s, want 1234", got)
	}
}
