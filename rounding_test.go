package bignum

import "testing"

func TestDecideRoundAway(t *testing.T) {
	cases := []struct {
		mode          RoundingMode
		sign          int
		remZero       bool
		cmpTwiceToDiv int
		quotient      string
		want          bool
		wantErr       bool
	}{
		{Unnecessary, 1, true, 0, "3", false, false},
		{Unnecessary, 1, false, -1, "3", false, true},

		{Up, 1, false, -1, "3", true, false},
		{Up, -1, false, -1, "3", true, false},

		{Down, 1, false, -1, "3", false, false},
		{Down, -1, false, 1, "3", false, false},

		{Ceiling, 1, false, -1, "3", true, false},
		{Ceiling, -1, false, 1, "3", false, false},

		{Floor, 1, false, -1, "3", false, false},
		{Floor, -1, false, 1, "3", true, false},

		{HalfUp, 1, false, 1, "3", true, false},
		{HalfUp, 1, false, 0, "3", true, false},
		{HalfUp, 1, false, -1, "3", false, false},

		{HalfDown, 1, false, 0, "3", false, false},
		{HalfDown, 1, false, 1, "3", true, false},

		{HalfCeiling, 1, false, 0, "3", true, false},
		{HalfCeiling, -1, false, 0, "3", false, false},

		{HalfFloor, 1, false, 0, "3", false, false},
		{HalfFloor, -1, false, 0, "3", true, false},

		{HalfEven, 1, false, 0, "2", false, false},
		{HalfEven, 1, false, 0, "3", true, false},
		{HalfEven, 1, false, 1, "2", true, false},
	}
	for i, tt := range cases {
		got, err := decideRoundAway(tt.mode, tt.sign, tt.remZero, tt.cmpTwiceToDiv, tt.quotient)
		if tt.wantErr {
			if err == nil {
				t.Errorf("case %d: %v expected error", i, tt.mode)
			}
			continue
		}
		if err != nil {
			t.Fatalf("case %d: %v unexpected error: %v", i, tt.mode, err)
		}
		if got != tt.want {
			t.Errorf("case %d: decideRoundAway(%v, sign=%d, remZero=%v, cmp=%d, q=%s) = %v, want %v",
				i, tt.mode, tt.sign, tt.remZero, tt.cmpTwiceToDiv, tt.quotient, got, tt.want)
		}
	}
}

func TestLastDigitOdd(t *testing.T) {
	cases := []struct {
		digits string
		want   bool
	}{
		{"0", false},
		{"1", true},
		{"10", false},
		{"123", true},
		{"9999", true},
	}
	for _, tt := range cases {
		if got := lastDigitOdd(tt.digits); got != tt.want {
			t.Errorf("lastDigitOdd(%s) = %v, want %v", tt.digits, got, tt.want)
		}
	}
}

func TestRoundingMode_String(t *testing.T) {
	modes := []RoundingMode{
		Unnecessary, Up, Down, Ceiling, Floor,
		HalfUp, HalfDown, HalfCeiling, HalfFloor, HalfEven,
	}
	seen := make(map[string]bool)
	for _, m := range modes {
		s := m.String()
		if s == "" || s == "RoundingMode(invalid)" {
			t.Errorf("RoundingMode(%d).String() = %q", int(m), s)
		}
		if seen[s] {
			t.Errorf("duplicate String() value %q", s)
		}
		seen[s] = true
	}
}
