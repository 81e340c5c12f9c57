package bignum

import "testing"

func TestNewBigIntegerFromString(t *testing.T) {
	cases := []struct {
		in, want string
		wantErr  bool
	}{
		{"0", "0", false},
		{"-0", "0", false},
		{"007", "7", false},
		{"-007", "-7", false},
		{"+42", "42", false},
		{"123456789012345678901234567890", "123456789012345678901234567890", false},
		{"", "", true},
		{"abc", "", true},
		{"1.5", "", true},
	}
	for _, tt := range cases {
		got, err := NewBigIntegerFromString(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewBigIntegerFromString(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NewBigIntegerFromString(%q) unexpected error: %v", tt.in, err)
		}
		if got.String() != tt.want {
			t.Errorf("NewBigIntegerFromString(%q) = %s, want %s", tt.in, got.String(), tt.want)
		}
	}
}

func TestBigInteger_Arithmetic(t *testing.T) {
	a := MustBigInteger("123")
	b := MustBigInteger("45")
	if got := a.Plus(b).String(); got != "168" {
		t.Errorf("Plus = %s, want 168", got)
	}
	if got := a.Minus(b).String(); got != "78" {
		t.Errorf("Minus = %s, want 78", got)
	}
	if got := a.Times(b).String(); got != "5535" {
		t.Errorf("Times = %s, want 5535", got)
	}
	q, r, err := a.QuotientAndRemainder(b)
	if err != nil {
		t.Fatalf("QuotientAndRemainder error: %v", err)
	}
	if q.String() != "2" || r.String() != "33" {
		t.Errorf("QuotientAndRemainder = (%s,%s), want (2,33)", q, r)
	}
}

func TestBigInteger_DividedBy(t *testing.T) {
	ten := MustBigInteger("10")
	three := MustBigInteger("3")
	cases := []struct {
		mode RoundingMode
		want string
	}{
		{Down, "3"},
		{Up, "4"},
		{Floor, "3"},
		{Ceiling, "4"},
		{HalfUp, "3"},
	}
	for _, tt := range cases {
		got, err := ten.DividedBy(three, tt.mode)
		if err != nil {
			t.Fatalf("DividedBy(%v) error: %v", tt.mode, err)
		}
		if got.String() != tt.want {
			t.Errorf("10/3 under %v = %s, want %s", tt.mode, got, tt.want)
		}
	}
	if _, err := ten.DividedBy(three, Unnecessary); err == nil {
		t.Errorf("10/3 under Unnecessary should fail")
	}
	if _, err := ten.DividedBy(IntZero, Down); err == nil {
		t.Errorf("division by zero should fail")
	}
}

func TestBigInteger_Sqrt(t *testing.T) {
	cases := []struct {
		n       string
		mode    RoundingMode
		want    string
		wantErr bool
	}{
		{"10", Down, "3", false},
		{"10", Floor, "3", false},
		{"10", Up, "4", false},
		{"10", HalfUp, "3", false},
		{"10", Unnecessary, "", true},
		{"9", Unnecessary, "3", false},
		{"9", Down, "3", false},
	}
	for _, tt := range cases {
		got, err := MustBigInteger(tt.n).Sqrt(tt.mode)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Sqrt(%s, %v) expected error", tt.n, tt.mode)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Sqrt(%s, %v) unexpected error: %v", tt.n, tt.mode, err)
		}
		if got.String() != tt.want {
			t.Errorf("Sqrt(%s, %v) = %s, want %s", tt.n, tt.mode, got, tt.want)
		}
	}
	if _, err := MustBigInteger("-1").Sqrt(Down); err == nil {
		t.Errorf("Sqrt of negative should fail")
	}
}

func TestBigInteger_ModAndInverse(t *testing.T) {
	a := MustBigInteger("-7")
	m := MustBigInteger("3")
	got, err := a.Mod(m)
	if err != nil {
		t.Fatalf("Mod error: %v", err)
	}
	if got.String() != "2" {
		t.Errorf("-7 mod 3 = %s, want 2", got)
	}

	inv, err := MustBigInteger("3").ModInverse(MustBigInteger("11"))
	if err != nil {
		t.Fatalf("ModInverse error: %v", err)
	}
	if inv.String() != "4" {
		t.Errorf("3^-1 mod 11 = %s, want 4", inv)
	}

	if _, err := MustBigInteger("2").ModInverse(MustBigInteger("4")); err == nil {
		t.Errorf("ModInverse(2,4) should fail")
	} else if kind, ok := Kind(err); !ok || kind != KindNoInverse {
		t.Errorf("error kind = %v, want NoInverse", kind)
	}

	mp, err := MustBigInteger("4").ModPow(MustBigInteger("13"), MustBigInteger("497"))
	if err != nil {
		t.Fatalf("ModPow error: %v", err)
	}
	if mp.String() != "445" {
		t.Errorf("4^13 mod 497 = %s, want 445", mp)
	}
}

func TestBigInteger_GCDLCM(t *testing.T) {
	if got := MustBigInteger("12").GCD(MustBigInteger("18")).String(); got != "6" {
		t.Errorf("GCD(12,18) = %s, want 6", got)
	}
	if got := MustBigInteger("4").LCM(MustBigInteger("6")).String(); got != "12" {
		t.Errorf("LCM(4,6) = %s, want 12", got)
	}
}

func TestBigInteger_Bitwise(t *testing.T) {
	a := MustBigInteger("12")
	b := MustBigInteger("10")
	if got := a.And(b).String(); got != "8" {
		t.Errorf("And = %s, want 8", got)
	}
	if got := a.Or(b).String(); got != "14" {
		t.Errorf("Or = %s, want 14", got)
	}
	if got := a.Xor(b).String(); got != "6" {
		t.Errorf("Xor = %s, want 6", got)
	}
	if got := MustBigInteger("5").Not().String(); got != "-6" {
		t.Errorf("Not(5) = %s, want -6", got)
	}
}

func TestBigInteger_ShiftAndBitLength(t *testing.T) {
	if got := MustBigInteger("1").ShiftedLeft(4).String(); got != "16" {
		t.Errorf("1<<4 = %s, want 16", got)
	}
	if got := MustBigInteger("20").ShiftedRight(2).String(); got != "5" {
		t.Errorf("20>>2 = %s, want 5", got)
	}
	if got := MustBigInteger("-20").ShiftedRight(2).String(); got != "-5" {
		t.Errorf("-20>>2 = %s, want -5", got)
	}
	if got := MustBigInteger("255").GetBitLength(); got != 8 {
		t.Errorf("GetBitLength(255) = %d, want 8", got)
	}
	if got := MustBigInteger("0").GetLowestSetBit(); got != -1 {
		t.Errorf("GetLowestSetBit(0) = %d, want -1", got)
	}
	if got := MustBigInteger("12").GetLowestSetBit(); got != 2 {
		t.Errorf("GetLowestSetBit(12) = %d, want 2", got)
	}
}

func TestBigInteger_BytesRoundTrip(t *testing.T) {
	cases := []struct {
		n            string
		signedBytes  []byte
	}{
		{"-128", []byte{0xFF, 0x80}},
		{"127", []byte{0x7F}},
		{"-1", []byte{0xFF}},
		{"0", []byte{0x00}},
		{"128", []byte{0x00, 0x80}},
	}
	for _, tt := range cases {
		got, err := MustBigInteger(tt.n).ToBytes(true)
		if err != nil {
			t.Fatalf("ToBytes(%s) error: %v", tt.n, err)
		}
		if len(got) != len(tt.signedBytes) {
			t.Fatalf("ToBytes(%s) = %v, want %v", tt.n, got, tt.signedBytes)
		}
		for i := range got {
			if got[i] != tt.signedBytes[i] {
				t.Errorf("ToBytes(%s) = %v, want %v", tt.n, got, tt.signedBytes)
				break
			}
		}
		back, err := FromBytes(tt.signedBytes, true)
		if err != nil {
			t.Fatalf("FromBytes(%v) error: %v", tt.signedBytes, err)
		}
		if back.String() != tt.n {
			t.Errorf("FromBytes(%v) = %s, want %s", tt.signedBytes, back, tt.n)
		}
	}
}

func TestBigInteger_BaseConversion(t *testing.T) {
	n := MustBigInteger("255")
	s, err := n.ToBase(16)
	if err != nil {
		t.Fatalf("ToBase error: %v", err)
	}
	if s != "ff" {
		t.Errorf("255 in base 16 = %s, want ff", s)
	}
	back, err := FromBase("ff", 16)
	if err != nil {
		t.Fatalf("FromBase error: %v", err)
	}
	if !back.Equal(n) {
		t.Errorf("FromBase(ff,16) = %s, want 255", back)
	}
}

func TestBigInteger_CompareAndEqual(t *testing.T) {
	if MustBigInteger("1").CompareTo(MustBigInteger("2")) >= 0 {
		t.Errorf("1 should compare less than 2")
	}
	if !MustBigInteger("7").Equal(MustBigInteger("7")) {
		t.Errorf("7 should equal 7")
	}
}

func TestBigInteger_EvenOdd(t *testing.T) {
	if !MustBigInteger("4").IsEven() {
		t.Errorf("4 should be even")
	}
	if !MustBigInteger("5").IsOdd() {
		t.Errorf("5 should be odd")
	}
}

func TestBigInteger_BitMutators(t *testing.T) {
	a := MustBigInteger("5") // 0b101
	if got := a.SetBit(1).String(); got != "7" {
		t.Errorf("SetBit(5,1) = %s, want 7", got)
	}
	if got := a.ClearBit(0).String(); got != "4" {
		t.Errorf("ClearBit(5,0) = %s, want 4", got)
	}
	if got := a.FlipBit(0).String(); got != "4" {
		t.Errorf("FlipBit(5,0) = %s, want 4", got)
	}
	if got := a.FlipBit(1).String(); got != "7" {
		t.Errorf("FlipBit(5,1) = %s, want 7", got)
	}
}

func TestBigInteger_MinMax(t *testing.T) {
	a := MustBigInteger("3")
	b := MustBigInteger("7")
	if got := a.Min(b).String(); got != "3" {
		t.Errorf("Min(3,7) = %s, want 3", got)
	}
	if got := a.Max(b).String(); got != "7" {
		t.Errorf("Max(3,7) = %s, want 7", got)
	}
}

func TestBigInteger_TextMarshaling(t *testing.T) {
	a := MustBigInteger("42")
	text, err := a.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText error: %v", err)
	}
	var b BigInteger
	if err := b.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("round trip %s != %s", a, b)
	}
}
