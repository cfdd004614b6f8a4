package question

import "testing"

func TestAsString(t *testing.T) {
	cases := []struct {
		in   interface{}
		want string
	}{
		{"x", "x"},
		{nil, ""},
		{true, "true"},
		{false, "false"},
		{42.0, "42"},
		{2.5, "2.5"},
		{7, "7"},
	}
	for _, c := range cases {
		if got := AsString(c.in); got != c.want {
			t.Errorf("AsString(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAsIntRejectsFractions(t *testing.T) {
	if _, err := AsInt(1.5); err == nil {
		t.Error("1.5 must not coerce to int")
	}
	if _, err := AsInt("abc"); err == nil {
		t.Error("non-numeric string must not coerce to int")
	}
	if n, err := AsInt(" 12 "); err != nil || n != 12 {
		t.Errorf("AsInt(\" 12 \") = %d, %v", n, err)
	}
	if n, err := AsInt(3.0); err != nil || n != 3 {
		t.Errorf("AsInt(3.0) = %d, %v", n, err)
	}
}

func TestAsNumberIntegerWidths(t *testing.T) {
	// BSON decoding yields int32 for small integers; imports hand over
	// whatever width they were written with.
	ins := []interface{}{int8(7), int16(7), int32(7), int64(7), uint(7), uint8(7), uint16(7), uint32(7), uint64(7)}
	for _, v := range ins {
		if n, err := AsNumber(v); err != nil || n != 7 {
			t.Errorf("AsNumber(%T(%v)) = %v, %v", v, v, n, err)
		}
		if n, err := AsInt(v); err != nil || n != 7 {
			t.Errorf("AsInt(%T(%v)) = %v, %v", v, v, n, err)
		}
	}
}

func TestAsFlag(t *testing.T) {
	ones := []interface{}{true, 1, int32(1), 2.0, "true", "1", "yes", "correct", "YES", " Correct "}
	zeros := []interface{}{false, 0, int32(0), -1.0, "false", "0", "no", "", "banana", nil}
	for _, v := range ones {
		if AsFlag(v) != 1 {
			t.Errorf("AsFlag(%v) = 0, want 1", v)
		}
	}
	for _, v := range zeros {
		if AsFlag(v) != 0 {
			t.Errorf("AsFlag(%v) = 1, want 0", v)
		}
	}
}

func TestAsNumberParseError(t *testing.T) {
	if _, err := AsNumber("nope"); err == nil {
		t.Fatal("want error")
	} else if _, ok := err.(*ParseError); !ok {
		t.Fatalf("want *ParseError, got %T", err)
	}
}
