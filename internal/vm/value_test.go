package vm

import "testing"

func TestValueEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil==nil", Nil(), Nil(), true},
		{"int==int", Int(3), Int(3), true},
		{"int!=int", Int(3), Int(4), false},
		{"bool==bool", Bool(true), Bool(true), true},
		{"num approx", Num(1.0), Num(1.0 + 1e-9), true},
		{"num distinct", Num(1.0), Num(1.1), false},
		{"different tags", Int(1), Num(1), false},
		{"ip==ip", IPVal(10), IPVal(10), true},
		{"fp!=fp", FPVal(1), FPVal(2), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Equal(c.b); got != c.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestValueEqualInternedStrings(t *testing.T) {
	h := newHeap()
	a := h.InternString("same")
	b := h.InternString("same")
	if a != b {
		t.Fatalf("interning did not dedupe identical strings")
	}
	if !Obj(a).Equal(Obj(b)) {
		t.Errorf("interned strings with equal bytes must compare equal")
	}
}

func TestIsPointerValue(t *testing.T) {
	if Int(1).IsPointerValue() {
		t.Error("Int should not be a pointer value")
	}
	if !IPVal(0).IsPointerValue() {
		t.Error("IP should be a pointer value")
	}
	if !FPVal(0).IsPointerValue() {
		t.Error("FP should be a pointer value")
	}
}
