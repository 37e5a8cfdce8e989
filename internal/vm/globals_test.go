package vm

import "testing"

func TestGlobalsSetGet(t *testing.T) {
	var g Globals
	g.Set(5, Int(42))
	v, err := g.Get(5)
	if err != nil {
		t.Fatal(err)
	}
	if v.AsInt() != 42 {
		t.Errorf("Get(5) = %v, want 42", v)
	}
}

func TestGlobalsUndefined(t *testing.T) {
	var g Globals
	_, err := g.Get(0)
	if err == nil {
		t.Fatal("expected UndefinedGlobal")
	}
	ve, ok := err.(*Error)
	if !ok || ve.Kind != UndefinedGlobal {
		t.Errorf("expected UndefinedGlobal, got %v", err)
	}
}
