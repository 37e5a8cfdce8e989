package vm

import "testing"

func TestStackPushPop(t *testing.T) {
	var s Stack
	if err := s.Push(Int(1)); err != nil {
		t.Fatal(err)
	}
	if err := s.Push(Int(2)); err != nil {
		t.Fatal(err)
	}
	v, err := s.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if v.AsInt() != 2 {
		t.Errorf("pop = %v, want 2", v)
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
}

func TestStackUnderflow(t *testing.T) {
	var s Stack
	_, err := s.Pop()
	if err == nil {
		t.Fatal("expected StackUnderflow, got nil")
	}
	ve, ok := err.(*Error)
	if !ok || ve.Kind != StackUnderflow {
		t.Errorf("expected StackUnderflow, got %v", err)
	}
}

func TestStackOverflow(t *testing.T) {
	var s Stack
	for i := 0; i < StackMax; i++ {
		if err := s.Push(Int(0)); err != nil {
			t.Fatalf("unexpected error at push %d: %v", i, err)
		}
	}
	if err := s.Push(Int(0)); err == nil {
		t.Fatal("expected StackOverflow")
	}
}

func TestStackPeek(t *testing.T) {
	var s Stack
	s.Push(Int(1))
	s.Push(Int(2))
	s.Push(Int(3))
	v, err := s.Peek(1)
	if err != nil {
		t.Fatal(err)
	}
	if v.AsInt() != 2 {
		t.Errorf("peek(1) = %v, want 2", v)
	}
	if _, err := s.Peek(5); err == nil {
		t.Fatal("expected PeekUnderRange")
	}
}

func TestStackLocals(t *testing.T) {
	var s Stack
	s.Push(Int(10))
	s.Push(Int(20))
	s.fp = 0
	if s.LocalCount() != 2 {
		t.Fatalf("LocalCount() = %d, want 2", s.LocalCount())
	}
	if err := s.SetLocal(1, Int(99)); err != nil {
		t.Fatal(err)
	}
	v, err := s.GetLocal(1)
	if err != nil {
		t.Fatal(err)
	}
	if v.AsInt() != 99 {
		t.Errorf("GetLocal(1) = %v, want 99", v)
	}
	if _, err := s.GetLocal(2); err == nil {
		t.Fatal("expected LocalOutOfRange")
	}
}

func TestStackPopNPushN(t *testing.T) {
	var s Stack
	s.Push(Int(1))
	s.Push(Int(2))
	s.Push(Int(3))
	dst := make([]Value, 3)
	if err := s.PopN(dst, 3); err != nil {
		t.Fatal(err)
	}
	if dst[0].AsInt() != 1 || dst[1].AsInt() != 2 || dst[2].AsInt() != 3 {
		t.Errorf("PopN = %v, want [1 2 3]", dst)
	}
	if err := s.PushN(dst); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Errorf("len after PushN = %d, want 3", s.Len())
	}
}
