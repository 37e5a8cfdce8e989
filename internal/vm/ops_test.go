package vm

import "testing"

func newTestVM() *VM {
	vm := New(nil)
	vm.code = []byte{}
	vm.end = 0
	return vm
}

func TestOpIntArith(t *testing.T) {
	vm := newTestVM()
	vm.stack.Push(Int(10))
	vm.stack.Push(Int(3))
	if err := opIntAdd(vm); err != nil {
		t.Fatal(err)
	}
	v, _ := vm.stack.Pop()
	if v.AsInt() != 13 {
		t.Errorf("10+3 = %v, want 13", v)
	}

	vm.stack.Push(Int(10))
	vm.stack.Push(Int(0))
	if err := opIntDiv(vm); err == nil {
		t.Fatal("expected DivideByZero")
	}
}

func TestOpStrCatTypeCheck(t *testing.T) {
	vm := newTestVM()
	vm.stack.Push(Int(1))
	vm.stack.Push(Obj(vm.heap.InternString("x")))
	err := opStrCat(vm)
	if err == nil {
		t.Fatal("expected NonStringConcat")
	}
	ve, ok := err.(*Error)
	if !ok || ve.Kind != NonStringConcat {
		t.Errorf("expected NonStringConcat, got %v", err)
	}
}

func TestOpStrCatConcatenates(t *testing.T) {
	vm := newTestVM()
	vm.stack.Push(Obj(vm.heap.InternString("foo")))
	vm.stack.Push(Obj(vm.heap.InternString("bar")))
	if err := opStrCat(vm); err != nil {
		t.Fatal(err)
	}
	v, _ := vm.stack.Pop()
	if v.AsObj().str != "foobar" {
		t.Errorf("got %q, want foobar", v.AsObj().str)
	}
}

func TestCastIntSaturates(t *testing.T) {
	vm := newTestVM()
	vm.stack.Push(Num(1e30))
	if err := opCastInt(vm); err != nil {
		t.Fatal(err)
	}
	v, _ := vm.stack.Pop()
	if v.AsInt() != 2147483647 {
		t.Errorf("saturated cast = %v, want MaxInt32", v)
	}
}

func TestCastStrFormatsNumWithSevenDigits(t *testing.T) {
	vm := newTestVM()
	vm.stack.Push(Num(1.5))
	if err := opCastStr(vm); err != nil {
		t.Fatal(err)
	}
	v, _ := vm.stack.Pop()
	if v.AsObj().str != "1.5000000" {
		t.Errorf("got %q, want 1.5000000", v.AsObj().str)
	}
}

func TestStructFieldRoundTrip(t *testing.T) {
	vm := newTestVM()
	vm.stack.Push(Int(10))
	vm.stack.Push(Int(20))
	vm.stack.Push(Int(30))
	n := byte(3)
	obj := vm.heap.AllocateStruct(int(n))
	if err := vm.stack.PopN(obj.fields, int(n)); err != nil {
		t.Fatal(err)
	}
	if obj.fields[1].AsInt() != 20 {
		t.Errorf("field 1 = %v, want 20", obj.fields[1])
	}
}

func TestUpvalueCloseOnPop(t *testing.T) {
	vm := newTestVM()
	vm.stack.Push(Int(5)) // local slot 0, "a"
	uv := vm.upvalues.refLocal(vm.heap, 0)
	if !uv.open {
		t.Fatal("expected upvalue to start open")
	}

	// Mutating the stack slot after capture must still be visible through
	// the open upvalue.
	vm.stack.slots[0] = Int(9)
	if vm.stack.slots[uv.slotIdx].AsInt() != 9 {
		t.Fatal("open upvalue lost track of its slot")
	}

	vm.upvalues.closeSlot(0, vm.stack.slots[0])
	if uv.open {
		t.Fatal("expected upvalue to be closed")
	}
	if uv.closed.AsInt() != 9 {
		t.Errorf("closed value = %v, want 9", uv.closed)
	}
}

func TestIsObjTypeFalseForNonObj(t *testing.T) {
	vm := newTestVM()
	vm.stack.Push(Int(1))
	vm.code = []byte{0xFF, byte(ObjString)}
	vm.ip = 1
	if err := opIsObjType(vm); err != nil {
		t.Fatal(err)
	}
	v, _ := vm.stack.Pop()
	if v.AsBool() != false {
		t.Error("expected false for a non-Obj value")
	}
}
