package vm

import "testing"

func TestLoadConstantsTruncatedHeader(t *testing.T) {
	vm := New(nil)
	_, err := vm.loadConstants([]byte{2, 0x00, 0x01, 0x00, 0x00, 0x00})
	if err == nil {
		t.Fatal("expected TruncatedHeader for a declared-but-missing second constant")
	}
	ve, ok := err.(*Error)
	if !ok || ve.Kind != TruncatedHeader {
		t.Errorf("expected TruncatedHeader, got %v", err)
	}
}

func TestLoadConstantsUnknownTag(t *testing.T) {
	vm := New(nil)
	_, err := vm.loadConstants([]byte{1, 0xFF})
	if err == nil {
		t.Fatal("expected UnknownConstantTag")
	}
	ve, ok := err.(*Error)
	if !ok || ve.Kind != UnknownConstantTag {
		t.Errorf("expected UnknownConstantTag, got %v", err)
	}
}

func TestLoadConstantsAllKinds(t *testing.T) {
	vm := New(nil)
	data := []byte{
		3,
		byte(CONST_INT), 0x07, 0x00, 0x00, 0x00,
		byte(CONST_NUM), 0, 0, 0, 0, 0, 0, 0xf0, 0x3f, // 1.0
		byte(CONST_STR), 2, 'h', 'i',
	}
	off, err := vm.loadConstants(data)
	if err != nil {
		t.Fatal(err)
	}
	if off != len(data) {
		t.Errorf("codeStart = %d, want %d", off, len(data))
	}
	if vm.constants.Len() != 3 {
		t.Fatalf("expected 3 constants, got %d", vm.constants.Len())
	}
	c0, _ := vm.constants.Get(0)
	if c0.AsInt() != 7 {
		t.Errorf("constant 0 = %v, want Int(7)", c0)
	}
	c2, _ := vm.constants.Get(2)
	if c2.AsObj().str != "hi" {
		t.Errorf("constant 2 = %q, want hi", c2.AsObj().str)
	}
}
