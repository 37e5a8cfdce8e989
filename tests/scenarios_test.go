// Package tests reproduces the end-to-end module scenarios from the
// instruction set specification: S1-S4 use the specification's literal
// byte sequences, S5-S7 are hand-assembled from their descriptions. Each
// module is executed through the public vm.New/Execute API and checked
// against the exact stdout it must produce.
package tests

import (
	"bytes"
	"testing"

	"github.com/clearvm/clearvm/internal/vm"
)

func runModule(t *testing.T, data []byte) string {
	t.Helper()
	var out bytes.Buffer
	machine := vm.New(&out)
	if err := machine.Execute(data); err != nil {
		t.Fatalf("Execute failed: %v\noutput so far: %q", err, out.String())
	}
	machine.Teardown()
	return out.String()
}

func TestScenarioS1PrintConstant(t *testing.T) {
	data := []byte{
		0x01, 0x02, 0x05, 'h', 'e', 'l', 'l', 'o',
		0x00, 0x00, 0x0D,
	}
	if got := runModule(t, data); got != "hello\n" {
		t.Errorf("got %q, want %q", got, "hello\n")
	}
}

func TestScenarioS2IntArithmetic(t *testing.T) {
	data := []byte{
		0x02, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x01, 0x12, 0x08, 0x0B, 0x0D,
	}
	if got := runModule(t, data); got != "5\n" {
		t.Errorf("got %q, want %q", got, "5\n")
	}
}

func TestScenarioS3GlobalSetGet(t *testing.T) {
	data := []byte{
		0x01, 0x00, 0x07, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x04, 0x00, 0x05, 0x00, 0x0B, 0x0D,
	}
	if got := runModule(t, data); got != "7\n" {
		t.Errorf("got %q, want %q", got, "7\n")
	}
}

func TestScenarioS4Conditional(t *testing.T) {
	data := []byte{
		0x02, 0x02, 0x03, 'y', 'e', 's', 0x02, 0x02, 'n', 'o',
		0x02, 0x22, 0x03, 0x00, 0x00, 0x21, 0x02, 0x00, 0x01, 0x0D,
	}
	if got := runModule(t, data); got != "no\n" {
		t.Errorf("got %q, want %q", got, "no\n")
	}
}

func TestScenarioS5LoopCounting(t *testing.T) {
	header := []byte{
		0x03,
		0x00, 0x00, 0x00, 0x00, 0x00, // CONST_INT 0
		0x00, 0x01, 0x00, 0x00, 0x00, // CONST_INT 1
		0x00, 0x03, 0x00, 0x00, 0x00, // CONST_INT 3
	}
	code := []byte{
		0x00, 0x00, // PUSH_CONST 0      (counter = 0)
		0x07, 0x00, // PUSH_LOCAL 0
		0x0B,       // STR
		0x0D,       // PRINT
		0x07, 0x00, // PUSH_LOCAL 0
		0x00, 0x01, // PUSH_CONST 1
		0x12,       // INT_ADD
		0x06, 0x00, // SET_LOCAL 0
		0x07, 0x00, // PUSH_LOCAL 0
		0x00, 0x02, // PUSH_CONST 2 (3)
		0x1C,       // INT_LESS
		0x22, 0x02, // JUMP_IF_FALSE +2 -> exit (skips LOOP)
		0x23, 0x14, // LOOP -20 -> back to PUSH_LOCAL 0 loop start
		0x0E, // POP (exit target)
	}
	data := append(header, code...)
	if got := runModule(t, data); got != "0\n1\n2\n" {
		t.Errorf("got %q, want %q", got, "0\n1\n2\n")
	}
}

func TestScenarioS6StructRoundTrip(t *testing.T) {
	header := []byte{
		0x03,
		0x00, 0x0A, 0x00, 0x00, 0x00, // CONST_INT 10
		0x00, 0x14, 0x00, 0x00, 0x00, // CONST_INT 20
		0x00, 0x1E, 0x00, 0x00, 0x00, // CONST_INT 30
	}
	code := []byte{
		0x00, 0x00, // PUSH_CONST 0 (10)
		0x00, 0x01, // PUSH_CONST 1 (20)
		0x00, 0x02, // PUSH_CONST 2 (30)
		0x2A, 0x03, // STRUCT 3
		0x2C, 0x01, // GET_FIELD 1
		0x0B, // STR
		0x0D, // PRINT
	}
	data := append(header, code...)
	if got := runModule(t, data); got != "20\n" {
		t.Errorf("got %q, want %q", got, "20\n")
	}
}

func TestScenarioS7UpvalueCapture(t *testing.T) {
	header := []byte{
		0x01,
		0x00, 0x05, 0x00, 0x00, 0x00, // CONST_INT 5
	}
	code := []byte{
		0x00, 0x00, // PUSH_CONST 0  (a = 5)
		0x30, 0x00, // REF_LOCAL 0   (push upvalue referencing a)
		0x0F, // SQUASH        (drop a, closing the upvalue, keep upvalue on top)
		0x31, // DEREF
		0x0B, // STR
		0x0D, // PRINT
	}
	data := append(header, code...)
	if got := runModule(t, data); got != "5\n" {
		t.Errorf("got %q, want %q", got, "5\n")
	}
}
