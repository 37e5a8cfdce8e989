package vm

import (
	"encoding/binary"
	"math"
)

// The functions below perform bounds-checked reads against a byte slice
// at a given offset, returning the decoded value, the offset just past
// it, and ok=false on a short read. They are shared by the constant-pool
// loader (reading the module header) and the dispatch loop (reading
// instruction operands from the code segment) — both contexts need the
// identical "never read past end" discipline spec §4.3/§4.4 requires.

func readU8At(data []byte, off int) (byte, int, bool) {
	if off+1 > len(data) {
		return 0, off, false
	}
	return data[off], off + 1, true
}

func readI32At(data []byte, off int) (int32, int, bool) {
	if off+4 > len(data) {
		return 0, off, false
	}
	return int32(binary.LittleEndian.Uint32(data[off : off+4])), off + 4, true
}

func readF64At(data []byte, off int) (float64, int, bool) {
	if off+8 > len(data) {
		return 0, off, false
	}
	bits := binary.LittleEndian.Uint64(data[off : off+8])
	return math.Float64frombits(bits), off + 8, true
}

// readLenPrefixedBytesAt reads a one-byte length L followed by L bytes.
func readLenPrefixedBytesAt(data []byte, off int) ([]byte, int, bool) {
	l, off, ok := readU8At(data, off)
	if !ok {
		return nil, off, false
	}
	end := off + int(l)
	if end > len(data) {
		return nil, off, false
	}
	return data[off:end], end, true
}

// readByte reads one byte at vm.ip, advancing it, bounds-checked against
// the loaded code segment's end.
func (vm *VM) readByte() (byte, error) {
	b, next, ok := readU8At(vm.code, vm.ip)
	if !ok {
		return 0, newError(TruncatedInstruction, vm.ip, "expected 1 byte operand, code ends at %d", vm.end)
	}
	vm.ip = next
	return b, nil
}

// readU16 reads a little-endian two-byte operand at vm.ip, advancing it.
func (vm *VM) readU16() (uint16, error) {
	v, next, ok := readU16At(vm.code, vm.ip)
	if !ok {
		return 0, newError(TruncatedInstruction, vm.ip, "expected 2 byte operand, code ends at %d", vm.end)
	}
	vm.ip = next
	return v, nil
}
