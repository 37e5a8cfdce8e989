package vm

import (
	"fmt"
	"strings"
)

// DisassembleModule decodes a module's constant pool and code segment and
// renders every instruction as one line, for the CLI's disasm subcommand.
// It builds a throwaway VM rather than duplicating loadConstants, since the
// loader's only side effect (string interning) is harmless to discard.
func DisassembleModule(data []byte) (string, error) {
	vm := New(nil)
	codeStart, err := vm.loadConstants(data)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	ip := codeStart
	for ip < len(data) {
		opByte := data[ip]
		op := Op(opByte)
		if int(op) >= OpCount {
			return b.String(), newError(UnknownOpcode, ip, "byte 0x%02X is not a valid opcode", opByte)
		}
		b.WriteString(fmt.Sprintf("%04d %s\n", ip, disassembleOperand(data, ip, op)))
		ip++
		switch operandWidth(op) {
		case widthU8:
			ip++
		case widthU8x2:
			ip += 2
		case widthU16:
			ip += 2
		}
	}
	return b.String(), nil
}

// disassembleOperand renders op plus whatever operand bytes follow it at
// ip+1 in code, without touching any VM cursor. Grounded in the teacher's
// disasm.go simpleInstruction/constantInstruction split, rebuilt against
// ClearVM's own operand widths (spec §6.1's abbreviated table plus the
// widths pinned by the §8 scenario byte sequences).
func disassembleOperand(code []byte, ip int, op Op) string {
	switch operandWidth(op) {
	case widthU8:
		if b, _, ok := readU8At(code, ip+1); ok {
			return fmt.Sprintf("%-16s %d", op, b)
		}
	case widthU8x2:
		a, _, ok1 := readU8At(code, ip+1)
		b, _, ok2 := readU8At(code, ip+2)
		if ok1 && ok2 {
			return fmt.Sprintf("%-16s %d %d", op, a, b)
		}
	case widthU16:
		if v, _, ok := readU16At(code, ip+1); ok {
			return fmt.Sprintf("%-16s %d", op, v)
		}
	}
	return op.String()
}

type operandKind int

const (
	widthNone operandKind = iota
	widthU8
	widthU8x2
	widthU16
)

// operandWidth reports how many operand bytes follow op in the code
// segment. This table is the single source of truth the loader-adjacent
// decode helpers, the disassembler, and every ops_*.go handler agree with.
func operandWidth(op Op) operandKind {
	switch op {
	case OP_PUSH_CONST, OP_SET_GLOBAL, OP_PUSH_GLOBAL, OP_SET_LOCAL, OP_PUSH_LOCAL,
		OP_JUMP, OP_JUMP_IF_FALSE, OP_LOOP, OP_CALL,
		OP_STRUCT, OP_DESTRUCT, OP_GET_FIELD, OP_SET_FIELD,
		OP_REF_LOCAL, OP_IS_VAL_TYPE, OP_IS_OBJ_TYPE:
		return widthU8
	case OP_EXTRACT_FIELD, OP_INSERT_FIELD:
		return widthU8x2
	case OP_FUNCTION:
		return widthU16
	default:
		return widthNone
	}
}

func readU16At(data []byte, off int) (uint16, int, bool) {
	if off+2 > len(data) {
		return 0, off, false
	}
	return uint16(data[off]) | uint16(data[off+1])<<8, off + 2, true
}
