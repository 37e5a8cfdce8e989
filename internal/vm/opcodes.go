// Package vm implements the ClearVM bytecode interpreter: a stack-based
// virtual machine with first-class functions, closures via upvalues, and
// tagged primitive values.
package vm

// Op is a single-byte instruction tag. The numbering below is the wire
// format — it is load-bearing (the module binary format and the
// end-to-end scenarios are pinned to these exact values) and must never
// be renumbered.
type Op byte

const (
	OP_PUSH_CONST  Op = 0x00
	OP_PUSH_TRUE   Op = 0x01
	OP_PUSH_FALSE  Op = 0x02
	OP_PUSH_NIL    Op = 0x03
	OP_SET_GLOBAL  Op = 0x04
	OP_PUSH_GLOBAL Op = 0x05
	OP_SET_LOCAL   Op = 0x06
	OP_PUSH_LOCAL  Op = 0x07
	OP_INT         Op = 0x08
	OP_BOOL        Op = 0x09
	OP_NUM         Op = 0x0A
	OP_STR         Op = 0x0B
	OP_CLOCK       Op = 0x0C
	OP_PRINT       Op = 0x0D
	OP_POP         Op = 0x0E
	OP_SQUASH      Op = 0x0F

	OP_INT_NEG Op = 0x10
	OP_NUM_NEG Op = 0x11
	OP_INT_ADD Op = 0x12
	OP_NUM_ADD Op = 0x13
	OP_INT_SUB Op = 0x14
	OP_NUM_SUB Op = 0x15
	OP_INT_MUL Op = 0x16
	OP_NUM_MUL Op = 0x17
	OP_INT_DIV Op = 0x18
	OP_NUM_DIV Op = 0x19

	OP_STR_CAT Op = 0x1A
	OP_NOT     Op = 0x1B

	OP_INT_LESS    Op = 0x1C
	OP_NUM_LESS    Op = 0x1D
	OP_INT_GREATER Op = 0x1E
	OP_NUM_GREATER Op = 0x1F

	OP_EQUAL Op = 0x20

	OP_JUMP          Op = 0x21
	OP_JUMP_IF_FALSE Op = 0x22
	OP_LOOP          Op = 0x23

	OP_FUNCTION Op = 0x24
	OP_CALL     Op = 0x25
	OP_LOAD_IP  Op = 0x26
	OP_LOAD_FP  Op = 0x27

	OP_SET_RETURN  Op = 0x28
	OP_PUSH_RETURN Op = 0x29

	OP_STRUCT        Op = 0x2A
	OP_DESTRUCT      Op = 0x2B
	OP_GET_FIELD     Op = 0x2C
	OP_EXTRACT_FIELD Op = 0x2D
	OP_SET_FIELD     Op = 0x2E
	OP_INSERT_FIELD  Op = 0x2F

	OP_REF_LOCAL Op = 0x30
	OP_DEREF     Op = 0x31
	OP_SET_REF   Op = 0x32

	OP_IS_VAL_TYPE Op = 0x33
	OP_IS_OBJ_TYPE Op = 0x34

	// OpCount is one past the highest valid opcode; any byte >= OpCount
	// fails with UnknownOpcode.
	OpCount = 0x35
)

var opNames = map[Op]string{
	OP_PUSH_CONST: "PUSH_CONST", OP_PUSH_TRUE: "PUSH_TRUE", OP_PUSH_FALSE: "PUSH_FALSE",
	OP_PUSH_NIL: "PUSH_NIL", OP_SET_GLOBAL: "SET_GLOBAL", OP_PUSH_GLOBAL: "PUSH_GLOBAL",
	OP_SET_LOCAL: "SET_LOCAL", OP_PUSH_LOCAL: "PUSH_LOCAL", OP_INT: "INT", OP_BOOL: "BOOL",
	OP_NUM: "NUM", OP_STR: "STR", OP_CLOCK: "CLOCK", OP_PRINT: "PRINT", OP_POP: "POP",
	OP_SQUASH: "SQUASH", OP_INT_NEG: "INT_NEG", OP_NUM_NEG: "NUM_NEG", OP_INT_ADD: "INT_ADD",
	OP_NUM_ADD: "NUM_ADD", OP_INT_SUB: "INT_SUB", OP_NUM_SUB: "NUM_SUB", OP_INT_MUL: "INT_MUL",
	OP_NUM_MUL: "NUM_MUL", OP_INT_DIV: "INT_DIV", OP_NUM_DIV: "NUM_DIV", OP_STR_CAT: "STR_CAT",
	OP_NOT: "NOT", OP_INT_LESS: "INT_LESS", OP_NUM_LESS: "NUM_LESS", OP_INT_GREATER: "INT_GREATER",
	OP_NUM_GREATER: "NUM_GREATER", OP_EQUAL: "EQUAL", OP_JUMP: "JUMP",
	OP_JUMP_IF_FALSE: "JUMP_IF_FALSE", OP_LOOP: "LOOP", OP_FUNCTION: "FUNCTION", OP_CALL: "CALL",
	OP_LOAD_IP: "LOAD_IP", OP_LOAD_FP: "LOAD_FP", OP_SET_RETURN: "SET_RETURN",
	OP_PUSH_RETURN: "PUSH_RETURN", OP_STRUCT: "STRUCT", OP_DESTRUCT: "DESTRUCT",
	OP_GET_FIELD: "GET_FIELD", OP_EXTRACT_FIELD: "EXTRACT_FIELD", OP_SET_FIELD: "SET_FIELD",
	OP_INSERT_FIELD: "INSERT_FIELD", OP_REF_LOCAL: "REF_LOCAL", OP_DEREF: "DEREF",
	OP_SET_REF: "SET_REF", OP_IS_VAL_TYPE: "IS_VAL_TYPE", OP_IS_OBJ_TYPE: "IS_OBJ_TYPE",
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "UNKNOWN"
}
