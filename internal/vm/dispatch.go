package vm

// run is the main fetch-decode-execute loop: read one opcode byte, look up
// its handler, invoke it. Every handler is responsible for reading its own
// operand bytes off vm.code via vm.readByte/vm.readU16. The teacher's
// switch-based loop is restructured here as a table of function pointers,
// since ClearVM's opcode space (0x00-0x34) is dense enough that a table
// indexes better than a switch falls through. A handler error that carries
// no opcode (one raised by the stack, globals or constant pool) is tagged
// with the failing opcode and its position before it is returned.
func (vm *VM) run() error {
	for vm.ip < vm.end {
		opIP := vm.ip
		opByte, err := vm.readByte()
		if err != nil {
			return err
		}
		op := Op(opByte)
		if int(op) >= OpCount || vm.handlers[op] == nil {
			return newError(UnknownOpcode, opIP, "byte 0x%02X is not a valid opcode", opByte)
		}

		if DebugDis {
			vm.traceDisassemble(opIP, op)
		}

		if err := vm.handlers[op](vm); err != nil {
			if ve, ok := err.(*Error); ok && ve.Op == "" {
				ve.Op = op.String()
				if ve.IP < 0 {
					ve.IP = opIP
				}
			}
			return err
		}

		if DebugStack {
			vm.traceStack()
		}
	}
	return nil
}

// installHandlers wires every opcode to its implementation. Grouped by the
// same families the ops_*.go files are split into.
func (vm *VM) installHandlers() {
	h := &vm.handlers

	h[OP_PUSH_CONST] = opPushConst
	h[OP_PUSH_TRUE] = opPushTrue
	h[OP_PUSH_FALSE] = opPushFalse
	h[OP_PUSH_NIL] = opPushNil
	h[OP_POP] = opPop
	h[OP_SQUASH] = opSquash

	h[OP_SET_GLOBAL] = opSetGlobal
	h[OP_PUSH_GLOBAL] = opPushGlobal
	h[OP_SET_LOCAL] = opSetLocal
	h[OP_PUSH_LOCAL] = opPushLocal

	h[OP_INT] = opCastInt
	h[OP_BOOL] = opCastBool
	h[OP_NUM] = opCastNum
	h[OP_STR] = opCastStr

	h[OP_INT_NEG] = opIntNeg
	h[OP_NUM_NEG] = opNumNeg
	h[OP_INT_ADD] = opIntAdd
	h[OP_NUM_ADD] = opNumAdd
	h[OP_INT_SUB] = opIntSub
	h[OP_NUM_SUB] = opNumSub
	h[OP_INT_MUL] = opIntMul
	h[OP_NUM_MUL] = opNumMul
	h[OP_INT_DIV] = opIntDiv
	h[OP_NUM_DIV] = opNumDiv
	h[OP_STR_CAT] = opStrCat
	h[OP_NOT] = opNot
	h[OP_INT_LESS] = opIntLess
	h[OP_NUM_LESS] = opNumLess
	h[OP_INT_GREATER] = opIntGreater
	h[OP_NUM_GREATER] = opNumGreater
	h[OP_EQUAL] = opEqual

	h[OP_JUMP] = opJump
	h[OP_JUMP_IF_FALSE] = opJumpIfFalse
	h[OP_LOOP] = opLoop

	h[OP_FUNCTION] = opFunction
	h[OP_CALL] = opCall
	h[OP_LOAD_IP] = opLoadIP
	h[OP_LOAD_FP] = opLoadFP
	h[OP_SET_RETURN] = opSetReturn
	h[OP_PUSH_RETURN] = opPushReturn

	h[OP_STRUCT] = opStruct
	h[OP_DESTRUCT] = opDestruct
	h[OP_GET_FIELD] = opGetField
	h[OP_EXTRACT_FIELD] = opExtractField
	h[OP_SET_FIELD] = opSetField
	h[OP_INSERT_FIELD] = opInsertField

	h[OP_REF_LOCAL] = opRefLocal
	h[OP_DEREF] = opDeref
	h[OP_SET_REF] = opSetRef

	h[OP_IS_VAL_TYPE] = opIsValType
	h[OP_IS_OBJ_TYPE] = opIsObjType

	h[OP_CLOCK] = opClock
	h[OP_PRINT] = opPrint
}
