package vm

// ClearVM's calling convention keeps no separate call-frame stack: the
// return address and the caller's frame pointer are ordinary Values
// pushed onto the same evaluation stack CALL operates on, and a function
// returns via a compiler-emitted SET_RETURN/POP.../LOAD_FP/LOAD_IP/
// PUSH_RETURN sequence rather than a dedicated RETURN opcode. This is
// rebuilt from scratch against that convention — the teacher's CallFrame
// array does not apply here.

// opFunction pushes an IP value naming a function's entry point (u16
// operand), the value a compiler treats as "the function" wherever it is
// stored, passed, or called.
func opFunction(vm *VM) error {
	addr, err := vm.readU16()
	if err != nil {
		return err
	}
	return vm.stack.Push(IPVal(int(addr)))
}

// opCall pops a callee (must be an IP value) sitting above argCount (u8
// operand) already-pushed argument slots, lifts the args off the stack,
// pushes the return address and the caller's saved fp, sets the new
// frame's fp to start right there, then re-pushes the args on top of the
// registers. The registers end up below the new frame rather than inside
// it, so LOAD_FP/LOAD_IP can pop them clean once the callee's own locals
// (the args) have been popped back down to fp.
func opCall(vm *VM) error {
	argCount, err := vm.readByte()
	if err != nil {
		return err
	}

	callee, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	if !callee.IsIP() {
		return newOpError(NonFunctionCall, "CALL", vm.ip, "cannot call a %s value", callee.Tag)
	}

	args := make([]Value, argCount)
	if err := vm.stack.PopN(args, int(argCount)); err != nil {
		return err
	}

	returnAddr := vm.ip
	if err := vm.stack.Push(IPVal(returnAddr)); err != nil {
		return err
	}
	if err := vm.stack.Push(FPVal(vm.stack.fp)); err != nil {
		return err
	}

	vm.stack.fp = vm.stack.sp
	if err := vm.stack.PushN(args); err != nil {
		return err
	}

	vm.ip = callee.ip
	return nil
}

// opLoadIP pops an IP value and restores vm.ip from it, resuming execution
// at the caller's instruction following the original CALL.
func opLoadIP(vm *VM) error {
	v, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	if !v.IsIP() {
		return newOpError(NonIPLoad, "LOAD_IP", vm.ip, "expected an IP value, got %s", v.Tag)
	}
	vm.ip = v.ip
	return nil
}

// opLoadFP pops an FP value and restores vm.stack.fp from it, returning
// addressing of PUSH_LOCAL/SET_LOCAL to the caller's frame.
func opLoadFP(vm *VM) error {
	v, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	if !v.IsFP() {
		return newOpError(NonFPLoad, "LOAD_FP", vm.ip, "expected an FP value, got %s", v.Tag)
	}
	vm.stack.fp = v.fp
	return nil
}

// opSetReturn stashes the top of stack as the pending return value,
// consumed by the next PUSH_RETURN once the callee's frame is torn down.
func opSetReturn(vm *VM) error {
	v, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	vm.returnSlot = v
	return nil
}

// opPushReturn pushes the value most recently stashed by SET_RETURN.
func opPushReturn(vm *VM) error {
	return vm.stack.Push(vm.returnSlot)
}
