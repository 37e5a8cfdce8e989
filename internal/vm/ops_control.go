package vm

// jumpOffsets are single unsigned bytes (spec §9 notes this caps a jump's
// reach at 255 bytes of code — a documented limitation, not a bug).

func opJump(vm *VM) error {
	off, err := vm.readByte()
	if err != nil {
		return err
	}
	return applyJump(vm, "JUMP", vm.ip+int(off))
}

func opJumpIfFalse(vm *VM) error {
	off, err := vm.readByte()
	if err != nil {
		return err
	}
	cond, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	if !cond.IsBool() {
		return newOpError(InvalidCast, "JUMP_IF_FALSE", vm.ip, "expected Bool operand, got %s", cond.Tag)
	}
	if !cond.b {
		return applyJump(vm, "JUMP_IF_FALSE", vm.ip+int(off))
	}
	return nil
}

func opLoop(vm *VM) error {
	off, err := vm.readByte()
	if err != nil {
		return err
	}
	return applyJump(vm, "LOOP", vm.ip-int(off))
}

func applyJump(vm *VM, op string, target int) error {
	if target < vm.start || target > vm.end {
		return newOpError(JumpOutOfRange, op, vm.ip, "jump target %d outside code range [%d,%d]", target, vm.start, vm.end)
	}
	vm.ip = target
	return nil
}
