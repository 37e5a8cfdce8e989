package vm

// opPushConst pushes constants[index] (u8 operand) onto the stack.
func opPushConst(vm *VM) error {
	idx, err := vm.readByte()
	if err != nil {
		return err
	}
	c, err := vm.constants.Get(int(idx))
	if err != nil {
		return err
	}
	return vm.stack.Push(c)
}

func opPushTrue(vm *VM) error  { return vm.stack.Push(Bool(true)) }
func opPushFalse(vm *VM) error { return vm.stack.Push(Bool(false)) }
func opPushNil(vm *VM) error   { return vm.stack.Push(Nil()) }

// opPop discards the top of the stack. Before the slot is actually
// removed, every OPEN upvalue referencing it is closed (spec §4.7) — this
// is the one place a slot can disappear out from under a live closure.
func opPop(vm *VM) error {
	if vm.stack.sp == 0 {
		return newOpError(StackUnderflow, "POP", vm.ip, "pop on empty stack")
	}
	top := vm.stack.sp - 1
	vm.upvalues.closeSlot(top, vm.stack.slots[top])
	_, err := vm.stack.Pop()
	return err
}

// opSquash is operand-less: …, a, b → …, b. It discards exactly the slot
// below the top, keeping the top value and sliding it down to fill the
// gap, closing any upvalue on the discarded slot along the way.
func opSquash(vm *VM) error {
	if vm.stack.sp < 2 {
		return newOpError(StackUnderflow, "SQUASH", vm.ip, "squash with sp=%d", vm.stack.sp)
	}
	top, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	slot := vm.stack.sp - 1
	vm.upvalues.closeSlot(slot, vm.stack.slots[slot])
	vm.stack.sp--
	return vm.stack.Push(top)
}
