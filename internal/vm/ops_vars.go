package vm

// opSetGlobal pops the top value into global slot index (u8 operand).
func opSetGlobal(vm *VM) error {
	idx, err := vm.readByte()
	if err != nil {
		return err
	}
	v, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	vm.globals.Set(idx, v)
	return nil
}

// opPushGlobal pushes the value in global slot index (u8 operand).
func opPushGlobal(vm *VM) error {
	idx, err := vm.readByte()
	if err != nil {
		return err
	}
	v, err := vm.globals.Get(idx)
	if err != nil {
		return err
	}
	return vm.stack.Push(v)
}

// opSetLocal pops the top value into local slot index (u8 operand,
// relative to the current frame's fp).
func opSetLocal(vm *VM) error {
	idx, err := vm.readByte()
	if err != nil {
		return err
	}
	v, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	return vm.stack.SetLocal(int(idx), v)
}

// opPushLocal pushes the value of local slot index (u8 operand).
func opPushLocal(vm *VM) error {
	idx, err := vm.readByte()
	if err != nil {
		return err
	}
	v, err := vm.stack.GetLocal(int(idx))
	if err != nil {
		return err
	}
	return vm.stack.Push(v)
}
