package vm

func popStruct(vm *VM, op string) (*Object, error) {
	v, err := vm.stack.Pop()
	if err != nil {
		return nil, err
	}
	if !v.IsObj() || v.obj.Type != ObjStruct {
		return nil, newOpError(NonStructField, op, vm.ip, "expected a Struct, got %s", v.Tag)
	}
	return v.obj, nil
}

func peekStruct(vm *VM, off int, op string) (*Object, error) {
	v, err := vm.stack.Peek(off)
	if err != nil {
		return nil, err
	}
	if !v.IsObj() || v.obj.Type != ObjStruct {
		return nil, newOpError(NonStructField, op, vm.ip, "expected a Struct, got %s", v.Tag)
	}
	return v.obj, nil
}

func fieldAt(obj *Object, idx byte, op string, ip int) (int, error) {
	if int(idx) >= len(obj.fields) {
		return 0, newOpError(FieldOutOfRange, op, ip, "field %d out of range, struct has %d fields", idx, len(obj.fields))
	}
	return int(idx), nil
}

// opStruct pops fieldCount (u8 operand) values off the stack, in the order
// they were pushed, into a freshly allocated struct object.
func opStruct(vm *VM) error {
	n, err := vm.readByte()
	if err != nil {
		return err
	}
	obj := vm.heap.AllocateStruct(int(n))
	if err := vm.stack.PopN(obj.fields, int(n)); err != nil {
		return err
	}
	return vm.stack.Push(Obj(obj))
}

// opDestruct pops a struct and pushes fields[d:] back in original order,
// where d (u8 operand) skips that many leading fields.
func opDestruct(vm *VM) error {
	d, err := vm.readByte()
	if err != nil {
		return err
	}
	obj, err := popStruct(vm, "DESTRUCT")
	if err != nil {
		return err
	}
	if int(d) > len(obj.fields) {
		return newOpError(FieldOutOfRange, "DESTRUCT", vm.ip, "skip %d out of range, struct has %d fields", d, len(obj.fields))
	}
	return vm.stack.PushN(obj.fields[d:])
}

// opGetField pops the struct on top of stack and pushes field index (u8
// operand).
func opGetField(vm *VM) error {
	idx, err := vm.readByte()
	if err != nil {
		return err
	}
	obj, err := popStruct(vm, "GET_FIELD")
	if err != nil {
		return err
	}
	i, err := fieldAt(obj, idx, "GET_FIELD", vm.ip)
	if err != nil {
		return err
	}
	return vm.stack.Push(obj.fields[i])
}

// opExtractField peeks the struct at stack offset off (u8 operand) and
// pushes field index i (u8 operand), leaving the struct and everything
// above it untouched.
func opExtractField(vm *VM) error {
	off, err := vm.readByte()
	if err != nil {
		return err
	}
	idx, err := vm.readByte()
	if err != nil {
		return err
	}
	obj, err := peekStruct(vm, int(off), "EXTRACT_FIELD")
	if err != nil {
		return err
	}
	i, err := fieldAt(obj, idx, "EXTRACT_FIELD", vm.ip)
	if err != nil {
		return err
	}
	return vm.stack.Push(obj.fields[i])
}

// opSetField pops a value and writes it into field index (u8 operand) of
// the struct now on top of stack, leaving the struct in place.
func opSetField(vm *VM) error {
	idx, err := vm.readByte()
	if err != nil {
		return err
	}
	v, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	obj, err := peekStruct(vm, 0, "SET_FIELD")
	if err != nil {
		return err
	}
	i, err := fieldAt(obj, idx, "SET_FIELD", vm.ip)
	if err != nil {
		return err
	}
	obj.fields[i] = v
	return nil
}

// opInsertField pops only the value and writes it into field index i (u8
// operand) of the struct peeked at stack offset off (u8 operand), leaving
// the struct and everything above off untouched.
func opInsertField(vm *VM) error {
	off, err := vm.readByte()
	if err != nil {
		return err
	}
	idx, err := vm.readByte()
	if err != nil {
		return err
	}
	v, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	obj, err := peekStruct(vm, int(off), "INSERT_FIELD")
	if err != nil {
		return err
	}
	i, err := fieldAt(obj, idx, "INSERT_FIELD", vm.ip)
	if err != nil {
		return err
	}
	obj.fields[i] = v
	return nil
}
