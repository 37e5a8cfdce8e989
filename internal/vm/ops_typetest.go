package vm

// opIsValType peeks the top of stack and pushes whether its Tag equals the
// operand (u8, one of the Tag constants), leaving the tested value in
// place. An unrecognized operand is not an error — it simply never
// matches anything.
func opIsValType(vm *VM) error {
	tag, err := vm.readByte()
	if err != nil {
		return err
	}
	v, err := vm.stack.Peek(0)
	if err != nil {
		return err
	}
	return vm.stack.Push(Bool(v.Tag == Tag(tag)))
}

// opIsObjType peeks the top of stack and pushes whether it is an Obj whose
// concrete ObjType equals the operand (u8, one of the ObjType constants),
// leaving the tested value in place. A non-Obj value always yields false
// rather than erroring — this gates on the value's own Tag before ever
// looking at obj.Type.
func opIsObjType(vm *VM) error {
	objType, err := vm.readByte()
	if err != nil {
		return err
	}
	v, err := vm.stack.Peek(0)
	if err != nil {
		return err
	}
	if !v.IsObj() {
		return vm.stack.Push(Bool(false))
	}
	return vm.stack.Push(Bool(v.obj.Type == ObjType(objType)))
}
