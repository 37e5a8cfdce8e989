package vm

// Every typed arithmetic/comparison opcode assumes both operands already
// carry the tag its name promises (INT_ADD requires two Ints, NUM_ADD two
// Nums, ...); ClearVM has no implicit numeric promotion, so a compiler
// targeting it is responsible for emitting the matching OP_INT/OP_NUM cast
// beforehand. A mismatched tag here is an InvalidCast, not a silent
// coercion.

func popInt(vm *VM, op string) (int32, error) {
	v, err := vm.stack.Pop()
	if err != nil {
		return 0, err
	}
	if !v.IsInt() {
		return 0, newOpError(InvalidCast, op, vm.ip, "expected Int operand, got %s", v.Tag)
	}
	return v.i, nil
}

func popNum(vm *VM, op string) (float64, error) {
	v, err := vm.stack.Pop()
	if err != nil {
		return 0, err
	}
	if !v.IsNum() {
		return 0, newOpError(InvalidCast, op, vm.ip, "expected Num operand, got %s", v.Tag)
	}
	return v.n, nil
}

func opIntNeg(vm *VM) error {
	a, err := popInt(vm, "INT_NEG")
	if err != nil {
		return err
	}
	return vm.stack.Push(Int(-a))
}

func opNumNeg(vm *VM) error {
	a, err := popNum(vm, "NUM_NEG")
	if err != nil {
		return err
	}
	return vm.stack.Push(Num(-a))
}

// binIntOp pops b then a (a was pushed first) and pushes f(a, b).
func binIntOp(vm *VM, op string, f func(a, b int32) (Value, error)) error {
	b, err := popInt(vm, op)
	if err != nil {
		return err
	}
	a, err := popInt(vm, op)
	if err != nil {
		return err
	}
	v, err := f(a, b)
	if err != nil {
		return err
	}
	return vm.stack.Push(v)
}

func binNumOp(vm *VM, op string, f func(a, b float64) Value) error {
	b, err := popNum(vm, op)
	if err != nil {
		return err
	}
	a, err := popNum(vm, op)
	if err != nil {
		return err
	}
	return vm.stack.Push(f(a, b))
}

func opIntAdd(vm *VM) error {
	return binIntOp(vm, "INT_ADD", func(a, b int32) (Value, error) { return Int(a + b), nil })
}
func opIntSub(vm *VM) error {
	return binIntOp(vm, "INT_SUB", func(a, b int32) (Value, error) { return Int(a - b), nil })
}
func opIntMul(vm *VM) error {
	return binIntOp(vm, "INT_MUL", func(a, b int32) (Value, error) { return Int(a * b), nil })
}
func opIntDiv(vm *VM) error {
	return binIntOp(vm, "INT_DIV", func(a, b int32) (Value, error) {
		if b == 0 {
			return Value{}, newOpError(DivideByZero, "INT_DIV", vm.ip, "division by zero")
		}
		return Int(a / b), nil
	})
}

func opNumAdd(vm *VM) error {
	return binNumOp(vm, "NUM_ADD", func(a, b float64) Value { return Num(a + b) })
}
func opNumSub(vm *VM) error {
	return binNumOp(vm, "NUM_SUB", func(a, b float64) Value { return Num(a - b) })
}
func opNumMul(vm *VM) error {
	return binNumOp(vm, "NUM_MUL", func(a, b float64) Value { return Num(a * b) })
}
func opNumDiv(vm *VM) error {
	return binNumOp(vm, "NUM_DIV", func(a, b float64) Value { return Num(a / b) })
}

func opIntLess(vm *VM) error {
	return binIntOp(vm, "INT_LESS", func(a, b int32) (Value, error) { return Bool(a < b), nil })
}
func opIntGreater(vm *VM) error {
	return binIntOp(vm, "INT_GREATER", func(a, b int32) (Value, error) { return Bool(a > b), nil })
}
func opNumLess(vm *VM) error {
	return binNumOp(vm, "NUM_LESS", func(a, b float64) Value { return Bool(a < b) })
}
func opNumGreater(vm *VM) error {
	return binNumOp(vm, "NUM_GREATER", func(a, b float64) Value { return Bool(a > b) })
}

// opStrCat concatenates two Strings, failing NonStringConcat if either
// operand is not a String object.
func opStrCat(vm *VM) error {
	b, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	a, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	if !a.IsObj() || a.obj.Type != ObjString || !b.IsObj() || b.obj.Type != ObjString {
		return newOpError(NonStringConcat, "STR_CAT", vm.ip, "both operands must be Str, got %s and %s", a.Tag, b.Tag)
	}
	return vm.stack.Push(Obj(vm.heap.InternString(a.obj.str + b.obj.str)))
}

// opNot inverts a Bool in place.
func opNot(vm *VM) error {
	v, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	if !v.IsBool() {
		return newOpError(InvalidCast, "NOT", vm.ip, "expected Bool operand, got %s", v.Tag)
	}
	return vm.stack.Push(Bool(!v.b))
}

// opEqual implements Value.Equal, valid across every tag.
func opEqual(vm *VM) error {
	b, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	a, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	return vm.stack.Push(Bool(a.Equal(b)))
}
