package vm

import (
	"fmt"
	"math"
)

// opCastInt converts the top of stack to Int in place. Num->Int truncates
// toward zero; out-of-range inputs saturate rather than wrapping and NaN
// becomes 0, since ClearVM has no signalling-NaN/overflow trap of its own.
func opCastInt(vm *VM) error {
	v, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	switch v.Tag {
	case TagInt:
		return vm.stack.Push(v)
	case TagNum:
		return vm.stack.Push(Int(saturateToInt32(v.n)))
	case TagBool:
		if v.b {
			return vm.stack.Push(Int(1))
		}
		return vm.stack.Push(Int(0))
	case TagNil:
		return vm.stack.Push(Int(0))
	default:
		return newOpError(InvalidCast, "INT", vm.ip, "cannot cast %s to Int", v.Tag)
	}
}

func saturateToInt32(n float64) int32 {
	if math.IsNaN(n) {
		return 0
	}
	if n >= math.MaxInt32 {
		return math.MaxInt32
	}
	if n <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(n)
}

// opCastBool converts the top of stack to Bool: zero, NaN and nil are
// false, every other primitive is true.
func opCastBool(vm *VM) error {
	v, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	switch v.Tag {
	case TagBool:
		return vm.stack.Push(v)
	case TagInt:
		return vm.stack.Push(Bool(v.i != 0))
	case TagNum:
		return vm.stack.Push(Bool(!math.IsNaN(v.n) && v.n != 0))
	case TagNil:
		return vm.stack.Push(Bool(false))
	default:
		return newOpError(InvalidCast, "BOOL", vm.ip, "cannot cast %s to Bool", v.Tag)
	}
}

// opCastNum converts the top of stack to Num.
func opCastNum(vm *VM) error {
	v, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	switch v.Tag {
	case TagNum:
		return vm.stack.Push(v)
	case TagInt:
		return vm.stack.Push(Num(float64(v.i)))
	case TagBool:
		if v.b {
			return vm.stack.Push(Num(1))
		}
		return vm.stack.Push(Num(0))
	case TagNil:
		return vm.stack.Push(Num(0))
	default:
		return newOpError(InvalidCast, "NUM", vm.ip, "cannot cast %s to Num", v.Tag)
	}
}

// opCastStr renders the top of stack as a String object. Num formats with
// exactly seven fractional digits; an existing String is left untouched
// rather than re-interned.
func opCastStr(vm *VM) error {
	v, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	var s string
	switch v.Tag {
	case TagObj:
		if v.obj.Type == ObjString {
			return vm.stack.Push(v)
		}
		return newOpError(InvalidCast, "STR", vm.ip, "cannot cast %s object to Str", v.obj.Type)
	case TagInt:
		s = fmt.Sprintf("%d", v.i)
	case TagNum:
		s = fmt.Sprintf("%.7f", v.n)
	case TagBool:
		s = fmt.Sprintf("%t", v.b)
	case TagNil:
		s = "nil"
	default:
		return newOpError(InvalidCast, "STR", vm.ip, "cannot cast %s to Str", v.Tag)
	}
	return vm.stack.Push(Obj(vm.heap.InternString(s)))
}
