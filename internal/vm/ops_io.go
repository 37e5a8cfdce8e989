package vm

import (
	"fmt"
	"time"
)

// opPrint pops the top of stack, which must already be a String (use
// OP_STR first to format anything else), and writes it followed by a
// newline to the VM's output writer.
func opPrint(vm *VM) error {
	v, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	if !v.IsObj() || v.obj.Type != ObjString {
		return newOpError(NonStringPrint, "PRINT", vm.ip, "expected a Str, got %s", v.Tag)
	}
	_, ferr := fmt.Fprintln(vm.out, v.obj.str)
	return ferr
}

// opClock pushes the number of seconds elapsed since the VM was created,
// as a Num.
func opClock(vm *VM) error {
	return vm.stack.Push(Num(time.Since(vm.startTime).Seconds()))
}
