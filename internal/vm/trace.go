package vm

import "fmt"

// traceDisassemble prints one decoded instruction before it executes,
// mirroring the teacher's debugger.go trace output but rebuilt against
// ClearVM's opcode table. Only ever called when DebugDis is compiled in.
func (vm *VM) traceDisassemble(ip int, op Op) {
	fmt.Printf("|| %04d %s\n", ip, disassembleOperand(vm.code, ip, op))
}

// traceStack prints the live evaluation stack after an instruction runs,
// simplified from the teacher's PrintStack family. Only ever called when
// DebugStack is compiled in.
func (vm *VM) traceStack() {
	fmt.Print("||        [ ")
	for i := 0; i < vm.stack.sp; i++ {
		fmt.Printf("%s ", vm.stack.slots[i].Inspect())
	}
	fmt.Println("]")
}
