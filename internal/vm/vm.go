package vm

import (
	"io"
	"os"
	"time"
)

// VM is one ClearVM instance: the evaluation stack, the global array, the
// heap, the constant pool loaded from the module header, and the code
// cursor. A VM is built once per Execute call by cmd/clearvm and discarded
// afterward — there is no REPL-style persistence across modules, mirroring
// the teacher's own one-shot funxy.VM lifecycle.
type VM struct {
	stack     Stack
	globals   Globals
	heap      *Heap
	upvalues  *openUpvalues
	constants *ConstantPool

	code  []byte
	ip    int
	start int
	end   int

	// returnSlot holds the value most recently written by OP_SET_RETURN,
	// consumed by the next OP_PUSH_RETURN. It is VM-wide rather than
	// per-frame because, per spec §4.7, nothing about ClearVM's calling
	// convention nests a second SET_RETURN before the matching
	// PUSH_RETURN runs.
	returnSlot Value

	startTime time.Time
	out       io.Writer

	handlers [OpCount]handlerFunc
}

// handlerFunc executes one decoded opcode against vm, reading any operand
// bytes it needs directly off vm.code via vm.readByte/vm.readU16.
type handlerFunc func(vm *VM) error

// New builds a VM ready to Execute a module. out receives OP_PRINT output;
// passing nil defaults to os.Stdout, matching the teacher's CLI runner.
func New(out io.Writer) *VM {
	if out == nil {
		out = os.Stdout
	}
	vm := &VM{
		heap:      newHeap(),
		upvalues:  newOpenUpvalues(),
		out:       out,
		startTime: time.Now(),
	}
	vm.installHandlers()
	return vm
}

// SetAllocObserver installs the optional DEBUG_MEM accounting collaborator.
func (vm *VM) SetAllocObserver(obs AllocObserver) { vm.heap.SetAllocObserver(obs) }

// Execute loads a module's constant pool, then runs its code segment from
// the first instruction to completion. It corresponds to the reference
// semantics' execute_code entry point (spec §2.2): one call per module,
// stack and globals starting empty.
func (vm *VM) Execute(data []byte) error {
	codeStart, err := vm.loadConstants(data)
	if err != nil {
		return err
	}

	vm.code = data
	vm.start = codeStart
	vm.ip = codeStart
	vm.end = len(data)
	vm.stack.sp = 0
	vm.stack.fp = 0

	return vm.run()
}

// Teardown releases the heap's allocation list. Safe to call once after
// Execute returns, whether it returned an error or not.
func (vm *VM) Teardown() {
	vm.heap.Teardown()
}

// AllocCount reports the number of live heap allocations.
func (vm *VM) AllocCount() int { return vm.heap.Count() }
