package vm

// loadConstants parses the module header — one byte N followed by N
// constant records — populating the VM's constant pool and returning the
// byte offset at which the code segment begins. Grounded in the teacher's
// Chunk.AddConstant bookkeeping, rebuilt here as a one-shot header
// decoder since ClearVM's constants are loaded once up front rather than
// appended incrementally by a compiler living in the same process.
func (vm *VM) loadConstants(data []byte) (int, error) {
	n, off, ok := readU8At(data, 0)
	if !ok {
		return 0, newError(TruncatedHeader, 0, "module is empty, expected constant count byte")
	}

	values := make([]Value, 0, n)
	for i := 0; i < int(n); i++ {
		tag, next, ok := readU8At(data, off)
		if !ok {
			return 0, newError(TruncatedHeader, off, "truncated reading tag of constant %d", i)
		}
		off = next

		switch ConstTag(tag) {
		case CONST_INT:
			v, next, ok := readI32At(data, off)
			if !ok {
				return 0, newError(TruncatedHeader, off, "truncated CONST_INT payload for constant %d", i)
			}
			off = next
			values = append(values, Int(v))

		case CONST_NUM:
			v, next, ok := readF64At(data, off)
			if !ok {
				return 0, newError(TruncatedHeader, off, "truncated CONST_NUM payload for constant %d", i)
			}
			off = next
			values = append(values, Num(v))

		case CONST_STR:
			bytes, next, ok := readLenPrefixedBytesAt(data, off)
			if !ok {
				return 0, newError(TruncatedHeader, off, "truncated CONST_STR payload for constant %d", i)
			}
			off = next
			values = append(values, Obj(vm.heap.InternString(string(bytes))))

		default:
			return 0, newError(UnknownConstantTag, off-1, "unknown constant tag 0x%02X for constant %d", tag, i)
		}
	}

	vm.constants = &ConstantPool{values: values}
	return off, nil
}
