package vm

// openUpvalues tracks, for each live absolute stack slot, every OPEN
// upvalue object currently referencing it. Spec §9's design note
// recommends exactly this: a sparse map from slot index to upvalue
// handles, kept separate from the stack's plain Values, rather than the
// teacher's single globally-sorted linked list (funvibe-funxy's
// vm.openUpvalues) — OP_POP here must close every upvalue on one slot in
// one lookup, not a scan of every open upvalue in the VM.
type openUpvalues struct {
	bySlot map[int][]*Object
}

func newOpenUpvalues() *openUpvalues {
	return &openUpvalues{bySlot: make(map[int][]*Object)}
}

// refLocal allocates a new OPEN upvalue referencing absolute stack slot
// idx and links it into that slot's reference chain.
func (u *openUpvalues) refLocal(h *Heap, idx int) *Object {
	uv := h.AllocateUpvalue(idx)
	u.bySlot[idx] = append(u.bySlot[idx], uv)
	return uv
}

// closeSlot closes every OPEN upvalue referencing absolute slot idx,
// copying its current value in from the stack and rewiring it to CLOSED.
// Called by OP_POP immediately before that slot is removed.
func (u *openUpvalues) closeSlot(idx int, current Value) {
	list, ok := u.bySlot[idx]
	if !ok {
		return
	}
	for _, uv := range list {
		if uv.open {
			uv.closed = current
			uv.open = false
		}
	}
	delete(u.bySlot, idx)
}
