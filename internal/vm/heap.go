package vm

// ObjType identifies the concrete payload of a heap Object.
type ObjType uint8

const (
	ObjString ObjType = iota
	ObjStruct
	ObjUpvalue
)

var objTypeNames = [...]string{"String", "Struct", "Upvalue"}

func (t ObjType) String() string {
	if int(t) < len(objTypeNames) {
		return objTypeNames[t]
	}
	return "Unknown"
}

// Object is a heap-allocated value. Exactly one of the payload fields
// below is meaningful, selected by Type. Objects are linked into a
// singly-linked intrusive list anchored at the Heap so teardown can walk
// and release every allocation in one pass — there is no collector while
// the VM runs.
type Object struct {
	Type ObjType
	next *Object

	// observed is set when an AllocObserver saw this object's allocation,
	// so teardown reports frees only for objects the observer counted.
	observed bool

	// String payload — immutable. Strings are interned: two byte-equal
	// strings share the same *Object after allocation (see intern.go).
	str string

	// Struct payload — fixed field count set at creation, never resized.
	fields []Value

	// Upvalue payload. OPEN upvalues reference a live stack slot via
	// slotIdx; CLOSED upvalues own their value directly in closed.
	open    bool
	slotIdx int
	closed  Value
}

func (o *Object) Inspect() string {
	switch o.Type {
	case ObjString:
		return o.str
	case ObjStruct:
		return "<struct>"
	case ObjUpvalue:
		if o.open {
			return "<upvalue open>"
		}
		return "<upvalue closed>"
	default:
		return "<obj>"
	}
}

// String returns the backing bytes of a String object. Callers must only
// invoke this on objects already known (via Type) to be strings.
func (o *Object) String() string { return o.str }

// Fields returns the mutable slot array of a Struct object.
func (o *Object) Fields() []Value { return o.fields }

// Heap owns every object allocation for one VM instance: the intrusive
// allocation list (for bulk teardown) and the string intern table.
type Heap struct {
	head     *Object
	count    int
	intern   *internTable
	observer AllocObserver // optional DEBUG_MEM hook, nil unless enabled
}

func newHeap() *Heap {
	return &Heap{intern: newInternTable()}
}

func (h *Heap) link(o *Object) *Object {
	o.next = h.head
	h.head = o
	h.count++
	if h.observer != nil {
		o.observed = true
		h.observer.OnAlloc(o)
	}
	return o
}

// AllocateStruct reserves a new Struct object with n zero-valued fields.
// OP_STRUCT fills them from the stack in push order immediately after.
func (h *Heap) AllocateStruct(n int) *Object {
	o := &Object{Type: ObjStruct, fields: make([]Value, n)}
	return h.link(o)
}

// AllocateUpvalue creates a new OPEN upvalue referencing stack slot idx.
func (h *Heap) AllocateUpvalue(idx int) *Object {
	o := &Object{Type: ObjUpvalue, open: true, slotIdx: idx}
	return h.link(o)
}

// InternString returns the unique *Object for s, allocating one the
// first time s is seen and reusing it on every subsequent call with the
// same byte content.
func (h *Heap) InternString(s string) *Object {
	if existing := h.intern.get(s); existing != nil {
		return existing
	}
	o := &Object{Type: ObjString, str: s}
	h.link(o)
	h.intern.put(s, o)
	return o
}

// Teardown walks the allocation list once, releasing every object. Go's
// GC reclaims the memory once unreferenced; this pass exists to give the
// VM a single, deterministic release point matching spec §4.6/§4.8 and
// to run the memory-accounting observer's OnFree hook when present. OnFree
// fires only for objects whose allocation an observer saw via OnAlloc.
func (h *Heap) Teardown() {
	for o := h.head; o != nil; {
		next := o.next
		if h.observer != nil && o.observed {
			h.observer.OnFree(o)
		}
		o.next = nil
		o = next
	}
	h.head = nil
	h.count = 0
	h.intern = newInternTable()
}

// Count returns the number of live allocations.
func (h *Heap) Count() int { return h.count }

// AllocObserver is the interface the optional per-allocation memory
// accounting collaborator (spec §1, out of scope for the core) implements
// to observe heap traffic. See internal/memreport for a concrete writer.
type AllocObserver interface {
	OnAlloc(o *Object)
	OnFree(o *Object)
}

// SetAllocObserver installs or clears the DEBUG_MEM hook.
func (h *Heap) SetAllocObserver(obs AllocObserver) { h.observer = obs }
