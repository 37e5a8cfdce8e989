package vm

import (
	"fmt"
	"math"
)

// Tag identifies the kind of payload a Value carries. The concrete byte
// values are VM-internal — a compiler targeting ClearVM must agree on
// this mapping when emitting OP_IS_VAL_TYPE operands.
type Tag uint8

const (
	TagNil Tag = iota
	TagBool
	TagInt
	TagNum
	TagObj
	TagIP
	TagFP
)

var tagNames = [...]string{"Nil", "Bool", "Int", "Num", "Obj", "IP", "FP"}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "Unknown"
}

// Value is a tagged union: exactly one payload field is meaningful for a
// given Tag. It is deliberately a plain value type (no pointer indirection
// for primitives) so that pushing/popping never allocates.
type Value struct {
	Tag Tag
	b   bool
	i   int32
	n   float64
	obj *Object
	ip  int
	fp  int
}

func Nil() Value          { return Value{Tag: TagNil} }
func Bool(b bool) Value   { return Value{Tag: TagBool, b: b} }
func Int(i int32) Value   { return Value{Tag: TagInt, i: i} }
func Num(n float64) Value { return Value{Tag: TagNum, n: n} }
func Obj(o *Object) Value { return Value{Tag: TagObj, obj: o} }
func IPVal(ip int) Value  { return Value{Tag: TagIP, ip: ip} }
func FPVal(fp int) Value  { return Value{Tag: TagFP, fp: fp} }

func (v Value) IsNil() bool  { return v.Tag == TagNil }
func (v Value) IsBool() bool { return v.Tag == TagBool }
func (v Value) IsInt() bool  { return v.Tag == TagInt }
func (v Value) IsNum() bool  { return v.Tag == TagNum }
func (v Value) IsObj() bool  { return v.Tag == TagObj }
func (v Value) IsIP() bool   { return v.Tag == TagIP }
func (v Value) IsFP() bool   { return v.Tag == TagFP }

func (v Value) AsBool() bool   { return v.b }
func (v Value) AsInt() int32   { return v.i }
func (v Value) AsNum() float64 { return v.n }
func (v Value) AsObj() *Object { return v.obj }
func (v Value) AsIP() int      { return v.ip }
func (v Value) AsFP() int      { return v.fp }

// IsPointerValue reports whether this Value's payload is one of the
// "pointer-equivalent" tags (Obj/IP/FP). INT/BOOL/NUM reject all three;
// STR accepts String objects and rejects the rest.
func (v Value) IsPointerValue() bool {
	return v.Tag == TagObj || v.Tag == TagIP || v.Tag == TagFP
}

// Equal implements OP_EQUAL semantics: value equality for Bool/Nil/Int,
// identity for Obj except String (compared by bytes, which is automatic
// once strings are interned — see heap.go), and approximate equality
// (absolute difference < 1e-7) for Num. Values of different tags are
// never equal.
func (v Value) Equal(other Value) bool {
	if v.Tag != other.Tag {
		return false
	}
	switch v.Tag {
	case TagNil:
		return true
	case TagBool:
		return v.b == other.b
	case TagInt:
		return v.i == other.i
	case TagNum:
		return math.Abs(v.n-other.n) < 1e-7
	case TagObj:
		if v.obj.Type == ObjString {
			// Interning guarantees byte-equal strings share one *Object.
			return v.obj == other.obj
		}
		return v.obj == other.obj
	case TagIP:
		return v.ip == other.ip
	case TagFP:
		return v.fp == other.fp
	default:
		return false
	}
}

// Inspect renders a debug representation used by the tracer/disassembler,
// never by OP_STR (which has its own formatting rules, see ops_cast.go).
func (v Value) Inspect() string {
	switch v.Tag {
	case TagNil:
		return "nil"
	case TagBool:
		return fmt.Sprintf("%t", v.b)
	case TagInt:
		return fmt.Sprintf("%d", v.i)
	case TagNum:
		return fmt.Sprintf("%g", v.n)
	case TagObj:
		return v.obj.Inspect()
	case TagIP:
		return fmt.Sprintf("ip(%d)", v.ip)
	case TagFP:
		return fmt.Sprintf("fp(%d)", v.fp)
	default:
		return "<?>"
	}
}
