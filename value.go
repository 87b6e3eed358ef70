package jsonx

import (
	"math"

	"github.com/pkg/errors"
)

// Value represents a JSON value: exactly one of number, string, bool, null, array or object.
//
// The zero Value is invalid: it has not been assigned a kind yet and reads as null.
// Assigning a Value copies containers by reference; use Clone for an independent tree.
type Value struct {
	kind    Kind
	number  float64
	text    string
	boolean bool
	array   *Array
	object  *Object
}

// Number creates a number value.
func Number(v float64) Value {
	return Value{kind: KindNumber, number: v}
}

// String creates a string value.
func String(v string) Value {
	return Value{kind: KindString, text: v}
}

// Bool creates a boolean value.
func Bool(v bool) Value {
	return Value{kind: KindBool, boolean: v}
}

// Null creates a null value.
func Null() Value {
	return Value{kind: KindNull}
}

// ArrayOf creates an array value holding copies of values.
func ArrayOf(values ...Value) Value {
	array := &Array{}
	array.Append(values...)
	return Value{kind: KindArray, array: array}
}

// ArrayValue creates an array value holding a copy of array.
func ArrayValue(array *Array) Value {
	return Value{kind: KindArray, array: array.Clone()}
}

// ObjectValue creates an object value holding a copy of object.
func ObjectValue(object *Object) Value {
	return Value{kind: KindObject, object: object.Clone()}
}

func wrapArray(array *Array) Value {
	return Value{kind: KindArray, array: array}
}

func wrapObject(object *Object) Value {
	return Value{kind: KindObject, object: object}
}

// Kind returns the value kind.
func (v Value) Kind() Kind { return v.kind }

// Is returns true if value holds kind.
func (v Value) Is(kind Kind) bool { return v.kind == kind }

// IsValid returns false for values that were never assigned.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsArray() bool  { return v.kind == KindArray }
func (v Value) IsObject() bool { return v.kind == KindObject }

// IsNull returns true for null and for unassigned values.
func (v Value) IsNull() bool { return v.kind == KindNull || v.kind == KindInvalid }

func (v Value) expect(kind Kind) {
	if v.kind != kind {
		panic(&TypeError{Expected: kind, Actual: v.kind})
	}
}

// AsNumber returns the number payload; it panics with *TypeError for other kinds.
func (v Value) AsNumber() float64 {
	v.expect(KindNumber)
	return v.number
}

// AsInt returns the number payload truncated toward zero.
func (v Value) AsInt() int {
	v.expect(KindNumber)
	return int(v.number)
}

// AsInt64 returns the number payload truncated toward zero.
func (v Value) AsInt64() int64 {
	v.expect(KindNumber)
	return int64(v.number)
}

// AsFloat32 returns the number payload narrowed to float32.
func (v Value) AsFloat32() float32 {
	v.expect(KindNumber)
	return float32(v.number)
}

// AsString returns the string payload.
func (v Value) AsString() string {
	v.expect(KindString)
	return v.text
}

// AsBool returns the boolean payload.
func (v Value) AsBool() bool {
	v.expect(KindBool)
	return v.boolean
}

// AsArray returns the owned array; changes are visible through v.
func (v Value) AsArray() *Array {
	v.expect(KindArray)
	return v.array
}

// AsObject returns the owned object; changes are visible through v.
func (v Value) AsObject() *Object {
	v.expect(KindObject)
	return v.object
}

// Index returns the array element at i, growing the array as needed.
func (v Value) Index(i int) *Value {
	return v.AsArray().At(i)
}

// Key returns the object member for key; it panics if the key is missing.
func (v Value) Key(key string) *Value {
	member, ok := v.AsObject().Lookup(key)
	if !ok {
		panic(errors.Errorf("jsonx: key %q not found", key))
	}
	return member
}

// Has returns true if the object value has key.
func (v Value) Has(key string) bool {
	return v.AsObject().Has(key)
}

// Set replaces v with a copy of other.
func (v *Value) Set(other Value) {
	*v = other.Clone()
}

// Reset returns v to the unassigned state.
func (v *Value) Reset() {
	*v = Value{}
}

// Clone returns a deep copy.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		v.array = v.array.Clone()
	case KindObject:
		v.object = v.object.Clone()
	}
	return v
}

// Equal reports structural equality; kinds must match exactly.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.number == other.number || (math.IsNaN(v.number) && math.IsNaN(other.number))
	case KindString:
		return v.text == other.text
	case KindBool:
		return v.boolean == other.boolean
	case KindArray:
		return v.array.Equal(other.array)
	case KindObject:
		return v.object.Equal(other.object)
	}
	return true
}
