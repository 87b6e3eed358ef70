package jsonx

import "github.com/pkg/errors"

// Array is an ordered, growable sequence of values.
type Array struct {
	values []Value
}

// NewArray creates an array with size unassigned elements.
func NewArray(size int) *Array {
	result := &Array{}
	result.Reserve(size)
	return result
}

// Len returns number of elements
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.values)
}

// Reserve grows the array with unassigned elements until it holds at least size elements.
func (a *Array) Reserve(size int) {
	for len(a.values) < size {
		a.values = append(a.values, Value{})
	}
}

// At returns the element at i, growing the array with unassigned elements when i is out of range.
func (a *Array) At(i int) *Value {
	if i < 0 {
		panic(errors.Errorf("jsonx: negative array index %d", i))
	}
	if i >= len(a.values) {
		a.Reserve(i + 1)
	}
	return &a.values[i]
}

// Value returns a copy of the element at i without growing the array; i must be in range.
func (a *Array) Value(i int) Value {
	return a.values[i].Clone()
}

// Has returns true if i is in range and the element holds kind.
func (a *Array) Has(i int, kind Kind) bool {
	if i < 0 || i >= a.Len() {
		return false
	}
	return a.values[i].kind == kind
}

// Set stores a copy of value at i, growing the array as needed.
func (a *Array) Set(i int, value Value) {
	*a.At(i) = value.Clone()
}

// Append appends copies of values.
func (a *Array) Append(values ...Value) {
	for _, value := range values {
		a.values = append(a.values, value.Clone())
	}
}

func (a *Array) append(value Value) {
	a.values = append(a.values, value)
}

// Values returns the backing elements.
func (a *Array) Values() []Value {
	if a == nil {
		return nil
	}
	return a.values
}

// Reset removes all elements
func (a *Array) Reset() {
	a.values = a.values[:0]
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	if a == nil {
		return &Array{}
	}
	result := &Array{values: make([]Value, len(a.values))}
	for i := range a.values {
		result.values[i] = a.values[i].Clone()
	}
	return result
}

// Equal reports structural equality.
func (a *Array) Equal(other *Array) bool {
	if a.Len() != other.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !a.values[i].Equal(other.values[i]) {
			return false
		}
	}
	return true
}
