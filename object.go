package jsonx

import (
	"sort"

	"github.com/pkg/errors"
)

// Object maps unique string keys to values.
//
// Keys iterate in lexicographic order; insertion order is tracked for InsertionOrder encoding.
type Object struct {
	values map[string]*Value
	keys   []string
}

// NewObject creates an empty object
func NewObject() *Object {
	return &Object{values: map[string]*Value{}}
}

// Len returns number of members
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.values)
}

// Has returns true if key exists.
func (o *Object) Has(key string) bool {
	_, ok := o.Lookup(key)
	return ok
}

// HasKind returns true if key exists and holds kind.
func (o *Object) HasKind(key string, kind Kind) bool {
	value, ok := o.Lookup(key)
	return ok && value.kind == kind
}

// Lookup returns the member for key.
func (o *Object) Lookup(key string) (*Value, bool) {
	if o == nil || o.values == nil {
		return nil, false
	}
	value, ok := o.values[key]
	return value, ok
}

// Get returns a copy of the member for key; it panics if the key is missing. Use At or Lookup to edit in place.
func (o *Object) Get(key string) Value {
	value, ok := o.Lookup(key)
	if !ok {
		panic(errors.Errorf("jsonx: key %q not found", key))
	}
	return value.Clone()
}

// At returns the member for key, adding an unassigned member if the key is missing.
func (o *Object) At(key string) *Value {
	if value, ok := o.Lookup(key); ok {
		return value
	}
	value := &Value{}
	o.put(key, value)
	return value
}

// Set stores a copy of value under key, replacing any previous member.
func (o *Object) Set(key string, value Value) {
	cloned := value.Clone()
	o.put(key, &cloned)
}

func (o *Object) put(key string, value *Value) {
	if o.values == nil {
		o.values = map[string]*Value{}
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Delete removes key, returning true if it existed.
func (o *Object) Delete(key string) bool {
	if !o.Has(key) {
		return false
	}
	delete(o.values, key)
	for i, candidate := range o.keys {
		if candidate == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns keys in lexicographic order.
func (o *Object) Keys() []string {
	if o.Len() == 0 {
		return nil
	}
	result := make([]string, len(o.keys))
	copy(result, o.keys)
	sort.Strings(result)
	return result
}

// InsertionKeys returns keys in the order they were first added.
func (o *Object) InsertionKeys() []string {
	if o.Len() == 0 {
		return nil
	}
	result := make([]string, len(o.keys))
	copy(result, o.keys)
	return result
}

// Range calls fn for each member in lexicographic key order until fn returns false.
func (o *Object) Range(fn func(key string, value *Value) bool) {
	for _, key := range o.Keys() {
		if !fn(key, o.values[key]) {
			return
		}
	}
}

// Reset removes all members
func (o *Object) Reset() {
	o.values = nil
	o.keys = nil
}

// Clone returns a deep copy.
func (o *Object) Clone() *Object {
	result := NewObject()
	if o == nil {
		return result
	}
	for _, key := range o.keys {
		cloned := o.values[key].Clone()
		result.put(key, &cloned)
	}
	return result
}

// Equal reports structural equality, ignoring key order.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	if o.Len() == 0 {
		return true
	}
	for key, value := range o.values {
		candidate, ok := other.Lookup(key)
		if !ok || !value.Equal(*candidate) {
			return false
		}
	}
	return true
}
