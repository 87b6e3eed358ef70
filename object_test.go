package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObject_SetGet(t *testing.T) {
	object := NewObject()
	object.Set("b", Number(2))
	object.Set("a", String("x"))
	object.Set("b", Number(3))

	assert.EqualValues(t, 2, object.Len())
	assert.EqualValues(t, 3, object.Get("b").AsNumber())
	assert.EqualValues(t, []string{"a", "b"}, object.Keys())
	assert.EqualValues(t, []string{"b", "a"}, object.InsertionKeys())
	assert.True(t, object.HasKind("a", KindString))
	assert.False(t, object.HasKind("a", KindNumber))
	assert.False(t, object.HasKind("c", KindString))
	assert.Panics(t, func() { object.Get("c") })

	_, ok := object.Lookup("c")
	assert.False(t, ok)
}

func TestObject_At(t *testing.T) {
	object := &Object{}
	member := object.At("k")
	assert.True(t, object.Has("k"))
	assert.False(t, member.IsValid())
	assert.EqualValues(t, `{"k": null}`, object.String())

	member.Set(Bool(true))
	assert.True(t, object.Get("k").AsBool())
	assert.Same(t, member, object.At("k"))
}

func TestObject_GetCopies(t *testing.T) {
	object := NewObject()
	object.Set("list", ArrayOf(String("x")))

	list := object.Get("list")
	list.Index(1).Set(String("y"))
	assert.EqualValues(t, `{"list": ["x"]}`, object.String())

	object.At("list").Index(1).Set(String("z"))
	assert.EqualValues(t, `{"list": ["x", "z"]}`, object.String())
}

func TestObject_Delete(t *testing.T) {
	object := NewObject()
	object.Set("a", Number(1))
	object.Set("b", Number(2))
	object.Set("c", Number(3))

	assert.True(t, object.Delete("b"))
	assert.False(t, object.Delete("b"))
	assert.EqualValues(t, []string{"a", "c"}, object.InsertionKeys())

	object.Set("b", Number(4))
	assert.EqualValues(t, []string{"a", "c", "b"}, object.InsertionKeys())

	object.Reset()
	assert.EqualValues(t, 0, object.Len())
	assert.Nil(t, object.Keys())
}

func TestObject_Range(t *testing.T) {
	object := NewObject()
	for _, key := range []string{"c", "a", "b"} {
		object.Set(key, String(key))
	}
	var visited []string
	object.Range(func(key string, value *Value) bool {
		visited = append(visited, key+"="+value.AsString())
		return key != "b"
	})
	assert.EqualValues(t, []string{"a=a", "b=b"}, visited)
}

func TestObject_CloneEqual(t *testing.T) {
	var nilObject *Object
	assert.EqualValues(t, 0, nilObject.Len())
	assert.False(t, nilObject.Has("a"))
	assert.True(t, nilObject.Equal(NewObject()))

	left := NewObject()
	left.Set("a", ArrayOf(Number(1)))
	left.Set("b", Null())
	right := NewObject()
	right.Set("b", Null())
	right.Set("a", ArrayOf(Number(1)))
	assert.True(t, left.Equal(right), "key order is ignored")

	cloned := left.Clone()
	cloned.At("a").Index(0).Set(Number(5))
	assert.False(t, left.Equal(cloned))
	assert.EqualValues(t, 1, left.Get("a").Index(0).AsNumber())

	right.Set("c", Bool(true))
	assert.False(t, left.Equal(right))
}
