package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArray_At(t *testing.T) {
	array := NewArray(0)
	array.At(3).Set(Number(7))

	assert.EqualValues(t, 4, array.Len())
	for i := 0; i < 3; i++ {
		assert.False(t, array.Value(i).IsValid())
		assert.True(t, array.Value(i).IsNull())
	}
	assert.EqualValues(t, 7, array.Value(3).AsNumber())
	assert.EqualValues(t, "[null, null, null, 7]", array.String())

	assert.Same(t, array.At(1), array.At(1))
	assert.PanicsWithError(t, "jsonx: negative array index -1", func() { array.At(-1) })
}

func TestArray_ValueCopies(t *testing.T) {
	inner := NewObject()
	inner.Set("k", String("v"))
	array := &Array{}
	array.Append(ArrayOf(Number(1)), ObjectValue(inner))

	nested := array.Value(0)
	nested.Index(0).Set(Number(2))
	member := array.Value(1)
	member.AsObject().Set("k", String("w"))

	assert.EqualValues(t, `[[1], {"k": "v"}]`, array.String())
	array.At(0).Index(0).Set(Number(3))
	assert.EqualValues(t, `[[3], {"k": "v"}]`, array.String())
}

func TestArray_Has(t *testing.T) {
	array := NewArray(2)
	array.Set(1, String("x"))

	var testCases = []struct {
		description string
		index       int
		kind        Kind
		expect      bool
	}{
		{description: "unassigned element", index: 0, kind: KindInvalid, expect: true},
		{description: "matching kind", index: 1, kind: KindString, expect: true},
		{description: "other kind", index: 1, kind: KindNumber, expect: false},
		{description: "out of range", index: 2, kind: KindString, expect: false},
		{description: "negative", index: -1, kind: KindString, expect: false},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, array.Has(testCase.index, testCase.kind), testCase.description)
	}
	assert.EqualValues(t, 2, array.Len(), "Has never grows the array")
}

func TestArray_AppendClones(t *testing.T) {
	element := ArrayOf(Number(1))
	array := &Array{}
	array.Append(element, String("a"))
	element.Index(0).Set(Number(2))

	assert.EqualValues(t, `[[1], "a"]`, array.String())
	assert.EqualValues(t, 2, len(array.Values()))

	array.Reset()
	assert.EqualValues(t, 0, array.Len())
	assert.EqualValues(t, "[]", array.String())
}

func TestArray_CloneEqual(t *testing.T) {
	var nilArray *Array
	assert.EqualValues(t, 0, nilArray.Len())
	assert.Nil(t, nilArray.Values())
	assert.True(t, nilArray.Equal(&Array{}))

	array := &Array{}
	array.Append(Number(1), ArrayOf(String("x")))
	cloned := array.Clone()
	assert.True(t, array.Equal(cloned))
	cloned.At(1).Index(0).Set(String("y"))
	assert.False(t, array.Equal(cloned))
	assert.EqualValues(t, "x", array.At(1).Index(0).AsString())

	reserved := NewArray(3)
	reserved.Reserve(2)
	assert.EqualValues(t, 3, reserved.Len())
}
