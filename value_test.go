package jsonx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Kind(t *testing.T) {
	var testCases = []struct {
		description string
		value       Value
		expect      Kind
		expectNull  bool
	}{
		{description: "zero value", value: Value{}, expect: KindInvalid, expectNull: true},
		{description: "number", value: Number(1.5), expect: KindNumber},
		{description: "string", value: String("x"), expect: KindString},
		{description: "bool", value: Bool(false), expect: KindBool},
		{description: "null", value: Null(), expect: KindNull, expectNull: true},
		{description: "array", value: ArrayOf(Number(1)), expect: KindArray},
		{description: "object", value: ObjectValue(NewObject()), expect: KindObject},
	}

	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, testCase.value.Kind(), testCase.description)
		assert.True(t, testCase.value.Is(testCase.expect), testCase.description)
		assert.EqualValues(t, testCase.expectNull, testCase.value.IsNull(), testCase.description)
		assert.EqualValues(t, testCase.expect != KindInvalid, testCase.value.IsValid(), testCase.description)
	}
}

func TestValue_Accessors(t *testing.T) {
	assert.EqualValues(t, 2.75, Number(2.75).AsNumber())
	assert.EqualValues(t, 2, Number(2.75).AsInt())
	assert.EqualValues(t, -2, Number(-2.75).AsInt64())
	assert.EqualValues(t, float32(2.75), Number(2.75).AsFloat32())
	assert.EqualValues(t, "text", String("text").AsString())
	assert.True(t, Bool(true).AsBool())
	assert.EqualValues(t, 2, ArrayOf(Null(), Null()).AsArray().Len())
	assert.EqualValues(t, 0, ObjectValue(nil).AsObject().Len())
}

func TestValue_AccessorPanics(t *testing.T) {
	var testCases = []struct {
		description string
		access      func()
		expect      *TypeError
	}{
		{description: "string as number", access: func() { String("1").AsNumber() }, expect: &TypeError{Expected: KindNumber, Actual: KindString}},
		{description: "number as string", access: func() { Number(1).AsString() }, expect: &TypeError{Expected: KindString, Actual: KindNumber}},
		{description: "null as bool", access: func() { Null().AsBool() }, expect: &TypeError{Expected: KindBool, Actual: KindNull}},
		{description: "invalid as array", access: func() { Value{}.AsArray() }, expect: &TypeError{Expected: KindArray, Actual: KindInvalid}},
		{description: "array as object", access: func() { ArrayOf().AsObject() }, expect: &TypeError{Expected: KindObject, Actual: KindArray}},
		{description: "index on object", access: func() { ObjectValue(nil).Index(0) }, expect: &TypeError{Expected: KindArray, Actual: KindObject}},
	}

	for _, testCase := range testCases {
		assert.PanicsWithValue(t, testCase.expect, testCase.access, testCase.description)
	}
	assert.EqualValues(t, "jsonx: expected number, got string", (&TypeError{Expected: KindNumber, Actual: KindString}).Error())
	assert.Panics(t, func() { ObjectValue(nil).Key("missing") })
}

func TestValue_Navigation(t *testing.T) {
	value, err := ParseString(`{"a":[1,{"b":true}]}`)
	assert.Nil(t, err)
	assert.True(t, value.Has("a"))
	assert.False(t, value.Has("b"))
	assert.EqualValues(t, 1, value.Key("a").Index(0).AsNumber())
	assert.True(t, value.Key("a").Index(1).Key("b").AsBool())

	value.Key("a").Index(3).Set(String("grown"))
	assert.EqualValues(t, 4, value.Key("a").AsArray().Len())
	assert.EqualValues(t, `{"a": [1, {"b": true}, null, "grown"]}`, value.String())
}

func TestValue_SetClones(t *testing.T) {
	source := ArrayOf(Number(1))
	var target Value
	target.Set(source)
	source.AsArray().At(0).Set(Number(2))

	assert.EqualValues(t, 1, target.Index(0).AsNumber())
	assert.EqualValues(t, 2, source.Index(0).AsNumber())

	target.Reset()
	assert.False(t, target.IsValid())
}

func TestValue_CloneEqual(t *testing.T) {
	original, err := ParseString(`{"a":[1,"x",null,{"b":false}],"c":{}}`)
	assert.Nil(t, err)
	cloned := original.Clone()
	assert.True(t, original.Equal(cloned))

	cloned.Key("a").Index(3).Key("b").Set(Bool(true))
	assert.False(t, original.Equal(cloned))
	assert.False(t, original.Key("a").Index(3).Key("b").AsBool())

	var testCases = []struct {
		description string
		left        Value
		right       Value
		expect      bool
	}{
		{description: "same number", left: Number(1), right: Number(1), expect: true},
		{description: "NaN", left: Number(math.NaN()), right: Number(math.NaN()), expect: true},
		{description: "different kind", left: Number(0), right: Bool(false), expect: false},
		{description: "null and invalid", left: Null(), right: Value{}, expect: false},
		{description: "empty containers", left: ArrayOf(), right: ArrayValue(nil), expect: true},
		{description: "different strings", left: String("a"), right: String("b"), expect: false},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, testCase.left.Equal(testCase.right), testCase.description)
	}
}

func TestKind_String(t *testing.T) {
	assert.EqualValues(t, "invalid", KindInvalid.String())
	assert.EqualValues(t, "object", KindObject.String())
	assert.EqualValues(t, "invalid", Kind(42).String())
}
