package jsonx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Describe(t *testing.T) {
	value, err := ParseString(`{"c":true,"a":[1.5,"x"],"b":null}`)
	require.Nil(t, err)

	buffer := &bytes.Buffer{}
	require.Nil(t, value.Describe(buffer))
	expect := "object: \n" +
		"\tkey: a\n" +
		"array: \n" +
		"number: 1.5\n" +
		"string: x\n" +
		"\tkey: b\n" +
		"null: \n" +
		"\tkey: c\n" +
		"bool: true\n"
	assert.EqualValues(t, expect, buffer.String())

	buffer.Reset()
	require.Nil(t, value.Key("a").AsArray().Describe(buffer))
	assert.EqualValues(t, "number: 1.5\nstring: x\n", buffer.String())

	buffer.Reset()
	object := NewObject()
	object.Set("k", Number(2))
	require.Nil(t, object.Describe(buffer))
	assert.EqualValues(t, "\tkey: k\nnumber: 2\n", buffer.String())

	buffer.Reset()
	require.Nil(t, Value{}.Describe(buffer))
	assert.EqualValues(t, "", buffer.String())
}
