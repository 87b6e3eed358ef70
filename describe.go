package jsonx

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Describe writes a line oriented debug dump of v, one line per value.
//
//	object:
//		key: a
//	number: 1
func (v Value) Describe(w io.Writer) error {
	return writeDescription(w, func(dst []byte) []byte { return v.appendDescription(dst) })
}

// Describe writes a debug dump of every element.
func (a *Array) Describe(w io.Writer) error {
	return writeDescription(w, a.appendDescription)
}

// Describe writes a debug dump of every member in key order.
func (o *Object) Describe(w io.Writer) error {
	return writeDescription(w, o.appendDescription)
}

func writeDescription(w io.Writer, fn func(dst []byte) []byte) error {
	if _, err := w.Write(fn(nil)); err != nil {
		return errors.Wrap(err, "failed to write description")
	}
	return nil
}

func (v Value) appendDescription(dst []byte) []byte {
	switch v.kind {
	case KindNumber:
		dst = append(dst, "number: "...)
		dst = strconv.AppendFloat(dst, v.number, 'g', -1, 64)
	case KindString:
		dst = append(dst, "string: "...)
		dst = append(dst, v.text...)
	case KindBool:
		dst = append(dst, "bool: "...)
		dst = strconv.AppendBool(dst, v.boolean)
	case KindNull:
		dst = append(dst, "null: "...)
	case KindArray:
		dst = append(dst, "array: \n"...)
		return v.array.appendDescription(dst)
	case KindObject:
		dst = append(dst, "object: \n"...)
		return v.object.appendDescription(dst)
	default:
		return dst
	}
	return append(dst, '\n')
}

func (a *Array) appendDescription(dst []byte) []byte {
	for i := 0; i < a.Len(); i++ {
		dst = a.values[i].appendDescription(dst)
	}
	return dst
}

func (o *Object) appendDescription(dst []byte) []byte {
	for _, key := range o.Keys() {
		dst = append(dst, "\tkey: "...)
		dst = append(dst, key...)
		dst = append(dst, '\n')
		dst = o.values[key].appendDescription(dst)
	}
	return dst
}
