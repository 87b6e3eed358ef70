package jsonx

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const hexDigits = "0123456789abcdef"

type encoder struct {
	buf     []byte
	options *Options
	depth   int
}

// Marshal encodes value as JSON text.
func Marshal(value Value, opts ...Option) ([]byte, error) {
	return marshal(optionsFor(opts), func(e *encoder) error { return e.encodeValue(&value) })
}

func marshal(options *Options, fn func(e *encoder) error) ([]byte, error) {
	e := borrowEncoder(options)
	defer e.release()
	if err := fn(e); err != nil {
		return nil, err
	}
	out := make([]byte, len(e.buf))
	copy(out, e.buf)
	return out, nil
}

// Encoder writes values to an output stream.
type Encoder struct {
	writer  io.Writer
	options *Options
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{writer: w, options: optionsFor(opts)}
}

// Encode writes the JSON text of value.
func (e *Encoder) Encode(value Value) error {
	data, err := marshal(e.options, func(enc *encoder) error { return enc.encodeValue(&value) })
	if err != nil {
		return err
	}
	if _, err = e.writer.Write(data); err != nil {
		return errors.Wrap(err, "failed to write value")
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) { return Marshal(v) }

// WriteTo implements io.WriterTo.
func (v Value) WriteTo(w io.Writer) (int64, error) {
	return writeTo(w, func(e *encoder) error { return e.encodeValue(&v) })
}

// String returns the JSON text of v, or the encoding error text.
func (v Value) String() string {
	data, err := Marshal(v)
	if err != nil {
		return err.Error()
	}
	return string(data)
}

// MarshalJSON implements json.Marshaler.
func (a *Array) MarshalJSON() ([]byte, error) {
	return marshal(defaultResolved, func(e *encoder) error { return e.encodeArray(a) })
}

// WriteTo implements io.WriterTo.
func (a *Array) WriteTo(w io.Writer) (int64, error) {
	return writeTo(w, func(e *encoder) error { return e.encodeArray(a) })
}

func (a *Array) String() string {
	data, err := a.MarshalJSON()
	if err != nil {
		return err.Error()
	}
	return string(data)
}

// MarshalJSON implements json.Marshaler.
func (o *Object) MarshalJSON() ([]byte, error) {
	return marshal(defaultResolved, func(e *encoder) error { return e.encodeObject(o) })
}

// WriteTo implements io.WriterTo.
func (o *Object) WriteTo(w io.Writer) (int64, error) {
	return writeTo(w, func(e *encoder) error { return e.encodeObject(o) })
}

func (o *Object) String() string {
	data, err := o.MarshalJSON()
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func writeTo(w io.Writer, fn func(e *encoder) error) (int64, error) {
	data, err := marshal(defaultResolved, fn)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	if err != nil {
		return int64(n), errors.Wrap(err, "failed to write value")
	}
	return int64(n), nil
}

func (e *encoder) encodeValue(v *Value) error {
	switch v.kind {
	case KindNumber:
		return e.encodeNumber(v.number)
	case KindString:
		e.buf = appendQuoted(e.buf, v.text)
	case KindBool:
		e.buf = strconv.AppendBool(e.buf, v.boolean)
	case KindArray:
		return e.encodeArray(v.array)
	case KindObject:
		return e.encodeObject(v.object)
	default:
		e.buf = append(e.buf, "null"...)
	}
	return nil
}

func (e *encoder) encodeNumber(number float64) error {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return errors.Wrapf(ErrUnsupportedNumber, "%v", number)
	}
	if e.options.NumberFormat == NumberFormatCompat {
		e.buf = strconv.AppendFloat(e.buf, number, 'g', 6, 64)
		return nil
	}
	e.buf = strconv.AppendFloat(e.buf, number, 'g', -1, 64)
	return nil
}

func (e *encoder) encodeArray(array *Array) error {
	if array.Len() == 0 {
		e.buf = append(e.buf, '[', ']')
		return nil
	}
	e.buf = append(e.buf, '[')
	e.depth++
	for i := range array.values {
		if i > 0 {
			e.separator()
		}
		e.newline()
		if err := e.encodeValue(&array.values[i]); err != nil {
			return err
		}
	}
	e.depth--
	e.newline()
	e.buf = append(e.buf, ']')
	return nil
}

func (e *encoder) encodeObject(object *Object) error {
	if object.Len() == 0 {
		e.buf = append(e.buf, '{', '}')
		return nil
	}
	keys := object.Keys()
	if e.options.KeyOrder == InsertionOrder {
		keys = object.InsertionKeys()
	}
	e.buf = append(e.buf, '{')
	e.depth++
	for i, key := range keys {
		if i > 0 {
			e.separator()
		}
		e.newline()
		e.buf = appendQuoted(e.buf, e.options.keyTransformer.Transform(key))
		e.buf = append(e.buf, ':')
		if !e.options.Compact {
			e.buf = append(e.buf, ' ')
		}
		if err := e.encodeValue(object.values[key]); err != nil {
			return err
		}
	}
	e.depth--
	e.newline()
	e.buf = append(e.buf, '}')
	return nil
}

func (e *encoder) indented() bool {
	return e.options.Indent != "" || e.options.Prefix != ""
}

func (e *encoder) separator() {
	e.buf = append(e.buf, ',')
	if !e.options.Compact && !e.indented() {
		e.buf = append(e.buf, ' ')
	}
}

func (e *encoder) newline() {
	if !e.indented() {
		return
	}
	e.buf = append(e.buf, '\n')
	e.buf = append(e.buf, e.options.Prefix...)
	e.buf = append(e.buf, strings.Repeat(e.options.Indent, e.depth)...)
}

// appendQuoted quotes s, escaping '"', '\\', '/', the named control characters and any other byte below 0x20.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	i := 0
	for ; i < len(s); i++ {
		if needsEscape(s[i]) {
			break
		}
	}
	if i == len(s) {
		dst = append(dst, s...)
		return append(dst, '"')
	}
	dst = append(dst, s[:i]...)
	for ; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\', '/':
			dst = append(dst, '\\', c)
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if c < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
				continue
			}
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}

func needsEscape(c byte) bool {
	return c < 0x20 || c == '"' || c == '\\' || c == '/'
}
