package jsonx

import (
	"io"

	"github.com/pkg/errors"
	"github.com/viant/jsonx/scanner"
)

// Parse reads r to the end and parses a single value.
func Parse(r io.Reader, opts ...Option) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, errors.Wrap(err, "failed to read input")
	}
	return ParseBytes(data, opts...)
}

// ParseString parses a single value from text.
func ParseString(text string, opts ...Option) (Value, error) {
	return ParseBytes([]byte(text), opts...)
}

// ParseBytes parses a single value from data.
//
// Input after the value is ignored unless TrailingDataPolicy is ErrorOnTrailing (the ModeStrict default).
func ParseBytes(data []byte, opts ...Option) (Value, error) {
	var result Value
	p := newParser(scanner.New(data), optionsFor(opts))
	if !p.parseValue(&result) || !p.checkTrailing() {
		return Value{}, p.syntaxError()
	}
	return result, nil
}

// UnmarshalJSON implements json.Unmarshaler; trailing data is rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseBytes(data, WithTrailingDataPolicy(ErrorOnTrailing))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// UnmarshalJSON implements json.Unmarshaler; data must hold a single array.
func (a *Array) UnmarshalJSON(data []byte) error {
	p := newParser(scanner.New(data), resolveOptions([]Option{WithTrailingDataPolicy(ErrorOnTrailing)}))
	parsed := &Array{}
	if !p.parseArray(parsed) || !p.checkTrailing() {
		return p.syntaxError()
	}
	*a = *parsed
	return nil
}

// UnmarshalJSON implements json.Unmarshaler; data must hold a single object.
func (o *Object) UnmarshalJSON(data []byte) error {
	p := newParser(scanner.New(data), resolveOptions([]Option{WithTrailingDataPolicy(ErrorOnTrailing)}))
	parsed := &Object{}
	if !p.parseObject(parsed) || !p.checkTrailing() {
		return p.syntaxError()
	}
	*o = *parsed
	return nil
}

// Decoder parses consecutive values from a single input stream.
type Decoder struct {
	reader  io.Reader
	options *Options
	scanner *scanner.Scanner
	err     error
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{reader: r, options: optionsFor(opts)}
}

func (d *Decoder) load() error {
	if d.scanner != nil || d.err != nil {
		return d.err
	}
	data, err := io.ReadAll(d.reader)
	if err != nil {
		d.err = errors.Wrap(err, "failed to read input")
		return d.err
	}
	d.scanner = scanner.New(data)
	return nil
}

// Decode parses the next value into value; it returns io.EOF when no input is left.
// On failure value is reset and the decoder stays at the start of the failed value.
func (d *Decoder) Decode(value *Value) error {
	if err := d.load(); err != nil {
		return err
	}
	d.scanner.SkipWhitespace()
	if d.scanner.EOF() {
		value.Reset()
		return io.EOF
	}
	p := newParser(d.scanner, d.options)
	if !p.parseValue(value) {
		return p.syntaxError()
	}
	return nil
}

// More returns true if non-whitespace input remains.
func (d *Decoder) More() bool {
	if err := d.load(); err != nil {
		return false
	}
	d.scanner.SkipWhitespace()
	return !d.scanner.EOF()
}

// InputOffset returns the current input offset.
func (d *Decoder) InputOffset() int {
	if d.scanner == nil {
		return 0
	}
	return d.scanner.Pos()
}
