package jsonx

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/viant/jsonx/scanner"
)

// parser holds the state of a single parse.
//
// Every grammar function returns false without consuming input when the
// construct does not start at the current position. Once a construct has
// started, a failure is also recorded as the furthest syntax error seen.
type parser struct {
	scanner *scanner.Scanner
	options *Options
	depth   int
	path    pathState
	err     *SyntaxError
}

func newParser(s *scanner.Scanner, options *Options) *parser {
	return &parser{scanner: s, options: options}
}

// ParseValue parses the value at the current scanner position into value.
// On failure value is reset and the scanner is left where it started.
func ParseValue(s *scanner.Scanner, value *Value, opts ...Option) bool {
	return newParser(s, optionsFor(opts)).parseValue(value)
}

// ParseArray parses an array at the current scanner position into array.
func ParseArray(s *scanner.Scanner, array *Array, opts ...Option) bool {
	start := s.Pos()
	if newParser(s, optionsFor(opts)).parseArray(array) {
		return true
	}
	array.Reset()
	s.Reset(start)
	return false
}

// ParseObject parses an object at the current scanner position into object.
func ParseObject(s *scanner.Scanner, object *Object, opts ...Option) bool {
	start := s.Pos()
	if newParser(s, optionsFor(opts)).parseObject(object) {
		return true
	}
	object.Reset()
	s.Reset(start)
	return false
}

// parseValue tries string, bool, number, null, array and object in that order.
func (p *parser) parseValue(value *Value) bool {
	value.Reset()
	start := p.scanner.Pos()

	var text string
	if p.parseString(&text) {
		*value = String(text)
		return true
	}
	var flag bool
	if p.parseBool(&flag) {
		*value = Bool(flag)
		return true
	}
	var number float64
	if p.parseNumber(&number) {
		*value = Number(number)
		return true
	}
	if p.parseNull() {
		*value = Null()
		return true
	}
	if next, ok := p.scanner.Peek(); ok && next == '[' {
		array := &Array{}
		if p.parseArray(array) {
			*value = wrapArray(array)
			return true
		}
		p.scanner.Reset(start)
	}
	object := &Object{}
	if p.parseObject(object) {
		*value = wrapObject(object)
		return true
	}
	p.scanner.Reset(start)
	return false
}

func (p *parser) parseString(dest *string) bool {
	start := p.scanner.Pos()
	raw, ok := p.scanner.Quoted()
	if !ok {
		if next, has := p.scanner.Peek(); has && next == '"' {
			p.failAt(len(p.scanner.Input()), "unterminated string")
		}
		return false
	}
	text, err := unescapeString(raw, p.options.EscapePolicy)
	if err != nil {
		p.fail(err.Error())
		p.scanner.Reset(start)
		return false
	}
	*dest = text
	return true
}

func (p *parser) parseBool(dest *bool) bool {
	if p.scanner.Match("true") {
		*dest = true
		return true
	}
	if p.scanner.Match("false") {
		*dest = false
		return true
	}
	return false
}

func (p *parser) parseNull() bool {
	return p.scanner.Match("null")
}

func (p *parser) parseNumber(dest *float64) bool {
	p.scanner.SkipWhitespace()
	start := p.scanner.Pos()
	token, ok := p.scanner.Number()
	if !ok {
		return false
	}
	number, err := strconv.ParseFloat(token, 64)
	if err != nil {
		p.failAt(start, "number out of range: "+token)
		p.scanner.Reset(start)
		return false
	}
	*dest = number
	return true
}

func (p *parser) parseArray(array *Array) bool {
	array.Reset()
	if !p.scanner.Match("[") {
		return false
	}
	if !p.enter() {
		return false
	}
	defer p.leave()

	afterComma := false
	for {
		var element Value
		p.path.pushIndex(array.Len())
		ok := p.parseValue(&element)
		p.path.pop()
		if !ok {
			break
		}
		array.append(element)
		if afterComma = p.scanner.Match(","); !afterComma {
			break
		}
	}
	if !p.scanner.Match("]") {
		return p.fail("expected ']'")
	}
	if afterComma && p.options.MalformedPolicy == FailFast {
		return p.fail("unexpected trailing comma")
	}
	return true
}

func (p *parser) parseObject(object *Object) bool {
	object.Reset()
	if !p.scanner.Match("{") {
		return false
	}
	if !p.enter() {
		return false
	}
	defer p.leave()

	if p.scanner.Match("}") {
		return true
	}
	for {
		var key string
		if !p.parseString(&key) {
			if object.Len() > 0 && p.scanner.Match("}") {
				if p.options.MalformedPolicy == FailFast {
					return p.fail("unexpected trailing comma")
				}
				return true
			}
			return p.fail("expected string key")
		}
		if !p.scanner.Match(":") {
			return p.fail("expected ':'")
		}
		if p.options.DuplicateKeyPolicy == ErrorOnDuplicate && object.Has(key) {
			return p.fail("duplicate key " + strconv.Quote(key))
		}
		p.path.pushField(key)
		value := &Value{}
		if !p.parseValue(value) {
			p.scanner.SkipWhitespace()
			p.fail("expected value")
			p.path.pop()
			return false
		}
		p.path.pop()
		object.put(key, value)
		if !p.scanner.Match(",") {
			break
		}
	}
	if !p.scanner.Match("}") {
		return p.fail("expected '}'")
	}
	return true
}

func (p *parser) enter() bool {
	p.depth++
	if p.options.MaxDepth > 0 && p.depth > p.options.MaxDepth {
		p.depth--
		return p.fail(ErrMaxDepth.Error())
	}
	return true
}

func (p *parser) leave() { p.depth-- }

func (p *parser) fail(msg string) bool {
	return p.failAt(p.scanner.Pos(), msg)
}

// failAt keeps the error recorded furthest into the input.
func (p *parser) failAt(offset int, msg string) bool {
	if p.err == nil || offset > p.err.Offset {
		p.err = &SyntaxError{Offset: offset, Path: p.path.ref(), Msg: msg}
	}
	return false
}

func (p *parser) syntaxError() error {
	if p.err == nil {
		p.scanner.SkipWhitespace()
		msg := "invalid value"
		if p.scanner.EOF() {
			msg = "unexpected EOF"
		}
		p.failAt(p.scanner.Pos(), msg)
	}
	if sink := p.options.DebugPathSink; sink != nil {
		sink(p.err.Path)
	}
	return p.err
}

func (p *parser) checkTrailing() bool {
	if p.options.TrailingDataPolicy != ErrorOnTrailing {
		return true
	}
	p.scanner.SkipWhitespace()
	if p.scanner.EOF() {
		return true
	}
	p.err = nil
	return p.fail("unexpected trailing data")
}

// unescapeString decodes escape sequences in the body of a quoted string.
func unescapeString(raw string, policy EscapePolicy) (string, error) {
	if strings.IndexByte(raw, '\\') == -1 {
		if policy == StrictEscapes {
			if i := indexControl(raw); i != -1 {
				return "", errors.Errorf("invalid control character in string at %d", i)
			}
		}
		return raw, nil
	}
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			if c < 0x20 && policy == StrictEscapes {
				return "", errors.Errorf("invalid control character in string at %d", i)
			}
			out = append(out, c)
			continue
		}
		i++
		if i >= len(raw) {
			return "", errors.New("invalid escape sequence")
		}
		switch raw[i] {
		case '"', '\\', '/':
			out = append(out, raw[i])
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			r, size, ok := decodeUnicodeEscape(raw[i-1:])
			if !ok {
				if policy == StrictEscapes {
					return "", errors.New("invalid unicode escape")
				}
				out = append(out, '\\', 'u')
				continue
			}
			out = utf8.AppendRune(out, r)
			i += size - 2
		default:
			if policy == StrictEscapes {
				return "", errors.Errorf("invalid escape sequence \\%c", raw[i])
			}
			out = append(out, '\\', raw[i])
		}
	}
	return string(out), nil
}

// decodeUnicodeEscape decodes \uXXXX, or a \uXXXX\uXXXX surrogate pair, at the start of s.
func decodeUnicodeEscape(s string) (rune, int, bool) {
	r, ok := parseHex4(s, 2)
	if !ok {
		return 0, 0, false
	}
	if !utf16.IsSurrogate(r) {
		return r, 6, true
	}
	if len(s) >= 12 && s[6] == '\\' && s[7] == 'u' {
		if low, ok := parseHex4(s, 8); ok {
			if combined := utf16.DecodeRune(r, low); combined != utf8.RuneError {
				return combined, 12, true
			}
		}
	}
	return 0, 0, false
}

func parseHex4(s string, offset int) (rune, bool) {
	if len(s) < offset+4 {
		return 0, false
	}
	var r rune
	for _, c := range []byte(s[offset : offset+4]) {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			r |= rune(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return r, true
}

func indexControl(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 {
			return i
		}
	}
	return -1
}
