package scanner

import "github.com/viant/parsly"

// literal matches an exact byte sequence or nothing.
type literal string

func (l literal) Match(cursor *parsly.Cursor) int {
	end := cursor.Pos + len(l)
	if end > len(cursor.Input) {
		return 0
	}
	if string(cursor.Input[cursor.Pos:end]) != string(l) {
		return 0
	}
	return len(l)
}

// quoted matches a complete quoted string including both quotes; an unterminated string does not match.
type quoted struct {
	quote  byte
	escape byte
}

func (q *quoted) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	if pos >= len(input) || input[pos] != q.quote {
		return 0
	}
	escaped := false
	for i := pos + 1; i < len(input); i++ {
		c := input[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case q.escape:
			escaped = true
		case q.quote:
			return i - pos + 1
		}
	}
	return 0
}

// number matches the longest decimal floating point prefix: [+-]? digits? ('.' digits?)? ([eE][+-]?digits)?
// with at least one mantissa digit. An exponent marker without digits is not consumed.
type number struct{}

func (n *number) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	i := pos
	if i < len(input) && (input[i] == '+' || input[i] == '-') {
		i++
	}
	digits := 0
	for i < len(input) && isDigit(input[i]) {
		i++
		digits++
	}
	if i < len(input) && input[i] == '.' {
		i++
		for i < len(input) && isDigit(input[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(input) && (input[i] == 'e' || input[i] == 'E') {
		j := i + 1
		if j < len(input) && (input[j] == '+' || input[j] == '-') {
			j++
		}
		start := j
		for j < len(input) && isDigit(input[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}
	return i - pos
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
