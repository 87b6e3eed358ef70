package scanner

import "github.com/viant/parsly"

// Scanner is a rewindable cursor over in-memory JSON text.
//
// Every primitive skips leading whitespace first. A failed match leaves the
// position right after the skipped whitespace, no matter how much of the
// candidate token was inspected.
type Scanner struct {
	cursor *parsly.Cursor
}

// New creates a scanner over input
func New(input []byte) *Scanner {
	return &Scanner{cursor: parsly.NewCursor("", input, 0)}
}

// NewString creates a scanner over input text
func NewString(input string) *Scanner {
	return New([]byte(input))
}

// Input returns scanned input
func (s *Scanner) Input() []byte { return s.cursor.Input }

// Pos returns current offset
func (s *Scanner) Pos() int { return s.cursor.Pos }

// Reset moves the cursor to a previously returned offset
func (s *Scanner) Reset(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.cursor.Input) {
		pos = len(s.cursor.Input)
	}
	s.cursor.Pos = pos
}

// Remaining returns number of unread bytes
func (s *Scanner) Remaining() int { return len(s.cursor.Input) - s.cursor.Pos }

// EOF returns true if all input was consumed
func (s *Scanner) EOF() bool { return s.cursor.Pos >= len(s.cursor.Input) }

// SkipWhitespace advances past whitespace
func (s *Scanner) SkipWhitespace() {
	if s.EOF() {
		return
	}
	s.cursor.MatchOne(whitespaceMatcher)
}

// Peek returns the byte at the current position without consuming it
func (s *Scanner) Peek() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.cursor.Input[s.cursor.Pos], true
}

// Match skips whitespace and consumes literal if the input continues with it.
func (s *Scanner) Match(literal string) bool {
	s.SkipWhitespace()
	if literal == "" {
		return true
	}
	return s.matchToken(literalTokenFor(literal))
}

// Quoted skips whitespace and consumes a complete quoted string, returning the text between the quotes.
func (s *Scanner) Quoted() (string, bool) {
	s.SkipWhitespace()
	start := s.cursor.Pos
	if !s.matchToken(quotedMatcher) {
		return "", false
	}
	return string(s.cursor.Input[start+1 : s.cursor.Pos-1]), true
}

// Number skips whitespace and consumes the longest decimal floating point token.
func (s *Scanner) Number() (string, bool) {
	s.SkipWhitespace()
	start := s.cursor.Pos
	if !s.matchToken(numberMatcher) {
		return "", false
	}
	return string(s.cursor.Input[start:s.cursor.Pos]), true
}

func (s *Scanner) matchToken(token *parsly.Token) bool {
	if s.EOF() {
		return false
	}
	pos := s.cursor.Pos
	match := s.cursor.MatchOne(token)
	if match.Code != token.Code {
		s.cursor.Pos = pos
		return false
	}
	return true
}
