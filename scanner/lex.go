package scanner

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	quotedToken
	numberToken
	literalToken
)

var (
	whitespaceMatcher = parsly.NewToken(whitespaceToken, " ", matcher.NewWhiteSpace())
	quotedMatcher     = parsly.NewToken(quotedToken, `" .... "`, &quoted{quote: '"', escape: '\\'})
	numberMatcher     = parsly.NewToken(numberToken, "number", &number{})
)

// literals holds tokens for the grammar's fixed literals
var literals = map[string]*parsly.Token{}

func init() {
	for _, text := range []string{"{", "}", "[", "]", ",", ":", `"`, "true", "false", "null"} {
		literals[text] = newLiteralToken(text)
	}
}

func newLiteralToken(text string) *parsly.Token {
	return parsly.NewToken(literalToken, text, literal(text))
}

func literalTokenFor(text string) *parsly.Token {
	if token, ok := literals[text]; ok {
		return token
	}
	return newLiteralToken(text)
}
