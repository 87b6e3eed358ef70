package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/tagly/format/text"
)

func TestResolveOptions(t *testing.T) {
	var testCases = []struct {
		description string
		options     []Option
		expect      func(o *Options) bool
	}{
		{description: "compat defaults", expect: func(o *Options) bool {
			return o.Mode == ModeCompat && o.MalformedPolicy == Tolerant && o.DuplicateKeyPolicy == LastWins &&
				o.EscapePolicy == LenientEscapes && o.TrailingDataPolicy == IgnoreTrailing && o.MaxDepth == DefaultMaxDepth
		}},
		{description: "strict defaults", options: []Option{WithMode(ModeStrict)}, expect: func(o *Options) bool {
			return o.MalformedPolicy == FailFast && o.DuplicateKeyPolicy == ErrorOnDuplicate &&
				o.EscapePolicy == StrictEscapes && o.TrailingDataPolicy == ErrorOnTrailing
		}},
		{description: "explicit policy survives strict mode", options: []Option{WithDuplicateKeyPolicy(LastWins), WithMode(ModeStrict)}, expect: func(o *Options) bool {
			return o.DuplicateKeyPolicy == LastWins && o.MalformedPolicy == FailFast
		}},
		{description: "nil option ignored", options: []Option{nil, WithCompact()}, expect: func(o *Options) bool {
			return o.Compact
		}},
		{description: "key case format", options: []Option{WithKeyCaseFormat(text.CaseFormatLowerCamel)}, expect: func(o *Options) bool {
			return o.keyTransformer.Transform("UserName") == "userName"
		}},
		{description: "identity keys", expect: func(o *Options) bool {
			return o.keyTransformer.Transform("UserName") == "UserName"
		}},
	}

	for _, testCase := range testCases {
		assert.True(t, testCase.expect(resolveOptions(testCase.options)), testCase.description)
	}
	assert.Same(t, defaultResolved, optionsFor(nil))
}

func TestCaseFormatTransformer(t *testing.T) {
	var testCases = []struct {
		description string
		caseFormat  text.CaseFormat
		key         string
		expect      string
	}{
		{description: "upper camel to underscore", caseFormat: text.CaseFormatLowerUnderscore, key: "TimePtr", expect: "time_ptr"},
		{description: "id to lower camel", caseFormat: text.CaseFormatLowerCamel, key: "ID", expect: "id"},
		{description: "empty key", caseFormat: text.CaseFormatLowerCamel, key: "", expect: ""},
	}
	for _, testCase := range testCases {
		transformer := caseFormatTransformer{caseFormat: testCase.caseFormat}
		assert.EqualValues(t, testCase.expect, transformer.Transform(testCase.key), testCase.description)
	}
}
