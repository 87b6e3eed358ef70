package jsonx

import "github.com/viant/tagly/format/text"

// keyTransformer rewrites object keys on output.
type keyTransformer interface {
	Transform(key string) string
}

type identityKeys struct{}

func (identityKeys) Transform(key string) string { return key }

type caseFormatTransformer struct {
	caseFormat text.CaseFormat
}

func (c caseFormatTransformer) Transform(key string) string {
	if c.caseFormat == "" || key == "" {
		return key
	}
	if key == "ID" {
		switch c.caseFormat {
		case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
			return "id"
		}
	}
	src := text.DetectCaseFormat(key)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(key, c.caseFormat)
}
