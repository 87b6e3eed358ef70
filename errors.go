package jsonx

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedNumber is returned when encoding NaN or infinity
	ErrUnsupportedNumber = errors.New("unsupported number")
	// ErrMaxDepth is reported when nesting exceeds the configured limit
	ErrMaxDepth = errors.New("max nesting depth exceeded")
	// ErrCycle is reported when a Go value refers back to itself
	ErrCycle = errors.New("cycle detected")
)

// FieldError reports the innermost struct field that could not be converted.
type FieldError struct {
	Type  reflect.Type
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("jsonx: field %v.%v: %v", e.Type, e.Field, e.Err)
}

// Cause returns the underlying conversion error.
func (e *FieldError) Cause() error { return e.Err }

func (e *FieldError) Unwrap() error { return e.Err }

// SyntaxError describes where parsing failed.
type SyntaxError struct {
	Offset int
	Path   PathRef
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Path.Len() == 0 {
		return fmt.Sprintf("%s at %d", e.Msg, e.Offset)
	}
	return fmt.Sprintf("%s at %d (path: %s)", e.Msg, e.Offset, e.Path.String())
}

// TypeError is the panic value raised when a payload is read as the wrong kind.
type TypeError struct {
	Expected Kind
	Actual   Kind
}

func (e *TypeError) Error() string {
	return "jsonx: expected " + e.Expected.String() + ", got " + e.Actual.String()
}

// String formats the path as a.b[1].c
func (p PathRef) String() string {
	builder := strings.Builder{}
	for i := 0; i < p.depth; i++ {
		segment := p.segments[i]
		switch segment.Kind {
		case SegmentIndex:
			builder.WriteString(fmt.Sprintf("[%d]", segment.Index))
		default:
			if i > 0 {
				builder.WriteByte('.')
			}
			builder.WriteString(segment.Field)
		}
	}
	return builder.String()
}
