package jsonx

import "github.com/viant/tagly/format/text"

// Mode controls compatibility vs strict behavior.
type Mode int

const (
	ModeCompat Mode = iota
	ModeStrict
)

// MalformedPolicy controls trailing comma tolerance.
type MalformedPolicy int

const (
	Tolerant MalformedPolicy = iota
	FailFast
)

// DuplicateKeyPolicy controls duplicate object key behavior.
type DuplicateKeyPolicy int

const (
	LastWins DuplicateKeyPolicy = iota
	ErrorOnDuplicate
)

// EscapePolicy controls unknown or malformed string escapes.
type EscapePolicy int

const (
	// LenientEscapes keeps an unknown escape as the backslash followed by the escaped byte.
	LenientEscapes EscapePolicy = iota
	StrictEscapes
)

// TrailingDataPolicy controls non-whitespace input after a top-level value.
type TrailingDataPolicy int

const (
	IgnoreTrailing TrailingDataPolicy = iota
	ErrorOnTrailing
)

// KeyOrder controls object member order on output.
type KeyOrder int

const (
	SortedKeys KeyOrder = iota
	InsertionOrder
)

// NumberFormat controls number output.
type NumberFormat int

const (
	// NumberFormatShortest emits the shortest text that parses back to the same float64.
	NumberFormatShortest NumberFormat = iota
	// NumberFormatCompat emits six significant digits, like a default C++ ostream.
	NumberFormatCompat
)

// DefaultMaxDepth limits array/object nesting while parsing.
const DefaultMaxDepth = 10000

// PathRef references path segments without eager string allocation.
type PathRef struct {
	segments []PathSegment
	depth    int
}

func (p PathRef) Len() int { return p.depth }

func (p PathRef) At(i int) (PathSegment, bool) {
	if i < 0 || i >= p.depth {
		return PathSegment{}, false
	}
	return p.segments[i], true
}

func (p PathRef) Segments() []PathSegment {
	if p.depth == 0 {
		return nil
	}
	out := make([]PathSegment, p.depth)
	copy(out, p.segments[:p.depth])
	return out
}

// PathSegment describes one path component.
type PathSegment struct {
	Field string
	Index int
	Kind  SegmentKind
}

// SegmentKind identifies path segment type.
type SegmentKind int

const (
	SegmentField SegmentKind = iota
	SegmentIndex
)

// Option mutates runtime options.
type Option interface{ apply(*Options) }

// Options defines runtime behavior.
type Options struct {
	Mode               Mode
	MalformedPolicy    MalformedPolicy
	DuplicateKeyPolicy DuplicateKeyPolicy
	EscapePolicy       EscapePolicy
	TrailingDataPolicy TrailingDataPolicy
	MaxDepth           int
	DebugPathSink      func(PathRef)

	KeyOrder      KeyOrder
	NumberFormat  NumberFormat
	KeyCaseFormat text.CaseFormat
	Compact       bool
	Prefix        string
	Indent        string

	keyTransformer keyTransformer

	setMalformedPolicy    bool
	setDuplicateKeyPolicy bool
	setEscapePolicy       bool
	setTrailingDataPolicy bool
}
