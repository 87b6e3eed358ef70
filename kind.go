package jsonx

// Kind identifies the payload held by a Value.
type Kind uint8

const (
	// KindInvalid marks a value that has not been assigned yet; it reads as null.
	KindInvalid Kind = iota
	KindNumber
	KindString
	KindBool
	KindNull
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}
