// Package jsonx parses JSON text into a dynamic Value tree and serializes it back.
//
// A Value holds exactly one of number, string, bool, null, array or object;
// the zero Value is unassigned and reads as null. Reading a payload as the
// wrong kind panics with *TypeError.
//
//	value, err := jsonx.ParseString(`{"a":[1,{"b":true}]}`)
//	if err != nil {
//		return err
//	}
//	flag := value.Key("a").Index(1).Key("b").AsBool()
//
// ModeCompat (the default) tolerates trailing commas, unknown string escapes
// and trailing input; ModeStrict rejects them along with duplicate keys.
// Object keys are written in lexicographic order unless WithKeyOrder(InsertionOrder) is used.
package jsonx
