package jsonx

import (
	"encoding"
	"encoding/base64"
	"encoding/json"
	"reflect"
	"sort"
	"strconv"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/viant/jsonx/internal/lru"
	"github.com/viant/jsonx/internal/tagutil"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

var (
	marshalerType     = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	jsonNumberType    = reflect.TypeOf(json.Number(""))
	valueType         = reflect.TypeOf(Value{})
	valuePtrType      = reflect.TypeOf(&Value{})
	arrayPtrType      = reflect.TypeOf(&Array{})
	objectPtrType     = reflect.TypeOf(&Object{})
)

type planKey struct {
	rType      reflect.Type
	caseFormat text.CaseFormat
}

type structPlan struct {
	fields []fieldPlan
}

type fieldPlan struct {
	name      string
	rType     reflect.Type
	path      []fieldStep
	depth     int
	explicit  bool
	omitEmpty bool
	asString  bool
}

// fieldStep locates a field within its immediate parent; indirect marks an embedded pointer.
type fieldStep struct {
	xField   *xunsafe.Field
	indirect bool
}

// pointer returns the address of the field within the struct at structPtr, or nil when an embedded pointer on the path is nil.
func (f *fieldPlan) pointer(structPtr unsafe.Pointer) unsafe.Pointer {
	ptr := structPtr
	last := len(f.path) - 1
	for i := range f.path {
		step := &f.path[i]
		ptr = step.xField.Pointer(ptr)
		if i < last && step.indirect {
			if ptr = *(*unsafe.Pointer)(ptr); ptr == nil {
				return nil
			}
		}
	}
	return ptr
}

var structPlans = lru.New[planKey, *structPlan](lru.DefaultCapacity)

// Interface converts v to plain Go values: float64, string, bool, []interface{}, map[string]interface{} or nil.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindNumber:
		return v.number
	case KindString:
		return v.text
	case KindBool:
		return v.boolean
	case KindArray:
		result := make([]interface{}, v.array.Len())
		for i := range result {
			result[i] = v.array.values[i].Interface()
		}
		return result
	case KindObject:
		result := make(map[string]interface{}, v.object.Len())
		for key, member := range v.object.values {
			result[key] = member.Interface()
		}
		return result
	}
	return nil
}

// FromInterface converts a Go value into a Value.
//
// Structs follow `json` tags (rename, omitempty, string, "-") and flatten embedded structs.
// Untagged struct field names follow WithKeyCaseFormat when set.
// json.Marshaler output is parsed, encoding.TextMarshaler output becomes a string and []byte is base64 encoded.
func FromInterface(source interface{}, opts ...Option) (Value, error) {
	c := &converter{options: optionsFor(opts)}
	if source == nil {
		return Null(), nil
	}
	return c.convert(reflect.ValueOf(source))
}

type converter struct {
	options  *Options
	depth    int
	visiting map[visitKey]bool
}

// visitKey identifies a pointer, map or slice currently being converted.
type visitKey struct {
	ptr    unsafe.Pointer
	rType  reflect.Type
	length int
}

func (c *converter) convert(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Null(), nil
	}
	if !rv.CanInterface() {
		return c.convertKind(rv)
	}
	switch rv.Type() {
	case valueType:
		return rv.Interface().(Value).Clone(), nil
	case valuePtrType:
		if rv.IsNil() {
			return Null(), nil
		}
		return rv.Interface().(*Value).Clone(), nil
	case arrayPtrType:
		if rv.IsNil() {
			return Null(), nil
		}
		return ArrayValue(rv.Interface().(*Array)), nil
	case objectPtrType:
		if rv.IsNil() {
			return Null(), nil
		}
		return ObjectValue(rv.Interface().(*Object)), nil
	case jsonNumberType:
		return c.convertNumber(rv.String())
	}
	if (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return Null(), nil
	}
	if rv.Type().Implements(marshalerType) {
		return c.convertMarshaler(rv.Interface().(json.Marshaler))
	}
	if rv.Type().Implements(textMarshalerType) {
		data, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return Value{}, errors.Wrapf(err, "failed to marshal %v as text", rv.Type())
		}
		return String(string(data)), nil
	}
	return c.convertKind(rv)
}

func (c *converter) convertKind(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Kind() == reflect.Ptr {
			return c.visit(rv, 0, func() (Value, error) { return c.convert(rv.Elem()) })
		}
		return c.nested(func() (Value, error) { return c.convert(rv.Elem()) })
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return String(base64.StdEncoding.EncodeToString(rv.Bytes())), nil
		}
		return c.visit(rv, rv.Len(), func() (Value, error) { return c.convertList(rv) })
	case reflect.Array:
		return c.nested(func() (Value, error) { return c.convertList(rv) })
	case reflect.Map:
		if rv.IsNil() {
			return Null(), nil
		}
		return c.visit(rv, 0, func() (Value, error) { return c.convertMap(rv) })
	case reflect.Struct:
		return c.nested(func() (Value, error) { return c.convertStruct(rv) })
	}
	return Value{}, errors.Errorf("jsonx: unsupported type %v", rv.Type())
}

func (c *converter) nested(fn func() (Value, error)) (Value, error) {
	c.depth++
	defer func() { c.depth-- }()
	if c.options.MaxDepth > 0 && c.depth > c.options.MaxDepth {
		return Value{}, ErrMaxDepth
	}
	return fn()
}

// visit converts a reference kind, failing when the same reference is already being converted.
func (c *converter) visit(rv reflect.Value, length int, fn func() (Value, error)) (Value, error) {
	key := visitKey{ptr: rv.UnsafePointer(), rType: rv.Type(), length: length}
	if c.visiting[key] {
		return Value{}, errors.Wrapf(ErrCycle, "%v", rv.Type())
	}
	if c.visiting == nil {
		c.visiting = map[visitKey]bool{}
	}
	c.visiting[key] = true
	defer delete(c.visiting, key)
	return c.nested(fn)
}

func (c *converter) convertNumber(literal string) (Value, error) {
	if literal == "" {
		return Number(0), nil
	}
	number, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return Value{}, errors.Wrapf(err, "invalid number %q", literal)
	}
	return Number(number), nil
}

func (c *converter) convertMarshaler(marshaler json.Marshaler) (Value, error) {
	data, err := marshaler.MarshalJSON()
	if err != nil {
		return Value{}, errors.Wrapf(err, "failed to marshal %T", marshaler)
	}
	result, err := ParseBytes(data, WithTrailingDataPolicy(ErrorOnTrailing))
	if err != nil {
		return Value{}, errors.Wrapf(err, "invalid JSON from %T", marshaler)
	}
	return result, nil
}

func (c *converter) convertList(rv reflect.Value) (Value, error) {
	array := NewArray(0)
	for i := 0; i < rv.Len(); i++ {
		element, err := c.convert(rv.Index(i))
		if err != nil {
			return Value{}, err
		}
		array.append(element)
	}
	return wrapArray(array), nil
}

func (c *converter) convertMap(rv reflect.Value) (Value, error) {
	keys := make([]string, 0, rv.Len())
	values := make(map[string]reflect.Value, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, err := mapKey(iter.Key())
		if err != nil {
			return Value{}, err
		}
		keys = append(keys, key)
		values[key] = iter.Value()
	}
	sort.Strings(keys)
	object := NewObject()
	for _, key := range keys {
		member, err := c.convert(values[key])
		if err != nil {
			return Value{}, err
		}
		object.put(key, &member)
	}
	return wrapObject(object), nil
}

func mapKey(key reflect.Value) (string, error) {
	if key.Kind() == reflect.String {
		return key.String(), nil
	}
	if key.Type().Implements(textMarshalerType) {
		data, err := key.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", errors.Wrapf(err, "failed to marshal map key %v", key.Type())
		}
		return string(data), nil
	}
	switch key.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(key.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(key.Uint(), 10), nil
	}
	return "", errors.Errorf("jsonx: unsupported map key type %v", key.Type())
}

func (c *converter) convertStruct(rv reflect.Value) (Value, error) {
	plan, err := c.planFor(rv.Type())
	if err != nil {
		return Value{}, err
	}
	structPtr := addressOf(rv)
	object := NewObject()
	for i := range plan.fields {
		field := &plan.fields[i]
		fieldPtr := field.pointer(structPtr)
		if fieldPtr == nil {
			continue // nil embedded pointer
		}
		fieldValue := reflect.NewAt(field.rType, fieldPtr).Elem()
		if field.omitEmpty && isEmptyValue(fieldValue) {
			continue
		}
		member, err := c.convert(fieldValue)
		if err != nil {
			var fieldErr *FieldError
			if errors.As(err, &fieldErr) {
				return Value{}, err
			}
			return Value{}, &FieldError{Type: rv.Type(), Field: field.name, Err: err}
		}
		if field.asString {
			member = quoteScalar(member)
		}
		object.put(field.name, &member)
	}
	return wrapObject(object), nil
}

// addressOf returns a pointer to the struct held by rv, copying it when rv is not addressable.
func addressOf(rv reflect.Value) unsafe.Pointer {
	if rv.CanAddr() {
		return unsafe.Pointer(rv.UnsafeAddr())
	}
	clone := reflect.New(rv.Type())
	clone.Elem().Set(rv)
	return clone.UnsafePointer()
}

func quoteScalar(value Value) Value {
	switch value.kind {
	case KindNumber:
		return String(strconv.FormatFloat(value.number, 'g', -1, 64))
	case KindBool:
		return String(strconv.FormatBool(value.boolean))
	}
	return value
}

func (c *converter) planFor(rType reflect.Type) (*structPlan, error) {
	return structPlans.GetOrCreate(planKey{rType: rType, caseFormat: c.options.KeyCaseFormat}, func() (*structPlan, error) {
		return buildStructPlan(rType, c.options.keyTransformer), nil
	})
}

func buildStructPlan(rType reflect.Type, names keyTransformer) *structPlan {
	var candidates []fieldPlan
	collectFields(rType, nil, 0, names, map[reflect.Type]bool{}, &candidates)

	byName := map[string][]int{}
	var order []string
	for i, candidate := range candidates {
		if _, ok := byName[candidate.name]; !ok {
			order = append(order, candidate.name)
		}
		byName[candidate.name] = append(byName[candidate.name], i)
	}
	result := &structPlan{fields: make([]fieldPlan, 0, len(order))}
	for _, name := range order {
		if winner, ok := dominantField(candidates, byName[name]); ok {
			result.fields = append(result.fields, winner)
		}
	}
	return result
}

// dominantField picks the shallowest field; ties are broken by an explicit tag, otherwise all are dropped.
func dominantField(candidates []fieldPlan, indexes []int) (fieldPlan, bool) {
	minDepth := candidates[indexes[0]].depth
	for _, i := range indexes[1:] {
		if candidates[i].depth < minDepth {
			minDepth = candidates[i].depth
		}
	}
	var shallow []fieldPlan
	for _, i := range indexes {
		if candidates[i].depth == minDepth {
			shallow = append(shallow, candidates[i])
		}
	}
	if len(shallow) == 1 {
		return shallow[0], true
	}
	var tagged []fieldPlan
	for _, candidate := range shallow {
		if candidate.explicit {
			tagged = append(tagged, candidate)
		}
	}
	if len(tagged) == 1 {
		return tagged[0], true
	}
	return fieldPlan{}, false
}

func collectFields(rType reflect.Type, prefix []fieldStep, depth int, names keyTransformer, visited map[reflect.Type]bool, dest *[]fieldPlan) {
	if visited[rType] {
		return
	}
	visited[rType] = true
	defer delete(visited, rType)

	for i := 0; i < rType.NumField(); i++ {
		field := rType.Field(i)
		tag := tagutil.ParseJSONTag(field.Name, field.Tag.Get("json"))
		if tag.Transient {
			continue
		}
		path := make([]fieldStep, len(prefix)+1)
		copy(path, prefix)
		path[len(prefix)] = fieldStep{xField: xunsafe.NewField(field), indirect: field.Type.Kind() == reflect.Ptr}

		if field.Anonymous && !tag.Explicit {
			embedded := field.Type
			if embedded.Kind() == reflect.Ptr {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				collectFields(embedded, path, depth+1, names, visited, dest)
				continue
			}
		}
		if !field.IsExported() {
			continue
		}
		name := tag.Name
		if !tag.Explicit {
			name = names.Transform(name)
		}
		*dest = append(*dest, fieldPlan{
			name:      name,
			rType:     field.Type,
			path:      path,
			depth:     depth,
			explicit:  tag.Explicit,
			omitEmpty: tag.OmitEmpty,
			asString:  tag.AsString,
		})
	}
}

func isEmptyValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return rv.IsNil()
	}
	return false
}
