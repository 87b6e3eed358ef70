package jsonx

import (
	"github.com/francoispqt/gojay"
	"github.com/pkg/errors"
)

// MarshalJSONObject implements gojay.MarshalerJSONObject; members are written in key order.
func (o *Object) MarshalJSONObject(enc *gojay.Encoder) {
	for _, key := range o.Keys() {
		embedded := embed(*o.values[key])
		enc.AddEmbeddedJSONKey(key, &embedded)
	}
}

// IsNil implements gojay.MarshalerJSONObject
func (o *Object) IsNil() bool { return o == nil }

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject; a repeated key replaces the earlier member.
func (o *Object) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	value, err := decodeEmbedded(dec)
	if err != nil {
		return errors.Wrapf(err, "invalid member %q", key)
	}
	o.put(key, &value)
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject; zero decodes every key.
func (o *Object) NKeys() int { return 0 }

// MarshalJSONArray implements gojay.MarshalerJSONArray
func (a *Array) MarshalJSONArray(enc *gojay.Encoder) {
	for i := 0; i < a.Len(); i++ {
		embedded := embed(a.values[i])
		enc.AddEmbeddedJSON(&embedded)
	}
}

// IsNil implements gojay.MarshalerJSONArray
func (a *Array) IsNil() bool { return a == nil }

// UnmarshalJSONArray implements gojay.UnmarshalerJSONArray
func (a *Array) UnmarshalJSONArray(dec *gojay.Decoder) error {
	value, err := decodeEmbedded(dec)
	if err != nil {
		return errors.Wrapf(err, "invalid element %d", a.Len())
	}
	a.append(value)
	return nil
}

// embed encodes value compactly; values that cannot be encoded are written as null.
func embed(value Value) gojay.EmbeddedJSON {
	data, err := Marshal(value, WithCompact())
	if err != nil {
		return gojay.EmbeddedJSON("null")
	}
	return data
}

func decodeEmbedded(dec *gojay.Decoder) (Value, error) {
	var embedded gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&embedded); err != nil {
		return Value{}, err
	}
	return ParseBytes(embedded, WithTrailingDataPolicy(ErrorOnTrailing))
}
