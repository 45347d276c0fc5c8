package graphqljson

import (
	"bytes"
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	json "github.com/go-json-experiment/json"
)

// EncodeString encodes a String value.
func EncodeString(v string) (any, error) {
	return v, nil
}

// EncodeInt encodes an Int value.
func EncodeInt(v int) (any, error) {
	return v, nil
}

// EncodeFloat encodes a Float value.
func EncodeFloat(v float64) (any, error) {
	return v, nil
}

// EncodeBoolean encodes a Boolean value.
func EncodeBoolean(v bool) (any, error) {
	return v, nil
}

// EncodeAny passes a custom scalar without a model binding through unchanged.
func EncodeAny(v any) (any, error) {
	return v, nil
}

// EncodeCustom encodes a scalar bound to a Go model. Models implementing
// graphql.Marshaler write their own literal; others are encoded as JSON.
func EncodeCustom[T any](v T) (any, error) {
	var data []byte
	if m, ok := any(v).(graphql.Marshaler); ok {
		var buf bytes.Buffer
		m.MarshalGQL(&buf)
		data = buf.Bytes()
	} else {
		var err error
		data, err = json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %T: %w", v, err)
		}
	}
	tree, err := DecodeTree(data)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	return tree, nil
}

// EncodeNullable lifts encode to write nil as null.
func EncodeNullable[T any](encode func(T) (any, error)) func(*T) (any, error) {
	return func(v *T) (any, error) {
		if v == nil {
			return nil, nil
		}
		return encode(*v)
	}
}

// EncodeList encodes every element with encode. A nil slice is written as an
// empty list.
func EncodeList[T any](encode func(T) (any, error)) func([]T) (any, error) {
	return func(v []T) (any, error) {
		out := make([]any, 0, len(v))
		for i, item := range v {
			elem, err := encode(item)
			if err != nil {
				return nil, prefixPath(fmt.Sprintf("[%d]", i), err)
			}
			out = append(out, elem)
		}
		return out, nil
	}
}

// EncodeObject encodes a generated type as a nested response object.
func EncodeObject[T Marshaler](v T) (any, error) {
	w := NewWriter()
	if err := v.Marshal(w); err != nil {
		return nil, err
	}
	return w.Object(), nil
}
