package graphqljson

import (
	"fmt"
	"math"
	"strconv"

	"github.com/99designs/gqlgen/graphql"
	json "github.com/go-json-experiment/json"
)

// DecodeString decodes a String wire value.
func DecodeString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", malformed("expected string, got %s", wireKind(v))
	}
	return s, nil
}

// DecodeInt decodes an Int wire value. JSON numbers arrive as float64 and
// must be integral.
func DecodeInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || n >= -math.MinInt || n < math.MinInt {
			return 0, malformed("expected integer, got %v", n)
		}
		return int(n), nil
	}
	return 0, malformed("expected integer, got %s", wireKind(v))
}

// DecodeFloat decodes a Float wire value.
func DecodeFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, malformed("expected number, got %s", wireKind(v))
}

// DecodeBoolean decodes a Boolean wire value.
func DecodeBoolean(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, malformed("expected boolean, got %s", wireKind(v))
	}
	return b, nil
}

// DecodeID decodes an ID, which servers may send as a string or an integer.
func DecodeID(v any) (string, error) {
	switch id := v.(type) {
	case string:
		return id, nil
	case float64, int, int64:
		n, err := DecodeInt(id)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	}
	return "", malformed("expected ID, got %s", wireKind(v))
}

// DecodeAny passes a custom scalar without a model binding through unchanged.
func DecodeAny(v any) (any, error) {
	return v, nil
}

// DecodeCustom decodes a scalar bound to a Go model. Models implementing
// graphql.Unmarshaler receive the wire value; others are decoded from JSON.
func DecodeCustom[T any](v any) (T, error) {
	var out T
	if u, ok := any(&out).(graphql.Unmarshaler); ok {
		if err := u.UnmarshalGQL(v); err != nil {
			return out, &MalformedResponseError{Reason: fmt.Sprintf("invalid %T", out), Err: err}
		}
		return out, nil
	}
	data, err := EncodeTree(v)
	if err != nil {
		return out, &MalformedResponseError{Reason: fmt.Sprintf("invalid %T", out), Err: err}
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, &MalformedResponseError{Reason: fmt.Sprintf("invalid %T", out), Err: err}
	}
	return out, nil
}

// DecodeNullable lifts decode to accept null elements.
func DecodeNullable[T any](decode func(any) (T, error)) func(any) (*T, error) {
	return func(v any) (*T, error) {
		if v == nil {
			return nil, nil
		}
		out, err := decode(v)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
}

// DecodeList decodes a list whose elements are all decoded with decode.
// Null elements reach decode; wrap it with DecodeNullable to allow them.
func DecodeList[T any](decode func(any) (T, error)) func(any) ([]T, error) {
	return func(v any) ([]T, error) {
		items, ok := v.([]any)
		if !ok {
			return nil, malformed("expected list, got %s", wireKind(v))
		}
		out := make([]T, 0, len(items))
		for i, item := range items {
			elem, err := decode(item)
			if err != nil {
				return nil, prefixPath("["+strconv.Itoa(i)+"]", err)
			}
			out = append(out, elem)
		}
		return out, nil
	}
}

// DecodeObject decodes a nested response object with a generated mapper.
func DecodeObject[T any](unmarshal func(*Reader) (T, error)) func(any) (T, error) {
	return func(v any) (T, error) {
		r, err := NewReader(v)
		if err != nil {
			var zero T
			return zero, err
		}
		return unmarshal(r)
	}
}
