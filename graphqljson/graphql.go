package graphqljson

import (
	"bytes"
	"fmt"

	json "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// UnmarshalData parses the GraphQL response payload contained in data and maps
// it with unmarshal, the generated Unmarshal function of the root type.
func UnmarshalData[T any](data jsontext.Value, unmarshal func(*Reader) (T, error)) (T, error) {
	var zero T
	tree, err := DecodeTree(data)
	if err != nil {
		return zero, err
	}
	r, err := NewReader(tree)
	if err != nil {
		return zero, fmt.Errorf("decode graphql data: %w", err)
	}
	out, err := unmarshal(r)
	if err != nil {
		return zero, fmt.Errorf("decode graphql data: %w", err)
	}
	return out, nil
}

// MarshalData serializes v into a response payload. Keys follow the field
// order of the generated type.
func MarshalData(v Marshaler) (jsontext.Value, error) {
	w := NewWriter()
	if err := v.Marshal(w); err != nil {
		return nil, fmt.Errorf("encode graphql data: %w", err)
	}
	return EncodeTree(w.Object())
}

// DecodeTree parses JSON into a wire tree of map[string]any, []any, string,
// float64, bool and nil.
func DecodeTree(data []byte) (any, error) {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decode graphql data: decode json: %w", err)
	}
	return tree, nil
}

// EncodeTree serializes a wire tree. Objects built by a Writer keep their key
// order; plain maps are written with sorted keys.
func EncodeTree(tree any) (jsontext.Value, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	if err := encodeValue(enc, tree); err != nil {
		return nil, fmt.Errorf("encode graphql data: encode json: %w", err)
	}
	return jsontext.Value(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func encodeValue(enc *jsontext.Encoder, v any) error {
	switch v := v.(type) {
	case *object:
		if v == nil {
			return enc.WriteToken(jsontext.Null)
		}
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for key, value := range v.AllFromFront() {
			if err := enc.WriteToken(jsontext.String(key)); err != nil {
				return err
			}
			if err := encodeValue(enc, value); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	case []any:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, item := range v {
			if err := encodeValue(enc, item); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	}
	return json.MarshalEncode(enc, v, json.Deterministic(true))
}

