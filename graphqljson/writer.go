package graphqljson

import (
	"github.com/elliotchance/orderedmap/v3"
)

// object is a response object built by a Writer. Keys keep insertion order so
// serialized output follows descriptor order.
type object = orderedmap.OrderedMap[string, any]

// Writer collects the fields of one response object.
type Writer struct {
	object *object
}

// NewWriter returns a Writer for an empty object.
func NewWriter() *Writer {
	return &Writer{object: orderedmap.NewOrderedMap[string, any]()}
}

// Object returns the object written so far. It can be passed to NewReader or EncodeTree.
func (w *Writer) Object() *orderedmap.OrderedMap[string, any] {
	return w.object
}

func (w *Writer) set(key string, v any) {
	w.object.Set(key, v)
}

// WriteRequired stores the encoded value of a non-optional field.
func WriteRequired[T any](w *Writer, f ResponseField, v T, encode func(T) (any, error)) error {
	out, err := encode(v)
	if err != nil {
		return prefixPath(f.ResponseName, err)
	}
	w.set(f.ResponseName, out)
	return nil
}

// WriteOptional stores the encoded value of an optional field, or null.
func WriteOptional[T any](w *Writer, f ResponseField, v *T, encode func(T) (any, error)) error {
	if v == nil {
		w.set(f.ResponseName, nil)
		return nil
	}
	return WriteRequired(w, f, *v, encode)
}

// WriteConditional writes the fields of the union branch held by v into the
// current object. marshal is the generated dispatcher of the union.
//
// A nil v is only accepted for an optional field whose already written
// __typename selects no branch. Otherwise the output could not be read back.
func WriteConditional[T any](w *Writer, f ResponseField, v T, marshal func(*Writer, T) error) error {
	if any(v) == nil {
		if f.Optional && !w.selects(f) {
			return nil
		}
		return &AmbiguousUnionBranchError{Union: f.FieldName}
	}
	return marshal(w, v)
}

// selects reports whether the __typename written so far matches a type condition of f.
func (w *Writer) selects(f ResponseField) bool {
	v, ok := w.object.Get(f.ResponseName)
	if !ok {
		return false
	}
	typename, ok := v.(string)
	return ok && f.AppliesTo(typename)
}
