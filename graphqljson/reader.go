package graphqljson

// Reader gives generated mappers keyed access to one response object.
type Reader struct {
	object any
}

// NewReader wraps a wire tree object: a map[string]any decoded from JSON, or
// an object produced by a Writer.
func NewReader(tree any) (*Reader, error) {
	switch tree.(type) {
	case map[string]any, *object:
		return &Reader{object: tree}, nil
	}
	return nil, malformed("expected object, got %s", wireKind(tree))
}

// lookup reports the value stored under key. A present null is reported as (nil, true).
func (r *Reader) lookup(key string) (any, bool) {
	switch o := r.object.(type) {
	case map[string]any:
		v, ok := o[key]
		return v, ok
	case *object:
		return o.Get(key)
	}
	return nil, false
}

func (r *Reader) typename(f ResponseField) (string, error) {
	v, ok := r.lookup(f.ResponseName)
	if !ok || v == nil {
		return "", &MalformedResponseError{Path: f.ResponseName, Reason: "missing type name"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &MalformedResponseError{Path: f.ResponseName, Reason: "expected string, got " + wireKind(v)}
	}
	return s, nil
}

// ReadRequired decodes the value of a non-optional field. An absent or null
// value is a MalformedResponseError.
func ReadRequired[T any](r *Reader, f ResponseField, decode func(any) (T, error)) (T, error) {
	var zero T
	v, ok := r.lookup(f.ResponseName)
	if !ok {
		return zero, &MalformedResponseError{Path: f.ResponseName, Reason: "missing required field"}
	}
	if v == nil {
		return zero, &MalformedResponseError{Path: f.ResponseName, Reason: "required field is null"}
	}
	out, err := decode(v)
	if err != nil {
		return zero, prefixPath(f.ResponseName, err)
	}
	return out, nil
}

// ReadOptional decodes the value of an optional field. An absent or null
// value yields nil.
func ReadOptional[T any](r *Reader, f ResponseField, decode func(any) (T, error)) (*T, error) {
	v, ok := r.lookup(f.ResponseName)
	if !ok || v == nil {
		return nil, nil
	}
	out, err := decode(v)
	if err != nil {
		return nil, prefixPath(f.ResponseName, err)
	}
	return &out, nil
}

// ReadConditional selects a union branch by __typename. dispatch receives the
// type name and the same object and returns the zero value when no branch matches.
func ReadConditional[T any](r *Reader, f ResponseField, dispatch func(typename string, r *Reader) (T, error)) (T, error) {
	var zero T
	typename, err := r.typename(f)
	if err != nil {
		return zero, err
	}
	if !f.AppliesTo(typename) {
		if !f.Optional {
			return zero, &MalformedResponseError{Path: f.ResponseName, Reason: "no branch for " + typename}
		}
		return zero, nil
	}
	out, err := dispatch(typename, r)
	if err != nil {
		return zero, err
	}
	if !f.Optional && any(out) == nil {
		return zero, &MalformedResponseError{Path: f.ResponseName, Reason: "no branch for " + typename}
	}
	return out, nil
}

// ReadFragment maps the current object onto a fragment that must apply.
func ReadFragment[T any](r *Reader, f ResponseField, unmarshal func(*Reader) (T, error)) (T, error) {
	var zero T
	if len(f.TypeConditions) > 0 {
		typename, err := r.typename(f)
		if err != nil {
			return zero, err
		}
		if !f.AppliesTo(typename) {
			return zero, &MalformedResponseError{Path: f.FieldName, Reason: "fragment does not apply to " + typename}
		}
	}
	return unmarshal(r)
}

// ReadOptionalFragment maps the current object onto a fragment when its type
// conditions match, and yields nil otherwise.
func ReadOptionalFragment[T any](r *Reader, f ResponseField, unmarshal func(*Reader) (T, error)) (*T, error) {
	if len(f.TypeConditions) > 0 {
		typename, err := r.typename(f)
		if err != nil {
			return nil, err
		}
		if !f.AppliesTo(typename) {
			return nil, nil
		}
	}
	out, err := unmarshal(r)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
