package graphqljson

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedResponse matches every MalformedResponseError.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrAmbiguousUnionBranch matches every AmbiguousUnionBranchError.
	ErrAmbiguousUnionBranch = errors.New("ambiguous union branch")
)

// MalformedResponseError reports a response that does not match the shape of
// the generated type: a required field is absent or null, or a value has the
// wrong wire kind.
type MalformedResponseError struct {
	// Path locates the offending value, e.g. "hero.friends[1].id".
	Path   string
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	var b strings.Builder
	b.WriteString(ErrMalformedResponse.Error())
	if e.Path != "" {
		b.WriteString(": ")
		b.WriteString(e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func malformed(format string, args ...any) *MalformedResponseError {
	return &MalformedResponseError{Reason: fmt.Sprintf(format, args...)}
}

// prefixPath attaches the location of a child value to err.
func prefixPath(prefix string, err error) error {
	var mre *MalformedResponseError
	if !errors.As(err, &mre) {
		return fmt.Errorf("%s: %w", prefix, err)
	}
	path := prefix
	switch {
	case mre.Path == "":
	case strings.HasPrefix(mre.Path, "["):
		path += mre.Path
	default:
		path += "." + mre.Path
	}
	return &MalformedResponseError{Path: path, Reason: mre.Reason, Err: mre.Err}
}

// AmbiguousUnionBranchError reports a union value that is not exactly one of
// the generated branch types.
type AmbiguousUnionBranchError struct {
	// Union is the name of the generated union interface.
	Union string
	Value any
}

func (e *AmbiguousUnionBranchError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s: no branch set", ErrAmbiguousUnionBranch, e.Union)
	}
	return fmt.Sprintf("%s: %s: %T is not a branch", ErrAmbiguousUnionBranch, e.Union, e.Value)
}

func (e *AmbiguousUnionBranchError) Is(target error) bool {
	return target == ErrAmbiguousUnionBranch
}

// wireKind names the kind of a wire tree value for error messages.
func wireKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int32, int64:
		return "number"
	case []any:
		return "list"
	case map[string]any, *object:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
