package codegen

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolvedType matches every UnresolvedTypeError.
	ErrUnresolvedType = errors.New("unresolved type")
	// ErrNameCollision matches every NameCollisionError.
	ErrNameCollision = errors.New("name collision")
)

// UnresolvedTypeError reports an IR reference the generator cannot turn into
// a declaration: a missing nested object or fragment, a reference in a place
// its kind is not allowed, or a root of the wrong kind.
type UnresolvedTypeError struct {
	// Type is the Go name of the type being generated.
	Type string
	// Field is empty when the error concerns the type itself.
	Field  string
	Ref    string
	Reason string
}

func (e *UnresolvedTypeError) Error() string {
	at := e.Type
	if e.Field != "" {
		at += "." + e.Field
	}
	if e.Ref == "" {
		return fmt.Sprintf("%s: %s: %s", ErrUnresolvedType, at, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s: %s", ErrUnresolvedType, at, e.Ref, e.Reason)
}

func (e *UnresolvedTypeError) Is(target error) bool {
	return target == ErrUnresolvedType
}

// NameCollisionError reports two declarations sharing one name in one scope.
type NameCollisionError struct {
	Scope string
	Name  string
}

func (e *NameCollisionError) Error() string {
	if e.Scope == "" {
		return fmt.Sprintf("%s: %s is declared more than once", ErrNameCollision, e.Name)
	}
	return fmt.Sprintf("%s: %s: %s is declared more than once", ErrNameCollision, e.Scope, e.Name)
}

func (e *NameCollisionError) Is(target error) bool {
	return target == ErrNameCollision
}
