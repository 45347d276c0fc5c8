// Package ir defines the semantic intermediate representation consumed by the
// code generator: one ObjectType per selection set, with ordered fields and
// exclusively owned nested object types.
//
// The tree is built once per compilation unit (see queryparser) and never
// mutated afterwards.
package ir

import "fmt"

// ScalarKind classifies a GraphQL leaf type.
type ScalarKind int

const (
	ScalarString ScalarKind = iota
	ScalarInt
	ScalarFloat
	ScalarBoolean
	ScalarID
	ScalarEnum
	ScalarCustom
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarString:
		return "String"
	case ScalarInt:
		return "Int"
	case ScalarFloat:
		return "Float"
	case ScalarBoolean:
		return "Boolean"
	case ScalarID:
		return "ID"
	case ScalarEnum:
		return "Enum"
	case ScalarCustom:
		return "Custom"
	}
	return fmt.Sprintf("ScalarKind(%d)", int(k))
}

// TypeRef is the declared type of a selected field.
//
//sumtype:decl
type TypeRef interface {
	typeRef()
	String() string
}

// ScalarRef references a scalar or enum by its GraphQL name.
type ScalarRef struct {
	Name string
	Kind ScalarKind
}

// ListRef is a GraphQL list of Of.
type ListRef struct {
	Of TypeRef
}

// NonNullRef marks Of as non-null.
type NonNullRef struct {
	Of TypeRef
}

// ObjectRef references a nested object type of the enclosing ObjectType by key.
type ObjectRef struct {
	Key string
}

// FragmentRef references a root fragment by name. It only appears in a
// fragments holder. PossibleTypes lists the concrete __typename values the
// fragment applies to; empty means it always applies.
type FragmentRef struct {
	Name          string
	PossibleTypes []string
}

func (ScalarRef) typeRef()   {}
func (ListRef) typeRef()     {}
func (NonNullRef) typeRef()  {}
func (ObjectRef) typeRef()   {}
func (FragmentRef) typeRef() {}

func (r ScalarRef) String() string   { return r.Name }
func (r ListRef) String() string     { return "[" + r.Of.String() + "]" }
func (r NonNullRef) String() string  { return r.Of.String() + "!" }
func (r ObjectRef) String() string   { return "object(" + r.Key + ")" }
func (r FragmentRef) String() string { return "..." + r.Name }

// Unwrap strips every NonNullRef wrapper from t.
func Unwrap(t TypeRef) TypeRef {
	for {
		nn, ok := t.(NonNullRef)
		if !ok {
			return t
		}
		t = nn.Of
	}
}

// Field is one selected GraphQL field projected into the generated type.
type Field struct {
	// Name is identifier-safe and unique among the fields of one ObjectType.
	Name string
	// ResponseName is the wire key. Empty means Name.
	ResponseName string
	// FieldName is the schema field name. Empty means ResponseName.
	FieldName  string
	Type       TypeRef
	IsOptional bool
}

// WireKey returns the key the field is stored under in a response object.
func (f Field) WireKey() string {
	if f.ResponseName != "" {
		return f.ResponseName
	}
	return f.Name
}

// SchemaName returns the schema field name of f.
func (f Field) SchemaName() string {
	if f.FieldName != "" {
		return f.FieldName
	}
	return f.WireKey()
}

// Kind selects the shape of the declaration generated for an ObjectType.
//
//sumtype:decl
type Kind interface {
	kind()
	String() string
}

// ObjectKind is a plain selection set.
type ObjectKind struct{}

// FragmentKind is a named fragment root. Definition is the literal fragment
// source embedded into the generated code.
type FragmentKind struct {
	Definition string
}

// InlineFragmentSuperKind is the common capability of the branches of a
// union or interface selection.
type InlineFragmentSuperKind struct{}

// InlineFragmentKind is one concrete branch. Super is the nested object key of
// the sibling InlineFragmentSuperKind type it implements.
type InlineFragmentKind struct {
	Super         string
	PossibleTypes []string
}

func (ObjectKind) kind()              {}
func (FragmentKind) kind()            {}
func (InlineFragmentSuperKind) kind() {}
func (InlineFragmentKind) kind()      {}

func (ObjectKind) String() string              { return "Object" }
func (FragmentKind) String() string            { return "Fragment" }
func (InlineFragmentSuperKind) String() string { return "InlineFragmentSuper" }
func (InlineFragmentKind) String() string      { return "InlineFragment" }

// NestedObject is a child ObjectType owned by exactly one parent.
type NestedObject struct {
	Key  string
	Type *ObjectType
}

// ObjectType is one generated nominal type.
type ObjectType struct {
	Name          string
	Kind          Kind
	Fields        []Field
	NestedObjects []NestedObject
	// FragmentsType bundles the named fragments spread at this level.
	FragmentsType *ObjectType
}

// Nested returns the nested object stored under key.
func (o *ObjectType) Nested(key string) (*ObjectType, bool) {
	for _, n := range o.NestedObjects {
		if n.Key == key {
			return n.Type, true
		}
	}
	return nil, false
}

// Branches returns the nested InlineFragmentKind types that implement the
// super type stored under superKey, in declaration order.
func (o *ObjectType) Branches(superKey string) []NestedObject {
	var branches []NestedObject
	for _, n := range o.NestedObjects {
		if k, ok := n.Type.Kind.(InlineFragmentKind); ok && k.Super == superKey {
			branches = append(branches, n)
		}
	}
	return branches
}
