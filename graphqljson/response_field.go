package graphqljson

import (
	"fmt"
	"slices"
)

// FieldType tags how a response field is stored in the wire tree.
type FieldType int

const (
	FieldTypeString FieldType = iota
	FieldTypeInt
	FieldTypeFloat
	FieldTypeBoolean
	FieldTypeEnum
	FieldTypeCustom
	FieldTypeObject
	FieldTypeList
	// FieldTypeInlineFragment is a union/interface selection resolved by __typename.
	// Its branch fields live in the enclosing object.
	FieldTypeInlineFragment
	// FieldTypeFragment is a named fragment spread, gated by __typename.
	FieldTypeFragment
	// FieldTypeFragments is the holder of every fragment spread at one level.
	FieldTypeFragments
)

var fieldTypeNames = map[FieldType]string{
	FieldTypeString:         "String",
	FieldTypeInt:            "Int",
	FieldTypeFloat:          "Float",
	FieldTypeBoolean:        "Boolean",
	FieldTypeEnum:           "Enum",
	FieldTypeCustom:         "Custom",
	FieldTypeObject:         "Object",
	FieldTypeList:           "List",
	FieldTypeInlineFragment: "InlineFragment",
	FieldTypeFragment:       "Fragment",
	FieldTypeFragments:      "Fragments",
}

func (t FieldType) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("FieldType(%d)", int(t))
}

// ResponseField describes one field of a generated type. Generated code keeps
// one ordered slice of these per type and both Marshal and Unmarshal index into it.
type ResponseField struct {
	Type FieldType
	// ResponseName is the key of the field in the response object.
	ResponseName string
	// FieldName is the name of the field in the schema.
	FieldName string
	Optional  bool
	// ScalarType is the GraphQL name of an ID, Enum or Custom scalar.
	ScalarType string
	// TypeConditions restricts Fragment and InlineFragment fields to these __typename values.
	TypeConditions []string
}

// AppliesTo reports whether a conditional field selects objects of the given
// __typename. A field without conditions always applies.
func (f ResponseField) AppliesTo(typename string) bool {
	return len(f.TypeConditions) == 0 || slices.Contains(f.TypeConditions, typename)
}

// Marshaler is implemented by every generated concrete type.
type Marshaler interface {
	Marshal(w *Writer) error
}

// Fragment is implemented by types generated for named fragments.
type Fragment interface {
	Marshaler
	// FragmentDefinition returns the GraphQL source of the fragment.
	FragmentDefinition() string
}
