package codegen

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gqlgo/gqlmodelc/graphqljson"
	"github.com/gqlgo/gqlmodelc/ir"
)

const (
	// FragmentsField is the field a fragments holder is stored under.
	FragmentsField = "fragments"
	// FragmentsKey is the nested key the fragments holder type is declared under.
	FragmentsKey = "Fragments"

	typenameKey = "__typename"
)

// ResponseField is the descriptor of one generated field together with what
// generation needs to recurse into it.
type ResponseField struct {
	graphqljson.ResponseField
	// Field is the zero value for the fragments holder.
	Field ir.Field
	// Nested is the selection of an Object or list-of-Object field, or the
	// super type of an InlineFragment field.
	Nested *ir.ObjectType
}

// ResponseFields returns one descriptor per field of obj in field order,
// followed by the fragments holder when obj spreads fragments.
func ResponseFields(scope *Scope, obj *ir.ObjectType) ([]ResponseField, error) {
	fields := make([]ResponseField, 0, len(obj.Fields)+1)
	for _, f := range obj.Fields {
		rf, err := responseField(scope, obj, f)
		if err != nil {
			return nil, err
		}
		fields = append(fields, rf)
	}
	if err := checkTypename(scope, obj, fields); err != nil {
		return nil, err
	}
	if obj.FragmentsType != nil {
		fields = append(fields, ResponseField{
			ResponseField: graphqljson.ResponseField{
				Type:      graphqljson.FieldTypeFragments,
				FieldName: FragmentsField,
			},
		})
	}
	return fields, nil
}

func responseField(scope *Scope, obj *ir.ObjectType, f ir.Field) (ResponseField, error) {
	rf := ResponseField{
		ResponseField: graphqljson.ResponseField{
			ResponseName: f.WireKey(),
			FieldName:    f.SchemaName(),
			Optional:     f.IsOptional,
		},
		Field: f,
	}

	switch ref := ir.Unwrap(f.Type).(type) {
	case ir.ScalarRef:
		rf.Type, rf.ScalarType = scalarFieldType(ref)
	case ir.ListRef:
		rf.Type = graphqljson.FieldTypeList
		elem := ir.Unwrap(ref.Of)
		for {
			list, ok := elem.(ir.ListRef)
			if !ok {
				break
			}
			elem = ir.Unwrap(list.Of)
		}
		switch elem := elem.(type) {
		case ir.ScalarRef:
			_, rf.ScalarType = scalarFieldType(elem)
		case ir.ObjectRef:
			nested, ok := obj.Nested(elem.Key)
			if !ok {
				return rf, &UnresolvedTypeError{Type: scope.Name(), Field: f.Name, Ref: elem.String(), Reason: "no nested object with this key"}
			}
			rf.Nested = nested
		}
	case ir.ObjectRef:
		nested, ok := obj.Nested(ref.Key)
		if !ok {
			return rf, &UnresolvedTypeError{Type: scope.Name(), Field: f.Name, Ref: ref.String(), Reason: "no nested object with this key"}
		}
		rf.Nested = nested
		rf.Type = graphqljson.FieldTypeObject
		if _, ok := nested.Kind.(ir.InlineFragmentSuperKind); ok {
			rf.Type = graphqljson.FieldTypeInlineFragment
			rf.ResponseName = typenameKey
			rf.TypeConditions = PossibleTypes(obj, ref.Key)
		}
	case ir.FragmentRef:
		rf.Type = graphqljson.FieldTypeFragment
		rf.ResponseName = typenameKey
		rf.FieldName = ref.Name
		rf.TypeConditions = slices.Clone(ref.PossibleTypes)
	default:
		return rf, &UnresolvedTypeError{Type: scope.Name(), Field: f.Name, Ref: fmt.Sprint(ref), Reason: "unknown type reference"}
	}
	return rf, nil
}

// checkTypename は __typename で分岐する読み書きに同じ選択の __typename があることを確かめる
func checkTypename(scope *Scope, obj *ir.ObjectType, fields []ResponseField) error {
	for _, f := range fields {
		if f.Type != graphqljson.FieldTypeInlineFragment && f.Field.WireKey() == typenameKey {
			return nil
		}
	}
	for _, f := range fields {
		if f.Type == graphqljson.FieldTypeInlineFragment {
			return &UnresolvedTypeError{Type: scope.Name(), Field: f.Field.Name, Ref: f.Field.Type.String(), Reason: "branches are selected by __typename, which is not selected"}
		}
	}
	if obj.FragmentsType != nil {
		for _, f := range obj.FragmentsType.Fields {
			if ref, ok := ir.Unwrap(f.Type).(ir.FragmentRef); ok && len(ref.PossibleTypes) > 0 {
				return &UnresolvedTypeError{Type: scope.Name(), Field: FragmentsField + "." + f.Name, Ref: ref.String(), Reason: "fragment is selected by __typename, which is not selected"}
			}
		}
	}
	return nil
}

func scalarFieldType(ref ir.ScalarRef) (graphqljson.FieldType, string) {
	switch ref.Kind {
	case ir.ScalarInt:
		return graphqljson.FieldTypeInt, ""
	case ir.ScalarFloat:
		return graphqljson.FieldTypeFloat, ""
	case ir.ScalarBoolean:
		return graphqljson.FieldTypeBoolean, ""
	case ir.ScalarID:
		return graphqljson.FieldTypeString, ref.Name
	case ir.ScalarEnum:
		return graphqljson.FieldTypeEnum, ref.Name
	case ir.ScalarCustom:
		return graphqljson.FieldTypeCustom, ref.Name
	default:
		return graphqljson.FieldTypeString, ""
	}
}

// PossibleTypes returns the __typename values selecting any branch of the
// super type declared under superKey. A type claimed by several branches is
// listed once.
func PossibleTypes(obj *ir.ObjectType, superKey string) []string {
	var typenames []string
	for _, b := range obj.Branches(superKey) {
		k, _ := b.Type.Kind.(ir.InlineFragmentKind)
		for _, typename := range k.PossibleTypes {
			if !slices.Contains(typenames, typename) {
				typenames = append(typenames, typename)
			}
		}
	}
	return typenames
}

// ResponseFieldsDecl renders the package variable holding fields.
func ResponseFieldsDecl(name string, fields []ResponseField, im *Imports) ValueDecl {
	var buf strings.Builder
	buf.WriteString("[]" + im.Runtime("ResponseField") + "{\n")
	for _, f := range fields {
		buf.WriteString("\t{")
		buf.WriteString("Type: " + im.Runtime("FieldType"+f.Type.String()))
		if f.ResponseName != "" {
			buf.WriteString(", ResponseName: " + strconv.Quote(f.ResponseName))
		}
		buf.WriteString(", FieldName: " + strconv.Quote(f.FieldName))
		if f.Optional {
			buf.WriteString(", Optional: true")
		}
		if f.ScalarType != "" {
			buf.WriteString(", ScalarType: " + strconv.Quote(f.ScalarType))
		}
		if len(f.TypeConditions) > 0 {
			quoted := make([]string, 0, len(f.TypeConditions))
			for _, c := range f.TypeConditions {
				quoted = append(quoted, strconv.Quote(c))
			}
			buf.WriteString(", TypeConditions: []string{" + strings.Join(quoted, ", ") + "}")
		}
		buf.WriteString("},\n")
	}
	buf.WriteString("}")
	return ValueDecl{Name: name, Value: buf.String()}
}
