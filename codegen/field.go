package codegen

import (
	"fmt"
	"go/token"
	"go/types"
	"strings"

	"github.com/99designs/gqlgen/codegen/templates"

	"github.com/gqlgo/gqlmodelc/ir"
)

// Accessor is what one field contributes to a generated type: an unexported
// struct member, a getter and a constructor parameter. Generated values are
// immutable, so there is no setter.
type Accessor struct {
	Field  ir.Field
	Member string
	Getter string
	Type   types.Type
}

// NewAccessor returns the accessor of f declared with type t.
func NewAccessor(f ir.Field, t types.Type) Accessor {
	return Accessor{
		Field:  f,
		Member: templates.ToGoPrivate(f.Name),
		Getter: "Get" + templates.ToGo(f.Name),
		Type:   t,
	}
}

// CheckAccessors reports two fields of typeName that map to one Go member or getter.
func CheckAccessors(typeName string, accessors []Accessor) error {
	members := make(map[string]struct{}, len(accessors))
	getters := make(map[string]struct{}, len(accessors))
	for _, a := range accessors {
		if _, ok := members[a.Member]; ok {
			return &NameCollisionError{Scope: typeName, Name: a.Member}
		}
		if _, ok := getters[a.Getter]; ok {
			return &NameCollisionError{Scope: typeName, Name: a.Getter}
		}
		members[a.Member] = struct{}{}
		getters[a.Getter] = struct{}{}
	}
	return nil
}

// StructType returns the struct underlying a generated type.
func StructType(pkg *types.Package, accessors []Accessor) *types.Struct {
	vars := make([]*types.Var, 0, len(accessors))
	for _, a := range accessors {
		vars = append(vars, types.NewField(token.NoPos, pkg, a.Member, a.Type, false))
	}
	return types.NewStruct(vars, nil)
}

// GetterDecl returns the value-receiver getter of a.
func GetterDecl(named *types.Named, a Accessor) *FuncDecl {
	return &FuncDecl{
		Recv:    &Param{Name: "t", Type: named},
		Name:    a.Getter,
		Results: []types.Type{a.Type},
		Body:    []Statement{&ReturnStatement{Value: "t." + a.Member}},
	}
}

// ConstructorDecl returns the function that builds a value of named from one
// positional parameter per accessor. reserved holds identifiers parameters
// must not shadow, such as imported package names.
func ConstructorDecl(named *types.Named, accessors []Accessor, reserved ...string) *FuncDecl {
	typeName := named.Obj().Name()
	locals := NewLocals(append([]string{typeName}, reserved...)...)

	params := make([]Param, 0, len(accessors))
	elems := make([]string, 0, len(accessors))
	for _, a := range accessors {
		name := locals.Name(a.Member)
		params = append(params, Param{Name: name, Type: a.Type})
		elems = append(elems, fmt.Sprintf("%s: %s", a.Member, name))
	}

	return &FuncDecl{
		Doc:     fmt.Sprintf("%s returns a %s built from its field values.", FuncName("New", typeName), typeName),
		Name:    FuncName("New", typeName),
		Params:  params,
		Results: []types.Type{named},
		Body: []Statement{
			&ReturnStatement{Value: fmt.Sprintf("%s{%s}", typeName, strings.Join(elems, ", "))},
		},
	}
}
