package codegen

import (
	"fmt"
	"go/token"
	gotypes "go/types"
	"path"
	"regexp"
	"strings"
	"unicode"

	"github.com/99designs/gqlgen/codegen/templates"

	"github.com/gqlgo/gqlmodelc/ir"
)

// TypeResolver maps IR type references to Go types. One resolver serves one
// root; the fragment table it reads may be shared.
type TypeResolver struct {
	models        map[string]gotypes.Type
	fragments     map[string]string
	pkg           *gotypes.Package
	fragmentTypes map[string]*gotypes.Named
}

// NewTypeResolver returns a resolver for code generated into pkg. models binds
// GraphQL scalar names to Go types; fragments maps root fragment names to
// their Go type names.
func NewTypeResolver(pkg *gotypes.Package, models map[string]gotypes.Type, fragments map[string]string) *TypeResolver {
	return &TypeResolver{
		models:        models,
		fragments:     fragments,
		pkg:           pkg,
		fragmentTypes: map[string]*gotypes.Named{},
	}
}

// FieldType returns the declared Go type of f, a field of obj whose nested
// types are declared in scope. The outermost non-null wrapper is ignored:
// IsOptional alone decides whether the type is a pointer.
func (r *TypeResolver) FieldType(scope *Scope, obj *ir.ObjectType, f ir.Field) (gotypes.Type, error) {
	t, err := r.resolve(scope, obj, f, ir.Unwrap(f.Type), false)
	if err != nil {
		return nil, err
	}
	if f.IsOptional && !isInterface(obj, f.Type) {
		return gotypes.NewPointer(t), nil
	}
	return t, nil
}

// Scalar returns the Go type of a scalar reference.
func (r *TypeResolver) Scalar(ref ir.ScalarRef) gotypes.Type {
	if t, ok := r.models[ref.Name]; ok {
		return t
	}
	switch ref.Kind {
	case ir.ScalarInt:
		return gotypes.Typ[gotypes.Int]
	case ir.ScalarFloat:
		return gotypes.Typ[gotypes.Float64]
	case ir.ScalarBoolean:
		return gotypes.Typ[gotypes.Bool]
	case ir.ScalarCustom:
		return gotypes.Universe.Lookup("any").Type()
	default:
		return gotypes.Typ[gotypes.String]
	}
}

// Model returns the Go type bound to a GraphQL scalar.
func (r *TypeResolver) Model(name string) (gotypes.Type, bool) {
	t, ok := r.models[name]
	return t, ok
}

// Fragment returns the named type of a root fragment.
func (r *TypeResolver) Fragment(name string) (*gotypes.Named, bool) {
	if named, ok := r.fragmentTypes[name]; ok {
		return named, true
	}
	typeName, ok := r.fragments[name]
	if !ok {
		return nil, false
	}
	named := gotypes.NewNamed(gotypes.NewTypeName(token.NoPos, r.pkg, typeName, nil), nil, nil)
	r.fragmentTypes[name] = named
	return named, true
}

func (r *TypeResolver) resolve(scope *Scope, obj *ir.ObjectType, f ir.Field, ref ir.TypeRef, inList bool) (gotypes.Type, error) {
	switch ref := ref.(type) {
	case ir.ScalarRef:
		return r.Scalar(ref), nil
	case ir.NonNullRef:
		return r.resolve(scope, obj, f, ref.Of, inList)
	case ir.ListRef:
		elem, err := r.resolve(scope, obj, f, ir.Unwrap(ref.Of), true)
		if err != nil {
			return nil, err
		}
		// 要素の null 許容は要素自身の型参照で決まる
		if _, nonNull := ref.Of.(ir.NonNullRef); !nonNull {
			elem = gotypes.NewPointer(elem)
		}
		return gotypes.NewSlice(elem), nil
	case ir.ObjectRef:
		nested, ok := obj.Nested(ref.Key)
		if !ok {
			return nil, &UnresolvedTypeError{Type: scope.Name(), Field: f.Name, Ref: ref.String(), Reason: "no nested object with this key"}
		}
		switch nested.Kind.(type) {
		case ir.InlineFragmentSuperKind:
			if inList {
				return nil, &UnresolvedTypeError{Type: scope.Name(), Field: f.Name, Ref: ref.String(), Reason: "inline fragment selection inside a list"}
			}
		case ir.InlineFragmentKind:
			return nil, &UnresolvedTypeError{Type: scope.Name(), Field: f.Name, Ref: ref.String(), Reason: "inline fragment branch referenced by a field"}
		case ir.FragmentKind:
			return nil, &UnresolvedTypeError{Type: scope.Name(), Field: f.Name, Ref: ref.String(), Reason: "fragment declared as a nested object"}
		}
		named, ok := scope.Lookup(ref.Key)
		if !ok {
			return nil, &UnresolvedTypeError{Type: scope.Name(), Field: f.Name, Ref: ref.String(), Reason: "nested object is not declared"}
		}
		return named, nil
	case ir.FragmentRef:
		if inList {
			return nil, &UnresolvedTypeError{Type: scope.Name(), Field: f.Name, Ref: ref.String(), Reason: "fragment inside a list"}
		}
		named, ok := r.Fragment(ref.Name)
		if !ok {
			return nil, &UnresolvedTypeError{Type: scope.Name(), Field: f.Name, Ref: ref.String(), Reason: "no fragment with this name"}
		}
		return named, nil
	}
	return nil, &UnresolvedTypeError{Type: scope.Name(), Field: f.Name, Ref: fmt.Sprint(ref), Reason: "unknown type reference"}
}

// isInterface reports whether t resolves to a union super type. Those are
// interfaces and already nilable.
func isInterface(obj *ir.ObjectType, t ir.TypeRef) bool {
	ref, ok := ir.Unwrap(t).(ir.ObjectRef)
	if !ok {
		return false
	}
	nested, ok := obj.Nested(ref.Key)
	if !ok {
		return false
	}
	_, ok = nested.Kind.(ir.InlineFragmentSuperKind)
	return ok
}

var versionSuffix = regexp.MustCompile(`^v[0-9]+$`)

// ParseModel parses a model binding such as "time.Time",
// "github.com/acme/domain.Email" or "int64" into a Go type.
func ParseModel(model string) (gotypes.Type, error) {
	if obj, ok := gotypes.Universe.Lookup(model).(*gotypes.TypeName); ok {
		return obj.Type(), nil
	}
	i := strings.LastIndex(model, ".")
	if i <= 0 || i == len(model)-1 || !token.IsIdentifier(model[i+1:]) {
		return nil, fmt.Errorf("invalid model %q: want <import path>.<type name>", model)
	}
	importPath, name := model[:i], model[i+1:]
	pkg := gotypes.NewPackage(importPath, packageName(importPath))
	return gotypes.NewNamed(gotypes.NewTypeName(token.NoPos, pkg, name, nil), gotypes.NewStruct(nil, nil), nil), nil
}

func packageName(importPath string) string {
	name := path.Base(importPath)
	if versionSuffix.MatchString(name) {
		name = path.Base(path.Dir(importPath))
	}
	name = strings.TrimPrefix(name, "go-")
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return -1
	}, name)
}

// RootName returns the Go name of a root type. Internal roots are unexported
// and nested names inherit that through the prefix.
func RootName(name string, internal bool) string {
	if internal {
		return firstLower(templates.ToGo(name))
	}
	return firstUpper(templates.ToGo(name))
}

// FuncName returns the name of a function generated for the type typeName,
// e.g. NewHero or newHero.
func FuncName(prefix, typeName string) string {
	if token.IsExported(typeName) {
		return firstUpper(prefix) + firstUpper(typeName)
	}
	return firstLower(prefix) + firstUpper(typeName)
}

// DescriptorsName returns the name of the response-field variable of typeName.
func DescriptorsName(typeName string) string {
	return firstLower(typeName) + "ResponseFields"
}

func fieldTypeName(parentTypeName, key string) string {
	return fmt.Sprintf("%s_%s", parentTypeName, templates.ToGo(key))
}

func firstUpper(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func firstLower(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
