package codegen

import (
	"go/types"
	"maps"
	"slices"
)

// RuntimePath is the import path of the package generated code depends on.
const RuntimePath = "github.com/gqlgo/gqlmodelc/graphqljson"

// RuntimePackage is the package generated code depends on.
var RuntimePackage = types.NewPackage(RuntimePath, "graphqljson")

// Declaration is the generated output of one root ObjectType.
type Declaration struct {
	Root *TypeDecl
	// Imports lists the import paths referenced by expressions in Root, sorted.
	Imports []string
}

// TypeDecl is one generated named type and the declarations that belong to it.
// Nested declarations stay children of their parent; the printer flattens them.
type TypeDecl struct {
	Doc string
	// Named has a *types.Struct or *types.Interface underlying type.
	Named  *types.Named
	Consts []ValueDecl
	Vars   []ValueDecl
	Funcs  []*FuncDecl
	Nested []*TypeDecl
}

// Name returns the Go name of the declared type.
func (d *TypeDecl) Name() string {
	return d.Named.Obj().Name()
}

// Walk calls fn for d and every nested declaration, parents first.
func (d *TypeDecl) Walk(fn func(*TypeDecl)) {
	fn(d)
	for _, n := range d.Nested {
		n.Walk(fn)
	}
}

// Find returns the declaration named name in the tree rooted at d.
func (d *TypeDecl) Find(name string) (*TypeDecl, bool) {
	var found *TypeDecl
	d.Walk(func(td *TypeDecl) {
		if found == nil && td.Name() == name {
			found = td
		}
	})
	return found, found != nil
}

// Func returns the function or method of d named name.
func (d *TypeDecl) Func(name string) (*FuncDecl, bool) {
	for _, f := range d.Funcs {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// TopLevelNames lists every package-scope identifier declared by the tree:
// types, constants, variables and functions without a receiver.
func (d *TypeDecl) TopLevelNames() []string {
	var names []string
	d.Walk(func(td *TypeDecl) {
		names = append(names, td.Name())
		for _, c := range td.Consts {
			names = append(names, c.Name)
		}
		for _, v := range td.Vars {
			if v.Name != "_" {
				names = append(names, v.Name)
			}
		}
		for _, f := range td.Funcs {
			if f.Recv == nil {
				names = append(names, f.Name)
			}
		}
	})
	return names
}

// ValueDecl is a package-level const or var. Value is a rendered Go expression.
type ValueDecl struct {
	Name string
	// Type is optional.
	Type  types.Type
	Value string
}

// Param is a named parameter or receiver. An empty Name declares an unnamed one.
type Param struct {
	Name string
	Type types.Type
}

// FuncDecl is a generated function, or a method when Recv is set.
type FuncDecl struct {
	Doc     string
	Recv    *Param
	Name    string
	Params  []Param
	Results []types.Type
	Body    []Statement
}

// Imports records the packages referenced while rendering expressions for
// one root. It is not safe for concurrent use.
type Imports struct {
	pkg   *types.Package
	paths map[string]string
}

// NewImports returns an empty import set for code generated into pkg.
func NewImports(pkg *types.Package) *Imports {
	return &Imports{pkg: pkg, paths: map[string]string{}}
}

// Qualifier is a types.Qualifier that records every foreign package.
func (im *Imports) Qualifier(p *types.Package) string {
	if p == nil || p.Path() == im.pkg.Path() {
		return ""
	}
	im.paths[p.Path()] = p.Name()
	return p.Name()
}

// TypeString renders t as seen from the generated package.
func (im *Imports) TypeString(t types.Type) string {
	return types.TypeString(t, im.Qualifier)
}

// Runtime returns a qualified reference to a runtime package member.
func (im *Imports) Runtime(name string) string {
	return im.Qualifier(RuntimePackage) + "." + name
}

// Paths returns the recorded import paths, sorted.
func (im *Imports) Paths() []string {
	return slices.Sorted(maps.Keys(im.paths))
}

// Names returns the package names of the recorded imports.
func (im *Imports) Names() []string {
	return slices.Sorted(maps.Values(im.paths))
}
