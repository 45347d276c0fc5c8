package codegen

import (
	"go/token"
	"go/types"
	"strconv"
)

// Scope is the naming context of one generated type. Nested types are named
// after the scope, so two scopes never hand out the same name.
type Scope struct {
	pkg    *types.Package
	name   string
	nested map[string]*types.Named
	names  map[string]string
}

// NewScope returns the scope of the type named name in pkg.
func NewScope(pkg *types.Package, name string) *Scope {
	return &Scope{
		pkg:    pkg,
		name:   name,
		nested: map[string]*types.Named{},
		names:  map[string]string{},
	}
}

// Name returns the Go name of the type owning the scope.
func (s *Scope) Name() string {
	return s.name
}

// Declare registers the nested type stored under key and returns its named
// type. The underlying type is set once the nested type is assembled.
func (s *Scope) Declare(key string) (*types.Named, error) {
	name := fieldTypeName(s.name, key)
	if _, ok := s.nested[key]; ok {
		return nil, &NameCollisionError{Scope: s.name, Name: name}
	}
	if _, ok := s.names[name]; ok {
		return nil, &NameCollisionError{Scope: s.name, Name: name}
	}
	named := types.NewNamed(types.NewTypeName(token.NoPos, s.pkg, name, nil), nil, nil)
	s.nested[key] = named
	s.names[name] = key
	return named, nil
}

// Lookup returns the nested type declared under key.
func (s *Scope) Lookup(key string) (*types.Named, bool) {
	named, ok := s.nested[key]
	return named, ok
}

// Locals hands out identifiers for the local variables of one generated
// function.
type Locals struct {
	used map[string]struct{}
}

// NewLocals returns a registry in which reserved names are never handed out.
func NewLocals(reserved ...string) *Locals {
	l := &Locals{used: map[string]struct{}{}}
	for _, name := range reserved {
		l.used[name] = struct{}{}
	}
	return l
}

// Name returns base, or base with a suffix when base is taken, is a keyword
// or shadows a predeclared identifier.
func (l *Locals) Name(base string) string {
	name := base
	for i := 1; !l.free(name); i++ {
		name = base + "Value"
		if i > 1 {
			name += strconv.Itoa(i)
		}
	}
	l.used[name] = struct{}{}
	return name
}

func (l *Locals) free(name string) bool {
	if _, ok := l.used[name]; ok {
		return false
	}
	return !token.IsKeyword(name) && types.Universe.Lookup(name) == nil
}
