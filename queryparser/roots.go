package queryparser

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/99designs/gqlgen/codegen/templates"
	"github.com/jinzhu/inflection"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/gqlgo/gqlmodelc/codegen"
	"github.com/gqlgo/gqlmodelc/ir"
)

const (
	typenameField       = "__typename"
	inlineFragmentField = "inlineFragment"
)

// Roots builds one root ObjectType per operation and per fragment of a
// validated query document. Operations come first, in document order.
//
// Roots adds a __typename selection to every selection set that needs one to
// pick an inline fragment branch or a conditional fragment spread, so the
// fragment definitions it embeds select it as well.
func Roots(schema *ast.Schema, doc *ast.QueryDocument) ([]*ir.ObjectType, error) {
	b := &builder{schema: schema}

	for _, op := range doc.Operations {
		def, err := b.operationType(op)
		if err != nil {
			return nil, err
		}
		op.SelectionSet = b.selectTypename(def, op.SelectionSet)
	}
	for _, fragment := range doc.Fragments {
		def, err := b.definition(fragment.TypeCondition, fragment.Position)
		if err != nil {
			return nil, err
		}
		fragment.SelectionSet = b.selectTypename(def, fragment.SelectionSet)
	}

	roots := make([]*ir.ObjectType, 0, len(doc.Operations)+len(doc.Fragments))
	for _, op := range doc.Operations {
		if op.Name == "" {
			return nil, gqlerror.ErrorPosf(op.Position, "anonymous %s can not be generated", op.Operation)
		}

		def, err := b.operationType(op)
		if err != nil {
			return nil, err
		}
		root, err := b.object(op.Name, def, op.SelectionSet)
		if err != nil {
			return nil, fmt.Errorf("operation %s: %w", op.Name, err)
		}
		root.Kind = ir.ObjectKind{}
		roots = append(roots, root)
	}

	for _, fragment := range doc.Fragments {
		def, err := b.definition(fragment.TypeCondition, fragment.Position)
		if err != nil {
			return nil, err
		}
		root, err := b.object(fragment.Name, def, fragment.SelectionSet)
		if err != nil {
			return nil, fmt.Errorf("fragment %s: %w", fragment.Name, err)
		}
		root.Kind = ir.FragmentKind{Definition: fragmentDefinition(fragment)}
		roots = append(roots, root)
	}

	return roots, nil
}

func fragmentDefinition(fragment *ast.FragmentDefinition) string {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(&ast.QueryDocument{
		Fragments: ast.FragmentDefinitionList{fragment},
	})

	return strings.TrimSpace(buf.String())
}

type builder struct {
	schema *ast.Schema
}

func (b *builder) operationType(op *ast.OperationDefinition) (*ast.Definition, error) {
	var def *ast.Definition
	switch op.Operation {
	case ast.Query:
		def = b.schema.Query
	case ast.Mutation:
		def = b.schema.Mutation
	case ast.Subscription:
		def = b.schema.Subscription
	}
	if def == nil {
		return nil, gqlerror.ErrorPosf(op.Position, "schema does not support %s", op.Operation)
	}

	return def, nil
}

func (b *builder) definition(name string, pos *ast.Position) (*ast.Definition, error) {
	def, ok := b.schema.Types[name]
	if !ok {
		if pos == nil {
			return nil, fmt.Errorf("unknown type %s", name)
		}
		return nil, gqlerror.ErrorPosf(pos, "unknown type %s", name)
	}

	return def, nil
}

// possibleTypes returns the concrete type names def can resolve to, sorted.
func (b *builder) possibleTypes(def *ast.Definition) []string {
	if def.Kind == ast.Object {
		return []string{def.Name}
	}

	var names []string
	for _, t := range b.schema.GetPossibleTypes(def) {
		names = append(names, t.Name)
	}
	slices.Sort(names)

	return slices.Compact(names)
}

// applies reports whether a selection on condition matches every value of def.
func (b *builder) applies(def *ast.Definition, condition string) bool {
	if condition == "" || condition == def.Name {
		return true
	}
	cond, ok := b.schema.Types[condition]
	if !ok {
		return false
	}

	possible := b.possibleTypes(cond)
	for _, name := range b.possibleTypes(def) {
		if !slices.Contains(possible, name) {
			return false
		}
	}

	return true
}

// narrow returns the concrete types of condition that def can resolve to.
func (b *builder) narrow(def *ast.Definition, condition string) []string {
	cond, ok := b.schema.Types[condition]
	if !ok {
		return nil
	}

	parent := b.possibleTypes(def)
	var names []string
	for _, name := range b.possibleTypes(cond) {
		if slices.Contains(parent, name) {
			names = append(names, name)
		}
	}

	return names
}

// selectTypename は分岐するフラグメントを含む選択に __typename を足す
func (b *builder) selectTypename(def *ast.Definition, sels ast.SelectionSet) ast.SelectionSet {
	needsTypename := false
	hasTypename := false
	for _, sel := range sels {
		switch sel := sel.(type) {
		case *ast.Field:
			if sel.Alias == typenameField && sel.Name == typenameField {
				hasTypename = true
			}
			if sel.Definition != nil {
				if child, ok := b.schema.Types[sel.Definition.Type.Name()]; ok {
					sel.SelectionSet = b.selectTypename(child, sel.SelectionSet)
				}
			}
		case *ast.InlineFragment:
			child := def
			if sel.TypeCondition != "" {
				if cond, ok := b.schema.Types[sel.TypeCondition]; ok {
					child = cond
				}
			}
			if !b.applies(def, sel.TypeCondition) {
				needsTypename = true
			}
			sel.SelectionSet = b.selectTypename(child, sel.SelectionSet)
		case *ast.FragmentSpread:
			if sel.Definition == nil || !b.applies(def, sel.Definition.TypeCondition) {
				needsTypename = true
			}
		}
	}

	if !needsTypename || hasTypename {
		return sels
	}

	return append(ast.SelectionSet{&ast.Field{
		Alias:            typenameField,
		Name:             typenameField,
		Definition:       &ast.FieldDefinition{Name: typenameField, Type: ast.NonNullNamedType("String", nil)},
		ObjectDefinition: def,
	}}, sels...)
}

// fieldGroup は同じレスポンス名で選択されたフィールドをまとめる
type fieldGroup struct {
	fields   []*ast.Field
	optional bool
}

type branchGroup struct {
	condition string
	position  *ast.Position
	sels      ast.SelectionSet
	// optional はすべての出現が @include/@skip 付きのとき true
	optional bool
}

type spread struct {
	fragment *ast.FragmentDefinition
	optional bool
}

type selection struct {
	order    []string
	fields   map[string]*fieldGroup
	branches []*branchGroup
	spreads  []spread
}

func (b *builder) collect(s *selection, def *ast.Definition, sels ast.SelectionSet, optional bool) {
	for _, sel := range sels {
		switch sel := sel.(type) {
		case *ast.Field:
			fieldOptional := optional || conditional(sel.Directives)
			group, ok := s.fields[sel.Alias]
			if !ok {
				group = &fieldGroup{optional: fieldOptional}
				s.fields[sel.Alias] = group
				s.order = append(s.order, sel.Alias)
			}
			group.fields = append(group.fields, sel)
			group.optional = group.optional && fieldOptional
		case *ast.InlineFragment:
			if b.applies(def, sel.TypeCondition) {
				b.collect(s, def, sel.SelectionSet, optional || conditional(sel.Directives))
				continue
			}

			branchOptional := optional || conditional(sel.Directives)
			i := slices.IndexFunc(s.branches, func(g *branchGroup) bool { return g.condition == sel.TypeCondition })
			if i < 0 {
				s.branches = append(s.branches, &branchGroup{condition: sel.TypeCondition, position: sel.Position, optional: branchOptional})
				i = len(s.branches) - 1
			}
			s.branches[i].sels = append(s.branches[i].sels, sel.SelectionSet...)
			s.branches[i].optional = s.branches[i].optional && branchOptional
		case *ast.FragmentSpread:
			if sel.Definition == nil {
				continue
			}
			spreadOptional := optional || conditional(sel.Directives) || !b.applies(def, sel.Definition.TypeCondition)
			i := slices.IndexFunc(s.spreads, func(sp spread) bool { return sp.fragment.Name == sel.Name })
			if i < 0 {
				s.spreads = append(s.spreads, spread{fragment: sel.Definition, optional: spreadOptional})
				continue
			}
			s.spreads[i].optional = s.spreads[i].optional && spreadOptional
		}
	}
}

func conditional(directives ast.DirectiveList) bool {
	return directives.ForName("include") != nil || directives.ForName("skip") != nil
}

// object builds the ObjectType for one selection set on def. The caller sets Kind.
func (b *builder) object(name string, def *ast.Definition, sels ast.SelectionSet) (*ir.ObjectType, error) {
	s := &selection{fields: make(map[string]*fieldGroup)}
	b.collect(s, def, sels, false)

	obj := &ir.ObjectType{Name: name, Kind: ir.ObjectKind{}}
	keys := map[string]struct{}{codegen.FragmentsKey: {}}
	uniqueKey := func(candidates ...string) string {
		for _, key := range candidates {
			if _, ok := keys[key]; !ok {
				keys[key] = struct{}{}
				return key
			}
		}
		base := candidates[0]
		for i := 2; ; i++ {
			key := base + strconv.Itoa(i)
			if _, ok := keys[key]; !ok {
				keys[key] = struct{}{}
				return key
			}
		}
	}

	for _, alias := range s.order {
		group := s.fields[alias]
		field := group.fields[0]
		if field.Definition == nil {
			return nil, gqlerror.ErrorPosf(field.Position, "unknown field %s on %s", field.Name, def.Name)
		}
		fieldType := field.Definition.Type

		f := ir.Field{
			Name:         fieldName(alias),
			ResponseName: alias,
			FieldName:    field.Name,
			IsOptional:   group.optional || !fieldType.NonNull,
		}

		child, err := b.definition(fieldType.Name(), field.Position)
		if err != nil {
			return nil, err
		}
		if !isComposite(child) {
			f.Type = b.typeRef(fieldType, "")
			obj.Fields = append(obj.Fields, f)
			continue
		}

		key := uniqueKey(templates.ToGo(inflection.Singular(alias)), templates.ToGo(alias))
		var merged ast.SelectionSet
		for _, occurrence := range group.fields {
			merged = append(merged, occurrence.SelectionSet...)
		}
		nested, err := b.object(key, child, merged)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", alias, err)
		}
		obj.NestedObjects = append(obj.NestedObjects, ir.NestedObject{Key: key, Type: nested})
		f.Type = b.typeRef(fieldType, key)
		obj.Fields = append(obj.Fields, f)
	}

	if len(s.branches) > 0 {
		superKey := uniqueKey(templates.ToGo(def.Name))
		obj.NestedObjects = append(obj.NestedObjects, ir.NestedObject{
			Key:  superKey,
			Type: &ir.ObjectType{Name: superKey, Kind: ir.InlineFragmentSuperKind{}},
		})

		var covered []string
		for _, branch := range s.branches {
			cond, err := b.definition(branch.condition, branch.position)
			if err != nil {
				return nil, err
			}
			key := uniqueKey("As" + templates.ToGo(branch.condition))
			nested, err := b.object(key, cond, branch.sels)
			if err != nil {
				return nil, fmt.Errorf("... on %s: %w", branch.condition, err)
			}
			possibleTypes := b.narrow(def, branch.condition)
			nested.Kind = ir.InlineFragmentKind{Super: superKey, PossibleTypes: possibleTypes}
			obj.NestedObjects = append(obj.NestedObjects, ir.NestedObject{Key: key, Type: nested})
			if !branch.optional {
				covered = append(covered, possibleTypes...)
			}
		}

		// すべての具象型をブランチが覆うときだけ必須になる
		var t ir.TypeRef = ir.ObjectRef{Key: superKey}
		optional := slices.ContainsFunc(b.possibleTypes(def), func(name string) bool { return !slices.Contains(covered, name) })
		if !optional {
			t = ir.NonNullRef{Of: t}
		}
		obj.Fields = append(obj.Fields, ir.Field{
			Name:       inlineFragmentField,
			Type:       t,
			IsOptional: optional,
		})
	}

	if len(s.spreads) > 0 {
		holder := &ir.ObjectType{Name: codegen.FragmentsKey, Kind: ir.ObjectKind{}}
		for _, sp := range s.spreads {
			ref := ir.FragmentRef{Name: sp.fragment.Name}
			if !b.applies(def, sp.fragment.TypeCondition) {
				ref.PossibleTypes = b.narrow(def, sp.fragment.TypeCondition)
			}

			var t ir.TypeRef = ref
			if !sp.optional {
				t = ir.NonNullRef{Of: ref}
			}
			holder.Fields = append(holder.Fields, ir.Field{
				Name:       templates.ToGoPrivate(sp.fragment.Name),
				Type:       t,
				IsOptional: sp.optional,
			})
		}
		obj.FragmentsType = holder
	}

	return obj, nil
}

func (b *builder) typeRef(t *ast.Type, key string) ir.TypeRef {
	var ref ir.TypeRef
	if t.Elem != nil {
		ref = ir.ListRef{Of: b.typeRef(t.Elem, key)}
	} else if key != "" {
		ref = ir.ObjectRef{Key: key}
	} else {
		ref = b.scalarRef(t.NamedType)
	}

	if t.NonNull {
		return ir.NonNullRef{Of: ref}
	}
	return ref
}

func (b *builder) scalarRef(name string) ir.ScalarRef {
	switch name {
	case "String":
		return ir.ScalarRef{Name: name, Kind: ir.ScalarString}
	case "Int":
		return ir.ScalarRef{Name: name, Kind: ir.ScalarInt}
	case "Float":
		return ir.ScalarRef{Name: name, Kind: ir.ScalarFloat}
	case "Boolean":
		return ir.ScalarRef{Name: name, Kind: ir.ScalarBoolean}
	case "ID":
		return ir.ScalarRef{Name: name, Kind: ir.ScalarID}
	}

	if def, ok := b.schema.Types[name]; ok && def.Kind == ast.Enum {
		return ir.ScalarRef{Name: name, Kind: ir.ScalarEnum}
	}
	return ir.ScalarRef{Name: name, Kind: ir.ScalarCustom}
}

func isComposite(def *ast.Definition) bool {
	switch def.Kind {
	case ast.Object, ast.Interface, ast.Union:
		return true
	}
	return false
}

// fieldName は alias を Go の識別子に使える名前にする
func fieldName(alias string) string {
	if name := strings.TrimLeft(alias, "_"); name != "" {
		return name
	}
	return "field"
}
