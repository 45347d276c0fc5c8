package querygen

import (
	"fmt"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"github.com/gqlgo/gqlmodelc/codegen"
	"github.com/gqlgo/gqlmodelc/ir"
)

var (
	readerType    = runtimeType("Reader", types.NewStruct(nil, nil))
	writerType    = runtimeType("Writer", types.NewStruct(nil, nil))
	marshalerType = runtimeType("Marshaler", types.NewInterfaceType(nil, nil).Complete())
	fragmentType  = runtimeType("Fragment", types.NewInterfaceType(nil, nil).Complete())
	errorType     = types.Universe.Lookup("error").Type()
)

func runtimeType(name string, underlying types.Type) *types.Named {
	return types.NewNamed(types.NewTypeName(token.NoPos, codegen.RuntimePackage, name, nil), underlying, nil)
}

// CodeGenerator assembles the declaration tree of one root ObjectType.
// A CodeGenerator owns the import set of its root and must not be reused.
type CodeGenerator struct {
	pkg              *types.Package
	imports          *codegen.Imports
	analyzer         *FieldAnalyzer
	unmarshalBuilder *UnmarshalBuilder
	marshalBuilder   *MarshalBuilder
	inlineDecoder    *InlineFragmentDecoder
}

// NewCodeGenerator creates a new CodeGenerator
func NewCodeGenerator(pkg *types.Package, models map[string]types.Type, fragments map[string]string) *CodeGenerator {
	imports := codegen.NewImports(pkg)
	resolver := codegen.NewTypeResolver(pkg, models, fragments)
	fieldDecoder := NewFieldDecoder(resolver, imports)
	return &CodeGenerator{
		pkg:              pkg,
		imports:          imports,
		analyzer:         NewFieldAnalyzer(resolver),
		unmarshalBuilder: NewUnmarshalBuilder(fieldDecoder, imports),
		marshalBuilder:   NewMarshalBuilder(fieldDecoder, imports),
		inlineDecoder:    NewInlineFragmentDecoder(imports),
	}
}

// Generate assembles root under the Go name name. Only Object and Fragment
// kinds may be roots.
func (g *CodeGenerator) Generate(root *ir.ObjectType, name string) (*codegen.Declaration, error) {
	named := types.NewNamed(types.NewTypeName(token.NoPos, g.pkg, name, nil), nil, nil)

	var (
		decl *codegen.TypeDecl
		err  error
	)
	switch kind := root.Kind.(type) {
	case ir.ObjectKind:
		decl, err = g.object(named, root, false)
		if err == nil {
			decl.Doc = fmt.Sprintf("%s is the result of the %s operation.", name, root.Name)
		}
	case ir.FragmentKind:
		decl, err = g.fragment(named, root, kind)
	case ir.InlineFragmentSuperKind, ir.InlineFragmentKind:
		err = &codegen.UnresolvedTypeError{Type: name, Reason: fmt.Sprintf("%s cannot be a root", kind)}
	default:
		err = &codegen.UnresolvedTypeError{Type: name, Reason: fmt.Sprintf("unknown kind %v", root.Kind)}
	}
	if err != nil {
		return nil, err
	}

	return &codegen.Declaration{Root: decl, Imports: g.imports.Paths()}, nil
}

// object は struct 型、記述子、コンストラクタ、getter、Marshal、Unmarshal と
// ネスト型を組み立てる。Object・Fragment・InlineFragment と fragments holder で共通。
func (g *CodeGenerator) object(named *types.Named, obj *ir.ObjectType, inHolder bool) (*codegen.TypeDecl, error) {
	scope := codegen.NewScope(g.pkg, named.Obj().Name())
	for _, nested := range obj.NestedObjects {
		if _, err := scope.Declare(nested.Key); err != nil {
			return nil, err
		}
	}
	if obj.FragmentsType != nil {
		if inHolder {
			return nil, &codegen.UnresolvedTypeError{Type: scope.Name(), Reason: "fragments holder spreads fragments itself"}
		}
		if _, err := scope.Declare(codegen.FragmentsKey); err != nil {
			return nil, err
		}
	}

	typeInfo, err := g.analyzer.AnalyzeType(named, scope, obj, inHolder)
	if err != nil {
		return nil, err
	}
	accessors := typeInfo.Accessors()
	named.SetUnderlying(codegen.StructType(g.pkg, accessors))

	unmarshal, err := g.unmarshalBuilder.BuildUnmarshalFunc(typeInfo)
	if err != nil {
		return nil, err
	}
	marshal, err := g.marshalBuilder.BuildMarshalMethod(typeInfo)
	if err != nil {
		return nil, err
	}

	decl := &codegen.TypeDecl{
		Named: named,
		Vars:  []codegen.ValueDecl{codegen.ResponseFieldsDecl(typeInfo.Descriptors, typeInfo.ResponseFields(), g.imports)},
	}
	decl.Funcs = append(decl.Funcs, codegen.ConstructorDecl(named, accessors, g.imports.Names()...))
	for _, a := range accessors {
		decl.Funcs = append(decl.Funcs, codegen.GetterDecl(named, a))
	}
	decl.Funcs = append(decl.Funcs, marshal, unmarshal)

	if err := g.nested(decl, scope, obj); err != nil {
		return nil, err
	}
	return decl, nil
}

// nested はネスト型を宣言順に組み立て、最後に fragments holder を加える。
func (g *CodeGenerator) nested(decl *codegen.TypeDecl, scope *codegen.Scope, obj *ir.ObjectType) error {
	for _, nested := range obj.NestedObjects {
		named, _ := scope.Lookup(nested.Key)

		var (
			child *codegen.TypeDecl
			err   error
		)
		switch kind := nested.Type.Kind.(type) {
		case ir.ObjectKind:
			child, err = g.object(named, nested.Type, false)
		case ir.InlineFragmentSuperKind:
			child, err = g.super(named, scope, obj, nested.Key)
		case ir.InlineFragmentKind:
			child, err = g.branch(named, scope, obj, nested.Type, kind)
		case ir.FragmentKind:
			err = &codegen.UnresolvedTypeError{Type: named.Obj().Name(), Reason: "a fragment cannot be nested"}
		default:
			err = &codegen.UnresolvedTypeError{Type: named.Obj().Name(), Reason: fmt.Sprintf("unknown kind %v", nested.Type.Kind)}
		}
		if err != nil {
			return err
		}
		decl.Nested = append(decl.Nested, child)
	}

	if obj.FragmentsType != nil {
		named, _ := scope.Lookup(codegen.FragmentsKey)
		holder, err := g.object(named, obj.FragmentsType, true)
		if err != nil {
			return err
		}
		decl.Nested = append(decl.Nested, holder)
	}
	return nil
}

// fragment は Fragment ルートを組み立てる。定義文の定数と graphqljson.Fragment の実装を加える。
func (g *CodeGenerator) fragment(named *types.Named, obj *ir.ObjectType, kind ir.FragmentKind) (*codegen.TypeDecl, error) {
	decl, err := g.object(named, obj, false)
	if err != nil {
		return nil, err
	}

	typeName := named.Obj().Name()
	constName := typeName + "FragmentDefinition"
	decl.Doc = fmt.Sprintf("%s is the %s fragment.", typeName, obj.Name)
	decl.Consts = append(decl.Consts, codegen.ValueDecl{Name: constName, Value: stringLiteral(kind.Definition)})
	decl.Vars = append(decl.Vars, codegen.ValueDecl{Name: "_", Type: fragmentType, Value: typeName + "{}"})
	decl.Funcs = append(decl.Funcs, &codegen.FuncDecl{
		Recv:    &codegen.Param{Type: named},
		Name:    "FragmentDefinition",
		Results: []types.Type{types.Typ[types.String]},
		Body:    []codegen.Statement{&codegen.ReturnStatement{Value: constName}},
	})
	return decl, nil
}

// super は union/interface の共通型を interface として組み立てる。
// 自身のフィールドは持たず、Marshal とブランチ識別用のマーカーメソッドだけを宣言する。
func (g *CodeGenerator) super(named *types.Named, scope *codegen.Scope, parent *ir.ObjectType, key string) (*codegen.TypeDecl, error) {
	marker := types.NewFunc(token.NoPos, g.pkg, markerName(named), types.NewSignatureType(nil, nil, nil, nil, nil, false))
	named.SetUnderlying(types.NewInterfaceType([]*types.Func{marker}, []types.Type{marshalerType}).Complete())

	branches := make([]InlineFragmentBranch, 0)
	for _, b := range parent.Branches(key) {
		branchNamed, ok := scope.Lookup(b.Key)
		if !ok {
			return nil, &codegen.UnresolvedTypeError{Type: named.Obj().Name(), Ref: b.Key, Reason: "branch is not declared"}
		}
		kind, _ := b.Type.Kind.(ir.InlineFragmentKind)
		branches = append(branches, InlineFragmentBranch{Named: branchNamed, PossibleTypes: kind.PossibleTypes})
	}

	return &codegen.TypeDecl{
		Named: named,
		Funcs: []*codegen.FuncDecl{
			g.inlineDecoder.MarshalDispatcher(named, branches),
			g.inlineDecoder.UnmarshalDispatcher(named, branches),
		},
	}, nil
}

// branch は super 型を実装する 1 ブランチを組み立てる。
func (g *CodeGenerator) branch(named *types.Named, scope *codegen.Scope, parent *ir.ObjectType, obj *ir.ObjectType, kind ir.InlineFragmentKind) (*codegen.TypeDecl, error) {
	superObj, ok := parent.Nested(kind.Super)
	if !ok {
		return nil, &codegen.UnresolvedTypeError{Type: named.Obj().Name(), Ref: kind.Super, Reason: "no super type with this key"}
	}
	if _, ok := superObj.Kind.(ir.InlineFragmentSuperKind); !ok {
		return nil, &codegen.UnresolvedTypeError{Type: named.Obj().Name(), Ref: kind.Super, Reason: fmt.Sprintf("super type has kind %s", superObj.Kind)}
	}
	super, _ := scope.Lookup(kind.Super)

	decl, err := g.object(named, obj, false)
	if err != nil {
		return nil, err
	}
	decl.Vars = append(decl.Vars, codegen.ValueDecl{Name: "_", Type: super, Value: named.Obj().Name() + "{}"})
	decl.Funcs = append(decl.Funcs, &codegen.FuncDecl{
		Recv: &codegen.Param{Type: named},
		Name: markerName(super),
	})
	return decl, nil
}

// markerName はブランチを super 型に結び付けるマーカーメソッド名を返す。
func markerName(super *types.Named) string {
	name := super.Obj().Name()
	return "is" + strings.ToUpper(name[:1]) + name[1:]
}

// stringLiteral は s を raw string で表す。バッククォートを含む場合は通常の文字列にする。
func stringLiteral(s string) string {
	if strings.Contains(s, "`") {
		return strconv.Quote(s)
	}
	return "`" + s + "`"
}
