package querygen

import (
	"go/types"

	"github.com/gqlgo/gqlmodelc/codegen"
	"github.com/gqlgo/gqlmodelc/graphqljson"
	"github.com/gqlgo/gqlmodelc/ir"
)

// FieldAnalyzer は ObjectType のフィールドを解析し、FieldInfo のリストを構築する。
// 型の解決、記述子の構築、フィールドの分類をまとめて行う。
type FieldAnalyzer struct {
	classifier *FieldClassifier
	resolver   *codegen.TypeResolver
}

// NewFieldAnalyzer creates a new FieldAnalyzer
func NewFieldAnalyzer(resolver *codegen.TypeResolver) *FieldAnalyzer {
	return &FieldAnalyzer{
		classifier: NewFieldClassifier(),
		resolver:   resolver,
	}
}

// AnalyzeType は obj の全フィールドを解析する。
//
// scope には obj のネスト型と fragments holder が宣言済みであること。
// inHolder は obj が fragments holder の場合に true を渡す。
func (a *FieldAnalyzer) AnalyzeType(named *types.Named, scope *codegen.Scope, obj *ir.ObjectType, inHolder bool) (TypeInfo, error) {
	descriptors, err := codegen.ResponseFields(scope, obj)
	if err != nil {
		return TypeInfo{}, err
	}

	fields := make([]FieldInfo, 0, len(descriptors))
	for i, rf := range descriptors {
		info, err := a.analyzeField(scope, obj, rf, inHolder)
		if err != nil {
			return TypeInfo{}, err
		}
		info.Index = i
		fields = append(fields, info)
	}

	info := TypeInfo{
		Named:       named,
		Scope:       scope,
		Object:      obj,
		Fields:      fields,
		Descriptors: codegen.DescriptorsName(named.Obj().Name()),
	}
	if err := codegen.CheckAccessors(info.TypeName(), info.Accessors()); err != nil {
		return TypeInfo{}, err
	}
	return info, nil
}

func (a *FieldAnalyzer) analyzeField(scope *codegen.Scope, obj *ir.ObjectType, rf codegen.ResponseField, inHolder bool) (FieldInfo, error) {
	kind, err := a.classifier.Classify(scope.Name(), rf, inHolder)
	if err != nil {
		return FieldInfo{}, err
	}

	if kind == FragmentsHolderField {
		holder, ok := scope.Lookup(codegen.FragmentsKey)
		if !ok {
			return FieldInfo{}, &codegen.UnresolvedTypeError{Type: scope.Name(), Field: codegen.FragmentsField, Reason: "fragments holder is not declared"}
		}
		return FieldInfo{
			Accessor:   codegen.NewAccessor(ir.Field{Name: codegen.FragmentsField}, holder),
			Descriptor: rf,
			Kind:       kind,
			Target:     holder,
		}, nil
	}

	t, err := a.resolver.FieldType(scope, obj, rf.Field)
	if err != nil {
		return FieldInfo{}, err
	}
	info := FieldInfo{
		Accessor:   codegen.NewAccessor(rf.Field, t),
		Descriptor: rf,
		Kind:       kind,
	}
	if kind != RegularField || rf.Type == graphqljson.FieldTypeObject {
		info.Target = namedOf(t)
	}
	return info, nil
}

// namedOf はポインタを外した Named 型を返す。
func namedOf(t types.Type) *types.Named {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	named, _ := t.(*types.Named)
	return named
}
