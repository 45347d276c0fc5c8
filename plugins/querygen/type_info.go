package querygen

import (
	"go/types"
	"strconv"

	"github.com/gqlgo/gqlmodelc/codegen"
	"github.com/gqlgo/gqlmodelc/ir"
)

// TypeInfo represents analyzed type information for code generation
type TypeInfo struct {
	Named  *types.Named
	Scope  *codegen.Scope
	Object *ir.ObjectType
	Fields []FieldInfo
	// Descriptors はレスポンスフィールド記述子を保持するパッケージ変数名
	Descriptors string
}

// TypeName returns the Go name of the analyzed type.
func (t TypeInfo) TypeName() string {
	return t.Named.Obj().Name()
}

// Accessors returns the accessors of every field in declaration order.
func (t TypeInfo) Accessors() []codegen.Accessor {
	accessors := make([]codegen.Accessor, 0, len(t.Fields))
	for _, f := range t.Fields {
		accessors = append(accessors, f.Accessor)
	}
	return accessors
}

// ResponseFields returns the descriptors of every field in declaration order.
func (t TypeInfo) ResponseFields() []codegen.ResponseField {
	fields := make([]codegen.ResponseField, 0, len(t.Fields))
	for _, f := range t.Fields {
		fields = append(fields, f.Descriptor)
	}
	return fields
}

// FieldInfo は生成される型の 1 フィールドの情報を表す
type FieldInfo struct {
	Accessor   codegen.Accessor
	Descriptor codegen.ResponseField
	// Index は記述子スライス内の位置
	Index int
	Kind  FieldKind
	// Target は Object・InlineFragment・Fragment フィールドが参照する型
	Target *types.Named
}

// DescriptorExpr returns the expression selecting the descriptor of f.
func (f FieldInfo) DescriptorExpr(info TypeInfo) string {
	return info.Descriptors + "[" + strconv.Itoa(f.Index) + "]"
}
