package querygen

import (
	"fmt"

	"github.com/gqlgo/gqlmodelc/codegen"
	"github.com/gqlgo/gqlmodelc/ir"
)

// FieldDecoder は通常フィールドの値を変換する graphqljson の decoder/encoder 式を組み立てる。
type FieldDecoder struct {
	resolver *codegen.TypeResolver
	imports  *codegen.Imports
}

// NewFieldDecoder creates a new FieldDecoder
func NewFieldDecoder(resolver *codegen.TypeResolver, imports *codegen.Imports) *FieldDecoder {
	return &FieldDecoder{
		resolver: resolver,
		imports:  imports,
	}
}

// DecodeExpr は field の値を wire ツリーから読む decoder 式を返す。
//
// 例: List<Friend> に対して
//
//	graphqljson.DecodeList(graphqljson.DecodeNullable(graphqljson.DecodeObject(UnmarshalHero_Friend)))
//
// 最外の non-null は無視する。null の扱いは ReadRequired/ReadOptional が決める。
func (d *FieldDecoder) DecodeExpr(scope *codegen.Scope, field ir.Field) (string, error) {
	return d.decode(scope, field, ir.Unwrap(field.Type))
}

// EncodeExpr は field の値を wire ツリーへ書く encoder 式を返す。
func (d *FieldDecoder) EncodeExpr(scope *codegen.Scope, field ir.Field) (string, error) {
	return d.encode(scope, field, ir.Unwrap(field.Type))
}

func (d *FieldDecoder) decode(scope *codegen.Scope, field ir.Field, ref ir.TypeRef) (string, error) {
	switch ref := ref.(type) {
	case ir.ScalarRef:
		if model, ok := d.resolver.Model(ref.Name); ok {
			return fmt.Sprintf("%s[%s]", d.imports.Runtime("DecodeCustom"), d.imports.TypeString(model)), nil
		}
		return d.imports.Runtime(scalarDecoders[ref.Kind]), nil
	case ir.ListRef:
		elem, err := d.elem(scope, field, ref.Of, d.decode, "DecodeNullable")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s)", d.imports.Runtime("DecodeList"), elem), nil
	case ir.ObjectRef:
		named, ok := scope.Lookup(ref.Key)
		if !ok {
			return "", &codegen.UnresolvedTypeError{Type: scope.Name(), Field: field.Name, Ref: ref.String(), Reason: "nested object is not declared"}
		}
		return fmt.Sprintf("%s(%s)", d.imports.Runtime("DecodeObject"), codegen.FuncName("Unmarshal", named.Obj().Name())), nil
	}
	return "", &codegen.UnresolvedTypeError{Type: scope.Name(), Field: field.Name, Ref: fmt.Sprint(ref), Reason: "no decoder for this reference"}
}

func (d *FieldDecoder) encode(scope *codegen.Scope, field ir.Field, ref ir.TypeRef) (string, error) {
	switch ref := ref.(type) {
	case ir.ScalarRef:
		if model, ok := d.resolver.Model(ref.Name); ok {
			return fmt.Sprintf("%s[%s]", d.imports.Runtime("EncodeCustom"), d.imports.TypeString(model)), nil
		}
		return d.imports.Runtime(scalarEncoders[ref.Kind]), nil
	case ir.ListRef:
		elem, err := d.elem(scope, field, ref.Of, d.encode, "EncodeNullable")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s)", d.imports.Runtime("EncodeList"), elem), nil
	case ir.ObjectRef:
		named, ok := scope.Lookup(ref.Key)
		if !ok {
			return "", &codegen.UnresolvedTypeError{Type: scope.Name(), Field: field.Name, Ref: ref.String(), Reason: "nested object is not declared"}
		}
		return fmt.Sprintf("%s[%s]", d.imports.Runtime("EncodeObject"), d.imports.TypeString(named)), nil
	}
	return "", &codegen.UnresolvedTypeError{Type: scope.Name(), Field: field.Name, Ref: fmt.Sprint(ref), Reason: "no encoder for this reference"}
}

// elem は要素の式を返す。non-null でない要素は nullable で包む。
func (d *FieldDecoder) elem(
	scope *codegen.Scope,
	field ir.Field,
	ref ir.TypeRef,
	codec func(*codegen.Scope, ir.Field, ir.TypeRef) (string, error),
	nullable string,
) (string, error) {
	if nn, ok := ref.(ir.NonNullRef); ok {
		return codec(scope, field, ir.Unwrap(nn.Of))
	}
	expr, err := codec(scope, field, ref)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s)", d.imports.Runtime(nullable), expr), nil
}

var scalarDecoders = map[ir.ScalarKind]string{
	ir.ScalarString:  "DecodeString",
	ir.ScalarInt:     "DecodeInt",
	ir.ScalarFloat:   "DecodeFloat",
	ir.ScalarBoolean: "DecodeBoolean",
	ir.ScalarID:      "DecodeID",
	ir.ScalarEnum:    "DecodeString",
	ir.ScalarCustom:  "DecodeAny",
}

var scalarEncoders = map[ir.ScalarKind]string{
	ir.ScalarString:  "EncodeString",
	ir.ScalarInt:     "EncodeInt",
	ir.ScalarFloat:   "EncodeFloat",
	ir.ScalarBoolean: "EncodeBoolean",
	ir.ScalarID:      "EncodeString",
	ir.ScalarEnum:    "EncodeString",
	ir.ScalarCustom:  "EncodeAny",
}
