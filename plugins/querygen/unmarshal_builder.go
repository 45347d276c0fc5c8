package querygen

import (
	"fmt"
	"go/types"
	"strings"

	"github.com/gqlgo/gqlmodelc/codegen"
)

// UnmarshalBuilder builds the Unmarshal function of a generated type.
type UnmarshalBuilder struct {
	fieldDecoder *FieldDecoder
	imports      *codegen.Imports
}

// NewUnmarshalBuilder creates a new UnmarshalBuilder.
func NewUnmarshalBuilder(fieldDecoder *FieldDecoder, imports *codegen.Imports) *UnmarshalBuilder {
	return &UnmarshalBuilder{
		fieldDecoder: fieldDecoder,
		imports:      imports,
	}
}

// BuildUnmarshalFunc constructs the function reading typeInfo from a response
// object. Every field is read by its descriptor and the values are passed
// positionally to the constructor; the first error is returned as is.
//
//	func UnmarshalHero(r *graphqljson.Reader) (Hero, error) {
//		name, err := graphqljson.ReadRequired(r, heroResponseFields[0], graphqljson.DecodeString)
//		if err != nil {
//			return Hero{}, err
//		}
//		return NewHero(name), nil
//	}
func (b *UnmarshalBuilder) BuildUnmarshalFunc(typeInfo TypeInfo) (*codegen.FuncDecl, error) {
	typeName := typeInfo.TypeName()
	funcName := codegen.FuncName("Unmarshal", typeName)
	ctorName := codegen.FuncName("New", typeName)

	// パッケージ名をローカル変数で隠さないよう、先にフィールド型の import を記録する
	for _, field := range typeInfo.Fields {
		b.imports.TypeString(field.Accessor.Type)
	}
	reserved := []string{"r", "err", typeName, funcName, ctorName, typeInfo.Descriptors, codegen.RuntimePackage.Name()}
	locals := codegen.NewLocals(append(reserved, b.imports.Names()...)...)

	statements := make([]codegen.Statement, 0, 2*len(typeInfo.Fields)+1)
	args := make([]string, 0, len(typeInfo.Fields))
	for _, field := range typeInfo.Fields {
		value, err := b.readExpr(typeInfo, field)
		if err != nil {
			return nil, err
		}
		name := locals.Name(field.Accessor.Member)
		args = append(args, name)

		statements = append(statements,
			&codegen.Assignment{Targets: []string{name, "err"}, Value: value, Define: true},
			&codegen.IfStatement{
				Condition: "err != nil",
				Body: []codegen.Statement{
					&codegen.ReturnStatement{Value: typeName + "{}, err"},
				},
			},
		)
	}
	statements = append(statements, &codegen.ReturnStatement{
		Value: fmt.Sprintf("%s(%s), nil", ctorName, strings.Join(args, ", ")),
	})

	return &codegen.FuncDecl{
		Doc:     fmt.Sprintf("%s reads a %s from a response object.", funcName, typeName),
		Name:    funcName,
		Params:  []codegen.Param{{Name: "r", Type: types.NewPointer(readerType)}},
		Results: []types.Type{typeInfo.Named, errorType},
		Body:    statements,
	}, nil
}

// readExpr は 1 フィールドを読む式を返す。
func (b *UnmarshalBuilder) readExpr(typeInfo TypeInfo, field FieldInfo) (string, error) {
	desc := field.DescriptorExpr(typeInfo)
	optional := field.Descriptor.Optional

	switch field.Kind {
	case FragmentsHolderField:
		return fmt.Sprintf("%s(r)", codegen.FuncName("Unmarshal", field.Target.Obj().Name())), nil
	case FragmentSpreadField:
		read := "ReadFragment"
		if optional {
			read = "ReadOptionalFragment"
		}
		return fmt.Sprintf("%s(r, %s, %s)", b.imports.Runtime(read), desc, codegen.FuncName("Unmarshal", field.Target.Obj().Name())), nil
	case InlineFragmentField:
		return fmt.Sprintf("%s(r, %s, %s)", b.imports.Runtime("ReadConditional"), desc, codegen.FuncName("Unmarshal", field.Target.Obj().Name())), nil
	}

	decoder, err := b.fieldDecoder.DecodeExpr(typeInfo.Scope, field.Descriptor.Field)
	if err != nil {
		return "", err
	}
	read := "ReadRequired"
	if optional {
		read = "ReadOptional"
	}
	return fmt.Sprintf("%s(r, %s, %s)", b.imports.Runtime(read), desc, decoder), nil
}
