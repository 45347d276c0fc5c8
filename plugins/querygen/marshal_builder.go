package querygen

import (
	"fmt"
	"go/types"

	"github.com/gqlgo/gqlmodelc/codegen"
)

// MarshalBuilder builds the Marshal method of a generated type.
type MarshalBuilder struct {
	fieldDecoder *FieldDecoder
	imports      *codegen.Imports
}

// NewMarshalBuilder creates a new MarshalBuilder.
func NewMarshalBuilder(fieldDecoder *FieldDecoder, imports *codegen.Imports) *MarshalBuilder {
	return &MarshalBuilder{
		fieldDecoder: fieldDecoder,
		imports:      imports,
	}
}

// BuildMarshalMethod constructs the method writing typeInfo into a response
// object in descriptor order. Union branches and fragments write into the
// same object.
//
//	func (t Hero) Marshal(w *graphqljson.Writer) error {
//		if err := graphqljson.WriteRequired(w, heroResponseFields[0], t.name, graphqljson.EncodeString); err != nil {
//			return err
//		}
//		return nil
//	}
func (b *MarshalBuilder) BuildMarshalMethod(typeInfo TypeInfo) (*codegen.FuncDecl, error) {
	statements := make([]codegen.Statement, 0, len(typeInfo.Fields)+1)
	for _, field := range typeInfo.Fields {
		stmt, err := b.writeStatement(typeInfo, field)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	statements = append(statements, &codegen.ReturnStatement{Value: "nil"})

	return &codegen.FuncDecl{
		Recv:    &codegen.Param{Name: "t", Type: typeInfo.Named},
		Name:    "Marshal",
		Params:  []codegen.Param{{Name: "w", Type: types.NewPointer(writerType)}},
		Results: []types.Type{errorType},
		Body:    statements,
	}, nil
}

func (b *MarshalBuilder) writeStatement(typeInfo TypeInfo, field FieldInfo) (codegen.Statement, error) {
	member := "t." + field.Accessor.Member
	desc := field.DescriptorExpr(typeInfo)

	switch field.Kind {
	case FragmentsHolderField:
		return returnOnError(member + ".Marshal(w)"), nil
	case FragmentSpreadField:
		if !field.Descriptor.Optional {
			return returnOnError(member + ".Marshal(w)"), nil
		}
		return &codegen.IfStatement{
			Condition: member + " != nil",
			Body:      []codegen.Statement{returnOnError(member + ".Marshal(w)")},
		}, nil
	case InlineFragmentField:
		dispatch := codegen.FuncName("Marshal", field.Target.Obj().Name())
		return returnOnError(fmt.Sprintf("%s(w, %s, %s, %s)", b.imports.Runtime("WriteConditional"), desc, member, dispatch)), nil
	}

	encoder, err := b.fieldDecoder.EncodeExpr(typeInfo.Scope, field.Descriptor.Field)
	if err != nil {
		return nil, err
	}
	write := "WriteRequired"
	if field.Descriptor.Optional {
		write = "WriteOptional"
	}
	return returnOnError(fmt.Sprintf("%s(w, %s, %s, %s)", b.imports.Runtime(write), desc, member, encoder)), nil
}

func returnOnError(expr string) codegen.Statement {
	return &codegen.ErrorCheckStatement{
		ErrorExpr: expr,
		Body:      []codegen.Statement{&codegen.ReturnStatement{Value: "err"}},
	}
}
