package querygen

import (
	"fmt"
	"go/types"
	"slices"
	"strconv"

	"github.com/gqlgo/gqlmodelc/codegen"
)

// InlineFragmentBranch は union/interface の 1 ブランチ型を表す。
type InlineFragmentBranch struct {
	Named         *types.Named
	PossibleTypes []string
}

// InlineFragmentDecoder は InlineFragmentSuper 型のディスパッチ関数を生成する。
type InlineFragmentDecoder struct {
	imports *codegen.Imports
}

// NewInlineFragmentDecoder は新しい InlineFragmentDecoder を作成する。
func NewInlineFragmentDecoder(imports *codegen.Imports) *InlineFragmentDecoder {
	return &InlineFragmentDecoder{imports: imports}
}

// MarshalDispatcher は super 型の値を保持しているブランチの Marshal に委譲する関数を作成する。
//
// 以下のようなコードを生成する:
//
//	func MarshalHero_Character(w *graphqljson.Writer, v Hero_Character) error {
//	    switch v := v.(type) {
//	    case Hero_AsHuman:
//	        return v.Marshal(w)
//	    default:
//	        return &graphqljson.AmbiguousUnionBranchError{Union: "Hero_Character", Value: v}
//	    }
//	}
//
// ブランチ型以外（nil やポインタ）は必ず default に落ちる。
func (d *InlineFragmentDecoder) MarshalDispatcher(super *types.Named, branches []InlineFragmentBranch) *codegen.FuncDecl {
	superName := super.Obj().Name()

	cases := make([]codegen.SwitchCase, 0, len(branches))
	for _, branch := range branches {
		cases = append(cases, codegen.SwitchCase{
			Values: []string{d.imports.TypeString(branch.Named)},
			Body:   []codegen.Statement{&codegen.ReturnStatement{Value: "v.Marshal(w)"}},
		})
	}

	name := codegen.FuncName("Marshal", superName)
	return &codegen.FuncDecl{
		Doc:     fmt.Sprintf("%s writes the branch held by v.", name),
		Name:    name,
		Params:  []codegen.Param{{Name: "w", Type: types.NewPointer(writerType)}, {Name: "v", Type: super}},
		Results: []types.Type{errorType},
		Body: []codegen.Statement{
			&codegen.SwitchStatement{
				Expr:  "v := v.(type)",
				Cases: cases,
				Default: []codegen.Statement{
					&codegen.ReturnStatement{
						Value: fmt.Sprintf("&%s{Union: %q, Value: v}", d.imports.Runtime("AmbiguousUnionBranchError"), superName),
					},
				},
			},
		},
	}
}

// UnmarshalDispatcher は __typename からブランチを選んで読む関数を作成する。
//
// 以下のようなコードを生成する:
//
//	func UnmarshalHero_Character(typename string, r *graphqljson.Reader) (Hero_Character, error) {
//	    switch typename {
//	    case "Human":
//	        v, err := UnmarshalHero_AsHuman(r)
//	        if err != nil {
//	            return nil, err
//	        }
//	        return v, nil
//	    }
//	    return nil, nil
//	}
//
// 複数のブランチが同じ型名を持つ場合は先に宣言されたブランチが選ばれる。
func (d *InlineFragmentDecoder) UnmarshalDispatcher(super *types.Named, branches []InlineFragmentBranch) *codegen.FuncDecl {
	var body []codegen.Statement
	if cases := d.createSwitchCases(branches); len(cases) > 0 {
		body = append(body, &codegen.SwitchStatement{Expr: "typename", Cases: cases})
	}
	body = append(body, &codegen.ReturnStatement{Value: "nil, nil"})

	name := codegen.FuncName("Unmarshal", super.Obj().Name())
	return &codegen.FuncDecl{
		Doc:     fmt.Sprintf("%s reads the branch selected by typename, or nil when no branch applies.", name),
		Name:    name,
		Params:  []codegen.Param{{Name: "typename", Type: types.Typ[types.String]}, {Name: "r", Type: types.NewPointer(readerType)}},
		Results: []types.Type{super, errorType},
		Body:    body,
	}
}

// createSwitchCases は各ブランチの switch case を構築する。
// 他のブランチで使われた型名は除き、型名が残らないブランチは case を持たない。
func (d *InlineFragmentDecoder) createSwitchCases(branches []InlineFragmentBranch) []codegen.SwitchCase {
	var seen []string
	cases := make([]codegen.SwitchCase, 0, len(branches))

	for _, branch := range branches {
		var values []string
		for _, typename := range branch.PossibleTypes {
			if slices.Contains(seen, typename) {
				continue
			}
			seen = append(seen, typename)
			values = append(values, strconv.Quote(typename))
		}
		if len(values) == 0 {
			continue
		}

		cases = append(cases, codegen.SwitchCase{
			Values: values,
			Body: []codegen.Statement{
				&codegen.Assignment{
					Targets: []string{"v", "err"},
					Value:   codegen.FuncName("Unmarshal", branch.Named.Obj().Name()) + "(r)",
					Define:  true,
				},
				&codegen.IfStatement{
					Condition: "err != nil",
					Body:      []codegen.Statement{&codegen.ReturnStatement{Value: "nil, err"}},
				},
				&codegen.ReturnStatement{Value: "v, nil"},
			},
		})
	}

	return cases
}
