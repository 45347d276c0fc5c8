package querygen

import (
	"go/types"

	"github.com/gqlgo/gqlmodelc/ir"
)

var testPkg = types.NewPackage("github.com/gqlgo/gqlmodelc/testdata/gen", "gen")

func nonNull(ref ir.TypeRef) ir.TypeRef {
	return ir.NonNullRef{Of: ref}
}

var (
	stringRef  = ir.ScalarRef{Name: "String", Kind: ir.ScalarString}
	idRef      = ir.ScalarRef{Name: "ID", Kind: ir.ScalarID}
	floatRef   = ir.ScalarRef{Name: "Float", Kind: ir.ScalarFloat}
	typenameIR = ir.Field{Name: "typename", ResponseName: "__typename", Type: nonNull(stringRef)}
)

// heroRoot は次のオペレーションの IR を返す。
//
//	query Hero { name friends { id } }
func heroRoot() *ir.ObjectType {
	return &ir.ObjectType{
		Name: "Hero",
		Kind: ir.ObjectKind{},
		Fields: []ir.Field{
			{Name: "name", Type: nonNull(stringRef)},
			{Name: "friends", Type: ir.ListRef{Of: ir.ObjectRef{Key: "Friend"}}, IsOptional: true},
		},
		NestedObjects: []ir.NestedObject{
			{Key: "Friend", Type: &ir.ObjectType{
				Name:   "Friend",
				Kind:   ir.ObjectKind{},
				Fields: []ir.Field{{Name: "id", Type: nonNull(idRef)}},
			}},
		},
	}
}

// searchRoot は次のオペレーションの IR を返す。Droid のブランチは Human も含むが
// 先に宣言された AsHuman が選ばれる。
//
//	query Search { __typename ... on Human { height } ... on Droid { primaryFunction } }
func searchRoot() *ir.ObjectType {
	return &ir.ObjectType{
		Name: "Search",
		Kind: ir.ObjectKind{},
		Fields: []ir.Field{
			typenameIR,
			{Name: "inlineFragment", Type: ir.ObjectRef{Key: "Character"}},
		},
		NestedObjects: []ir.NestedObject{
			{Key: "Character", Type: &ir.ObjectType{Name: "Character", Kind: ir.InlineFragmentSuperKind{}}},
			{Key: "AsHuman", Type: &ir.ObjectType{
				Name:   "AsHuman",
				Kind:   ir.InlineFragmentKind{Super: "Character", PossibleTypes: []string{"Human"}},
				Fields: []ir.Field{{Name: "height", Type: floatRef, IsOptional: true}},
			}},
			{Key: "AsDroid", Type: &ir.ObjectType{
				Name:   "AsDroid",
				Kind:   ir.InlineFragmentKind{Super: "Character", PossibleTypes: []string{"Droid", "Human"}},
				Fields: []ir.Field{{Name: "primaryFunction", Type: nonNull(stringRef)}},
			}},
		},
	}
}

// heroNameRoot は次のフラグメントの IR を返す。
//
//	fragment HeroName on Human { name }
func heroNameRoot() *ir.ObjectType {
	return &ir.ObjectType{
		Name:   "HeroName",
		Kind:   ir.FragmentKind{Definition: "fragment HeroName on Human {\n\tname\n}"},
		Fields: []ir.Field{{Name: "name", Type: nonNull(stringRef)}},
	}
}

// characterRoot は次のオペレーションの IR を返す。
//
//	query Character { __typename id ...HeroName }
func characterRoot() *ir.ObjectType {
	return &ir.ObjectType{
		Name: "Character",
		Kind: ir.ObjectKind{},
		Fields: []ir.Field{
			typenameIR,
			{Name: "id", Type: nonNull(idRef)},
		},
		FragmentsType: &ir.ObjectType{
			Name: "Fragments",
			Kind: ir.ObjectKind{},
			Fields: []ir.Field{
				{Name: "heroName", Type: ir.FragmentRef{Name: "HeroName", PossibleTypes: []string{"Human"}}, IsOptional: true},
			},
		},
	}
}
