package querygen

import (
	"fmt"

	"github.com/gqlgo/gqlmodelc/codegen"
	"github.com/gqlgo/gqlmodelc/graphqljson"
)

// FieldKind は生成コードでのフィールドの読み書き方法を表す。
type FieldKind int

const (
	// RegularField はレスポンスオブジェクトのキーに格納される通常フィールド。
	RegularField FieldKind = iota
	// InlineFragmentField は __typename で選ばれる union/interface のブランチ。
	InlineFragmentField
	// FragmentSpreadField は fragments holder 内の名前付きフラグメント。
	FragmentSpreadField
	// FragmentsHolderField は名前付きフラグメントをまとめる holder。
	FragmentsHolderField
)

func (k FieldKind) String() string {
	switch k {
	case RegularField:
		return "RegularField"
	case InlineFragmentField:
		return "InlineFragmentField"
	case FragmentSpreadField:
		return "FragmentSpreadField"
	case FragmentsHolderField:
		return "FragmentsHolderField"
	}
	return fmt.Sprintf("FieldKind(%d)", int(k))
}

// FieldClassifier はフィールドを分類する責務を持つ。
// インラインフラグメント、フラグメントスプレッド、fragments holder、通常フィールドを識別し、
// 置き場所が正しいかを検証する。
type FieldClassifier struct{}

// NewFieldClassifier は新しい FieldClassifier を作成する。
func NewFieldClassifier() *FieldClassifier {
	return &FieldClassifier{}
}

// Classify はフィールドの種類を返す。
//
// フラグメントスプレッドは fragments holder の中にだけ現れ、holder はそれ以外を持たない。
// 違反した場合は codegen.UnresolvedTypeError を返す。
//
// パラメータ:
//   - typeName: 生成中の型名（例: "Hero_Fragments"）
//   - rf: フィールドの記述子
//   - inHolder: 生成中の型が fragments holder かどうか
func (c *FieldClassifier) Classify(typeName string, rf codegen.ResponseField, inHolder bool) (FieldKind, error) {
	var kind FieldKind
	switch {
	case c.IsFragmentsHolder(rf):
		kind = FragmentsHolderField
	case c.IsFragmentSpread(rf):
		kind = FragmentSpreadField
	case c.IsInlineFragment(rf):
		kind = InlineFragmentField
	default:
		kind = RegularField
	}

	if inHolder != (kind == FragmentSpreadField) {
		err := &codegen.UnresolvedTypeError{Type: typeName, Field: rf.Field.Name, Reason: c.misplaced(kind)}
		if rf.Field.Type != nil {
			err.Ref = rf.Field.Type.String()
		}
		return kind, err
	}
	return kind, nil
}

func (c *FieldClassifier) misplaced(kind FieldKind) string {
	switch kind {
	case FragmentSpreadField:
		return "fragment spread outside a fragments holder"
	case FragmentsHolderField:
		return "fragments holder inside a fragments holder"
	default:
		return "fragments holder field is not a fragment spread"
	}
}

// IsInlineFragment はフィールドが union/interface の選択かどうかをチェックする。
//
// GraphQL の例:
//
//	query {
//	  hero {
//	    ... on Human { height }
//	    ... on Droid { primaryFunction }
//	  }
//	}
//
// ブランチ型は同じレスポンスオブジェクトから読み書きされる。
func (c *FieldClassifier) IsInlineFragment(rf codegen.ResponseField) bool {
	return rf.Type == graphqljson.FieldTypeInlineFragment
}

// IsFragmentSpread はフィールドが "...FragmentName" による名前付きフラグメントかどうかをチェックする。
func (c *FieldClassifier) IsFragmentSpread(rf codegen.ResponseField) bool {
	return rf.Type == graphqljson.FieldTypeFragment
}

// IsFragmentsHolder はフィールドが fragments holder かどうかをチェックする。
func (c *FieldClassifier) IsFragmentsHolder(rf codegen.ResponseField) bool {
	return rf.Type == graphqljson.FieldTypeFragments
}
