package codegen

import (
	"fmt"
	"strings"
)

// Statement は関数本体の 1 ステートメントを表す。
//
// String メソッドは指定されたインデントレベルで文字列表現を返す。
// 式は生成先パッケージから見た Go の式として組み立て済みであること。
type Statement interface {
	String(indent int) string
}

// writeBlock は stmts を 1 段深いインデントで書き出す。
func writeBlock(buf *strings.Builder, stmts []Statement, indent int) {
	tabs := strings.Repeat("\t", indent+1)
	for _, stmt := range stmts {
		buf.WriteString(tabs)
		buf.WriteString(stmt.String(indent + 1))
		buf.WriteString("\n")
	}
}

// IfStatement は if 文を表す。
//
// 例:
//
//	if err != nil {
//	    return Hero{}, err
//	}
type IfStatement struct {
	Condition string      // 条件式
	Body      []Statement // if ブロック内のステートメント
}

// String は if 文の文字列表現を返す。
func (i *IfStatement) String(indent int) string {
	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("if %s {\n", i.Condition))
	writeBlock(&buf, i.Body, indent)
	buf.WriteString(strings.Repeat("\t", indent) + "}")
	return buf.String()
}

// SwitchStatement は switch 文を表す。
//
// 例:
//
//	switch v := v.(type) {
//	case Hero_AsHuman:
//	    return v.Marshal(w)
//	default:
//	    return err
//	}
type SwitchStatement struct {
	Expr    string       // switch の式
	Cases   []SwitchCase // case のリスト
	Default []Statement  // nil の場合 default 節は出力しない
}

// SwitchCase は switch 文の単一の case を表す。
type SwitchCase struct {
	// Values は case に並べる式。文字列リテラルは呼び出し側でクォートする。
	Values []string
	Body   []Statement
}

// String は switch 文の文字列表現を返す。
func (s *SwitchStatement) String(indent int) string {
	var buf strings.Builder
	tabs := strings.Repeat("\t", indent)

	buf.WriteString(fmt.Sprintf("switch %s {\n", s.Expr))
	for _, c := range s.Cases {
		buf.WriteString(tabs + fmt.Sprintf("case %s:\n", strings.Join(c.Values, ", ")))
		writeBlock(&buf, c.Body, indent)
	}
	if s.Default != nil {
		buf.WriteString(tabs + "default:\n")
		writeBlock(&buf, s.Default, indent)
	}
	buf.WriteString(tabs + "}")

	return buf.String()
}

// Assignment は代入文を表す。Define が true の場合は短縮変数宣言になる。
//
// 例: name, err := graphqljson.ReadRequired(r, heroResponseFields[0], graphqljson.DecodeString)
type Assignment struct {
	Targets []string // 代入先
	Value   string   // 代入する値
	Define  bool
}

// String は代入文の文字列表現を返す。
func (a *Assignment) String(_ int) string {
	op := "="
	if a.Define {
		op = ":="
	}
	return fmt.Sprintf("%s %s %s", strings.Join(a.Targets, ", "), op, a.Value)
}

// ReturnStatement は return 文を表す。
//
// 例: return err
type ReturnStatement struct {
	Value string // 返す値（空の場合は単なる return）
}

// String は return 文の文字列表現を返す。
func (r *ReturnStatement) String(_ int) string {
	if r.Value == "" {
		return "return"
	}
	return fmt.Sprintf("return %s", r.Value)
}

// ErrorCheckStatement はエラーチェックパターンを表す。
//
// 例:
//
//	if err := t.fragments.Marshal(w); err != nil {
//	    return err
//	}
type ErrorCheckStatement struct {
	ErrorExpr string      // エラーを返す式
	Body      []Statement // err != nil の場合に実行するステートメント
}

// String はエラーチェック文の文字列表現を返す。
func (e *ErrorCheckStatement) String(indent int) string {
	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("if err := %s; err != nil {\n", e.ErrorExpr))
	writeBlock(&buf, e.Body, indent)
	buf.WriteString(strings.Repeat("\t", indent) + "}")
	return buf.String()
}
