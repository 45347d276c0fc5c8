package querygen

import (
	"fmt"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/gqlgo/gqlmodelc/codegen"
)

// CodeFormatter は宣言ツリーを Go のソースコードに変換する。
type CodeFormatter struct {
	pkg *types.Package
}

// NewCodeFormatter は pkg に出力する新しい CodeFormatter を作成する。
func NewCodeFormatter(pkg *types.Package) *CodeFormatter {
	return &CodeFormatter{pkg: pkg}
}

// Format は全ルートの宣言を 1 つのファイルにまとめ、goimports で整形する。
//
// ネストした宣言は親の直後に、親から順に出力される。
func (f *CodeFormatter) Format(decls []*codegen.Declaration) ([]byte, error) {
	im := codegen.NewImports(f.pkg)

	var body strings.Builder
	for _, decl := range decls {
		decl.Root.Walk(func(td *codegen.TypeDecl) {
			body.WriteString(f.FormatTypeDecl(td, im))
		})
	}

	paths := im.Paths()
	for _, decl := range decls {
		paths = append(paths, decl.Imports...)
	}
	slices.Sort(paths)
	paths = slices.Compact(paths)

	var buf strings.Builder
	buf.WriteString("// Code generated by gqlmodelc. DO NOT EDIT.\n\n")
	buf.WriteString(fmt.Sprintf("package %s\n\n", f.pkg.Name()))
	if len(paths) > 0 {
		buf.WriteString("import (\n")
		for _, path := range paths {
			buf.WriteString(fmt.Sprintf("\t%q\n", path))
		}
		buf.WriteString(")\n\n")
	}
	buf.WriteString(body.String())

	src, err := imports.Process("", []byte(buf.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("go imports: %w", err)
	}
	return src, nil
}

// FormatTypeDecl は 1 つの型の宣言、定数、変数、関数をフォーマットする。ネスト型は含まない。
func (f *CodeFormatter) FormatTypeDecl(td *codegen.TypeDecl, im *codegen.Imports) string {
	var buf strings.Builder

	buf.WriteString(formatDoc(td.Doc))
	buf.WriteString(fmt.Sprintf("type %s %s\n\n", td.Name(), f.formatUnderlying(td.Named.Underlying(), im)))
	buf.WriteString(f.FormatValues("const", td.Consts, im))
	buf.WriteString(f.FormatValues("var", td.Vars, im))
	for _, fn := range td.Funcs {
		buf.WriteString(f.FormatFunc(fn, im))
		buf.WriteString("\n")
	}

	return buf.String()
}

// formatUnderlying は struct と interface をフィールドごとに改行してフォーマットする。
func (f *CodeFormatter) formatUnderlying(t types.Type, im *codegen.Imports) string {
	var buf strings.Builder
	switch t := t.(type) {
	case *types.Struct:
		if t.NumFields() == 0 {
			return "struct{}"
		}
		buf.WriteString("struct {\n")
		for i := range t.NumFields() {
			field := t.Field(i)
			buf.WriteString(fmt.Sprintf("\t%s %s\n", field.Name(), im.TypeString(field.Type())))
		}
		buf.WriteString("}")
	case *types.Interface:
		buf.WriteString("interface {\n")
		for i := range t.NumEmbeddeds() {
			buf.WriteString(fmt.Sprintf("\t%s\n", im.TypeString(t.EmbeddedType(i))))
		}
		for i := range t.NumExplicitMethods() {
			method := t.ExplicitMethod(i)
			sig := strings.TrimPrefix(types.TypeString(method.Type(), im.Qualifier), "func")
			buf.WriteString(fmt.Sprintf("\t%s%s\n", method.Name(), sig))
		}
		buf.WriteString("}")
	default:
		buf.WriteString(im.TypeString(t))
	}
	return buf.String()
}

// FormatValues は const または var の宣言をフォーマットする。
func (f *CodeFormatter) FormatValues(keyword string, values []codegen.ValueDecl, im *codegen.Imports) string {
	var buf strings.Builder
	for _, v := range values {
		buf.WriteString(keyword + " " + v.Name)
		if v.Type != nil {
			buf.WriteString(" " + im.TypeString(v.Type))
		}
		buf.WriteString(" = " + v.Value + "\n\n")
	}
	return buf.String()
}

// FormatFunc は関数またはメソッドをフォーマットする。
//
// 例:
//
//	func (t Hero) GetName() string {
//		return t.name
//	}
func (f *CodeFormatter) FormatFunc(fn *codegen.FuncDecl, im *codegen.Imports) string {
	var buf strings.Builder

	buf.WriteString(formatDoc(fn.Doc))
	buf.WriteString("func ")
	if fn.Recv != nil {
		buf.WriteString("(" + formatParam(*fn.Recv, im) + ") ")
	}
	buf.WriteString(fn.Name + "(")
	params := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		params = append(params, formatParam(p, im))
	}
	buf.WriteString(strings.Join(params, ", ") + ")")

	results := make([]string, 0, len(fn.Results))
	for _, r := range fn.Results {
		results = append(results, im.TypeString(r))
	}
	switch len(results) {
	case 0:
	case 1:
		buf.WriteString(" " + results[0])
	default:
		buf.WriteString(" (" + strings.Join(results, ", ") + ")")
	}

	buf.WriteString(" {\n")
	for _, stmt := range fn.Body {
		buf.WriteString("\t")
		buf.WriteString(stmt.String(1))
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	return buf.String()
}

func formatParam(p codegen.Param, im *codegen.Imports) string {
	if p.Name == "" {
		return im.TypeString(p.Type)
	}
	return p.Name + " " + im.TypeString(p.Type)
}

func formatDoc(doc string) string {
	if doc == "" {
		return ""
	}
	var buf strings.Builder
	for _, line := range strings.Split(doc, "\n") {
		buf.WriteString("// " + line + "\n")
	}
	return buf.String()
}
