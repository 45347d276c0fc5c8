// Package querygen は GraphQL オペレーションとフラグメントの IR から Go の型定義を生成する。
//
// ルートごとに以下を含む宣言ツリーを組み立てる:
//   - イミュータブルな struct 型、コンストラクタ、getter
//   - レスポンスフィールド記述子（graphqljson.ResponseField のスライス）
//   - 記述子に従って wire ツリーを読み書きする Marshal / Unmarshal
//   - union/interface の共通 interface とブランチ、フラグメントの holder
//
// 生成されるコードは github.com/gqlgo/gqlmodelc/graphqljson に依存する。
package querygen

import (
	"errors"
	"fmt"
	"go/types"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gqlgo/gqlmodelc/codegen"
	"github.com/gqlgo/gqlmodelc/ir"
)

// Compiler generates the declarations of many roots. Roots are generated in
// parallel; a failing root only takes down the roots spreading its fragment.
type Compiler struct {
	pkg      *types.Package
	models   map[string]types.Type
	internal bool
	logger   logrus.FieldLogger
}

// CompilerOptions configures a Compiler.
type CompilerOptions struct {
	// Models binds GraphQL scalar names to Go types.
	Models map[string]types.Type
	// GenerateAsInternal makes Object and Fragment roots unexported.
	GenerateAsInternal bool
	Logger             logrus.FieldLogger
}

// NewCompiler creates a Compiler writing into pkg.
func NewCompiler(pkg *types.Package, opts CompilerOptions) *Compiler {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Compiler{
		pkg:      pkg,
		models:   opts.Models,
		internal: opts.GenerateAsInternal,
		logger:   logger,
	}
}

// Compile generates one declaration per root, in input order. It returns the
// declarations of every root that succeeded together with the joined errors
// of the roots that failed, each prefixed with the root name.
func (c *Compiler) Compile(roots []*ir.ObjectType) ([]*codegen.Declaration, error) {
	names := make([]string, len(roots))
	fragments := make(map[string]string)
	for i, root := range roots {
		names[i] = codegen.RootName(root.Name, c.internal)
		if _, ok := root.Kind.(ir.FragmentKind); ok {
			fragments[root.Name] = names[i]
		}
	}

	results := make([]*codegen.Declaration, len(roots))
	errs := make([]error, len(roots))

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, root := range roots {
		eg.Go(func() error {
			decl, err := NewCodeGenerator(c.pkg, c.models, fragments).Generate(root, names[i])
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", root.Name, err)
				return nil
			}
			results[i] = decl
			return nil
		})
	}
	_ = eg.Wait()

	// ルート間の名前の衝突は入力順で後のルートを失敗させる
	owners := make(map[string]string)
	for i, decl := range results {
		if errs[i] != nil {
			continue
		}
		if err := claimNames(owners, roots[i].Name, decl); err != nil {
			errs[i] = fmt.Errorf("%s: %w", roots[i].Name, err)
		}
	}
	failDependents(roots, errs)

	decls := make([]*codegen.Declaration, 0, len(roots))
	for i, decl := range results {
		log := c.logger.WithField("root", roots[i].Name)
		if errs[i] != nil {
			log.WithError(errs[i]).Error("generation failed")
			continue
		}
		log.WithField("type", decl.Root.Name()).Debug("generated")
		decls = append(decls, decl)
	}

	return decls, errors.Join(errs...)
}

func claimNames(owners map[string]string, root string, decl *codegen.Declaration) error {
	names := decl.Root.TopLevelNames()
	for _, name := range names {
		if owner, ok := owners[name]; ok {
			return &codegen.NameCollisionError{Scope: owner, Name: name}
		}
	}
	for _, name := range names {
		owners[name] = root
	}
	return nil
}

// failDependents fails every root spreading a fragment whose root failed.
func failDependents(roots []*ir.ObjectType, errs []error) {
	failed := make(map[string]bool)
	for changed := true; changed; {
		changed = false
		for i, root := range roots {
			if errs[i] != nil {
				if _, ok := root.Kind.(ir.FragmentKind); ok && !failed[root.Name] {
					failed[root.Name] = true
					changed = true
				}
				continue
			}
			for _, name := range fragmentRefs(root) {
				if failed[name] {
					errs[i] = fmt.Errorf("%s: fragment %s failed", root.Name, name)
					changed = true
					break
				}
			}
		}
	}
}

// fragmentRefs lists the fragments spread anywhere in obj.
func fragmentRefs(obj *ir.ObjectType) []string {
	var names []string
	if obj.FragmentsType != nil {
		for _, f := range obj.FragmentsType.Fields {
			if ref, ok := ir.Unwrap(f.Type).(ir.FragmentRef); ok {
				names = append(names, ref.Name)
			}
		}
	}
	for _, nested := range obj.NestedObjects {
		names = append(names, fragmentRefs(nested.Type)...)
	}
	return names
}

// Plugin renders compiled roots into one Go file.
type Plugin struct {
	filename string
	compiler *Compiler
	roots    []*ir.ObjectType
	logger   logrus.FieldLogger
}

// New は新しい querygen プラグインインスタンスを作成する。
//
// パラメータ:
//   - filename: 出力ファイル
//   - compiler: 出力パッケージ用に設定された Compiler
//   - roots: オペレーションとフラグメントの IR
func New(filename string, compiler *Compiler, roots []*ir.ObjectType) *Plugin {
	return &Plugin{
		filename: filename,
		compiler: compiler,
		roots:    roots,
		logger:   compiler.logger,
	}
}

// Name はこのプラグインの名前を返す。
func (p *Plugin) Name() string {
	return "querygen"
}

// Generate はルートをコンパイルしてファイルに書き出す。
//
// 一部のルートが失敗した場合も成功したルートは書き出し、失敗をまとめたエラーを返す。
func (p *Plugin) Generate() error {
	decls, compileErr := p.compiler.Compile(p.roots)
	if len(decls) == 0 && compileErr != nil {
		return compileErr
	}

	src, err := NewCodeFormatter(p.compiler.pkg).Format(decls)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(p.filename), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(p.filename, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", p.filename, err)
	}
	p.logger.WithFields(logrus.Fields{"file": p.filename, "types": len(decls)}).Info("generated")

	return compileErr
}
