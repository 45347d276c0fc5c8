package queryparser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"
	// validator のルールを登録する
	_ "github.com/vektah/gqlparser/v2/validator/rules"
)

// QueryDocument parses every source and validates the merged document against schema.
func QueryDocument(schema *ast.Schema, querySources []*ast.Source) (*ast.QueryDocument, error) {
	var queryDocument ast.QueryDocument
	for _, querySource := range querySources {
		query, err := parser.ParseQuery(querySource)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", querySource.Name, err)
		}

		mergeQueryDocument(&queryDocument, query)
	}

	if errs := validator.Validate(schema, &queryDocument); len(errs) > 0 {
		return nil, fmt.Errorf("validate query: %w", errs)
	}

	return &queryDocument, nil
}

func mergeQueryDocument(q, other *ast.QueryDocument) {
	q.Operations = append(q.Operations, other.Operations...)
	q.Fragments = append(q.Fragments, other.Fragments...)
}

// LoadQuerySources reads the files matched by the given glob patterns.
func LoadQuerySources(queryFileNames []string) ([]*ast.Source, error) {
	var querySources []*ast.Source

	for _, filename := range queryFileNames {
		matches, err := ExpandGlob(filename)
		if err != nil {
			return nil, err
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("query file not found: %s", filepath.ToSlash(filename))
		}

		for _, match := range matches {
			b, err := os.ReadFile(match)
			if err != nil {
				return nil, fmt.Errorf("failed to open %s: %w", match, err)
			}

			querySources = append(querySources, &ast.Source{
				Name:  match,
				Input: string(b),
			})
		}
	}

	return querySources, nil
}

// ExpandGlob returns the files matched by pattern. "**" matches any number
// of directories and the part after it is matched against file names.
func ExpandGlob(pattern string) ([]string, error) {
	pattern = filepath.ToSlash(pattern)
	if !strings.Contains(pattern, "**") {
		matches, err := filepath.Glob(filepath.FromSlash(pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to glob %s: %w", pattern, err)
		}
		return matches, nil
	}

	// "dir/**/*.graphql" のように ** 以降をファイル名のパターンとして扱う
	pathParts := strings.SplitN(pattern, "**", 2)
	root := filepath.FromSlash(pathParts[0])
	if root == "" {
		root = "."
	}
	filePattern := strings.TrimPrefix(pathParts[1], "/")

	var matches []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ok, err := filepath.Match(filePattern, filepath.Base(path))
		if err != nil {
			return err
		}
		if ok {
			matches = append(matches, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", pathParts[0], err)
	}

	return matches, nil
}
