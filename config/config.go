package config

import (
	"bytes"
	"errors"
	"fmt"
	"go/types"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	gqlgenconfig "github.com/99designs/gqlgen/codegen/config"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/gqlgo/gqlmodelc/codegen"
	"github.com/gqlgo/gqlmodelc/queryparser"
)

// DefaultConfigFilenames are the names FindConfigFile looks for.
var DefaultConfigFilenames = []string{".gqlmodelc.yml", "gqlmodelc.yml", ".gqlmodelc.yaml", "gqlmodelc.yaml"}

// Config represents the config file.
type Config struct {
	SchemaFilename     gqlgenconfig.StringList    `yaml:"schema"`
	Query              gqlgenconfig.StringList    `yaml:"query"`
	Output             gqlgenconfig.PackageConfig `yaml:"output"`
	Models             gqlgenconfig.TypeMap       `yaml:"models,omitempty"`
	GenerateAsInternal bool                       `yaml:"generate_as_internal,omitempty"`

	Schema        *ast.Schema        `yaml:"-"`
	QueryDocument *ast.QueryDocument `yaml:"-"`
}

// LoadConfig loads and parses the config file. Relative paths are resolved
// against the directory of the config file.
func LoadConfig(configFilename string) (*Config, error) {
	configContent, err := os.ReadFile(configFilename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	var c Config

	yamlDecoder := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(configContent)))), yaml.DisallowUnknownField())
	if err := yamlDecoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	// validation
	if len(c.SchemaFilename) == 0 {
		return nil, errors.New("'schema' must be specified")
	}

	if len(c.Query) == 0 {
		return nil, errors.New("'query' must be specified")
	}

	if !c.Output.IsDefined() {
		return nil, errors.New("'output' must be specified")
	}

	baseDir := filepath.Dir(configFilename)
	for i, p := range c.SchemaFilename {
		c.SchemaFilename[i] = resolvePath(baseDir, p)
	}
	for i, p := range c.Query {
		c.Query[i] = resolvePath(baseDir, p)
	}
	c.Output.Filename = resolvePath(baseDir, c.Output.Filename)

	if err := c.Output.Check(); err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	schemaFilename, err := schemaFilenames(c.SchemaFilename)
	if err != nil {
		return nil, err
	}

	c.SchemaFilename = schemaFilename

	return &c, nil
}

func resolvePath(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

// schemaFilenames は glob を展開し、重複を除いてソートする
func schemaFilenames(patterns gqlgenconfig.StringList) (gqlgenconfig.StringList, error) {
	var filenames gqlgenconfig.StringList
	for _, pattern := range patterns {
		matches, err := queryparser.ExpandGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("schema: %w", err)
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("schema file not found: %s", pattern)
		}

		for _, m := range matches {
			if !slices.Contains(filenames, m) {
				filenames = append(filenames, m)
			}
		}
	}

	slices.Sort(filenames)

	return filenames, nil
}

// LoadSchema parses the schema files.
func (c *Config) LoadSchema() error {
	sources := make([]*ast.Source, 0, len(c.SchemaFilename))
	for _, filename := range c.SchemaFilename {
		b, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("unable to open schema: %w", err)
		}

		sources = append(sources, &ast.Source{Name: filename, Input: string(b)})
	}

	schema, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return fmt.Errorf("load schema failed: %w", err)
	}

	c.Schema = schema

	return nil
}

// LoadQuery parses and validates the query files against the loaded schema.
func (c *Config) LoadQuery() error {
	if c.Schema == nil {
		return errors.New("schema is not loaded")
	}

	querySources, err := queryparser.LoadQuerySources(c.Query)
	if err != nil {
		return fmt.Errorf("load query sources failed: %w", err)
	}

	queryDocument, err := queryparser.QueryDocument(c.Schema, querySources)
	if err != nil {
		return fmt.Errorf("load query failed: %w", err)
	}

	c.QueryDocument = queryDocument

	return nil
}

// ModelTypes returns the Go types bound to GraphQL scalars and enums.
func (c *Config) ModelTypes() (map[string]types.Type, error) {
	models := make(map[string]types.Type, len(c.Models))
	for name, entry := range c.Models {
		if len(entry.Model) == 0 {
			continue
		}

		if c.Schema != nil {
			def, ok := c.Schema.Types[name]
			if !ok {
				return nil, fmt.Errorf("models: %s is not defined in the schema", name)
			}
			if def.Kind != ast.Scalar && def.Kind != ast.Enum {
				return nil, fmt.Errorf("models: %s is a %s, only scalars and enums can be bound", name, strings.ToLower(string(def.Kind)))
			}
		}

		t, err := codegen.ParseModel(entry.Model[0])
		if err != nil {
			return nil, fmt.Errorf("models: %s: %w", name, err)
		}
		models[name] = t
	}

	return models, nil
}

// Package returns the package the generated file belongs to.
func (c *Config) Package() *types.Package {
	return c.Output.Pkg()
}

// FindConfigFile searches dir and its parents for one of filenames.
func FindConfigFile(dir string, filenames []string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("unable to get working dir to find config: %w", err)
	}

	for {
		for _, name := range filenames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("unable to find config")
		}
		dir = parent
	}
}
