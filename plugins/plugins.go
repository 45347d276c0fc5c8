package plugins

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gqlgo/gqlmodelc/config"
	"github.com/gqlgo/gqlmodelc/plugins/querygen"
	"github.com/gqlgo/gqlmodelc/queryparser"
)

// GenerateCode writes the models of every operation and fragment of the
// loaded query document. cfg must have its schema and query loaded.
func GenerateCode(cfg *config.Config, logger logrus.FieldLogger) error {
	roots, err := queryparser.Roots(cfg.Schema, cfg.QueryDocument)
	if err != nil {
		return fmt.Errorf("build roots failed: %w", err)
	}

	models, err := cfg.ModelTypes()
	if err != nil {
		return fmt.Errorf("load models failed: %w", err)
	}

	compiler := querygen.NewCompiler(cfg.Package(), querygen.CompilerOptions{
		Models:             models,
		GenerateAsInternal: cfg.GenerateAsInternal,
		Logger:             logger,
	})

	queryGen := querygen.New(cfg.Output.Filename, compiler, roots)
	if err := queryGen.Generate(); err != nil {
		return fmt.Errorf("%s failed: %w", queryGen.Name(), err)
	}

	return nil
}
