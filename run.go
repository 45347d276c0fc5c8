package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gqlgo/gqlmodelc/config"
	"github.com/gqlgo/gqlmodelc/plugins"
)

func run(cfgFile string, logger logrus.FieldLogger) error {
	if cfgFile == "" {
		var err error
		cfgFile, err = config.FindConfigFile(".", config.DefaultConfigFilenames)
		if err != nil {
			return fmt.Errorf("failed to find config file: %w", err)
		}
	}

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}

	if err := cfg.LoadSchema(); err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	if err := cfg.LoadQuery(); err != nil {
		return fmt.Errorf("failed to load query: %w", err)
	}

	if err := plugins.GenerateCode(cfg, logger); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	return nil
}
