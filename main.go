package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

const version = "0.1.0"

var (
	versionOption = flag.Bool("version", false, "gqlmodelc version")
	configOption  = flag.String("config", "", "path to the config file (default: search .gqlmodelc.yml upwards from the working directory)")
	verboseOption = flag.Bool("verbose", false, "log every generated type")
)

func main() {
	flag.Parse()

	if *versionOption {
		fmt.Printf("gqlmodelc v%s\n", version)

		return
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verboseOption {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := run(*configOption, logger); err != nil {
		logger.WithError(err).Error("gqlmodelc failed")
		os.Exit(1)
	}
}
