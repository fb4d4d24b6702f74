package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
)

// loadSettings builds the settings of a run from the --config flag (or the first
// config file found in the default locations, or the defaults) and applies the
// limit and debug flags on top.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
		} else {
			configPath = found
		}
	}
	if configPath != "" {
		logger.Infof("Using config file: %s", configPath)
	}

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, err
	}

	overridden := settings.WithLimits(entities.Limits{
		MaxRepos:           intFlag(cmd, "max-repos", 0),
		MaxFilesPerRepo:    intFlag(cmd, "max-files-per-repo", 0),
		MaxDepthPerRepo:    intFlag(cmd, "max-depth-per-repo", -1),
		MaxContentsPerRepo: intFlag(cmd, "max-contents-per-repo", -1),
	})
	if validateErr := overridden.Validate(); validateErr != nil {
		return nil, validateErr
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		overridden.Debug = true
	}
	if overridden.Debug {
		logger.SetLevel(logger.DebugLevel)
	}

	return &overridden, nil
}

// intFlag returns the value of an int flag, or unset when the flag is not defined.
func intFlag(cmd *cobra.Command, name string, unset int) int {
	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		return unset
	}
	return value
}
