package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"dirtidy/internal/config"
	"dirtidy/internal/failures"
	"dirtidy/internal/logging"
)

type commandContext struct {
	configFlag *string
	logLevel   string
	logFormat  string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = failures.Wrap(failures.ErrConfiguration, "config", "load", "Configuration is invalid", err)
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

// newLogger builds the run logger from config, with the --log-level and
// --log-format flags taking precedence.
func (c *commandContext) newLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	effective := *cfg
	if v := strings.TrimSpace(c.logLevel); v != "" {
		effective.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(c.logFormat); v != "" {
		effective.Logging.Format = strings.ToLower(v)
	}
	if err := effective.Validate(); err != nil {
		return nil, failures.Wrap(failures.ErrConfiguration, "config", "log flags", "Invalid --log-level or --log-format", err)
	}
	logger, err := logging.NewFromConfig(&effective)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
