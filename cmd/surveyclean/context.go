package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"surveyclean/internal/config"
	"surveyclean/internal/logging"
)

type commandContext struct {
	configFlag *string
	inputFlag  *string
	outputFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce  sync.Once
	logger      *slog.Logger
	loggerClose func() error
	loggerErr   error
}

func newCommandContext(configFlag, inputFlag, outputFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		inputFlag:  inputFlag,
		outputFlag: outputFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if err := applyOverrides(cfg, flagValue(c.inputFlag), flagValue(c.outputFlag)); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerClose, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// closeLogger releases log files opened by ensureLogger.
func (c *commandContext) closeLogger() error {
	if c.loggerClose == nil {
		return nil
	}
	closeFn := c.loggerClose
	c.loggerClose = nil
	return closeFn()
}

func applyOverrides(cfg *config.Config, input, output string) error {
	if input == "" && output == "" {
		return nil
	}
	if input != "" {
		expanded, err := config.ExpandPath(input)
		if err != nil {
			return fmt.Errorf("resolve --input: %w", err)
		}
		cfg.Files.Input = expanded
	}
	if output != "" {
		expanded, err := config.ExpandPath(output)
		if err != nil {
			return fmt.Errorf("resolve --output: %w", err)
		}
		cfg.Files.Output = expanded
	}
	return cfg.Validate()
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
