package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeFiles(); err != nil {
		return err
	}
	c.normalizeClassifier()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeFiles() error {
	var err error
	if strings.TrimSpace(c.Files.Input) == "" {
		c.Files.Input = defaultInput
	}
	if c.Files.Input, err = expandPath(strings.TrimSpace(c.Files.Input)); err != nil {
		return fmt.Errorf("files.input: %w", err)
	}
	if strings.TrimSpace(c.Files.Output) == "" {
		c.Files.Output = defaultOutput
	}
	if c.Files.Output, err = expandPath(strings.TrimSpace(c.Files.Output)); err != nil {
		return fmt.Errorf("files.output: %w", err)
	}
	c.Files.InputEncoding = strings.ToLower(strings.TrimSpace(c.Files.InputEncoding))
	if c.Files.InputEncoding == "" {
		c.Files.InputEncoding = defaultInputEncoding
	}
	c.Files.OutputEncoding = strings.ToLower(strings.TrimSpace(c.Files.OutputEncoding))
	if c.Files.OutputEncoding == "" {
		c.Files.OutputEncoding = defaultOutputEncoding
	}
	if c.Files.Delimiter == "" {
		c.Files.Delimiter = defaultDelimiter
	}
	return nil
}

// The column name is matched literally against the header, so only
// surrounding whitespace from the TOML value is dropped.
func (c *Config) normalizeClassifier() {
	c.Classifier.Column = strings.TrimSpace(c.Classifier.Column)
	if c.Classifier.Column == "" {
		c.Classifier.Column = defaultColumn
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Output = strings.TrimSpace(c.Logging.Output)
	if c.Logging.Output == "" {
		c.Logging.Output = defaultLogOutput
	}
}
