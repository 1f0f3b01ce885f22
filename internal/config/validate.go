package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"surveyclean/internal/textenc"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFiles(); err != nil {
		return err
	}
	if c.Classifier.Column == "" {
		return errors.New("classifier.column must not be empty")
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFiles() error {
	if _, err := textenc.Lookup(c.Files.InputEncoding); err != nil {
		return fmt.Errorf("files.input_encoding: %w", err)
	}
	if _, err := textenc.Lookup(c.Files.OutputEncoding); err != nil {
		return fmt.Errorf("files.output_encoding: %w", err)
	}
	if utf8.RuneCountInString(c.Files.Delimiter) != 1 {
		return fmt.Errorf("files.delimiter must be a single character, got %q", c.Files.Delimiter)
	}
	switch d := c.Delimiter(); d {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("files.delimiter %q is not allowed", d)
	}
	if samePath(c.Files.Input, c.Files.Output) {
		return errors.New("files.output must differ from files.input")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
