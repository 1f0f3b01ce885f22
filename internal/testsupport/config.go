package testsupport

import (
	"path/filepath"
	"testing"

	"surveyclean/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose input and output live in a per-test temp
// directory. Logging is silenced unless an option changes it.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Files.Input = filepath.Join(base, "input.csv")
	cfgVal.Files.Output = filepath.Join(base, "data.csv")
	cfgVal.Logging.Level = "error"
	cfgVal.Logging.Output = filepath.Join(base, "surveyclean.log")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithInputContent writes content as the ISO-8859-1 encoded input file.
func WithInputContent(content string) ConfigOption {
	return func(b *configBuilder) {
		WriteLatin1(b.t, b.cfg.Files.Input, content)
	}
}

// WithColumn overrides the classified column name.
func WithColumn(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Classifier.Column = name
	}
}

// WithOutputEncoding overrides the output encoding.
func WithOutputEncoding(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Files.OutputEncoding = name
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Files.Input)
}
