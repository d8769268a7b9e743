package testsupport

import (
	"testing"

	"dirtidy/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces the default configuration with any options applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithCategories replaces the category map.
func WithCategories(categories ...config.Category) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Categories = categories
	}
}
