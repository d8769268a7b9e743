package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Category routes every extension it lists into a folder named after it.
type Category struct {
	Name       string   `toml:"name"`
	Extensions []string `toml:"extensions"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for dirtidy.
//
// Configuration sections:
//   - Categories: ordered extension-category map; first match wins
//   - Logging: log format and level
type Config struct {
	Categories []Category `toml:"categories"`
	Logging    Logging    `toml:"logging"`
}

// fileConfig mirrors Config for decoding so absent sections keep their
// defaults instead of being zeroed.
type fileConfig struct {
	Categories []Category `toml:"categories"`
	Logging    *Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. It returns the
// config, the path that was resolved, and whether a file existed there. When no
// file exists the compiled-in defaults are used.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		if err := cfg.decodeFile(resolvedPath); err != nil {
			return nil, "", false, err
		}
	}

	cfg.applyEnv()
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func (c *Config) decodeFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var parsed fileConfig
	decoder := toml.NewDecoder(file).DisallowUnknownFields()
	if err := decoder.Decode(&parsed); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if len(parsed.Categories) > 0 {
		c.Categories = parsed.Categories
	}
	if parsed.Logging != nil {
		if strings.TrimSpace(parsed.Logging.Format) != "" {
			c.Logging.Format = parsed.Logging.Format
		}
		if strings.TrimSpace(parsed.Logging.Level) != "" {
			c.Logging.Level = parsed.Logging.Level
		}
	}
	return nil
}

func (c *Config) applyEnv() {
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	if value, ok := os.LookupEnv(envLogFormat); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigFile)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExtensionConflict records an extension claimed by more than one category.
// Winner is the category that resolution will pick.
type ExtensionConflict struct {
	Extension string
	Winner    string
	Shadowed  []string
}

// DuplicateExtensions reports extensions listed under more than one category,
// in the order they first appear.
func (c *Config) DuplicateExtensions() []ExtensionConflict {
	owners := make(map[string][]string)
	var order []string
	for _, cat := range c.Categories {
		for _, ext := range cat.Extensions {
			if _, seen := owners[ext]; !seen {
				order = append(order, ext)
			}
			owners[ext] = append(owners[ext], cat.Name)
		}
	}
	var conflicts []ExtensionConflict
	for _, ext := range order {
		names := owners[ext]
		if len(names) < 2 {
			continue
		}
		conflicts = append(conflicts, ExtensionConflict{
			Extension: ext,
			Winner:    names[0],
			Shadowed:  append([]string(nil), names[1:]...),
		})
	}
	return conflicts
}
