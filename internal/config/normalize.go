package config

import "strings"

func (c *Config) normalize() {
	c.normalizeCategories()
	c.normalizeLogging()
}

func (c *Config) normalizeCategories() {
	normalized := make([]Category, 0, len(c.Categories))
	for _, cat := range c.Categories {
		cat.Name = strings.TrimSpace(cat.Name)
		cat.Extensions = normalizeExtensions(cat.Extensions)
		normalized = append(normalized, cat)
	}
	c.Categories = normalized
}

// normalizeExtensions lowercases entries, adds the leading separator when it
// is missing, and drops blanks and repeats within one category.
func normalizeExtensions(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		ext := NormalizeExtension(value)
		if ext == "" {
			continue
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out
}

// NormalizeExtension trims and lowercases value and ensures it starts with
// the extension separator. Blank input yields "".
func NormalizeExtension(value string) string {
	ext := strings.ToLower(strings.TrimSpace(value))
	if ext == "" || ext == extensionSeparator {
		return ""
	}
	if !strings.HasPrefix(ext, extensionSeparator) {
		ext = extensionSeparator + ext
	}
	return ext
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
}
