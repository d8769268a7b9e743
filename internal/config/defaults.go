package config

const (
	defaultConfigPath  = "~/.config/dirtidy/config.toml"
	projectConfigFile  = "dirtidy.toml"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	envLogLevel        = "DIRTIDY_LOG_LEVEL"
	envLogFormat       = "DIRTIDY_LOG_FORMAT"
	extensionSeparator = "."
)

// DefaultCategories returns the reference extension-category map in its
// canonical order. Each call returns a fresh copy.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp"}},
		{Name: "Documents", Extensions: []string{".pdf", ".docx", ".txt", ".xlsx"}},
		{Name: "Audio", Extensions: []string{".mp3", ".wav", ".aac"}},
		{Name: "Videos", Extensions: []string{".mp4", ".avi", ".mkv"}},
		{Name: "Archives", Extensions: []string{".zip", ".rar", ".tar", ".gz"}},
		{Name: "Scripts", Extensions: []string{".py", ".js", ".sh", ".bat"}},
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Categories: DefaultCategories(),
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
