package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`                // debug, info, warn, error
	Format     string          `yaml:"format"`               // console, json
	File       string          `yaml:"file,omitempty"`       // empty = stderr (viewer: disabled)
	Categories map[string]bool `yaml:"categories,omitempty"` // Per-category toggles
}
