package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	xdgAppName = "spltrack"
	configFile = "config.yaml"
)

// Config holds all spltrack configuration.
type Config struct {
	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Terminal viewer
	UI UIConfig `yaml:"ui"`

	// Report output
	Report ReportConfig `yaml:"report"`

	// Input decoding
	Input InputConfig `yaml:"input"`

	// Watch mode
	Watch WatchConfig `yaml:"watch"`
}

// ReportConfig configures non-interactive report output.
type ReportConfig struct {
	Format       string `yaml:"format"`        // text, markdown, json, yaml
	GlamourStyle string `yaml:"glamour_style"` // auto, dark, light, notty
	Width        int    `yaml:"width"`         // wrap width for text/markdown
}

// InputConfig configures how flight-log exports are decoded.
type InputConfig struct {
	Encoding string `yaml:"encoding"` // auto, utf-8, windows-1250
}

// WatchConfig configures --watch.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		UI: *DefaultUIConfig(),
		Report: ReportConfig{
			Format:       "text",
			GlamourStyle: "auto",
			Width:        80,
		},
		Input: InputConfig{
			Encoding: "auto",
		},
		Watch: WatchConfig{
			Debounce: "300ms",
		},
	}
}

// DefaultPath returns ~/.config/spltrack/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", xdgAppName, configFile), nil
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Defaults if config file doesn't exist
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SPLTRACK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SPLTRACK_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("SPLTRACK_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("SPLTRACK_ENCODING"); v != "" {
		c.Input.Encoding = v
	}
	if v := os.Getenv("SPLTRACK_FORMAT"); v != "" {
		c.Report.Format = v
	}
}

// GetWatchDebounce returns the watch debounce as a duration.
func (c *Config) GetWatchDebounce() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return 300 * time.Millisecond
	}
	return d
}

var (
	// ValidFormats lists the report output formats.
	ValidFormats = []string{"text", "markdown", "json", "yaml"}
	// ValidEncodings lists the supported input encodings.
	ValidEncodings = []string{"auto", "utf-8", "windows-1250"}
	// ValidThemes lists the viewer themes.
	ValidThemes = []string{"auto", "light", "dark"}
	// ValidLogFormats lists the log encoders.
	ValidLogFormats = []string{"console", "json"}
)

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !slices.Contains(ValidFormats, c.Report.Format) {
		return fmt.Errorf("invalid report format: %s (valid: %v)", c.Report.Format, ValidFormats)
	}
	if !slices.Contains(ValidEncodings, c.Input.Encoding) {
		return fmt.Errorf("invalid input encoding: %s (valid: %v)", c.Input.Encoding, ValidEncodings)
	}
	if !slices.Contains(ValidThemes, c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}
	if !slices.Contains(ValidLogFormats, c.Logging.Format) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}
	if c.Report.Width < 20 {
		return fmt.Errorf("report width too small: %d", c.Report.Width)
	}
	return nil
}
