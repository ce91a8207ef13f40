package config

// UIConfig holds terminal viewer configuration.
type UIConfig struct {
	// Theme is auto, light or dark. auto inspects the terminal.
	Theme string `yaml:"theme"`

	// StartDir is where the file picker opens. Empty means the working directory.
	StartDir string `yaml:"start_dir,omitempty"`

	// ShowHidden lists dotfiles in the picker.
	ShowHidden bool `yaml:"show_hidden"`

	// AllowedTypes restricts selectable files by extension.
	AllowedTypes []string `yaml:"allowed_types"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:        "auto",
		AllowedTypes: []string{".csv", ".txt"},
	}
}
