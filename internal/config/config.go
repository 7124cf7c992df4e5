package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"wofiles/internal/errors"
	"wofiles/pkg/types"
)

// BuiltinTheme maps a selector name to a stylesheet inside the theme directory.
type BuiltinTheme struct {
	Name string `yaml:"name"` // Name shown in the theme selector
	File string `yaml:"file"` // Stylesheet file name, relative to the theme directory
}

// Config represents the application configuration structure.
type Config struct {
	Directories struct {
		Start  string `yaml:"start"`  // Directory opened at startup, empty means $HOME
		Assets string `yaml:"assets"` // Icon assets (folder.png, file.png, <ext>.png)
		Themes string `yaml:"themes"` // Managed theme directory, empty means <assets>/themes
	} `yaml:"directories"`
	View struct {
		ShowHidden bool     `yaml:"show_hidden"` // Privileged view at startup
		IconSize   int      `yaml:"icon_size"`   // Icon edge length in pixels
		Exclude    []string `yaml:"exclude"`     // Glob patterns hidden from every listing
	} `yaml:"view"`
	Search struct {
		GuardCycles bool `yaml:"guard_cycles"` // Track device+inode during deep search
	} `yaml:"search"`
	Theme struct {
		Default string         `yaml:"default"` // Theme applied at startup
		Builtin []BuiltinTheme `yaml:"builtin"` // Stylesheet themes listed before saved ones
	} `yaml:"theme"`
	Shortcuts []types.Shortcut `yaml:"shortcuts"` // User-added sidebar shortcuts
	Watch     struct {
		Enabled    bool `yaml:"enabled"`     // Refresh the view when the directory changes
		DebounceMs int  `yaml:"debounce_ms"` // Quiet period before a refresh
	} `yaml:"watch"`
}

// DefaultPath returns ~/.config/wofiles/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wofiles", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "error reading config file")
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.Wrap(err, "error parsing config file")
	}

	if tempCfg.Directories.Start != "" {
		cfg.Directories.Start = tempCfg.Directories.Start
	}
	if tempCfg.Directories.Assets != "" {
		cfg.Directories.Assets = tempCfg.Directories.Assets
	}
	if tempCfg.Directories.Themes != "" {
		cfg.Directories.Themes = tempCfg.Directories.Themes
	}

	cfg.View.ShowHidden = tempCfg.View.ShowHidden
	if tempCfg.View.IconSize != 0 {
		cfg.View.IconSize = tempCfg.View.IconSize
	}
	if len(tempCfg.View.Exclude) > 0 {
		cfg.View.Exclude = tempCfg.View.Exclude
	}

	cfg.Search.GuardCycles = tempCfg.Search.GuardCycles

	if tempCfg.Theme.Default != "" {
		cfg.Theme.Default = tempCfg.Theme.Default
	}
	if len(tempCfg.Theme.Builtin) > 0 {
		cfg.Theme.Builtin = tempCfg.Theme.Builtin
	}

	if len(tempCfg.Shortcuts) > 0 {
		cfg.Shortcuts = tempCfg.Shortcuts
	}

	cfg.Watch.Enabled = tempCfg.Watch.Enabled
	if tempCfg.Watch.DebounceMs != 0 {
		cfg.Watch.DebounceMs = tempCfg.Watch.DebounceMs
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Directories.Start = ""
	cfg.Directories.Assets = "assets"
	cfg.Directories.Themes = ""

	cfg.View.ShowHidden = false
	cfg.View.IconSize = 48
	cfg.View.Exclude = []string{}

	cfg.Search.GuardCycles = false

	cfg.Theme.Default = "OLED"
	cfg.Theme.Builtin = []BuiltinTheme{
		{Name: "OLED", File: "oled.css"},
		{Name: "Red", File: "red.css"},
		{Name: "Blue", File: "blue.css"},
	}

	cfg.Shortcuts = []types.Shortcut{}

	cfg.Watch.Enabled = true
	cfg.Watch.DebounceMs = 250

	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// ThemesDir returns the managed theme directory.
func (c *Config) ThemesDir() string {
	if c.Directories.Themes != "" {
		return c.Directories.Themes
	}
	return filepath.Join(c.Directories.Assets, "themes")
}

// StartDir returns the directory to open first.
func (c *Config) StartDir() string {
	if c.Directories.Start != "" {
		return c.Directories.Start
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "/"
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if c.Directories.Assets == "" {
		return errors.NewConfigError("assets directory is required", "directories.assets", errors.InvalidConfig, nil)
	}

	if c.Directories.Start != "" {
		info, err := os.Stat(c.Directories.Start)
		if err != nil {
			return errors.NewConfigError("start directory is not accessible", "directories.start", errors.ConfigNotFound, err)
		}
		if !info.IsDir() {
			return errors.NewConfigError("start directory is not a directory", "directories.start", errors.InvalidConfig, nil)
		}
	}

	if c.View.IconSize < 8 || c.View.IconSize > 512 {
		return errors.NewConfigError(fmt.Sprintf("icon size %d out of range 8-512", c.View.IconSize), "view.icon_size", errors.InvalidConfig, nil)
	}

	for i, pattern := range c.View.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError(fmt.Sprintf("exclude pattern %d is invalid", i), "view.exclude", errors.InvalidConfig, err)
		}
	}

	seen := make(map[string]bool, len(c.Theme.Builtin))
	for i, theme := range c.Theme.Builtin {
		if theme.Name == "" || theme.File == "" {
			return errors.NewConfigError(fmt.Sprintf("builtin theme %d needs a name and a file", i), "theme.builtin", errors.InvalidConfig, nil)
		}
		if seen[theme.Name] {
			return errors.NewConfigError(fmt.Sprintf("builtin theme %q listed twice", theme.Name), "theme.builtin", errors.InvalidConfig, nil)
		}
		seen[theme.Name] = true
	}

	for i, shortcut := range c.Shortcuts {
		if shortcut.Path == "" {
			return errors.NewConfigError(fmt.Sprintf("shortcut %d: path is required", i), "shortcuts", errors.InvalidConfig, nil)
		}
	}

	if c.Watch.DebounceMs < 0 {
		return errors.NewConfigError("debounce must be >= 0", "watch.debounce_ms", errors.InvalidConfig, nil)
	}

	return nil
}

// BuiltinFile returns the stylesheet registered for a builtin theme name.
func (c *Config) BuiltinFile(name string) (string, bool) {
	for _, theme := range c.Theme.Builtin {
		if theme.Name == name {
			return theme.File, true
		}
	}
	return "", false
}

// NewTestConfig creates a configuration instance for testing purposes,
// rooted at dir.
func NewTestConfig(dir string) *Config {
	cfg := defaultConfig()
	cfg.Directories.Start = dir
	cfg.Directories.Assets = filepath.Join(dir, "assets")
	cfg.Watch.Enabled = false
	return cfg
}
