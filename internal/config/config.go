package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultDebounceMs is the debounce delay used when none is configured
const DefaultDebounceMs = 300

// ErrInvalidConfig is wrapped by Validate failures
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version    int         `toml:"version"`
	DebounceMs int         `toml:"debounce_ms"`
	PeopleFile string      `toml:"people_file,omitempty"` // empty means the built-in roster
	UISettings UISettings  `toml:"ui"`
	Log        LogSettings `toml:"log"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	MaxVisible  int    `toml:"max_visible"`
	Placeholder string `toml:"placeholder"`
	Autofocus   bool   `toml:"autofocus"`
	ShowHelp    bool   `toml:"show_help"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// DebounceDelay returns the debounce delay as a duration
func (c *Config) DebounceDelay() time.Duration {
	if c.DebounceMs <= 0 {
		return DefaultDebounceMs * time.Millisecond
	}
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.DebounceMs < 0 {
		return fmt.Errorf("%w: debounce_ms must not be negative, got %d", ErrInvalidConfig, c.DebounceMs)
	}
	if c.UISettings.MaxVisible < 0 {
		return fmt.Errorf("%w: ui.max_visible must not be negative, got %d", ErrInvalidConfig, c.UISettings.MaxVisible)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "peoplepicker", "config.toml")
}

// NewConfigService creates a config service for path. An empty path means DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		DebounceMs: DefaultDebounceMs,
		UISettings: UISettings{
			MaxVisible:  8,
			Placeholder: "Enter a part of the name",
			Autofocus:   true,
			ShowHelp:    true,
		},
		Log: LogSettings{
			File:  "peoplepicker.log",
			Level: "info",
		},
	}
}
