package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"tabswitch/internal/domain"
	"tabswitch/internal/eventbus"
)

// EnvPrefix prefixes environment overrides, e.g. TABSWITCH_UI_THEME
const EnvPrefix = "TABSWITCH"

// Validation errors
var (
	ErrInvalidAnimation   = errors.New("invalid animation style")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidTheme       = errors.New("invalid theme")
	ErrInvalidCellWidth   = errors.New("cell width must be positive")
	ErrInvalidLogLevel    = errors.New("invalid log level")
)

// Config represents the application configuration
type Config struct {
	Version    int             `mapstructure:"version"`
	UISettings UISettings      `mapstructure:"ui"`
	Content    ContentSettings `mapstructure:"content"`
	Log        LogSettings     `mapstructure:"log"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Animation   string `mapstructure:"animation"`
	Orientation string `mapstructure:"orientation"`
	DefaultTab  string `mapstructure:"default_tab"`
	Theme       string `mapstructure:"theme"`
	CellWidth   int    `mapstructure:"cell_width"`
	Mouse       bool   `mapstructure:"mouse"`
}

// ContentSettings selects where tab content comes from
type ContentSettings struct {
	Manifest string `mapstructure:"manifest"` // empty means built-in demo tabs
	Watch    bool   `mapstructure:"watch"`
}

// LogSettings configures the log file
type LogSettings struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
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
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/tabswitch/config.toml, or its
// platform equivalent
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
	return filepath.Join(configDir, "tabswitch", "config.toml")
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithBus creates a config service with event bus support.
// An empty path selects DefaultPath.
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path, bus: bus}
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields defaults
// with environment overrides applied.
func (cs *configService) Load() (*Config, error) {
	cfg, err := load(cs.filePath, false)
	if err != nil {
		return nil, err
	}

	log.Info("config loaded", "path", cs.filePath)
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	log.Info("config saved", "path", cs.filePath)
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path, which must exist
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return load(path, true)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("version", config.Version)
	v.Set("ui.animation", config.UISettings.Animation)
	v.Set("ui.orientation", config.UISettings.Orientation)
	v.Set("ui.default_tab", config.UISettings.DefaultTab)
	v.Set("ui.theme", config.UISettings.Theme)
	v.Set("ui.cell_width", config.UISettings.CellWidth)
	v.Set("ui.mouse", config.UISettings.Mouse)
	v.Set("content.manifest", config.Content.Manifest)
	v.Set("content.watch", config.Content.Watch)
	v.Set("log.file", config.Log.File)
	v.Set("log.level", config.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func load(path string, required bool) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(statErr, os.ErrNotExist) && !required:
		// Defaults plus environment
	case errors.Is(statErr, os.ErrNotExist):
		return nil, fmt.Errorf("config file not found: %s", path)
	default:
		return nil, fmt.Errorf("failed to read config file: %w", statErr)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("ui.animation", d.UISettings.Animation)
	v.SetDefault("ui.orientation", d.UISettings.Orientation)
	v.SetDefault("ui.default_tab", d.UISettings.DefaultTab)
	v.SetDefault("ui.theme", d.UISettings.Theme)
	v.SetDefault("ui.cell_width", d.UISettings.CellWidth)
	v.SetDefault("ui.mouse", d.UISettings.Mouse)
	v.SetDefault("content.manifest", d.Content.Manifest)
	v.SetDefault("content.watch", d.Content.Watch)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			Animation:   "slide",
			Orientation: "horizontal",
			DefaultTab:  "dashboard",
			Theme:       "auto",
			CellWidth:   8,
			Mouse:       true,
		},
		Log: LogSettings{
			File:  "tabswitch.log",
			Level: "info",
		},
	}
}

// Validate checks every enumerated setting
func (c *Config) Validate() error {
	if _, ok := domain.ParseAnimationStyle(c.UISettings.Animation); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidAnimation, c.UISettings.Animation)
	}
	if _, ok := domain.ParseOrientation(c.UISettings.Orientation); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, c.UISettings.Orientation)
	}
	if _, ok := domain.ParseTheme(c.UISettings.Theme); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, c.UISettings.Theme)
	}
	if c.UISettings.CellWidth <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCellWidth, c.UISettings.CellWidth)
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
		}
	}
	return nil
}

// AnimationStyle returns the parsed animation setting
func (c *Config) AnimationStyle() domain.AnimationStyle {
	s, _ := domain.ParseAnimationStyle(c.UISettings.Animation)
	return s
}

// Orientation returns the parsed orientation setting
func (c *Config) Orientation() domain.Orientation {
	o, _ := domain.ParseOrientation(c.UISettings.Orientation)
	return o
}

// Theme returns the parsed theme setting
func (c *Config) Theme() domain.Theme {
	t, _ := domain.ParseTheme(c.UISettings.Theme)
	return t
}

// LogLevel returns the parsed log level, info when unset
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
