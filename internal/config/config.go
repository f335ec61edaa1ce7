package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"odgrip/internal/catalogue"
	"odgrip/internal/domain"
	"odgrip/internal/eventbus"
)

const (
	DispatchBrowser   = "browser"
	DispatchClipboard = "clipboard"
	DispatchPrint     = "print"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version        int              `toml:"version"`
	DefaultBackend string           `toml:"default_backend"`
	Dispatch       string           `toml:"dispatch"`                  // browser, clipboard or print
	BrowserCommand string           `toml:"browser_command,omitempty"` // overrides the platform opener
	LogFile        string           `toml:"log_file,omitempty"`        // "-" disables logging
	UISettings     UISettings       `toml:"ui"`
	Categories     []CategoryConfig `toml:"categories,omitempty"` // replaces the built-in catalogue
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowURLPreview bool `toml:"show_url_preview"`
	ShowHelpBar    bool `toml:"show_help_bar"`
}

// CategoryConfig is one catalogue entry as written in the config file
type CategoryConfig struct {
	Label       string `toml:"label"`
	Pattern     string `toml:"pattern"`
	Placeholder string `toml:"placeholder,omitempty"`
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
	return filepath.Join(configDir, "odgrip", "config.toml")
}

// NewConfigServiceAt creates a config service bound to path, or to
// DefaultPath when path is empty
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path, bus: bus}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:           cs.filePath,
			DefaultBackend: cfg.DefaultBackend,
			Categories:     len(cfg.Categories),
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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

// Validate checks that every value names something the application knows
func (c *Config) Validate() error {
	if _, err := c.Backend(); err != nil {
		return fmt.Errorf("%w: default_backend: %w", ErrInvalidConfig, err)
	}

	switch c.Dispatch {
	case DispatchBrowser, DispatchClipboard, DispatchPrint:
	default:
		return fmt.Errorf("%w: dispatch must be %s, %s or %s, got %q",
			ErrInvalidConfig, DispatchBrowser, DispatchClipboard, DispatchPrint, c.Dispatch)
	}

	if _, err := c.Catalogue(); err != nil {
		return fmt.Errorf("%w: categories: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Backend resolves the configured default backend
func (c *Config) Backend() (domain.Backend, error) {
	return domain.ParseBackend(c.DefaultBackend)
}

// Catalogue builds the category catalogue, using the built-in one when none is configured
func (c *Config) Catalogue() (*catalogue.Catalogue, error) {
	if len(c.Categories) == 0 {
		return catalogue.Builtin(), nil
	}

	categories := make([]domain.Category, 0, len(c.Categories))
	for _, cc := range c.Categories {
		categories = append(categories, domain.Category{
			Label:       strings.TrimSpace(cc.Label),
			Pattern:     strings.TrimSpace(cc.Pattern),
			Placeholder: cc.Placeholder,
		})
	}
	return catalogue.New(categories)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}

	return &Config{
		Version:        1,
		DefaultBackend: domain.BackendGoogle.String(),
		Dispatch:       DispatchBrowser,
		LogFile:        filepath.Join(cacheDir, "odgrip", "odgrip.log"),
		UISettings: UISettings{
			ShowURLPreview: true,
			ShowHelpBar:    true,
		},
	}
}
