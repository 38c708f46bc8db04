package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configDirName  = "pexview"
	configFileName = "config.toml"

	DefaultEndpoint = "https://api.pexels.com/v1/search"
)

// ErrMissingAPIKey is returned by Validate when no api_key is configured
var ErrMissingAPIKey = errors.New("api_key is not set")

// Config represents the application configuration
type Config struct {
	APIKey            string        `mapstructure:"api_key"`
	Endpoint          string        `mapstructure:"endpoint"`
	Orientation       string        `mapstructure:"orientation"`
	Size              string        `mapstructure:"size"`
	PerPage           int           `mapstructure:"per_page"`
	LegacyQueryParams bool          `mapstructure:"legacy_query_params"` // keep the orentation/pen_page spelling
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	UISettings        UISettings    `mapstructure:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ThumbnailSize int  `mapstructure:"thumbnail_size"` // columns
	Spacing       int  `mapstructure:"spacing"`        // columns between thumbnails
	Mouse         bool `mapstructure:"mouse"`
}

// fileConfig is the on-disk layout written by SaveToPath
type fileConfig struct {
	APIKey            string         `toml:"api_key"`
	Endpoint          string         `toml:"endpoint"`
	Orientation       string         `toml:"orientation"`
	Size              string         `toml:"size"`
	PerPage           int            `toml:"per_page"`
	LegacyQueryParams bool           `toml:"legacy_query_params"`
	RequestTimeout    string         `toml:"request_timeout"`
	UI                fileUISettings `toml:"ui"`
}

type fileUISettings struct {
	ThumbnailSize int  `toml:"thumbnail_size"`
	Spacing       int  `toml:"spacing"`
	Mouse         bool `toml:"mouse"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, configDirName, configFileName),
	}
}

// NewConfigServiceAt creates a config service bound to an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service reads from
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file
func (cs *configService) Load() (*Config, error) {
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(fileConfig{
		APIKey:            config.APIKey,
		Endpoint:          config.Endpoint,
		Orientation:       config.Orientation,
		Size:              config.Size,
		PerPage:           config.PerPage,
		LegacyQueryParams: config.LegacyQueryParams,
		RequestTimeout:    config.RequestTimeout.String(),
		UI: fileUISettings{
			ThumbnailSize: config.UISettings.ThumbnailSize,
			Spacing:       config.UISettings.Spacing,
			Mouse:         config.UISettings.Mouse,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file holds a secret
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports whether the config can be used to run searches
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		return err
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q", c.Endpoint)
	}
	if c.PerPage < 1 || c.PerPage > 80 {
		return fmt.Errorf("per_page must be between 1 and 80, got %d", c.PerPage)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.UISettings.ThumbnailSize < 2 {
		return fmt.Errorf("ui.thumbnail_size must be at least 2, got %d", c.UISettings.ThumbnailSize)
	}
	if c.UISettings.Spacing < 0 {
		return fmt.Errorf("ui.spacing must not be negative, got %d", c.UISettings.Spacing)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("api_key", d.APIKey)
	v.SetDefault("endpoint", d.Endpoint)
	v.SetDefault("orientation", d.Orientation)
	v.SetDefault("size", d.Size)
	v.SetDefault("per_page", d.PerPage)
	v.SetDefault("legacy_query_params", d.LegacyQueryParams)
	v.SetDefault("request_timeout", d.RequestTimeout)
	v.SetDefault("ui.thumbnail_size", d.UISettings.ThumbnailSize)
	v.SetDefault("ui.spacing", d.UISettings.Spacing)
	v.SetDefault("ui.mouse", d.UISettings.Mouse)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Endpoint:          DefaultEndpoint,
		Orientation:       "portrait",
		Size:              "small",
		PerPage:           20,
		LegacyQueryParams: true,
		RequestTimeout:    30 * time.Second,
		UISettings: UISettings{
			ThumbnailSize: 8,
			Spacing:       1,
			Mouse:         true,
		},
	}
}
