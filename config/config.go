package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Version is set at build time.
var Version = "dev"

// Config represents the complete application configuration.
type Config struct {
	App   AppConfig   `mapstructure:"app" yaml:"app" json:"app"`
	Data  DataConfig  `mapstructure:"data" yaml:"data" json:"data"`
	Cache CacheConfig `mapstructure:"cache" yaml:"cache" json:"cache"`
	UI    UIConfig    `mapstructure:"ui" yaml:"ui" json:"ui"`
}

// AppConfig contains general application settings.
type AppConfig struct {
	Name     string `mapstructure:"name" yaml:"name" json:"name"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	LogFile  string `mapstructure:"log_file" yaml:"log_file" json:"log_file"`
}

// DataConfig contains tracking and persistence settings.
type DataConfig struct {
	Dir            string        `mapstructure:"dir" yaml:"dir" json:"dir"`
	SampleInterval time.Duration `mapstructure:"sample_interval" yaml:"sample_interval" json:"sample_interval"`
	SaveInterval   time.Duration `mapstructure:"save_interval" yaml:"save_interval" json:"save_interval"`
}

// CacheConfig contains report cache settings.
type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	MaxSize  int           `mapstructure:"max_size" yaml:"max_size" json:"max_size"`
	TTL      time.Duration `mapstructure:"ttl" yaml:"ttl" json:"ttl"`
	RecapTTL time.Duration `mapstructure:"recap_ttl" yaml:"recap_ttl" json:"recap_ttl"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	Theme       string        `mapstructure:"theme" yaml:"theme" json:"theme"`
	RefreshRate time.Duration `mapstructure:"refresh_rate" yaml:"refresh_rate" json:"refresh_rate"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:     "wintrace",
			LogLevel: "info",
			LogFile:  "",
		},
		Data: DataConfig{
			Dir:            DefaultDataDir(),
			SampleInterval: time.Second,
			SaveInterval:   60 * time.Second,
		},
		Cache: CacheConfig{
			Enabled:  true,
			MaxSize:  64,
			TTL:      time.Minute,
			RecapTTL: time.Hour,
		},
		UI: UIConfig{
			Theme:       "dark",
			RefreshRate: 5 * time.Second,
		},
	}
}

// DefaultDataDir returns the per-user data directory:
// %LOCALAPPDATA%\wintrace on Windows, ~/.local/share/wintrace elsewhere.
func DefaultDataDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			return filepath.Join(appData, "wintrace")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "wintrace")
}

// UsageFilePath returns the path of the persisted usage blob.
func (c *Config) UsageFilePath() string {
	return filepath.Join(c.Data.Dir, "usage_data.json")
}

// CategoriesFilePath returns the path of the user category override file.
func (c *Config) CategoriesFilePath() string {
	return filepath.Join(c.Data.Dir, "user_categories.json")
}

// CacheDir returns the directory of the persistent recap cache.
func (c *Config) CacheDir() string {
	return filepath.Join(c.Data.Dir, "cache")
}

// LogFilePath returns the configured log file, defaulting to a file inside
// the data directory so the TUI terminal stays clean.
func (c *Config) LogFilePath() string {
	if c.App.LogFile != "" {
		return c.App.LogFile
	}
	return filepath.Join(c.Data.Dir, "wintrace.log")
}
