package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Load builds the configuration from defaults, an optional YAML config file
// and WINTRACE_* environment variables, in increasing precedence. cfgFile
// overrides the default search locations ($HOME/.wintrace.yaml, ./wintrace.yaml).
// flags, when non-nil, are bound on top of everything else.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".wintrace")
	}

	v.SetEnvPrefix("WINTRACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindFlags(v, flags)
	}

	if err := v.ReadInConfig(); err != nil {
		// No config file on the search path is fine; an explicitly given
		// file that cannot be read is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("app.name", defaults.App.Name)
	v.SetDefault("app.log_level", defaults.App.LogLevel)
	v.SetDefault("app.log_file", defaults.App.LogFile)

	v.SetDefault("data.dir", defaults.Data.Dir)
	v.SetDefault("data.sample_interval", defaults.Data.SampleInterval)
	v.SetDefault("data.save_interval", defaults.Data.SaveInterval)

	v.SetDefault("cache.enabled", defaults.Cache.Enabled)
	v.SetDefault("cache.max_size", defaults.Cache.MaxSize)
	v.SetDefault("cache.ttl", defaults.Cache.TTL)
	v.SetDefault("cache.recap_ttl", defaults.Cache.RecapTTL)

	v.SetDefault("ui.theme", defaults.UI.Theme)
	v.SetDefault("ui.refresh_rate", defaults.UI.RefreshRate)
}

// bindFlags maps command line flags onto their config keys. Only flags the
// user actually set take effect.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	bindings := map[string]string{
		"log-level": "app.log_level",
		"log-file":  "app.log_file",
		"data-dir":  "data.dir",
	}
	for flagName, key := range bindings {
		if flag := flags.Lookup(flagName); flag != nil && flag.Changed {
			v.Set(key, flag.Value.String())
		}
	}
}

func validate(cfg *Config) error {
	if cfg.Data.SampleInterval <= 0 {
		return fmt.Errorf("invalid sample interval: %v", cfg.Data.SampleInterval)
	}
	if cfg.Data.SaveInterval <= 0 {
		return fmt.Errorf("invalid save interval: %v", cfg.Data.SaveInterval)
	}
	switch strings.ToLower(cfg.App.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", cfg.App.LogLevel)
	}
	return nil
}
