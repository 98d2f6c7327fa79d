// Package config loads CLI settings through viper, layering BOXTON_ environment
// variables over an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds CLI configuration.
type Config struct {
	Locale       string      `mapstructure:"locale"`
	Renderer     string      `mapstructure:"renderer"`
	TemplatesDir string      `mapstructure:"templates_dir"`
	Translations string      `mapstructure:"translations"`
	Sanitize     bool        `mapstructure:"sanitize"`
	LogLevel     string      `mapstructure:"log_level"`
	Theme        ThemeConfig `mapstructure:"theme"`
}

// ThemeConfig selects a theme from a manifest file.
type ThemeConfig struct {
	Name     string `mapstructure:"name"`
	Variant  string `mapstructure:"variant"`
	Manifest string `mapstructure:"manifest"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// BOXTON_. path selects an explicit config file; when empty BOXTON_CONFIG is
// consulted, then the default search paths.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("locale", "")
	v.SetDefault("renderer", "boxton")
	v.SetDefault("templates_dir", "")
	v.SetDefault("translations", "")
	v.SetDefault("sanitize", false)
	v.SetDefault("log_level", "warn")
	v.SetDefault("theme.name", "")
	v.SetDefault("theme.variant", "")
	v.SetDefault("theme.manifest", "")

	v.SetConfigType("yaml")

	cfgPath := strings.TrimSpace(path)
	if cfgPath == "" {
		cfgPath = os.Getenv("BOXTON_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "boxton"))
		v.AddConfigPath(".")
		v.SetConfigName("boxton")
	}

	v.SetEnvPrefix("BOXTON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// an explicitly requested file must exist
		if cfgPath != "" {
			return Config{}, fmt.Errorf("config: read %q: %w", cfgPath, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return c, nil
}
