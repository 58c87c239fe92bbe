// Package config loads shell configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds shell configuration.
type Config struct {
	Engine EngineConfig
	Input  InputConfig
	Audio  AudioConfig
}

// EngineConfig selects and seeds the embedded engine.
type EngineConfig struct {
	Name     string
	Homepage string
}

// InputConfig holds translation settings.
type InputConfig struct {
	ScrollStep int `mapstructure:"scroll_step"`
}

// AudioConfig holds bell settings.
type AudioConfig struct {
	Enabled bool
}

// Load reads configuration from file and env. Env var overrides use prefix
// SCRAP_; the config file is optional.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("engine.name", "textview")
	v.SetDefault("engine.homepage", "https://example.org")
	v.SetDefault("input.scroll_step", 3)
	v.SetDefault("audio.enabled", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SCRAP_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "scrap"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SCRAP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
