// Package config loads shieldlab settings from an optional YAML file and
// SHIELDLAB_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/roach88/shieldlab/internal/attenuation"
)

// EnvConfig names the environment variable holding an explicit config path.
const EnvConfig = "SHIELDLAB_CONFIG"

// Config holds application configuration.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Materials MaterialsConfig `mapstructure:"materials"`
	Model     ModelConfig     `mapstructure:"model"`
	Defaults  DefaultsConfig  `mapstructure:"defaults"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// MaterialsConfig points at an optional CUE dataset replacing the built-in
// materials.
type MaterialsConfig struct {
	File string `mapstructure:"file"`
}

// ModelConfig selects the build-up model.
type ModelConfig struct {
	Buildup string `mapstructure:"buildup"`
}

// DefaultsConfig holds values used when a command or job omits them.
type DefaultsConfig struct {
	MaxThickness  float64 `mapstructure:"max_thickness"`
	Samples       int     `mapstructure:"samples"`
	FloorCapacity float64 `mapstructure:"floor_capacity"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// SHIELDLAB_. path, when non-empty, must name a readable file; otherwise
// $SHIELDLAB_CONFIG is used, then ~/.config/shieldlab/config.yaml if present.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(dataDir(), "history.db"))
	v.SetDefault("materials.file", "")
	v.SetDefault("model.buildup", attenuation.ModelLinear)
	v.SetDefault("defaults.max_thickness", 50.0)
	v.SetDefault("defaults.samples", 5)
	v.SetDefault("defaults.floor_capacity", 1000.0)

	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(homeDir(), ".config", "shieldlab"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHIELDLAB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values a command would otherwise reject later with a
// less helpful message.
func (c Config) Validate() error {
	if _, err := attenuation.ModelByName(c.Model.Buildup); err != nil {
		return fmt.Errorf("config model.buildup: %w", err)
	}
	if !(c.Defaults.MaxThickness > 0) {
		return fmt.Errorf("config defaults.max_thickness: must be positive, got %g", c.Defaults.MaxThickness)
	}
	if c.Defaults.Samples < attenuation.MinSamples {
		return fmt.Errorf("config defaults.samples: must be at least %d, got %d", attenuation.MinSamples, c.Defaults.Samples)
	}
	if !(c.Defaults.FloorCapacity > 0) {
		return fmt.Errorf("config defaults.floor_capacity: must be positive, got %g", c.Defaults.FloorCapacity)
	}
	return nil
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "shieldlab")
	}
	return filepath.Join(homeDir(), ".local", "share", "shieldlab")
}
