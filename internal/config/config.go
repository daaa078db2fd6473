// Package config loads gocube settings with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "gocube.cfg.json"

// Settings is the typed view of the loaded configuration.
type Settings struct {
	LogLevel        string `mapstructure:"logLevel"`
	DBPath          string `mapstructure:"dbPath"`
	ScrambleLength  int    `mapstructure:"scrambleLength"`
	ScrambleSeed    uint64 `mapstructure:"scrambleSeed"`
	InvariantChecks bool   `mapstructure:"invariantChecks"`
	Color           bool   `mapstructure:"color"`
	OrderLimit      int    `mapstructure:"orderLimit"`
}

// DefaultDir returns ~/.gocube_model, the default config directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".gocube_model"), nil
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("dbPath", "")
	viper.SetDefault("scrambleLength", 25)
	viper.SetDefault("scrambleSeed", 0)
	viper.SetDefault("invariantChecks", false)
	viper.SetDefault("color", true)
	viper.SetDefault("orderLimit", 1260)
}

// Load reads configuration from the JSON file in configDir and sets
// default values. A missing file is not an error. Environment
// variables prefixed GOCUBE_ override file values.
func Load(configDir string) error {
	setDefaults()

	viper.SetEnvPrefix("GOCUBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Current returns the loaded settings.
func Current() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if s.ScrambleLength < 1 {
		return Settings{}, fmt.Errorf("scrambleLength must be positive, got %d", s.ScrambleLength)
	}
	if s.OrderLimit < 1 {
		return Settings{}, fmt.Errorf("orderLimit must be positive, got %d", s.OrderLimit)
	}
	return s, nil
}

// Set overrides a single value, used for command-line flags.
func Set(key string, value any) {
	viper.Set(key, value)
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
