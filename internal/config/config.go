// Package config provides configuration management functionality for the hush application.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Configuration keys understood by hush.
const (
	KeyLogLevel       = "log_level"
	KeyBusAddress     = "bus.address"
	KeyIgnoredPlayers = "players.ignore"
)

// GetValue retrieves a configuration value by key
func GetValue(key string) (string, error) {
	if !viper.IsSet(key) {
		return "", fmt.Errorf("key '%s' not found in configuration", key)
	}
	return viper.GetString(key), nil
}

// SetValue sets a configuration value by key and persists it to the config file
func SetValue(key string, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// LogLevel returns the configured log level, defaulting to info when
// unset or unrecognized.
func LogLevel() slog.Level {
	switch strings.ToLower(viper.GetString(KeyLogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// BusAddress returns an explicit session bus address, or empty to use
// the address from the environment.
func BusAddress() string {
	return viper.GetString(KeyBusAddress)
}

// IgnoredPlayers returns the player names (without the MPRIS prefix)
// that discovery should skip.
func IgnoredPlayers() []string {
	return viper.GetStringSlice(KeyIgnoredPlayers)
}
