package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	API APIConfig
	Log LogConfig
}

// APIConfig holds WAQI API settings
type APIConfig struct {
	Token     string        // fallback token when none is given on the command line
	Timeout   time.Duration // HTTP client timeout
	Pollutant string        // iaqi measurement resolved in detail mode
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.airscan")

	// Set defaults. The token has no meaningful default, but the key must be
	// registered for Unmarshal to pick up AIRSCAN_API_TOKEN from AutomaticEnv.
	viper.SetDefault("api.token", "")
	viper.SetDefault("api.timeout", "30s")
	viper.SetDefault("api.pollutant", "pm25")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	// Read from environment variables (AIRSCAN_API_TOKEN, AIRSCAN_LOG_LEVEL, ...)
	viper.SetEnvPrefix("AIRSCAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// NewLogger creates a new slog.Logger based on the configuration. Logs go to
// stderr: stdout is reserved for query results.
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	default: // "text" or anything else
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}

	return slog.New(handler)
}
