package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port           string   `yaml:"port"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Turnover struct {
		// InFlightTTL bounds how long a crashed execute can block its league.
		InFlightTTL time.Duration `yaml:"in_flight_ttl"`
	} `yaml:"turnover"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

func defaultConfig() *Config {
	var config Config
	config.Server.Port = "8080"
	config.Server.AllowedOrigins = []string{"*"}
	config.Turnover.InFlightTTL = 2 * time.Minute
	config.Logging.Level = "info"
	return &config
}

// loadConfig reads path over the defaults. A missing file leaves the
// defaults in place; PORT and LOG_LEVEL override the file.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.Server.Port = getEnv("PORT", config.Server.Port)
	config.Logging.Level = getEnv("LOG_LEVEL", config.Logging.Level)

	if config.Turnover.InFlightTTL <= 0 {
		return nil, fmt.Errorf("turnover.in_flight_ttl must be positive, got %s", config.Turnover.InFlightTTL)
	}
	if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", config.Logging.Level, err)
	}
	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
