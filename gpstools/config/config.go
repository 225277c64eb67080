package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the tool configuration.
type Config struct {
	Format     string `yaml:"format" validate:"oneof=text json csv"`
	Units      string `yaml:"units" validate:"oneof=metric imperial"`
	LogLevel   string `yaml:"logLevel" validate:"oneof=debug info warn error"`
	TrackIndex int    `yaml:"trackIndex" validate:"gte=0"`
}

const envPrefix = "GPSTOOLS_"

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Format:     "text",
		Units:      "metric",
		LogLevel:   "warn",
		TrackIndex: 0,
	}
}

// Load builds the configuration from the defaults, the optional yaml file at path,
// a .env file in the working directory and GPSTOOLS_* environment variables, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg.Format = getEnv("FORMAT", cfg.Format)
	cfg.Units = getEnv("UNITS", cfg.Units)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	idx, err := getIntEnv("TRACK_INDEX", cfg.TrackIndex)
	if err != nil {
		return nil, err
	}
	cfg.TrackIndex = idx

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultValue, nil
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s '%s': %w", envPrefix, key, value, err)
	}
	return i, nil
}
