// Package config loads application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Chart kinds accepted by Config.Chart.
const (
	ChartBar  = "bar"
	ChartLine = "line"
	ChartPie  = "pie"
)

type Config struct {
	// DataFile is a CSV dataset to load and watch at startup. Empty means
	// the user picks one.
	DataFile string
	// Chart is the chart shown first.
	Chart       string
	Title       string
	LabelFormat string
	LogLevel    string
	LogPretty   bool
}

// Load reads a .env file in the working directory, if there is one, and then
// the environment. The result is not validated, so that callers can apply
// overrides first and then call Validate.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed reading .env: %w", err)
	}

	cfg := &Config{
		DataFile:    getEnv("TOUCHCHARTS_DATA_FILE", ""),
		Chart:       getEnv("TOUCHCHARTS_CHART", ChartBar),
		Title:       getEnv("TOUCHCHARTS_TITLE", "Chart"),
		LabelFormat: getEnv("TOUCHCHARTS_LABEL_FORMAT", "%.01f"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogPretty:   getEnvAsBool("LOG_PRETTY", true),
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Chart {
	case ChartBar, ChartLine, ChartPie:
	default:
		return fmt.Errorf("unknown chart kind %q", c.Chart)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}
