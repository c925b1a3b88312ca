package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config holds all viewer settings, populated from environment variables.
type Config struct {
	DataFile  string
	YearStart int
	YearEnd   int
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	yearStart, err := envInt("YEAR_START", 2008)
	if err != nil {
		return nil, err
	}
	yearEnd, err := envInt("YEAR_END", 2017)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataFile:  envOrDefault("DATA_FILE", "data/daily_weather.csv"),
		YearStart: yearStart,
		YearEnd:   yearEnd,
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),
	}

	if cfg.DataFile == "" {
		return nil, errors.New("DATA_FILE is required")
	}
	if cfg.YearStart > cfg.YearEnd {
		return nil, fmt.Errorf("YEAR_START %d exceeds YEAR_END %d", cfg.YearStart, cfg.YearEnd)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}
	return n, nil
}
