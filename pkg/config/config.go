package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		if err != nil {
			return err
		}
		return nil
	default:
		return errors.New("invalid duration")
	}
}

type Config struct {
	Address            string
	DataRoot           string
	DedupeSharedShares bool
	LogLevel           string
	ReadTimeout        Duration
	ShutdownTimeout    Duration
	StoreURL           string
	Version            string
}

func defaults() *Config {
	return &Config{
		Address:         "localhost:8080",
		DataRoot:        "data",
		LogLevel:        "info",
		ReadTimeout:     Duration{30 * time.Second},
		ShutdownTimeout: Duration{30 * time.Second},
		StoreURL:        "sqlite://analytics.db",
		Version:         "dev",
	}
}

// Load reads the configuration from an optional JSON file and applies
// environment overrides on top.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	}

	if v := os.Getenv("ANALYTICS_ADDRESS"); v != "" {
		cfg.Address = v
	}
	if v := os.Getenv("ANALYTICS_STORE_URL"); v != "" {
		cfg.StoreURL = v
	}
	if v := os.Getenv("ANALYTICS_DATA_ROOT"); v != "" {
		cfg.DataRoot = v
	}
	if v := os.Getenv("ANALYTICS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
