package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// duration lets TOML carry values like step_timeout = "10m".
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}

// Config is the optional TOML configuration file. Flags override it.
type Config struct {
	Binary      string   `toml:"binary"`
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	StepTimeout duration `toml:"step_timeout"`
	LogLevel    string   `toml:"log_level"`
	JSONLog     bool     `toml:"json_log"`
}

func defaultConfig() *Config {
	return &Config{
		Host:        "localhost",
		StepTimeout: duration(10 * time.Minute),
		LogLevel:    "info",
	}
}

func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
