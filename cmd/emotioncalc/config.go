package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration, loadable from a YAML file.
type Config struct {
	// StorePath is the JSON history file. Ignored when RedisAddr is set.
	StorePath string `yaml:"store_path"`
	// RedisAddr switches the interaction store to Redis (host:port).
	RedisAddr string `yaml:"redis_addr"`
	RedisDB   int    `yaml:"redis_db"`
	RedisKey  string `yaml:"redis_key"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		StorePath: "emotion_history.json",
	}
}

// LoadConfig reads a YAML config file, falling back to defaults when
// the path is empty or the file does not exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.StorePath == "" {
		cfg.StorePath = "emotion_history.json"
	}
	return cfg, nil
}
