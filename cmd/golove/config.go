package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML config file. Flags take precedence
// over every field here.
type fileConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	AppName string `yaml:"app_name"`
}

// defaultConfigPath returns the per-user config location,
// typically ~/.config/golove/config.yaml.
func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "golove", "config.yaml"), nil
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file at the default location is not an error.
func loadConfig(path string) (*fileConfig, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return &fileConfig{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &fileConfig{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("config %s: port %d out of range", path, cfg.Port)
	}
	return &cfg, nil
}
