package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// starterConfig is what `config init` writes out. Values match the
// built-in defaults so the file is safe to commit untouched.
type starterConfig struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Catalog string `yaml:"catalog"`
	Search  struct {
		TimeoutSeconds     int `yaml:"timeout_seconds"`
		LongTimeoutSeconds int `yaml:"long_timeout_seconds"`
		MaxDepth           int `yaml:"max_depth"`
	} `yaml:"search"`
}

// WriteStarter creates a config.yaml at path holding the default values.
// It refuses to overwrite an existing file.
func WriteStarter(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	var sc starterConfig
	sc.Server.Port = 8080
	sc.Catalog = "interactions.json"
	sc.Search.TimeoutSeconds = 30
	sc.Search.LongTimeoutSeconds = 120
	sc.Search.MaxDepth = 15

	data, err := yaml.Marshal(&sc)
	if err != nil {
		return fmt.Errorf("failed to marshal starter config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
