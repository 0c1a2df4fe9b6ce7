package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime settings of the server and CLI.
type Config struct {
	Server  ServerConfig `mapstructure:"server"`
	Catalog string       `mapstructure:"catalog" validate:"required"`
	Search  SearchConfig `mapstructure:"search"`
}

// ServerConfig configures the HTTP/WebSocket server.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

// SearchConfig carries the defaults applied to requests that leave the
// corresponding field unset.
type SearchConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"min=1"`
	// LongTimeoutSeconds applies when four or more effects are required.
	LongTimeoutSeconds int `mapstructure:"long_timeout_seconds" validate:"min=1"`
	MaxDepth           int `mapstructure:"max_depth" validate:"min=1"`
}

// Load reads configuration with the usual precedence: environment
// variables (S1_ prefix) over config file over defaults. A missing config
// file is fine; missing env vars are fine; validation failures are not.
func Load(configPath string) (*Config, error) {
	// Pick up a local .env if present.
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("S1")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("catalog", "interactions.json")
	v.SetDefault("search.timeout_seconds", 30)
	v.SetDefault("search.long_timeout_seconds", 120)
	v.SetDefault("search.max_depth", 15)
}

func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range verrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Field(), e.Tag(), e.Value(),
			))
		}
		return fmt.Errorf("%s", strings.Join(messages, "; "))
	}
	return err
}
