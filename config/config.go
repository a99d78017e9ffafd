// Package config loads service settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultOfficialEmail is reported when OFFICIAL_EMAIL is unset.
const DefaultOfficialEmail = "not_configured@example.com"

// Config holds all runtime settings.
type Config struct {
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	OfficialEmail   string        `mapstructure:"official_email" validate:"required,email"`
	AIProvider      string        `mapstructure:"ai_provider" validate:"oneof=huggingface gemini openai"`
	AIAPIKey        string        `mapstructure:"ai_api_key"`
	AIModel         string        `mapstructure:"ai_model"`
	AIBaseURL       string        `mapstructure:"ai_base_url" validate:"omitempty,url"`
	AITimeout       time.Duration `mapstructure:"ai_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

var validate = validator.New()

// providerKeys maps a provider to the provider-specific key variable
// consulted when AI_API_KEY is empty.
var providerKeys = map[string]string{
	"huggingface": "huggingface_api_key",
	"gemini":      "gemini_api_key",
	"openai":      "openai_api_key",
}

// Load reads configuration from dir/.env (if present) and the process
// environment. Environment variables take precedence.
func Load(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", 3000)
	v.SetDefault("official_email", DefaultOfficialEmail)
	v.SetDefault("ai_provider", "huggingface")
	v.SetDefault("ai_api_key", "")
	v.SetDefault("ai_model", "")
	v.SetDefault("ai_base_url", "")
	v.SetDefault("ai_timeout", "5s")
	v.SetDefault("shutdown_timeout", "30s")

	v.SetConfigFile(filepath.Join(dir, ".env"))
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.AIAPIKey == "" {
		if key, ok := providerKeys[cfg.AIProvider]; ok {
			cfg.AIAPIKey = v.GetString(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags of c.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// EmailConfigured reports whether OFFICIAL_EMAIL was set.
func (c *Config) EmailConfigured() bool {
	return c.OfficialEmail != DefaultOfficialEmail
}
