package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultEndpoint = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel    = "llama3-70b-8192"
)

type Config struct {
	API        APIConfig        `mapstructure:"api"`
	Moderation ModerationConfig `mapstructure:"moderation"`
}

type APIConfig struct {
	Endpoint       string  `mapstructure:"endpoint"`
	Model          string  `mapstructure:"model"`
	Key            string  `mapstructure:"key"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
	Temperature    float64 `mapstructure:"temperature"`
}

type ModerationConfig struct {
	PacingMs int `mapstructure:"pacing_ms"`
}

// Load reads commentguard.yaml from configPath (or the working directory) and
// overlays environment variables. A missing config file is not an error: every
// field has a default and the credential normally arrives via GROQ_API_KEY.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("commentguard")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api.key", "GROQ_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind credential env: %w", err)
	}

	v.SetDefault("api.endpoint", defaultEndpoint)
	v.SetDefault("api.model", defaultModel)
	v.SetDefault("api.timeout_seconds", 15)
	v.SetDefault("api.temperature", 0.2)
	v.SetDefault("moderation.pacing_ms", 500)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Timeout returns the remote call bound as a duration.
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Pacing returns the delay applied after each remote classification attempt.
func (c *ModerationConfig) Pacing() time.Duration {
	return time.Duration(c.PacingMs) * time.Millisecond
}
