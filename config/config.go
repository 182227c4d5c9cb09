package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. Mapstructure tags map
// environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
	LogLevel      string `mapstructure:"LOG_LEVEL"`      // debug, info, warn, error

	// AI Configuration (optional; empty key disables the AI fallback)
	OpenAIKey   string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel string `mapstructure:"OPENAI_MODEL"`

	// Deployment Configuration (optional; empty token disables deployment)
	NetlifyToken         string `mapstructure:"NETLIFY_TOKEN"`
	NetlifyAPIBase       string `mapstructure:"NETLIFY_API_BASE"`
	DeployTimeoutSeconds int    `mapstructure:"DEPLOY_TIMEOUT_SECONDS"`
}

// LoadConfig reads configuration from an optional config.yaml and from
// environment variables. Every key has a working default except the two
// optional credentials.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4")
	viper.SetDefault("NETLIFY_TOKEN", "")
	viper.SetDefault("NETLIFY_API_BASE", "https://api.netlify.com")
	viper.SetDefault("DEPLOY_TIMEOUT_SECONDS", 30)

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine; environment variables cover everything.
	}

	if err = viper.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.DeployTimeoutSeconds <= 0 {
		return Config{}, fmt.Errorf("DEPLOY_TIMEOUT_SECONDS must be positive, got %d", config.DeployTimeoutSeconds)
	}

	return config, nil
}
