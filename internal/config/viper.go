// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Server struct {
		Addr string `mapstructure:"addr" yaml:"addr"`
	} `mapstructure:"server" yaml:"server"`

	Store struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"store" yaml:"store"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	NER struct {
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"ner" yaml:"ner"`

	Categorizer struct {
		TriggersFile string `mapstructure:"triggers_file" yaml:"triggers_file"`
	} `mapstructure:"categorizer" yaml:"categorizer"`

	Twilio struct {
		AccountSID string `mapstructure:"account_sid" yaml:"-"`
		AuthToken  string `mapstructure:"auth_token" yaml:"-"`
		From       string `mapstructure:"from" yaml:"from"`
	} `mapstructure:"twilio" yaml:"twilio"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.expenseninja")
	v.AddConfigPath(".expenseninja")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("EXPENSENINJA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	// 5. Secrets always come from unprefixed environment variables
	for key, envVar := range map[string]string{
		"ai.api_key":         "GEMINI_API_KEY",
		"twilio.account_sid": "TWILIO_ACCOUNT_SID",
		"twilio.auth_token":  "TWILIO_AUTH_TOKEN",
		"twilio.from":        "TWILIO_WHATSAPP_NUMBER",
	} {
		if err := v.BindEnv(key, envVar); err != nil {
			fmt.Printf("Warning: failed to bind %s environment variable: %v\n", envVar, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Server defaults
	v.SetDefault("server.addr", ":8080")

	// Store defaults
	v.SetDefault("store.path", "expenses.db")

	// AI defaults
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 10)

	// NER defaults
	v.SetDefault("ner.enabled", false)

	// Categorizer defaults
	v.SetDefault("categorizer.triggers_file", "")

	// Twilio defaults
	v.SetDefault("twilio.from", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate server address
	if config.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}

	// Validate store path
	if config.Store.Path == "" {
		return fmt.Errorf("store.path must not be empty")
	}

	// Validate AI configuration
	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}

		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	// NER rides on the same Gemini client as the zero-shot fallback
	if config.NER.Enabled && !config.AI.Enabled {
		return fmt.Errorf("ner.enabled requires ai.enabled")
	}

	return nil
}
