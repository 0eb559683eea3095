// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"fjacquet/expense-tracker/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Classifier providers
const (
	ProviderGemini      = "gemini"
	ProviderHuggingFace = "huggingface"
	ProviderBayes       = "bayes"
	ProviderKeyword     = "keyword"
	ProviderNone        = "none"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "EXPENSE"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	AI struct {
		Provider       string `mapstructure:"provider" yaml:"provider"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"`
		HFToken        string `mapstructure:"hf_token" yaml:"-"`
		HFModel        string `mapstructure:"hf_model" yaml:"hf_model"`
		HFEndpoint     string `mapstructure:"hf_endpoint" yaml:"hf_endpoint"`
	} `mapstructure:"ai" yaml:"ai"`

	Categories struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"categories" yaml:"categories"`

	Budget struct {
		Default float64 `mapstructure:"default" yaml:"default"`
	} `mapstructure:"budget" yaml:"budget"`

	Display struct {
		CurrencySymbol string `mapstructure:"currency_symbol" yaml:"currency_symbol"`
	} `mapstructure:"display" yaml:"display"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`
}

// InitializeConfig loads the configuration. Defaults come first, then
// config.yaml (from configFile when given, otherwise searched in
// $HOME/.expense-tracker, .expense-tracker and the working directory), then
// EXPENSE_* environment variables.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.expense-tracker")
		v.AddConfigPath(".expense-tracker")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Provider credentials keep their conventional names.
	if err := v.BindEnv("ai.api_key", EnvPrefix+"_AI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY: %w", err)
	}
	if err := v.BindEnv("ai.hf_token", EnvPrefix+"_AI_HF_TOKEN", "HF_API_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind HF_API_TOKEN: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.AI.Provider = strings.ToLower(strings.TrimSpace(config.AI.Provider))

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ai.provider", ProviderBayes)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.hf_token", "")
	v.SetDefault("ai.hf_model", "facebook/bart-large-mnli")
	v.SetDefault("ai.hf_endpoint", "https://api-inference.huggingface.co/models")

	v.SetDefault("categories.file", "categories.yaml")

	v.SetDefault("budget.default", 1000.0)

	v.SetDefault("display.currency_symbol", "₹")

	v.SetDefault("csv.delimiter", ",")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	switch config.AI.Provider {
	case ProviderGemini, ProviderHuggingFace, ProviderBayes, ProviderKeyword, ProviderNone:
	default:
		return fmt.Errorf("invalid ai.provider: %s (must be one of gemini, huggingface, bayes, keyword, none)", config.AI.Provider)
	}

	if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
		return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
	}

	if config.Budget.Default < 0 {
		return fmt.Errorf("budget.default must not be negative, got: %f", config.Budget.Default)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	return nil
}

// DelimiterRune returns the configured CSV delimiter.
func (c *Config) DelimiterRune() rune {
	return []rune(c.CSV.Delimiter)[0]
}

// NewLogger builds the application logger from the log section.
func (c *Config) NewLogger() logging.Logger {
	return logging.NewLogrusAdapter(c.Log.Level, c.Log.Format)
}
