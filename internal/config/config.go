// Package config loads runtime configuration from the environment and an
// optional fstar-tools.yaml file in the working directory.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration for the tool plugins.
type Config struct {
	Verifier VerifierConfig `mapstructure:"verifier"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// VerifierConfig stores verification service connection details.
type VerifierConfig struct {
	Host    string        `mapstructure:"host"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig stores log verbosity settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration with precedence: environment variables, then the
// optional config file, then defaults. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("verifier.host", "http://localhost:8005")
	v.SetDefault("verifier.timeout", 15*time.Second)
	v.SetDefault("logging.level", "warn")

	// Env names are fixed by the deployment contract, not derived from keys.
	_ = v.BindEnv("verifier.host", "FSTAR_VERIFIER_SERVER_HOST")
	_ = v.BindEnv("verifier.timeout", "FSTAR_VERIFIER_TIMEOUT")
	_ = v.BindEnv("logging.level", "FSTAR_TOOLS_LOG_LEVEL")

	v.SetConfigName("fstar-tools")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
