package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Model     ModelConfig
	Images    ImagesConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ModelConfig holds model artifact configuration
type ModelConfig struct {
	Path string `mapstructure:"path"`
}

// ImagesConfig holds image analysis configuration
type ImagesConfig struct {
	MaxImages    int           `mapstructure:"max_images"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	Concurrency  int           `mapstructure:"concurrency"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/guardify/")

	// Environment variable settings
	v.SetEnvPrefix("GUARDIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"chrome-extension://*"})

	// Model defaults
	v.SetDefault("model.path", "model.json")

	// Image analysis defaults
	v.SetDefault("images.max_images", 5)
	v.SetDefault("images.fetch_timeout", "10s")
	v.SetDefault("images.concurrency", 4)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Model.Path == "" {
		return fmt.Errorf("model path must not be empty (set GUARDIFY_MODEL_PATH)")
	}

	if config.Images.MaxImages <= 0 {
		return fmt.Errorf("images.max_images must be positive, got: %d", config.Images.MaxImages)
	}

	if config.Images.FetchTimeout <= 0 {
		return fmt.Errorf("images.fetch_timeout must be positive, got: %s", config.Images.FetchTimeout)
	}

	if config.Images.Concurrency <= 0 {
		return fmt.Errorf("images.concurrency must be positive, got: %d", config.Images.Concurrency)
	}

	return nil
}
