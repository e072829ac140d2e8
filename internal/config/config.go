package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// Config is built once at startup and never mutated afterwards.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type DatabaseConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	Name          string `mapstructure:"name"`
	SSLMode       string `mapstructure:"sslmode"`
	MigrationsDir string `mapstructure:"migrations_dir"`
}

type JWTConfig struct {
	Secret        string `mapstructure:"secret"`
	ExpiryMinutes int    `mapstructure:"expiry_minutes"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Expiry returns the access token lifetime.
func (c JWTConfig) Expiry() time.Duration {
	return time.Duration(c.ExpiryMinutes) * time.Minute
}

// LoadConfig reads config/config.yml through viper and overlays SGHSS_*
// environment variables via envconfig.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeout_seconds", 30)
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.migrations_dir", "migrations")
	viper.SetDefault("jwt.expiry_minutes", 60)
	viper.SetDefault("log.level", "info")

	var config Config
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("sghss", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment overrides: %w", err)
	}

	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if config.JWT.ExpiryMinutes <= 0 {
		return nil, fmt.Errorf("jwt expiry must be positive")
	}

	return &config, nil
}
