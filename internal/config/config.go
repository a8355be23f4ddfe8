// Package config loads environment variables into structured config.
//
// Variables use the SHOP_ prefix and dots for nesting, e.g.
// SHOP_DATABASE.HOST maps to Config.Database.Host. A .env file is
// picked up automatically when present.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Auth     AuthConfig     `koanf:"auth" validate:"required"`
	Redis    RedisConfig    `koanf:"redis"`
	Kafka    KafkaConfig    `koanf:"kafka"`
}

type ServerConfig struct {
	Port string `koanf:"port"`
}

type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     string `koanf:"port" validate:"required"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password"`
	Name     string `koanf:"name" validate:"required"`
}

// AuthConfig holds the token signing secret and lifetime. The secret has
// no default; startup fails without one.
type AuthConfig struct {
	SecretKey       string `koanf:"secret_key" validate:"required"`
	TokenTTLMinutes int    `koanf:"token_ttl_minutes"`
}

// RedisConfig is optional. An empty address disables the session cache.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// KafkaConfig is optional. Empty brokers disable order event publishing.
type KafkaConfig struct {
	Brokers string `koanf:"brokers"`
	Topic   string `koanf:"topic"`
}

// Load reads SHOP_-prefixed environment variables, applies defaults for
// the optional fields, and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider("SHOP_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SHOP_"))
	}), nil)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8000"
	}
	if cfg.Auth.TokenTTLMinutes <= 0 {
		cfg.Auth.TokenTTLMinutes = 30
	}
	if cfg.Kafka.Topic == "" {
		cfg.Kafka.Topic = "order-topic"
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// TokenTTL is the configured session token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTLMinutes) * time.Minute
}

// DSN builds the MySQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", d.User, d.Password, d.Host, d.Port, d.Name)
}
