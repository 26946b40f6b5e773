package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "CATALOG_"

// Config holds all configuration for the catalog service.
type Config struct {
	Service  ServiceConfig  `koanf:"service"`
	Database DatabaseConfig `koanf:"database"`
	NATS     NATSConfig     `koanf:"nats"`
	Storage  StorageConfig  `koanf:"storage"`
	Logger   LoggerConfig   `koanf:"logger"`
}

// ServiceConfig contains service metadata.
type ServiceConfig struct {
	Name            string        `koanf:"name"`
	Environment     string        `koanf:"environment"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	User         string        `koanf:"user"`
	Password     string        `koanf:"password"`
	Database     string        `koanf:"database"`
	SSLMode      string        `koanf:"ssl_mode"`
	MaxOpenConns int           `koanf:"max_open_conns"`
	MaxIdleConns int           `koanf:"max_idle_conns"`
	MaxLifetime  time.Duration `koanf:"max_lifetime"`
}

// DSN builds a postgres connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// NATSConfig contains NATS/JetStream settings.
type NATSConfig struct {
	URL           string        `koanf:"url"`
	Stream        string        `koanf:"stream"`
	EncodedQueue  string        `koanf:"encoded_queue"`
	MaxReconnect  int           `koanf:"max_reconnect"`
	ReconnectWait time.Duration `koanf:"reconnect_wait"`
}

// StorageConfig contains media blob storage settings.
type StorageConfig struct {
	Type   string `koanf:"type"` // memory or s3
	Bucket string `koanf:"bucket"`
	Prefix string `koanf:"prefix"`
	Region string `koanf:"region"`
}

// LoggerConfig contains logging settings.
type LoggerConfig struct {
	Level       string `koanf:"level"`
	Development bool   `koanf:"development"`
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			Name:            "catalog",
			Environment:     "development",
			ShutdownTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Host:         "localhost",
			Port:         5432,
			User:         "catalog",
			Password:     "catalog",
			Database:     "catalog",
			SSLMode:      "disable",
			MaxOpenConns: 25,
			MaxIdleConns: 5,
			MaxLifetime:  5 * time.Minute,
		},
		NATS: NATSConfig{
			URL:           "nats://localhost:4222",
			Stream:        "CATALOG",
			EncodedQueue:  "catalog.videos.encoded",
			MaxReconnect:  10,
			ReconnectWait: 2 * time.Second,
		},
		Storage: StorageConfig{
			Type:   "s3",
			Bucket: "catalog-media",
			Region: "us-east-1",
		},
		Logger: LoggerConfig{
			Level:       "info",
			Development: false,
		},
	}
}

// Load resolves configuration in precedence order: struct defaults, then an
// optional yaml file, then CATALOG_* environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if err := k.Load(structs.Provider(cfg, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
		}
	}

	// CATALOG_DATABASE_HOST becomes database.host
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, envPrefix), "_", "."))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
