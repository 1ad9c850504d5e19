package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds the HTTP adapter settings
type ServerConfig struct {
	Port         string        `env:"PENSION_PORT" envDefault:"8080"`
	CatalogPath  string        `env:"PENSION_CATALOG_PATH"`
	LogMode      string        `env:"PENSION_LOG_MODE" envDefault:"production"`
	ReadTimeout  time.Duration `env:"PENSION_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"PENSION_WRITE_TIMEOUT" envDefault:"10s"`
}

// Addr is the listen address for Port
func (c ServerConfig) Addr() string {
	return ":" + c.Port
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServerConfig reads ServerConfig from the environment
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}
