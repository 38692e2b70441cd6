// Package config reads the binaries' configuration from environment
// variables, with defaults suitable for local use. Binaries load a .env
// file first via godotenv.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Output OutputConfig
	Schema SchemaConfig
}

// ServerConfig holds preview server settings
type ServerConfig struct {
	Port string
}

// OutputConfig holds file system output paths
type OutputConfig struct {
	TemplateDir string
}

// SchemaConfig holds the card schema location
type SchemaConfig struct {
	Path string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("CARDS_PORT", "8080"),
		},
		Output: OutputConfig{
			TemplateDir: getEnv("CARDS_TEMPLATE_DIR", "templates"),
		},
		Schema: SchemaConfig{
			Path: getEnv("CARDS_SCHEMA_FILE", "schema/v0.0.1/network_card.schema.json"),
		},
	}

	if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		return nil, fmt.Errorf("invalid CARDS_PORT %q: %w", cfg.Server.Port, err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
