package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	SeatsAero SeatsAeroConfig `yaml:"seats_aero"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

type SeatsAeroConfig struct {
	Token          string `yaml:"token" env:"SEATS_AERO_PARTNER_TOKEN"`
	BaseURL        string `yaml:"base_url" env:"SEATS_AERO_BASE_URL" env-default:"https://seats.aero/partnerapi"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"SEATS_AERO_TIMEOUT_SECONDS" env-default:"30"`
}

type ServerConfig struct {
	// Transport selects how tool invocations reach the server:
	// "stdio" (default) or "http" (streamable HTTP).
	Transport string `yaml:"transport" env:"MCP_TRANSPORT" env-default:"stdio"`
	HTTPAddr  string `yaml:"http_addr" env:"MCP_HTTP_ADDR" env-default:":8080"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// ConfigError reports configuration the process cannot serve without.
// It is fatal at startup, never a per-call error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Field, e.Reason)
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	// Read config.yaml if present, then override with envs.
	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		// If file doesn't exist, just read env vars
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks the parts of the configuration the server cannot run
// without. Called once at startup before any tool is registered.
func (c *Config) Validate() error {
	if c.SeatsAero.Token == "" {
		return &ConfigError{
			Field:  "SEATS_AERO_PARTNER_TOKEN",
			Reason: "set it to your Seats.aero partner API key",
		}
	}
	if c.SeatsAero.TimeoutSeconds <= 0 {
		return &ConfigError{
			Field:  "SEATS_AERO_TIMEOUT_SECONDS",
			Reason: "must be a positive number of seconds",
		}
	}
	switch c.Server.Transport {
	case "stdio", "http":
	default:
		return &ConfigError{
			Field:  "MCP_TRANSPORT",
			Reason: fmt.Sprintf("unsupported transport %q, use stdio or http", c.Server.Transport),
		}
	}
	return nil
}
