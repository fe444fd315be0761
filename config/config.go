/*
config.go - Process configuration for the holiday server and export tool

PURPOSE:
  Collects runtime settings from, in increasing precedence:
  1. Built-in defaults
  2. An optional YAML file (-config)
  3. An optional .env file (-envfile), loaded into the environment
  4. Environment variables
  5. Command-line flags (applied by the caller after Load)

ENVIRONMENT:
  HOST, PORT               Listener address
  LOG_LEVEL, LOG_FORMAT    Logger (debug|info|warn|error, json|text)
  CORS_ALLOWED_ORIGINS     Comma-separated origins
  SQLITE_PATH              Export target database

SEE ALSO:
  - log.go: Logger construction
  - cmd/server/main.go: Flag overrides
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTS
// =============================================================================

// Config is the top-level configuration.
type Config struct {
	Server  Server  `yaml:"server"`
	CORS    CORS    `yaml:"cors"`
	Logging Logging `yaml:"logging"`
	Export  Export  `yaml:"export"`
}

// Server holds network listener configuration.
type Server struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// Addr returns the listen address in host:port form.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CORS configures cross-origin access to the API.
type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Logging configures the application logger.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Export configures the SQLite snapshot written by feriados-export.
type Export struct {
	SQLitePath string `yaml:"sqlite_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: Server{
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		CORS: CORS{
			AllowedOrigins: []string{"*"},
		},
		Logging: Logging{
			Level:  "info",
			Format: "json",
		},
		Export: Export{
			SQLitePath: "feriados.db",
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty or the file does not exist), the .env file at envPath
// (same rules) and the process environment.
func Load(path, envPath string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envPath, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides checks well-known environment variables and overrides the
// corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p <= 0 {
			return fmt.Errorf("invalid PORT environment variable value: %q", v)
		}
		cfg.Server.Port = p
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORS.AllowedOrigins = origins
	}

	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Export.SQLitePath = v
	}

	return nil
}
