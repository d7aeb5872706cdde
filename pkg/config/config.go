// pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Environment variables read by ApplyEnv.
const (
	EnvConfigPath  = "MOVIEAPI_CONFIG"
	EnvHost        = "MOVIEAPI_HOST"
	EnvPort        = "MOVIEAPI_PORT"
	EnvLogLevel    = "MOVIEAPI_LOG_LEVEL"
	EnvCatalogPath = "MOVIEAPI_CATALOG"
	EnvDatabaseDSN = "MOVIEAPI_DATABASE_DSN"
)

const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 5000
)

// Config holds the service configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
	Catalog CatalogConfig `toml:"catalog"`
}

// ServerConfig holds the HTTP listener settings. Timeouts are in seconds;
// zero means "use the default". A negative request_timeout_sec turns the
// per-request timeout off.
type ServerConfig struct {
	Host               string `toml:"host"`
	Port               int    `toml:"port"`
	ReadTimeoutSec     int    `toml:"read_timeout_sec"`
	WriteTimeoutSec    int    `toml:"write_timeout_sec"`
	IdleTimeoutSec     int    `toml:"idle_timeout_sec"`
	RequestTimeoutSec  int    `toml:"request_timeout_sec"`
	ShutdownTimeoutSec int    `toml:"shutdown_timeout_sec"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// CatalogConfig selects where the movie catalogue is seeded from.
// DatabaseDSN wins over Path; with neither set the built-in list is used.
type CatalogConfig struct {
	Path        string `toml:"path"`
	DatabaseDSN string `toml:"database_dsn"`
	Table       string `toml:"table"`
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads path if it exists, applies env overrides and fills defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load configuration from %s: %w", path, err)
		}
		cfg = &Config{}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyEnv overrides fields from the environment. lookup is os.LookupEnv in
// production and a map in tests.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvHost); ok && v != "" {
		c.Server.Host = v
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		c.Server.Port = p
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvCatalogPath); ok && v != "" {
		c.Catalog.Path = v
	}
	if v, ok := lookup(EnvDatabaseDSN); ok && v != "" {
		c.Catalog.DatabaseDSN = v
	}
	return nil
}

// ApplyDefaults fills every unset field.
func (c *Config) ApplyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ReadTimeoutSec == 0 {
		c.Server.ReadTimeoutSec = 15
	}
	if c.Server.WriteTimeoutSec == 0 {
		c.Server.WriteTimeoutSec = 15
	}
	if c.Server.IdleTimeoutSec == 0 {
		c.Server.IdleTimeoutSec = 60
	}
	if c.Server.RequestTimeoutSec == 0 {
		c.Server.RequestTimeoutSec = 60
	}
	if c.Server.ShutdownTimeoutSec == 0 {
		c.Server.ShutdownTimeoutSec = 15
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate rejects values the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	return nil
}

// Addr is the listen address, e.g. "0.0.0.0:5000".
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s ServerConfig) ReadTimeout() time.Duration { return seconds(s.ReadTimeoutSec) }
func (s ServerConfig) WriteTimeout() time.Duration { return seconds(s.WriteTimeoutSec) }
func (s ServerConfig) IdleTimeout() time.Duration { return seconds(s.IdleTimeoutSec) }
func (s ServerConfig) RequestTimeout() time.Duration { return seconds(s.RequestTimeoutSec) }
func (s ServerConfig) ShutdownTimeout() time.Duration { return seconds(s.ShutdownTimeoutSec) }

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
