package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values for the server configuration.
const (
	DefaultHTTPPort       = 8080
	DefaultStoreTTL       = 30 * time.Minute
	DefaultStreamInterval = 5 * time.Second
	DefaultAuthHeader     = "x-api-key"
)

// Config holds the server-side configuration parsed from the `server:` section
// of the config file. Other top-level keys are ignored.
type Config struct {
	Server ServerConfig `yaml:"server"`
}

// ServerConfig holds all server-side settings.
type ServerConfig struct {
	// HTTPPort is the port the REST API, WebSocket hub and /metrics listen on
	// (default 8080).
	HTTPPort int `yaml:"http_port"`

	// Auth configures how REST and WebSocket clients authenticate.
	Auth AuthConfig `yaml:"auth"`

	// Store controls in-memory retention of submitted cuts.
	Store StoreConfig `yaml:"store"`

	// Stream controls the WebSocket snapshot broadcast.
	Stream StreamConfig `yaml:"stream"`

	// Catalog selects the range tables every evaluation uses.
	Catalog CatalogConfig `yaml:"catalog"`
}

// AuthConfig controls client authentication.
type AuthConfig struct {
	// Mode is one of: apikey | none.
	Mode string `yaml:"mode"`

	// KeyEnv is the name of the environment variable that holds the expected API key.
	// Used when Mode == "apikey".
	KeyEnv string `yaml:"key_env"`

	// Header is the HTTP header to read the key from. Defaults to "x-api-key".
	Header string `yaml:"header"`
}

// Key returns the expected API key resolved from the environment.
func (a AuthConfig) Key() string {
	if a.KeyEnv == "" {
		return ""
	}
	return os.Getenv(a.KeyEnv)
}

// EffectiveHeader returns the configured header name, or the default "x-api-key".
func (a AuthConfig) EffectiveHeader() string {
	if a.Header != "" {
		return a.Header
	}
	return DefaultAuthHeader
}

// StoreConfig controls in-memory cut retention.
type StoreConfig struct {
	// TTL is how long a cut stays in the store after its last update.
	// Default: 30m.
	TTL time.Duration `yaml:"ttl"`
}

// StreamConfig controls the WebSocket hub.
type StreamConfig struct {
	// Interval is how often the live snapshot is pushed to every client.
	// Default: 5s.
	Interval time.Duration `yaml:"interval"`
}

// CatalogConfig selects the range tables.
type CatalogConfig struct {
	// File is a YAML override file merged onto the standard tables.
	// Empty means the standard tables alone. Read once at startup.
	File string `yaml:"file"`
}

// Load reads and parses the config file at path, returning the server configuration.
// Missing fields are filled with sensible defaults before validation. An empty
// path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("server config: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("server config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("server config: %w", err)
	}

	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort: DefaultHTTPPort,
			Store: StoreConfig{
				TTL: DefaultStoreTTL,
			},
			Stream: StreamConfig{
				Interval: DefaultStreamInterval,
			},
		},
	}
}

// validate checks structural constraints on the parsed configuration.
func validate(cfg *Config) error {
	if cfg.Server.HTTPPort <= 0 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port %d is out of range [1, 65535]", cfg.Server.HTTPPort)
	}
	switch cfg.Server.Auth.Mode {
	case "apikey":
		if cfg.Server.Auth.KeyEnv == "" {
			return fmt.Errorf("server.auth.key_env is required when mode is apikey")
		}
	case "none", "":
	default:
		return fmt.Errorf("server.auth.mode %q unknown: want apikey|none", cfg.Server.Auth.Mode)
	}
	if cfg.Server.Store.TTL < 0 {
		return fmt.Errorf("server.store.ttl must not be negative")
	}
	if cfg.Server.Stream.Interval <= 0 {
		return fmt.Errorf("server.stream.interval must be positive")
	}
	return nil
}
