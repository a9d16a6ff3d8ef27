// Package config loads server settings from defaults, an optional YAML file
// and MUN_* environment variables, in that order of precedence.
package config

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "mun"

type ctxKey string

const configContextKey ctxKey = "mun.config"

// WithContext stores cfg on ctx
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configContextKey, cfg)
}

// FromContext returns the config stored by WithContext, or nil
func FromContext(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configContextKey).(*Config)
	if !ok {
		return nil
	}
	return cfg
}

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	BindAddr         string        `yaml:"bindAddr"         split_words:"true"`
	Port             uint          `yaml:"port"`
	PublicURL        string        `yaml:"publicUrl"        envconfig:"PUBLIC_URL"`
	CommitteesFile   string        `yaml:"committeesFile"   split_words:"true"`
	DefaultCommittee string        `yaml:"defaultCommittee" split_words:"true"`
	TickInterval     time.Duration `yaml:"tickInterval"     split_words:"true"`
	SSEBufferSize    int           `yaml:"sseBufferSize"    envconfig:"SSE_BUFFER_SIZE"`
	SSETimeout       time.Duration `yaml:"sseTimeout"       envconfig:"SSE_TIMEOUT"`
	MetricsEnabled   bool          `yaml:"metricsEnabled"   split_words:"true"`
	Debug            bool          `yaml:"debug"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		BindAddr:         "",
		Port:             8080,
		PublicURL:        "http://localhost:8080",
		DefaultCommittee: "UNSC",
		TickInterval:     time.Second,
		SSEBufferSize:    10,
		SSETimeout:       time.Second,
		MetricsEnabled:   true,
	}
}

// LoadConfig builds the effective configuration. configFile may be empty.
func LoadConfig(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with
func (c *Config) Validate() error {
	if c.Port == 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive", ErrInvalidConfig)
	}
	if c.SSEBufferSize < 1 {
		return fmt.Errorf("%w: sse buffer size must be at least 1", ErrInvalidConfig)
	}
	if c.SSETimeout <= 0 {
		return fmt.Errorf("%w: sse timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// ListenAddr is the host:port the HTTP server binds
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.BindAddr, strconv.FormatUint(uint64(c.Port), 10))
}
