package config

import "time"

// Config holds broker configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	AdminSecret       string        `mapstructure:"admin_secret" yaml:"admin_secret"`
	AdminSecretHash   string        `mapstructure:"admin_secret_hash" yaml:"admin_secret_hash,omitempty"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Default returns configuration with documented defaults. The default
// admin secret matches the development default of the original board;
// production deployments override it via COUNTER_ADMIN_SECRET or set
// admin_secret_hash instead.
func Default() Config {
	return Config{
		Addr:              ":8080",
		AdminSecret:       "admin123",
		LogLevel:          "info",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.AdminSecret != "" {
		c.AdminSecret = other.AdminSecret
	}
	if other.AdminSecretHash != "" {
		c.AdminSecretHash = other.AdminSecretHash
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
}
