package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Bounds holds the partitioning feasibility bounds, mapstructure-tagged so
// they can be populated straight from a YAML document or environment
// variables.
type Bounds struct {
	Memory  int64 `mapstructure:"memory"`
	Cores   int64 `mapstructure:"cores"`
	Latency int64 `mapstructure:"latency"`
	Delay   int64 `mapstructure:"delay"`
	Unit    int64 `mapstructure:"unit"`
}

// Config is svcpart's full runtime configuration.
type Config struct {
	Bounds  Bounds `mapstructure:"bounds"`
	Log     Log    `mapstructure:"log"`
	Metrics Metrics `mapstructure:"metrics"`
}

// Log configures internal/telemetry's logger.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// Metrics configures the Prometheus exporter.
type Metrics struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// Load reads configuration from configPath (if non-empty) layered under
// defaults, then applies SVCPART_-prefixed environment overrides.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("config: reading %s: %w", configPath, err)
			}
		}
	}

	v.SetEnvPrefix("svcpart")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("bounds.memory", 0)
	v.SetDefault("bounds.cores", 0)
	v.SetDefault("bounds.latency", 0)
	v.SetDefault("bounds.delay", 1)
	v.SetDefault("bounds.unit", 100)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.addr", ":9090")
}

// Validate rejects configurations the rest of svcpart cannot act on.
func (c *Config) Validate() error {
	if c.Bounds.Delay <= 0 {
		return fmt.Errorf("config: bounds.delay must be positive, got %d", c.Bounds.Delay)
	}
	if c.Bounds.Unit <= 0 {
		return fmt.Errorf("config: bounds.unit must be positive, got %d", c.Bounds.Unit)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format must be json or console, got %q", c.Log.Format)
	}
	return nil
}
