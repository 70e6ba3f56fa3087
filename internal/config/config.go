// Package config loads the service configuration from an optional YAML file
// and CHAINDASH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"chain-usage-dashboard/internal/dashboard/core/domain"
	"chain-usage-dashboard/internal/logging"
)

type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      logging.Config `mapstructure:"log"`
	Slider   SliderConfig   `mapstructure:"slider"`
	Engine   EngineConfig   `mapstructure:"engine"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// RedisConfig configures the row cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

func (r RedisConfig) Enabled() bool { return r.Addr != "" }

// SliderConfig anchors slider value 0 at Epoch; MaxDays is the last value.
type SliderConfig struct {
	Epoch   string `mapstructure:"epoch"`
	MaxDays int    `mapstructure:"max_days"`
	MinGap  int    `mapstructure:"min_gap"`
	Step    int    `mapstructure:"step"`
}

// EpochTime parses Epoch. Validate has already rejected bad values.
func (s SliderConfig) EpochTime() time.Time {
	t, _ := domain.ParseDay(s.Epoch)
	return t
}

type EngineConfig struct {
	HaltOnSourceError bool   `mapstructure:"halt_on_source_error"`
	DefaultMetric     string `mapstructure:"default_metric"`
	MaxSessions       int    `mapstructure:"max_sessions"`
}

var (
	ErrMissingDSN    = errors.New("database.dsn is required")
	ErrInvalidSlider = errors.New("invalid slider configuration")
)

func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return ErrMissingDSN
	}
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}

	if _, err := domain.ParseDay(c.Slider.Epoch); err != nil {
		return fmt.Errorf("%w: epoch %q", ErrInvalidSlider, c.Slider.Epoch)
	}
	if c.Slider.MaxDays <= 0 {
		return fmt.Errorf("%w: max_days must be positive", ErrInvalidSlider)
	}
	if c.Slider.MinGap < 0 || c.Slider.MinGap > c.Slider.MaxDays {
		return fmt.Errorf("%w: min_gap must be within [0, max_days]", ErrInvalidSlider)
	}
	if c.Slider.Step <= 0 {
		return fmt.Errorf("%w: step must be positive", ErrInvalidSlider)
	}

	if _, err := domain.ParseMetric(c.Engine.DefaultMetric); err != nil {
		return fmt.Errorf("engine.default_metric: %w", err)
	}
	return nil
}
