package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tripplanner/services"
)

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Planner  PlannerConfig  `mapstructure:"planner"`
	Geocoder GeocoderConfig `mapstructure:"geocoder"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Port         string   `mapstructure:"port"`
	GinMode      string   `mapstructure:"gin_mode"`
	FrontendURLs []string `mapstructure:"frontend_urls"`
}

// Address returns the listen address for the HTTP server.
func (s ServerConfig) Address() string {
	if strings.Contains(s.Port, ":") {
		return s.Port
	}
	return ":" + s.Port
}

// PlannerConfig bounds trip requests and seeds the random source.
// A zero seed means a time based seed.
type PlannerConfig struct {
	MinBudget     float64 `mapstructure:"min_budget"`
	MaxBudget     float64 `mapstructure:"max_budget"`
	DefaultBudget float64 `mapstructure:"default_budget"`
	MinDays       int     `mapstructure:"min_days"`
	MaxDays       int     `mapstructure:"max_days"`
	DefaultDays   int     `mapstructure:"default_days"`
	Seed          uint64  `mapstructure:"seed"`
}

// Limits converts the planner bounds for request validation.
func (p PlannerConfig) Limits() services.Limits {
	return services.Limits{
		MinBudget: p.MinBudget,
		MaxBudget: p.MaxBudget,
		MinDays:   p.MinDays,
		MaxDays:   p.MaxDays,
	}
}

type GeocoderConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type RedisConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Address    string        `mapstructure:"address"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	GeocodeTTL time.Duration `mapstructure:"geocode_ttl"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate rejects inconsistent settings.
func (c *Config) Validate() error {
	var errs []error

	p := c.Planner
	if p.MinBudget <= 0 || p.MinBudget > p.MaxBudget {
		errs = append(errs, fmt.Errorf("planner budget range [%.0f, %.0f] is invalid", p.MinBudget, p.MaxBudget))
	} else if p.DefaultBudget < p.MinBudget || p.DefaultBudget > p.MaxBudget {
		errs = append(errs, fmt.Errorf("planner default_budget %.0f outside [%.0f, %.0f]", p.DefaultBudget, p.MinBudget, p.MaxBudget))
	}
	if p.MinDays < 1 || p.MinDays > p.MaxDays {
		errs = append(errs, fmt.Errorf("planner days range [%d, %d] is invalid", p.MinDays, p.MaxDays))
	} else if p.DefaultDays < p.MinDays || p.DefaultDays > p.MaxDays {
		errs = append(errs, fmt.Errorf("planner default_days %d outside [%d, %d]", p.DefaultDays, p.MinDays, p.MaxDays))
	}

	if c.Geocoder.BaseURL == "" {
		errs = append(errs, errors.New("geocoder base_url is required"))
	}
	if c.Geocoder.Timeout <= 0 {
		errs = append(errs, errors.New("geocoder timeout must be positive"))
	}

	if c.Redis.Enabled && c.Redis.Address == "" {
		errs = append(errs, errors.New("redis address is required when redis is enabled"))
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging format %q must be json or console", c.Logging.Format))
	}

	return errors.Join(errs...)
}
