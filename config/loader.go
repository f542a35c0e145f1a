package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var defaults = map[string]interface{}{
	"server.port":          "8080",
	"server.gin_mode":      "debug",
	"server.frontend_urls": []string{"http://localhost:5173", "http://localhost:3000"},

	"planner.min_budget":     1000.0,
	"planner.max_budget":     500000.0,
	"planner.default_budget": 40000.0,
	"planner.min_days":       1,
	"planner.max_days":       14,
	"planner.default_days":   5,
	"planner.seed":           0,

	"geocoder.base_url":   "https://nominatim.openstreetmap.org",
	"geocoder.user_agent": "student_travel_planner",
	"geocoder.timeout":    10 * time.Second,

	"redis.enabled":     false,
	"redis.address":     "localhost:6379",
	"redis.password":    "",
	"redis.db":          0,
	"redis.geocode_ttl": 24 * time.Hour,
	"redis.session_ttl": 2 * time.Hour,

	"logging.level":  "info",
	"logging.format": "console",
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence. An empty path searches
// ./configs and the working directory for config.yaml.
func Load(path string) (*Config, error) {
	// .env is optional; real env vars win over it.
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// PLANNER_MAX_DAYS overrides planner.max_days
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
