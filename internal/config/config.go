// Package config centralizes all application configuration into typed structs.
//
// Go Learning Note — Configuration Management:
// Defaults live in NewDefaultConfig as plain struct literals. Load overlays
// environment variables on top (a .env file is read first if present, via
// godotenv), and Validate checks the result with go-playground/validator
// struct tags. Typed structs rather than raw strings give compile-time
// safety everywhere the config is read.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// History backends.
const (
	HistoryMemory   = "memory"
	HistoryPostgres = "postgres"
	HistoryRedis    = "redis"
	HistoryNone     = "none"
)

// Config is the top-level configuration container.
//
// Go Learning Note — Struct Composition:
// Config "has a" ServerConfig, GridConfig and so on. Each component receives
// only the sub-struct it needs, which keeps constructors honest about their
// dependencies.
type Config struct {
	Env        string           `validate:"required"`
	Server     ServerConfig
	Grid       GridConfig
	Dictionary DictionaryConfig
	History    HistoryConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig
}

// ServerConfig holds HTTP server settings.
//
// Go Learning Note — time.Duration:
// Timeouts are time.Duration, parsed from strings like "10s" or "500ms", so
// there is never any doubt about the unit.
type ServerConfig struct {
	Addr            string        `validate:"required"`
	ReadTimeout     time.Duration `validate:"gt=0"`
	WriteTimeout    time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// GridConfig sizes the cell grid. Changing either value renumbers every cell.
type GridConfig struct {
	ResolutionMeters  float64 `validate:"gt=0"`
	EarthRadiusMeters float64 `validate:"gt=0"`
}

// DictionaryConfig selects the word list. When Path is empty, Size generated
// words are used instead.
type DictionaryConfig struct {
	Path string
	Size int `validate:"min=1,max=343000"`
}

// HistoryConfig selects where conversions are logged.
type HistoryConfig struct {
	Backend     string `validate:"oneof=memory postgres redis none"`
	Capacity    int    `validate:"min=1"`
	DatabaseURL string `validate:"required_if=Backend postgres"`
	RedisURL    string `validate:"required_if=Backend redis"`
}

// RateLimitConfig is a per-client token bucket. RequestsPerSecond of 0
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `validate:"gte=0"`
	Burst             int     `validate:"gte=0"`
}

// CORSConfig lists allowed origins. An empty list or "*" allows all.
type CORSConfig struct {
	Origins []string
}

// AllowAll reports whether every origin is allowed.
func (c CORSConfig) AllowAll() bool {
	if len(c.Origins) == 0 {
		return true
	}
	for _, o := range c.Origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// NewDefaultConfig returns a Config populated with defaults: 3 m cells on a
// 6,371 km sphere, 40,000 generated words and in-memory history.
func NewDefaultConfig() *Config {
	return &Config{
		Env: "development",
		Server: ServerConfig{
			Addr:            ":8000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Grid: GridConfig{
			ResolutionMeters:  3.0,
			EarthRadiusMeters: 6371000.0,
		},
		Dictionary: DictionaryConfig{
			Size: 40000,
		},
		History: HistoryConfig{
			Backend:  HistoryMemory,
			Capacity: 1000,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 20,
			Burst:             40,
		},
	}
}

// Load reads .env (if present) and the process environment on top of the
// defaults, then validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := NewDefaultConfig()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks the struct tags. The wrapped error is a
// validator.ValidationErrors listing every violated field.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

type lookupFunc func(key string) (string, bool)

// applyEnv overlays set variables on c. Unset variables keep their default;
// set but malformed numbers and durations are errors rather than silently
// falling back.
func (c *Config) applyEnv(lookup lookupFunc) error {
	var errs []string
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok {
			d, err := time.ParseDuration(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", key, err))
				return
			}
			*dst = d
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := lookup(key); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", key, err))
				return
			}
			*dst = f
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", key, err))
				return
			}
			*dst = n
		}
	}

	str("APP_ENV", &c.Env)
	str("HTTP_ADDR", &c.Server.Addr)
	dur("HTTP_READ_TIMEOUT", &c.Server.ReadTimeout)
	dur("HTTP_WRITE_TIMEOUT", &c.Server.WriteTimeout)
	dur("HTTP_SHUTDOWN_TIMEOUT", &c.Server.ShutdownTimeout)
	float("GRID_RESOLUTION_METERS", &c.Grid.ResolutionMeters)
	float("EARTH_RADIUS_METERS", &c.Grid.EarthRadiusMeters)
	str("DICTIONARY_PATH", &c.Dictionary.Path)
	integer("DICTIONARY_SIZE", &c.Dictionary.Size)
	str("HISTORY_BACKEND", &c.History.Backend)
	c.History.Backend = strings.ToLower(c.History.Backend)
	integer("HISTORY_CAPACITY", &c.History.Capacity)
	str("DATABASE_URL", &c.History.DatabaseURL)
	str("REDIS_URL", &c.History.RedisURL)
	float("RATE_LIMIT_RPS", &c.RateLimit.RequestsPerSecond)
	integer("RATE_LIMIT_BURST", &c.RateLimit.Burst)
	if v, ok := lookup("CORS_ORIGINS"); ok {
		c.CORS.Origins = splitCSV(v)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}
