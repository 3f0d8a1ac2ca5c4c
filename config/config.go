// Package config loads service settings from .env, an optional YAML file and
// the process environment, in that order of precedence (environment wins).
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultCatalogURL is the public sample catalog.
const DefaultCatalogURL = "https://pastebin.com/raw/JucRNpWs"

// Cache drivers accepted by CACHE_DRIVER.
const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
	CacheDriverNone   = "none"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all runtime settings.
type Config struct {
	Port    string        `yaml:"port"`
	AppEnv  string        `yaml:"app_env"`
	Logging LogConfig     `yaml:"logging"`
	Catalog CatalogConfig `yaml:"catalog"`
	Cache   CacheConfig   `yaml:"cache"`
	Redis   RedisConfig   `yaml:"redis"`
	Rate    RateConfig    `yaml:"rate_limit"`
	Auth    AuthConfig    `yaml:"auth"`
	Filter  FilterConfig  `yaml:"filter"`
	CORS    CORSConfig    `yaml:"cors"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// CatalogConfig points at the product source.
type CatalogConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// CacheConfig selects the catalog snapshot store.
type CacheConfig struct {
	Driver string        `yaml:"driver"`
	TTL    time.Duration `yaml:"ttl"`
}

// RedisConfig holds the Redis connection URL.
type RedisConfig struct {
	URL string `yaml:"url"`
}

// RateConfig is the fixed-window rate limit.
type RateConfig struct {
	Max    int           `yaml:"max"`
	Window time.Duration `yaml:"window"`
}

// AuthConfig configures the credential gate.
type AuthConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Username     string        `yaml:"username"`
	PasswordHash string        `yaml:"password_hash"`
	JWTSecret    string        `yaml:"jwt_secret"`
	JWTExpiry    time.Duration `yaml:"jwt_expiry"`
}

// FilterConfig tunes the word ranking.
type FilterConfig struct {
	TopWords  int  `yaml:"top_words"`
	StemWords bool `yaml:"stem_words"`
}

// CORSConfig lists allowed browser origins.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Port:    "8080",
		AppEnv:  "development",
		Logging: LogConfig{Level: "info", Format: "console"},
		Catalog: CatalogConfig{URL: DefaultCatalogURL, Timeout: 10 * time.Second},
		Cache:   CacheConfig{Driver: CacheDriverMemory, TTL: 5 * time.Minute},
		Rate:    RateConfig{Max: 100, Window: time.Minute},
		Auth:    AuthConfig{Enabled: true, JWTExpiry: 24 * time.Hour},
		Filter:  FilterConfig{TopWords: 10},
		CORS:    CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

// Load reads .env (if present), the YAML file named by CONFIG_PATH (if set)
// and then environment overrides. The result is validated.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.AppEnv = getEnv("APP_ENV", c.AppEnv)
	c.Logging.Level = getEnv("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getEnv("LOG_FORMAT", c.Logging.Format)

	c.Catalog.URL = getEnv("CATALOG_URL", c.Catalog.URL)
	c.Catalog.Timeout = getEnvDuration("CATALOG_TIMEOUT", c.Catalog.Timeout)

	c.Cache.Driver = strings.ToLower(getEnv("CACHE_DRIVER", c.Cache.Driver))
	c.Cache.TTL = getEnvDuration("CACHE_TTL", c.Cache.TTL)
	c.Redis.URL = getEnv("REDIS_URL", c.Redis.URL)

	c.Rate.Max = getEnvInt("RATE_LIMIT_MAX", c.Rate.Max)
	c.Rate.Window = getEnvDuration("RATE_LIMIT_WINDOW", c.Rate.Window)

	c.Auth.Enabled = getEnvBool("AUTH_ENABLED", c.Auth.Enabled)
	c.Auth.Username = getEnv("BASIC_AUTH_USERNAME", c.Auth.Username)
	c.Auth.PasswordHash = getEnv("BASIC_AUTH_PASSWORD_HASH", c.Auth.PasswordHash)
	c.Auth.JWTSecret = getEnv("JWT_SECRET", c.Auth.JWTSecret)
	c.Auth.JWTExpiry = getEnvDuration("JWT_EXPIRY", c.Auth.JWTExpiry)

	c.Filter.TopWords = getEnvInt("FILTER_TOP_WORDS", c.Filter.TopWords)
	c.Filter.StemWords = getEnvBool("FILTER_STEM_WORDS", c.Filter.StemWords)

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		c.CORS.AllowedOrigins = splitList(origins)
	}
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	switch c.Cache.Driver {
	case CacheDriverMemory, CacheDriverRedis, CacheDriverNone:
	default:
		return fmt.Errorf("%w: unknown cache driver %q", ErrInvalidConfig, c.Cache.Driver)
	}
	if c.Cache.Driver == CacheDriverRedis && c.Redis.URL == "" {
		return fmt.Errorf("%w: CACHE_DRIVER=redis requires REDIS_URL", ErrInvalidConfig)
	}
	if c.Catalog.URL == "" {
		return fmt.Errorf("%w: CATALOG_URL is empty", ErrInvalidConfig)
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("%w: CATALOG_TIMEOUT must be positive", ErrInvalidConfig)
	}
	if c.Rate.Max <= 0 || c.Rate.Window <= 0 {
		return fmt.Errorf("%w: rate limit max and window must be positive", ErrInvalidConfig)
	}
	if c.Filter.TopWords <= 0 {
		return fmt.Errorf("%w: FILTER_TOP_WORDS must be positive", ErrInvalidConfig)
	}
	if c.Auth.JWTExpiry <= 0 {
		return fmt.Errorf("%w: JWT_EXPIRY must be positive", ErrInvalidConfig)
	}
	return nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// WithTimeout returns a context with a 10s timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
