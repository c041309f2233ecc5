// Package config loads settings from an optional YAML file, a .env file
// and COFFEE_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "COFFEE"

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPAddr    string
	Storage     string
	DatabaseURL string
	RedisAddr   string
	RecipesFile string

	Auth      AuthConfig
	RateLimit RateLimitConfig
	Alert     AlertConfig
	Log       LogConfig
}

type AuthConfig struct {
	JWTSecret     string
	AdminUser     string
	AdminPassword string
	TokenTTL      time.Duration
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type AlertConfig struct {
	LowStockThreshold int
	From              string
	To                string
	SMTPServer        string
	SMTPPort          string
	SMTPUser          string
	SMTPPassword      string
	SMTPAuthDisabled  bool
}

type LogConfig struct {
	Level       string
	Development bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("storage", StorageMemory)
	v.SetDefault("database.url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("recipes.file", "")
	v.SetDefault("auth.jwt_secret", "super-secret-key")
	v.SetDefault("auth.admin_user", "admin")
	v.SetDefault("auth.admin_password", "")
	v.SetDefault("auth.token_ttl", 15*time.Minute)
	v.SetDefault("ratelimit.rps", 1.0)
	v.SetDefault("ratelimit.burst", 3)
	v.SetDefault("alert.low_stock_threshold", 3)
	v.SetDefault("alert.from", "")
	v.SetDefault("alert.to", "")
	v.SetDefault("smtp.server", "")
	v.SetDefault("smtp.port", "587")
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.auth_disabled", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads the configuration. path may be empty, in which case only
// defaults, .env and the environment are used.
func Load(path string) (*Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		HTTPAddr:    v.GetString("http.addr"),
		Storage:     strings.ToLower(v.GetString("storage")),
		DatabaseURL: v.GetString("database.url"),
		RedisAddr:   v.GetString("redis.addr"),
		RecipesFile: v.GetString("recipes.file"),
		Auth: AuthConfig{
			JWTSecret:     v.GetString("auth.jwt_secret"),
			AdminUser:     v.GetString("auth.admin_user"),
			AdminPassword: v.GetString("auth.admin_password"),
			TokenTTL:      v.GetDuration("auth.token_ttl"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("ratelimit.rps"),
			Burst: v.GetInt("ratelimit.burst"),
		},
		Alert: AlertConfig{
			LowStockThreshold: v.GetInt("alert.low_stock_threshold"),
			From:              v.GetString("alert.from"),
			To:                v.GetString("alert.to"),
			SMTPServer:        v.GetString("smtp.server"),
			SMTPPort:          v.GetString("smtp.port"),
			SMTPUser:          v.GetString("smtp.user"),
			SMTPPassword:      v.GetString("smtp.password"),
			SMTPAuthDisabled:  v.GetBool("smtp.auth_disabled"),
		},
		Log: LogConfig{
			Level:       v.GetString("log.level"),
			Development: v.GetBool("log.development"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("database.url is required when storage is postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage must be %q or %q, got %q", StorageMemory, StoragePostgres, c.Storage))
	}
	if c.RateLimit.RPS <= 0 {
		errs = append(errs, errors.New("ratelimit.rps must be greater than zero"))
	}
	if c.RateLimit.Burst < 1 {
		errs = append(errs, errors.New("ratelimit.burst must be at least 1"))
	}
	if c.Alert.LowStockThreshold < 0 {
		errs = append(errs, errors.New("alert.low_stock_threshold cannot be negative"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	return errors.Join(errs...)
}
