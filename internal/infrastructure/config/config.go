package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration
type Config struct {
	App     AppConfig
	Backend BackendConfig
	Session SessionConfig
	Log     LogConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// BackendConfig holds the seller backend API settings
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds session token persistence settings
type SessionConfig struct {
	Backend   string // file, redis, memory
	TokenPath string // file backend: token file path ("" = per-user default)
	RedisAddr string
	RedisPass string
	RedisDB   int
	RedisKey  string
	RedisTTL  time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with SELLERDASH_ prefix (e.g., SELLERDASH_BACKEND_BASE_URL)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/sellerdash")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("SELLERDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Backend: BackendConfig{
			BaseURL: v.GetString("backend.base_url"),
			Timeout: v.GetDuration("backend.timeout"),
		},
		Session: SessionConfig{
			Backend:   v.GetString("session.backend"),
			TokenPath: v.GetString("session.token_path"),
			RedisAddr: v.GetString("session.redis_addr"),
			RedisPass: v.GetString("session.redis_password"),
			RedisDB:   v.GetInt("session.redis_db"),
			RedisKey:  v.GetString("session.redis_key"),
			RedisTTL:  v.GetDuration("session.redis_ttl"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "sellerdash"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Backend.Timeout == 0 {
		cfg.Backend.Timeout = 30 * time.Second
	}
	if cfg.Session.Backend == "" {
		cfg.Session.Backend = "file"
	}
	if cfg.Session.RedisAddr == "" {
		cfg.Session.RedisAddr = "localhost:6379"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend.base_url must be a valid URL, got %q", c.Backend.BaseURL)
	}
	switch c.Session.Backend {
	case "file", "redis", "memory":
	default:
		return fmt.Errorf("session.backend must be one of file, redis, memory, got %q", c.Session.Backend)
	}
	if c.App.Env == "production" && u.Scheme != "https" {
		return fmt.Errorf("backend.base_url must use https in production")
	}
	return nil
}
