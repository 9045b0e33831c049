package api

import (
	"errors"
	"net/url"
	"time"
)

// Errors for client configuration
var (
	ErrConfigMissingBaseURL = errors.New("api: base URL is required")
	ErrConfigInvalidBaseURL = errors.New("api: base URL is not a valid URL")
)

// Config holds configuration for the seller backend API client.
type Config struct {
	// BaseURL is the backend root, e.g. "https://api.example.com"
	BaseURL string
	// Timeout is the per-request HTTP timeout
	Timeout time.Duration
	// UserAgent is sent on every request
	UserAgent string
}

// DefaultTimeout bounds every backend round trip. A pending fetch can
// always be cancelled earlier through its context.
const DefaultTimeout = 30 * time.Second

const defaultUserAgent = "sellerdash-client/1.0"

// NewConfig creates a client configuration with defaults.
func NewConfig(baseURL string) *Config {
	return &Config{
		BaseURL:   baseURL,
		Timeout:   DefaultTimeout,
		UserAgent: defaultUserAgent,
	}
}

// Validate validates the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrConfigInvalidBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	return nil
}
