// Package config provides configuration management for linkedin-mcp.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// CredentialEnv is the environment variable carrying the li_at session
// cookie. It is the only place the credential may come from: keeping it
// out of settings.yaml keeps the secret off disk.
const CredentialEnv = "LINKEDIN_SESSION_COOKIE"

// CSRFTokenEnv optionally carries a captured JSESSIONID value. When unset
// a synthetic token is generated per process.
const CSRFTokenEnv = "LINKEDIN_CSRF_TOKEN"

// Defaults for tunables not set in settings.yaml.
const (
	DefaultBaseURL           = "https://www.linkedin.com"
	DefaultRequestTimeoutSec = 15
	DefaultMaxConcurrent     = 4
	DefaultSearchLimit       = 10
	DefaultConnectionsPage   = 20
	DefaultFeedLimit         = 10
	MaxFeedLimit             = 50
	DefaultUserAgent         = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"
)

// Config holds the runtime settings for the server.
type Config struct {
	// BaseURL is the LinkedIn origin. Overridable for fixture servers.
	BaseURL string `yaml:"base_url"`
	// RequestTimeoutSec bounds every outbound call.
	RequestTimeoutSec int `yaml:"request_timeout_sec"`
	// MaxConcurrent bounds in-flight LinkedIn requests across tool calls.
	MaxConcurrent int `yaml:"max_concurrent"`
	// SearchLimit is the default result count for search tools.
	SearchLimit int `yaml:"search_limit"`
	// ConnectionsPage is the page size for the connections listing.
	ConnectionsPage int `yaml:"connections_page"`
	// FeedLimit is the default feed item count.
	FeedLimit int `yaml:"feed_limit"`
	// UserAgent is sent on every outbound request.
	UserAgent string `yaml:"user_agent"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseURL:           DefaultBaseURL,
		RequestTimeoutSec: DefaultRequestTimeoutSec,
		MaxConcurrent:     DefaultMaxConcurrent,
		SearchLimit:       DefaultSearchLimit,
		ConnectionsPage:   DefaultConnectionsPage,
		FeedLimit:         DefaultFeedLimit,
		UserAgent:         DefaultUserAgent,
	}
}

// DataDir returns the per-user data directory.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".linkedin-mcp")
}

// SettingsPath returns the settings file location.
func SettingsPath() string {
	return filepath.Join(DataDir(), "settings.yaml")
}

// Load reads settings.yaml and fills gaps with defaults. A missing file
// is not an error; a malformed one is.
func Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	cfg.applyBounds()
	return cfg, nil
}

// applyBounds restores defaults for zero or out-of-range values so a
// sparse settings file never produces an unbounded client.
func (c *Config) applyBounds() {
	d := Default()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.RequestTimeoutSec <= 0 {
		c.RequestTimeoutSec = d.RequestTimeoutSec
	}
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = d.MaxConcurrent
	}
	if c.SearchLimit <= 0 {
		c.SearchLimit = d.SearchLimit
	}
	if c.ConnectionsPage <= 0 {
		c.ConnectionsPage = d.ConnectionsPage
	}
	if c.FeedLimit <= 0 || c.FeedLimit > MaxFeedLimit {
		c.FeedLimit = d.FeedLimit
	}
	if c.UserAgent == "" {
		c.UserAgent = d.UserAgent
	}
}

// RequestTimeout returns the per-call deadline as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

// Credential reads the session cookie from the environment. An empty
// value means the server runs unconfigured and every tool call reports
// not_configured.
func Credential() string {
	return os.Getenv(CredentialEnv)
}

// CSRFToken reads the optional captured JSESSIONID from the environment.
func CSRFToken() string {
	return os.Getenv(CSRFTokenEnv)
}

// EnsureDataDir creates the data directory if it does not exist.
func EnsureDataDir() error {
	return os.MkdirAll(DataDir(), 0o755)
}
