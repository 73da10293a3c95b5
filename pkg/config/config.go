// Package config loads Steadfast client settings from a TOML file, a .env
// file and the environment.
//
// # Precedence
//
// Later sources override earlier ones:
//
//  1. [Default] values
//  2. the TOML file (missing file is not an error)
//  3. .env in the working directory (never overrides real environment variables)
//  4. STEADFAST_* environment variables
//
// # File format
//
//	api_key    = "..."
//	secret_key = "..."
//	base_url   = "https://api.steadfast.io/v1"
//	timeout    = "30s"
//	max_retries = 3
//	retry_backoff = "300ms"
//	log_level  = "info"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/steadfast/pkg/api"
	"github.com/matzehuels/steadfast/pkg/errors"
	"github.com/matzehuels/steadfast/pkg/httputil"
)

// Environment variable names.
const (
	EnvAPIKey     = "STEADFAST_API_KEY"
	EnvSecretKey  = "STEADFAST_SECRET_KEY"
	EnvBaseURL    = "STEADFAST_BASE_URL"
	EnvTimeout    = "STEADFAST_TIMEOUT"
	EnvMaxRetries = "STEADFAST_MAX_RETRIES"
)

const appName = "steadfast"

// Duration is a time.Duration written as a Go duration string ("30s").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds client settings.
type Config struct {
	APIKey       string   `toml:"api_key"`
	SecretKey    string   `toml:"secret_key"`
	BaseURL      string   `toml:"base_url"`
	Timeout      Duration `toml:"timeout"`
	MaxRetries   int      `toml:"max_retries"`
	RetryBackoff Duration `toml:"retry_backoff"`
	LogLevel     string   `toml:"log_level"`
}

// Default returns the production endpoint with the default timeout and
// retry policy and no credentials.
func Default() Config {
	return Config{
		BaseURL:      api.DefaultBaseURL,
		Timeout:      Duration{api.DefaultTimeout},
		MaxRetries:   httputil.DefaultMaxRetries,
		RetryBackoff: Duration{httputil.DefaultBackoff},
		LogLevel:     "info",
	}
}

// Path returns the default config file location using the XDG standard
// (~/.config/steadfast/config.toml).
func Path() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads configuration from path (or [Path] when empty), then .env,
// then the environment. It does not validate; call [Config.Validate].
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			if !os.IsNotExist(err) || explicit {
				return cfg, errors.Configuration("read %s: %v", path, err)
			}
		}
	}

	// .env is optional; a missing file is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, errors.Configuration("read .env: %v", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	_, err := toml.DecodeFile(path, c)
	return err
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvSecretKey); v != "" {
		c.SecretKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return errors.Configuration("%s: invalid duration %q", EnvTimeout, v)
		}
		c.Timeout = Duration{d}
	}
	if v := os.Getenv(EnvMaxRetries); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Configuration("%s: invalid integer %q", EnvMaxRetries, v)
		}
		c.MaxRetries = n
	}
	return nil
}

// parseTimeout accepts a Go duration ("45s") or a bare number of seconds ("45").
func parseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	return time.ParseDuration(s)
}

// Validate reports missing credentials and out-of-range numbers.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return errors.Configuration("API key is required (set %s or api_key)", EnvAPIKey)
	}
	if strings.TrimSpace(c.SecretKey) == "" {
		return errors.Configuration("secret key is required (set %s or secret_key)", EnvSecretKey)
	}
	if c.Timeout.Duration < 0 {
		return errors.Configuration("timeout cannot be negative")
	}
	if c.MaxRetries < 0 {
		return errors.Configuration("max_retries cannot be negative")
	}
	if c.RetryBackoff.Duration < 0 {
		return errors.Configuration("retry_backoff cannot be negative")
	}
	return nil
}

// String renders c with credentials masked.
func (c Config) String() string {
	return fmt.Sprintf("base_url=%s timeout=%s max_retries=%d retry_backoff=%s api_key=%s secret_key=%s",
		c.BaseURL, c.Timeout.Duration, c.MaxRetries, c.RetryBackoff.Duration, mask(c.APIKey), mask(c.SecretKey))
}

func mask(s string) string {
	if s == "" {
		return "(unset)"
	}
	return httputil.Mask
}
