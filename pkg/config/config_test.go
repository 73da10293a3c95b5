package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/steadfast/pkg/api"
	"github.com/matzehuels/steadfast/pkg/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAPIKey, EnvSecretKey, EnvBaseURL, EnvTimeout, EnvMaxRetries} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != api.DefaultBaseURL {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout.Duration != 30*time.Second || cfg.MaxRetries != 3 || cfg.RetryBackoff.Duration != 300*time.Millisecond {
		t.Errorf("cfg = %+v", cfg)
	}
	if err := cfg.Validate(); !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("Validate() = %v, want configuration error for missing credentials", err)
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
api_key = "file-key"
secret_key = "file-secret"
base_url = "https://sandbox.example.com/v1"
timeout = "10s"
max_retries = 5
retry_backoff = "1s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "file-key" || cfg.SecretKey != "file-secret" {
		t.Errorf("credentials = %q/%q", cfg.APIKey, cfg.SecretKey)
	}
	if cfg.BaseURL != "https://sandbox.example.com/v1" || cfg.Timeout.Duration != 10*time.Second {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.MaxRetries != 5 || cfg.RetryBackoff.Duration != time.Second {
		t.Errorf("retry = %d/%s", cfg.MaxRetries, cfg.RetryBackoff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "api_key = \"file-key\"\nsecret_key = \"file-secret\"\nmax_retries = 5\n")

	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvTimeout, "45")
	t.Setenv(EnvMaxRetries, "1")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "env-key" || cfg.SecretKey != "file-secret" {
		t.Errorf("credentials = %q/%q", cfg.APIKey, cfg.SecretKey)
	}
	if cfg.Timeout.Duration != 45*time.Second || cfg.MaxRetries != 1 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		env  map[string]string
	}{
		{"explicit missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") }, nil},
		{"malformed toml", func(t *testing.T) string { return writeFile(t, "api_key = ") }, nil},
		{"bad duration", func(t *testing.T) string { return writeFile(t, `timeout = "soon"`) }, nil},
		{"bad env timeout", func(t *testing.T) string { return "" }, map[string]string{EnvTimeout: "forever"}},
		{"bad env retries", func(t *testing.T) string { return "" }, map[string]string{EnvMaxRetries: "many"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.path(t))
			if !errors.Is(err, errors.ErrCodeConfiguration) {
				t.Errorf("Load() = %v, want configuration error", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	base := Default()
	base.APIKey, base.SecretKey = "k", "s"

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing api key", func(c *Config) { c.APIKey = " " }, true},
		{"missing secret", func(c *Config) { c.SecretKey = "" }, true},
		{"negative retries", func(c *Config) { c.MaxRetries = -1 }, true},
		{"negative timeout", func(c *Config) { c.Timeout.Duration = -time.Second }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	p, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "steadfast", "config.toml"); p != want {
		t.Errorf("Path() = %q, want %q", p, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	p, err = Path()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(p, filepath.Join(".config", "steadfast", "config.toml")) {
		t.Errorf("Path() = %q", p)
	}
}

func TestConfig_StringMasksCredentials(t *testing.T) {
	c := Default()
	c.APIKey, c.SecretKey = "super-secret-key", "super-secret"
	s := c.String()
	if strings.Contains(s, "super-secret") {
		t.Errorf("String() leaks credentials: %s", s)
	}
}
