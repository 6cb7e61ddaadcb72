package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/matheuskafuri/verse/internal/verse"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const (
	appDir         = "verse-cli"
	defaultTimeout = 4 * time.Second
)

type Source struct {
	Name string `yaml:"name" env:"NAME"`
	URL  string `yaml:"url" env:"URL"`
}

type Config struct {
	Timeout  string `yaml:"timeout" env:"VERSE_TIMEOUT"`
	Primary  Source `yaml:"primary" envPrefix:"VERSE_PRIMARY_"`
	Fallback Source `yaml:"fallback" envPrefix:"VERSE_FALLBACK_"`
}

// TimeoutDuration is the per-request budget for each source.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return defaultTimeout
	}
	return d
}

// SourceName maps a provider tag to the configured display name.
func (c *Config) SourceName(provider string) string {
	switch provider {
	case verse.ProviderPrimary:
		if c.Primary.Name != "" {
			return c.Primary.Name
		}
	case verse.ProviderFallback:
		if c.Fallback.Name != "" {
			return c.Fallback.Name
		}
	}
	return provider
}

// Reload re-reads the XDG environment. xdg captures it at package init, so
// variables set later (e.g. from a .env file) need an explicit reload.
func Reload() {
	xdg.Reload()
}

// Dir is the per-user configuration directory. xdg honours XDG_CONFIG_HOME.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, appDir)
}

func DefaultConfigPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func CachePath() string {
	return filepath.Join(Dir(), "cache.json")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (or the default path), layering the file
// over the embedded defaults and VERSE_* environment variables over both.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Non-fatal: the embedded defaults still apply.
		_ = writeDefaults(path)
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing env: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	for _, s := range []struct {
		role string
		src  Source
	}{{"primary", cfg.Primary}, {"fallback", cfg.Fallback}} {
		if s.src.URL == "" {
			return fmt.Errorf("%s source: url is required", s.role)
		}
		u, err := url.Parse(s.src.URL)
		if err != nil {
			return fmt.Errorf("%s source: invalid url: %w", s.role, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%s source: url scheme must be http or https, got %q", s.role, u.Scheme)
		}
	}
	if cfg.Timeout != "" {
		if _, err := time.ParseDuration(cfg.Timeout); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)
		}
	}
	return nil
}
