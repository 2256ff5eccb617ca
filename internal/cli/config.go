package cli

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/hz19-events/internal/scraper"
)

// Config holds the operator-tunable settings. Everything has a sensible
// default; the file only needs the keys being overridden.
type Config struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
	MaxRetries     int    `yaml:"max_retries"`
}

// Timeout returns the fetch timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultConfig returns the built-in defaults: the live 19hz site, the
// standard timeout and User-Agent, no retries.
func DefaultConfig() Config {
	return Config{
		BaseURL:        scraper.BaseURL,
		TimeoutSeconds: int(scraper.Timeout / time.Second),
		UserAgent:      scraper.UserAgent,
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.BaseURL == "" {
		return Config{}, fmt.Errorf("config: base_url must not be empty")
	}
	if cfg.TimeoutSeconds <= 0 {
		return Config{}, fmt.Errorf("config: timeout_seconds must be positive")
	}
	if cfg.MaxRetries < 0 {
		return Config{}, fmt.Errorf("config: max_retries must not be negative")
	}
	return cfg, nil
}
