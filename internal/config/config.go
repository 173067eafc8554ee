// Package config loads souschef configuration from an optional YAML file
// with environment overrides. The runner credential is environment-only
// (SOUSCHEF_API_KEY) and its absence is a fatal precondition checked once
// at load time, not per request.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"souschef/providers/runner"
)

// Config is the resolved souschef configuration.
type Config struct {
	// RunnerURL is the base URL of the remote job runner. Empty means the
	// runner provider's default.
	RunnerURL string `yaml:"runner_url"`
	// Model is the model identifier forwarded to the runner unmodified.
	Model string `yaml:"model"`
	// PollIntervalSeconds is the pause between job polls.
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`
	// MaxAttempts is the poll-attempt budget per generation.
	MaxAttempts int `yaml:"max_attempts"`
	// Generation carries sampling parameters, passed through as-is.
	Generation Generation `yaml:"generation"`

	// APIKey is the runner credential; environment-only, never read from
	// the YAML file.
	APIKey string `yaml:"-"`
}

// Generation mirrors the sampling parameters of the runner payload.
type Generation struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`
	TopP        float32 `yaml:"top_p"`
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides (SOUSCHEF_RUNNER_URL, SOUSCHEF_MODEL), and resolves
// the credential from SOUSCHEF_API_KEY. A missing credential is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Model:               "chef-large",
		PollIntervalSeconds: 1,
		MaxAttempts:         30,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if v := os.Getenv("SOUSCHEF_RUNNER_URL"); v != "" {
		cfg.RunnerURL = v
	}
	if v := os.Getenv("SOUSCHEF_MODEL"); v != "" {
		cfg.Model = v
	}

	cfg.APIKey = os.Getenv("SOUSCHEF_API_KEY")
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("SOUSCHEF_API_KEY is not set")
	}

	if cfg.PollIntervalSeconds <= 0 {
		cfg.PollIntervalSeconds = 1
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 30
	}

	return cfg, nil
}

// PollInterval returns the configured poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// GenerationConfig maps the configured sampling parameters onto the runner
// payload form. It returns nil when everything is left at zero so the
// fields stay absent from the submitted payload.
func (c *Config) GenerationConfig() *runner.GenerationConfig {
	if c.Generation == (Generation{}) {
		return nil
	}
	return &runner.GenerationConfig{
		MaxTokens:   c.Generation.MaxTokens,
		Temperature: c.Generation.Temperature,
		TopP:        c.Generation.TopP,
	}
}
