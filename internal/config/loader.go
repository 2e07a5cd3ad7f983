package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ValidProviderNames lists the known speech-capture providers.
var ValidProviderNames = []string{"wsrelay", "whisper"}

// Load reads the YAML configuration file at path and returns a
// validated [Config]. It is a convenience wrapper around
// [LoadFromReader] and [Validate].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r, applies defaults and
// validates the result. Useful in tests where configs are constructed
// from string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	cfg.ApplyDefaults()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Server.LogLevel != "" && !cfg.Server.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("server.log_level %q is invalid; valid values: debug, info, warn, error", cfg.Server.LogLevel))
	}

	if cfg.Speech.Provider != "" && !slices.Contains(ValidProviderNames, cfg.Speech.Provider) {
		errs = append(errs, fmt.Errorf("speech.provider %q is invalid; valid values: %v", cfg.Speech.Provider, ValidProviderNames))
	}
	if cfg.Speech.Provider == "whisper" && cfg.Speech.ModelPath == "" {
		errs = append(errs, errors.New("speech.model_path is required when speech.provider is whisper"))
	}
	if cfg.Speech.MaxAlternatives < 0 {
		errs = append(errs, fmt.Errorf("speech.max_alternatives %d must not be negative", cfg.Speech.MaxAlternatives))
	}
	if cfg.Speech.SampleRate < 0 {
		errs = append(errs, fmt.Errorf("speech.sample_rate %d must not be negative", cfg.Speech.SampleRate))
	}

	if cfg.Webhook.URL == "" {
		errs = append(errs, errors.New("webhook.url is required"))
	}
	if cfg.Webhook.TimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("webhook.timeout_seconds %d must not be negative", cfg.Webhook.TimeoutSeconds))
	}

	if cfg.Agent.MinCode < 1 || cfg.Agent.MaxCode < cfg.Agent.MinCode {
		errs = append(errs, fmt.Errorf("agent code range [%d, %d] is invalid", cfg.Agent.MinCode, cfg.Agent.MaxCode))
	}

	if cfg.Flow.AutoAdvanceDelayMs > 5000 || cfg.Flow.RawDisplayDelayMs > 5000 {
		slog.Warn("flow delays above 5s make dictation sluggish",
			"auto_advance_delay_ms", cfg.Flow.AutoAdvanceDelayMs,
			"raw_display_delay_ms", cfg.Flow.RawDisplayDelayMs,
		)
	}

	return errors.Join(errs...)
}
