// Package config provides the configuration schema, loader, and speech
// provider registry for the Glasform data-entry server.
package config

import "time"

// LogLevel controls log verbosity for the Glasform server.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure for Glasform.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Speech  SpeechConfig  `yaml:"speech"`
	Webhook WebhookConfig `yaml:"webhook"`
	Agent   AgentConfig   `yaml:"agent"`
	Flow    FlowConfig    `yaml:"flow"`
}

// ServerConfig holds network and logging settings for the server.
type ServerConfig struct {
	// ListenAddr is the TCP address the server listens on (e.g., ":8080").
	ListenAddr string `yaml:"listen_addr"`

	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`
}

// SpeechConfig selects and tunes the speech-capture provider.
type SpeechConfig struct {
	// Provider selects the registered capture implementation
	// ("wsrelay" or "whisper").
	Provider string `yaml:"provider"`

	// Language is the recognition locale, e.g. "hr-HR".
	Language string `yaml:"language"`

	// MaxAlternatives caps how many transcript alternatives a single
	// utterance may carry.
	MaxAlternatives int `yaml:"max_alternatives"`

	// ModelPath points at the whisper model file. Only used by the
	// whisper provider.
	ModelPath string `yaml:"model_path"`

	// SampleRate is the PCM input rate in Hz for the whisper provider.
	SampleRate int `yaml:"sample_rate"`

	// SilenceThresholdMs is the silence run that flushes an utterance
	// in the whisper provider.
	SilenceThresholdMs int `yaml:"silence_threshold_ms"`
}

// WebhookConfig points at the downstream document automation endpoint.
type WebhookConfig struct {
	// URL receives the completed form as a JSON POST.
	URL string `yaml:"url"`

	// TimeoutSeconds bounds a single submission attempt.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Timeout returns the submission timeout as a [time.Duration].
func (w WebhookConfig) Timeout() time.Duration {
	if w.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(w.TimeoutSeconds) * time.Second
}

// AgentConfig bounds the issued agent-code range.
type AgentConfig struct {
	MinCode int `yaml:"min_code"`
	MaxCode int `yaml:"max_code"`
}

// FlowConfig tunes the data-entry pacing.
type FlowConfig struct {
	// AutoAdvanceDelayMs is the pause before focus leaves a freshly
	// validated field.
	AutoAdvanceDelayMs int `yaml:"auto_advance_delay_ms"`

	// RawDisplayDelayMs keeps the raw transcript visible before the
	// normalised value replaces it.
	RawDisplayDelayMs int `yaml:"raw_display_delay_ms"`
}

// ApplyDefaults fills unset fields with sensible values for a
// single-operator deployment.
func (c *Config) ApplyDefaults() {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = ":8080"
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = LogInfo
	}
	if c.Speech.Provider == "" {
		c.Speech.Provider = "wsrelay"
	}
	if c.Speech.Language == "" {
		c.Speech.Language = "hr-HR"
	}
	if c.Speech.MaxAlternatives <= 0 {
		c.Speech.MaxAlternatives = 5
	}
	if c.Agent.MinCode == 0 && c.Agent.MaxCode == 0 {
		c.Agent.MinCode, c.Agent.MaxCode = 1, 100
	}
	if c.Flow.AutoAdvanceDelayMs <= 0 {
		c.Flow.AutoAdvanceDelayMs = 500
	}
	if c.Flow.RawDisplayDelayMs <= 0 {
		c.Flow.RawDisplayDelayMs = 800
	}
}
