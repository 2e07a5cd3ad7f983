package config_test

import (
	"strings"
	"testing"

	"github.com/glasform/glasform/internal/config"
)

const validYAML = `
server:
  listen_addr: ":9090"
  log_level: debug
speech:
  provider: wsrelay
  language: hr-HR
  max_alternatives: 5
webhook:
  url: https://hook.example.com/scenario
  timeout_seconds: 10
agent:
  min_code: 1
  max_code: 100
flow:
  auto_advance_delay_ms: 500
  raw_display_delay_ms: 1000
`

func TestLoadFromReader(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromReader(strings.NewReader(validYAML))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}
	if cfg.Server.ListenAddr != ":9090" {
		t.Errorf("listen_addr = %q", cfg.Server.ListenAddr)
	}
	if cfg.Server.LogLevel != config.LogDebug {
		t.Errorf("log_level = %q", cfg.Server.LogLevel)
	}
	if cfg.Speech.Provider != "wsrelay" {
		t.Errorf("speech.provider = %q", cfg.Speech.Provider)
	}
	if cfg.Webhook.Timeout().Seconds() != 10 {
		t.Errorf("webhook timeout = %v", cfg.Webhook.Timeout())
	}
	if cfg.Flow.RawDisplayDelayMs != 1000 {
		t.Errorf("raw_display_delay_ms = %d", cfg.Flow.RawDisplayDelayMs)
	}
}

func TestLoadFromReaderDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromReader(strings.NewReader("webhook:\n  url: https://hook.example.com/x\n"))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}
	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("default listen_addr = %q", cfg.Server.ListenAddr)
	}
	if cfg.Speech.Provider != "wsrelay" {
		t.Errorf("default provider = %q", cfg.Speech.Provider)
	}
	if cfg.Speech.Language != "hr-HR" {
		t.Errorf("default language = %q", cfg.Speech.Language)
	}
	if cfg.Speech.MaxAlternatives != 5 {
		t.Errorf("default max_alternatives = %d", cfg.Speech.MaxAlternatives)
	}
	if cfg.Agent.MinCode != 1 || cfg.Agent.MaxCode != 100 {
		t.Errorf("default agent range = [%d, %d]", cfg.Agent.MinCode, cfg.Agent.MaxCode)
	}
}

func TestLoadFromReaderUnknownField(t *testing.T) {
	t.Parallel()

	yaml := validYAML + "\nunknown_section:\n  foo: bar\n"
	if _, err := config.LoadFromReader(strings.NewReader(yaml)); err == nil {
		t.Error("LoadFromReader() accepted an unknown field")
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Server.LogLevel = "verbose"
	cfg.Speech.Provider = "siri"
	cfg.Webhook.URL = ""
	cfg.Agent.MinCode = 100
	cfg.Agent.MaxCode = 1

	err := config.Validate(cfg)
	if err == nil {
		t.Fatal("Validate() = nil, want joined errors")
	}
	for _, want := range []string{
		"server.log_level",
		"speech.provider",
		"webhook.url is required",
		"agent code range",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q missing %q", err, want)
		}
	}
}

func TestValidateWhisperNeedsModelPath(t *testing.T) {
	t.Parallel()

	yaml := `
speech:
  provider: whisper
webhook:
  url: https://hook.example.com/x
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil || !strings.Contains(err.Error(), "speech.model_path") {
		t.Errorf("LoadFromReader() error = %v, want model_path requirement", err)
	}
}

func TestLogLevelIsValid(t *testing.T) {
	t.Parallel()

	for _, l := range []config.LogLevel{config.LogDebug, config.LogInfo, config.LogWarn, config.LogError} {
		if !l.IsValid() {
			t.Errorf("%q reported invalid", l)
		}
	}
	if config.LogLevel("trace").IsValid() {
		t.Error("trace reported valid")
	}
}
