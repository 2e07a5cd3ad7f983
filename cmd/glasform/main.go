// Command glasform is the voice-assisted data-entry server for loan
// applications.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glasform/glasform/internal/app"
	"github.com/glasform/glasform/internal/config"
	"github.com/glasform/glasform/internal/observe"
	"github.com/glasform/glasform/pkg/speech"
	"github.com/glasform/glasform/pkg/speech/whisper"
	"github.com/glasform/glasform/pkg/speech/wsrelay"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "glasform: config file %q not found — copy configs/example.yaml to get started\n", *configPath)
		} else {
			fmt.Fprintf(os.Stderr, "glasform: %v\n", err)
		}
		return 1
	}

	logger := newLogger(cfg.Server.LogLevel)
	slog.SetDefault(logger)

	slog.Info("glasform starting",
		"config", *configPath,
		"listen_addr", cfg.Server.ListenAddr,
		"log_level", cfg.Server.LogLevel,
		"speech_provider", cfg.Speech.Provider,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Telemetry ─────────────────────────────────────────────────────────────
	otelShutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{
		ServiceName: "glasform",
	})
	if err != nil {
		slog.Error("failed to initialise telemetry", "err", err)
		return 1
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(flushCtx); err != nil {
			slog.Warn("telemetry shutdown error", "err", err)
		}
	}()

	// ── Speech provider ───────────────────────────────────────────────────────
	reg := config.NewRegistry()
	registerBuiltinProviders(reg)

	provider, err := reg.Create(cfg.Speech)
	if err != nil {
		slog.Error("failed to create speech provider", "name", cfg.Speech.Provider, "err", err)
		return 1
	}
	slog.Info("speech provider created", "name", cfg.Speech.Provider)

	// ── Application ───────────────────────────────────────────────────────────
	application := app.New(cfg, provider)

	slog.Info("server ready — press Ctrl+C to shut down")

	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run error", "err", err)
		return 1
	}

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	slog.Info("shutdown signal received, stopping…")

	if err := application.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "err", err)
		return 1
	}
	slog.Info("goodbye")
	return 0
}

// registerBuiltinProviders wires the capture implementations that ship
// with Glasform into reg.
func registerBuiltinProviders(reg *config.Registry) {
	// wsrelay receives recognition results pushed by the handheld
	// device over a websocket; the app mounts it at /ws/speech.
	reg.Register("wsrelay", func(config.SpeechConfig) (speech.Provider, error) {
		return wsrelay.New(), nil
	})

	// whisper transcribes PCM audio locally with a whisper.cpp model.
	reg.Register("whisper", func(cfg config.SpeechConfig) (speech.Provider, error) {
		var opts []whisper.Option
		if cfg.Language != "" {
			opts = append(opts, whisper.WithLanguage(cfg.Language))
		}
		if cfg.SampleRate > 0 {
			opts = append(opts, whisper.WithSampleRate(cfg.SampleRate))
		}
		if cfg.SilenceThresholdMs > 0 {
			opts = append(opts, whisper.WithSilenceThresholdMs(cfg.SilenceThresholdMs))
		}
		return whisper.New(cfg.ModelPath, opts...)
	})

	for _, name := range reg.Names() {
		slog.Debug("registered speech provider", "name", name)
	}
}

func newLogger(level config.LogLevel) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
