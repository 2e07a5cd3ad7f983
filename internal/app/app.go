// Package app wires all Glasform subsystems into a running server.
//
// The App struct owns the full lifecycle: New creates and connects all
// subsystems, Run serves HTTP and pumps the speech capture session into
// the data-entry flow, and Shutdown tears everything down in order.
//
// For testing, inject doubles via functional options (WithWebhookClient,
// WithMetrics, WithFlowOptions). When an option is not provided, New
// creates real implementations from the config.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/glasform/glasform/internal/agentcode"
	"github.com/glasform/glasform/internal/config"
	"github.com/glasform/glasform/internal/flow"
	"github.com/glasform/glasform/internal/form"
	"github.com/glasform/glasform/internal/health"
	"github.com/glasform/glasform/internal/observe"
	"github.com/glasform/glasform/internal/webhook"
	"github.com/glasform/glasform/pkg/speech"
)

// App owns all subsystem lifetimes for one Glasform process: one form,
// one operator, one capture session.
type App struct {
	cfg      *config.Config
	provider speech.Provider

	state   *form.State
	flow    *flow.Controller
	hooks   *webhook.Client
	agents  *agentcode.Validator
	metrics *observe.Metrics
	checks  *health.Handler
	server  *http.Server

	flowOpts []flow.Option

	// mu guards the signed-in agent code.
	mu        sync.Mutex
	agentCode string

	// closers are called in order during Shutdown.
	closers  []func() error
	stopOnce sync.Once
}

// Option is a functional option for New. Use these to inject test doubles.
type Option func(*App)

// WithWebhookClient injects a webhook client instead of creating one
// from the config.
func WithWebhookClient(c *webhook.Client) Option {
	return func(a *App) { a.hooks = c }
}

// WithMetrics injects a metrics instance instead of the process default.
func WithMetrics(m *observe.Metrics) Option {
	return func(a *App) { a.metrics = m }
}

// WithFlowOptions appends options for the flow controller, e.g. a
// deterministic scheduler in tests.
func WithFlowOptions(opts ...flow.Option) Option {
	return func(a *App) { a.flowOpts = append(a.flowOpts, opts...) }
}

// New creates an App by wiring all subsystems together. The provider
// comes from main (selected via the config registry) and may be nil,
// in which case transcripts arrive over the HTTP API only.
func New(cfg *config.Config, provider speech.Provider, opts ...Option) *App {
	a := &App{
		cfg:      cfg,
		provider: provider,
	}
	for _, o := range opts {
		o(a)
	}

	if a.metrics == nil {
		a.metrics = observe.DefaultMetrics()
	}
	if a.hooks == nil {
		a.hooks = webhook.NewClient(cfg.Webhook.URL, webhook.WithTimeout(cfg.Webhook.Timeout()))
	}
	a.agents = agentcode.NewValidator(cfg.Agent.MinCode, cfg.Agent.MaxCode)

	a.state = form.NewState(form.Definition())
	flowOpts := append([]flow.Option{
		flow.WithRecorder(a.metrics),
		flow.WithRawDisplayDelay(time.Duration(cfg.Flow.RawDisplayDelayMs) * time.Millisecond),
		flow.WithAutoAdvanceDelay(time.Duration(cfg.Flow.AutoAdvanceDelayMs) * time.Millisecond),
	}, a.flowOpts...)
	a.flow = flow.NewController(a.state, flowOpts...)

	a.checks = health.New(
		health.Checker{Name: "webhook", Check: func(context.Context) error {
			if cfg.Webhook.URL == "" {
				return errors.New("no webhook url configured")
			}
			return nil
		}},
		health.Checker{Name: "speech_provider", Check: func(context.Context) error {
			if a.provider == nil {
				return errors.New("no capture provider configured")
			}
			return nil
		}},
	)

	a.server = &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           observe.Middleware(a.metrics)(a.routes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return a
}

// Run serves HTTP and, when a capture provider is configured, pumps its
// session into the flow controller. Run blocks until ctx is cancelled
// or a subsystem fails, then stops the HTTP server.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if a.provider != nil {
		sess, err := a.provider.Listen(ctx, speech.Config{
			Language:        a.cfg.Speech.Language,
			MaxAlternatives: a.cfg.Speech.MaxAlternatives,
		})
		if err != nil {
			return fmt.Errorf("app: open capture session: %w", err)
		}
		a.closers = append(a.closers, sess.Close)
		g.Go(func() error {
			a.pumpSpeech(ctx, sess)
			return nil
		})
	}

	g.Go(func() error {
		slog.Info("server listening", "addr", a.cfg.Server.ListenAddr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.server.Shutdown(stopCtx); err != nil {
			slog.Warn("http server shutdown", "err", err)
		}
		return ctx.Err()
	})

	return g.Wait()
}

// pumpSpeech routes capture results onto the focused field until the
// session or ctx ends. Utterances arriving while no field has focus are
// dropped.
func (a *App) pumpSpeech(ctx context.Context, sess speech.Session) {
	a.metrics.ActiveCaptureSessions.Add(ctx, 1)
	defer a.metrics.ActiveCaptureSessions.Add(context.Background(), -1)

	utterances := sess.Utterances()
	captureErrs := sess.Errors()
	for {
		select {
		case <-ctx.Done():
			return
		case utt, ok := <-utterances:
			if !ok {
				return
			}
			key := a.flow.Focus()
			if key == "" {
				slog.Debug("utterance dropped, no focused field")
				continue
			}
			if err := a.flow.AcceptTranscript(key, utt); err != nil {
				slog.Warn("utterance rejected", "field", key, "err", err)
			}
		case capErr, ok := <-captureErrs:
			if !ok {
				return
			}
			if key := a.flow.Focus(); key != "" {
				a.flow.HandleCaptureError(key, capErr)
			}
		}
	}
}

// Shutdown tears down all subsystems in order. It respects the context
// deadline: if ctx expires before all closers finish, remaining closers
// are skipped and the context error is returned.
func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error
	a.stopOnce.Do(func() {
		slog.Info("shutting down", "closers", len(a.closers))
		for i, closer := range a.closers {
			select {
			case <-ctx.Done():
				slog.Warn("shutdown deadline exceeded", "remaining", len(a.closers)-i)
				shutdownErr = ctx.Err()
				return
			default:
			}
			if err := closer(); err != nil {
				slog.Warn("closer error", "index", i, "err", err)
			}
		}
		slog.Info("shutdown complete")
	})
	return shutdownErr
}

func (a *App) currentAgent() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.agentCode
}

func (a *App) setAgent(code string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.agentCode = code
}
