// Package wsrelay provides a speech.Provider fed by recognition results
// relayed over a WebSocket. The browser or handheld device runs its own
// speech recogniser and pushes completed results as JSON events; the relay
// turns them into speech.Utterance and speech.CaptureError values.
//
// The wire format is one JSON object per text message:
//
//	{"type": "utterance", "alternatives": [{"text": "petnaest", "confidence": 0.92}]}
//	{"type": "error", "code": "no-speech"}
//
// Unknown event types and malformed messages are ignored so a newer device
// firmware cannot wedge the relay.
package wsrelay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/coder/websocket"

	"github.com/glasform/glasform/pkg/speech"
)

// Compile-time assertion that Provider satisfies speech.Provider.
var _ speech.Provider = (*Provider)(nil)

// Provider implements speech.Provider backed by a WebSocket relay endpoint.
// It is also an http.Handler: mount it on the route the capture device
// connects to. At most one capture session and one device connection are
// active at a time; a second device connection replaces the first.
type Provider struct {
	mu   sync.Mutex
	sess *relaySession
}

// New creates a relay Provider with no active session.
func New() *Provider {
	return &Provider{}
}

// Listen opens the capture session that relayed events are delivered to.
// Only one session can be active at a time; a second Listen call before the
// first session is closed returns an error.
func (p *Provider) Listen(ctx context.Context, cfg speech.Config) (speech.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("wsrelay: context already cancelled: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sess != nil {
		return nil, errors.New("wsrelay: a capture session is already active")
	}

	s := &relaySession{
		provider:   p,
		utterances: make(chan speech.Utterance, 16),
		captureErr: make(chan *speech.CaptureError, 16),
		done:       make(chan struct{}),
	}
	p.sess = s
	return s, nil
}

// ServeHTTP upgrades the request to a WebSocket and relays recognition events
// into the active capture session. If no session is active the connection is
// rejected with a policy violation close frame.
func (p *Provider) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("wsrelay: websocket accept failed", "error", err)
		return
	}

	p.mu.Lock()
	sess := p.sess
	p.mu.Unlock()
	if sess == nil {
		conn.Close(websocket.StatusPolicyViolation, "no active capture session")
		return
	}

	slog.Debug("wsrelay: device connected", "remote", r.RemoteAddr)
	sess.relay(r.Context(), conn)
}

// deviceEvent is the JSON structure pushed by the capture device.
type deviceEvent struct {
	Type         string `json:"type"`
	Code         string `json:"code,omitempty"`
	Alternatives []struct {
		Text       string  `json:"text"`
		Confidence float64 `json:"confidence"`
	} `json:"alternatives,omitempty"`
}

// relaySession is a live relay capture session. It implements speech.Session.
type relaySession struct {
	provider   *Provider
	utterances chan speech.Utterance
	captureErr chan *speech.CaptureError

	done  chan struct{}
	once  sync.Once
	regMu sync.Mutex
	wg    sync.WaitGroup
}

// Utterances returns the channel of completed recognition results.
func (s *relaySession) Utterances() <-chan speech.Utterance { return s.utterances }

// Errors returns the channel of recoverable recognition failures.
func (s *relaySession) Errors() <-chan *speech.CaptureError { return s.captureErr }

// Close terminates the session, detaches it from the provider, waits for any
// connected device relay loop to drain, and closes the output channels.
func (s *relaySession) Close() error {
	s.once.Do(func() {
		s.provider.mu.Lock()
		if s.provider.sess == s {
			s.provider.sess = nil
		}
		s.provider.mu.Unlock()

		s.regMu.Lock()
		close(s.done)
		s.regMu.Unlock()
		s.wg.Wait()
		close(s.utterances)
		close(s.captureErr)
	})
	return nil
}

// relay reads device events from conn until the connection drops, the request
// context is cancelled, or the session is closed.
func (s *relaySession) relay(ctx context.Context, conn *websocket.Conn) {
	// Register with the session so Close can wait for the loop to exit
	// before it closes the output channels.
	s.regMu.Lock()
	select {
	case <-s.done:
		s.regMu.Unlock()
		conn.Close(websocket.StatusPolicyViolation, "capture session closed")
		return
	default:
	}
	s.wg.Add(1)
	s.regMu.Unlock()
	defer s.wg.Done()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.done:
			cancel()
		case <-ctx.Done():
		}
	}()
	defer conn.Close(websocket.StatusNormalClosure, "session closed")

	for {
		_, msg, err := conn.Read(ctx)
		if err != nil {
			// Normal close, device drop, or session shutdown.
			return
		}

		var ev deviceEvent
		if err := json.Unmarshal(msg, &ev); err != nil {
			slog.Debug("wsrelay: discarding malformed device event", "error", err)
			continue
		}

		switch ev.Type {
		case "utterance":
			u := speech.Utterance{}
			for _, alt := range ev.Alternatives {
				u.Alternatives = append(u.Alternatives, speech.Alternative{
					Text:       alt.Text,
					Confidence: alt.Confidence,
				})
			}
			if len(u.Alternatives) == 0 {
				continue
			}
			select {
			case s.utterances <- u:
			case <-s.done:
				return
			}
		case "error":
			ce := &speech.CaptureError{Code: speech.ErrorCode(ev.Code)}
			select {
			case s.captureErr <- ce:
			case <-s.done:
				return
			}
		default:
			slog.Debug("wsrelay: ignoring unknown device event", "type", ev.Type)
		}
	}
}

// Compile-time assertion that relaySession satisfies speech.Session.
var _ speech.Session = (*relaySession)(nil)
