// Package mock provides test doubles for the speech package interfaces.
//
// Use Provider to verify that the caller opens sessions with the expected
// Config. Use Session to feed controlled Utterance and CaptureError values.
//
// Example:
//
//	sess := &mock.Session{
//	    UtterancesCh: make(chan speech.Utterance, 1),
//	    ErrorsCh:     make(chan *speech.CaptureError, 1),
//	}
//	p := &mock.Provider{Session: sess}
//	handle, _ := p.Listen(ctx, cfg)
package mock

import (
	"context"
	"sync"

	"github.com/glasform/glasform/pkg/speech"
)

// ListenCall records a single invocation of Provider.Listen.
type ListenCall struct {
	// Ctx is the context passed to Listen.
	Ctx context.Context
	// Cfg is the Config passed to Listen.
	Cfg speech.Config
}

// Provider is a mock implementation of speech.Provider.
type Provider struct {
	mu sync.Mutex

	// Session is the Session returned by Listen. If nil, Listen returns a new
	// default Session with buffered channels.
	Session speech.Session

	// ListenErr, if non-nil, is returned as the error from Listen.
	ListenErr error

	// ListenCalls records every call to Listen.
	ListenCalls []ListenCall
}

// Listen records the call and returns Session, ListenErr.
func (p *Provider) Listen(ctx context.Context, cfg speech.Config) (speech.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ListenCalls = append(p.ListenCalls, ListenCall{Ctx: ctx, Cfg: cfg})
	if p.ListenErr != nil {
		return nil, p.ListenErr
	}
	if p.Session != nil {
		return p.Session, nil
	}
	return &Session{
		UtterancesCh: make(chan speech.Utterance, 16),
		ErrorsCh:     make(chan *speech.CaptureError, 16),
	}, nil
}

// Reset clears all recorded calls. Thread-safe.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ListenCalls = nil
}

// Ensure Provider implements speech.Provider at compile time.
var _ speech.Provider = (*Provider)(nil)

// Session is a mock implementation of speech.Session.
// Callers should pre-populate UtterancesCh and ErrorsCh with the values they
// want the consumer to receive, then close them when done.
type Session struct {
	mu sync.Mutex

	// UtterancesCh is the channel returned by Utterances(). Callers own this
	// channel and are responsible for sending to and closing it in tests.
	UtterancesCh chan speech.Utterance

	// ErrorsCh is the channel returned by Errors(). Callers own this channel.
	ErrorsCh chan *speech.CaptureError

	// CloseErr, if non-nil, is returned by Close.
	CloseErr error

	// CloseCallCount is the number of times Close was called.
	CloseCallCount int
}

// Utterances returns UtterancesCh. The caller must have initialised
// UtterancesCh before calling this method.
func (s *Session) Utterances() <-chan speech.Utterance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.UtterancesCh
}

// Errors returns ErrorsCh.
func (s *Session) Errors() <-chan *speech.CaptureError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ErrorsCh
}

// Close records the call and returns CloseErr.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CloseCallCount++
	return s.CloseErr
}

// Ensure Session implements speech.Session at compile time.
var _ speech.Session = (*Session)(nil)
