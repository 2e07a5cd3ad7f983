// Package speech defines the Provider interface for speech capture backends.
//
// A capture provider wraps a speech recognition source (a browser or handheld
// device relaying recognition results over a websocket, or a local Whisper
// model) and exposes a uniform streaming interface. The central abstraction is
// Session: once opened, a session emits Utterance values — each carrying one
// or more recognition alternatives with confidence scores — and CaptureError
// values for recoverable recognition failures.
//
// Implementations must be safe for concurrent use.
package speech

import (
	"context"
	"fmt"
)

// Alternative is a single recognition hypothesis for an utterance.
type Alternative struct {
	// Text is the recognised transcript.
	Text string

	// Confidence is the recogniser's confidence in Text, in [0, 1].
	Confidence float64
}

// Utterance is one completed recognition result. Providers that support
// multiple hypotheses populate Alternatives in recogniser order; providers
// that produce a single hypothesis emit exactly one entry.
type Utterance struct {
	Alternatives []Alternative
}

// Best returns the alternative with the highest confidence. When several
// alternatives share the top confidence the earliest one wins. The second
// return value is false if the utterance carries no alternatives.
func (u Utterance) Best() (Alternative, bool) {
	if len(u.Alternatives) == 0 {
		return Alternative{}, false
	}
	best := u.Alternatives[0]
	for _, alt := range u.Alternatives[1:] {
		if alt.Confidence > best.Confidence {
			best = alt
		}
	}
	return best, true
}

// ErrorCode classifies a recognition failure. The values mirror the error
// vocabulary of common speech recognition engines so relayed device errors
// pass through unchanged.
type ErrorCode string

const (
	ErrNoSpeech             ErrorCode = "no-speech"
	ErrAudioCapture         ErrorCode = "audio-capture"
	ErrNotAllowed           ErrorCode = "not-allowed"
	ErrNetwork              ErrorCode = "network"
	ErrServiceNotAllowed    ErrorCode = "service-not-allowed"
	ErrBadGrammar           ErrorCode = "bad-grammar"
	ErrLanguageNotSupported ErrorCode = "language-not-supported"
	ErrAborted              ErrorCode = "aborted"
	ErrOther                ErrorCode = "other"
)

// CaptureError is a recoverable recognition failure reported by a Session.
// A CaptureError never terminates the session; the caller decides whether to
// retry capture.
type CaptureError struct {
	// Code classifies the failure.
	Code ErrorCode

	// Cause is the underlying provider error, if any.
	Cause error
}

func (e *CaptureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("speech: capture failed (%s): %v", e.Code, e.Cause)
	}
	return fmt.Sprintf("speech: capture failed (%s)", e.Code)
}

func (e *CaptureError) Unwrap() error { return e.Cause }

// Config describes the recognition settings for a new capture session.
type Config struct {
	// Language is the BCP-47 language tag for recognition (e.g., "hr-HR").
	// An empty string lets the provider use its default.
	Language string

	// MaxAlternatives is the number of recognition hypotheses requested per
	// utterance. Providers that produce a single hypothesis ignore it.
	MaxAlternatives int
}

// Session represents an open capture session. It is an interface so that test
// code can provide mock implementations without a live recognition source.
//
// Callers must call Close when the session is no longer needed. All methods
// must be safe for concurrent use.
type Session interface {
	// Utterances returns a read-only channel that emits completed recognition
	// results. The channel is closed when the session ends.
	Utterances() <-chan Utterance

	// Errors returns a read-only channel that emits recoverable recognition
	// failures. The channel is closed when the session ends.
	Errors() <-chan *CaptureError

	// Close terminates the session and releases all associated resources.
	// After Close returns, the Utterances and Errors channels will be closed.
	// Calling Close more than once is safe and returns nil.
	Close() error
}

// Provider is the abstraction over any speech capture backend.
type Provider interface {
	// Listen opens a new capture session with the given recognition
	// configuration. Returns an error if the provider cannot establish the
	// session (e.g., a session is already active, or ctx is already
	// cancelled). The caller owns the Session and must call Close when done.
	Listen(ctx context.Context, cfg Config) (Session, error)
}
