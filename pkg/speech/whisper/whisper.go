// Package whisper provides a speech.Provider backed by the whisper.cpp CGO
// bindings for fully local transcription. The whisper.cpp static library
// (libwhisper.a) and headers (whisper.h) must be available at link time via
// LIBRARY_PATH and C_INCLUDE_PATH environment variables.
//
// Sessions accept raw 16-bit little-endian signed PCM via SendAudio. A
// silence detector segments the stream into utterances: once speech has been
// heard and the configured silence duration elapses, the buffered audio is
// run through the model and the text is emitted as a single-alternative
// Utterance.
package whisper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	whisperlib "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"

	"github.com/glasform/glasform/pkg/speech"
)

const (
	defaultLanguage           = "hr"
	defaultSampleRate         = 16000
	defaultSilenceThresholdMs = 500
	defaultMaxBufferMs        = 10000

	// bitsPerSample is fixed at 16 for the 16-bit signed little-endian PCM
	// input format.
	bitsPerSample = 16

	// defaultRMSThreshold is the root-mean-square energy level (in 16-bit PCM
	// amplitude units) below which a chunk counts as silence.
	defaultRMSThreshold = 300.0
)

// Compile-time assertion that Provider satisfies speech.Provider.
var _ speech.Provider = (*Provider)(nil)

// Provider implements speech.Provider using the whisper.cpp Go bindings.
// The model is loaded once at startup and shared across all sessions.
type Provider struct {
	model    whisperlib.Model
	language string

	sampleRate         int
	silenceThresholdMs int
	maxBufferMs        int
}

// Option is a functional option for configuring a Provider.
type Option func(*Provider)

// WithLanguage sets the language code for transcription (e.g., "hr", "en").
// Defaults to "hr".
func WithLanguage(lang string) Option {
	return func(p *Provider) { p.language = lang }
}

// WithSampleRate sets the audio sample rate in Hz. This must match the actual
// sample rate of PCM data delivered via SendAudio. Defaults to 16000.
func WithSampleRate(rate int) Option {
	return func(p *Provider) { p.sampleRate = rate }
}

// WithSilenceThresholdMs sets the consecutive-silence duration (ms) that
// triggers transcription of the accumulated speech buffer. Defaults to 500 ms.
func WithSilenceThresholdMs(ms int) Option {
	return func(p *Provider) { p.silenceThresholdMs = ms }
}

// WithMaxBufferMs sets the maximum buffered audio duration (ms) before a
// forced flush. Defaults to 10 000 ms (10 s).
func WithMaxBufferMs(ms int) Option {
	return func(p *Provider) { p.maxBufferMs = ms }
}

// New creates a Provider that loads the whisper.cpp model from the given file
// path. The caller must call Close when the provider is no longer needed.
func New(modelPath string, opts ...Option) (*Provider, error) {
	if modelPath == "" {
		return nil, errors.New("whisper: modelPath must not be empty")
	}
	model, err := whisperlib.New(modelPath)
	if err != nil {
		return nil, fmt.Errorf("whisper: load model %q: %w", modelPath, err)
	}

	p := &Provider{
		model:              model,
		language:           defaultLanguage,
		sampleRate:         defaultSampleRate,
		silenceThresholdMs: defaultSilenceThresholdMs,
		maxBufferMs:        defaultMaxBufferMs,
	}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// Close releases the whisper model. Must be called when the provider is no
// longer needed.
func (p *Provider) Close() error {
	if p.model != nil {
		return p.model.Close()
	}
	return nil
}

// Listen opens a new capture session. The returned session also exposes
// SendAudio (see [Session]) so the caller can pump PCM from its audio source.
//
// Each session creates its own whisper.cpp context per inference from the
// shared model, so multiple sessions can run concurrently.
func (p *Provider) Listen(ctx context.Context, cfg speech.Config) (speech.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("whisper: context already cancelled: %w", err)
	}

	lang := cfg.Language
	if lang == "" {
		lang = p.language
	}
	// Whisper wants a bare language code, not a full BCP-47 tag.
	if i := strings.IndexByte(lang, '-'); i > 0 {
		lang = lang[:i]
	}

	s := &Session{
		model:              p.model,
		language:           lang,
		sampleRate:         p.sampleRate,
		silenceThresholdMs: p.silenceThresholdMs,
		maxBufferMs:        p.maxBufferMs,

		audioCh:    make(chan []byte, 256),
		utterances: make(chan speech.Utterance, 16),
		captureErr: make(chan *speech.CaptureError, 16),
		done:       make(chan struct{}),
	}

	s.wg.Add(1)
	go s.processLoop(ctx)

	return s, nil
}

// Session is a live local transcription session. It implements
// speech.Session. All mutable state that drives silence detection and
// buffering is confined to the processLoop goroutine.
type Session struct {
	// immutable configuration (set once in Listen)
	model              whisperlib.Model
	language           string
	sampleRate         int
	silenceThresholdMs int
	maxBufferMs        int

	audioCh    chan []byte
	utterances chan speech.Utterance
	captureErr chan *speech.CaptureError

	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// SendAudio queues a chunk of raw 16-bit little-endian signed mono PCM audio
// for silence analysis and buffering.
func (s *Session) SendAudio(chunk []byte) error {
	select {
	case <-s.done:
		return errors.New("whisper: session is closed")
	default:
	}
	select {
	case s.audioCh <- chunk:
		return nil
	case <-s.done:
		return errors.New("whisper: session is closed")
	}
}

// Utterances returns the channel of completed recognition results.
func (s *Session) Utterances() <-chan speech.Utterance { return s.utterances }

// Errors returns the channel of recoverable recognition failures.
func (s *Session) Errors() <-chan *speech.CaptureError { return s.captureErr }

// Close terminates the session, flushes any pending speech audio, closes the
// output channels, and releases all associated resources.
func (s *Session) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.wg.Wait()
	})
	return nil
}

// processLoop is the single goroutine responsible for silence detection,
// audio buffering, and inference dispatch.
func (s *Session) processLoop(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.utterances)
	defer close(s.captureErr)

	var (
		buffer    []byte
		hadSpeech bool
		silenceMs int
	)

	bytesPerMs := s.sampleRate * (bitsPerSample / 8) / 1000
	if bytesPerMs <= 0 {
		bytesPerMs = 32
	}
	maxBufferBytes := s.maxBufferMs * bytesPerMs

	doFlush := func() {
		if len(buffer) == 0 || !hadSpeech {
			buffer = nil
			hadSpeech = false
			silenceMs = 0
			return
		}

		pcm := buffer
		buffer = nil
		hadSpeech = false
		silenceMs = 0

		text, err := s.infer(pcm)
		if err != nil {
			slog.Error("whisper inference failed", "error", err)
			select {
			case s.captureErr <- &speech.CaptureError{Code: speech.ErrAudioCapture, Cause: err}:
			default:
			}
			return
		}
		if text == "" {
			select {
			case s.captureErr <- &speech.CaptureError{Code: speech.ErrNoSpeech}:
			default:
			}
			return
		}

		u := speech.Utterance{Alternatives: []speech.Alternative{{Text: text, Confidence: 1.0}}}
		select {
		case s.utterances <- u:
		default:
		}
	}

	for {
		select {
		case <-ctx.Done():
			doFlush()
			return

		case <-s.done:
			doFlush()
			return

		case chunk := <-s.audioCh:
			rms := computeRMS(chunk)
			chunkMs := chunkDurationMs(chunk, s.sampleRate)

			if rms < defaultRMSThreshold {
				if hadSpeech {
					silenceMs += chunkMs
					buffer = append(buffer, chunk...)
					if silenceMs >= s.silenceThresholdMs {
						doFlush()
					}
				}
			} else {
				hadSpeech = true
				silenceMs = 0
				buffer = append(buffer, chunk...)
				if maxBufferBytes > 0 && len(buffer) >= maxBufferBytes {
					doFlush()
				}
			}
		}
	}
}

// infer converts the buffered PCM audio to float32, runs whisper.cpp
// inference using a fresh context, and returns the concatenated text.
func (s *Session) infer(pcm []byte) (string, error) {
	samples := pcmToFloat32(pcm)

	// Each whisper context is NOT thread-safe, but the model can be shared
	// across goroutines.
	wctx, err := s.model.NewContext()
	if err != nil {
		return "", fmt.Errorf("whisper: create context: %w", err)
	}

	if err := wctx.SetLanguage(s.language); err != nil {
		slog.Warn("whisper: failed to set language, using default", "language", s.language, "error", err)
	}

	if err := wctx.Process(samples, nil, nil, nil); err != nil {
		return "", fmt.Errorf("whisper: process audio: %w", err)
	}

	var parts []string
	for {
		segment, err := wctx.NextSegment()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("whisper: read segment: %w", err)
		}
		text := strings.TrimSpace(segment.Text)
		if text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " "), nil
}

// Compile-time assertion that Session satisfies speech.Session.
var _ speech.Session = (*Session)(nil)
