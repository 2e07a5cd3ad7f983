package flow

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/glasform/glasform/internal/form"
	"github.com/glasform/glasform/internal/normalize"
	"github.com/glasform/glasform/internal/normalize/dateparse"
	"github.com/glasform/glasform/pkg/speech"
)

var (
	// ErrUnknownField is returned for keys outside the form.
	ErrUnknownField = errors.New("flow: unknown field")
	// ErrCaptureBusy is returned when capture is started on a field
	// that is already recording or processing.
	ErrCaptureBusy = errors.New("flow: capture already in progress")
	// ErrEmptyUtterance is returned for utterances without
	// alternatives.
	ErrEmptyUtterance = errors.New("flow: utterance carries no alternatives")
)

// Operator-facing messages for capture failures. An aborted capture
// is a normal stop and produces no message.
var captureMessages = map[speech.ErrorCode]string{
	speech.ErrNoSpeech:             "Nije detektiran govor. Pokušajte ponovno i govorite jasnije.",
	speech.ErrAudioCapture:         "Mikrofon nije dostupan. Provjerite Bluetooth vezu i dozvole.",
	speech.ErrNotAllowed:           "Pristup mikrofonu je odbačen. Omogućite pristup u postavkama.",
	speech.ErrNetwork:              "Mrežna greška. Provjerite internetsku vezu.",
	speech.ErrServiceNotAllowed:    "Usluga prepoznavanja govora nije dostupna.",
	speech.ErrBadGrammar:           "Greška u gramatici prepoznavanja.",
	speech.ErrLanguageNotSupported: "Hrvatski jezik nije podržan za prepoznavanje govora.",
}

const captureFallbackMessage = "Greška u prepoznavanju govora. Pokušajte ponovno."

// Recorder receives flow-level measurements. The observe package
// provides the real implementation.
type Recorder interface {
	TranscriptProcessed(fieldType string, outcome string, elapsed time.Duration)
	CaptureError(code string)
}

type nopRecorder struct{}

func (nopRecorder) TranscriptProcessed(string, string, time.Duration) {}
func (nopRecorder) CaptureError(string)                               {}

const (
	// DefaultRawDisplayDelay keeps the raw transcript visible before
	// the normalised value replaces it.
	DefaultRawDisplayDelay = 800 * time.Millisecond
	// DefaultAutoAdvanceDelay is the pause before focus moves off a
	// freshly validated field.
	DefaultAutoAdvanceDelay = 500 * time.Millisecond
)

type fieldSession struct {
	recording RecordingState
	editing   bool
	validated bool
	valid     bool
	message   string
}

// Controller owns the single data-entry session of the process: the
// form state, per-field capture sessions and the focused field.
type Controller struct {
	state   *form.State
	sched   Scheduler
	logger  *slog.Logger
	metrics Recorder

	rawDelay     time.Duration
	advanceDelay time.Duration

	mu       sync.Mutex
	focus    string
	sessions map[string]*fieldSession
}

// Option configures a [Controller].
type Option func(*Controller)

func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.metrics = r }
}

func WithRawDisplayDelay(d time.Duration) Option {
	return func(c *Controller) { c.rawDelay = d }
}

func WithAutoAdvanceDelay(d time.Duration) Option {
	return func(c *Controller) { c.advanceDelay = d }
}

// NewController builds a controller over the given form state. Focus
// starts on the first field.
func NewController(state *form.State, opts ...Option) *Controller {
	c := &Controller{
		state:        state,
		sched:        WallClock,
		logger:       slog.Default(),
		metrics:      nopRecorder{},
		rawDelay:     DefaultRawDisplayDelay,
		advanceDelay: DefaultAutoAdvanceDelay,
		sessions:     make(map[string]*fieldSession),
	}
	for _, opt := range opts {
		opt(c)
	}
	if fields := state.ActiveFields(); len(fields) > 0 {
		c.focus = fields[0].Key
	}
	return c
}

func (c *Controller) session(key string) *fieldSession {
	s, ok := c.sessions[key]
	if !ok {
		s = &fieldSession{recording: RecordingIdle}
		c.sessions[key] = s
	}
	return s
}

// Focus returns the key of the currently focused field.
func (c *Controller) Focus() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.focus
}

// SetFocus moves focus to the given field.
func (c *Controller) SetFocus(key string) error {
	if _, ok := c.state.FieldByKey(key); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.focus = key
	return nil
}

// StartCapture begins voice capture on a field. Starting clears any
// previous validation result or capture error and reopens the field
// for editing.
func (c *Controller) StartCapture(key string) error {
	if _, ok := c.state.FieldByKey(key); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session(key)
	if s.recording != RecordingIdle {
		return fmt.Errorf("%w: %s", ErrCaptureBusy, key)
	}
	s.recording = RecordingActive
	s.editing = true
	s.validated = false
	s.valid = false
	s.message = ""
	c.focus = key
	c.logger.Debug("capture started", "field", key)
	return nil
}

// StopCapture ends an active capture without a result.
func (c *Controller) StopCapture(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session(key)
	if s.recording == RecordingActive {
		s.recording = RecordingIdle
	}
}

// AcceptTranscript feeds a finished utterance into a field. The best
// alternative is shown raw immediately; normalisation, validation and
// any auto-advance run after the raw-display window.
func (c *Controller) AcceptTranscript(key string, utt speech.Utterance) error {
	field, ok := c.state.FieldByKey(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	best, hasAlt := utt.Best()
	if !hasAlt || best.Text == "" {
		return ErrEmptyUtterance
	}

	c.mu.Lock()
	s := c.session(key)
	s.editing = true
	s.validated = false
	s.valid = false
	s.message = ""
	// Only dates have a visible post-capture parsing step; other types
	// return to idle while the raw transcript is displayed.
	if field.Type == form.FieldDate {
		s.recording = RecordingProcessing
	} else {
		s.recording = RecordingIdle
	}
	// Dropdowns keep their current selection until a phrase matches;
	// everything else shows the raw transcript during the window.
	if field.Type != form.FieldDropdown {
		c.state.Set(key, best.Text)
	}
	c.mu.Unlock()

	c.logger.Debug("transcript accepted",
		"field", key, "confidence", best.Confidence, "alternatives", len(utt.Alternatives))

	started := time.Now()
	c.sched.AfterFunc(c.rawDelay, func() {
		c.finishTranscript(field, best.Text, started)
	})
	return nil
}

// finishTranscript runs after the raw-display window: it normalises
// the transcript for the field type, validates the canonical value
// and schedules the focus advance on success.
func (c *Controller) finishTranscript(field form.Field, raw string, started time.Time) {
	var (
		canonical string
		message   string
		ok        = true
	)

	switch field.Type {
	case form.FieldDate:
		canonical, message, ok = normalizeDate(raw)
	case form.FieldDropdown:
		canonical, ok, message = normalize.Dropdown(field.Label, raw, field.OptionValues())
	default:
		canonical = normalizeTranscript(field, raw)
	}

	c.mu.Lock()
	s := c.session(field.Key)
	s.recording = RecordingIdle
	if ok {
		c.state.Set(field.Key, canonical)
	}

	outcome := "invalid"
	if !ok {
		s.validated = true
		s.valid = false
		s.message = message
		outcome = "unrecognized"
	} else if err := validateValue(field, canonical); err != nil {
		s.validated = true
		s.valid = false
		s.message = err.Error()
	} else {
		s.validated = true
		s.valid = true
		s.message = ""
		s.editing = false
		outcome = "valid"
	}
	advance := s.valid && c.focus == field.Key
	c.mu.Unlock()

	c.metrics.TranscriptProcessed(string(field.Type), outcome, time.Since(started))
	c.logger.Info("transcript processed",
		"field", field.Key, "type", field.Type, "outcome", outcome)

	if advance {
		c.sched.AfterFunc(c.advanceDelay, func() {
			c.advanceFrom(field.Key)
		})
	}
}

func (c *Controller) advanceFrom(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.focus != key {
		return
	}
	if next, ok := c.state.NextField(key); ok {
		c.focus = next.Key
		c.logger.Debug("focus advanced", "from", key, "to", next.Key)
	}
}

// HandleCaptureError surfaces a capture failure on a field and resets
// recording to idle. Aborted captures are a normal stop and produce
// no message.
func (c *Controller) HandleCaptureError(key string, capErr *speech.CaptureError) {
	c.mu.Lock()
	s := c.session(key)
	s.recording = RecordingIdle
	if capErr.Code != speech.ErrAborted {
		msg, known := captureMessages[capErr.Code]
		if !known {
			msg = captureFallbackMessage
		}
		s.message = msg
	}
	c.mu.Unlock()

	c.metrics.CaptureError(string(capErr.Code))
	c.logger.Warn("capture error", "field", key, "code", capErr.Code)
}

// Edit reopens a field for manual correction, clearing the previous
// validation result.
func (c *Controller) Edit(key string) error {
	if _, ok := c.state.FieldByKey(key); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session(key)
	s.editing = true
	s.validated = false
	s.valid = false
	s.message = ""
	c.focus = key
	return nil
}

// SetManual stores a typed value. Validation is deferred to Blur, so
// a half-typed value never shows a stale error.
func (c *Controller) SetManual(key, value string) error {
	if _, ok := c.state.FieldByKey(key); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Set(key, value)
	s := c.session(key)
	s.editing = true
	s.validated = false
	s.valid = false
	s.message = ""
	return nil
}

// Blur commits a manual edit: a non-empty value is validated and, when
// acceptable, the field closes.
func (c *Controller) Blur(key string) error {
	field, ok := c.state.FieldByKey(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session(key)
	if !s.editing {
		return nil
	}
	value := c.state.Get(key)
	if strings.TrimSpace(value) == "" {
		// Leaving a field empty closes it without a verdict.
		s.editing = false
		s.validated = false
		s.valid = false
		s.message = ""
		return nil
	}
	if err := validateValue(field, value); err != nil {
		s.validated = true
		s.valid = false
		s.message = err.Error()
		return nil
	}
	s.validated = true
	s.valid = true
	s.message = ""
	s.editing = false
	return nil
}

// FieldView snapshots one field.
func (c *Controller) FieldView(key string) (View, error) {
	if _, ok := c.state.FieldByKey(key); !ok {
		return View{}, fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked(key), nil
}

// Views snapshots every currently visible field in form order.
func (c *Controller) Views() []View {
	fields := c.state.ActiveFields()
	c.mu.Lock()
	defer c.mu.Unlock()
	views := make([]View, 0, len(fields))
	for _, f := range fields {
		views = append(views, c.viewLocked(f.Key))
	}
	return views
}

func (c *Controller) viewLocked(key string) View {
	s := c.session(key)
	value := c.state.Get(key)
	return View{
		Key:       key,
		Value:     value,
		Recording: s.recording,
		State:     deriveState(value, s),
		Message:   s.message,
		Focused:   c.focus == key,
	}
}

func deriveState(value string, s *fieldSession) FieldState {
	switch {
	case strings.TrimSpace(value) == "":
		return FieldEmpty
	case s.editing:
		return FieldEditing
	case s.validated && s.valid:
		return FieldValid
	case s.validated && !s.valid:
		return FieldInvalid
	default:
		return FieldEmpty
	}
}

func validateValue(field form.Field, value string) error {
	if field.Validate == nil {
		return nil
	}
	return field.Validate(value)
}

// normalizeDate mirrors the date pipeline: simple numeric reformatting
// first, spoken-date parsing second.
func normalizeDate(raw string) (canonical, message string, ok bool) {
	simple := dateparse.FormatWithDots(raw)
	if simple != raw && dateparse.IsValid(simple) {
		return simple, "", true
	}
	parsed, err := dateparse.ParseSpoken(raw)
	if err != nil {
		return raw, err.Error(), false
	}
	return parsed, "", true
}

// normalizeTranscript picks the text pipeline for non-date, non-
// dropdown fields. Country-like labels (including citizenship) run
// through the country dictionary; name labels additionally title-case.
func normalizeTranscript(field form.Field, raw string) string {
	switch field.Type {
	case form.FieldOIB:
		return normalize.OIB(raw)
	case form.FieldNumber:
		return normalize.Number(raw)
	case form.FieldPhone:
		return normalize.Phone(raw)
	case form.FieldEmail:
		return normalize.Email(raw)
	default:
		label := strings.ToLower(field.Label)
		if strings.Contains(label, "država") {
			return normalize.Country(raw)
		}
		titleCase := strings.Contains(label, "ime") || strings.Contains(label, "prezime")
		return normalize.PersonalName(raw, titleCase)
	}
}
