// Package flow drives the voice data-entry loop: per-field capture
// state, transcript normalisation staging, validation and focus
// advancement across the form.
package flow

// RecordingState tracks the capture lifecycle of a single field.
type RecordingState string

const (
	RecordingIdle       RecordingState = "idle"
	RecordingActive     RecordingState = "recording"
	RecordingProcessing RecordingState = "processing"
)

func (s RecordingState) String() string {
	return string(s)
}

// FieldState is the derived presentation state of a field. It is
// computed from the current value, edit flag and validation result,
// never stored.
type FieldState string

const (
	FieldEmpty   FieldState = "empty"
	FieldEditing FieldState = "editing"
	FieldValid   FieldState = "valid"
	FieldInvalid FieldState = "invalid"
)

func (s FieldState) String() string {
	return string(s)
}

// View is a snapshot of one field for the API layer.
type View struct {
	Key       string         `json:"key"`
	Value     string         `json:"value"`
	Recording RecordingState `json:"recordingState"`
	State     FieldState     `json:"fieldState"`
	Message   string         `json:"message,omitempty"`
	Focused   bool           `json:"focused,omitempty"`
}
