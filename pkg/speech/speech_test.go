package speech_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/glasform/glasform/pkg/speech"
)

func TestUtteranceBest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		alts     []speech.Alternative
		wantText string
		wantOK   bool
	}{
		{
			name:   "empty",
			alts:   nil,
			wantOK: false,
		},
		{
			name:     "single",
			alts:     []speech.Alternative{{Text: "ana", Confidence: 0.4}},
			wantText: "ana",
			wantOK:   true,
		},
		{
			name: "highest confidence wins",
			alts: []speech.Alternative{
				{Text: "ivan", Confidence: 0.61},
				{Text: "ivana", Confidence: 0.93},
				{Text: "i van", Confidence: 0.72},
			},
			wantText: "ivana",
			wantOK:   true,
		},
		{
			name: "tie keeps the earliest",
			alts: []speech.Alternative{
				{Text: "prvi", Confidence: 0.8},
				{Text: "drugi", Confidence: 0.8},
			},
			wantText: "prvi",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := speech.Utterance{Alternatives: tt.alts}.Best()
			if ok != tt.wantOK {
				t.Fatalf("Best() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Text != tt.wantText {
				t.Errorf("Best() = %q, want %q", got.Text, tt.wantText)
			}
		})
	}
}

func TestCaptureErrorMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("socket closed")
	err := &speech.CaptureError{Code: speech.ErrNetwork, Cause: cause}
	if !strings.Contains(err.Error(), "network") {
		t.Errorf("Error() = %q, want it to mention the code", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	bare := &speech.CaptureError{Code: speech.ErrNoSpeech}
	if !strings.Contains(bare.Error(), "no-speech") {
		t.Errorf("Error() = %q, want it to mention the code", bare.Error())
	}
}
