package agentcode_test

import (
	"errors"
	"testing"

	"github.com/glasform/glasform/internal/agentcode"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	v := agentcode.NewValidator(1, 100)

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "single digit pads", raw: "7", want: "007"},
		{name: "two digits pad", raw: "25", want: "025"},
		{name: "hundred stays", raw: "100", want: "100"},
		{name: "already padded", raw: "007", want: "007"},
		{name: "surrounding spaces", raw: " 42 ", want: "042"},
		{name: "zero rejected", raw: "0", wantErr: true},
		{name: "above range", raw: "101", wantErr: true},
		{name: "negative", raw: "-5", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "too many digits", raw: "0100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := v.Format(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, agentcode.ErrInvalid) {
					t.Fatalf("Format(%q) error = %v, want ErrInvalid", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Format(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNewValidatorFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	v := agentcode.NewValidator(0, -1)
	if _, err := v.Format("100"); err != nil {
		t.Errorf("Format(100) with default bounds error = %v", err)
	}
	if _, err := v.Format("101"); err == nil {
		t.Error("Format(101) with default bounds succeeded")
	}
}
