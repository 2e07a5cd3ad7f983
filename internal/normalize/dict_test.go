package normalize_test

import (
	"strings"
	"testing"

	"github.com/glasform/glasform/internal/normalize"
)

func TestDictMatchOrder(t *testing.T) {
	t.Parallel()

	d := normalize.NewDict(
		normalize.Pair{Key: "osobna iskaznica", Value: "Osobna iskaznica"},
		normalize.Pair{Key: "osobna", Value: "Osobna iskaznica"},
		normalize.Pair{Key: "putovnica", Value: "Putovnica"},
	)

	tests := []struct {
		name    string
		input   string
		want    string
		wantOK  bool
	}{
		{name: "exact", input: "putovnica", want: "Putovnica", wantOK: true},
		{name: "key contained in input", input: "imam osobna iskaznica kod sebe", want: "Osobna iskaznica", wantOK: true},
		{name: "input contained in key", input: "putovni", want: "Putovnica", wantOK: true},
		{name: "insertion order breaks ties", input: "osobna", want: "Osobna iskaznica", wantOK: true},
		{name: "no match", input: "vozačka", wantOK: false},
		{name: "empty input", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := d.Match(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDictKeysPreserveInsertionOrder(t *testing.T) {
	t.Parallel()

	d := normalize.NewDict(
		normalize.Pair{Key: "c", Value: "3"},
		normalize.Pair{Key: "a", Value: "1"},
		normalize.Pair{Key: "b", Value: "2"},
	)
	if got := strings.Join(d.Keys(), ""); got != "cab" {
		t.Errorf("Keys() = %q, want cab", got)
	}
	if got := strings.Join(d.SampleKeys(2), ""); got != "ca" {
		t.Errorf("SampleKeys(2) = %q, want ca", got)
	}
	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}
}
