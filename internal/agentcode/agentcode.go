// Package agentcode validates and formats the short numeric code an
// agent signs in with before filling forms.
package agentcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid is returned for codes outside the issued range.
var ErrInvalid = errors.New("Neispravna šifra agenta. Unesite broj između 1 i 100 (npr. 7, 25, 100)")

const (
	// DefaultMinCode and DefaultMaxCode bound the issued agent codes.
	DefaultMinCode = 1
	DefaultMaxCode = 100
)

// Validator checks raw agent-code input against the issued range.
type Validator struct {
	min, max int
}

// NewValidator builds a validator for codes in [min, max]. Zero or
// reversed bounds fall back to the defaults.
func NewValidator(min, max int) *Validator {
	if min <= 0 || max < min {
		min, max = DefaultMinCode, DefaultMaxCode
	}
	return &Validator{min: min, max: max}
}

// Format normalises raw input into the canonical zero-padded code,
// e.g. "7" becomes "007". It returns [ErrInvalid] when the input is
// not a number in the issued range.
func (v *Validator) Format(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > 3 {
		return "", ErrInvalid
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < v.min || n > v.max {
		return "", ErrInvalid
	}
	return fmt.Sprintf("%03d", n), nil
}
