package form

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/glasform/glasform/internal/normalize/dateparse"
)

// A ValidationRule checks a single field value and returns an
// operator-facing message when the value is not acceptable.
type ValidationRule func(value string) error

var (
	nameRe  = regexp.MustCompile(`^[a-zA-ZšđčćžŠĐČĆŽ\s]+$`)
	oibRe   = regexp.MustCompile(`^\d{11}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^(\+385|0)[0-9]{8,9}$`)
)

// ValidateName accepts personal names of at least two letters,
// including Croatian diacritics.
func ValidateName(value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return errors.New("Ime je obavezno")
	}
	if utf8.RuneCountInString(v) < 2 {
		return errors.New("Ime mora imati najmanje 2 znaka")
	}
	if !nameRe.MatchString(v) {
		return errors.New("Ime može sadržavati samo slova")
	}
	return nil
}

// ValidateOIB requires exactly eleven digits.
func ValidateOIB(value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return errors.New("OIB je obavezan")
	}
	if !oibRe.MatchString(v) {
		return errors.New("OIB mora imati točno 11 brojeva")
	}
	return nil
}

func ValidateEmail(value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return errors.New("Email je obavezan")
	}
	if !emailRe.MatchString(v) {
		return errors.New("Neispravna email adresa")
	}
	return nil
}

// ValidatePhone accepts Croatian mobile numbers in either the
// international (+385...) or the national (0...) form. Spaces are
// ignored.
func ValidatePhone(value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return errors.New("Broj mobitela je obavezan")
	}
	if !phoneRe.MatchString(strings.ReplaceAll(v, " ", "")) {
		return errors.New("Neispravni format broja mobitela (npr. +385912345678 ili 0912345678)")
	}
	return nil
}

func ValidateWorkExperience(value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return errors.New("Radni staž je obavezan")
	}
	years, err := strconv.ParseFloat(v, 64)
	if err != nil || years < 0 || years > 50 {
		return errors.New("Radni staž mora biti broj između 0 i 50 godina")
	}
	return nil
}

func ValidateNumber(value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return errors.New("Ovo polje je obavezno")
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || n < 0 {
		return errors.New("Mora biti pozitivni broj")
	}
	return nil
}

func ValidateBasicText(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("Ovo polje je obavezno")
	}
	return nil
}

// ValidateOptionalText never fails; the field may stay empty.
func ValidateOptionalText(string) error {
	return nil
}

// ValidateDropdown rejects empty values and the disabled placeholder
// entry every dropdown starts on.
func ValidateDropdown(value string) error {
	if value == "" || value == PlaceholderValue {
		return errors.New("Molimo odaberite opciju")
	}
	return nil
}

// ValidateDate requires the canonical DD.MM.GGGG form and an existing
// calendar date.
func ValidateDate(value string) error {
	return dateparse.ValidateFormat(strings.TrimSpace(value))
}
