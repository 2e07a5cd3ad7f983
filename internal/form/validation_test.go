package form_test

import (
	"testing"

	"github.com/glasform/glasform/internal/form"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantMsg string
	}{
		{name: "valid", value: "Ivan", wantMsg: ""},
		{name: "diacritics", value: "Šime Đurđević", wantMsg: ""},
		{name: "empty", value: "", wantMsg: "Ime je obavezno"},
		{name: "whitespace only", value: "   ", wantMsg: "Ime je obavezno"},
		{name: "too short", value: "I", wantMsg: "Ime mora imati najmanje 2 znaka"},
		{name: "digits", value: "Ivan2", wantMsg: "Ime može sadržavati samo slova"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			checkMsg(t, form.ValidateName(tt.value), tt.wantMsg)
		})
	}
}

func TestValidateOIB(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantMsg string
	}{
		{name: "valid", value: "12345678901", wantMsg: ""},
		{name: "empty", value: "", wantMsg: "OIB je obavezan"},
		{name: "too short", value: "1234567890", wantMsg: "OIB mora imati točno 11 brojeva"},
		{name: "too long", value: "123456789012", wantMsg: "OIB mora imati točno 11 brojeva"},
		{name: "letters", value: "1234567890a", wantMsg: "OIB mora imati točno 11 brojeva"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			checkMsg(t, form.ValidateOIB(tt.value), tt.wantMsg)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantMsg string
	}{
		{name: "valid", value: "ivan@gmail.com", wantMsg: ""},
		{name: "empty", value: "", wantMsg: "Email je obavezan"},
		{name: "no at", value: "ivan.gmail.com", wantMsg: "Neispravna email adresa"},
		{name: "no dot after at", value: "ivan@gmail", wantMsg: "Neispravna email adresa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			checkMsg(t, form.ValidateEmail(tt.value), tt.wantMsg)
		})
	}
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantMsg string
	}{
		{name: "international", value: "+385912345678", wantMsg: ""},
		{name: "national", value: "0912345678", wantMsg: ""},
		{name: "spaces ignored", value: "091 234 5678", wantMsg: ""},
		{name: "empty", value: "", wantMsg: "Broj mobitela je obavezan"},
		{name: "wrong prefix", value: "1912345678", wantMsg: "Neispravni format broja mobitela (npr. +385912345678 ili 0912345678)"},
		{name: "too short", value: "+38591", wantMsg: "Neispravni format broja mobitela (npr. +385912345678 ili 0912345678)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			checkMsg(t, form.ValidatePhone(tt.value), tt.wantMsg)
		})
	}
}

func TestValidateWorkExperience(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantMsg string
	}{
		{name: "whole years", value: "12", wantMsg: ""},
		{name: "half year", value: "2.5", wantMsg: ""},
		{name: "zero", value: "0", wantMsg: ""},
		{name: "empty", value: "", wantMsg: "Radni staž je obavezan"},
		{name: "negative", value: "-1", wantMsg: "Radni staž mora biti broj između 0 i 50 godina"},
		{name: "too many", value: "51", wantMsg: "Radni staž mora biti broj između 0 i 50 godina"},
		{name: "not a number", value: "puno", wantMsg: "Radni staž mora biti broj između 0 i 50 godina"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			checkMsg(t, form.ValidateWorkExperience(tt.value), tt.wantMsg)
		})
	}
}

func TestValidateNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantMsg string
	}{
		{name: "positive", value: "3", wantMsg: ""},
		{name: "zero", value: "0", wantMsg: ""},
		{name: "decimal", value: "25000.50", wantMsg: ""},
		{name: "empty", value: "", wantMsg: "Ovo polje je obavezno"},
		{name: "negative", value: "-2", wantMsg: "Mora biti pozitivni broj"},
		{name: "words", value: "tri", wantMsg: "Mora biti pozitivni broj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			checkMsg(t, form.ValidateNumber(tt.value), tt.wantMsg)
		})
	}
}

func TestValidateDropdown(t *testing.T) {
	t.Parallel()

	checkMsg(t, form.ValidateDropdown("Najam"), "")
	checkMsg(t, form.ValidateDropdown(""), "Molimo odaberite opciju")
	checkMsg(t, form.ValidateDropdown(form.PlaceholderValue), "Molimo odaberite opciju")
}

func TestValidateBasicAndOptionalText(t *testing.T) {
	t.Parallel()

	checkMsg(t, form.ValidateBasicText("Zagreb"), "")
	checkMsg(t, form.ValidateBasicText("  "), "Ovo polje je obavezno")
	checkMsg(t, form.ValidateOptionalText(""), "")
}

func checkMsg(t *testing.T, err error, want string) {
	t.Helper()
	if want == "" {
		if err != nil {
			t.Errorf("got error %q, want none", err)
		}
		return
	}
	if err == nil || err.Error() != want {
		t.Errorf("got error %v, want %q", err, want)
	}
}
