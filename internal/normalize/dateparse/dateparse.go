// Package dateparse turns spoken Croatian date phrases and loosely formatted
// numeric dates into the canonical DD.MM.GGGG form, and validates dates in
// that form.
//
// Spoken parsing understands cardinal and ordinal day words ("petnaesti",
// "dvadeset trećeg"), month names in nominative and genitive ("ožujak",
// "ožujka") as well as ordinal month words, and year phrases built from
// "tisuću" and "dvije tisuće" ("tisuću devetsto sedamdeset tri"). Role
// assignment is by value range: the year is the number in (1900, 2100), the
// month the first remaining number in [1, 12], the day the first remaining
// number in [1, 31].
package dateparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parse failure messages, surfaced directly to the operator.
var (
	ErrInsufficientData = errors.New("Nedovoljno podataka za datum. Molimo navedite dan, mjesec i godinu.")
	ErrUnrecognized     = errors.New("Nije moguće prepoznati dan, mjesec ili godinu iz izgovorenog teksta.")
	ErrNonexistentDate  = errors.New("Neispravan datum. Molimo provjerite dan, mjesec i godinu.")
)

// numberWords maps Croatian day/number words (cardinals, ordinals, genitive
// forms, clipped recogniser variants) to their value.
var numberWords = map[string]int{
	"nula": 0, "ništa": 0, "zero": 0,
	"jedan": 1, "jednu": 1, "jedna": 1, "jednog": 1, "prvog": 1, "prvi": 1,
	"dva": 2, "dvije": 2, "dvoje": 2, "dvaju": 2, "drugi": 2, "drugog": 2,
	"tri": 3, "troje": 3, "triju": 3, "treći": 3, "trećeg": 3, "treće": 3,
	"četiri": 4, "četri": 4, "četvero": 4, "četvrti": 4, "četvrtog": 4,
	"pet": 5, "petero": 5, "peti": 5, "petog": 5, "pete": 5,
	"šest": 6, "šes": 6, "šestero": 6, "šesti": 6, "šestog": 6,
	"sedam": 7, "sedmero": 7, "sedmi": 7, "sedmog": 7,
	"osam": 8, "osmero": 8, "osmi": 8, "osmog": 8,
	"devet": 9, "devetero": 9, "deveti": 9, "devetog": 9,
	"deset": 10, "desetero": 10, "deseti": 10, "desetog": 10,
	"jedanaest": 11, "jedanest": 11, "jedanaesti": 11,
	"dvanaest": 12, "dvanest": 12, "dvanaesti": 12,
	"trinaest": 13, "trinest": 13, "trinaesti": 13,
	"četrnaest": 14, "četrnest": 14, "četrnaesti": 14,
	"petnaest": 15, "petnest": 15, "petnaesti": 15,
	"šesnaest": 16, "šesnest": 16, "šesnaesti": 16,
	"sedamnaest": 17, "sedamnest": 17, "sedamnaesti": 17,
	"osamnaest": 18, "osamnest": 18, "osamnaesti": 18,
	"devetnaest": 19, "devetnest": 19, "devetnaesti": 19,
	"dvadeset": 20, "dvades": 20, "dvadeseti": 20,
	"trideset": 30, "trides": 30, "trideseti": 30,
}

// monthWords maps Croatian month names (nominative, genitive) and ordinal
// month words to the month number.
var monthWords = map[string]int{
	"siječanj": 1, "siječnja": 1, "prvog": 1, "prvi": 1, "prvom": 1,
	"veljača": 2, "veljače": 2, "drugog": 2, "drugi": 2, "drugom": 2,
	"ožujak": 3, "ožujka": 3, "trećeg": 3, "treći": 3, "trećem": 3,
	"travanj": 4, "travnja": 4, "četvrtog": 4, "četvrti": 4, "četvrtom": 4,
	"svibanj": 5, "svibnja": 5, "petog": 5, "peti": 5, "petom": 5,
	"lipanj": 6, "lipnja": 6, "šestog": 6, "šesti": 6, "šestom": 6,
	"srpanj": 7, "srpnja": 7, "sedmog": 7, "sedmi": 7, "sedmom": 7,
	"kolovoz": 8, "kolovoza": 8, "osmog": 8, "osmi": 8, "osmom": 8,
	"rujan": 9, "rujna": 9, "devetog": 9, "deveti": 9, "devetom": 9,
	"listopad": 10, "listopada": 10, "desetog": 10, "deseti": 10, "desetom": 10,
	"studeni": 11, "studenoga": 11, "jedanaestog": 11, "jedanaesti": 11, "jedanaestom": 11,
	"prosinac": 12, "prosinca": 12, "dvanaestog": 12, "dvanaesti": 12, "dvanaestom": 12,
}

// hundredsWords are the century words accepted inside a "tisuću ..." year
// phrase.
var hundredsWords = map[string]int{
	"devetsto": 900,
	"osamsto":  800,
	"sedamsto": 700,
	"šesto":    600,
}

// fillerWords are dropped from the transcript before parsing.
var fillerWords = map[string]bool{
	"godine": true, "god": true, "datum": true,
	"rođen": true, "rođena": true, "rođenja": true,
}

var (
	allDigits   = regexp.MustCompile(`^\d+$`)
	looseFormat = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	strictForm  = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
)

// FormatWithDots reformats a loosely separated numeric date ("15 3 1990",
// "15-03-1990", "15,3,1990") into DD.MM.GGGG with zero-padded day and month.
// Input that is not exactly three numeric parts is returned unchanged.
func FormatWithDots(raw string) string {
	parts := strings.FieldsFunc(strings.TrimSpace(raw), func(r rune) bool {
		return r == ' ' || r == '.' || r == ',' || r == '-'
	})
	if len(parts) != 3 {
		return raw
	}
	for _, p := range parts {
		if !allDigits.MatchString(p) {
			return raw
		}
	}
	return pad2(parts[0]) + "." + pad2(parts[1]) + "." + parts[2]
}

// pad2 left-pads a numeric string to two digits.
func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// ParseSpoken converts a spoken Croatian date phrase into DD.MM.GGGG.
// A simple numeric phrase ("15 12 1973") is formatted directly; otherwise
// day, month, and year are extracted from the word tables and assembled by
// value range. The returned error carries an operator-facing Croatian
// message.
func ParseSpoken(transcript string) (string, error) {
	if formatted := FormatWithDots(transcript); formatted != transcript && IsValid(formatted) {
		return formatted, nil
	}

	tokens := cleanTokens(transcript)

	var extracted []int

	// Year phrases consume their tokens so the tail words are not re-read
	// as day numbers.
	tokens, extracted = extractYearPhrases(tokens, extracted)

	// Compound days: "dvadeset [i] tri" style phrases for 21-29 and 31.
	tokens, extracted = extractCompoundDays(tokens, extracted)

	for _, tok := range tokens {
		if v, ok := numberWords[tok]; ok {
			extracted = append(extracted, v)
		}
		if v, ok := monthWords[tok]; ok {
			extracted = append(extracted, v)
		}
		if len(tok) == 4 && allDigits.MatchString(tok) {
			if y, _ := strconv.Atoi(tok); y >= 1900 && y <= 2100 {
				extracted = append(extracted, y)
			}
		}
	}

	if len(extracted) < 3 {
		return "", ErrInsufficientData
	}

	var day, month, year int
	for _, n := range extracted {
		if year == 0 && n > 1900 && n < 2100 {
			year = n
		}
	}
	for _, n := range extracted {
		if month == 0 && n >= 1 && n <= 12 && n != year {
			month = n
		}
	}
	for _, n := range extracted {
		if day == 0 && n >= 1 && n <= 31 && n != year && n != month {
			day = n
		}
	}

	if day == 0 || month == 0 || year == 0 {
		return "", ErrUnrecognized
	}

	if !dateExists(day, month, year) {
		return "", ErrNonexistentDate
	}

	return fmt.Sprintf("%02d.%02d.%d", day, month, year), nil
}

// cleanTokens lowercases the transcript, drops filler words, and splits it
// into tokens.
func cleanTokens(transcript string) []string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(transcript)))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:")
		if f == "" || fillerWords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// extractYearPhrases finds "tisuću ..." and "dvije tisuće ..." year phrases,
// appends the assembled year to extracted, and returns the tokens with the
// phrase removed.
func extractYearPhrases(tokens []string, extracted []int) ([]string, []int) {
	out := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		// "dvije tisuće" and its case variants start a 2000-based year.
		if (tok == "dvije" || tok == "dviju" || tok == "dvje") && i+1 < len(tokens) &&
			(tokens[i+1] == "tisuće" || tokens[i+1] == "tisuća") {
			year := 2000
			consumed := yearTail(tokens[i+2:], &year, false)
			if year > 2000 {
				extracted = append(extracted, year)
				i += 1 + consumed
				continue
			}
			// A bare "dvije tisuće" is the year 2000 itself only when more
			// context exists; leave the tokens for regular extraction.
		}

		// "tisuću devetsto ..." starts a 1000-based year.
		if tok == "tisuću" || tok == "tisuća" {
			year := 1000
			consumed := yearTail(tokens[i+1:], &year, true)
			if year > 1000 {
				extracted = append(extracted, year)
				i += consumed
				continue
			}
		}

		out = append(out, tok)
	}

	return out, extracted
}

// yearTens maps tens words beyond the day range (40-90), valid only inside
// year phrases.
var yearTens = map[string]int{
	"četrdeset": 40, "pedeset": 50, "šezdeset": 60,
	"sedamdeset": 70, "osamdeset": 80, "devedeset": 90,
}

// yearTail consumes tokens that extend a year phrase: an optional century
// word (when hundreds is true), then tens/units words including compound
// "sedamdeset [i] tri" phrases. Returns the number of tokens consumed and
// adds their value to *year.
func yearTail(tokens []string, year *int, hundreds bool) int {
	consumed := 0
	for consumed < len(tokens) {
		tok := tokens[consumed]

		if hundreds {
			if h, ok := hundredsWords[tok]; ok {
				*year += h
				consumed++
				hundreds = false
				continue
			}
		}

		v, ok := yearTens[tok]
		if !ok {
			if n, known := numberWords[tok]; known && n <= 99 {
				v, ok = n, true
			}
		}
		if !ok {
			break
		}

		// Compound tens: "sedamdeset tri" adds 73, not 70 then 3.
		if v >= 20 && v%10 == 0 {
			next := consumed + 1
			if next < len(tokens) && tokens[next] == "i" {
				next++
			}
			if next < len(tokens) {
				if u, known := numberWords[tokens[next]]; known && u >= 1 && u <= 9 {
					*year += v + u
					consumed = next + 1
					continue
				}
			}
		}

		*year += v
		consumed++
	}
	return consumed
}

// extractCompoundDays resolves "dvadeset [i] <unit>" phrases (21-29) and
// "trideset [i] jedan" (31), appending the value to extracted and removing
// the consumed tokens.
func extractCompoundDays(tokens []string, extracted []int) ([]string, []int) {
	out := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "dvadeset" || tok == "trideset" {
			j := i + 1
			if j < len(tokens) && tokens[j] == "i" {
				j++
			}
			if j < len(tokens) {
				if u, ok := numberWords[tokens[j]]; ok && u >= 1 && u <= 9 {
					base := 20
					if tok == "trideset" {
						base = 30
					}
					if base == 20 || u == 1 {
						extracted = append(extracted, base+u)
						i = j
						continue
					}
				}
			}
		}
		out = append(out, tok)
	}

	return out, extracted
}

// dateExists reports whether the day/month/year combination names a real
// calendar day.
func dateExists(day, month, year int) bool {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return d.Year() == year && d.Month() == time.Month(month) && d.Day() == day
}

// ValidateFormat checks a canonical date value. It returns nil when the
// value is a well-formed, existing date in DD.MM.GGGG with the year between
// 1900 and 2100; otherwise the error message tells the operator what to fix.
func ValidateFormat(dateString string) error {
	trimmed := strings.TrimSpace(dateString)
	if trimmed == "" {
		return errors.New("Datum je obavezan")
	}

	m := looseFormat.FindStringSubmatch(trimmed)
	if m == nil {
		return errors.New("Neispravan format datuma. Koristite DD.MM.GGGG (npr. 15.03.1990)")
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if day < 1 || day > 31 {
		return errors.New("Dan mora biti između 1 i 31")
	}
	if month < 1 || month > 12 {
		return errors.New("Mjesec mora biti između 1 i 12")
	}
	if year < 1900 || year > 2100 {
		return errors.New("Godina mora biti između 1900 i 2100")
	}
	if !dateExists(day, month, year) {
		return errors.New("Neispravan datum. Provjerite da li datum postoji (npr. ne postoji 32.01.2023).")
	}

	return nil
}

// IsValid reports whether value is strictly DD.MM.GGGG (zero-padded) and
// names an existing calendar day.
func IsValid(value string) bool {
	if !strictForm.MatchString(value) {
		return false
	}
	parts := strings.Split(value, ".")
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	return dateExists(day, month, year)
}
