// Package normalize converts raw Croatian speech transcripts into canonical
// field values: spoken digits into digit strings, spoken e-mail addresses
// into addresses, spoken option names into dropdown values, and so on.
//
// All normalizers are pure functions over strings. Dictionaries are
// insertion-ordered ([Dict]); when several entries could claim an input the
// earliest registered entry wins, which keeps the behaviour stable as tables
// grow.
package normalize

import (
	"strconv"
	"strings"
)

// trimTokenPunct strips sentence punctuation that recognisers like to attach
// to spoken words.
func trimTokenPunct(tok string) string {
	return strings.Trim(tok, ".,!?;:")
}

// unitDigits maps Croatian unit words (1-9, common case variants) to their
// value, used for resolving compound numbers such as "dvadeset tri".
var unitDigits = map[string]int{
	"jedan": 1, "jednu": 1, "jedna": 1, "jedno": 1, "jednog": 1,
	"dva": 2, "dvije": 2, "dvje": 2, "dvoje": 2, "dvaju": 2,
	"tri": 3, "troje": 3, "triju": 3,
	"četiri": 4, "četri": 4, "cetiri": 4, "četvero": 4, "četiriju": 4,
	"pet": 5, "petero": 5, "petiju": 5,
	"šest": 6, "šes": 6, "sest": 6, "šestero": 6, "šestiju": 6,
	"sedam": 7, "sedmero": 7, "sedmiju": 7,
	"osam": 8, "osmero": 8, "osmiju": 8,
	"devet": 9, "devetero": 9, "devetiju": 9,
}

// compoundTens maps Croatian tens words (20-90, colloquial variants included)
// to their value.
var compoundTens = map[string]int{
	"dvadeset": 20, "dvades": 20,
	"trideset": 30, "tridesetak": 30,
	"četrdeset": 40, "cetrdeset": 40, "četrdesetak": 40,
	"pedeset": 50, "pedesetak": 50,
	"šezdeset": 60, "sezdeset": 60, "šezdesetak": 60,
	"sedamdeset": 70, "sedamdesetak": 70,
	"osamdeset": 80, "osamdesetak": 80,
	"devedeset": 90, "devedesetak": 90,
}

// substituteNumberWords rewrites number words in transcript to digit strings
// using dict, resolving compound tens+units phrases ("dvadeset tri",
// "dvadeset i tri") before single-word substitution so "dvadeset tri" becomes
// "23" rather than "20 3". Unrecognised tokens pass through unchanged.
func substituteNumberWords(transcript string, dict *Dict) string {
	tokens := strings.Fields(strings.ToLower(transcript))
	out := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := trimTokenPunct(tokens[i])

		if tens, ok := compoundTens[tok]; ok {
			j := i + 1
			if j < len(tokens) && trimTokenPunct(tokens[j]) == "i" {
				j++
			}
			if j < len(tokens) {
				if unit, ok := unitDigits[trimTokenPunct(tokens[j])]; ok {
					out = append(out, strconv.Itoa(tens+unit))
					i = j
					continue
				}
			}
		}

		if v, ok := dict.Get(tok); ok {
			out = append(out, v)
			continue
		}
		out = append(out, tokens[i])
	}

	return strings.Join(out, " ")
}

// stripNonDigits removes every byte that is not an ASCII digit.
func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
