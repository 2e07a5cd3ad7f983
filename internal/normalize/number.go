package normalize

import (
	"strconv"
	"strings"
)

// numberWords maps spoken Croatian number words to digit strings for amount
// entry, including hundreds and decimal separator words.
var numberWords = NewDict(
	Pair{"nula", "0"}, Pair{"ništa", "0"},
	Pair{"jedan", "1"}, Pair{"jednu", "1"}, Pair{"jedna", "1"},
	Pair{"dva", "2"}, Pair{"dvije", "2"},
	Pair{"tri", "3"},
	Pair{"četiri", "4"}, Pair{"četri", "4"},
	Pair{"pet", "5"},
	Pair{"šest", "6"}, Pair{"šes", "6"},
	Pair{"sedam", "7"},
	Pair{"osam", "8"},
	Pair{"devet", "9"},
	Pair{"deset", "10"},
	Pair{"jedanaest", "11"},
	Pair{"dvanaest", "12"},
	Pair{"trinaest", "13"},
	Pair{"četrnaest", "14"},
	Pair{"petnaest", "15"},
	Pair{"šesnaest", "16"},
	Pair{"sedamnaest", "17"},
	Pair{"osamnaest", "18"},
	Pair{"devetnaest", "19"},
	Pair{"dvadeset", "20"},
	Pair{"trideset", "30"},
	Pair{"četrdeset", "40"},
	Pair{"pedeset", "50"},
	Pair{"šezdeset", "60"},
	Pair{"sedamdeset", "70"},
	Pair{"osamdeset", "80"},
	Pair{"devedeset", "90"},
	Pair{"sto", "100"}, Pair{"stotinu", "100"},
	Pair{"dvjesto", "200"}, Pair{"dvjesta", "200"},
	Pair{"tristo", "300"}, Pair{"trista", "300"},
	Pair{"četiristo", "400"}, Pair{"četirista", "400"},
	Pair{"petsto", "500"},
	Pair{"šesto", "600"}, Pair{"šesta", "600"},
	Pair{"sedamsto", "700"}, Pair{"sedamsta", "700"},
	Pair{"osamsto", "800"}, Pair{"osamsta", "800"},
	Pair{"devetsto", "900"}, Pair{"devetsta", "900"},
	Pair{"tisuću", "1000"}, Pair{"tisuća", "1000"},
	Pair{"hiljada", "1000"}, Pair{"hiljade", "1000"},
	Pair{"zarez", "."}, Pair{"točka", "."}, Pair{"i", "."},
)

// Number converts a spoken amount into a digit string.
//
// Thousand phrases are handled first: for "dvadeset pet tisuća" the part
// before "tisuć"/"hiljad" is converted to digits and the first number found
// becomes the thousands multiplier, giving "25000". Otherwise number words
// are substituted in place (compound tens+units phrases collapse first, so
// "dvadeset pet" is "25" and not "20 5"), the decimal words "zarez" and
// "točka" become ".", and everything outside digits and separators is
// stripped. The comma is normalised to a dot.
func Number(transcript string) string {
	lower := strings.ToLower(transcript)

	if idx := thousandIndex(lower); idx >= 0 {
		before := strings.TrimSpace(lower[:idx])
		multiplier := 1
		digits := substituteNumberWords(before, numberWords)
		if first, ok := firstNumber(digits); ok {
			multiplier = first
		}
		return strconv.Itoa(multiplier * 1000)
	}

	processed := substituteNumberWords(lower, numberWords)
	var b strings.Builder
	b.Grow(len(processed))
	for _, r := range processed {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == ',':
			b.WriteRune('.')
		}
	}
	return b.String()
}

// thousandIndex returns the byte offset of the first "tisuć" or "hiljad"
// stem in s, or -1 when s carries no thousand phrase.
func thousandIndex(s string) int {
	idx := strings.Index(s, "tisuć")
	if j := strings.Index(s, "hiljad"); j >= 0 && (idx < 0 || j < idx) {
		idx = j
	}
	return idx
}

// firstNumber extracts the first run of ASCII digits in s as an integer.
func firstNumber(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.Atoi(s[start:i])
			return n, err == nil
		}
	}
	if start >= 0 {
		n, err := strconv.Atoi(s[start:])
		return n, err == nil
	}
	return 0, false
}
