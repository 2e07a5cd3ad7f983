package normalize

import "strings"

// phoneWords maps spoken words to phone characters. "hrvatska" and the
// spelled-out prefix "tri osam pet" both resolve to the +385 country code.
var phoneWords = NewDict(
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
	Pair{"plus", "+"},
	Pair{"hrvatska", "+385"},
)

// Phone converts a spoken phone number into a dialable string: digit words
// become digits, "plus" becomes "+", "hrvatska" and the phrase
// "tri osam pet" become "+385", and everything else is stripped.
func Phone(transcript string) string {
	tokens := strings.Fields(strings.ToLower(transcript))
	out := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		if i+2 < len(tokens) &&
			trimTokenPunct(tokens[i]) == "tri" &&
			trimTokenPunct(tokens[i+1]) == "osam" &&
			trimTokenPunct(tokens[i+2]) == "pet" {
			out = append(out, "+385")
			i += 2
			continue
		}
		if v, ok := phoneWords.Get(trimTokenPunct(tokens[i])); ok {
			out = append(out, v)
			continue
		}
		out = append(out, tokens[i])
	}

	var b strings.Builder
	for _, r := range strings.Join(out, "") {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
