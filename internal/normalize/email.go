package normalize

import (
	"regexp"
	"strings"
)

// emailPhrases maps multi-word spoken phrases to email fragments. Phrases are
// resolved before single words so "donja crtica" becomes "_" rather than
// "donja" + "-".
var emailPhrases = NewDict(
	Pair{"donja crtica", "_"},
	Pair{"google mail", "gmail"},
	Pair{"gugl mejl", "gmail"},
	Pair{"c o m", "com"},
	Pair{"see o m", "com"},
	Pair{"si o em", "com"},
	Pair{"h r", "hr"},
	Pair{"ha er", "hr"},
)

// emailWords maps single spoken words to email fragments: "at" words to "@",
// "dot" words to ".", separator names, provider name variants, and digits.
var emailWords = NewDict(
	Pair{"et", "@"}, Pair{"ad", "@"}, Pair{"majmun", "@"}, Pair{"manki", "@"}, Pair{"monkey", "@"},
	Pair{"at", "@"}, Pair{"eta", "@"}, Pair{"add", "@"}, Pair{"ed", "@"},
	Pair{"točka", "."}, Pair{"tačka", "."}, Pair{"dot", "."}, Pair{"tacka", "."}, Pair{"tocka", "."},
	Pair{"točku", "."}, Pair{"tačku", "."}, Pair{"točke", "."}, Pair{"tačke", "."},
	Pair{"minus", "-"}, Pair{"crtica", "-"}, Pair{"dash", "-"}, Pair{"tire", "-"},
	Pair{"podvlaka", "_"}, Pair{"underscore", "_"},
	Pair{"gmail", "gmail"}, Pair{"džimejl", "gmail"}, Pair{"jimejl", "gmail"}, Pair{"gmejl", "gmail"},
	Pair{"yahoo", "yahoo"}, Pair{"jahu", "yahoo"}, Pair{"jahoo", "yahoo"},
	Pair{"outlook", "outlook"}, Pair{"autluk", "outlook"}, Pair{"outluk", "outlook"},
	Pair{"hotmail", "hotmail"}, Pair{"hotmejl", "hotmail"},
	Pair{"kom", "com"},
	Pair{"hr", "hr"},
	Pair{"net", "net"}, Pair{"org", "org"},
	Pair{"info", "info"}, Pair{"admin", "admin"}, Pair{"support", "support"},
	Pair{"contact", "contact"}, Pair{"kontakt", "contact"},
	Pair{"nula", "0"}, Pair{"jedan", "1"}, Pair{"dva", "2"}, Pair{"tri", "3"}, Pair{"četiri", "4"},
	Pair{"pet", "5"}, Pair{"šest", "6"}, Pair{"sedam", "7"}, Pair{"osam", "8"}, Pair{"devet", "9"},
)

// knownProviders get a ".com" appended when spoken without a TLD, and a
// misheard ".kom" repaired.
var knownProviders = []string{"gmail", "yahoo", "outlook", "hotmail"}

var (
	repeatedDots        = regexp.MustCompile(`\.+`)
	repeatedAts         = regexp.MustCompile(`@+`)
	repeatedDashes      = regexp.MustCompile(`--+`)
	repeatedUnderscores = regexp.MustCompile(`__+`)
)

// Email converts a spoken e-mail address into a plain address string.
// Spoken symbol names ("majmun", "točka", "crtica") become symbols, provider
// name variants are canonicalised, tokens are joined without spaces, repeated
// separators collapse, and well-known providers get their ".com" completed.
func Email(transcript string) string {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(transcript)))
	out := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		matched := false
		for window := 3; window >= 2; window-- {
			if i+window > len(tokens) {
				continue
			}
			phrase := strings.Join(tokens[i:i+window], " ")
			if v, ok := emailPhrases.Get(phrase); ok {
				out = append(out, v)
				i += window - 1
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		clean := trimTokenPunct(tokens[i])
		if v, ok := emailWords.Get(clean); ok {
			out = append(out, v)
		} else {
			out = append(out, tokens[i])
		}
	}

	sanitized := strings.Join(out, "")
	sanitized = strings.ReplaceAll(sanitized, " ", "")
	sanitized = repeatedDots.ReplaceAllString(sanitized, ".")
	sanitized = repeatedAts.ReplaceAllString(sanitized, "@")
	sanitized = repeatedDashes.ReplaceAllString(sanitized, "-")
	sanitized = repeatedUnderscores.ReplaceAllString(sanitized, "_")

	for _, provider := range knownProviders {
		if strings.Contains(sanitized, "@"+provider) && !strings.Contains(sanitized, ".com") {
			sanitized = strings.Replace(sanitized, "@"+provider, "@"+provider+".com", 1)
		}
		sanitized = strings.ReplaceAll(sanitized, provider+".kom", provider+".com")
	}

	return sanitized
}
