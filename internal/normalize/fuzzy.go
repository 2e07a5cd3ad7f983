package normalize

import (
	"strings"

	"github.com/antzucaro/matchr"
)

const (
	defaultPhoneticThreshold = 0.70
	defaultFuzzyThreshold    = 0.85
)

// MatcherOption is a functional option for configuring a [Matcher].
type MatcherOption func(*Matcher)

// WithPhoneticThreshold sets the minimum Jaro-Winkler score required for a
// phonetically-matched key to be accepted. Default: 0.70.
func WithPhoneticThreshold(threshold float64) MatcherOption {
	return func(m *Matcher) {
		m.phoneticThreshold = threshold
	}
}

// WithFuzzyThreshold sets the minimum Jaro-Winkler score required when no
// phonetic match is found and the matcher falls back to pure string
// similarity. Default: 0.85.
func WithFuzzyThreshold(threshold float64) MatcherOption {
	return func(m *Matcher) {
		m.fuzzyThreshold = threshold
	}
}

// Matcher recovers dictionary matches from misheard transcripts. It combines
// Double Metaphone phonetic encoding with Jaro-Winkler similarity:
//
//  1. Phonetic candidate filtering: keys whose Double Metaphone codes overlap
//     with the input's codes become candidates and are ranked by Jaro-Winkler
//     against a lower threshold.
//  2. Fuzzy fallback: when no phonetic candidate clears its threshold, pure
//     Jaro-Winkler similarity is tested against a higher threshold.
//
// It only runs after exact and substring dictionary matching have failed, so
// a clean transcript never reaches it. All methods are safe for concurrent
// use — the Matcher is read-only after construction.
type Matcher struct {
	phoneticThreshold float64
	fuzzyThreshold    float64
}

// NewMatcher returns a new [Matcher] configured with the supplied options.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{
		phoneticThreshold: defaultPhoneticThreshold,
		fuzzyThreshold:    defaultFuzzyThreshold,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Match finds the dictionary key most similar to input and returns its value.
// Ranking ties keep the key registered first. When matched is false the
// input could not be attributed to any key with sufficient confidence.
func (m *Matcher) Match(input string, dict *Dict) (value string, confidence float64, matched bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || dict.Len() == 0 {
		return "", 0, false
	}

	inputTokens := strings.Fields(input)
	inputCodes := codesForTokens(inputTokens)

	type candidate struct {
		key      string
		score    float64
		phonetic bool
	}

	var best candidate

	for _, key := range dict.Keys() {
		keyTokens := strings.Fields(key)

		keyCodes := codesForTokens(keyTokens)
		phoneticMatch := codesOverlap(inputCodes, keyCodes)

		jwScore := bestJWScore(inputTokens, keyTokens, input, key)

		if phoneticMatch {
			if jwScore >= m.phoneticThreshold {
				if !best.phonetic || jwScore > best.score {
					best = candidate{key: key, score: jwScore, phonetic: true}
				}
			}
		} else if !best.phonetic {
			if jwScore >= m.fuzzyThreshold && jwScore > best.score {
				best = candidate{key: key, score: jwScore, phonetic: false}
			}
		}
	}

	if best.key != "" {
		v, _ := dict.Get(best.key)
		return v, best.score, true
	}
	return "", 0, false
}

// codesForTokens returns the union of all Double Metaphone codes for the
// given tokens. Empty codes (produced when the word is too short or contains
// no consonants) are excluded.
func codesForTokens(tokens []string) map[string]struct{} {
	codes := make(map[string]struct{}, len(tokens)*2)
	for _, t := range tokens {
		p, s := matchr.DoubleMetaphone(t)
		if p != "" {
			codes[p] = struct{}{}
		}
		if s != "" {
			codes[s] = struct{}{}
		}
	}
	return codes
}

// codesOverlap returns true if the two code sets share at least one code.
func codesOverlap(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for code := range a {
		if _, ok := b[code]; ok {
			return true
		}
	}
	return false
}

// bestJWScore computes the highest Jaro-Winkler similarity between the input
// and the key using three strategies: full strings, space-stripped strings,
// and the best pairwise token score.
func bestJWScore(inputTokens, keyTokens []string, inputFull, keyFull string) float64 {
	score := matchr.JaroWinkler(inputFull, keyFull, false)

	if len(inputTokens) > 1 || len(keyTokens) > 1 {
		concat1 := strings.Join(inputTokens, "")
		concat2 := strings.Join(keyTokens, "")
		if s := matchr.JaroWinkler(concat1, concat2, false); s > score {
			score = s
		}
	}

	for _, it := range inputTokens {
		for _, kt := range keyTokens {
			if s := matchr.JaroWinkler(it, kt, false); s > score {
				score = s
			}
		}
	}

	return score
}
