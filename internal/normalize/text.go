package normalize

import (
	"strings"
	"unicode"
)

// countries maps spoken country names (Croatian and English variants) to
// their canonical Croatian form.
var countries = NewDict(
	Pair{"hrvatska", "Hrvatska"}, Pair{"hrv", "Hrvatska"}, Pair{"croatia", "Hrvatska"},
	Pair{"slovenija", "Slovenija"}, Pair{"slovenia", "Slovenija"},
	Pair{"srbija", "Srbija"}, Pair{"serbia", "Srbija"},
	Pair{"bosna", "Bosna i Hercegovina"}, Pair{"bosna i hercegovina", "Bosna i Hercegovina"}, Pair{"bosnia", "Bosna i Hercegovina"},
	Pair{"crna gora", "Crna Gora"}, Pair{"montenegro", "Crna Gora"},
	Pair{"makedonija", "Sjeverna Makedonija"}, Pair{"macedonia", "Sjeverna Makedonija"},
	Pair{"albanija", "Albanija"}, Pair{"albania", "Albanija"},
	Pair{"italija", "Italija"}, Pair{"italy", "Italija"},
	Pair{"austrija", "Austrija"}, Pair{"austria", "Austrija"},
	Pair{"njemačka", "Njemačka"}, Pair{"germany", "Njemačka"},
	Pair{"francuska", "Francuska"}, Pair{"france", "Francuska"},
	Pair{"španjolska", "Španjolska"}, Pair{"spain", "Španjolska"},
	Pair{"portugal", "Portugal"},
	Pair{"švicarska", "Švicarska"}, Pair{"switzerland", "Švicarska"},
	Pair{"belgija", "Belgija"}, Pair{"belgium", "Belgija"},
	Pair{"nizozemska", "Nizozemska"}, Pair{"netherlands", "Nizozemska"},
	Pair{"danska", "Danska"}, Pair{"denmark", "Danska"},
	Pair{"švedska", "Švedska"}, Pair{"sweden", "Švedska"},
	Pair{"norveška", "Norveška"}, Pair{"norway", "Norveška"},
	Pair{"finska", "Finska"}, Pair{"finland", "Finska"},
	Pair{"poljska", "Poljska"}, Pair{"poland", "Poljska"},
	Pair{"češka", "Češka"}, Pair{"czech", "Češka"},
	Pair{"slovačka", "Slovačka"}, Pair{"slovakia", "Slovačka"},
	Pair{"mađarska", "Mađarska"}, Pair{"hungary", "Mađarska"},
	Pair{"rumunjska", "Rumunjska"}, Pair{"romania", "Rumunjska"},
	Pair{"bugarska", "Bugarska"}, Pair{"bulgaria", "Bugarska"},
	Pair{"grčka", "Grčka"}, Pair{"greece", "Grčka"},
	Pair{"turska", "Turska"}, Pair{"turkey", "Turska"},
	Pair{"rusija", "Rusija"}, Pair{"russia", "Rusija"},
	Pair{"ukrajina", "Ukrajina"}, Pair{"ukraine", "Ukrajina"},
	Pair{"velika britanija", "Velika Britanija"}, Pair{"united kingdom", "Velika Britanija"}, Pair{"uk", "Velika Britanija"},
	Pair{"irska", "Irska"}, Pair{"ireland", "Irska"},
	Pair{"amerika", "Sjedinjene Američke Države"}, Pair{"usa", "Sjedinjene Američke Države"}, Pair{"united states", "Sjedinjene Američke Države"},
	Pair{"kanada", "Kanada"}, Pair{"canada", "Kanada"},
	Pair{"australija", "Australija"}, Pair{"australia", "Australija"},
	Pair{"novi zeland", "Novi Zeland"}, Pair{"new zealand", "Novi Zeland"},
	Pair{"japan", "Japan"},
	Pair{"kina", "Kina"}, Pair{"china", "Kina"},
	Pair{"indija", "Indija"}, Pair{"india", "Indija"},
	Pair{"brazil", "Brazil"},
	Pair{"argentina", "Argentina"},
	Pair{"čile", "Čile"}, Pair{"chile", "Čile"},
	Pair{"meksiko", "Meksiko"}, Pair{"mexico", "Meksiko"},
)

// nameCorrections maps recogniser mishearings to the names they usually
// stand for, applied token by token and case-insensitively.
var nameCorrections = NewDict(
	Pair{"justice", "Justinović"},
	Pair{"justin", "Justin"},
	Pair{"justinovic", "Justinović"},
	Pair{"marko", "Marko"},
	Pair{"ana", "Ana"},
	Pair{"petra", "Petra"},
	Pair{"ivan", "Ivan"},
	Pair{"maja", "Maja"},
	Pair{"luka", "Luka"},
	Pair{"sara", "Sara"},
	Pair{"david", "David"},
	Pair{"elena", "Elena"},
	Pair{"nikola", "Nikola"},
	Pair{"katarina", "Katarina"},
	Pair{"antonio", "Antonio"},
	Pair{"barbara", "Barbara"},
	Pair{"filip", "Filip"},
	Pair{"andrea", "Andrea"},
	Pair{"mateo", "Mateo"},
	Pair{"lucija", "Lucija"},
	Pair{"mario", "Mario"},
	Pair{"tomislav", "Tomislav"},
	Pair{"josip", "Josip"},
	Pair{"stjepan", "Stjepan"},
	Pair{"ante", "Ante"},
	Pair{"ivo", "Ivo"},
	Pair{"hrvoje", "Hrvoje"},
	Pair{"damir", "Damir"},
	Pair{"zoran", "Zoran"},
	Pair{"goran", "Goran"},
)

// countryMatcher recovers country matches from misheard transcripts after
// exact and substring lookup fail.
var countryMatcher = NewMatcher()

// Country resolves a spoken country name to its canonical Croatian form.
// Exact and substring dictionary matching come first, then phonetic/fuzzy
// recovery; an unknown country is returned with only its first letter
// capitalised.
func Country(transcript string) string {
	lower := strings.ToLower(strings.TrimSpace(transcript))
	if v, ok := countries.Match(lower); ok {
		return v
	}
	if v, _, ok := countryMatcher.Match(lower, countries); ok {
		return v
	}
	return capitalizeFirst(transcript)
}

// PersonalName applies the recogniser mishearing corrections to each token.
// When titleCase is true (first/last name fields) every word additionally
// gets leading-capital casing.
func PersonalName(transcript string, titleCase bool) string {
	tokens := strings.Fields(transcript)
	for i, tok := range tokens {
		if v, ok := nameCorrections.Get(strings.ToLower(trimTokenPunct(tok))); ok {
			tokens[i] = v
		} else if titleCase {
			tokens[i] = capitalizeFirst(tok)
		}
	}
	return strings.Join(tokens, " ")
}

// capitalizeFirst upper-cases the first rune and lower-cases the rest.
func capitalizeFirst(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
