package normalize

import (
	"fmt"
	"strings"
)

// housingStatus maps spoken phrases to the housing status dropdown values.
var housingStatus = NewDict(
	Pair{"vlastiti", "Vlastiti stan/kuća"},
	Pair{"vlastiti stan", "Vlastiti stan/kuća"},
	Pair{"vlastiti kuća", "Vlastiti stan/kuća"},
	Pair{"vlastita kuća", "Vlastiti stan/kuća"},
	Pair{"vlastita", "Vlastiti stan/kuća"},
	Pair{"vlasništvo", "Vlastiti stan/kuća"},
	Pair{"moj stan", "Vlastiti stan/kuća"},
	Pair{"moja kuća", "Vlastiti stan/kuća"},
	Pair{"kuća", "Vlastiti stan/kuća"},
	Pair{"najam", "Najam"},
	Pair{"najamnik", "Najam"},
	Pair{"najamnica", "Najam"},
	Pair{"iznajmljujem", "Najam"},
	Pair{"rent", "Najam"},
	Pair{"renta", "Najam"},
	Pair{"kod roditelja", "Kod roditelja"},
	Pair{"roditelji", "Kod roditelja"},
	Pair{"s roditeljima", "Kod roditelja"},
	Pair{"sa roditeljima", "Kod roditelja"},
	Pair{"roditeljski dom", "Kod roditelja"},
	Pair{"kod mama", "Kod roditelja"},
	Pair{"kod tata", "Kod roditelja"},
	Pair{"kod mame", "Kod roditelja"},
	Pair{"kod tate", "Kod roditelja"},
	Pair{"stanarsko pravo", "Stanarsko pravo"},
	Pair{"stanarsko", "Stanarsko pravo"},
	Pair{"stanarski", "Stanarsko pravo"},
	Pair{"stanarska prava", "Stanarsko pravo"},
	Pair{"društveni stan", "Stanarsko pravo"},
	Pair{"ostalo", "Ostalo"},
	Pair{"drugo", "Ostalo"},
	Pair{"nešto drugo", "Ostalo"},
	Pair{"ostale opcije", "Ostalo"},
)

// maritalStatus maps spoken phrases to the marital status dropdown values.
var maritalStatus = NewDict(
	Pair{"neoženjen", "Neoženjen/neudana"},
	Pair{"neudana", "Neoženjen/neudana"},
	Pair{"samac", "Neoženjen/neudana"},
	Pair{"samica", "Neoženjen/neudana"},
	Pair{"slobodan", "Neoženjen/neudana"},
	Pair{"slobodna", "Neoženjen/neudana"},
	Pair{"oženjen", "Oženjen/udana"},
	Pair{"udana", "Oženjen/udana"},
	Pair{"u braku", "Oženjen/udana"},
	Pair{"brak", "Oženjen/udana"},
	Pair{"razveden", "Razveden/a"},
	Pair{"razvedena", "Razveden/a"},
	Pair{"razvod", "Razveden/a"},
	Pair{"udovac", "Udovac/udovica"},
	Pair{"udovica", "Udovac/udovica"},
	Pair{"partner", "Izvanbračna zajednica"},
	Pair{"partnerica", "Izvanbračna zajednica"},
	Pair{"izvanbračna zajednica", "Izvanbračna zajednica"},
	Pair{"izvanbračna", "Izvanbračna zajednica"},
	Pair{"zajednica", "Izvanbračna zajednica"},
)

// contractType maps spoken phrases to the employment contract type values.
var contractType = NewDict(
	Pair{"na neodređeno", "Na neodređeno"},
	Pair{"neodređeno", "Na neodređeno"},
	Pair{"neodredjeno", "Na neodređeno"},
	Pair{"stalno", "Na neodređeno"},
	Pair{"trajno", "Na neodređeno"},
	Pair{"na određeno", "Na određeno"},
	Pair{"određeno", "Na određeno"},
	Pair{"odredjeno", "Na određeno"},
	Pair{"privremeno", "Na određeno"},
	Pair{"rok", "Na određeno"},
	Pair{"ostalo", "Ostalo"},
	Pair{"drugo", "Ostalo"},
)

// education maps spoken phrases to the education level dropdown values.
var education = NewDict(
	Pair{"nkv", "NKV / NSS"},
	Pair{"nss", "NKV / NSS"},
	Pair{"nekvalificiran", "NKV / NSS"},
	Pair{"osnovna škola", "NKV / NSS"},
	Pair{"kv", "KV"},
	Pair{"kvalificiran", "KV"},
	Pair{"kvalificirani", "KV"},
	Pair{"vkv", "VKV"},
	Pair{"viši", "VKV"},
	Pair{"visokokvalificiran", "VKV"},
	Pair{"sss", "SSS"},
	Pair{"srednja škola", "SSS"},
	Pair{"srednja", "SSS"},
	Pair{"gimnazija", "SSS"},
	Pair{"všs", "VŠS / PRISTUP"},
	Pair{"viša škola", "VŠS / PRISTUP"},
	Pair{"pristup", "VŠS / PRISTUP"},
	Pair{"vss", "VSS / MAG / BACC"},
	Pair{"fakultet", "VSS / MAG / BACC"},
	Pair{"magistar", "VSS / MAG / BACC"},
	Pair{"bacc", "VSS / MAG / BACC"},
	Pair{"baccalaureus", "VSS / MAG / BACC"},
	Pair{"mag univ", "MR / MAG UNIV / UNIV SPEC"},
	Pair{"magistar univerzitetski", "MR / MAG UNIV / UNIV SPEC"},
	Pair{"univ spec", "MR / MAG UNIV / UNIV SPEC"},
	Pair{"specijalist", "MR / MAG UNIV / UNIV SPEC"},
	Pair{"specijalizacija", "MR / MAG UNIV / UNIV SPEC"},
	Pair{"dr", "DR / DR SC"},
	Pair{"dr sc", "DR / DR SC"},
	Pair{"doktor", "DR / DR SC"},
	Pair{"doktorat", "DR / DR SC"},
	Pair{"phd", "DR / DR SC"},
)

// identityDocument maps spoken phrases to the identity document type values.
var identityDocument = NewDict(
	Pair{"osobna iskaznica", "Osobna iskaznica"},
	Pair{"osobna", "Osobna iskaznica"},
	Pair{"iskaznica", "Osobna iskaznica"},
	Pair{"putovnica", "Putovnica"},
	Pair{"putni list", "Putovnica"},
	Pair{"pasoš", "Putovnica"},
	Pair{"vozačka dozvola", "Vozačka dozvola"},
	Pair{"vozačka", "Vozačka dozvola"},
	Pair{"dozvola", "Vozačka dozvola"},
	Pair{"vozačku", "Vozačka dozvola"},
	Pair{"ostalo", "Ostalo"},
	Pair{"drugo", "Ostalo"},
)

// dropdownMatcher recovers option matches from misheard transcripts after
// exact and substring lookup fail.
var dropdownMatcher = NewMatcher()

// dictForLabel selects the synonym dictionary for a dropdown field by its
// label. Fields without a dedicated dictionary fall back to matching the
// option values themselves.
func dictForLabel(label string, options []string) *Dict {
	switch {
	case strings.Contains(label, "Status stanovanja"):
		return housingStatus
	case strings.Contains(label, "Bračni status"):
		return maritalStatus
	case strings.Contains(label, "Vrsta ugovora"):
		return contractType
	case strings.Contains(label, "Obrazovanje"):
		return education
	case strings.Contains(label, "identifikacijske isprave"):
		return identityDocument
	}

	pairs := make([]Pair, 0, len(options))
	for _, opt := range options {
		pairs = append(pairs, Pair{Key: strings.ToLower(opt), Value: opt})
	}
	return NewDict(pairs...)
}

// Dropdown resolves a spoken phrase to one of a dropdown field's values.
// Matching runs in three stages against the label's synonym dictionary:
// exact key, substring in either direction (insertion order breaking ties),
// then phonetic/fuzzy recovery. When nothing matches, ok is false and hint
// carries an operator-facing message listing example phrases.
func Dropdown(label, transcript string, options []string) (value string, ok bool, hint string) {
	dict := dictForLabel(label, options)
	lower := strings.ToLower(strings.TrimSpace(transcript))

	if v, found := dict.Match(lower); found {
		return v, true, ""
	}
	if v, _, found := dropdownMatcher.Match(lower, dict); found {
		return v, true, ""
	}

	samples := strings.Join(dict.SampleKeys(5), ", ")
	return "", false, fmt.Sprintf("Nije prepoznata opcija: %q. Pokušajte s: %s.", transcript, samples)
}
