package normalize

// oibWords maps spoken Croatian number words to digit strings for OIB entry.
// Case variants and the clipped forms recognisers produce are included.
var oibWords = NewDict(
	Pair{"nula", "0"}, Pair{"ništa", "0"}, Pair{"zero", "0"},
	Pair{"jedan", "1"}, Pair{"jednu", "1"}, Pair{"jedna", "1"}, Pair{"jednog", "1"},
	Pair{"dva", "2"}, Pair{"dvije", "2"}, Pair{"dvoje", "2"}, Pair{"dvaju", "2"},
	Pair{"tri", "3"}, Pair{"troje", "3"}, Pair{"triju", "3"},
	Pair{"četiri", "4"}, Pair{"četri", "4"}, Pair{"četvero", "4"}, Pair{"četiriju", "4"},
	Pair{"pet", "5"}, Pair{"petero", "5"}, Pair{"petiju", "5"},
	Pair{"šest", "6"}, Pair{"šes", "6"}, Pair{"šestero", "6"}, Pair{"šestiju", "6"},
	Pair{"sedam", "7"}, Pair{"sedmero", "7"}, Pair{"sedmiju", "7"},
	Pair{"osam", "8"}, Pair{"osmero", "8"}, Pair{"osmiju", "8"},
	Pair{"devet", "9"}, Pair{"devetero", "9"}, Pair{"devetiju", "9"},
	Pair{"deset", "10"}, Pair{"desetero", "10"},
	Pair{"jedanaest", "11"}, Pair{"jedanest", "11"},
	Pair{"dvanaest", "12"}, Pair{"dvanest", "12"},
	Pair{"trinaest", "13"}, Pair{"trinest", "13"},
	Pair{"četrnaest", "14"}, Pair{"četrnest", "14"},
	Pair{"petnaest", "15"}, Pair{"petnest", "15"},
	Pair{"šesnaest", "16"}, Pair{"šesnest", "16"},
	Pair{"sedamnaest", "17"}, Pair{"sedamnest", "17"},
	Pair{"osamnaest", "18"}, Pair{"osamnest", "18"},
	Pair{"devetnaest", "19"}, Pair{"devetnest", "19"},
	Pair{"dvadeset", "20"}, Pair{"dvades", "20"},
	Pair{"trideset", "30"}, Pair{"tridesetak", "30"},
	Pair{"četrdeset", "40"}, Pair{"četrdesetak", "40"},
	Pair{"pedeset", "50"}, Pair{"pedesetak", "50"},
	Pair{"šezdeset", "60"}, Pair{"šezdesetak", "60"},
	Pair{"sedamdeset", "70"}, Pair{"sedamdesetak", "70"},
	Pair{"osamdeset", "80"}, Pair{"osamdesetak", "80"},
	Pair{"devedeset", "90"}, Pair{"devedesetak", "90"},
)

// OIB converts a spoken digit sequence into a bare digit string: number words
// become digits (compound phrases like "dvadeset tri" collapse to "23") and
// everything that is not a digit is stripped. Validation of the 11-digit
// length is the validator's job, not this function's.
func OIB(transcript string) string {
	return stripNonDigits(substituteNumberWords(transcript, oibWords))
}
