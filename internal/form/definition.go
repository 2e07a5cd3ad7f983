package form

// Keys and values the flow logic branches on.
const (
	ContractTypeKey = "vrstaUgovora"
	FixedTermValue  = "Na određeno"
)

var statusStanovanjaOptions = []Option{
	{Label: "Odaberite status stanovanja", Value: PlaceholderValue, Disabled: true},
	{Label: "Vlastiti stan/kuća", Value: "Vlastiti stan/kuća"},
	{Label: "Najam", Value: "Najam"},
	{Label: "Kod roditelja", Value: "Kod roditelja"},
	{Label: "Stanarsko pravo", Value: "Stanarsko pravo"},
	{Label: "Ostalo", Value: "Ostalo"},
}

var bracniStatusOptions = []Option{
	{Label: "Odaberite bračni status", Value: PlaceholderValue, Disabled: true},
	{Label: "Neoženjen/neudana", Value: "Neoženjen/neudana"},
	{Label: "Oženjen/udana", Value: "Oženjen/udana"},
	{Label: "Razveden/a", Value: "Razveden/a"},
	{Label: "Udovac/udovica", Value: "Udovac/udovica"},
	{Label: "Izvanbračna zajednica", Value: "Izvanbračna zajednica"},
}

var vrstaUgovoraOptions = []Option{
	{Label: "Odaberite vrstu ugovora", Value: PlaceholderValue, Disabled: true},
	{Label: "Na neodređeno", Value: "Na neodređeno"},
	{Label: "Na određeno", Value: "Na određeno"},
	{Label: "Ostalo", Value: "Ostalo"},
}

var obrazovanjeOptions = []Option{
	{Label: "Odaberite obrazovanje", Value: PlaceholderValue, Disabled: true},
	{Label: "NKV / NSS", Value: "NKV / NSS"},
	{Label: "KV", Value: "KV"},
	{Label: "VKV", Value: "VKV"},
	{Label: "SSS", Value: "SSS"},
	{Label: "VŠS / PRISTUP", Value: "VŠS / PRISTUP"},
	{Label: "VSS / MAG / BACC", Value: "VSS / MAG / BACC"},
	{Label: "MR / MAG UNIV / UNIV SPEC", Value: "MR / MAG UNIV / UNIV SPEC"},
	{Label: "DR / DR SC", Value: "DR / DR SC"},
}

var identificationTypeOptions = []Option{
	{Label: "Odaberite vrstu isprave", Value: PlaceholderValue, Disabled: true},
	{Label: "Osobna iskaznica", Value: "Osobna iskaznica"},
	{Label: "Putovnica", Value: "Putovnica"},
	{Label: "Vozačka dozvola", Value: "Vozačka dozvola"},
	{Label: "Ostalo", Value: "Ostalo"},
}

// fixedTermContract gates the contract date fields: they only apply to
// fixed-term employment contracts.
func fixedTermContract(s *State) bool {
	return s.Get(ContractTypeKey) == FixedTermValue
}

// Definition returns the full loan-application form, section by
// section, in the order the operator walks through it.
func Definition() []Section {
	return []Section{
		{
			Title: "Osnovni podaci",
			Fields: []Field{
				{Key: "firstName", Label: "Ime", Placeholder: "Unesite vaše ime", Type: FieldText, Validate: ValidateName},
				{Key: "lastName", Label: "Prezime", Placeholder: "Unesite vaše prezime", Type: FieldText, Validate: ValidateName},
				{Key: "dateOfBirth", Label: "Datum rođenja", Placeholder: "Unesite datum rođenja (DD.MM.GGGG)", Type: FieldDate, Validate: ValidateDate},
				{Key: "placeOfBirth", Label: "Mjesto rođenja", Placeholder: "Unesite mjesto rođenja", Type: FieldText, Validate: ValidateBasicText},
				{Key: "countryOfBirth", Label: "Država rođenja", Placeholder: "Unesite državu rođenja", Type: FieldText, Validate: ValidateBasicText},
				{Key: "citizenship1", Label: "Državljanstvo (1)", Placeholder: "Unesite prvo državljanstvo", Type: FieldText, Validate: ValidateBasicText},
				{Key: "citizenship2", Label: "Državljanstvo (2)", Placeholder: "Unesite drugo državljanstvo (opcionalno)", Type: FieldText, Validate: ValidateOptionalText, Optional: true},
				{Key: "citizenship3", Label: "Državljanstvo (3)", Placeholder: "Unesite treće državljanstvo (opcionalno)", Type: FieldText, Validate: ValidateOptionalText, Optional: true},
			},
		},
		{
			Title: "Kontakt podaci",
			Fields: []Field{
				{Key: "email", Label: "Email", Placeholder: "Unesite vašu email adresu", Type: FieldEmail, Validate: ValidateEmail},
				{Key: "mobileNumber", Label: "Broj mobitela", Placeholder: "Unesite broj mobitela (+385...)", Type: FieldPhone, Validate: ValidatePhone},
			},
		},
		{
			Title: "Adrese",
			Fields: []Field{
				{Key: "adresaPrebivalista", Label: "Adresa prebivališta", Placeholder: "Adresa (ulica, kućni broj, poštanski broj)", Type: FieldText, Validate: ValidateBasicText},
				{Key: "residencePlace", Label: "Mjesto prebivališta", Placeholder: "Unesite mjesto prebivališta", Type: FieldText, Validate: ValidateBasicText},
				{Key: "countryOfResidence", Label: "Država prebivališta", Placeholder: "Unesite državu prebivališta", Type: FieldText, Validate: ValidateBasicText},
				{Key: "stayOutsideRH", Label: "Boravište izvan RH", Placeholder: "Unesite boravište izvan RH (opcionalno)", Type: FieldText, Validate: ValidateOptionalText, Optional: true},
				{Key: "place", Label: "Mjesto", Placeholder: "Unesite mjesto", Type: FieldText, Validate: ValidateBasicText},
			},
		},
		{
			Title: "Obitelj i kućanstvo",
			Fields: []Field{
				{Key: "householdMembers", Label: "Broj članova kućanstva", Placeholder: "Unesite broj članova kućanstva", Type: FieldNumber, Validate: ValidateNumber},
				{Key: "dependentChildren", Label: "Broj uzdržavane djece", Placeholder: "Unesite broj uzdržavane djece", Type: FieldNumber, Validate: ValidateNumber},
				{Key: "otherDependents", Label: "Broj ostalih uzdržavanih osoba", Placeholder: "Unesite broj ostalih uzdržavanih osoba", Type: FieldNumber, Validate: ValidateNumber},
			},
		},
		{
			Title: "Osobni status",
			Fields: []Field{
				{Key: "statusStanovanja", Label: "Status stanovanja", Placeholder: "Odaberite status stanovanja", Type: FieldDropdown, Validate: ValidateDropdown, Options: statusStanovanjaOptions},
				{Key: "bracniStatus", Label: "Bračni status", Placeholder: "Odaberite bračni status", Type: FieldDropdown, Validate: ValidateDropdown, Options: bracniStatusOptions},
				{Key: "obrazovanje", Label: "Obrazovanje", Placeholder: "Odaberite obrazovanje", Type: FieldDropdown, Validate: ValidateDropdown, Options: obrazovanjeOptions},
			},
		},
		{
			Title: "Dokumenti",
			Fields: []Field{
				{Key: "identificationDocumentType", Label: "Vrsta identifikacijske isprave", Placeholder: "Odaberite vrstu isprave", Type: FieldDropdown, Validate: ValidateDropdown, Options: identificationTypeOptions},
				{Key: "identificationDocumentNumber", Label: "Broj identifikacijske isprave", Placeholder: "Unesite broj identifikacijske isprave", Type: FieldText, Validate: ValidateBasicText},
				{Key: "identificationDocumentIssuer", Label: "Izdavatelj identifikacijske isprave", Placeholder: "Unesite izdavatelja isprave", Type: FieldText, Validate: ValidateBasicText},
				{Key: "identificationDocumentName", Label: "Naziv identifikacijske isprave", Placeholder: "Unesite naziv isprave (opcionalno)", Type: FieldText, Validate: ValidateOptionalText, Optional: true},
				{Key: "oib", Label: "OIB", Placeholder: "Unesite vaš OIB (11 brojeva)", Type: FieldOIB, Validate: ValidateOIB},
			},
		},
		{
			Title: "Zaposlenje",
			Fields: []Field{
				{Key: "employerName", Label: "Naziv poslodavca", Placeholder: "Unesite naziv poslodavca", Type: FieldText, Validate: ValidateBasicText},
				{Key: "employerOIB", Label: "OIB poslodavca", Placeholder: "Unesite OIB poslodavca", Type: FieldOIB, Validate: ValidateOIB},
				{Key: ContractTypeKey, Label: "Vrsta ugovora o zaposlenju", Placeholder: "Odaberite vrstu ugovora", Type: FieldDropdown, Validate: ValidateDropdown, Options: vrstaUgovoraOptions},
				{Key: "workExperience", Label: "Radni staž kod sadašnjeg poslodavca (god.)", Placeholder: "Unesite broj godina radnog staža", Type: FieldNumber, Validate: ValidateWorkExperience},
				{Key: "totalWorkExperience", Label: "Ukupni radni staž (god.)", Placeholder: "Unesite ukupan radni staž u godinama", Type: FieldNumber, Validate: ValidateWorkExperience},
				{Key: "employmentStatus", Label: "Status zaposlenja", Placeholder: "Unesite vaš status zaposlenja", Type: FieldText, Validate: ValidateBasicText},
				// Contract dates trail the section; they appear only
				// once a fixed-term contract is selected.
				{Key: "datumOd", Label: "Od datuma", Placeholder: "Unesite početni datum ugovora (DD.MM.GGGG)", Type: FieldDate, Validate: ValidateDate, Condition: fixedTermContract},
				{Key: "datumDo", Label: "Do datuma", Placeholder: "Unesite završni datum ugovora (DD.MM.GGGG)", Type: FieldDate, Validate: ValidateDate, Condition: fixedTermContract},
			},
		},
		{
			Title: "Banke i ponude",
			Fields: []Field{
				{Key: "bankName", Label: "Naziv banke", Placeholder: "Unesite naziv banke", Type: FieldText, Validate: ValidateBasicText},
				{Key: "acceptedBankOffer", Label: "Banka – prihvaćena ponuda", Placeholder: "Unesite naziv banke s prihvaćenom ponudom (opcionalno)", Type: FieldText, Validate: ValidateOptionalText, Optional: true},
				{Key: "rejectedBankRequest", Label: "Banka – odbijen zahtjev", Placeholder: "Unesite naziv banke koja je odbila zahtjev (opcionalno)", Type: FieldText, Validate: ValidateOptionalText, Optional: true},
				{Key: "odobreniIznosKredita", Label: "Odobreni iznos kredita", Placeholder: "Unesite iznos kredita u eurima", Type: FieldNumber, Validate: ValidateNumber},
			},
		},
	}
}
