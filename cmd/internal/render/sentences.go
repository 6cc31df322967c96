package render

import "fmt"

type Lang string

const (
	LangFR Lang = "fr"
	LangEN Lang = "en"
)

// Norm maps any input to a supported language tag, defaulting to French.
func Norm(lang string) Lang {
	if Lang(lang) == LangEN {
		return LangEN
	}
	return LangFR
}

// sentencePack is the strategy table for one language: every sentence
// skeleton the paragraph needs, keyed by the same semantic slots. Rendering
// in a new language means adding a pack, not touching the builder.
type sentencePack struct {
	companyHeader    func(name string) string
	capitalLine      func(form, capital string) string
	registrationLine func(city, siren string) string
	headOfficeLine   func(address string) string

	repDirect      func(name, role, agreement string) string
	repHoldingOnly func(holding, role string) string
	repHoldingTail func(holding, role, person, personRole, agreement string) string

	civility        func(gender string) string
	birthStatement  func(gender, date, place string) string
	nationalityLine func(nationality string) string
	residenceLine   func(address string) string

	// agreement is the gendered chunk of the representative sentence:
	// a past participle in French, a possessive pronoun in English.
	// Unknown gender takes the masculine form.
	agreement   func(gender string) string
	pronounVerb func(gender string) string

	noData func(siren string) string
}

var packs = map[Lang]*sentencePack{
	LangFR: {
		companyHeader: func(name string) string {
			return fmt.Sprintf("**La société %s**", name)
		},
		capitalLine: func(form, capital string) string {
			return fmt.Sprintf("%s au capital de %s", form, capital)
		},
		registrationLine: func(city, siren string) string {
			return fmt.Sprintf("Immatriculée au Registre du Commerce et des Sociétés de %s sous le numéro %s", city, siren)
		},
		headOfficeLine: func(address string) string {
			return fmt.Sprintf("Dont le siège social est situé %s", address)
		},
		repDirect: func(name, role, agreement string) string {
			return fmt.Sprintf("Représentée aux fins des présentes par %s en sa qualité de %s, dûment %s.", name, role, agreement)
		},
		repHoldingOnly: func(holding, role string) string {
			return fmt.Sprintf("Représentée aux fins des présentes par %s en tant que %s.", holding, role)
		},
		repHoldingTail: func(holding, role, person, personRole, agreement string) string {
			return fmt.Sprintf("Représentée aux fins des présentes par la société %s en tant que %s, elle-même représentée par %s en tant que %s, dûment %s.",
				holding, role, person, personRole, agreement)
		},
		civility: func(gender string) string {
			if gender == "F" {
				return "Madame"
			}
			return "Monsieur"
		},
		birthStatement: func(gender, date, place string) string {
			participle := "Né"
			if gender == "F" {
				participle = "Née"
			}
			return fmt.Sprintf("%s le %s à %s", participle, date, place)
		},
		nationalityLine: func(nationality string) string {
			return fmt.Sprintf("De nationalité %s", nationality)
		},
		residenceLine: func(address string) string {
			return fmt.Sprintf("Demeurant %s", address)
		},
		agreement: func(gender string) string {
			if gender == "F" {
				return "habilitée"
			}
			return "habilité"
		},
		pronounVerb: func(gender string) string {
			if gender == "F" {
				return "elle est"
			}
			return "il est"
		},
		noData: func(siren string) string {
			return fmt.Sprintf("Aucune information disponible pour le numéro SIREN %s.", siren)
		},
	},

	LangEN: {
		companyHeader: func(name string) string {
			return fmt.Sprintf("**The company %s**", name)
		},
		capitalLine: func(form, capital string) string {
			return fmt.Sprintf("%s with a share capital of %s", form, capital)
		},
		registrationLine: func(city, siren string) string {
			return fmt.Sprintf("Registered with the Trade and Companies Register of %s under number %s", city, siren)
		},
		headOfficeLine: func(address string) string {
			return fmt.Sprintf("Having its registered office at %s", address)
		},
		repDirect: func(name, role, agreement string) string {
			return fmt.Sprintf("Represented for the purposes hereof by %s in %s capacity as %s, duly authorised.", name, agreement, role)
		},
		repHoldingOnly: func(holding, role string) string {
			return fmt.Sprintf("Represented for the purposes hereof by %s as %s.", holding, role)
		},
		repHoldingTail: func(holding, role, person, personRole, agreement string) string {
			return fmt.Sprintf("Represented for the purposes hereof by the company %s as %s, itself represented by %s in %s capacity as %s, duly authorised.",
				holding, role, person, agreement, personRole)
		},
		civility: func(gender string) string {
			if gender == "F" {
				return "Ms"
			}
			return "Mr"
		},
		birthStatement: func(gender, date, place string) string {
			return fmt.Sprintf("Born on %s in %s", date, place)
		},
		nationalityLine: func(nationality string) string {
			return fmt.Sprintf("Of %s nationality", nationality)
		},
		residenceLine: func(address string) string {
			return fmt.Sprintf("Residing at %s", address)
		},
		agreement: func(gender string) string {
			if gender == "F" {
				return "her"
			}
			return "his"
		},
		pronounVerb: func(gender string) string {
			if gender == "F" {
				return "she is"
			}
			return "he is"
		},
		noData: func(siren string) string {
			return fmt.Sprintf("No information available for SIREN number %s.", siren)
		},
	},
}
