// Package roles maps registry role codes and legal-form codes to their
// human labels, in French and English.
package roles

import "strings"

type Label struct {
	FR string
	EN string
}

// Placeholder labels used when a role cannot be resolved by code or by name.
var FallbackRole = Label{FR: "Représentant légal", EN: "Legal representative"}

// roleLabels covers the registry role codes we encounter in compositions.
var roleLabels = map[string]Label{
	"5132": {FR: "Président", EN: "President"},
	"73":   {FR: "Président", EN: "President"},
	"51":   {FR: "Directeur général", EN: "Managing Director"},
	"30":   {FR: "Gérant", EN: "Manager"},
	"53":   {FR: "Gérant associé", EN: "Managing Partner"},
	"63":   {FR: "Liquidateur", EN: "Liquidator"},
	"70":   {FR: "Président du directoire", EN: "Chairman of the Management Board"},
	"71":   {FR: "Directeur général délégué", EN: "Deputy Managing Director"},
}

// roleNames is the secondary free-text lookup, keyed on a normalized form of
// the label delivered by the registry.
var roleNames = map[string]Label{
	"president":                 {FR: "Président", EN: "President"},
	"directeur general":         {FR: "Directeur général", EN: "Managing Director"},
	"directeur general delegue": {FR: "Directeur général délégué", EN: "Deputy Managing Director"},
	"gerant":                    {FR: "Gérant", EN: "Manager"},
	"gerant associe":            {FR: "Gérant associé", EN: "Managing Partner"},
	"liquidateur":               {FR: "Liquidateur", EN: "Liquidator"},
}

// ByCode resolves a role code. The boolean reports whether the code is known.
func ByCode(code string) (Label, bool) {
	label, ok := roleLabels[code]
	return label, ok
}

// ByName resolves a free-text role name, tolerant of case and accents.
func ByName(name string) (Label, bool) {
	label, ok := roleNames[normalize(name)]
	return label, ok
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	replacer := strings.NewReplacer(
		"é", "e", "è", "e", "ê", "e", "ë", "e",
		"à", "a", "â", "a",
		"î", "i", "ï", "i",
		"ô", "o", "û", "u", "ù", "u",
		"ç", "c",
	)
	return replacer.Replace(s)
}
