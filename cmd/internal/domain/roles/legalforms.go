package roles

// legalForms maps INSEE legal-category codes to their labels. Unknown codes
// fall back to the raw code so the rendered paragraph never shows a blank
// legal form.
var legalForms = map[string]Label{
	"5202": {FR: "Société en nom collectif (SNC)", EN: "General partnership (SNC)"},
	"5499": {FR: "Société à responsabilité limitée (SARL)", EN: "Limited liability company (SARL)"},
	"5498": {FR: "Entreprise unipersonnelle à responsabilité limitée (EURL)", EN: "Single-member limited liability company (EURL)"},
	"5599": {FR: "Société anonyme (SA)", EN: "Public limited company (SA)"},
	"5710": {FR: "Société par actions simplifiée (SAS)", EN: "Simplified joint-stock company (SAS)"},
	"5720": {FR: "Société par actions simplifiée unipersonnelle (SASU)", EN: "Single-member simplified joint-stock company (SASU)"},
	"6540": {FR: "Société civile immobilière (SCI)", EN: "Non-trading real estate company (SCI)"},
	"1000": {FR: "Entrepreneur individuel", EN: "Sole trader"},
}

// LegalForm resolves a legal-form code to its bilingual label.
func LegalForm(code string) Label {
	if label, ok := legalForms[code]; ok {
		return label
	}
	return Label{FR: code, EN: code}
}
