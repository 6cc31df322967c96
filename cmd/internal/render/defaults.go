package render

import "comparution/cmd/internal/domain/entity"

// Built-in templates, one per entity kind per language. Used whenever no
// user template is supplied.
const (
	defaultCorporateFR = `**La société {{company_name}}**
{{share_capital_line}}
{{registration_line}}
{{head_office_line}}
{{representative_line}}`

	defaultCorporateEN = `**The company {{company_name}}**
{{share_capital_line}}
{{registration_line}}
{{head_office_line}}
{{representative_line}}`

	defaultIndividualFR = `{{civility}} {{full_name}}
{{birth_statement}}
{{nationality_line}}
{{personal_address_line}}
N° : {{siren_formatted}}`

	defaultIndividualEN = `{{civility}} {{full_name}}
{{birth_statement}}
{{nationality_line}}
{{personal_address_line}}
No.: {{siren_formatted}}`
)

func DefaultTemplate(kind entity.EntityKind, lang Lang) string {
	if Norm(string(lang)) == LangEN {
		if kind == entity.KindIndividual {
			return defaultIndividualEN
		}
		return defaultCorporateEN
	}

	if kind == entity.KindIndividual {
		return defaultIndividualFR
	}
	return defaultCorporateFR
}
