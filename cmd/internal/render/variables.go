package render

import (
	"strings"

	"comparution/cmd/internal/domain/entity"
	"comparution/cmd/internal/domain/resolve"
	"comparution/cmd/internal/domain/roles"
	"comparution/cmd/internal/utils"
	"comparution/cmd/internal/utils/format"
)

// variableNames is the full set of recognized template variables. Every
// build produces all of them, with the empty string for inapplicable fields,
// so any variable name is safe in any template regardless of entity kind.
var variableNames = []string{
	// common
	"siren", "siren_formatted", "company_name",
	"legal_form", "legal_form_fr", "legal_form_en",
	"header", "details",
	// corporate
	"share_capital", "share_capital_line", "registry_city",
	"registration_line", "head_office_line", "representative_line",
	"representative_name", "representative_role",
	"holding_name", "holding_role",
	"physical_rep_name", "physical_rep_role",
	"gender_agreement", "pronoun_verb",
	// individual
	"civility", "first_name", "last_name", "full_name",
	"birth_statement", "nationality_line", "personal_address_line",
}

// BuildVariables derives the flat variable set for one company record, its
// resolved representative and one language. It is total: it never fails, and
// every recognized variable name is present in the result.
func BuildVariables(company *entity.Company, rep *resolve.Representative, lang Lang) map[string]string {
	pack := packs[Norm(string(lang))]

	vars := make(map[string]string, len(variableNames))
	for _, name := range variableNames {
		vars[name] = ""
	}

	legalForm := roles.LegalForm(company.LegalFormCode)
	vars["siren"] = company.SIREN
	vars["siren_formatted"] = format.SIREN(company.SIREN)
	vars["legal_form"] = pickLabel(legalForm, lang)
	vars["legal_form_fr"] = legalForm.FR
	vars["legal_form_en"] = legalForm.EN

	switch company.Kind {
	case entity.KindCorporate:
		buildCorporate(vars, company, rep, lang, pack)
	case entity.KindIndividual:
		buildIndividual(vars, company, lang, pack)
	}

	return vars
}

func buildCorporate(vars map[string]string, company *entity.Company, rep *resolve.Representative, lang Lang, pack *sentencePack) {
	vars["company_name"] = company.Denomination
	vars["registry_city"] = company.RegistryCity

	capital := formatCapital(company.ShareCapital, lang)
	vars["share_capital"] = capital
	vars["share_capital_line"] = pack.capitalLine(vars["legal_form"], capital)
	vars["registration_line"] = pack.registrationLine(company.RegistryCity, vars["siren_formatted"])

	address := format.Address(company.AddressNumber, company.AddressStreet, company.AddressZip, company.AddressCity)
	vars["head_office_line"] = pack.headOfficeLine(address)

	if rep == nil {
		rep = resolve.Select(nil)
	}

	role := roleLabel(rep, lang)
	vars["representative_name"] = rep.Name
	vars["representative_role"] = role

	// The acting natural person drives the gender agreement: the direct
	// representative, or the chain's terminal person for a holding.
	acting := rep
	if rep.IsHolding && rep.Tail != nil {
		acting = rep.Tail
	}
	vars["gender_agreement"] = pack.agreement(acting.Gender)
	vars["pronoun_verb"] = pack.pronounVerb(acting.Gender)

	switch {
	case !rep.IsHolding:
		vars["representative_line"] = pack.repDirect(rep.Name, role, pack.agreement(rep.Gender))

	case rep.Tail == nil:
		vars["holding_name"] = rep.Name
		vars["holding_role"] = role
		vars["representative_line"] = pack.repHoldingOnly(rep.Name, role)

	default:
		tailRole := roleLabel(rep.Tail, lang)
		vars["holding_name"] = rep.Name
		vars["holding_role"] = role
		vars["physical_rep_name"] = rep.Tail.Name
		vars["physical_rep_role"] = tailRole
		vars["representative_line"] = pack.repHoldingTail(rep.Name, role, rep.Tail.Name, tailRole, pack.agreement(rep.Tail.Gender))
	}

	vars["header"] = pack.companyHeader(company.Denomination)
	vars["details"] = joinDetails(
		vars["share_capital_line"],
		vars["registration_line"],
		vars["head_office_line"],
		vars["representative_line"],
	)
}

func buildIndividual(vars map[string]string, company *entity.Company, lang Lang, pack *sentencePack) {
	gender := ""
	switch company.GenderCode {
	case "2":
		gender = "F"
	case "1":
		gender = "M"
	}

	fullName := utils.PersonDisplayName(company.GivenNames, company.Surname)
	vars["company_name"] = fullName
	vars["full_name"] = fullName
	vars["first_name"] = firstField(company.GivenNames)
	vars["last_name"] = strings.ToUpper(company.Surname)
	vars["civility"] = pack.civility(gender)

	if company.BirthDate != "" || company.BirthPlace != "" {
		vars["birth_statement"] = pack.birthStatement(gender, formatDate(company.BirthDate, lang), company.BirthPlace)
	}
	if company.Nationality != "" {
		vars["nationality_line"] = pack.nationalityLine(nationality(company.Nationality, lang))
	}

	address := format.Address(company.AddressNumber, company.AddressStreet, company.AddressZip, company.AddressCity)
	if address != "" {
		vars["personal_address_line"] = pack.residenceLine(address)
	}

	vars["header"] = vars["civility"] + " " + fullName
	vars["details"] = joinDetails(
		vars["birth_statement"],
		vars["nationality_line"],
		vars["personal_address_line"],
	)
}

// roleLabel applies the label precedence: an explicit already-localized
// label on the representative, then the role-code registry, then the
// free-text lookup, then the fixed placeholder.
func roleLabel(rep *resolve.Representative, lang Lang) string {
	if rep.RoleLabel != "" {
		return rep.RoleLabel
	}
	if label, ok := roles.ByCode(rep.RoleCode); ok {
		return pickLabel(label, lang)
	}
	if label, ok := roles.ByName(rep.RoleName); ok {
		return pickLabel(label, lang)
	}
	return pickLabel(roles.FallbackRole, lang)
}

func pickLabel(label roles.Label, lang Lang) string {
	if Norm(string(lang)) == LangEN {
		return label.EN
	}
	return label.FR
}

func formatCapital(amount float64, lang Lang) string {
	if Norm(string(lang)) == LangEN {
		return format.CapitalEN(amount)
	}
	return format.CapitalFR(amount)
}

func formatDate(iso string, lang Lang) string {
	if Norm(string(lang)) == LangEN {
		return format.DateEN(iso)
	}
	return format.DateFR(iso)
}

func nationality(nat string, lang Lang) string {
	if Norm(string(lang)) == LangEN && strings.EqualFold(nat, "française") {
		return "French"
	}
	return nat
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func joinDetails(lines ...string) string {
	var kept []string
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
