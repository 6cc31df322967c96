package rne

import (
	"strings"

	"comparution/cmd/internal/domain/entity"
)

type companyResponse struct {
	Formality formalityResponse `json:"formality"`
}

type formalityResponse struct {
	SIREN   string          `json:"siren"`
	Content contentResponse `json:"content"`
}

type contentResponse struct {
	PersonneMorale   *personneMoraleResponse   `json:"personneMorale"`
	PersonnePhysique *personnePhysiqueResponse `json:"personnePhysique"`
}

type personneMoraleResponse struct {
	Identite struct {
		Entreprise struct {
			Denomination   string  `json:"denomination"`
			FormeJuridique string  `json:"formeJuridique"`
			MontantCapital float64 `json:"montantCapital"`
		} `json:"entreprise"`
	} `json:"identite"`
	AdresseEntreprise adresseResponse     `json:"adresseEntreprise"`
	Immatriculation   struct {
		Greffe string `json:"greffe"`
	} `json:"immatriculationRcs"`
	Composition compositionResponse `json:"composition"`
}

type personnePhysiqueResponse struct {
	Identite struct {
		Personne descriptionPersonne `json:"descriptionPersonne"`
	} `json:"identite"`
	AdresseEntreprise adresseResponse `json:"adresseEntreprise"`
}

type descriptionPersonne struct {
	Nom          string   `json:"nom"`
	Prenoms      []string `json:"prenoms"`
	Genre        string   `json:"genre"`
	DateNaissance string  `json:"dateDeNaissance"`
	LieuNaissance string  `json:"lieuDeNaissance"`
	Nationalite  string   `json:"nationalite"`
}

type adresseResponse struct {
	Adresse struct {
		Numero     string `json:"numVoie"`
		TypeVoie   string `json:"typeVoie"`
		Voie       string `json:"voie"`
		CodePostal string `json:"codePostal"`
		Commune    string `json:"commune"`
	} `json:"adresse"`
}

type compositionResponse struct {
	Pouvoirs []*pouvoirResponse `json:"pouvoirs"`
}

type pouvoirResponse struct {
	RoleEntreprise string `json:"roleEntreprise"`
	LibelleRole    string `json:"libelleRoleEntreprise"`

	Individu *struct {
		DescriptionPersonne descriptionPersonne `json:"descriptionPersonne"`
	} `json:"individu"`

	Entreprise *struct {
		Denomination string `json:"denomination"`
		SIREN        string `json:"siren"`
	} `json:"entreprise"`
}

func (c *companyResponse) ToDomain() *entity.Company {
	company := &entity.Company{
		SIREN: c.Formality.SIREN,
		Kind:  entity.KindUnknown,
	}

	if pm := c.Formality.Content.PersonneMorale; pm != nil {
		company.Kind = entity.KindCorporate
		company.Denomination = pm.Identite.Entreprise.Denomination
		company.LegalFormCode = pm.Identite.Entreprise.FormeJuridique
		company.ShareCapital = pm.Identite.Entreprise.MontantCapital
		company.RegistryCity = pm.Immatriculation.Greffe
		fillAddress(company, &pm.AdresseEntreprise)
		company.Composition = toOfficeHolders(pm.Composition.Pouvoirs)
		return company
	}

	if pp := c.Formality.Content.PersonnePhysique; pp != nil {
		company.Kind = entity.KindIndividual
		company.Surname = pp.Identite.Personne.Nom
		company.GivenNames = strings.Join(pp.Identite.Personne.Prenoms, " ")
		company.GenderCode = pp.Identite.Personne.Genre
		company.BirthDate = pp.Identite.Personne.DateNaissance
		company.BirthPlace = pp.Identite.Personne.LieuNaissance
		company.Nationality = pp.Identite.Personne.Nationalite
		fillAddress(company, &pp.AdresseEntreprise)
		return company
	}

	return company
}

func fillAddress(company *entity.Company, addr *adresseResponse) {
	a := addr.Adresse
	street := strings.TrimSpace(a.TypeVoie + " " + a.Voie)
	company.AddressNumber = a.Numero
	company.AddressStreet = street
	company.AddressZip = a.CodePostal
	company.AddressCity = a.Commune
}

func toOfficeHolders(pouvoirs []*pouvoirResponse) []*entity.OfficeHolder {
	var holders []*entity.OfficeHolder
	for _, p := range pouvoirs {
		holder := &entity.OfficeHolder{
			RoleCode: p.RoleEntreprise,
			RoleName: p.LibelleRole,
		}
		if p.Individu != nil {
			holder.Surname = p.Individu.DescriptionPersonne.Nom
			holder.GivenNames = strings.Join(p.Individu.DescriptionPersonne.Prenoms, " ")
			holder.GenderCode = p.Individu.DescriptionPersonne.Genre
		}
		if p.Entreprise != nil {
			holder.CorpName = p.Entreprise.Denomination
			holder.CorpSIREN = p.Entreprise.SIREN
		}
		holders = append(holders, holder)
	}
	return holders
}
