package rne

import (
	"encoding/json"
	"testing"

	"comparution/cmd/internal/domain/entity"
)

const corporateJSON = `{
  "formality": {
    "siren": "552100554",
    "content": {
      "personneMorale": {
        "identite": {
          "entreprise": {
            "denomination": "Test Company SARL",
            "formeJuridique": "5499",
            "montantCapital": 10000
          }
        },
        "adresseEntreprise": {
          "adresse": {
            "numVoie": "12",
            "typeVoie": "rue",
            "voie": "de la Paix",
            "codePostal": "75002",
            "commune": "Paris"
          }
        },
        "immatriculationRcs": {
          "greffe": "Paris"
        },
        "composition": {
          "pouvoirs": [
            {
              "roleEntreprise": "5132",
              "individu": {
                "descriptionPersonne": {
                  "nom": "Dupont",
                  "prenoms": ["Jean", "Marie"],
                  "genre": "1"
                }
              }
            },
            {
              "roleEntreprise": "30",
              "entreprise": {
                "denomination": "HOLDCO",
                "siren": "732829320"
              }
            }
          ]
        }
      }
    }
  }
}`

const individualJSON = `{
  "formality": {
    "siren": "732829320",
    "content": {
      "personnePhysique": {
        "identite": {
          "descriptionPersonne": {
            "nom": "Durand",
            "prenoms": ["Marie"],
            "genre": "2",
            "dateDeNaissance": "1985-06-02",
            "lieuDeNaissance": "Nantes",
            "nationalite": "française"
          }
        },
        "adresseEntreprise": {
          "adresse": {
            "numVoie": "3",
            "typeVoie": "avenue",
            "voie": "Foch",
            "codePostal": "69006",
            "commune": "Lyon"
          }
        }
      }
    }
  }
}`

func TestToDomain_Corporate(t *testing.T) {
	var resp companyResponse
	if err := json.Unmarshal([]byte(corporateJSON), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	company := resp.ToDomain()
	if company.Kind != entity.KindCorporate {
		t.Fatalf("expected corporate kind, got %q", company.Kind)
	}
	if company.SIREN != "552100554" {
		t.Fatalf("siren lost: %q", company.SIREN)
	}
	if company.Denomination != "Test Company SARL" {
		t.Fatalf("denomination lost: %q", company.Denomination)
	}
	if company.LegalFormCode != "5499" || company.ShareCapital != 10000 {
		t.Fatalf("identity fields lost: %q / %v", company.LegalFormCode, company.ShareCapital)
	}
	if company.RegistryCity != "Paris" {
		t.Fatalf("registry city lost: %q", company.RegistryCity)
	}
	if company.AddressStreet != "rue de la Paix" || company.AddressNumber != "12" {
		t.Fatalf("address lost: %q %q", company.AddressNumber, company.AddressStreet)
	}

	if len(company.Composition) != 2 {
		t.Fatalf("expected 2 office holders, got %d", len(company.Composition))
	}

	person := company.Composition[0]
	if !person.IsPerson() || person.Surname != "Dupont" || person.GivenNames != "Jean Marie" {
		t.Fatalf("person descriptor mismatch: %+v", person)
	}

	corp := company.Composition[1]
	if !corp.IsCompany() || corp.CorpName != "HOLDCO" || corp.CorpSIREN != "732829320" {
		t.Fatalf("corporate descriptor mismatch: %+v", corp)
	}
}

func TestToDomain_Individual(t *testing.T) {
	var resp companyResponse
	if err := json.Unmarshal([]byte(individualJSON), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	company := resp.ToDomain()
	if company.Kind != entity.KindIndividual {
		t.Fatalf("expected individual kind, got %q", company.Kind)
	}
	if company.Surname != "Durand" || company.GivenNames != "Marie" || company.GenderCode != "2" {
		t.Fatalf("person fields mismatch: %+v", company)
	}
	if company.BirthDate != "1985-06-02" || company.BirthPlace != "Nantes" {
		t.Fatalf("birth fields mismatch: %q %q", company.BirthDate, company.BirthPlace)
	}
	if company.AddressCity != "Lyon" {
		t.Fatalf("address mismatch: %q", company.AddressCity)
	}
}

func TestToDomain_EmptyContent(t *testing.T) {
	var resp companyResponse
	if err := json.Unmarshal([]byte(`{"formality":{"siren":"100000009","content":{}}}`), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	company := resp.ToDomain()
	if company.Kind != entity.KindUnknown {
		t.Fatalf("expected unknown kind, got %q", company.Kind)
	}
	if company.HasData() {
		t.Fatal("record without payload must report no data")
	}
}
