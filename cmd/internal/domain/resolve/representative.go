// Package resolve selects the acting representative of a company from its
// composition and, when that representative is itself a company, walks the
// holding chain down to a natural person.
package resolve

import (
	"sort"

	"comparution/cmd/internal/domain/entity"
	"comparution/cmd/internal/utils"
)

// Placeholder values used when a composition is empty or carries no usable
// descriptor. They must remain renderable in prose.
const (
	FallbackName = "Non renseigné"
)

// presidentCodes is the fast path: a president always wins, regardless of any
// other candidate present. Checked before the priority sort on purpose — a
// single ordered list would change the outcome when several known-priority
// roles co-occur without a president.
var presidentCodes = map[string]bool{
	"5132": true,
	"73":   true,
}

// rolePriority orders the remaining candidates when no president is present.
// Codes absent from this list sort after all known codes; ties among unknown
// codes keep their input order.
var rolePriority = []string{"5132", "73", "51", "30", "53"}

// Representative is the single chosen office-holder, reshaped for rendering.
// When IsHolding is true and the chain walk found a terminal natural person,
// Tail carries that person; Tail is never nested further.
type Representative struct {
	Name      string
	RoleCode  string
	RoleName  string // free-text role label as delivered, may be empty
	RoleLabel string // already-localized label, wins over every lookup when set
	Gender    string // "M", "F" or empty when unknown
	IsHolding bool

	// HoldingSIREN is the candidate identifier for chain resolution,
	// empty when absent or malformed.
	HoldingSIREN string

	Tail *Representative
}

// Select picks the representative to display from a composition.
// It is pure selection logic: no fetches, never fails. An empty composition
// or one with no usable descriptor yields the fallback representative.
func Select(composition []*entity.OfficeHolder) *Representative {
	if len(composition) == 0 {
		return fallback()
	}

	holder := pickPresident(composition)
	if holder == nil {
		holder = pickByPriority(composition)
	}

	switch {
	case holder.IsPerson():
		return fromPerson(holder)
	case holder.IsCompany():
		return fromCompany(holder)
	default:
		return fallback()
	}
}

func pickPresident(composition []*entity.OfficeHolder) *entity.OfficeHolder {
	for _, holder := range composition {
		if presidentCodes[holder.RoleCode] {
			return holder
		}
	}
	return nil
}

func pickByPriority(composition []*entity.OfficeHolder) *entity.OfficeHolder {
	sorted := make([]*entity.OfficeHolder, len(composition))
	copy(sorted, composition)

	// Stable: ties among unknown codes keep the registry order.
	sort.SliceStable(sorted, func(i, j int) bool {
		return priorityIndex(sorted[i].RoleCode) < priorityIndex(sorted[j].RoleCode)
	})
	return sorted[0]
}

func priorityIndex(code string) int {
	for i, known := range rolePriority {
		if code == known {
			return i
		}
	}
	return len(rolePriority)
}

func fromPerson(holder *entity.OfficeHolder) *Representative {
	return &Representative{
		Name:     utils.PersonDisplayName(holder.GivenNames, holder.Surname),
		RoleCode: holder.RoleCode,
		RoleName: holder.RoleName,
		Gender:   mapGender(holder.GenderCode),
	}
}

func fromCompany(holder *entity.OfficeHolder) *Representative {
	rep := &Representative{
		Name:      holder.CorpName,
		RoleCode:  holder.RoleCode,
		RoleName:  holder.RoleName,
		IsHolding: true,
	}
	if utils.IsSIRENValid(holder.CorpSIREN) {
		rep.HoldingSIREN = holder.CorpSIREN
	}
	return rep
}

func fallback() *Representative {
	return &Representative{
		Name: FallbackName,
	}
}

func mapGender(code string) string {
	switch code {
	case "2":
		return "F"
	case "1":
		return "M"
	default:
		return ""
	}
}
