package entity

type EntityKind string

const (
	KindCorporate  EntityKind = "CORPORATE"
	KindIndividual EntityKind = "INDIVIDUAL"
	KindUnknown    EntityKind = "UNKNOWN"
)

type Company struct {
	SIREN string     `gorm:"primaryKey;column:siren"`
	Kind  EntityKind `gorm:"not null"`

	// Corporate payload
	Denomination  string
	ShareCapital  float64
	LegalFormCode string
	RegistryCity  string

	// Individual payload
	Surname     string
	GivenNames  string // space-separated, registry order
	GenderCode  string // "1" = male, "2" = female
	BirthDate   string // ISO date as delivered by the registry
	BirthPlace  string
	Nationality string

	// Shared address
	AddressNumber string
	AddressStreet string
	AddressZip    string
	AddressCity   string

	// Found controls the negative caching strategy for registry lookups:
	//
	// - true: The SIREN is valid and the company data is cached.
	//
	// - false: The SIREN was queried, returned a 404, and is safely cached as invalid.
	//
	// This prevents repeated API calls for SIRENs that we already know do not exist.
	Found    bool  `gorm:"default:true"`
	CachedAt int64 `gorm:"autoUpdateTime:false"`

	// Relationships
	Composition []*OfficeHolder `gorm:"foreignKey:CompanySIREN;references:SIREN;constraint:OnUpdate:CASCADE;OnDelete:CASCADE;"`
}

// HasData reports whether the record carries either payload. Records with
// neither payload render as the "no information" sentinel, never an error.
func (c *Company) HasData() bool {
	return c.Kind == KindCorporate || c.Kind == KindIndividual
}

// OfficeHolder is one entry of a corporate composition ("pouvoir"): a role
// code attached to either a natural person or a corporate entity.
type OfficeHolder struct {
	ID           int    `gorm:"primaryKey"`
	CompanySIREN string `gorm:"index"`
	RoleCode     string
	RoleName     string // free-text role as delivered, label fallback only

	// Natural-person descriptor
	Surname    string
	GivenNames string // space-separated, first one is the usual name
	GenderCode string

	// Corporate descriptor
	CorpName  string
	CorpSIREN string
}

func (o *OfficeHolder) IsPerson() bool {
	return o.Surname != "" || o.GivenNames != ""
}

func (o *OfficeHolder) IsCompany() bool {
	return !o.IsPerson() && o.CorpName != ""
}
