package contract

type CompanyResponse struct {
	SIREN string `json:"siren"`
	Kind  string `json:"kind"`

	Denomination  string  `json:"denomination,omitempty"`
	ShareCapital  float64 `json:"share_capital,omitempty"`
	LegalFormCode string  `json:"legal_form_code,omitempty"`
	RegistryCity  string  `json:"registry_city,omitempty"`

	Person *PersonResponse `json:"person,omitempty"`

	Address *AddressResponse `json:"address,omitempty"`

	Composition []*OfficeHolderResponse `json:"composition,omitempty"`
	Cached      bool                    `json:"cached"`
}

type PersonResponse struct {
	Surname     string `json:"surname"`
	GivenNames  string `json:"given_names"`
	BirthDate   string `json:"birth_date,omitempty"`
	BirthPlace  string `json:"birth_place,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

type AddressResponse struct {
	Number string `json:"number,omitempty"`
	Street string `json:"street,omitempty"`
	Zip    string `json:"zip,omitempty"`
	City   string `json:"city,omitempty"`
}

type OfficeHolderResponse struct {
	RoleCode   string `json:"role_code"`
	RoleName   string `json:"role_name,omitempty"`
	Surname    string `json:"surname,omitempty"`
	GivenNames string `json:"given_names,omitempty"`
	CorpName   string `json:"corp_name,omitempty"`
	CorpSIREN  string `json:"corp_siren,omitempty"`
}

type ParagraphResponse struct {
	SIREN    string `json:"siren"`
	Lang     string `json:"lang"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
	Text     string `json:"text"`
}
