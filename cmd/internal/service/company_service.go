package service

import (
	"context"
	"errors"

	"comparution/cmd/internal/contract"
	"comparution/cmd/internal/domain/entity"
	"comparution/cmd/internal/infrastructure/rne"
	"comparution/cmd/internal/utils"
	"comparution/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type CompanyRepository interface {
	Save(company *entity.Company) error
	FindBySIREN(siren string) (*entity.Company, error)
}

type RegistryClient interface {
	GetBySIREN(ctx context.Context, siren string) (*entity.Company, error)
}

type CompanyService struct {
	Registry    RegistryClient
	CompanyRepo CompanyRepository
}

func NewCompanyService(registry RegistryClient, companyRepo CompanyRepository) *CompanyService {
	return &CompanyService{
		Registry:    registry,
		CompanyRepo: companyRepo,
	}
}

func (s *CompanyService) GetCompanyBySIREN(ctx context.Context, siren string) (*contract.CompanyResponse, apierror.ErrorResponse) {
	company, fromCache, apierr := s.findCompany(ctx, siren)
	if apierr != nil {
		return nil, apierr
	}
	return toCompanyResp(company, fromCache), nil
}

// FetchCompany implements resolve.CompanyFetcher for the holding-chain walk.
// It goes through the same cache-then-registry path as the API routes; all
// error responses collapse to a plain error since the chain resolver treats
// every failure the same way.
func (s *CompanyService) FetchCompany(ctx context.Context, siren string) (*entity.Company, error) {
	company, _, apierr := s.findCompany(ctx, siren)
	if apierr != nil {
		return nil, errors.New("company lookup failed")
	}
	return company, nil
}

// findCompany resolves the SIREN into a company record.
// It returns the company, a boolean (true = cached, false = API fetch) and a possible error response.
func (s *CompanyService) findCompany(ctx context.Context, siren string) (*entity.Company, bool, apierror.ErrorResponse) {
	cached, err := s.CompanyRepo.FindBySIREN(siren)
	if err != nil {
		log.Errorf("failed to find company by siren %s: %v", siren, err)
		return nil, false, apierror.InternalServerError
	}

	// If we have some kind of cache
	if cached != nil {
		if cached.Found {
			return cached, true, nil
		} else {
			return nil, false, apierror.NotFoundError
		}
	}

	// Cache miss
	company, apierr := s.fetchFromRegistry(ctx, siren)
	if apierr != nil {
		return nil, false, apierr
	}

	err = s.CompanyRepo.Save(company)
	if err != nil {
		// We don't return a 500 here, since we have the data we need
		// and only the cache has failed. We can just log it and proceed.
		log.Errorf("failed to save company cache for siren %s: %v", siren, err)
	}

	return company, false, nil
}

func (s *CompanyService) fetchFromRegistry(ctx context.Context, siren string) (*entity.Company, apierror.ErrorResponse) {
	company, err := s.Registry.GetBySIREN(ctx, siren)
	if err != nil {
		if errors.Is(err, rne.ErrNotFound) {
			s.cacheNegativeResult(siren)
			return nil, apierror.NotFoundError
		}
		log.Errorf("failed to fetch company by siren %s: %v", siren, err)
		return nil, apierror.InternalServerError
	}

	company.Found = true
	company.CachedAt = utils.NowUTC()
	return company, nil
}

func (s *CompanyService) cacheNegativeResult(siren string) {
	emptyCompany := &entity.Company{
		SIREN: siren,
		Kind:  entity.KindUnknown,
		Found: false,
	}
	_ = s.CompanyRepo.Save(emptyCompany)
}

func toCompanyResp(c *entity.Company, cached bool) *contract.CompanyResponse {
	resp := &contract.CompanyResponse{
		SIREN:         c.SIREN,
		Kind:          string(c.Kind),
		Denomination:  c.Denomination,
		ShareCapital:  c.ShareCapital,
		LegalFormCode: c.LegalFormCode,
		RegistryCity:  c.RegistryCity,
		Composition:   toCompositionResponse(c.Composition),
		Cached:        cached,
	}

	if c.Kind == entity.KindIndividual {
		resp.Person = &contract.PersonResponse{
			Surname:     c.Surname,
			GivenNames:  c.GivenNames,
			BirthDate:   c.BirthDate,
			BirthPlace:  c.BirthPlace,
			Nationality: c.Nationality,
		}
	}

	if c.AddressStreet != "" || c.AddressCity != "" {
		resp.Address = &contract.AddressResponse{
			Number: c.AddressNumber,
			Street: c.AddressStreet,
			Zip:    c.AddressZip,
			City:   c.AddressCity,
		}
	}
	return resp
}

func toCompositionResponse(holders []*entity.OfficeHolder) []*contract.OfficeHolderResponse {
	composition := make([]*contract.OfficeHolderResponse, len(holders))
	for i, h := range holders {
		composition[i] = &contract.OfficeHolderResponse{
			RoleCode:   h.RoleCode,
			RoleName:   h.RoleName,
			Surname:    h.Surname,
			GivenNames: h.GivenNames,
			CorpName:   h.CorpName,
			CorpSIREN:  h.CorpSIREN,
		}
	}
	return composition
}
