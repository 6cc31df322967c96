package resolve

import (
	"context"

	"comparution/cmd/internal/domain/entity"

	"github.com/labstack/gommon/log"
)

// MaxChainDepth bounds the holding-chain walk. The registry graph can contain
// cycles (A controlled by B controlled by A), so the walk keeps a visited set
// and a depth counter and never relies on the data terminating on its own.
const MaxChainDepth = 5

// CompanyFetcher supplies the registry record of an intermediate holding.
// The production implementation is the company service (cache, then RNE API).
type CompanyFetcher interface {
	FetchCompany(ctx context.Context, siren string) (*entity.Company, error)
}

type ChainResolver struct {
	Fetcher CompanyFetcher
}

func NewChainResolver(fetcher CompanyFetcher) *ChainResolver {
	return &ChainResolver{Fetcher: fetcher}
}

// ResolveChain walks a holding chain starting from the given holding-shaped
// representative until a natural person is found, a cycle is detected, the
// depth budget runs out, or a fetch fails. Whatever happens, the returned
// representative keeps the original holding's name and role; a terminal
// natural person, if reached, is attached as the tail. Intermediate layers
// are resolved through but never reported.
//
// Every failure degrades to holding-only output. Rendering must never fail
// because of a broken or cyclic chain.
func (r *ChainResolver) ResolveChain(ctx context.Context, holding *Representative) *Representative {
	if !holding.IsHolding || holding.HoldingSIREN == "" {
		return holding
	}

	resolved := *holding
	resolved.Tail = r.walk(ctx, holding.HoldingSIREN)
	return &resolved
}

func (r *ChainResolver) walk(ctx context.Context, siren string) *Representative {
	visited := map[string]bool{}

	for depth := MaxChainDepth; depth > 0; depth-- {
		if visited[siren] {
			log.Warnf("holding chain cycle detected at siren %s", siren)
			return nil
		}
		visited[siren] = true

		company, err := r.Fetcher.FetchCompany(ctx, siren)
		if err != nil {
			log.Errorf("holding chain fetch failed for siren %s: %v", siren, err)
			return nil
		}

		if company == nil || len(company.Composition) == 0 {
			return nil
		}

		rep := Select(company.Composition)
		if !rep.IsHolding {
			if rep.Name == FallbackName {
				return nil
			}
			return rep
		}

		if rep.HoldingSIREN == "" {
			return nil
		}
		siren = rep.HoldingSIREN
	}

	log.Warnf("holding chain exceeded max depth of %d", MaxChainDepth)
	return nil
}
