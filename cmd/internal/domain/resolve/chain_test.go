package resolve

import (
	"context"
	"errors"
	"testing"

	"comparution/cmd/internal/domain/entity"
)

// stubFetcher serves canned records and counts lookups.
type stubFetcher struct {
	companies map[string]*entity.Company
	calls     int
}

func (f *stubFetcher) FetchCompany(_ context.Context, siren string) (*entity.Company, error) {
	f.calls++
	company, ok := f.companies[siren]
	if !ok {
		return nil, errors.New("not found")
	}
	return company, nil
}

func corporate(siren string, composition ...*entity.OfficeHolder) *entity.Company {
	return &entity.Company{
		SIREN:       siren,
		Kind:        entity.KindCorporate,
		Composition: composition,
	}
}

func topHolding() *Representative {
	return &Representative{
		Name:         "TOPCO",
		RoleCode:     "5132",
		IsHolding:    true,
		HoldingSIREN: "100000009",
	}
}

func TestResolveChain_TwoLevelChainAttachesTail(t *testing.T) {
	fetcher := &stubFetcher{companies: map[string]*entity.Company{
		"100000009": corporate("100000009", person("5132", "Marie", "Durand", "2")),
	}}

	rep := NewChainResolver(fetcher).ResolveChain(context.Background(), topHolding())

	if rep.Name != "TOPCO" || rep.RoleCode != "5132" {
		t.Fatalf("top-level holding identity must be preserved, got %q/%q", rep.Name, rep.RoleCode)
	}
	if !rep.IsHolding {
		t.Fatal("result must stay holding-shaped")
	}
	if rep.Tail == nil {
		t.Fatal("expected a resolved tail")
	}
	if rep.Tail.Name != "Marie DURAND" {
		t.Fatalf("expected terminal person as tail, got %q", rep.Tail.Name)
	}
	if rep.Tail.Gender != "F" {
		t.Fatalf("tail gender lost, got %q", rep.Tail.Gender)
	}
	if rep.Tail.Tail != nil {
		t.Fatal("tail must never nest further")
	}
}

func TestResolveChain_DeepChainReportsOnlyFirstAndTerminal(t *testing.T) {
	fetcher := &stubFetcher{companies: map[string]*entity.Company{
		"100000009": corporate("100000009", holding("5132", "MIDCO", "200000008")),
		"200000008": corporate("200000008", person("30", "Paul", "Roux", "1")),
	}}

	rep := NewChainResolver(fetcher).ResolveChain(context.Background(), topHolding())

	if rep.Name != "TOPCO" {
		t.Fatalf("intermediate holdings must not replace the top-level name, got %q", rep.Name)
	}
	if rep.Tail == nil || rep.Tail.Name != "Paul ROUX" {
		t.Fatalf("expected terminal person through the intermediate layer, got %+v", rep.Tail)
	}
}

func TestResolveChain_CycleDegradesToHoldingOnly(t *testing.T) {
	fetcher := &stubFetcher{companies: map[string]*entity.Company{
		"100000009": corporate("100000009", holding("5132", "B", "200000008")),
		"200000008": corporate("200000008", holding("5132", "A", "100000009")),
	}}

	rep := NewChainResolver(fetcher).ResolveChain(context.Background(), topHolding())

	if rep.Tail != nil {
		t.Fatal("cyclic chain must resolve to holding-only")
	}
	if rep.Name != "TOPCO" || !rep.IsHolding {
		t.Fatalf("holding identity must survive the cycle, got %+v", rep)
	}
	if fetcher.calls > MaxChainDepth {
		t.Fatalf("cycle caused %d fetches, want at most %d", fetcher.calls, MaxChainDepth)
	}
}

func TestResolveChain_DepthBudgetBoundsTheWalk(t *testing.T) {
	// Six distinct holdings chained together: one more than the budget.
	fetcher := &stubFetcher{companies: map[string]*entity.Company{
		"100000009": corporate("100000009", holding("5132", "H2", "200000008")),
		"200000008": corporate("200000008", holding("5132", "H3", "300000007")),
		"300000007": corporate("300000007", holding("5132", "H4", "400000006")),
		"400000006": corporate("400000006", holding("5132", "H5", "500000005")),
		"500000005": corporate("500000005", holding("5132", "H6", "600000004")),
		"600000004": corporate("600000004", person("5132", "Deep", "Person", "1")),
	}}

	rep := NewChainResolver(fetcher).ResolveChain(context.Background(), topHolding())

	if rep.Tail != nil {
		t.Fatal("person beyond the depth budget must not be reached")
	}
	if fetcher.calls != MaxChainDepth {
		t.Fatalf("expected exactly %d fetches, got %d", MaxChainDepth, fetcher.calls)
	}
}

func TestResolveChain_FetchErrorDegrades(t *testing.T) {
	fetcher := &stubFetcher{companies: map[string]*entity.Company{}}

	rep := NewChainResolver(fetcher).ResolveChain(context.Background(), topHolding())

	if rep.Tail != nil {
		t.Fatal("fetch failure must degrade to holding-only")
	}
	if rep.Name != "TOPCO" {
		t.Fatalf("holding identity lost on failure: %q", rep.Name)
	}
}

func TestResolveChain_EmptyCompositionDegrades(t *testing.T) {
	fetcher := &stubFetcher{companies: map[string]*entity.Company{
		"100000009": corporate("100000009"),
	}}

	rep := NewChainResolver(fetcher).ResolveChain(context.Background(), topHolding())
	if rep.Tail != nil {
		t.Fatal("record without composition must resolve to holding-only")
	}
}

func TestResolveChain_NonHoldingPassesThrough(t *testing.T) {
	direct := &Representative{Name: "Jean DUPONT", RoleCode: "5132"}

	fetcher := &stubFetcher{companies: map[string]*entity.Company{}}
	rep := NewChainResolver(fetcher).ResolveChain(context.Background(), direct)

	if rep != direct {
		t.Fatal("non-holding representative must be returned untouched")
	}
	if fetcher.calls != 0 {
		t.Fatalf("no fetch expected for a direct person, got %d", fetcher.calls)
	}
}
