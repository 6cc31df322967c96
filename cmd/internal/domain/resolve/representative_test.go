package resolve

import (
	"testing"

	"comparution/cmd/internal/domain/entity"
)

func person(role, given, surname, gender string) *entity.OfficeHolder {
	return &entity.OfficeHolder{
		RoleCode:   role,
		GivenNames: given,
		Surname:    surname,
		GenderCode: gender,
	}
}

func holding(role, name, siren string) *entity.OfficeHolder {
	return &entity.OfficeHolder{
		RoleCode:  role,
		CorpName:  name,
		CorpSIREN: siren,
	}
}

func TestSelect_PresidentAlwaysWins(t *testing.T) {
	composition := []*entity.OfficeHolder{
		person("51", "Jean", "Dupont", "1"),
		person("5132", "Paul", "President", "1"),
	}

	rep := Select(composition)
	if rep.Name != "Paul PRESIDENT" {
		t.Fatalf("expected president to win, got %q", rep.Name)
	}
	if rep.RoleCode != "5132" {
		t.Fatalf("expected role 5132, got %q", rep.RoleCode)
	}
}

func TestSelect_PresidentWinsRegardlessOfPosition(t *testing.T) {
	composition := []*entity.OfficeHolder{
		person("30", "Anne", "Martin", "2"),
		person("51", "Luc", "Bernard", "1"),
		person("73", "Zoé", "Petit", "2"),
	}

	rep := Select(composition)
	if rep.Name != "Zoé PETIT" {
		t.Fatalf("expected role 73 entry, got %q", rep.Name)
	}
}

func TestSelect_FirstPresidentOnTie(t *testing.T) {
	composition := []*entity.OfficeHolder{
		person("73", "First", "Pres", "1"),
		person("5132", "Second", "Pres", "1"),
	}

	rep := Select(composition)
	if rep.Name != "First PRES" {
		t.Fatalf("expected first president entry in input order, got %q", rep.Name)
	}
}

func TestSelect_PriorityOrderWithoutPresident(t *testing.T) {
	composition := []*entity.OfficeHolder{
		person("53", "Low", "Priority", "1"),
		person("30", "Mid", "Priority", "1"),
		person("51", "Top", "Priority", "1"),
	}

	rep := Select(composition)
	if rep.Name != "Top PRIORITY" {
		t.Fatalf("expected role 51 to win, got %q", rep.Name)
	}
}

func TestSelect_UnknownRolesSortAfterKnown(t *testing.T) {
	composition := []*entity.OfficeHolder{
		person("99", "Unknown", "Role", "1"),
		person("53", "Known", "Role", "1"),
	}

	rep := Select(composition)
	if rep.Name != "Known ROLE" {
		t.Fatalf("expected known role to win, got %q", rep.Name)
	}
}

func TestSelect_UnknownRoleTiesKeepInputOrder(t *testing.T) {
	composition := []*entity.OfficeHolder{
		person("99", "First", "Entry", "1"),
		person("42", "Second", "Entry", "1"),
	}

	rep := Select(composition)
	if rep.Name != "First ENTRY" {
		t.Fatalf("expected stable order among unknown roles, got %q", rep.Name)
	}
}

func TestSelect_EmptyComposition(t *testing.T) {
	for _, composition := range [][]*entity.OfficeHolder{nil, {}} {
		rep := Select(composition)
		if rep.Name != FallbackName {
			t.Fatalf("expected fallback name, got %q", rep.Name)
		}
		if rep.IsHolding {
			t.Fatal("fallback must not be a holding")
		}
		if rep.Gender != "" {
			t.Fatalf("fallback gender must be unknown, got %q", rep.Gender)
		}
	}
}

func TestSelect_NoDescriptorFallsBack(t *testing.T) {
	composition := []*entity.OfficeHolder{
		{RoleCode: "5132"},
	}

	rep := Select(composition)
	if rep.Name != FallbackName {
		t.Fatalf("expected fallback, got %q", rep.Name)
	}
}

func TestSelect_GenderMapping(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"2", "F"},
		{"1", "M"},
		{"", ""},
		{"0", ""},
	}

	for _, tc := range cases {
		rep := Select([]*entity.OfficeHolder{person("30", "Alex", "Morel", tc.code)})
		if rep.Gender != tc.want {
			t.Errorf("gender code %q: expected %q, got %q", tc.code, tc.want, rep.Gender)
		}
	}
}

func TestSelect_HoldingClassification(t *testing.T) {
	rep := Select([]*entity.OfficeHolder{holding("5132", "HOLDCO", "552100554")})
	if !rep.IsHolding {
		t.Fatal("expected holding classification")
	}
	if rep.Name != "HOLDCO" {
		t.Fatalf("expected holding name, got %q", rep.Name)
	}
	if rep.HoldingSIREN != "552100554" {
		t.Fatalf("expected extracted siren, got %q", rep.HoldingSIREN)
	}
	if rep.Gender != "" {
		t.Fatalf("holdings carry no gender, got %q", rep.Gender)
	}
}

func TestSelect_MalformedHoldingSIRENIsDropped(t *testing.T) {
	rep := Select([]*entity.OfficeHolder{holding("5132", "HOLDCO", "123456789")})
	if !rep.IsHolding {
		t.Fatal("expected holding classification")
	}
	if rep.HoldingSIREN != "" {
		t.Fatalf("invalid check digit must not produce a usable siren, got %q", rep.HoldingSIREN)
	}
}
