package roles

import "testing"

func TestByCode(t *testing.T) {
	label, ok := ByCode("5132")
	if !ok {
		t.Fatal("expected code 5132 to resolve")
	}
	if label.FR != "Président" || label.EN != "President" {
		t.Fatalf("unexpected labels: %+v", label)
	}

	if _, ok := ByCode("0000"); ok {
		t.Fatal("unknown code must not resolve")
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"Président", "president", "PRÉSIDENT", "  Président  "} {
		label, ok := ByName(name)
		if !ok {
			t.Fatalf("expected %q to resolve", name)
		}
		if label.EN != "President" {
			t.Fatalf("unexpected label for %q: %+v", name, label)
		}
	}

	if _, ok := ByName("grand manitou"); ok {
		t.Fatal("unknown name must not resolve")
	}
}

func TestByName_AccentFolding(t *testing.T) {
	label, ok := ByName("Gérant associé")
	if !ok {
		t.Fatal("expected accented name to resolve")
	}
	if label.FR != "Gérant associé" {
		t.Fatalf("unexpected label: %+v", label)
	}
}

func TestLegalForm(t *testing.T) {
	label := LegalForm("5499")
	if label.FR != "Société à responsabilité limitée (SARL)" {
		t.Fatalf("unexpected FR label: %q", label.FR)
	}
	if label.EN != "Limited liability company (SARL)" {
		t.Fatalf("unexpected EN label: %q", label.EN)
	}

	// Unknown codes fall back to the raw code, never a blank.
	label = LegalForm("9999")
	if label.FR != "9999" || label.EN != "9999" {
		t.Fatalf("expected passthrough for unknown code, got %+v", label)
	}
}
