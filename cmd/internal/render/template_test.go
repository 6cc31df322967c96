package render

import (
	"strings"
	"testing"
)

func TestRender_SubstitutesKnownPlaceholders(t *testing.T) {
	vars := map[string]string{
		"company_name": "ACME",
		"siren":        "552100554",
	}

	out := Render("{{company_name}} ({{siren}})", vars)
	if out != "ACME (552100554)" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRender_InteriorWhitespaceIsTolerated(t *testing.T) {
	vars := map[string]string{"company_name": "ACME"}

	for _, template := range []string{
		"{{company_name}}",
		"{{ company_name }}",
		"{{  company_name}}",
		"{{company_name  }}",
	} {
		if out := Render(template, vars); out != "ACME" {
			t.Errorf("template %q: got %q", template, out)
		}
	}
}

func TestRender_UnknownPlaceholderBecomesEmpty(t *testing.T) {
	out := Render("a{{ not_a_variable }}b", map[string]string{})
	if out != "ab" {
		t.Fatalf("unknown placeholder must render empty, got %q", out)
	}
}

func TestRender_NoTokenSurvivesForRecognizedForms(t *testing.T) {
	vars := map[string]string{"company_name": "ACME"}
	out := Render("{{company_name}} {{ missing }} {{x9_y}}", vars)

	if strings.Contains(out, "{{") || strings.Contains(out, "}}") {
		t.Fatalf("tokens left in output: %q", out)
	}
}

func TestRender_SubsetTemplateOnlyTouchesItsPlaceholders(t *testing.T) {
	vars := map[string]string{
		"company_name": "ACME",
		"siren":        "552100554",
		"header":       "ignored",
	}

	out := Render("Nom : {{company_name}}", vars)
	if out != "Nom : ACME" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRender_MalformedTokensAreLeftAlone(t *testing.T) {
	vars := map[string]string{"company_name": "ACME"}

	// Names outside [A-Za-z0-9_]+ are not placeholders at all.
	for _, template := range []string{
		"{{com pany}}",
		"{{com-pany}}",
		"{company_name}",
		"{{}}",
	} {
		if out := Render(template, vars); out != template {
			t.Errorf("template %q was rewritten to %q", template, out)
		}
	}
}
