package format

import "testing"

func TestCapitalFR(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{10000, "10 000,00 €"},
		{1000, "1 000,00 €"},
		{500, "500,00 €"},
		{1234567.89, "1 234 567,89 €"},
		{0, "0,00 €"},
	}

	for _, tc := range cases {
		if got := CapitalFR(tc.amount); got != tc.want {
			t.Errorf("CapitalFR(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestCapitalEN(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{10000, "€10,000,00"},
		{500, "€500,00"},
		{1234567.89, "€1,234,567,89"},
	}

	for _, tc := range cases {
		if got := CapitalEN(tc.amount); got != tc.want {
			t.Errorf("CapitalEN(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestSIREN(t *testing.T) {
	if got := SIREN("123456789"); got != "123 456 789" {
		t.Fatalf("got %q", got)
	}

	// Non-9-digit input passes through; rejection is the validation
	// boundary's job, not the formatter's.
	for _, in := range []string{"", "12345678", "1234567890"} {
		if got := SIREN(in); got != in {
			t.Errorf("SIREN(%q) = %q, want passthrough", in, got)
		}
	}
}

func TestDateFR(t *testing.T) {
	if got := DateFR("1980-03-12"); got != "12 mars 1980" {
		t.Fatalf("got %q", got)
	}
	if got := DateFR("2001-08-01"); got != "1 août 2001" {
		t.Fatalf("got %q", got)
	}
	if got := DateFR("not-a-date"); got != "not-a-date" {
		t.Fatalf("unparseable input must pass through, got %q", got)
	}
}

func TestDateEN(t *testing.T) {
	if got := DateEN("1980-03-12"); got != "12 March 1980" {
		t.Fatalf("got %q", got)
	}
}

func TestAddress(t *testing.T) {
	cases := []struct {
		number, street, zip, city string
		want                      string
	}{
		{"12", "rue de la Paix", "75002", "Paris", "12 rue de la Paix, 75002 Paris"},
		{"", "rue de la Paix", "75002", "Paris", "rue de la Paix, 75002 Paris"},
		{"", "", "75002", "Paris", "75002 Paris"},
		{"12", "rue de la Paix", "", "", "12 rue de la Paix"},
		{"", "", "", "", ""},
	}

	for _, tc := range cases {
		got := Address(tc.number, tc.street, tc.zip, tc.city)
		if got != tc.want {
			t.Errorf("Address(%q,%q,%q,%q) = %q, want %q", tc.number, tc.street, tc.zip, tc.city, got, tc.want)
		}
	}
}
