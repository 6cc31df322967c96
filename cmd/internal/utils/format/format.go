// Package format holds the locale-aware formatting primitives used when
// assembling legal prose: amounts, identifiers, dates and addresses.
package format

import (
	"fmt"
	"strings"
	"time"
)

// NBSP keeps number groups and currency symbols attached to their figure,
// the French typographic convention for legal documents.
const NBSP = "\u00a0"

// CapitalFR renders a share capital the French way: "10 000,00 €".
func CapitalFR(amount float64) string {
	return groupThousands(amount, NBSP) + NBSP + "€"
}

// CapitalEN renders a share capital symbol-first with comma-grouped
// thousands. The decimal comma is kept in both languages, the documented
// convention for these paragraphs.
func CapitalEN(amount float64) string {
	return "€" + groupThousands(amount, ",")
}

func groupThousands(amount float64, sep string) string {
	whole := int64(amount)
	cents := int64(amount*100+0.5) - whole*100
	if cents < 0 {
		cents = -cents
	}

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return strings.Join(groups, sep) + fmt.Sprintf(",%02d", cents)
}

// SIREN groups a 9-digit identifier into triplets: "123 456 789" (NBSP).
// The grouping is the same in both languages. Inputs that are not 9 digits
// are returned untouched; rejecting them is the validation boundary's job.
func SIREN(siren string) string {
	if len(siren) != 9 {
		return siren
	}
	return siren[0:3] + NBSP + siren[3:6] + NBSP + siren[6:9]
}

var monthsFR = []string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// DateFR formats an ISO date as "12 mars 1980". Unparseable input is
// returned as-is rather than dropped.
func DateFR(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d %s %d", t.Day(), monthsFR[t.Month()-1], t.Year())
}

// DateEN formats an ISO date as "12 March 1980".
func DateEN(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("2 January 2006")
}

// Address joins the address pieces into a single line:
// "12 rue de la Paix, 75002 Paris". Missing pieces collapse cleanly.
func Address(number, street, zip, city string) string {
	first := strings.TrimSpace(number + " " + street)
	second := strings.TrimSpace(zip + " " + city)

	switch {
	case first == "":
		return second
	case second == "":
		return first
	default:
		return first + ", " + second
	}
}
