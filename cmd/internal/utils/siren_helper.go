package utils

import "strings"

const SIRENLength = 9

// IsSIRENValid checks the 9-digit length and the Luhn check digit defined by
// INSEE for SIREN numbers.
func IsSIRENValid(siren string) bool {
	if len(siren) != SIRENLength {
		return false
	}

	if !IsOnlyNumbers(siren) {
		return false
	}
	return validateLuhn(siren)
}

func IsOnlyNumbers(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// validateLuhn doubles every second digit from the right; the total must be
// a multiple of 10.
func validateLuhn(siren string) bool {
	sum := 0
	for i := 0; i < len(siren); i++ {
		digit := int(siren[len(siren)-1-i] - '0')
		if i%2 == 1 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}
	return sum%10 == 0
}

// PersonDisplayName renders "Given SURNAME": the usual (first) given name
// followed by the upper-cased surname, the convention of French legal prose.
func PersonDisplayName(givenNames, surname string) string {
	given := firstGivenName(givenNames)
	upper := strings.ToUpper(surname)

	switch {
	case given == "":
		return upper
	case upper == "":
		return given
	default:
		return given + " " + upper
	}
}

func firstGivenName(givenNames string) string {
	fields := strings.Fields(givenNames)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
