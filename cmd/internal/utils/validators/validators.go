package validators

import (
	"reflect"
	"regexp"

	"comparution/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
)

var hasSpaces = regexp.MustCompile(`\s+`)

// SIREN validates a 9-digit identifier with its Luhn check digit.
func SIREN(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return utils.IsSIRENValid(val)
}

// NoWhiteSpaces returns false if the string contains any whitespace (rejecting the user input).
func NoWhiteSpaces(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	str := field.String()
	return !hasSpaces.MatchString(str)
}
