package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var runNameValidRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 +_.-]*$`)

func runNameValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return runNameValidRegex.MatchString(val)
}

// oneOfValidator accepts a string field whose value is in allowed.
func oneOfValidator(allowed ...string) func(fl validator.FieldLevel) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		val, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, found := set[val]
		return found
	}
}

// maxYearsValidator bounds an int field by the configured projection horizon.
func maxYearsValidator(max int) func(fl validator.FieldLevel) bool {
	return func(fl validator.FieldLevel) bool {
		val, ok := fl.Field().Interface().(int)
		if !ok {
			return false
		}
		return val <= max
	}
}
