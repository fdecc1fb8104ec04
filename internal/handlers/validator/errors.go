package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type ErrInvalidField struct {
	error
	Field string
	Tag   string
}

func newErrInvalidField(fe validator.FieldError) *ErrInvalidField {
	return &ErrInvalidField{
		error: fmt.Errorf("%s", message(fe)),
		Field: fe.Namespace(),
		Tag:   fe.Tag(),
	}
}

func message(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "max_years":
		return fmt.Sprintf("%s exceeds the maximum projection horizon", field)
	case "run_name":
		return fmt.Sprintf("%s contains invalid characters", field)
	case "narrative_kind", "report_type", "report_format", "run_kind":
		return fmt.Sprintf("%s has unsupported value %q", field, fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("%s failed the %s check", field, fe.Tag())
	}
}
