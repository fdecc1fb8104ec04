package projection

import "fmt"

type ErrInvalidParameter struct {
	error
}

func NewErrInvalidParameter(format string, args ...any) *ErrInvalidParameter {
	return &ErrInvalidParameter{fmt.Errorf("invalid parameter: "+format, args...)}
}

type ErrUnknownScenario struct {
	error
}

func NewErrUnknownScenario(s Scenario) *ErrUnknownScenario {
	return &ErrUnknownScenario{fmt.Errorf("no projector registered for scenario %q", s)}
}

// ValidateYears rejects negative horizons. Zero years yields the year-zero sample only.
func ValidateYears(years int) error {
	if years < 0 {
		return NewErrInvalidParameter("years must be non-negative, got %d", years)
	}
	return nil
}
