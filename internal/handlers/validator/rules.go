package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/ahpgap/workforce-planner/internal/narrative"
	"github.com/ahpgap/workforce-planner/internal/service/report/types"
	"github.com/ahpgap/workforce-planner/internal/store/model"
)

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

// NewProjectionValidationRules bounds every horizon by maxYears.
func NewProjectionValidationRules(maxYears int) []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("max_years", maxYearsValidator(maxYears)),
		},
	}
}

func NewNarrativeValidationRules() []ValidationRule {
	kinds := make([]string, 0, len(narrative.Kinds()))
	for _, k := range narrative.Kinds() {
		kinds = append(kinds, string(k))
	}
	return []ValidationRule{
		{
			Rule: registerFn("narrative_kind", oneOfValidator(kinds...)),
		},
	}
}

func NewReportValidationRules(formats ...types.ReportFormat) []ValidationRule {
	allowed := make([]string, 0, len(formats))
	for _, f := range formats {
		allowed = append(allowed, string(f))
	}
	return []ValidationRule{
		{
			Rule: registerFn("report_type", oneOfValidator(string(types.ReportTypeScenarios), string(types.ReportTypeCosts))),
		},
		{
			Rule: registerFn("report_format", oneOfValidator(allowed...)),
		},
	}
}

func NewRunValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("run_name", runNameValidator),
		},
		{
			Rule: registerFn("run_kind", oneOfValidator(string(model.RunKindScenarios), string(model.RunKindCosts))),
		},
	}
}
