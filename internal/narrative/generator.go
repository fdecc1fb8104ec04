// Package narrative produces free-text policy prose for a scenario summary
// using a remote generative model.
//
// The projection packages never depend on this package. Callers treat every
// failure as displayable: see DisplayMessage.
package narrative

import (
	"context"
	"errors"
	"fmt"
)

type Kind string

const (
	KindPolicyRecommendations Kind = "policy_recommendations"
	KindExecutive             Kind = "executive"
	KindPolicyBrief           Kind = "policy_brief"
	KindImplementation        Kind = "implementation"
	KindStrategy              Kind = "strategy"
)

// Kinds lists every supported narrative kind.
func Kinds() []Kind {
	return []Kind{KindPolicyRecommendations, KindExecutive, KindPolicyBrief, KindImplementation, KindStrategy}
}

func (k Kind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// CategoryPriority is one category line in a prompt.
type CategoryPriority struct {
	Name          string  `json:"name"`
	Gap           int64   `json:"gap"`
	GapPercentage float64 `json:"gap_percentage"`
	AvgSalary     float64 `json:"avg_salary_inr"`
}

// ScenarioSummary is the structured input to every prompt.
type ScenarioSummary struct {
	TotalGap           int64              `json:"total_gap"`
	Years              int                `json:"years"`
	StrategyType       string             `json:"strategy_type"`
	BudgetCr           float64            `json:"budget_cr"`
	GapClosurePct      float64            `json:"gap_closure_pct"`
	CurrentSupply      int64              `json:"current_supply"`
	RequiredSupply     int64              `json:"required_supply"`
	GapPct             float64            `json:"gap_pct"`
	AnnualSalaryCr     float64            `json:"annual_salary_cr"`
	TrainingCostCr     float64            `json:"training_cost_cr"`
	FirstYearCostCr    float64            `json:"first_year_cost_cr"`
	TotalCostCr        float64            `json:"total_cost_cr"`
	ProfessionalsAdded int64              `json:"professionals_added"`
	Categories         []CategoryPriority `json:"categories"`
	KeyShortages       string             `json:"key_shortages"`
	BudgetConstraints  string             `json:"budget_constraints"`
	PriorityAreas      []string           `json:"priority_areas"`
	PhaseFocus         string             `json:"phase_focus"`
}

type Request struct {
	Kind    Kind            `json:"kind"`
	Summary ScenarioSummary `json:"summary"`
}

// Generator turns a Request into prose. Implementations block until the text
// or an error is available and never retry.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

var (
	// ErrMissingCredentials is returned when no API key is configured.
	ErrMissingCredentials = errors.New("narrative generator credentials are not configured")
	// ErrRemoteService wraps every failure of the remote model call.
	ErrRemoteService = errors.New("narrative remote service failed")
)

type ErrUnsupportedKind struct {
	error
}

func NewErrUnsupportedKind(k Kind) *ErrUnsupportedKind {
	return &ErrUnsupportedKind{fmt.Errorf("unsupported narrative kind %q", k)}
}

// DisplayMessage converts a generator error into text suitable for showing
// in place of the narrative.
func DisplayMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredentials):
		return "AI narratives are unavailable: set GOOGLE_API_KEY to enable generated policy text."
	default:
		return fmt.Sprintf("Error generating narrative: %v", err)
	}
}
