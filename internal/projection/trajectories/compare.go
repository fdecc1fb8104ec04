package trajectories

import "github.com/ahpgap/workforce-planner/internal/projection"

// NewEngine returns an engine with the Baseline, NoIntervention and
// ProposedStrategy projectors registered in that order.
func NewEngine(ref projection.Reference, opts ...ProposedOption) *projection.Engine {
	e := projection.NewEngine()
	e.Register(NewBaseline(ref))
	e.Register(NewNoIntervention(ref))
	e.Register(NewProposed(ref, opts...))
	return e
}

// CompareScenarios concatenates the three default trajectories for joint lookup by (year, scenario).
func CompareScenarios(ref projection.Reference, years int, sp StrategyParams) ([]projection.ScenarioPoint, error) {
	return NewEngine(ref).Compare(years, sp.Params())
}
