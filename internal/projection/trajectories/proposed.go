package trajectories

import "github.com/ahpgap/workforce-planner/internal/projection"

const (
	// ParamTrainingCapacityIncrease is the projection.Param key for the capacity multiplier reached after the ramp.
	ParamTrainingCapacityIncrease = "training_capacity_increase"
	// ParamInfrastructureBoost is the projection.Param key for the infrastructure multiplier. It is accepted but has no effect.
	ParamInfrastructureBoost = "infrastructure_boost"
	// ParamRetentionImprovement is the projection.Param key for the fractional reduction in attrition.
	ParamRetentionImprovement = "retention_improvement"

	// DefaultRampYears is the number of years over which capacity ramps up linearly.
	DefaultRampYears = 3
)

// StrategyParams are the tunables of the proposed strategy.
// InfrastructureBoost is carried through to callers but does not enter the
// computation.
type StrategyParams struct {
	TrainingCapacityIncrease float64 `json:"training_capacity_increase"`
	InfrastructureBoost      float64 `json:"infrastructure_boost"`
	RetentionImprovement     float64 `json:"retention_improvement"`
}

// DefaultStrategyParams returns capacity x2.0, infrastructure x1.5 and a 30% retention improvement.
func DefaultStrategyParams() StrategyParams {
	return StrategyParams{
		TrainingCapacityIncrease: 2.0,
		InfrastructureBoost:      1.5,
		RetentionImprovement:     0.30,
	}
}

// Params converts the tunables into a projection.Param slice.
func (s StrategyParams) Params() []projection.Param {
	return []projection.Param{
		{Key: ParamTrainingCapacityIncrease, Value: s.TrainingCapacityIncrease},
		{Key: ParamInfrastructureBoost, Value: s.InfrastructureBoost},
		{Key: ParamRetentionImprovement, Value: s.RetentionImprovement},
	}
}

func (s StrategyParams) validate() error {
	if s.TrainingCapacityIncrease < 0 {
		return projection.NewErrInvalidParameter("%s must be non-negative, got %v", ParamTrainingCapacityIncrease, s.TrainingCapacityIncrease)
	}
	if s.RetentionImprovement < 0 || s.RetentionImprovement > 1 {
		return projection.NewErrInvalidParameter("%s must be within [0,1], got %v", ParamRetentionImprovement, s.RetentionImprovement)
	}
	return nil
}

// Compile-time assertion that Proposed implements the Projector interface.
var _ projection.Projector = (*Proposed)(nil)

// Proposed projects the gap under the proposed strategy: training output ramps
// from current capacity to an enhanced level while improved retention lowers
// attrition.
type Proposed struct {
	ref       projection.Reference
	defaults  StrategyParams
	attrition float64
	rampYears int
}

// ProposedOption is a functional option for configuring a Proposed projector.
type ProposedOption func(*Proposed)

// WithStrategyDefaults sets the tunables used when a param is not supplied.
func WithStrategyDefaults(sp StrategyParams) ProposedOption {
	return func(p *Proposed) {
		p.defaults = sp
	}
}

// WithRampYears overrides the ramp length. Non-positive values are ignored.
func WithRampYears(years int) ProposedOption {
	return func(p *Proposed) {
		if years > 0 {
			p.rampYears = years
		}
	}
}

func NewProposed(ref projection.Reference, opts ...ProposedOption) *Proposed {
	res := Proposed{
		ref:       ref,
		defaults:  DefaultStrategyParams(),
		attrition: DefaultAttritionRate,
		rampYears: DefaultRampYears,
	}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

func (p *Proposed) Scenario() projection.Scenario {
	return projection.ProposedStrategy
}

func (p *Proposed) Keys() []string {
	return []string{ParamTrainingCapacityIncrease, ParamInfrastructureBoost, ParamRetentionImprovement}
}

// Project reads the strategy tunables from params, falling back to the
// configured defaults for any that are missing.
func (p *Proposed) Project(years int, params map[string]projection.Param) ([]projection.ScenarioPoint, error) {
	sp, err := p.strategyParams(params)
	if err != nil {
		return nil, err
	}
	return p.project(years, sp)
}

func (p *Proposed) strategyParams(params map[string]projection.Param) (StrategyParams, error) {
	var (
		sp  StrategyParams
		err error
	)
	if sp.TrainingCapacityIncrease, err = floatOr(params, ParamTrainingCapacityIncrease, p.defaults.TrainingCapacityIncrease); err != nil {
		return sp, err
	}
	if sp.InfrastructureBoost, err = floatOr(params, ParamInfrastructureBoost, p.defaults.InfrastructureBoost); err != nil {
		return sp, err
	}
	if sp.RetentionImprovement, err = floatOr(params, ParamRetentionImprovement, p.defaults.RetentionImprovement); err != nil {
		return sp, err
	}
	return sp, nil
}

// ImprovedAttrition is the attrition rate after the retention improvement.
func (p *Proposed) ImprovedAttrition(sp StrategyParams) float64 {
	return p.attrition * (1 - sp.RetentionImprovement)
}

// Capacity returns the training output at the given year index.
func (p *Proposed) Capacity(year int, sp StrategyParams) float64 {
	base := p.ref.ProductionCapacity()
	enhanced := base * sp.TrainingCapacityIncrease
	ramp := min(1.0, float64(year)/float64(p.rampYears))
	return base + (enhanced-base)*ramp
}

func (p *Proposed) project(years int, sp StrategyParams) ([]projection.ScenarioPoint, error) {
	if err := projection.ValidateYears(years); err != nil {
		return nil, err
	}
	if err := sp.validate(); err != nil {
		return nil, err
	}

	attrition := p.ImprovedAttrition(sp)
	gap := p.ref.TotalGap
	points := make([]projection.ScenarioPoint, 0, years+1)
	for y := 0; y <= years; y++ {
		net := int64(p.Capacity(y, sp) * (1 - attrition))
		points = append(points, p.ref.Point(projection.ProposedStrategy, y, gap, net))
		gap = max(0, gap-net)
	}
	return points, nil
}

// ProjectProposedStrategy runs the Proposed projector with explicit tunables.
func ProjectProposedStrategy(ref projection.Reference, years int, sp StrategyParams) ([]projection.ScenarioPoint, error) {
	return NewProposed(ref).project(years, sp)
}
