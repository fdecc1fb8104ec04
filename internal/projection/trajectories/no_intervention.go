package trajectories

import "github.com/ahpgap/workforce-planner/internal/projection"

const (
	// DefaultAttritionRate is the national annual attrition applied to new graduates.
	DefaultAttritionRate = 0.10
	// DefaultCapacityDeclineRate is the yearly shrinkage of training output under neglect.
	DefaultCapacityDeclineRate = 0.02
)

// Compile-time assertion that NoIntervention implements the Projector interface.
var _ projection.Projector = (*NoIntervention)(nil)

// NoIntervention projects the gap when training capacity is left to decline.
type NoIntervention struct {
	ref         projection.Reference
	attrition   float64
	declineRate float64
}

// NoInterventionOption is a functional option for configuring a NoIntervention projector.
type NoInterventionOption func(*NoIntervention)

// WithAttritionRate overrides the attrition rate. Values outside [0,1) are ignored.
func WithAttritionRate(rate float64) NoInterventionOption {
	return func(n *NoIntervention) {
		if rate >= 0 && rate < 1 {
			n.attrition = rate
		}
	}
}

// WithCapacityDeclineRate overrides the yearly capacity decline. Values outside [0,1) are ignored.
func WithCapacityDeclineRate(rate float64) NoInterventionOption {
	return func(n *NoIntervention) {
		if rate >= 0 && rate < 1 {
			n.declineRate = rate
		}
	}
}

func NewNoIntervention(ref projection.Reference, opts ...NoInterventionOption) *NoIntervention {
	res := NoIntervention{
		ref:         ref,
		attrition:   DefaultAttritionRate,
		declineRate: DefaultCapacityDeclineRate,
	}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

func (n *NoIntervention) Scenario() projection.Scenario {
	return projection.NoIntervention
}

// Keys returns nil: the no-intervention trajectory has no caller tunables.
func (n *NoIntervention) Keys() []string {
	return nil
}

// Capacity returns the training output at the given year index. It does not
// depend on the gap.
func (n *NoIntervention) Capacity(year int) float64 {
	production := n.ref.ProductionCapacity()
	for i := 0; i < year; i++ {
		production *= 1 - n.declineRate
	}
	return production
}

func (n *NoIntervention) Project(years int, _ map[string]projection.Param) ([]projection.ScenarioPoint, error) {
	if err := projection.ValidateYears(years); err != nil {
		return nil, err
	}

	production := n.ref.ProductionCapacity()
	gap := n.ref.TotalGap
	points := make([]projection.ScenarioPoint, 0, years+1)
	for y := 0; y <= years; y++ {
		net := int64(production * (1 - n.attrition))
		points = append(points, n.ref.Point(projection.NoIntervention, y, gap, net))
		gap = max(0, gap-net)
		production *= 1 - n.declineRate
	}
	return points, nil
}

// ProjectNoIntervention runs the default NoIntervention projector.
func ProjectNoIntervention(ref projection.Reference, years int) ([]projection.ScenarioPoint, error) {
	return NewNoIntervention(ref).Project(years, nil)
}
