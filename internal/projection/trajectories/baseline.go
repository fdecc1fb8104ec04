package trajectories

import "github.com/ahpgap/workforce-planner/internal/projection"

const (
	// DefaultBaselineAddition is the nominal number of professionals added each year under the current trend.
	DefaultBaselineAddition int64 = 125_000
	// DefaultBaselineReaddRate is the share of the nominal addition put back on the gap each year.
	DefaultBaselineReaddRate = 0.12
)

// Compile-time assertion that Baseline implements the Projector interface.
var _ projection.Projector = (*Baseline)(nil)

// Baseline projects the gap under the current trend: a fixed nominal addition
// of which only 88% is a real net gain.
type Baseline struct {
	ref       projection.Reference
	addition  int64
	readdRate float64
}

// BaselineOption is a functional option for configuring a Baseline projector.
type BaselineOption func(*Baseline)

// WithBaselineAddition overrides the nominal annual addition. Non-positive values are ignored.
func WithBaselineAddition(n int64) BaselineOption {
	return func(b *Baseline) {
		if n > 0 {
			b.addition = n
		}
	}
}

// WithBaselineReaddRate overrides the damping share. Values outside [0,1) are ignored.
func WithBaselineReaddRate(rate float64) BaselineOption {
	return func(b *Baseline) {
		if rate >= 0 && rate < 1 {
			b.readdRate = rate
		}
	}
}

func NewBaseline(ref projection.Reference, opts ...BaselineOption) *Baseline {
	res := Baseline{
		ref:       ref,
		addition:  DefaultBaselineAddition,
		readdRate: DefaultBaselineReaddRate,
	}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

func (b *Baseline) Scenario() projection.Scenario {
	return projection.Baseline
}

// Keys returns nil: the baseline has no caller tunables.
func (b *Baseline) Keys() []string {
	return nil
}

func (b *Baseline) Project(years int, _ map[string]projection.Param) ([]projection.ScenarioPoint, error) {
	if err := projection.ValidateYears(years); err != nil {
		return nil, err
	}

	readd := int64(float64(b.addition) * b.readdRate)
	gap := b.ref.TotalGap
	points := make([]projection.ScenarioPoint, 0, years+1)
	for y := 0; y <= years; y++ {
		points = append(points, b.ref.Point(projection.Baseline, y, gap, b.addition))
		gap = max(0, gap-b.addition+readd)
	}
	return points, nil
}

// ProjectBaseline runs the default Baseline projector.
func ProjectBaseline(ref projection.Reference, years int) ([]projection.ScenarioPoint, error) {
	return NewBaseline(ref).Project(years, nil)
}
