package projection

import "github.com/ahpgap/workforce-planner/internal/dataset"

// Scenario names one policy trajectory.
type Scenario string

const (
	Baseline         Scenario = "Baseline"
	NoIntervention   Scenario = "NoIntervention"
	ProposedStrategy Scenario = "ProposedStrategy"
)

// DefaultBaseYear is the calendar year of sample zero.
const DefaultBaseYear = 2024

// Projector computes one scenario trajectory (e.g. "baseline", "proposed strategy").
type Projector interface {
	// Scenario returns the scenario tag stamped on every point, used as the key in the Engine.
	Scenario() Scenario
	// Keys returns the list of Param keys this projector reads.
	Keys() []string
	// Project returns years+1 samples, year zero through year years.
	Project(years int, params map[string]Param) ([]ScenarioPoint, error)
}

// Param represents a tunable for a Projector (user supplied or defaulted)
type Param struct {
	Key   string      // Unique identifier (e.g., "retention_improvement")
	Value interface{} // The actual value (e.g., 2, 0.3)
}

// ScenarioPoint is one (year, scenario) sample of the national gap.
type ScenarioPoint struct {
	Year           int      `json:"year"`
	Scenario       Scenario `json:"scenario"`
	Gap            int64    `json:"gap"`
	GapClosurePct  float64  `json:"gap_closure_pct"`
	AnnualAddition int64    `json:"annual_addition"`
}

// Reference is the slice of reference data the trajectories depend on.
type Reference struct {
	TotalGap        int64
	BaseYear        int
	AnnualSeats     int64
	UtilizationRate float64
}

// NewReference extracts the projection inputs from a dataset.
func NewReference(d *dataset.Dataset, baseYear int) Reference {
	if baseYear == 0 {
		baseYear = DefaultBaseYear
	}
	return Reference{
		TotalGap:        d.TotalGap,
		BaseYear:        baseYear,
		AnnualSeats:     d.TrainingInfrastructure.AnnualSeats,
		UtilizationRate: d.TrainingInfrastructure.UtilizationRate,
	}
}

// ProductionCapacity is the number of trainees produced per year at current utilisation.
func (r Reference) ProductionCapacity() float64 {
	return float64(r.AnnualSeats) * r.UtilizationRate
}

// Point builds the sample for the given year index. The addition is forced to
// zero at year zero.
func (r Reference) Point(s Scenario, index int, gap, addition int64) ScenarioPoint {
	if index == 0 {
		addition = 0
	}
	return ScenarioPoint{
		Year:           r.BaseYear + index,
		Scenario:       s,
		Gap:            gap,
		GapClosurePct:  ClosurePct(r.TotalGap, gap),
		AnnualAddition: addition,
	}
}

// ClosurePct is (total - gap) / total * 100.
func ClosurePct(total, gap int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(total-gap) / float64(total) * 100
}
