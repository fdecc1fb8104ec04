package cost

import "github.com/ahpgap/workforce-planner/internal/util"

// Summary condenses a projection into the figures quoted in narratives and saved runs.
type Summary struct {
	Years                int     `json:"years"`
	TotalCostCr          float64 `json:"total_cost_cr"`
	FirstYearCostCr      float64 `json:"first_year_cost_cr"`
	ProfessionalsAdded   int64   `json:"professionals_added"`
	FinalGapRemaining    int64   `json:"final_gap_remaining"`
	FinalGapClosurePct   float64 `json:"final_gap_closure_pct"`
	AverageAnnualCostCr  float64 `json:"average_annual_cost_cr"`
	FinalInflationFactor float64 `json:"final_inflation_factor"`
}

// Summarize returns the zero Summary for an empty projection.
func Summarize(records []YearRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}
	first, last := records[0], records[len(records)-1]
	return Summary{
		Years:                len(records),
		TotalCostCr:          last.CumulativeCostCr,
		FirstYearCostCr:      first.TotalYearCostCr,
		ProfessionalsAdded:   last.CumulativeProfessionals,
		FinalGapRemaining:    last.GapRemaining,
		FinalGapClosurePct:   last.GapClosurePct,
		AverageAnnualCostCr:  util.Round(last.RawCumulative/Crore/float64(len(records)), 2),
		FinalInflationFactor: last.InflationFactor,
	}
}
