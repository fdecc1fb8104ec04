package cost

// Crore is the number of rupees in the reporting unit.
const Crore = 1e7

// RetentionIncentiveRate is the share of salary paid yearly to retain previously hired professionals.
const RetentionIncentiveRate = 0.15

// Params is the investment plan.
type Params struct {
	TargetGapClosurePct         float64 `json:"target_gap_closure_pct"`
	Years                       int     `json:"years"`
	TrainingCostMultiplier      float64 `json:"training_cost_multiplier"`
	SalaryGrowthRate            float64 `json:"salary_growth_rate"`
	InfrastructureInvestmentPct float64 `json:"infrastructure_investment_pct"`
	IncludeRetention            bool    `json:"include_retention"`
	InflationRate               float64 `json:"inflation_rate"`
}

// DefaultParams returns the reference plan for the given target and horizon.
func DefaultParams(targetPct float64, years int) Params {
	return Params{
		TargetGapClosurePct:         targetPct,
		Years:                       years,
		TrainingCostMultiplier:      1.0,
		SalaryGrowthRate:            0.05,
		InfrastructureInvestmentPct: 0.20,
		IncludeRetention:            true,
		InflationRate:               0.05,
	}
}

// YearCost is one year's cost in rupees, unrounded.
type YearCost struct {
	Training       float64
	Salary         float64
	Infrastructure float64
	Retention      float64
}

// Total is the sum of the four components.
func (c YearCost) Total() float64 {
	return c.Training + c.Salary + c.Infrastructure + c.Retention
}

// YearRecord is one year of a cost projection.
type YearRecord struct {
	Year                    int     `json:"year"`
	CalendarYear            int     `json:"calendar_year"`
	TrainingCostCr          float64 `json:"training_cost_cr"`
	SalaryCostCr            float64 `json:"salary_cost_cr"`
	InfrastructureCostCr    float64 `json:"infrastructure_cost_cr"`
	RetentionCostCr         float64 `json:"retention_cost_cr"`
	TotalYearCostCr         float64 `json:"total_year_cost_cr"`
	CumulativeCostCr        float64 `json:"cumulative_cost_cr"`
	ProfessionalsAdded      int64   `json:"professionals_added"`
	CumulativeProfessionals int64   `json:"cumulative_professionals"`
	GapRemaining            int64   `json:"gap_remaining"`
	GapClosurePct           float64 `json:"gap_closure_pct"`
	InflationFactor         float64 `json:"inflation_factor"`

	Raw           YearCost `json:"-"`
	RawCumulative float64  `json:"-"`
}

// CategoryTarget is one category's share of an annual hiring target.
type CategoryTarget struct {
	Category string  `json:"category"`
	Share    float64 `json:"share"`
	Target   int64   `json:"target"`
}
