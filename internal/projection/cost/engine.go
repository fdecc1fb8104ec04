package cost

import (
	"math"

	"github.com/ahpgap/workforce-planner/internal/dataset"
	"github.com/ahpgap/workforce-planner/internal/projection"
	"github.com/ahpgap/workforce-planner/internal/util"
)

// Engine runs cost projections against a fixed category table.
type Engine struct {
	totalGap             int64
	baseYear             int
	categories           []dataset.Category
	remainderInFinalYear bool
	floorGap             bool
}

// Option is a functional option for configuring an Engine.
type Option func(*Engine)

// WithBaseYear sets the calendar year preceding year 1. Non-positive values are ignored.
func WithBaseYear(year int) Option {
	return func(e *Engine) {
		if year > 0 {
			e.baseYear = year
		}
	}
}

// WithRemainderInFinalYear adds the professionals lost to integer division of
// the target across years to the final year's target.
func WithRemainderInFinalYear() Option {
	return func(e *Engine) {
		e.remainderInFinalYear = true
	}
}

// WithGapFloor clamps GapRemaining at zero.
func WithGapFloor() Option {
	return func(e *Engine) {
		e.floorGap = true
	}
}

// NewEngine creates an Engine over the dataset's categories and TotalGap.
func NewEngine(d *dataset.Dataset, opts ...Option) *Engine {
	res := Engine{
		totalGap:   d.TotalGap,
		baseYear:   projection.DefaultBaseYear,
		categories: d.Categories,
	}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

// Targets returns the total reduction and the flat annual target for p.
func (e *Engine) Targets(p Params) (reduction, annual int64, err error) {
	if p.Years <= 0 {
		return 0, 0, projection.NewErrInvalidParameter("years must be positive, got %d", p.Years)
	}
	reduction = int64(float64(e.totalGap) * (p.TargetGapClosurePct / 100))
	return reduction, reduction / int64(p.Years), nil
}

// Project computes one YearRecord per year of the plan. Rates are trusted as
// given; only the horizon is checked.
func (e *Engine) Project(p Params) ([]YearRecord, error) {
	reduction, annual, err := e.Targets(p)
	if err != nil {
		return nil, err
	}

	shares := Shares(e.categories)
	records := make([]YearRecord, 0, p.Years)

	var (
		cumulativeHired int64
		cumulativeCost  float64
	)
	for year := 1; year <= p.Years; year++ {
		yearTarget := annual
		if e.remainderInFinalYear && year == p.Years {
			yearTarget += reduction % int64(p.Years)
		}

		inflation := math.Pow(1+p.InflationRate, float64(year-1))
		salaryGrowth := math.Pow(1+p.SalaryGrowthRate, float64(year-1))

		var c YearCost
		for i, category := range e.categories {
			share := shares[i]
			categoryTarget := int64(float64(yearTarget) * share)

			c.Training += float64(categoryTarget) * (category.TrainingCost * p.TrainingCostMultiplier) * inflation

			salaryWithGrowth := category.AvgSalary * salaryGrowth
			c.Salary += float64(categoryTarget) * salaryWithGrowth

			if p.IncludeRetention {
				c.Retention += float64(cumulativeHired) * share * salaryWithGrowth * RetentionIncentiveRate
			}
		}
		c.Infrastructure = (c.Training + c.Salary) * p.InfrastructureInvestmentPct

		total := c.Total()
		cumulativeHired += yearTarget
		cumulativeCost += total

		gapRemaining := e.totalGap - cumulativeHired
		if e.floorGap {
			gapRemaining = max(0, gapRemaining)
		}

		records = append(records, YearRecord{
			Year:                    year,
			CalendarYear:            e.baseYear + year,
			TrainingCostCr:          util.Round(c.Training/Crore, 2),
			SalaryCostCr:            util.Round(c.Salary/Crore, 2),
			InfrastructureCostCr:    util.Round(c.Infrastructure/Crore, 2),
			RetentionCostCr:         util.Round(c.Retention/Crore, 2),
			TotalYearCostCr:         util.Round(total/Crore, 2),
			CumulativeCostCr:        util.Round(cumulativeCost/Crore, 2),
			ProfessionalsAdded:      yearTarget,
			CumulativeProfessionals: cumulativeHired,
			GapRemaining:            gapRemaining,
			GapClosurePct:           util.Round(float64(cumulativeHired)/float64(e.totalGap)*100, 2),
			InflationFactor:         util.Round(inflation, 3),
			Raw:                     c,
			RawCumulative:           cumulativeCost,
		})
	}
	return records, nil
}

// Shares returns each category's gap divided by the category gap sum, in
// category order. The shares are not recomputed as gaps close.
func Shares(categories []dataset.Category) []float64 {
	var sum int64
	for _, c := range categories {
		sum += c.Gap
	}
	shares := make([]float64, len(categories))
	if sum <= 0 {
		return shares
	}
	for i, c := range categories {
		shares[i] = float64(c.Gap) / float64(sum)
	}
	return shares
}

// AllocateAnnualTarget splits an annual target over categories by share,
// truncating each category's target. The sum never exceeds annual.
func AllocateAnnualTarget(categories []dataset.Category, annual int64) []CategoryTarget {
	shares := Shares(categories)
	res := make([]CategoryTarget, 0, len(categories))
	for i, c := range categories {
		res = append(res, CategoryTarget{
			Category: c.Name,
			Share:    shares[i],
			Target:   int64(float64(annual) * shares[i]),
		})
	}
	return res
}
