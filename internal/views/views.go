// Package views derives the tabular views presented by the API and CLI from
// the reference dataset. All functions are pure and return fresh slices.
package views

import (
	"strings"

	"github.com/ahpgap/workforce-planner/internal/dataset"
	"github.com/ahpgap/workforce-planner/internal/util"
)

type StateRow struct {
	dataset.State
	AHPPer10K      float64 `json:"ahp_per_10k"`
	RequiredPer10K float64 `json:"required_per_10k"`
}

type RegionRow struct {
	Region               string  `json:"region"`
	States               int     `json:"states"`
	Population           int64   `json:"population"`
	CurrentAHP           int64   `json:"current_ahp"`
	RequiredAHP          int64   `json:"required_ahp"`
	Gap                  int64   `json:"gap"`
	GapPct               float64 `json:"gap_pct"`
	TrainingInstitutions int64   `json:"training_institutions"`
	AnnualGraduates      int64   `json:"annual_graduates"`
	AHPPer10K            float64 `json:"ahp_per_10k"`
}

type FundingSourceRow struct {
	dataset.FundingSource
	AdditionalMobilizable float64 `json:"additional_mobilizable_cr"`
}

type StrategyRow struct {
	Phase               string  `json:"phase"`
	PhaseDescription    string  `json:"phase_description"`
	Strategy            string  `json:"strategy"`
	Description         string  `json:"description"`
	TargetProfessionals int64   `json:"target_professionals"`
	AnnualCostCr        float64 `json:"annual_cost_cr"`
	GapReductionPct     float64 `json:"gap_reduction_pct"`
	ExpectedImpact      string  `json:"expected_impact"`
	Locations           string  `json:"locations"`
}

func CategoryView(d *dataset.Dataset) []dataset.Category {
	return append([]dataset.Category(nil), d.Categories...)
}

// StateView adds the per-10,000 population densities to each state.
func StateView(d *dataset.Dataset) []StateRow {
	rows := make([]StateRow, 0, len(d.States))
	for _, s := range d.States {
		rows = append(rows, StateRow{
			State:          s,
			AHPPer10K:      per10K(s.CurrentAHP, s.Population),
			RequiredPer10K: per10K(s.RequiredAHP, s.Population),
		})
	}
	return rows
}

// RegionSummary aggregates member states per region. Members missing from the
// state table are counted in States but contribute nothing else.
func RegionSummary(d *dataset.Dataset) []RegionRow {
	rows := make([]RegionRow, 0, len(d.Regions))
	for _, r := range d.Regions {
		row := RegionRow{Region: r.Name, States: len(r.States)}
		for _, name := range r.States {
			s, ok := d.State(name)
			if !ok {
				continue
			}
			row.Population += s.Population
			row.CurrentAHP += s.CurrentAHP
			row.RequiredAHP += s.RequiredAHP
			row.Gap += s.Gap
			row.TrainingInstitutions += s.TrainingInstitutions
			row.AnnualGraduates += s.AnnualGraduates
		}
		if row.RequiredAHP > 0 {
			row.GapPct = util.Round(float64(row.Gap)/float64(row.RequiredAHP)*100, 1)
		}
		row.AHPPer10K = per10K(row.CurrentAHP, row.Population)
		rows = append(rows, row)
	}
	return rows
}

func FundingSourceView(d *dataset.Dataset) []FundingSourceRow {
	rows := make([]FundingSourceRow, 0, len(d.FundingSources))
	for _, f := range d.FundingSources {
		rows = append(rows, FundingSourceRow{
			FundingSource:         f,
			AdditionalMobilizable: f.PotentialAnnualCr - f.CurrentAnnualCr,
		})
	}
	return rows
}

func BudgetTrendView(d *dataset.Dataset) []dataset.BudgetYear {
	return append([]dataset.BudgetYear(nil), d.BudgetTrend...)
}

func GlobalComparisonView(d *dataset.Dataset) []dataset.CountrySpending {
	return append([]dataset.CountrySpending(nil), d.GlobalComparison...)
}

func WHOBenchmarkView(d *dataset.Dataset) []dataset.WHOBenchmark {
	return append([]dataset.WHOBenchmark(nil), d.WHOBenchmarks...)
}

// StrategySummary flattens the portfolio into one row per strategy, keeping
// phase order.
func StrategySummary(d *dataset.Dataset) []StrategyRow {
	var rows []StrategyRow
	for _, phase := range d.StrategyPortfolio {
		for _, s := range phase.Strategies {
			rows = append(rows, StrategyRow{
				Phase:               capitalize(phase.Key),
				PhaseDescription:    phase.Phase,
				Strategy:            s.Name,
				Description:         s.Description,
				TargetProfessionals: s.TargetProfessionals,
				AnnualCostCr:        s.CostCrAnnual,
				GapReductionPct:     s.GapReductionPct,
				ExpectedImpact:      s.ExpectedImpact,
				Locations:           strings.Join(s.ImplementationLocations, ", "),
			})
		}
	}
	return rows
}

func per10K(count, population int64) float64 {
	if population <= 0 {
		return 0
	}
	return util.Round(float64(count)/float64(population)*10000, 2)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
