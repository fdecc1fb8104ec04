// Package types holds the report model shared by the renderers.
package types

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ahpgap/workforce-planner/internal/projection"
	"github.com/ahpgap/workforce-planner/internal/projection/cost"
	"github.com/ahpgap/workforce-planner/internal/projection/trajectories"
)

type ReportRenderer interface {
	Render(data *ReportData) ([]byte, error)
	SupportedFormat() ReportFormat
}

type ReportFormat string

const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatHTML ReportFormat = "html"
	ReportFormatXLSX ReportFormat = "xlsx"
)

func (f ReportFormat) ContentType() string {
	switch f {
	case ReportFormatCSV:
		return "text/csv"
	case ReportFormatHTML:
		return "text/html; charset=utf-8"
	case ReportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

type ReportType string

const (
	ReportTypeScenarios ReportType = "scenarios"
	ReportTypeCosts     ReportType = "costs"
)

type ReportOptions struct {
	Format ReportFormat
	Type   ReportType
	Title  string
}

type ReportTimestamps struct {
	Generated     string
	GeneratedTime string
	At            time.Time
}

func NewReportTimestamps(at time.Time) ReportTimestamps {
	return ReportTimestamps{
		Generated:     at.Format("January 2, 2006"),
		GeneratedTime: at.Format("15:04:05 MST"),
		At:            at,
	}
}

// ReportData is the input of every renderer. Scenario reports fill Scenarios
// and Strategy; cost reports fill the Cost fields.
type ReportData struct {
	Options     ReportOptions
	Timestamps  ReportTimestamps
	Years       int
	Scenarios   []projection.ScenarioPoint
	Strategy    *trajectories.StrategyParams
	Costs       []cost.YearRecord
	CostParams  *cost.Params
	CostSummary *cost.Summary
	Targets     []cost.CategoryTarget
}

// Table is a titled grid of cells. Cells hold string, int, int64, float64 or
// bool values; int cells are labels such as years and int64 cells are counts.
type Table struct {
	Title  string
	Header []string
	Rows   [][]any
}

// Tables lays the report out as the ordered list of tables every format renders.
func (d *ReportData) Tables() []Table {
	switch d.Options.Type {
	case ReportTypeCosts:
		return d.costTables()
	default:
		return d.scenarioTables()
	}
}

func (d *ReportData) scenarioTables() []Table {
	var tables []Table

	if d.Strategy != nil {
		tables = append(tables, Table{
			Title:  "Strategy Parameters",
			Header: []string{"Parameter", "Value"},
			Rows: [][]any{
				{"Projection Years", d.Years},
				{"Training Capacity Increase", d.Strategy.TrainingCapacityIncrease},
				{"Infrastructure Boost", d.Strategy.InfrastructureBoost},
				{"Retention Improvement", d.Strategy.RetentionImprovement},
			},
		})
	}

	rows := make([][]any, 0, len(d.Scenarios))
	for _, p := range d.Scenarios {
		rows = append(rows, []any{p.Year, string(p.Scenario), p.Gap, p.GapClosurePct, p.AnnualAddition})
	}
	tables = append(tables, Table{
		Title:  "Scenario Projections",
		Header: []string{"Year", "Scenario", "Gap", "Gap Closure %", "Annual Addition"},
		Rows:   rows,
	})

	return tables
}

func (d *ReportData) costTables() []Table {
	var tables []Table

	if p := d.CostParams; p != nil {
		tables = append(tables, Table{
			Title:  "Investment Plan",
			Header: []string{"Parameter", "Value"},
			Rows: [][]any{
				{"Target Gap Closure %", p.TargetGapClosurePct},
				{"Years", p.Years},
				{"Training Cost Multiplier", p.TrainingCostMultiplier},
				{"Salary Growth Rate", p.SalaryGrowthRate},
				{"Infrastructure Investment %", p.InfrastructureInvestmentPct},
				{"Include Retention", p.IncludeRetention},
				{"Inflation Rate", p.InflationRate},
			},
		})
	}

	if s := d.CostSummary; s != nil {
		tables = append(tables, Table{
			Title:  "Summary",
			Header: []string{"Metric", "Value"},
			Rows: [][]any{
				{"Total Cost (Cr)", s.TotalCostCr},
				{"First Year Cost (Cr)", s.FirstYearCostCr},
				{"Average Annual Cost (Cr)", s.AverageAnnualCostCr},
				{"Professionals Added", s.ProfessionalsAdded},
				{"Final Gap Remaining", s.FinalGapRemaining},
				{"Final Gap Closure %", s.FinalGapClosurePct},
				{"Final Inflation Factor", s.FinalInflationFactor},
			},
		})
	}

	rows := make([][]any, 0, len(d.Costs))
	for _, r := range d.Costs {
		rows = append(rows, []any{
			r.Year, r.CalendarYear,
			r.TrainingCostCr, r.SalaryCostCr, r.InfrastructureCostCr, r.RetentionCostCr,
			r.TotalYearCostCr, r.CumulativeCostCr,
			r.ProfessionalsAdded, r.CumulativeProfessionals,
			r.GapRemaining, r.GapClosurePct, r.InflationFactor,
		})
	}
	tables = append(tables, Table{
		Title: "Annual Costs",
		Header: []string{
			"Year", "Calendar Year",
			"Training (Cr)", "Salary (Cr)", "Infrastructure (Cr)", "Retention (Cr)",
			"Total (Cr)", "Cumulative (Cr)",
			"Professionals Added", "Cumulative Professionals",
			"Gap Remaining", "Gap Closure %", "Inflation Factor",
		},
		Rows: rows,
	})

	if len(d.Targets) > 0 {
		rows := make([][]any, 0, len(d.Targets))
		for _, t := range d.Targets {
			rows = append(rows, []any{t.Category, t.Share * 100, t.Target})
		}
		tables = append(tables, Table{
			Title:  "Annual Target by Category",
			Header: []string{"Category", "Share %", "Annual Target"},
			Rows:   rows,
		})
	}

	return tables
}

// Title returns the configured title or a default for the report type.
func (d *ReportData) Title() string {
	if d.Options.Title != "" {
		return d.Options.Title
	}
	if d.Options.Type == ReportTypeCosts {
		return fmt.Sprintf("AHP WORKFORCE INVESTMENT REPORT (%d YEARS)", d.Years)
	}
	return fmt.Sprintf("AHP WORKFORCE GAP SCENARIOS (%d YEARS)", d.Years)
}

// CellString formats a cell without grouping or rounding.
func CellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case bool:
		if c {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprint(c)
	}
}
