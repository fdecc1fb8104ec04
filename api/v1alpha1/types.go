package v1alpha1

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Message   string  `json:"message"`
	RequestId *string `json:"requestId,omitempty"`
}

type Info struct {
	VersionName        string   `json:"versionName"`
	GitCommit          string   `json:"gitCommit"`
	BaseYear           int      `json:"baseYear"`
	TotalGap           int64    `json:"totalGap"`
	CategoryGapSum     int64    `json:"categoryGapSum"`
	MaxProjectionYears int      `json:"maxProjectionYears"`
	NarrativeKinds     []string `json:"narrativeKinds"`
	ReportFormats      []string `json:"reportFormats"`
}

// StrategyRequest drives the proposed strategy. Omitted tunables take their
// default values.
type StrategyRequest struct {
	Years                    int      `json:"years" validate:"min=1,max_years"`
	TrainingCapacityIncrease *float64 `json:"trainingCapacityIncrease,omitempty" validate:"omitempty,min=0"`
	InfrastructureBoost      *float64 `json:"infrastructureBoost,omitempty" validate:"omitempty,min=0"`
	RetentionImprovement     *float64 `json:"retentionImprovement,omitempty" validate:"omitempty,min=0,max=1"`
}

type ScenarioPoint struct {
	Year           int     `json:"year"`
	Scenario       string  `json:"scenario"`
	Gap            int64   `json:"gap"`
	GapClosurePct  float64 `json:"gapClosurePct"`
	AnnualAddition int64   `json:"annualAddition"`
}

type ScenarioList []ScenarioPoint

// CostRequest is an investment plan. Omitted rates take their default values.
type CostRequest struct {
	TargetGapClosurePct         float64  `json:"targetGapClosurePct" validate:"min=0,max=100"`
	Years                       int      `json:"years" validate:"min=1,max_years"`
	TrainingCostMultiplier      *float64 `json:"trainingCostMultiplier,omitempty" validate:"omitempty,min=0"`
	SalaryGrowthRate            *float64 `json:"salaryGrowthRate,omitempty" validate:"omitempty,min=0"`
	InfrastructureInvestmentPct *float64 `json:"infrastructureInvestmentPct,omitempty" validate:"omitempty,min=0"`
	IncludeRetention            *bool    `json:"includeRetention,omitempty"`
	InflationRate               *float64 `json:"inflationRate,omitempty" validate:"omitempty,min=0"`
	RemainderInFinalYear        bool     `json:"remainderInFinalYear,omitempty"`
	FloorGapRemaining           bool     `json:"floorGapRemaining,omitempty"`
}

type CostYear struct {
	Year                    int     `json:"year"`
	CalendarYear            int     `json:"calendarYear"`
	TrainingCostCr          float64 `json:"trainingCostCr"`
	SalaryCostCr            float64 `json:"salaryCostCr"`
	InfrastructureCostCr    float64 `json:"infrastructureCostCr"`
	RetentionCostCr         float64 `json:"retentionCostCr"`
	TotalYearCostCr         float64 `json:"totalYearCostCr"`
	CumulativeCostCr        float64 `json:"cumulativeCostCr"`
	ProfessionalsAdded      int64   `json:"professionalsAdded"`
	CumulativeProfessionals int64   `json:"cumulativeProfessionals"`
	GapRemaining            int64   `json:"gapRemaining"`
	GapClosurePct           float64 `json:"gapClosurePct"`
	InflationFactor         float64 `json:"inflationFactor"`
}

type CostSummary struct {
	Years                int     `json:"years"`
	TotalCostCr          float64 `json:"totalCostCr"`
	FirstYearCostCr      float64 `json:"firstYearCostCr"`
	AverageAnnualCostCr  float64 `json:"averageAnnualCostCr"`
	ProfessionalsAdded   int64   `json:"professionalsAdded"`
	FinalGapRemaining    int64   `json:"finalGapRemaining"`
	FinalGapClosurePct   float64 `json:"finalGapClosurePct"`
	FinalInflationFactor float64 `json:"finalInflationFactor"`
}

type CategoryTarget struct {
	Category string  `json:"category"`
	Share    float64 `json:"share"`
	Target   int64   `json:"target"`
}

type CostProjection struct {
	GapReduction int64            `json:"gapReduction"`
	AnnualTarget int64            `json:"annualTarget"`
	Records      []CostYear       `json:"records"`
	Summary      CostSummary      `json:"summary"`
	Targets      []CategoryTarget `json:"targets"`
}

// NarrativePlan selects the plan a narrative describes.
type NarrativePlan struct {
	Years               int      `json:"years" validate:"min=1,max_years"`
	TargetGapClosurePct float64  `json:"targetGapClosurePct" validate:"min=0,max=100"`
	StrategyType        string   `json:"strategyType,omitempty" validate:"max=100"`
	BudgetCr            *float64 `json:"budgetCr,omitempty" validate:"omitempty,min=0"`
	BudgetConstraints   string   `json:"budgetConstraints,omitempty" validate:"max=500"`
	PriorityAreas       []string `json:"priorityAreas,omitempty" validate:"max=10,dive,max=100"`
	PhaseFocus          string   `json:"phaseFocus,omitempty" validate:"max=100"`
}

type NarrativeRequest struct {
	Kind    string        `json:"kind" validate:"required,narrative_kind"`
	Summary NarrativePlan `json:"summary"`
}

type Narrative struct {
	Kind      string  `json:"kind"`
	Available bool    `json:"available"`
	Text      *string `json:"text,omitempty"`
	Message   *string `json:"message,omitempty"`
}

type ReportRequest struct {
	Type     string           `json:"type" validate:"required,report_type"`
	Format   string           `json:"format" validate:"required,report_format"`
	Title    string           `json:"title,omitempty" validate:"max=200"`
	Archive  bool             `json:"archive,omitempty"`
	Scenario *StrategyRequest `json:"scenario,omitempty" validate:"required_if=Type scenarios"`
	Cost     *CostRequest     `json:"cost,omitempty" validate:"required_if=Type costs"`
}

type RunCreate struct {
	Name     string           `json:"name" validate:"required,max=100,run_name"`
	Kind     string           `json:"kind" validate:"required,run_kind"`
	Scenario *StrategyRequest `json:"scenario,omitempty" validate:"required_if=Kind scenarios"`
	Cost     *CostRequest     `json:"cost,omitempty" validate:"required_if=Kind costs"`
}

type RunNarrate struct {
	Kind string `json:"kind" validate:"required,narrative_kind"`
}

type RunParams struct {
	Years                    int          `json:"years"`
	TrainingCapacityIncrease *float64     `json:"trainingCapacityIncrease,omitempty"`
	InfrastructureBoost      *float64     `json:"infrastructureBoost,omitempty"`
	RetentionImprovement     *float64     `json:"retentionImprovement,omitempty"`
	Cost                     *CostRequest `json:"cost,omitempty"`
}

type RunResults struct {
	FinalYear int              `json:"finalYear"`
	FinalGaps map[string]int64 `json:"finalGaps,omitempty"`
	Cost      *CostSummary     `json:"cost,omitempty"`
}

type Run struct {
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	Kind      string             `json:"kind"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt *time.Time         `json:"updatedAt,omitempty"`
	Params    RunParams          `json:"params"`
	Results   RunResults         `json:"results"`
	Narrative *string            `json:"narrative,omitempty"`
}

type RunList []Run

type RunNarrative struct {
	Run       Run       `json:"run"`
	Narrative Narrative `json:"narrative"`
}
