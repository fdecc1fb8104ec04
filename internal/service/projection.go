package service

import (
	"context"
	"sort"
	"strings"

	"github.com/ahpgap/workforce-planner/internal/dataset"
	"github.com/ahpgap/workforce-planner/internal/narrative"
	"github.com/ahpgap/workforce-planner/internal/projection"
	"github.com/ahpgap/workforce-planner/internal/projection/cost"
	"github.com/ahpgap/workforce-planner/internal/projection/trajectories"
	"github.com/ahpgap/workforce-planner/internal/util"
	"github.com/ahpgap/workforce-planner/pkg/log"
	"github.com/ahpgap/workforce-planner/pkg/metrics"
)

// Projection kinds reported to metrics.
const (
	KindBaseline       = "baseline"
	KindNoIntervention = "no_intervention"
	KindProposed       = "proposed"
	KindCompare        = "compare"
	KindCosts          = "costs"
)

const defaultTopCategories = 3

// CostRequest is a cost plan plus the engine switches.
type CostRequest struct {
	Params               cost.Params
	RemainderInFinalYear bool
	FloorGapRemaining    bool
}

type CostResult struct {
	Records      []cost.YearRecord     `json:"records"`
	Summary      cost.Summary          `json:"summary"`
	GapReduction int64                 `json:"gap_reduction"`
	AnnualTarget int64                 `json:"annual_target"`
	Targets      []cost.CategoryTarget `json:"targets"`
}

// SummaryRequest selects the plan a narrative summary is computed for.
type SummaryRequest struct {
	Years               int
	TargetGapClosurePct float64
	StrategyType        string
	BudgetCr            float64
	BudgetConstraints   string
	PriorityAreas       []string
	PhaseFocus          string
	TopCategories       int
}

// ProjectionService runs the scenario trajectories and the cost engine
// against the reference dataset.
type ProjectionService struct {
	dataset *dataset.Dataset
	ref     projection.Reference
	engine  *projection.Engine
	logger  *log.StructuredLogger
}

func NewProjectionService(d *dataset.Dataset, baseYear int) *ProjectionService {
	ref := projection.NewReference(d, baseYear)
	return &ProjectionService{
		dataset: d,
		ref:     ref,
		engine:  trajectories.NewEngine(ref),
		logger:  log.NewDebugLogger("projection_service"),
	}
}

func (ps *ProjectionService) BaseYear() int {
	return ps.ref.BaseYear
}

func (ps *ProjectionService) Baseline(ctx context.Context, years int) ([]projection.ScenarioPoint, error) {
	return ps.scenario(ctx, KindBaseline, projection.Baseline, years, nil)
}

func (ps *ProjectionService) NoIntervention(ctx context.Context, years int) ([]projection.ScenarioPoint, error) {
	return ps.scenario(ctx, KindNoIntervention, projection.NoIntervention, years, nil)
}

func (ps *ProjectionService) Proposed(ctx context.Context, years int, sp trajectories.StrategyParams) ([]projection.ScenarioPoint, error) {
	return ps.scenario(ctx, KindProposed, projection.ProposedStrategy, years, sp.Params())
}

func (ps *ProjectionService) scenario(ctx context.Context, kind string, s projection.Scenario, years int, params []projection.Param) ([]projection.ScenarioPoint, error) {
	tracer := ps.logger.WithContext(ctx).Operation("project_scenario").
		WithString("scenario", string(s)).
		WithInt("years", years).
		Build()

	points, err := ps.engine.Project(s, years, params)
	if err != nil {
		tracer.Error(err).Log()
		return nil, err
	}

	metrics.IncreaseProjectionsTotalMetric(kind)
	tracer.Success().WithInt("points", len(points)).Log()
	return points, nil
}

// Compare returns the three trajectories concatenated in registration order.
func (ps *ProjectionService) Compare(ctx context.Context, years int, sp trajectories.StrategyParams) ([]projection.ScenarioPoint, error) {
	tracer := ps.logger.WithContext(ctx).Operation("compare_scenarios").
		WithInt("years", years).
		WithFloat("training_capacity_increase", sp.TrainingCapacityIncrease).
		WithFloat("retention_improvement", sp.RetentionImprovement).
		Build()

	points, err := ps.engine.Compare(years, sp.Params())
	if err != nil {
		tracer.Error(err).Log()
		return nil, err
	}

	metrics.IncreaseProjectionsTotalMetric(KindCompare)
	tracer.Success().WithInt("points", len(points)).Log()
	return points, nil
}

func (ps *ProjectionService) Costs(ctx context.Context, req CostRequest) (*CostResult, error) {
	tracer := ps.logger.WithContext(ctx).Operation("project_costs").
		WithFloat("target_gap_closure_pct", req.Params.TargetGapClosurePct).
		WithInt("years", req.Params.Years).
		WithBool("remainder_in_final_year", req.RemainderInFinalYear).
		WithBool("floor_gap_remaining", req.FloorGapRemaining).
		Build()

	opts := []cost.Option{cost.WithBaseYear(ps.ref.BaseYear)}
	if req.RemainderInFinalYear {
		opts = append(opts, cost.WithRemainderInFinalYear())
	}
	if req.FloorGapRemaining {
		opts = append(opts, cost.WithGapFloor())
	}
	engine := cost.NewEngine(ps.dataset, opts...)

	reduction, annual, err := engine.Targets(req.Params)
	if err != nil {
		tracer.Error(err).Log()
		return nil, err
	}

	records, err := engine.Project(req.Params)
	if err != nil {
		tracer.Error(err).Log()
		return nil, err
	}
	tracer.Step("projected").WithInt("records", len(records)).Log()

	result := &CostResult{
		Records:      records,
		Summary:      cost.Summarize(records),
		GapReduction: reduction,
		AnnualTarget: annual,
		Targets:      cost.AllocateAnnualTarget(ps.dataset.Categories, annual),
	}

	metrics.IncreaseProjectionsTotalMetric(KindCosts)
	tracer.Success().
		WithFloat("total_cost_cr", result.Summary.TotalCostCr).
		WithInt("annual_target", int(annual)).
		Log()
	return result, nil
}

// NarrativeSummary computes the structured prompt input for the plan closing
// TargetGapClosurePct of the gap over Years under the default cost parameters.
func (ps *ProjectionService) NarrativeSummary(ctx context.Context, req SummaryRequest) (narrative.ScenarioSummary, error) {
	result, err := ps.Costs(ctx, CostRequest{Params: cost.DefaultParams(req.TargetGapClosurePct, req.Years)})
	if err != nil {
		return narrative.ScenarioSummary{}, err
	}

	var current, required int64
	for _, c := range ps.dataset.Categories {
		current += c.Current
		required += c.Required
	}

	top := req.TopCategories
	if top <= 0 {
		top = defaultTopCategories
	}
	priorities := ps.categoryPriorities(top)
	names := make([]string, 0, len(priorities))
	for _, c := range priorities {
		names = append(names, c.Name)
	}

	budget := req.BudgetCr
	if budget <= 0 {
		budget = result.Summary.TotalCostCr
	}

	var first cost.YearRecord
	if len(result.Records) > 0 {
		first = result.Records[0]
	}

	return narrative.ScenarioSummary{
		TotalGap:           ps.dataset.TotalGap,
		Years:              req.Years,
		StrategyType:       req.StrategyType,
		BudgetCr:           budget,
		GapClosurePct:      req.TargetGapClosurePct,
		CurrentSupply:      current,
		RequiredSupply:     required,
		GapPct:             util.Round(float64(ps.dataset.TotalGap)/float64(required)*100, 1),
		AnnualSalaryCr:     first.SalaryCostCr,
		TrainingCostCr:     first.TrainingCostCr,
		FirstYearCostCr:    result.Summary.FirstYearCostCr,
		TotalCostCr:        result.Summary.TotalCostCr,
		ProfessionalsAdded: result.Summary.ProfessionalsAdded,
		Categories:         priorities,
		KeyShortages:       strings.Join(names, ", "),
		BudgetConstraints:  req.BudgetConstraints,
		PriorityAreas:      req.PriorityAreas,
		PhaseFocus:         req.PhaseFocus,
	}, nil
}

// categoryPriorities returns the n categories with the largest gap, largest first.
func (ps *ProjectionService) categoryPriorities(n int) []narrative.CategoryPriority {
	categories := append([]dataset.Category(nil), ps.dataset.Categories...)
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Gap > categories[j].Gap
	})
	if n > len(categories) {
		n = len(categories)
	}

	res := make([]narrative.CategoryPriority, 0, n)
	for _, c := range categories[:n] {
		res = append(res, narrative.CategoryPriority{
			Name:          c.Name,
			Gap:           c.Gap,
			GapPercentage: c.GapPercentage,
			AvgSalary:     c.AvgSalary,
		})
	}
	return res
}
