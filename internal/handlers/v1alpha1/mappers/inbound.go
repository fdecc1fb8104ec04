package mappers

import (
	api "github.com/ahpgap/workforce-planner/api/v1alpha1"
	"github.com/ahpgap/workforce-planner/internal/narrative"
	"github.com/ahpgap/workforce-planner/internal/projection/cost"
	"github.com/ahpgap/workforce-planner/internal/projection/trajectories"
	"github.com/ahpgap/workforce-planner/internal/service"
	"github.com/ahpgap/workforce-planner/internal/service/report/types"
	"github.com/ahpgap/workforce-planner/internal/store/model"
	"github.com/ahpgap/workforce-planner/internal/util"
)

// StrategyParamsFromApi fills omitted tunables with their defaults.
func StrategyParamsFromApi(req api.StrategyRequest) trajectories.StrategyParams {
	sp := trajectories.DefaultStrategyParams()
	return trajectories.StrategyParams{
		TrainingCapacityIncrease: util.ValueOr(req.TrainingCapacityIncrease, sp.TrainingCapacityIncrease),
		InfrastructureBoost:      util.ValueOr(req.InfrastructureBoost, sp.InfrastructureBoost),
		RetentionImprovement:     util.ValueOr(req.RetentionImprovement, sp.RetentionImprovement),
	}
}

// CostRequestFromApi fills omitted rates with the defaults of cost.DefaultParams.
func CostRequestFromApi(req api.CostRequest) service.CostRequest {
	p := cost.DefaultParams(req.TargetGapClosurePct, req.Years)
	p.TrainingCostMultiplier = util.ValueOr(req.TrainingCostMultiplier, p.TrainingCostMultiplier)
	p.SalaryGrowthRate = util.ValueOr(req.SalaryGrowthRate, p.SalaryGrowthRate)
	p.InfrastructureInvestmentPct = util.ValueOr(req.InfrastructureInvestmentPct, p.InfrastructureInvestmentPct)
	p.IncludeRetention = util.ValueOr(req.IncludeRetention, p.IncludeRetention)
	p.InflationRate = util.ValueOr(req.InflationRate, p.InflationRate)
	return service.CostRequest{
		Params:               p,
		RemainderInFinalYear: req.RemainderInFinalYear,
		FloorGapRemaining:    req.FloorGapRemaining,
	}
}

func SummaryRequestFromApi(plan api.NarrativePlan) service.SummaryRequest {
	req := service.SummaryRequest{
		Years:               plan.Years,
		TargetGapClosurePct: plan.TargetGapClosurePct,
		StrategyType:        plan.StrategyType,
		BudgetConstraints:   plan.BudgetConstraints,
		PriorityAreas:       plan.PriorityAreas,
		PhaseFocus:          plan.PhaseFocus,
	}
	req.BudgetCr = util.ValueOr(plan.BudgetCr, 0)
	return req
}

func NarrativeKindFromApi(kind string) narrative.Kind {
	return narrative.Kind(kind)
}

func ReportRequestFromApi(req api.ReportRequest) service.ReportRequest {
	res := service.ReportRequest{
		Type:    types.ReportType(req.Type),
		Format:  types.ReportFormat(req.Format),
		Title:   req.Title,
		Archive: req.Archive,
	}
	if req.Scenario != nil {
		res.Years = req.Scenario.Years
		res.Strategy = StrategyParamsFromApi(*req.Scenario)
	}
	if req.Cost != nil {
		c := CostRequestFromApi(*req.Cost)
		res.Cost = &c
	}
	return res
}

func RunCreateFromApi(req api.RunCreate) service.CreateRunRequest {
	res := service.CreateRunRequest{
		Name: req.Name,
		Kind: model.RunKind(req.Kind),
	}
	if req.Scenario != nil {
		res.Years = req.Scenario.Years
		res.Strategy = StrategyParamsFromApi(*req.Scenario)
	}
	if req.Cost != nil {
		c := CostRequestFromApi(*req.Cost)
		res.Cost = &c
		res.Years = c.Params.Years
	}
	return res
}
