package mappers

import (
	api "github.com/ahpgap/workforce-planner/api/v1alpha1"
	"github.com/ahpgap/workforce-planner/internal/projection"
	"github.com/ahpgap/workforce-planner/internal/projection/cost"
	"github.com/ahpgap/workforce-planner/internal/service"
	"github.com/ahpgap/workforce-planner/internal/store/model"
	"github.com/ahpgap/workforce-planner/internal/util"
)

func ScenarioListToApi(points []projection.ScenarioPoint) api.ScenarioList {
	res := make(api.ScenarioList, 0, len(points))
	for _, p := range points {
		res = append(res, api.ScenarioPoint{
			Year:           p.Year,
			Scenario:       string(p.Scenario),
			Gap:            p.Gap,
			GapClosurePct:  p.GapClosurePct,
			AnnualAddition: p.AnnualAddition,
		})
	}
	return res
}

func CostSummaryToApi(s cost.Summary) api.CostSummary {
	return api.CostSummary{
		Years:                s.Years,
		TotalCostCr:          s.TotalCostCr,
		FirstYearCostCr:      s.FirstYearCostCr,
		AverageAnnualCostCr:  s.AverageAnnualCostCr,
		ProfessionalsAdded:   s.ProfessionalsAdded,
		FinalGapRemaining:    s.FinalGapRemaining,
		FinalGapClosurePct:   s.FinalGapClosurePct,
		FinalInflationFactor: s.FinalInflationFactor,
	}
}

func CostProjectionToApi(r *service.CostResult) api.CostProjection {
	records := make([]api.CostYear, 0, len(r.Records))
	for _, y := range r.Records {
		records = append(records, api.CostYear{
			Year:                    y.Year,
			CalendarYear:            y.CalendarYear,
			TrainingCostCr:          y.TrainingCostCr,
			SalaryCostCr:            y.SalaryCostCr,
			InfrastructureCostCr:    y.InfrastructureCostCr,
			RetentionCostCr:         y.RetentionCostCr,
			TotalYearCostCr:         y.TotalYearCostCr,
			CumulativeCostCr:        y.CumulativeCostCr,
			ProfessionalsAdded:      y.ProfessionalsAdded,
			CumulativeProfessionals: y.CumulativeProfessionals,
			GapRemaining:            y.GapRemaining,
			GapClosurePct:           y.GapClosurePct,
			InflationFactor:         y.InflationFactor,
		})
	}

	targets := make([]api.CategoryTarget, 0, len(r.Targets))
	for _, t := range r.Targets {
		targets = append(targets, api.CategoryTarget{Category: t.Category, Share: t.Share, Target: t.Target})
	}

	return api.CostProjection{
		GapReduction: r.GapReduction,
		AnnualTarget: r.AnnualTarget,
		Records:      records,
		Summary:      CostSummaryToApi(r.Summary),
		Targets:      targets,
	}
}

func NarrativeToApi(r *service.NarrativeResult) api.Narrative {
	res := api.Narrative{
		Kind:      string(r.Kind),
		Available: r.Available,
	}
	if r.Text != "" {
		res.Text = util.Ptr(r.Text)
	}
	if r.Message != "" {
		res.Message = util.Ptr(r.Message)
	}
	return res
}

func RunToApi(r model.ScenarioRun) api.Run {
	res := api.Run{
		Id:        r.ID,
		Name:      r.Name,
		Kind:      string(r.Kind),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Narrative: r.Narrative,
	}

	if r.Params != nil {
		p := r.Params.Data
		res.Params.Years = p.Years
		if s := p.Strategy; s != nil {
			res.Params.TrainingCapacityIncrease = &s.TrainingCapacityIncrease
			res.Params.InfrastructureBoost = &s.InfrastructureBoost
			res.Params.RetentionImprovement = &s.RetentionImprovement
		}
		if c := p.Cost; c != nil {
			res.Params.Cost = &api.CostRequest{
				TargetGapClosurePct:         c.TargetGapClosurePct,
				Years:                       c.Years,
				TrainingCostMultiplier:      &c.TrainingCostMultiplier,
				SalaryGrowthRate:            &c.SalaryGrowthRate,
				InfrastructureInvestmentPct: &c.InfrastructureInvestmentPct,
				IncludeRetention:            &c.IncludeRetention,
				InflationRate:               &c.InflationRate,
				RemainderInFinalYear:        p.RemainderInFinalYear,
				FloorGapRemaining:           p.FloorGapRemaining,
			}
		}
	}

	if r.Results != nil {
		res.Results.FinalYear = r.Results.Data.FinalYear
		res.Results.FinalGaps = r.Results.Data.FinalGaps
		if c := r.Results.Data.Cost; c != nil {
			summary := CostSummaryToApi(*c)
			res.Results.Cost = &summary
		}
	}
	return res
}

func RunListToApi(runs model.ScenarioRunList) api.RunList {
	res := make(api.RunList, 0, len(runs))
	for _, r := range runs {
		res = append(res, RunToApi(r))
	}
	return res
}
