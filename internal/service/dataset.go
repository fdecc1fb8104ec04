package service

import (
	"github.com/ahpgap/workforce-planner/internal/dataset"
	"github.com/ahpgap/workforce-planner/internal/views"
)

type DatasetInfo struct {
	TotalGap       int64 `json:"total_gap"`
	CategoryGapSum int64 `json:"category_gap_sum"`
	BaseYear       int   `json:"base_year"`
	Categories     int   `json:"categories"`
	States         int   `json:"states"`
	Regions        int   `json:"regions"`
}

// DatasetService serves the read-only views of the reference data.
type DatasetService struct {
	dataset  *dataset.Dataset
	baseYear int
}

func NewDatasetService(d *dataset.Dataset, baseYear int) *DatasetService {
	return &DatasetService{dataset: d, baseYear: baseYear}
}

func (s *DatasetService) Info() DatasetInfo {
	return DatasetInfo{
		TotalGap:       s.dataset.TotalGap,
		CategoryGapSum: s.dataset.CategoryGapSum(),
		BaseYear:       s.baseYear,
		Categories:     len(s.dataset.Categories),
		States:         len(s.dataset.States),
		Regions:        len(s.dataset.Regions),
	}
}

func (s *DatasetService) Categories() []dataset.Category {
	return views.CategoryView(s.dataset)
}

func (s *DatasetService) States() []views.StateRow {
	return views.StateView(s.dataset)
}

func (s *DatasetService) Regions() []views.RegionRow {
	return views.RegionSummary(s.dataset)
}

func (s *DatasetService) FundingSources() []views.FundingSourceRow {
	return views.FundingSourceView(s.dataset)
}

func (s *DatasetService) BudgetTrend() []dataset.BudgetYear {
	return views.BudgetTrendView(s.dataset)
}

func (s *DatasetService) GlobalComparison() []dataset.CountrySpending {
	return views.GlobalComparisonView(s.dataset)
}

func (s *DatasetService) Strategies() []views.StrategyRow {
	return views.StrategySummary(s.dataset)
}

func (s *DatasetService) WHOBenchmarks() []dataset.WHOBenchmark {
	return views.WHOBenchmarkView(s.dataset)
}

func (s *DatasetService) Demographics() dataset.Demographics {
	return s.dataset.Demographics
}
