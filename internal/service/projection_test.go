package service_test

import (
	"context"
	"errors"

	"github.com/ahpgap/workforce-planner/internal/dataset"
	"github.com/ahpgap/workforce-planner/internal/projection"
	"github.com/ahpgap/workforce-planner/internal/projection/cost"
	"github.com/ahpgap/workforce-planner/internal/projection/trajectories"
	"github.com/ahpgap/workforce-planner/internal/service"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("projection service", func() {
	var ps *service.ProjectionService

	BeforeEach(func() {
		ps = service.NewProjectionService(dataset.MustDefault(), projection.DefaultBaseYear)
	})

	Context("scenarios", func() {
		It("compares the three trajectories", func() {
			points, err := ps.Compare(context.TODO(), 5, trajectories.DefaultStrategyParams())
			Expect(err).To(BeNil())
			Expect(points).To(HaveLen(18))
			Expect(points[0].Scenario).To(Equal(projection.Baseline))
			Expect(points[17].Scenario).To(Equal(projection.ProposedStrategy))
			Expect(points[17].Year).To(Equal(2029))
		})

		It("projects the no-intervention trajectory", func() {
			points, err := ps.NoIntervention(context.TODO(), 1)
			Expect(err).To(BeNil())
			Expect(points).To(HaveLen(2))
			Expect(points[1].Gap).To(Equal(int64(6_185_720)))
			Expect(points[1].AnnualAddition).To(Equal(int64(307_994)))
		})

		It("projects the proposed trajectory", func() {
			points, err := ps.Proposed(context.TODO(), 1, trajectories.DefaultStrategyParams())
			Expect(err).To(BeNil())
			Expect(points[1].Gap).To(Equal(int64(6_175_244)))
		})

		It("returns a single sample for zero years", func() {
			points, err := ps.Baseline(context.TODO(), 0)
			Expect(err).To(BeNil())
			Expect(points).To(HaveLen(1))
			Expect(points[0].Gap).To(Equal(int64(6_500_000)))
		})

		It("rejects a retention improvement above one", func() {
			sp := trajectories.DefaultStrategyParams()
			sp.RetentionImprovement = 1.5
			_, err := ps.Proposed(context.TODO(), 5, sp)
			var invalid *projection.ErrInvalidParameter
			Expect(errors.As(err, &invalid)).To(BeTrue())
		})
	})

	Context("costs", func() {
		It("projects a one year full closure", func() {
			result, err := ps.Costs(context.TODO(), service.CostRequest{Params: cost.DefaultParams(100, 1)})
			Expect(err).To(BeNil())
			Expect(result.Records).To(HaveLen(1))
			Expect(result.GapReduction).To(Equal(int64(6_500_000)))
			Expect(result.AnnualTarget).To(Equal(int64(6_500_000)))
			Expect(result.Summary.TotalCostCr).To(Equal(547_603.96))
			Expect(result.Targets).To(HaveLen(13))
			Expect(result.Targets[0].Category).To(Equal("Nurses & Midwives"))
		})

		It("uses the configured base year for calendar years", func() {
			ps = service.NewProjectionService(dataset.MustDefault(), 2030)
			result, err := ps.Costs(context.TODO(), service.CostRequest{Params: cost.DefaultParams(50, 2)})
			Expect(err).To(BeNil())
			Expect(result.Records[0].CalendarYear).To(Equal(2031))
			Expect(result.Records[1].CalendarYear).To(Equal(2032))
		})

		It("rejects a non-positive horizon", func() {
			_, err := ps.Costs(context.TODO(), service.CostRequest{Params: cost.DefaultParams(50, 0)})
			var invalid *projection.ErrInvalidParameter
			Expect(errors.As(err, &invalid)).To(BeTrue())
		})
	})

	Context("narrative summary", func() {
		It("summarizes the plan", func() {
			summary, err := ps.NarrativeSummary(context.TODO(), service.SummaryRequest{
				Years:               10,
				TargetGapClosurePct: 50,
				StrategyType:        "balanced",
			})
			Expect(err).To(BeNil())
			Expect(summary.TotalGap).To(Equal(int64(6_500_000)))
			Expect(summary.CurrentSupply).To(Equal(int64(4_860_000)))
			Expect(summary.RequiredSupply).To(Equal(int64(12_560_000)))
			Expect(summary.GapPct).To(Equal(51.8))
			Expect(summary.FirstYearCostCr).To(Equal(27_379.57))
			Expect(summary.BudgetCr).To(Equal(summary.TotalCostCr))
			Expect(summary.Categories).To(HaveLen(3))
			Expect(summary.KeyShortages).To(Equal("Nurses & Midwives, Community Health Workers, Lab Technicians"))
		})

		It("keeps an explicit budget and category count", func() {
			summary, err := ps.NarrativeSummary(context.TODO(), service.SummaryRequest{
				Years:               5,
				TargetGapClosurePct: 20,
				BudgetCr:            1000,
				TopCategories:       1,
			})
			Expect(err).To(BeNil())
			Expect(summary.BudgetCr).To(Equal(1000.0))
			Expect(summary.KeyShortages).To(Equal("Nurses & Midwives"))
		})
	})
})
