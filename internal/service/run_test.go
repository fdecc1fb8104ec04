package service_test

import (
	"context"
	"errors"

	"github.com/ahpgap/workforce-planner/internal/dataset"
	"github.com/ahpgap/workforce-planner/internal/events"
	"github.com/ahpgap/workforce-planner/internal/narrative"
	"github.com/ahpgap/workforce-planner/internal/projection"
	"github.com/ahpgap/workforce-planner/internal/projection/cost"
	"github.com/ahpgap/workforce-planner/internal/projection/trajectories"
	"github.com/ahpgap/workforce-planner/internal/service"
	"github.com/ahpgap/workforce-planner/internal/store"
	"github.com/ahpgap/workforce-planner/internal/store/model"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("run service", Ordered, func() {
	var (
		s      store.Store
		ps     *service.ProjectionService
		gen    *fakeGenerator
		writer *testWriter
		srv    *service.RunService
	)

	BeforeAll(func() {
		s = newMemoryStore()
		ps = service.NewProjectionService(dataset.MustDefault(), projection.DefaultBaseYear)
	})

	AfterAll(func() {
		s.Close()
	})

	BeforeEach(func() {
		gen = &fakeGenerator{text: "A measured plan."}
		writer = newTestWriter()
		srv = service.NewRunService(s, ps, service.NewNarrativeService(gen, ps, writer), writer)
	})

	AfterEach(func() {
		runs, err := s.Run().List(context.TODO(), nil, nil)
		Expect(err).To(BeNil())
		for _, r := range runs {
			Expect(s.Run().Delete(context.TODO(), r.ID)).To(Succeed())
		}
	})

	Context("create", func() {
		It("saves a scenario run with the final gaps", func() {
			run, err := srv.Create(context.TODO(), service.CreateRunRequest{
				Name:     "five years",
				Kind:     model.RunKindScenarios,
				Years:    5,
				Strategy: trajectories.DefaultStrategyParams(),
			})
			Expect(err).To(BeNil())
			Expect(run.ID).NotTo(Equal(uuid.Nil))
			Expect(run.Results.Data.FinalYear).To(Equal(2029))
			Expect(run.Results.Data.FinalGaps).To(HaveLen(3))
			Expect(run.Results.Data.FinalGaps).To(HaveKey("ProposedStrategy"))
			Expect(run.Params.Data.Strategy.TrainingCapacityIncrease).To(Equal(2.0))

			evs := writer.Events()
			Expect(evs).To(HaveLen(1))
			Expect(evs[0].Kind).To(Equal(events.RunMessageKind))
			Expect(evs[0].Body).To(ContainSubstring(`"action":"created"`))
		})

		It("saves a cost run with its summary", func() {
			run, err := srv.Create(context.TODO(), service.CreateRunRequest{
				Name: "full closure",
				Kind: model.RunKindCosts,
				Cost: &service.CostRequest{Params: cost.DefaultParams(100, 1)},
			})
			Expect(err).To(BeNil())
			Expect(run.Results.Data.Cost).NotTo(BeNil())
			Expect(run.Results.Data.Cost.TotalCostCr).To(Equal(547_603.96))
			Expect(run.Params.Data.Years).To(Equal(1))

			stored, err := srv.Get(context.TODO(), run.ID)
			Expect(err).To(BeNil())
			Expect(stored.Results.Data.Cost.TotalCostCr).To(Equal(547_603.96))
		})

		It("rejects a duplicate name", func() {
			req := service.CreateRunRequest{Name: "twice", Kind: model.RunKindScenarios, Years: 3, Strategy: trajectories.DefaultStrategyParams()}
			_, err := srv.Create(context.TODO(), req)
			Expect(err).To(BeNil())

			_, err = srv.Create(context.TODO(), req)
			var exists *service.ErrRunAlreadyExists
			Expect(errors.As(err, &exists)).To(BeTrue())
		})

		It("rejects a cost run without cost parameters", func() {
			_, err := srv.Create(context.TODO(), service.CreateRunRequest{Name: "empty", Kind: model.RunKindCosts})
			var invalid *service.ErrInvalidRequest
			Expect(errors.As(err, &invalid)).To(BeTrue())
		})

		It("rejects an unknown kind", func() {
			_, err := srv.Create(context.TODO(), service.CreateRunRequest{Name: "odd", Kind: model.RunKind("weather")})
			var invalid *service.ErrInvalidRequest
			Expect(errors.As(err, &invalid)).To(BeTrue())
		})
	})

	Context("list", func() {
		It("filters by kind", func() {
			_, err := srv.Create(context.TODO(), service.CreateRunRequest{Name: "a", Kind: model.RunKindScenarios, Years: 2, Strategy: trajectories.DefaultStrategyParams()})
			Expect(err).To(BeNil())
			_, err = srv.Create(context.TODO(), service.CreateRunRequest{Name: "b", Kind: model.RunKindCosts, Cost: &service.CostRequest{Params: cost.DefaultParams(40, 4)}})
			Expect(err).To(BeNil())

			all, err := srv.List(context.TODO(), service.RunFilter{})
			Expect(err).To(BeNil())
			Expect(all).To(HaveLen(2))

			costs, err := srv.List(context.TODO(), service.RunFilter{Kind: string(model.RunKindCosts)})
			Expect(err).To(BeNil())
			Expect(costs).To(HaveLen(1))
			Expect(costs[0].Name).To(Equal("b"))

			limited, err := srv.List(context.TODO(), service.RunFilter{Limit: 1})
			Expect(err).To(BeNil())
			Expect(limited).To(HaveLen(1))
		})
	})

	Context("get and delete", func() {
		It("returns not found for an unknown run", func() {
			_, err := srv.Get(context.TODO(), uuid.New())
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())

			err = srv.Delete(context.TODO(), uuid.New())
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})

		It("deletes a run", func() {
			run, err := srv.Create(context.TODO(), service.CreateRunRequest{Name: "gone", Kind: model.RunKindScenarios, Years: 1, Strategy: trajectories.DefaultStrategyParams()})
			Expect(err).To(BeNil())

			Expect(srv.Delete(context.TODO(), run.ID)).To(Succeed())
			_, err = srv.Get(context.TODO(), run.ID)
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())

			evs := writer.Events()
			Expect(evs).To(HaveLen(2))
			Expect(evs[1].Body).To(ContainSubstring(`"action":"deleted"`))
		})
	})

	Context("narrate", func() {
		It("stores a generated narrative", func() {
			run, err := srv.Create(context.TODO(), service.CreateRunRequest{Name: "told", Kind: model.RunKindCosts, Cost: &service.CostRequest{Params: cost.DefaultParams(50, 10)}})
			Expect(err).To(BeNil())

			updated, result, err := srv.Narrate(context.TODO(), run.ID, narrative.KindExecutive)
			Expect(err).To(BeNil())
			Expect(result.Available).To(BeTrue())
			Expect(updated.Narrative).NotTo(BeNil())
			Expect(*updated.Narrative).To(Equal("A measured plan."))
			Expect(gen.requests[0].Summary.GapClosurePct).To(Equal(50.0))
			Expect(gen.requests[0].Summary.Years).To(Equal(10))

			stored, err := srv.Get(context.TODO(), run.ID)
			Expect(err).To(BeNil())
			Expect(*stored.Narrative).To(Equal("A measured plan."))

			withNarrative, err := srv.List(context.TODO(), service.RunFilter{WithNarrative: true})
			Expect(err).To(BeNil())
			Expect(withNarrative).To(HaveLen(1))
		})

		It("leaves the run untouched when the generator is unavailable", func() {
			gen.err = narrative.ErrMissingCredentials
			run, err := srv.Create(context.TODO(), service.CreateRunRequest{Name: "quiet", Kind: model.RunKindScenarios, Years: 5, Strategy: trajectories.DefaultStrategyParams()})
			Expect(err).To(BeNil())

			updated, result, err := srv.Narrate(context.TODO(), run.ID, narrative.KindPolicyBrief)
			Expect(err).To(BeNil())
			Expect(result.Available).To(BeFalse())
			Expect(updated.Narrative).To(BeNil())

			Expect(gen.requests).To(HaveLen(1))
			Expect(gen.requests[0].Summary.GapClosurePct).To(BeNumerically(">", 0))
		})

		It("rejects an unknown kind", func() {
			run, err := srv.Create(context.TODO(), service.CreateRunRequest{Name: "kind", Kind: model.RunKindScenarios, Years: 2, Strategy: trajectories.DefaultStrategyParams()})
			Expect(err).To(BeNil())

			_, _, err = srv.Narrate(context.TODO(), run.ID, narrative.Kind("limerick"))
			var invalid *service.ErrInvalidRequest
			Expect(errors.As(err, &invalid)).To(BeTrue())
		})
	})
})
