package store_test

import (
	"context"
	"fmt"

	"github.com/ahpgap/workforce-planner/internal/projection/cost"
	"github.com/ahpgap/workforce-planner/internal/projection/trajectories"
	"github.com/ahpgap/workforce-planner/internal/store"
	"github.com/ahpgap/workforce-planner/internal/store/model"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

const insertRunStm = "INSERT INTO scenario_runs (id, created_at, name, kind, params, results) VALUES ('%s', '%s', '%s', '%s', '{\"years\":%d}', '{}');"

var _ = Describe("run store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	BeforeAll(func() {
		gormdb = newMemoryDB()
		s = store.NewStore(gormdb)
	})

	AfterAll(func() {
		s.Close()
	})

	Context("list", func() {
		BeforeEach(func() {
			Expect(gormdb.Exec(fmt.Sprintf(insertRunStm, uuid.New(), "2025-01-01 10:00:00", "Alpha plan", "scenarios", 10)).Error).To(BeNil())
			Expect(gormdb.Exec(fmt.Sprintf(insertRunStm, uuid.New(), "2025-01-02 10:00:00", "beta costs", "costs", 5)).Error).To(BeNil())
			Expect(gormdb.Exec(fmt.Sprintf(insertRunStm, uuid.New(), "2025-01-03 10:00:00", "Gamma costs", "costs", 3)).Error).To(BeNil())
		})

		It("lists all runs newest first", func() {
			runs, err := s.Run().List(context.TODO(), store.NewRunQueryFilter(), nil)
			Expect(err).To(BeNil())
			Expect(runs).To(HaveLen(3))
			Expect(runs[0].Name).To(Equal("Gamma costs"))
			Expect(runs[2].Name).To(Equal("Alpha plan"))
			Expect(runs[2].Params.Data.Years).To(Equal(10))
		})

		It("filters by kind", func() {
			runs, err := s.Run().List(context.TODO(), store.NewRunQueryFilter().ByKind(string(model.RunKindCosts)), nil)
			Expect(err).To(BeNil())
			Expect(runs).To(HaveLen(2))
		})

		It("filters by name ignoring case", func() {
			runs, err := s.Run().List(context.TODO(), store.NewRunQueryFilter().ByNameLike("COSTS"), nil)
			Expect(err).To(BeNil())
			Expect(runs).To(HaveLen(2))
		})

		It("sorts and pages", func() {
			opts := store.NewRunQueryOptions().WithSortOrder(store.SortByName).WithLimit(2).WithOffset(1)
			runs, err := s.Run().List(context.TODO(), store.NewRunQueryFilter(), opts)
			Expect(err).To(BeNil())
			Expect(runs).To(HaveLen(2))
			// byte order puts upper case first
			Expect(runs[0].Name).To(Equal("Gamma costs"))
			Expect(runs[1].Name).To(Equal("beta costs"))
		})

		It("filters runs with a narrative", func() {
			runs, err := s.Run().List(context.TODO(), store.NewRunQueryFilter().WithNarrative(), nil)
			Expect(err).To(BeNil())
			Expect(runs).To(BeEmpty())
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM scenario_runs;")
		})
	})

	Context("create and get", func() {
		It("round trips parameters and results", func() {
			sp := trajectories.DefaultStrategyParams()
			cp := cost.DefaultParams(50, 10)
			run := model.ScenarioRun{
				Name: "full",
				Kind: model.RunKindCosts,
				Params: model.MakeJSONField(model.RunParams{
					Years:    10,
					Strategy: &sp,
					Cost:     &cp,
				}),
				Results: model.MakeJSONField(model.RunSummary{
					FinalYear: 2034,
					FinalGaps: map[string]int64{"ProposedStrategy": 0},
					Cost:      &cost.Summary{Years: 10, TotalCostCr: 461777.34},
				}),
			}

			created, err := s.Run().Create(context.TODO(), run)
			Expect(err).To(BeNil())
			Expect(created.ID).NotTo(Equal(uuid.Nil))

			got, err := s.Run().Get(context.TODO(), created.ID)
			Expect(err).To(BeNil())
			Expect(got.Name).To(Equal("full"))
			Expect(got.Kind).To(Equal(model.RunKindCosts))
			Expect(got.Params.Data.Strategy).To(Equal(&sp))
			Expect(got.Params.Data.Cost).To(Equal(&cp))
			Expect(got.Results.Data.FinalGaps).To(HaveKeyWithValue("ProposedStrategy", int64(0)))
			Expect(got.Results.Data.Cost.TotalCostCr).To(Equal(461777.34))
			Expect(got.Narrative).To(BeNil())
		})

		It("rejects a duplicate name", func() {
			_, err := s.Run().Create(context.TODO(), newRun("dup", model.RunKindScenarios))
			Expect(err).To(BeNil())

			_, err = s.Run().Create(context.TODO(), newRun("dup", model.RunKindScenarios))
			Expect(err).To(MatchError(store.ErrDuplicateKey))
		})

		It("returns not found for an unknown id", func() {
			_, err := s.Run().Get(context.TODO(), uuid.New())
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM scenario_runs;")
		})
	})

	Context("narrative", func() {
		It("attaches a narrative", func() {
			run, err := s.Run().Create(context.TODO(), newRun("with narrative", model.RunKindScenarios))
			Expect(err).To(BeNil())

			updated, err := s.Run().UpdateNarrative(context.TODO(), run.ID, "Expand training seats.")
			Expect(err).To(BeNil())
			Expect(*updated.Narrative).To(Equal("Expand training seats."))
			Expect(updated.UpdatedAt).NotTo(BeNil())

			got, err := s.Run().Get(context.TODO(), run.ID)
			Expect(err).To(BeNil())
			Expect(*got.Narrative).To(Equal("Expand training seats."))
		})

		It("fails for an unknown run", func() {
			_, err := s.Run().UpdateNarrative(context.TODO(), uuid.New(), "x")
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM scenario_runs;")
		})
	})

	Context("delete", func() {
		It("deletes a run", func() {
			run, err := s.Run().Create(context.TODO(), newRun("gone", model.RunKindScenarios))
			Expect(err).To(BeNil())

			Expect(s.Run().Delete(context.TODO(), run.ID)).To(Succeed())

			_, err = s.Run().Get(context.TODO(), run.ID)
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})

		It("ignores an unknown run", func() {
			Expect(s.Run().Delete(context.TODO(), uuid.New())).To(Succeed())
		})
	})
})
