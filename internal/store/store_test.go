package store_test

import (
	"context"

	st "github.com/ahpgap/workforce-planner/internal/store"
	"github.com/ahpgap/workforce-planner/internal/store/model"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func newRun(name string, kind model.RunKind) model.ScenarioRun {
	return model.ScenarioRun{
		ID:      uuid.New(),
		Name:    name,
		Kind:    kind,
		Params:  model.MakeJSONField(model.RunParams{Years: 10}),
		Results: model.MakeJSONField(model.RunSummary{FinalYear: 2034}),
	}
}

var _ = Describe("Store", Ordered, func() {
	var (
		store  st.Store
		gormDB *gorm.DB
	)

	BeforeAll(func() {
		gormDB = newMemoryDB()
		store = st.NewStore(gormDB)
		Expect(store).ToNot(BeNil())
	})

	AfterAll(func() {
		store.Close()
	})

	Context("transaction", func() {
		It("inserts a run successfully", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			run, err := store.Run().Create(ctx, newRun("committed", model.RunKindScenarios))
			Expect(err).To(BeNil())
			Expect(run).ToNot(BeNil())

			_, cerr := st.Commit(ctx)
			Expect(cerr).To(BeNil())

			count := 0
			err = gormDB.Raw("SELECT COUNT(*) FROM scenario_runs;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(1))
		})

		It("rolls back a run successfully", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			run, err := store.Run().Create(ctx, newRun("rolled-back", model.RunKindScenarios))
			Expect(err).To(BeNil())
			Expect(run).ToNot(BeNil())

			// visible inside the transaction
			runs, err := store.Run().List(ctx, st.NewRunQueryFilter(), nil)
			Expect(err).To(BeNil())
			Expect(runs).To(HaveLen(1))

			_, rerr := st.Rollback(ctx)
			Expect(rerr).To(BeNil())

			count := 0
			err = gormDB.Raw("SELECT COUNT(*) FROM scenario_runs;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("joins an outer transaction", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			inner, err := store.NewTransactionContext(ctx)
			Expect(err).To(BeNil())
			Expect(st.FromContext(inner)).To(BeIdenticalTo(st.FromContext(ctx)))

			_, err = st.Rollback(ctx)
			Expect(err).To(BeNil())
		})

		It("is a no-op without a transaction", func() {
			ctx, err := st.Commit(context.TODO())
			Expect(err).To(BeNil())
			Expect(st.FromContext(ctx)).To(BeNil())
		})

		AfterEach(func() {
			gormDB.Exec("DELETE FROM scenario_runs;")
		})
	})

	Context("statistics", func() {
		It("counts runs by kind and narrative", func() {
			_, err := store.Run().Create(context.TODO(), newRun("a", model.RunKindScenarios))
			Expect(err).To(BeNil())
			b, err := store.Run().Create(context.TODO(), newRun("b", model.RunKindCosts))
			Expect(err).To(BeNil())
			_, err = store.Run().Create(context.TODO(), newRun("c", model.RunKindCosts))
			Expect(err).To(BeNil())
			_, err = store.Run().UpdateNarrative(context.TODO(), b.ID, "text")
			Expect(err).To(BeNil())

			stats, err := store.Statistics(context.TODO())
			Expect(err).To(BeNil())
			Expect(stats.Total).To(Equal(3))
			Expect(stats.ByKind[model.RunKindScenarios]).To(Equal(1))
			Expect(stats.ByKind[model.RunKindCosts]).To(Equal(2))
			Expect(stats.WithNarrative).To(Equal(1))
		})

		AfterEach(func() {
			gormDB.Exec("DELETE FROM scenario_runs;")
		})
	})
})
