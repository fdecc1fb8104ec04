package v1alpha1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"

	api "github.com/ahpgap/workforce-planner/api/v1alpha1"
	"github.com/ahpgap/workforce-planner/internal/dataset"
	handlers "github.com/ahpgap/workforce-planner/internal/handlers/v1alpha1"
	"github.com/ahpgap/workforce-planner/internal/narrative"
	"github.com/ahpgap/workforce-planner/internal/projection"
	"github.com/ahpgap/workforce-planner/internal/service"
	"github.com/ahpgap/workforce-planner/internal/store"
	"github.com/ahpgap/workforce-planner/pkg/middleware"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("api handlers", Ordered, func() {
	var (
		s      store.Store
		gen    *fakeGenerator
		router http.Handler
	)

	BeforeAll(func() {
		s = newMemoryStore()
	})

	AfterAll(func() {
		s.Close()
	})

	BeforeEach(func() {
		d := dataset.MustDefault()
		gen = &fakeGenerator{text: "Scale up training."}
		ps := service.NewProjectionService(d, projection.DefaultBaseYear)
		ns := service.NewNarrativeService(gen, ps, nil)
		h := handlers.NewServiceHandler(
			service.NewDatasetService(d, projection.DefaultBaseYear),
			ps,
			ns,
			service.NewRunService(s, ps, ns, nil),
			service.NewReportService(ps, nil, nil),
			25,
		)
		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		router = handlers.HandlerFromMux(h, r)
	})

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var reader *bytes.Reader
		if body != nil {
			data, err := json.Marshal(body)
			Expect(err).To(BeNil())
			reader = bytes.NewReader(data)
		} else {
			reader = bytes.NewReader(nil)
		}
		req := httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	decodeError := func(rec *httptest.ResponseRecorder) api.Error {
		var e api.Error
		Expect(json.Unmarshal(rec.Body.Bytes(), &e)).To(Succeed())
		Expect(e.RequestId).NotTo(BeNil())
		return e
	}

	Context("info and dataset", func() {
		It("returns the service info", func() {
			rec := do(http.MethodGet, "/api/v1/info", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var info api.Info
			Expect(json.Unmarshal(rec.Body.Bytes(), &info)).To(Succeed())
			Expect(info.TotalGap).To(Equal(int64(6_500_000)))
			Expect(info.BaseYear).To(Equal(2024))
			Expect(info.MaxProjectionYears).To(Equal(25))
			Expect(info.NarrativeKinds).To(HaveLen(5))
			Expect(info.ReportFormats).To(ConsistOf("csv", "html", "xlsx"))
		})

		It("serves a dataset view", func() {
			rec := do(http.MethodGet, "/api/v1/dataset/categories", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var rows []map[string]any
			Expect(json.Unmarshal(rec.Body.Bytes(), &rows)).To(Succeed())
			Expect(rows).To(HaveLen(13))
			Expect(rows[0]["name"]).To(Equal("Nurses & Midwives"))
		})

		It("returns 404 for an unknown view", func() {
			rec := do(http.MethodGet, "/api/v1/dataset/planets", nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(decodeError(rec).Message).To(ContainSubstring("planets"))
		})
	})

	Context("scenarios", func() {
		It("projects the baseline", func() {
			rec := do(http.MethodGet, "/api/v1/scenarios/baseline?years=3", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var points api.ScenarioList
			Expect(json.Unmarshal(rec.Body.Bytes(), &points)).To(Succeed())
			Expect(points).To(HaveLen(4))
			Expect(points[0].Gap).To(Equal(int64(6_500_000)))
			Expect(points[0].AnnualAddition).To(Equal(int64(0)))
		})

		It("projects the no-intervention scenario", func() {
			rec := do(http.MethodGet, "/api/v1/scenarios/no-intervention?years=1", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var points api.ScenarioList
			Expect(json.Unmarshal(rec.Body.Bytes(), &points)).To(Succeed())
			Expect(points[1].Gap).To(Equal(int64(6_185_720)))
		})

		It("rejects a missing or out of range horizon", func() {
			Expect(do(http.MethodGet, "/api/v1/scenarios/baseline", nil).Code).To(Equal(http.StatusBadRequest))
			Expect(do(http.MethodGet, "/api/v1/scenarios/baseline?years=0", nil).Code).To(Equal(http.StatusBadRequest))
			Expect(do(http.MethodGet, "/api/v1/scenarios/baseline?years=26", nil).Code).To(Equal(http.StatusBadRequest))
			Expect(do(http.MethodGet, "/api/v1/scenarios/baseline?years=ten", nil).Code).To(Equal(http.StatusBadRequest))
		})

		It("projects the proposed strategy with defaults", func() {
			rec := do(http.MethodPost, "/api/v1/scenarios/proposed", map[string]any{"years": 1})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var points api.ScenarioList
			Expect(json.Unmarshal(rec.Body.Bytes(), &points)).To(Succeed())
			Expect(points[1].Gap).To(Equal(int64(6_175_244)))
		})

		It("compares the scenarios", func() {
			rec := do(http.MethodPost, "/api/v1/scenarios/compare", map[string]any{"years": 10, "retentionImprovement": 0.5})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var points api.ScenarioList
			Expect(json.Unmarshal(rec.Body.Bytes(), &points)).To(Succeed())
			Expect(points).To(HaveLen(33))
		})

		It("rejects a retention improvement above one", func() {
			rec := do(http.MethodPost, "/api/v1/scenarios/compare", map[string]any{"years": 10, "retentionImprovement": 1.5})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(rec).Message).To(ContainSubstring("RetentionImprovement"))
		})

		It("rejects an empty body", func() {
			rec := do(http.MethodPost, "/api/v1/scenarios/proposed", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(rec).Message).To(Equal("empty body"))
		})
	})

	Context("costs", func() {
		It("projects an investment plan", func() {
			rec := do(http.MethodPost, "/api/v1/costs", map[string]any{"targetGapClosurePct": 100, "years": 1})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var projection api.CostProjection
			Expect(json.Unmarshal(rec.Body.Bytes(), &projection)).To(Succeed())
			Expect(projection.Records).To(HaveLen(1))
			Expect(projection.Summary.TotalCostCr).To(Equal(547_603.96))
			Expect(projection.AnnualTarget).To(Equal(int64(6_500_000)))
		})

		It("rejects a target above 100%", func() {
			rec := do(http.MethodPost, "/api/v1/costs", map[string]any{"targetGapClosurePct": 120, "years": 5})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("narratives", func() {
		It("returns the generated narrative", func() {
			rec := do(http.MethodPost, "/api/v1/narratives", map[string]any{
				"kind":    "executive",
				"summary": map[string]any{"years": 10, "targetGapClosurePct": 50},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var n api.Narrative
			Expect(json.Unmarshal(rec.Body.Bytes(), &n)).To(Succeed())
			Expect(n.Available).To(BeTrue())
			Expect(*n.Text).To(Equal("Scale up training."))
		})

		It("returns 200 with a message when the generator is unavailable", func() {
			gen.err = narrative.ErrMissingCredentials
			rec := do(http.MethodPost, "/api/v1/narratives", map[string]any{
				"kind":    "policy_brief",
				"summary": map[string]any{"years": 10, "targetGapClosurePct": 50},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var n api.Narrative
			Expect(json.Unmarshal(rec.Body.Bytes(), &n)).To(Succeed())
			Expect(n.Available).To(BeFalse())
			Expect(n.Text).To(BeNil())
			Expect(n.Message).NotTo(BeNil())
		})

		It("rejects an unknown kind", func() {
			rec := do(http.MethodPost, "/api/v1/narratives", map[string]any{
				"kind":    "haiku",
				"summary": map[string]any{"years": 10, "targetGapClosurePct": 50},
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("reports", func() {
		It("downloads a csv report", func() {
			rec := do(http.MethodPost, "/api/v1/reports", map[string]any{
				"type":     "scenarios",
				"format":   "csv",
				"scenario": map[string]any{"years": 5},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("text/csv"))
			Expect(rec.Header().Get("Content-Disposition")).To(ContainSubstring("ahp_scenarios_"))
			Expect(rec.Header().Get(handlers.ArchiveKeyHeader)).To(BeEmpty())
			Expect(rec.Body.String()).To(ContainSubstring("Scenario Projections"))
		})

		It("rejects a cost report without cost parameters", func() {
			rec := do(http.MethodPost, "/api/v1/reports", map[string]any{"type": "costs", "format": "html"})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects an unsupported format", func() {
			rec := do(http.MethodPost, "/api/v1/reports", map[string]any{
				"type":     "scenarios",
				"format":   "pdf",
				"scenario": map[string]any{"years": 5},
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("runs", func() {
		var created api.Run

		It("creates a run", func() {
			rec := do(http.MethodPost, "/api/v1/runs", map[string]any{
				"name":     "Plan 2034",
				"kind":     "scenarios",
				"scenario": map[string]any{"years": 10},
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(json.Unmarshal(rec.Body.Bytes(), &created)).To(Succeed())
			Expect(created.Name).To(Equal("Plan 2034"))
			Expect(created.Results.FinalYear).To(Equal(2034))
			Expect(*created.Params.TrainingCapacityIncrease).To(Equal(2.0))
		})

		It("rejects a duplicate name with 409", func() {
			rec := do(http.MethodPost, "/api/v1/runs", map[string]any{
				"name":     "Plan 2034",
				"kind":     "scenarios",
				"scenario": map[string]any{"years": 5},
			})
			Expect(rec.Code).To(Equal(http.StatusConflict))
		})

		It("creates a cost run", func() {
			rec := do(http.MethodPost, "/api/v1/runs", map[string]any{
				"name": "Half by 2034",
				"kind": "costs",
				"cost": map[string]any{"targetGapClosurePct": 50, "years": 10},
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var run api.Run
			Expect(json.Unmarshal(rec.Body.Bytes(), &run)).To(Succeed())
			Expect(run.Results.Cost).NotTo(BeNil())
			Expect(run.Params.Cost.Years).To(Equal(10))
		})

		It("lists and filters runs", func() {
			rec := do(http.MethodGet, "/api/v1/runs", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var runs api.RunList
			Expect(json.Unmarshal(rec.Body.Bytes(), &runs)).To(Succeed())
			Expect(runs).To(HaveLen(2))

			rec = do(http.MethodGet, "/api/v1/runs?kind=costs", nil)
			Expect(json.Unmarshal(rec.Body.Bytes(), &runs)).To(Succeed())
			Expect(runs).To(HaveLen(1))
			Expect(runs[0].Name).To(Equal("Half by 2034"))

			Expect(do(http.MethodGet, "/api/v1/runs?limit=many", nil).Code).To(Equal(http.StatusBadRequest))
		})

		It("narrates a run", func() {
			rec := do(http.MethodPost, "/api/v1/runs/"+created.Id.String()+"/narrative", map[string]any{"kind": "strategy"})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var res api.RunNarrative
			Expect(json.Unmarshal(rec.Body.Bytes(), &res)).To(Succeed())
			Expect(res.Narrative.Available).To(BeTrue())
			Expect(*res.Run.Narrative).To(Equal("Scale up training."))
		})

		It("gets and deletes a run", func() {
			rec := do(http.MethodGet, "/api/v1/runs/"+created.Id.String(), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			rec = do(http.MethodDelete, "/api/v1/runs/"+created.Id.String(), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			rec = do(http.MethodGet, "/api/v1/runs/"+created.Id.String(), nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(decodeError(rec).Message).To(ContainSubstring("not found"))
		})

		It("rejects a malformed id", func() {
			rec := do(http.MethodGet, "/api/v1/runs/not-a-uuid", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(strings.ToLower(decodeError(rec).Message)).To(ContainSubstring("id"))
		})
	})
})
