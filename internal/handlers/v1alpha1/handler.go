package v1alpha1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	api "github.com/ahpgap/workforce-planner/api/v1alpha1"
	"github.com/ahpgap/workforce-planner/internal/handlers/validator"
	"github.com/ahpgap/workforce-planner/internal/projection"
	"github.com/ahpgap/workforce-planner/internal/service"
	"github.com/ahpgap/workforce-planner/pkg/requestid"
)

type ServiceHandler struct {
	datasetSrv    *service.DatasetService
	projectionSrv *service.ProjectionService
	narrativeSrv  *service.NarrativeService
	runSrv        *service.RunService
	reportSrv     *service.ReportService
	validator     *validator.Validator
	maxYears      int
}

func NewServiceHandler(
	datasetSrv *service.DatasetService,
	projectionSrv *service.ProjectionService,
	narrativeSrv *service.NarrativeService,
	runSrv *service.RunService,
	reportSrv *service.ReportService,
	maxYears int,
) *ServiceHandler {
	v := validator.NewValidator()
	v.Register(validator.NewProjectionValidationRules(maxYears)...)
	v.Register(validator.NewNarrativeValidationRules()...)
	v.Register(validator.NewReportValidationRules(reportSrv.Formats()...)...)
	v.Register(validator.NewRunValidationRules()...)

	return &ServiceHandler{
		datasetSrv:    datasetSrv,
		projectionSrv: projectionSrv,
		narrativeSrv:  narrativeSrv,
		runSrv:        runSrv,
		reportSrv:     reportSrv,
		validator:     v,
		maxYears:      maxYears,
	}
}

// HandlerFromMux mounts every /api/v1 route on r.
func HandlerFromMux(h *ServiceHandler, r chi.Router) http.Handler {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/info", h.GetInfo)
		r.Get("/dataset/{view}", h.GetDatasetView)

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/baseline", h.GetBaselineScenario)
			r.Get("/no-intervention", h.GetNoInterventionScenario)
			r.Post("/proposed", h.ProjectProposedScenario)
			r.Post("/compare", h.CompareScenarios)
		})

		r.Post("/costs", h.ProjectCosts)
		r.Post("/narratives", h.GenerateNarrative)
		r.Post("/reports", h.GenerateReport)

		r.Route("/runs", func(r chi.Router) {
			r.Get("/", h.ListRuns)
			r.Post("/", h.CreateRun)
			r.Get("/{id}", h.GetRun)
			r.Delete("/{id}", h.DeleteRun)
			r.Post("/{id}/narrative", h.NarrateRun)
		})
	})
	return r
}

// decode reads a JSON body into dst and validates it.
func (h *ServiceHandler) decode(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return service.NewErrInvalidRequest("empty body")
	}
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		return service.NewErrInvalidRequest("malformed body: %v", err)
	}
	return h.validator.Struct(dst)
}

func respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	render.Status(r, status)
	render.JSON(w, r, body)
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respond(w, r, status, api.Error{Message: message, RequestId: requestid.FromContextPtr(r.Context())})
}

// respondServiceError maps err onto the status of its type.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, what string) {
	var (
		invalidParam *projection.ErrInvalidParameter
		invalidField *validator.ErrInvalidField
		invalidReq   *service.ErrInvalidRequest
		notFound     *service.ErrResourceNotFound
		exists       *service.ErrRunAlreadyExists
	)

	switch {
	case errors.As(err, &invalidParam), errors.As(err, &invalidField), errors.As(err, &invalidReq):
		respondError(w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		respondError(w, r, http.StatusNotFound, err.Error())
	case errors.As(err, &exists):
		respondError(w, r, http.StatusConflict, err.Error())
	default:
		respondError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to %s: %v", what, err))
	}
}
