package v1alpha1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	api "github.com/ahpgap/workforce-planner/api/v1alpha1"
	"github.com/ahpgap/workforce-planner/internal/handlers/v1alpha1/mappers"
	"github.com/ahpgap/workforce-planner/internal/service"
	"github.com/ahpgap/workforce-planner/pkg/log"
)

type listRunsParams struct {
	Kind          *string
	Name          *string
	WithNarrative *bool
	Limit         *int
	Offset        *int
}

func bindRunID(r *http.Request) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return uuid.Nil, service.NewErrInvalidRequest("invalid format for parameter id: %v", err)
	}
	return id, nil
}

func bindListRunsParams(r *http.Request) (listRunsParams, error) {
	var params listRunsParams
	query := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "kind", query, &params.Kind); err != nil {
		return params, service.NewErrInvalidRequest("invalid format for parameter kind: %v", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "name", query, &params.Name); err != nil {
		return params, service.NewErrInvalidRequest("invalid format for parameter name: %v", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "withNarrative", query, &params.WithNarrative); err != nil {
		return params, service.NewErrInvalidRequest("invalid format for parameter withNarrative: %v", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &params.Limit); err != nil {
		return params, service.NewErrInvalidRequest("invalid format for parameter limit: %v", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", query, &params.Offset); err != nil {
		return params, service.NewErrInvalidRequest("invalid format for parameter offset: %v", err)
	}
	return params, nil
}

// (GET /api/v1/runs)
func (h *ServiceHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("run_handler").
		WithContext(r.Context()).
		Operation("list_runs").
		Build()

	params, err := bindListRunsParams(r)
	if err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "list runs")
		return
	}

	filter := service.RunFilter{}
	if params.Kind != nil {
		filter.Kind = *params.Kind
	}
	if params.Name != nil {
		filter.Name = *params.Name
	}
	if params.WithNarrative != nil {
		filter.WithNarrative = *params.WithNarrative
	}
	if params.Limit != nil {
		filter.Limit = *params.Limit
	}
	if params.Offset != nil {
		filter.Offset = *params.Offset
	}

	runs, err := h.runSrv.List(r.Context(), filter)
	if err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "list runs")
		return
	}

	logger.Success().WithInt("count", len(runs)).Log()
	respond(w, r, http.StatusOK, mappers.RunListToApi(runs))
}

// (POST /api/v1/runs)
func (h *ServiceHandler) CreateRun(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("run_handler").
		WithContext(r.Context()).
		Operation("create_run").
		Build()

	var body api.RunCreate
	if err := h.decode(r, &body); err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "create run")
		return
	}

	run, err := h.runSrv.Create(r.Context(), mappers.RunCreateFromApi(body))
	if err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "create run")
		return
	}

	logger.Success().WithUUID("run_id", run.ID).Log()
	respond(w, r, http.StatusCreated, mappers.RunToApi(*run))
}

// (GET /api/v1/runs/{id})
func (h *ServiceHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("run_handler").
		WithContext(r.Context()).
		Operation("get_run").
		Build()

	id, err := bindRunID(r)
	if err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "get run")
		return
	}

	run, err := h.runSrv.Get(r.Context(), id)
	if err != nil {
		logger.Error(err).WithUUID("run_id", id).Log()
		respondServiceError(w, r, err, "get run")
		return
	}

	logger.Success().WithUUID("run_id", id).Log()
	respond(w, r, http.StatusOK, mappers.RunToApi(*run))
}

// (DELETE /api/v1/runs/{id})
func (h *ServiceHandler) DeleteRun(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("run_handler").
		WithContext(r.Context()).
		Operation("delete_run").
		Build()

	id, err := bindRunID(r)
	if err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "delete run")
		return
	}

	run, err := h.runSrv.Get(r.Context(), id)
	if err != nil {
		logger.Error(err).WithUUID("run_id", id).Log()
		respondServiceError(w, r, err, "delete run")
		return
	}

	if err := h.runSrv.Delete(r.Context(), id); err != nil {
		logger.Error(err).WithUUID("run_id", id).Log()
		respondServiceError(w, r, err, "delete run")
		return
	}

	logger.Success().WithUUID("run_id", id).Log()
	respond(w, r, http.StatusOK, mappers.RunToApi(*run))
}

// (POST /api/v1/runs/{id}/narrative)
func (h *ServiceHandler) NarrateRun(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("run_handler").
		WithContext(r.Context()).
		Operation("narrate_run").
		Build()

	id, err := bindRunID(r)
	if err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "narrate run")
		return
	}

	var body api.RunNarrate
	if err := h.decode(r, &body); err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "narrate run")
		return
	}

	run, result, err := h.runSrv.Narrate(r.Context(), id, mappers.NarrativeKindFromApi(body.Kind))
	if err != nil {
		logger.Error(err).WithUUID("run_id", id).Log()
		respondServiceError(w, r, err, "narrate run")
		return
	}

	logger.Success().WithUUID("run_id", id).Log()
	respond(w, r, http.StatusOK, api.RunNarrative{
		Run:       mappers.RunToApi(*run),
		Narrative: mappers.NarrativeToApi(result),
	})
}
