package v1alpha1

import (
	"net/http"

	"github.com/oapi-codegen/runtime"

	api "github.com/ahpgap/workforce-planner/api/v1alpha1"
	"github.com/ahpgap/workforce-planner/internal/handlers/v1alpha1/mappers"
	"github.com/ahpgap/workforce-planner/internal/service"
	"github.com/ahpgap/workforce-planner/pkg/log"
)

type yearsParams struct {
	Years int `validate:"min=1,max_years"`
}

func (h *ServiceHandler) bindYears(r *http.Request) (int, error) {
	var params yearsParams
	if err := runtime.BindQueryParameter("form", true, true, "years", r.URL.Query(), &params.Years); err != nil {
		return 0, service.NewErrInvalidRequest("invalid format for parameter years: %v", err)
	}
	if err := h.validator.Struct(params); err != nil {
		return 0, err
	}
	return params.Years, nil
}

// (GET /api/v1/scenarios/baseline)
func (h *ServiceHandler) GetBaselineScenario(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("scenario_handler").
		WithContext(r.Context()).
		Operation("get_baseline_scenario").
		Build()

	years, err := h.bindYears(r)
	if err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "project baseline")
		return
	}

	points, err := h.projectionSrv.Baseline(r.Context(), years)
	if err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "project baseline")
		return
	}

	logger.Success().WithInt("years", years).Log()
	respond(w, r, http.StatusOK, mappers.ScenarioListToApi(points))
}

// (GET /api/v1/scenarios/no-intervention)
func (h *ServiceHandler) GetNoInterventionScenario(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("scenario_handler").
		WithContext(r.Context()).
		Operation("get_no_intervention_scenario").
		Build()

	years, err := h.bindYears(r)
	if err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "project no-intervention scenario")
		return
	}

	points, err := h.projectionSrv.NoIntervention(r.Context(), years)
	if err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "project no-intervention scenario")
		return
	}

	logger.Success().WithInt("years", years).Log()
	respond(w, r, http.StatusOK, mappers.ScenarioListToApi(points))
}

// (POST /api/v1/scenarios/proposed)
func (h *ServiceHandler) ProjectProposedScenario(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("scenario_handler").
		WithContext(r.Context()).
		Operation("project_proposed_scenario").
		Build()

	var body api.StrategyRequest
	if err := h.decode(r, &body); err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "project proposed scenario")
		return
	}

	points, err := h.projectionSrv.Proposed(r.Context(), body.Years, mappers.StrategyParamsFromApi(body))
	if err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "project proposed scenario")
		return
	}

	logger.Success().WithInt("years", body.Years).Log()
	respond(w, r, http.StatusOK, mappers.ScenarioListToApi(points))
}

// (POST /api/v1/scenarios/compare)
func (h *ServiceHandler) CompareScenarios(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("scenario_handler").
		WithContext(r.Context()).
		Operation("compare_scenarios").
		Build()

	var body api.StrategyRequest
	if err := h.decode(r, &body); err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "compare scenarios")
		return
	}

	points, err := h.projectionSrv.Compare(r.Context(), body.Years, mappers.StrategyParamsFromApi(body))
	if err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "compare scenarios")
		return
	}

	logger.Success().WithInt("years", body.Years).WithInt("points", len(points)).Log()
	respond(w, r, http.StatusOK, mappers.ScenarioListToApi(points))
}
