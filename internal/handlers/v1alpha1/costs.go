package v1alpha1

import (
	"net/http"

	api "github.com/ahpgap/workforce-planner/api/v1alpha1"
	"github.com/ahpgap/workforce-planner/internal/handlers/v1alpha1/mappers"
	"github.com/ahpgap/workforce-planner/pkg/log"
)

// (POST /api/v1/costs)
func (h *ServiceHandler) ProjectCosts(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("cost_handler").
		WithContext(r.Context()).
		Operation("project_costs").
		Build()

	var body api.CostRequest
	if err := h.decode(r, &body); err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "project costs")
		return
	}

	result, err := h.projectionSrv.Costs(r.Context(), mappers.CostRequestFromApi(body))
	if err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "project costs")
		return
	}

	logger.Success().
		WithInt("years", body.Years).
		WithFloat("total_cost_cr", result.Summary.TotalCostCr).
		Log()
	respond(w, r, http.StatusOK, mappers.CostProjectionToApi(result))
}
