package v1alpha1

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// (GET /api/v1/dataset/{view})
func (h *ServiceHandler) GetDatasetView(w http.ResponseWriter, r *http.Request) {
	view := chi.URLParam(r, "view")

	var body any
	switch view {
	case "categories":
		body = h.datasetSrv.Categories()
	case "states":
		body = h.datasetSrv.States()
	case "regions":
		body = h.datasetSrv.Regions()
	case "funding-sources":
		body = h.datasetSrv.FundingSources()
	case "budget-trend":
		body = h.datasetSrv.BudgetTrend()
	case "global-comparison":
		body = h.datasetSrv.GlobalComparison()
	case "strategies":
		body = h.datasetSrv.Strategies()
	case "who-benchmarks":
		body = h.datasetSrv.WHOBenchmarks()
	case "demographics":
		body = h.datasetSrv.Demographics()
	default:
		respondError(w, r, http.StatusNotFound, fmt.Sprintf("dataset view %q not found", view))
		return
	}

	respond(w, r, http.StatusOK, body)
}
