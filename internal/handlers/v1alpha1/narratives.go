package v1alpha1

import (
	"net/http"

	api "github.com/ahpgap/workforce-planner/api/v1alpha1"
	"github.com/ahpgap/workforce-planner/internal/handlers/v1alpha1/mappers"
	"github.com/ahpgap/workforce-planner/pkg/log"
)

// (POST /api/v1/narratives)
//
// A narrative the generator could not produce is still a 200: the body
// carries available=false and a message to display instead.
func (h *ServiceHandler) GenerateNarrative(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("narrative_handler").
		WithContext(r.Context()).
		Operation("generate_narrative").
		Build()

	var body api.NarrativeRequest
	if err := h.decode(r, &body); err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "generate narrative")
		return
	}

	result, err := h.narrativeSrv.ForPlan(r.Context(), mappers.NarrativeKindFromApi(body.Kind), mappers.SummaryRequestFromApi(body.Summary))
	if err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "generate narrative")
		return
	}

	logger.Success().WithString("kind", body.Kind).WithBool("available", result.Available).Log()
	respond(w, r, http.StatusOK, mappers.NarrativeToApi(result))
}
