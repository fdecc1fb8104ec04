package v1alpha1

import (
	"net/http"

	api "github.com/ahpgap/workforce-planner/api/v1alpha1"
	"github.com/ahpgap/workforce-planner/internal/narrative"
	"github.com/ahpgap/workforce-planner/pkg/version"
)

// (GET /api/v1/info)
func (h *ServiceHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	versionInfo := version.Get()
	info := h.datasetSrv.Info()

	kinds := make([]string, 0, len(narrative.Kinds()))
	for _, k := range narrative.Kinds() {
		kinds = append(kinds, string(k))
	}
	formats := make([]string, 0, 3)
	for _, f := range h.reportSrv.Formats() {
		formats = append(formats, string(f))
	}

	respond(w, r, http.StatusOK, api.Info{
		VersionName:        versionInfo.GitVersion,
		GitCommit:          versionInfo.GitCommit,
		BaseYear:           info.BaseYear,
		TotalGap:           info.TotalGap,
		CategoryGapSum:     info.CategoryGapSum,
		MaxProjectionYears: h.maxYears,
		NarrativeKinds:     kinds,
		ReportFormats:      formats,
	})
}
