package v1alpha1

import (
	"fmt"
	"net/http"
	"strconv"

	api "github.com/ahpgap/workforce-planner/api/v1alpha1"
	"github.com/ahpgap/workforce-planner/internal/handlers/v1alpha1/mappers"
	"github.com/ahpgap/workforce-planner/pkg/log"
)

// ArchiveKeyHeader carries the object key of an archived report.
const ArchiveKeyHeader = "X-Archive-Key"

// (POST /api/v1/reports)
func (h *ServiceHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	logger := log.NewDebugLogger("report_handler").
		WithContext(r.Context()).
		Operation("generate_report").
		Build()

	var body api.ReportRequest
	if err := h.decode(r, &body); err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "generate report")
		return
	}

	report, err := h.reportSrv.GenerateReport(r.Context(), mappers.ReportRequestFromApi(body))
	if err != nil {
		logger.Error(err).Log()
		respondServiceError(w, r, err, "generate report")
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(report.Content)))
	if report.ArchiveKey != "" {
		w.Header().Set(ArchiveKeyHeader, report.ArchiveKey)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(report.Content); err != nil {
		logger.Error(err).Log()
		return
	}

	logger.Success().
		WithString("file_name", report.FileName).
		WithInt("size", len(report.Content)).
		Log()
}
