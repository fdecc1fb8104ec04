package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ahpPlanner = "ahp_planner"

	projectionsTotal    = "projections_total"
	narrativesTotal     = "narratives_total"
	reportsTotal        = "reports_total"
	archiveUploadsTotal = "archive_uploads_total"

	// Labels
	kindLabel   = "kind"
	stateLabel  = "state"
	formatLabel = "format"
)

// Narrative outcomes.
const (
	NarrativeGenerated   = "generated"
	NarrativeUnavailable = "unavailable"
	NarrativeFailed      = "failed"
)

// Archive upload outcomes.
const (
	ArchiveUploaded = "uploaded"
	ArchiveFailed   = "failed"
)

var projectionsTotalLabels = []string{
	kindLabel,
}

var narrativesTotalLabels = []string{
	kindLabel,
	stateLabel,
}

var reportsTotalLabels = []string{
	formatLabel,
}

var archiveUploadsTotalLabels = []string{
	stateLabel,
}

/**
* Metrics definition
**/
var projectionsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: ahpPlanner,
		Name:      projectionsTotal,
		Help:      "number of projections computed, by kind",
	},
	projectionsTotalLabels,
)

var narrativesTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: ahpPlanner,
		Name:      narrativesTotal,
		Help:      "number of narrative requests, by kind and outcome",
	},
	narrativesTotalLabels,
)

var reportsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: ahpPlanner,
		Name:      reportsTotal,
		Help:      "number of rendered reports, by format",
	},
	reportsTotalLabels,
)

var archiveUploadsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: ahpPlanner,
		Name:      archiveUploadsTotal,
		Help:      "number of report uploads to the archive, by outcome",
	},
	archiveUploadsTotalLabels,
)

func IncreaseProjectionsTotalMetric(kind string) {
	labels := prometheus.Labels{
		kindLabel: kind,
	}
	projectionsTotalMetric.With(labels).Inc()
}

func IncreaseNarrativesTotalMetric(kind, state string) {
	labels := prometheus.Labels{
		kindLabel:  kind,
		stateLabel: state,
	}
	narrativesTotalMetric.With(labels).Inc()
}

func IncreaseReportsTotalMetric(format string) {
	labels := prometheus.Labels{
		formatLabel: format,
	}
	reportsTotalMetric.With(labels).Inc()
}

func IncreaseArchiveUploadsTotalMetric(state string) {
	labels := prometheus.Labels{
		stateLabel: state,
	}
	archiveUploadsTotalMetric.With(labels).Inc()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(projectionsTotalMetric)
	prometheus.MustRegister(narrativesTotalMetric)
	prometheus.MustRegister(reportsTotalMetric)
	prometheus.MustRegister(archiveUploadsTotalMetric)
}
