package metrics

import (
	"context"
	"fmt"

	"github.com/ahpgap/workforce-planner/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type runStatsCollector struct {
	store         store.Store
	totalRuns     *prometheus.Desc
	runsByKind    *prometheus.Desc
	withNarrative *prometheus.Desc
}

// NewRunStatsCollector reports the saved runs held by s each time it is scraped.
func NewRunStatsCollector(s store.Store) prometheus.Collector {
	fqName := func(name string) string {
		return fmt.Sprintf("%s_%s", ahpPlanner, name)
	}

	return &runStatsCollector{
		store: s,
		totalRuns: prometheus.NewDesc(
			fqName("saved_runs"),
			"Total number of saved scenario runs.",
			nil,
			prometheus.Labels{},
		),
		runsByKind: prometheus.NewDesc(
			fqName("saved_runs_by_kind"),
			"Saved scenario runs by kind.",
			[]string{kindLabel},
			prometheus.Labels{},
		),
		withNarrative: prometheus.NewDesc(
			fqName("saved_runs_with_narrative"),
			"Saved scenario runs carrying a generated narrative.",
			nil,
			prometheus.Labels{},
		),
	}
}

func (c *runStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.totalRuns
	ch <- c.runsByKind
	ch <- c.withNarrative
}

// Collect implements Collector.
func (c *runStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.store.Statistics(context.Background())
	if err != nil {
		zap.S().Named("runs_collector").Errorf("failed to collect run statistics: %s", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.totalRuns, prometheus.GaugeValue, float64(stats.Total))
	ch <- prometheus.MustNewConstMetric(c.withNarrative, prometheus.GaugeValue, float64(stats.WithNarrative))

	for kind, total := range stats.ByKind {
		ch <- prometheus.MustNewConstMetric(c.runsByKind, prometheus.GaugeValue, float64(total), string(kind))
	}
}
