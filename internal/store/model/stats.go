package model

// RunStats counts saved runs for the metrics collector.
type RunStats struct {
	Total         int
	ByKind        map[RunKind]int
	WithNarrative int
}

func NewRunStats(runs ScenarioRunList) RunStats {
	stats := RunStats{ByKind: make(map[RunKind]int)}
	for _, r := range runs {
		stats.Total++
		stats.ByKind[r.Kind]++
		if r.Narrative != nil && *r.Narrative != "" {
			stats.WithNarrative++
		}
	}
	return stats
}
