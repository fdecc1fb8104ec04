package events

// Run actions.
const (
	RunCreated  = "created"
	RunDeleted  = "deleted"
	RunNarrated = "narrated"
)

type RunEvent struct {
	RunID  string `json:"run_id"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Action string `json:"action"`
}

type ReportEvent struct {
	Type       string `json:"type"`
	Format     string `json:"format"`
	Size       int    `json:"size"`
	ArchiveKey string `json:"archive_key,omitempty"`
}

type NarrativeEvent struct {
	Kind      string `json:"kind"`
	Available bool   `json:"available"`
	RunID     string `json:"run_id,omitempty"`
}
