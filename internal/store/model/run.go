package model

import (
	"encoding/json"
	"time"

	"github.com/ahpgap/workforce-planner/internal/projection/cost"
	"github.com/ahpgap/workforce-planner/internal/projection/trajectories"
	"github.com/google/uuid"
)

type RunKind string

const (
	RunKindScenarios RunKind = "scenarios"
	RunKindCosts     RunKind = "costs"
)

// ScenarioRun is a named, saved projection together with the inputs that
// produced it and an optional narrative.
type ScenarioRun struct {
	ID        uuid.UUID              `gorm:"primaryKey;column:id;type:VARCHAR(255);"`
	CreatedAt time.Time              `gorm:"not null"`
	UpdatedAt *time.Time
	Name      string                 `gorm:"not null;uniqueIndex"`
	Kind      RunKind                `gorm:"not null;type:VARCHAR(64)"`
	Params    *JSONField[RunParams]  `gorm:"type:TEXT;not null"`
	Results   *JSONField[RunSummary] `gorm:"type:TEXT;not null"`
	Narrative *string                `gorm:"type:TEXT"`
}

func (ScenarioRun) TableName() string {
	return "scenario_runs"
}

type ScenarioRunList []ScenarioRun

// RunParams are the inputs of a run. Strategy is set for scenario runs and
// Cost for cost runs.
type RunParams struct {
	Years                int                          `json:"years"`
	Strategy             *trajectories.StrategyParams `json:"strategy,omitempty"`
	Cost                 *cost.Params                 `json:"cost,omitempty"`
	RemainderInFinalYear bool                         `json:"remainder_in_final_year,omitempty"`
	FloorGapRemaining    bool                         `json:"floor_gap_remaining,omitempty"`
}

// RunSummary holds the headline results of a run.
type RunSummary struct {
	FinalYear int              `json:"final_year"`
	FinalGaps map[string]int64 `json:"final_gaps,omitempty"`
	Cost      *cost.Summary    `json:"cost,omitempty"`
}

func (r ScenarioRun) String() string {
	val, _ := json.Marshal(r)
	return string(val)
}
