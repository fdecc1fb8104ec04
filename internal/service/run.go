package service

import (
	"context"
	"errors"

	"github.com/ahpgap/workforce-planner/internal/events"
	"github.com/ahpgap/workforce-planner/internal/narrative"
	"github.com/ahpgap/workforce-planner/internal/projection"
	"github.com/ahpgap/workforce-planner/internal/projection/trajectories"
	"github.com/ahpgap/workforce-planner/internal/store"
	"github.com/ahpgap/workforce-planner/internal/store/model"
	"github.com/ahpgap/workforce-planner/pkg/log"
	"github.com/google/uuid"
)

type CreateRunRequest struct {
	Name     string
	Kind     model.RunKind
	Years    int
	Strategy trajectories.StrategyParams
	Cost     *CostRequest
}

type RunFilter struct {
	Kind          string
	Name          string
	WithNarrative bool
	Limit         int
	Offset        int
}

// RunService saves projections under a name so they can be listed, compared
// and narrated later.
type RunService struct {
	store       store.Store
	projections *ProjectionService
	narratives  *NarrativeService
	events      EventWriter
	logger      *log.StructuredLogger
}

func NewRunService(s store.Store, p *ProjectionService, n *NarrativeService, w EventWriter) *RunService {
	return &RunService{
		store:       s,
		projections: p,
		narratives:  n,
		events:      w,
		logger:      log.NewDebugLogger("run_service"),
	}
}

func (rs *RunService) Create(ctx context.Context, req CreateRunRequest) (*model.ScenarioRun, error) {
	tracer := rs.logger.WithContext(ctx).Operation("create_run").
		WithString("name", req.Name).
		WithString("kind", string(req.Kind)).
		WithInt("years", req.Years).
		Build()

	if req.Name == "" {
		err := NewErrInvalidRequest("run name must not be empty")
		tracer.Error(err).Log()
		return nil, err
	}

	run := model.ScenarioRun{Name: req.Name, Kind: req.Kind}

	switch req.Kind {
	case model.RunKindScenarios:
		points, err := rs.projections.Compare(ctx, req.Years, req.Strategy)
		if err != nil {
			tracer.Error(err).Log()
			return nil, err
		}
		finalYear := rs.projections.BaseYear() + req.Years
		gaps := make(map[string]int64, 3)
		for _, s := range []projection.Scenario{projection.Baseline, projection.NoIntervention, projection.ProposedStrategy} {
			if p, ok := projection.Lookup(points, finalYear, s); ok {
				gaps[string(s)] = p.Gap
			}
		}
		strategy := req.Strategy
		run.Params = model.MakeJSONField(model.RunParams{Years: req.Years, Strategy: &strategy})
		run.Results = model.MakeJSONField(model.RunSummary{FinalYear: finalYear, FinalGaps: gaps})
	case model.RunKindCosts:
		if req.Cost == nil {
			err := NewErrInvalidRequest("cost parameters are required for a %s run", req.Kind)
			tracer.Error(err).Log()
			return nil, err
		}
		result, err := rs.projections.Costs(ctx, *req.Cost)
		if err != nil {
			tracer.Error(err).Log()
			return nil, err
		}
		params := req.Cost.Params
		summary := result.Summary
		run.Params = model.MakeJSONField(model.RunParams{
			Years:                params.Years,
			Cost:                 &params,
			RemainderInFinalYear: req.Cost.RemainderInFinalYear,
			FloorGapRemaining:    req.Cost.FloorGapRemaining,
		})
		run.Results = model.MakeJSONField(model.RunSummary{
			FinalYear: rs.projections.BaseYear() + params.Years,
			Cost:      &summary,
		})
	default:
		err := NewErrInvalidRequest("unknown run kind %q", req.Kind)
		tracer.Error(err).Log()
		return nil, err
	}

	created, err := rs.store.Run().Create(ctx, run)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			err = NewErrRunAlreadyExists(req.Name)
		}
		tracer.Error(err).Log()
		return nil, err
	}

	emit(ctx, rs.events, events.RunMessageKind, events.RunEvent{
		RunID:  created.ID.String(),
		Name:   created.Name,
		Kind:   string(created.Kind),
		Action: events.RunCreated,
	})
	tracer.Success().WithUUID("run_id", created.ID).Log()
	return created, nil
}

func (rs *RunService) List(ctx context.Context, filter RunFilter) (model.ScenarioRunList, error) {
	tracer := rs.logger.WithContext(ctx).Operation("list_runs").
		WithString("kind", filter.Kind).
		WithString("name", filter.Name).
		WithBool("with_narrative", filter.WithNarrative).
		Build()

	f := store.NewRunQueryFilter()
	if filter.Kind != "" {
		f = f.ByKind(filter.Kind)
	}
	if filter.Name != "" {
		f = f.ByNameLike(filter.Name)
	}
	if filter.WithNarrative {
		f = f.WithNarrative()
	}

	opts := store.NewRunQueryOptions().WithSortOrder(store.SortByCreatedTimeDesc)
	if filter.Limit > 0 {
		opts = opts.WithLimit(filter.Limit)
	}
	if filter.Offset > 0 {
		opts = opts.WithOffset(filter.Offset)
	}

	runs, err := rs.store.Run().List(ctx, f, opts)
	if err != nil {
		tracer.Error(err).Log()
		return nil, err
	}

	tracer.Success().WithInt("count", len(runs)).Log()
	return runs, nil
}

func (rs *RunService) Get(ctx context.Context, id uuid.UUID) (*model.ScenarioRun, error) {
	run, err := rs.store.Run().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrRunNotFound(id)
		}
		return nil, err
	}
	return run, nil
}

func (rs *RunService) Delete(ctx context.Context, id uuid.UUID) error {
	tracer := rs.logger.WithContext(ctx).Operation("delete_run").
		WithUUID("run_id", id).
		Build()

	run, err := rs.Get(ctx, id)
	if err != nil {
		tracer.Error(err).Log()
		return err
	}

	if err := rs.store.Run().Delete(ctx, id); err != nil {
		tracer.Error(err).Log()
		return err
	}

	emit(ctx, rs.events, events.RunMessageKind, events.RunEvent{
		RunID:  id.String(),
		Name:   run.Name,
		Kind:   string(run.Kind),
		Action: events.RunDeleted,
	})
	tracer.Success().Log()
	return nil
}

// Narrate generates a narrative for a saved run and stores it when the
// generator produced one. The run is returned unchanged otherwise.
func (rs *RunService) Narrate(ctx context.Context, id uuid.UUID, kind narrative.Kind) (*model.ScenarioRun, *NarrativeResult, error) {
	tracer := rs.logger.WithContext(ctx).Operation("narrate_run").
		WithUUID("run_id", id).
		WithString("kind", string(kind)).
		Build()

	run, err := rs.Get(ctx, id)
	if err != nil {
		tracer.Error(err).Log()
		return nil, nil, err
	}

	if !kind.Valid() {
		err := NewErrInvalidRequest("%s", narrative.NewErrUnsupportedKind(kind))
		tracer.Error(err).Log()
		return nil, nil, err
	}

	summary, err := rs.projections.NarrativeSummary(ctx, summaryRequestFor(run, rs.projections.ref.TotalGap))
	if err != nil {
		tracer.Error(err).Log()
		return nil, nil, err
	}

	// The remote call runs outside any transaction.
	result, err := rs.narratives.generate(ctx, narrative.Request{Kind: kind, Summary: summary}, id.String())
	if err != nil {
		tracer.Error(err).Log()
		return nil, nil, err
	}
	if !result.Available {
		tracer.Success().WithString("narrative", "unavailable").Log()
		return run, result, nil
	}

	updated, err := rs.saveNarrative(ctx, id, result.Text)
	if err != nil {
		tracer.Error(err).Log()
		return nil, nil, err
	}

	emit(ctx, rs.events, events.RunMessageKind, events.RunEvent{
		RunID:  id.String(),
		Name:   updated.Name,
		Kind:   string(updated.Kind),
		Action: events.RunNarrated,
	})
	tracer.Success().Log()
	return updated, result, nil
}

func (rs *RunService) saveNarrative(ctx context.Context, id uuid.UUID, text string) (*model.ScenarioRun, error) {
	ctx, err := rs.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := rs.store.Run().UpdateNarrative(ctx, id, text)
	if err != nil {
		_, _ = store.Rollback(ctx)
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrRunNotFound(id)
		}
		return nil, err
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

// summaryRequestFor derives the plan a run's narrative describes. Cost runs
// carry their own target; scenario runs use the closure the proposed strategy
// reaches by the final year.
func summaryRequestFor(run *model.ScenarioRun, totalGap int64) SummaryRequest {
	req := SummaryRequest{StrategyType: string(run.Kind)}
	if run.Params != nil {
		req.Years = run.Params.Data.Years
		if c := run.Params.Data.Cost; c != nil {
			req.TargetGapClosurePct = c.TargetGapClosurePct
		}
	}
	if run.Kind == model.RunKindScenarios && run.Results != nil {
		if gap, ok := run.Results.Data.FinalGaps[string(projection.ProposedStrategy)]; ok {
			req.TargetGapClosurePct = projection.ClosurePct(totalGap, gap)
		}
	}
	return req
}
