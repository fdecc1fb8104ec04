package service

import (
	"context"
	"errors"

	"github.com/ahpgap/workforce-planner/internal/events"
	"github.com/ahpgap/workforce-planner/internal/narrative"
	"github.com/ahpgap/workforce-planner/pkg/log"
	"github.com/ahpgap/workforce-planner/pkg/metrics"
)

// NarrativeResult is returned for every generation attempt. When Available is
// false, Message holds text to show in place of the narrative.
type NarrativeResult struct {
	Kind      narrative.Kind `json:"kind"`
	Available bool           `json:"available"`
	Text      string         `json:"text,omitempty"`
	Message   string         `json:"message,omitempty"`
}

type NarrativeService struct {
	generator   narrative.Generator
	projections *ProjectionService
	events      EventWriter
	logger      *log.StructuredLogger
}

func NewNarrativeService(g narrative.Generator, p *ProjectionService, w EventWriter) *NarrativeService {
	if g == nil {
		g = narrative.Unavailable{}
	}
	return &NarrativeService{
		generator:   g,
		projections: p,
		events:      w,
		logger:      log.NewDebugLogger("narrative_service"),
	}
}

// ForPlan computes the summary of the plan described by req and generates
// the narrative of the given kind for it.
func (ns *NarrativeService) ForPlan(ctx context.Context, kind narrative.Kind, req SummaryRequest) (*NarrativeResult, error) {
	if !kind.Valid() {
		return nil, NewErrInvalidRequest("%s", narrative.NewErrUnsupportedKind(kind))
	}
	summary, err := ns.projections.NarrativeSummary(ctx, req)
	if err != nil {
		return nil, err
	}
	return ns.Generate(ctx, narrative.Request{Kind: kind, Summary: summary})
}

// Generate never fails because the generator failed: a generator error is
// reported through the result so callers can keep rendering.
func (ns *NarrativeService) Generate(ctx context.Context, req narrative.Request) (*NarrativeResult, error) {
	return ns.generate(ctx, req, "")
}

func (ns *NarrativeService) generate(ctx context.Context, req narrative.Request, runID string) (*NarrativeResult, error) {
	tracer := ns.logger.WithContext(ctx).Operation("generate_narrative").
		WithString("kind", string(req.Kind)).
		WithInt("years", req.Summary.Years).
		Build()

	if !req.Kind.Valid() {
		err := NewErrInvalidRequest("%s", narrative.NewErrUnsupportedKind(req.Kind))
		tracer.Error(err).Log()
		return nil, err
	}

	result := &NarrativeResult{Kind: req.Kind}
	text, err := ns.generator.Generate(ctx, req)
	switch {
	case err == nil:
		result.Available = true
		result.Text = text
		metrics.IncreaseNarrativesTotalMetric(string(req.Kind), metrics.NarrativeGenerated)
		tracer.Success().WithInt("length", len(text)).Log()
	case errors.Is(err, narrative.ErrMissingCredentials):
		result.Message = narrative.DisplayMessage(err)
		metrics.IncreaseNarrativesTotalMetric(string(req.Kind), metrics.NarrativeUnavailable)
		tracer.Step("generator unavailable").Log()
	default:
		result.Message = narrative.DisplayMessage(err)
		metrics.IncreaseNarrativesTotalMetric(string(req.Kind), metrics.NarrativeFailed)
		tracer.Error(err).Log()
	}

	emit(ctx, ns.events, events.NarrativeMessageKind, events.NarrativeEvent{
		Kind:      string(req.Kind),
		Available: result.Available,
		RunID:     runID,
	})
	return result, nil
}
