package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ahpgap/workforce-planner/internal/archive"
	"github.com/ahpgap/workforce-planner/internal/events"
	"github.com/ahpgap/workforce-planner/internal/projection/trajectories"
	"github.com/ahpgap/workforce-planner/internal/service/report/csv"
	"github.com/ahpgap/workforce-planner/internal/service/report/html"
	"github.com/ahpgap/workforce-planner/internal/service/report/types"
	"github.com/ahpgap/workforce-planner/internal/service/report/xlsx"
	"github.com/ahpgap/workforce-planner/pkg/log"
	"github.com/ahpgap/workforce-planner/pkg/metrics"
)

type ReportRequest struct {
	Type     types.ReportType
	Format   types.ReportFormat
	Title    string
	Years    int
	Strategy trajectories.StrategyParams
	Cost     *CostRequest
	// Archive uploads the rendered report when an archive is configured.
	Archive bool
}

type Report struct {
	Content     []byte
	Format      types.ReportFormat
	ContentType string
	FileName    string
	ArchiveKey  string
}

type ReportService struct {
	projections *ProjectionService
	renderers   map[types.ReportFormat]types.ReportRenderer
	archive     archive.Archive
	events      EventWriter
	now         func() time.Time
	logger      *log.StructuredLogger
}

// NewReportService registers the csv, html and xlsx renderers. a may be nil,
// in which case archiving is skipped.
func NewReportService(p *ProjectionService, a archive.Archive, w EventWriter) *ReportService {
	rs := &ReportService{
		projections: p,
		renderers:   make(map[types.ReportFormat]types.ReportRenderer),
		archive:     a,
		events:      w,
		now:         time.Now,
		logger:      log.NewDebugLogger("report_service"),
	}
	rs.register(csv.NewRenderer())
	rs.register(html.NewRenderer())
	rs.register(xlsx.NewRenderer())
	return rs
}

func (rs *ReportService) register(r types.ReportRenderer) {
	rs.renderers[r.SupportedFormat()] = r
}

// Formats returns the registered formats in lexical order.
func (rs *ReportService) Formats() []types.ReportFormat {
	formats := make([]types.ReportFormat, 0, len(rs.renderers))
	for f := range rs.renderers {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

func (rs *ReportService) GenerateReport(ctx context.Context, req ReportRequest) (*Report, error) {
	tracer := rs.logger.WithContext(ctx).Operation("generate_report").
		WithString("type", string(req.Type)).
		WithString("format", string(req.Format)).
		WithInt("years", req.Years).
		Build()

	renderer, ok := rs.renderers[req.Format]
	if !ok {
		err := NewErrInvalidRequest("unsupported report format %q", req.Format)
		tracer.Error(err).Log()
		return nil, err
	}

	data, err := rs.reportData(ctx, req)
	if err != nil {
		tracer.Error(err).Log()
		return nil, err
	}
	tracer.Step("data collected").WithInt("tables", len(data.Tables())).Log()

	content, err := renderer.Render(data)
	if err != nil {
		tracer.Error(err).Log()
		return nil, fmt.Errorf("rendering %s report: %w", req.Format, err)
	}
	metrics.IncreaseReportsTotalMetric(string(req.Format))

	report := &Report{
		Content:     content,
		Format:      req.Format,
		ContentType: req.Format.ContentType(),
		FileName:    fmt.Sprintf("ahp_%s_%s.%s", req.Type, data.Timestamps.At.Format("20060102_150405"), req.Format),
	}

	if req.Archive && rs.archive != nil {
		key, err := rs.archive.Put(ctx, report.FileName, report.ContentType, content)
		if err != nil {
			metrics.IncreaseArchiveUploadsTotalMetric(metrics.ArchiveFailed)
			tracer.Step("archive upload failed").WithString("error", err.Error()).Log()
		} else {
			metrics.IncreaseArchiveUploadsTotalMetric(metrics.ArchiveUploaded)
			report.ArchiveKey = key
			tracer.Step("archived").WithString("key", key).Log()
		}
	}

	emit(ctx, rs.events, events.ReportMessageKind, events.ReportEvent{
		Type:       string(req.Type),
		Format:     string(req.Format),
		Size:       len(content),
		ArchiveKey: report.ArchiveKey,
	})
	tracer.Success().WithInt("size", len(content)).WithString("file_name", report.FileName).Log()
	return report, nil
}

func (rs *ReportService) reportData(ctx context.Context, req ReportRequest) (*types.ReportData, error) {
	data := &types.ReportData{
		Options: types.ReportOptions{
			Format: req.Format,
			Type:   req.Type,
			Title:  req.Title,
		},
		Timestamps: types.NewReportTimestamps(rs.now()),
		Years:      req.Years,
	}

	switch req.Type {
	case types.ReportTypeScenarios:
		points, err := rs.projections.Compare(ctx, req.Years, req.Strategy)
		if err != nil {
			return nil, err
		}
		strategy := req.Strategy
		data.Scenarios = points
		data.Strategy = &strategy
	case types.ReportTypeCosts:
		if req.Cost == nil {
			return nil, NewErrInvalidRequest("cost parameters are required for a %s report", req.Type)
		}
		result, err := rs.projections.Costs(ctx, *req.Cost)
		if err != nil {
			return nil, err
		}
		params := req.Cost.Params
		data.Years = params.Years
		data.Costs = result.Records
		data.CostParams = &params
		data.CostSummary = &result.Summary
		data.Targets = result.Targets
	default:
		return nil, NewErrInvalidRequest("unsupported report type %q", req.Type)
	}
	return data, nil
}
