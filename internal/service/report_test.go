package service_test

import (
	"context"
	"errors"

	"github.com/ahpgap/workforce-planner/internal/dataset"
	"github.com/ahpgap/workforce-planner/internal/events"
	"github.com/ahpgap/workforce-planner/internal/projection"
	"github.com/ahpgap/workforce-planner/internal/projection/cost"
	"github.com/ahpgap/workforce-planner/internal/projection/trajectories"
	"github.com/ahpgap/workforce-planner/internal/service"
	"github.com/ahpgap/workforce-planner/internal/service/report/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("report service", func() {
	var (
		ps     *service.ProjectionService
		writer *testWriter
	)

	BeforeEach(func() {
		ps = service.NewProjectionService(dataset.MustDefault(), projection.DefaultBaseYear)
		writer = newTestWriter()
	})

	It("lists the registered formats", func() {
		rs := service.NewReportService(ps, nil, writer)
		Expect(rs.Formats()).To(Equal([]types.ReportFormat{types.ReportFormatCSV, types.ReportFormatHTML, types.ReportFormatXLSX}))
	})

	It("renders a scenario report as csv", func() {
		rs := service.NewReportService(ps, nil, writer)
		report, err := rs.GenerateReport(context.TODO(), service.ReportRequest{
			Type:     types.ReportTypeScenarios,
			Format:   types.ReportFormatCSV,
			Years:    3,
			Strategy: trajectories.DefaultStrategyParams(),
		})
		Expect(err).To(BeNil())
		Expect(report.ContentType).To(Equal("text/csv"))
		Expect(report.FileName).To(MatchRegexp(`^ahp_scenarios_\d{8}_\d{6}\.csv$`))
		Expect(string(report.Content)).To(ContainSubstring("AHP WORKFORCE GAP SCENARIOS (3 YEARS)"))
		Expect(string(report.Content)).To(ContainSubstring("ProposedStrategy"))
		Expect(report.ArchiveKey).To(BeEmpty())

		evs := writer.Events()
		Expect(evs).To(HaveLen(1))
		Expect(evs[0].Kind).To(Equal(events.ReportMessageKind))
	})

	It("renders a cost report as html", func() {
		rs := service.NewReportService(ps, nil, writer)
		report, err := rs.GenerateReport(context.TODO(), service.ReportRequest{
			Type:   types.ReportTypeCosts,
			Format: types.ReportFormatHTML,
			Title:  "Budget Review",
			Cost:   &service.CostRequest{Params: cost.DefaultParams(50, 10)},
		})
		Expect(err).To(BeNil())
		Expect(string(report.Content)).To(ContainSubstring("Budget Review"))
		Expect(string(report.Content)).To(ContainSubstring("Annual Target by Category"))
	})

	It("renders an xlsx workbook", func() {
		rs := service.NewReportService(ps, nil, writer)
		report, err := rs.GenerateReport(context.TODO(), service.ReportRequest{
			Type:     types.ReportTypeScenarios,
			Format:   types.ReportFormatXLSX,
			Years:    2,
			Strategy: trajectories.DefaultStrategyParams(),
		})
		Expect(err).To(BeNil())
		Expect(report.Content[:2]).To(Equal([]byte("PK")))
	})

	It("archives the report when asked", func() {
		a := &fakeArchive{}
		rs := service.NewReportService(ps, a, writer)
		report, err := rs.GenerateReport(context.TODO(), service.ReportRequest{
			Type:     types.ReportTypeScenarios,
			Format:   types.ReportFormatCSV,
			Years:    1,
			Strategy: trajectories.DefaultStrategyParams(),
			Archive:  true,
		})
		Expect(err).To(BeNil())
		Expect(a.puts).To(Equal([]string{report.FileName}))
		Expect(report.ArchiveKey).To(Equal("reports/" + report.FileName))
		Expect(writer.Events()[0].Body).To(ContainSubstring(report.ArchiveKey))
	})

	It("still returns the report when archiving fails", func() {
		a := &fakeArchive{err: errors.New("bucket unreachable")}
		rs := service.NewReportService(ps, a, writer)
		report, err := rs.GenerateReport(context.TODO(), service.ReportRequest{
			Type:     types.ReportTypeScenarios,
			Format:   types.ReportFormatCSV,
			Years:    1,
			Strategy: trajectories.DefaultStrategyParams(),
			Archive:  true,
		})
		Expect(err).To(BeNil())
		Expect(report.Content).NotTo(BeEmpty())
		Expect(report.ArchiveKey).To(BeEmpty())
	})

	It("rejects an unsupported format", func() {
		rs := service.NewReportService(ps, nil, writer)
		_, err := rs.GenerateReport(context.TODO(), service.ReportRequest{Type: types.ReportTypeScenarios, Format: "pdf"})
		var invalid *service.ErrInvalidRequest
		Expect(errors.As(err, &invalid)).To(BeTrue())
	})

	It("requires cost parameters for a cost report", func() {
		rs := service.NewReportService(ps, nil, writer)
		_, err := rs.GenerateReport(context.TODO(), service.ReportRequest{Type: types.ReportTypeCosts, Format: types.ReportFormatCSV})
		var invalid *service.ErrInvalidRequest
		Expect(errors.As(err, &invalid)).To(BeTrue())
	})
})
