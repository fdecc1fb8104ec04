package service_test

import (
	"github.com/ahpgap/workforce-planner/internal/dataset"
	"github.com/ahpgap/workforce-planner/internal/service"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("dataset service", func() {
	var ds *service.DatasetService

	BeforeEach(func() {
		ds = service.NewDatasetService(dataset.MustDefault(), 2024)
	})

	It("describes the dataset", func() {
		info := ds.Info()
		Expect(info.TotalGap).To(Equal(int64(6_500_000)))
		Expect(info.CategoryGapSum).To(Equal(int64(7_700_000)))
		Expect(info.BaseYear).To(Equal(2024))
		Expect(info.Categories).To(Equal(13))
		Expect(info.States).To(Equal(30))
		Expect(info.Regions).To(Equal(6))
	})

	It("serves the views", func() {
		Expect(ds.Categories()).To(HaveLen(13))
		Expect(ds.States()).To(HaveLen(30))
		Expect(ds.Regions()).To(HaveLen(6))
		Expect(ds.FundingSources()).To(HaveLen(10))
		Expect(ds.BudgetTrend()).To(HaveLen(11))
		Expect(ds.Strategies()).NotTo(BeEmpty())
		Expect(ds.WHOBenchmarks()).NotTo(BeEmpty())
		Expect(ds.Demographics().UrbanRural).NotTo(BeEmpty())
	})
})
