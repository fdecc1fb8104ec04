package service_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahpgap/workforce-planner/internal/dataset"
	"github.com/ahpgap/workforce-planner/internal/events"
	"github.com/ahpgap/workforce-planner/internal/narrative"
	"github.com/ahpgap/workforce-planner/internal/projection"
	"github.com/ahpgap/workforce-planner/internal/service"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("narrative service", func() {
	var (
		ps     *service.ProjectionService
		writer *testWriter
		req    service.SummaryRequest
	)

	BeforeEach(func() {
		ps = service.NewProjectionService(dataset.MustDefault(), projection.DefaultBaseYear)
		writer = newTestWriter()
		req = service.SummaryRequest{Years: 10, TargetGapClosurePct: 50}
	})

	It("returns the generated text", func() {
		gen := &fakeGenerator{text: "Expand nursing colleges."}
		ns := service.NewNarrativeService(gen, ps, writer)

		result, err := ns.ForPlan(context.TODO(), narrative.KindExecutive, req)
		Expect(err).To(BeNil())
		Expect(result.Available).To(BeTrue())
		Expect(result.Text).To(Equal("Expand nursing colleges."))
		Expect(result.Message).To(BeEmpty())

		Expect(gen.requests).To(HaveLen(1))
		Expect(gen.requests[0].Kind).To(Equal(narrative.KindExecutive))
		Expect(gen.requests[0].Summary.Years).To(Equal(10))

		evs := writer.Events()
		Expect(evs).To(HaveLen(1))
		Expect(evs[0].Kind).To(Equal(events.NarrativeMessageKind))
		Expect(evs[0].Body).To(ContainSubstring(`"available":true`))
	})

	It("reports missing credentials as unavailable", func() {
		ns := service.NewNarrativeService(nil, ps, writer)

		result, err := ns.ForPlan(context.TODO(), narrative.KindPolicyBrief, req)
		Expect(err).To(BeNil())
		Expect(result.Available).To(BeFalse())
		Expect(result.Text).To(BeEmpty())
		Expect(result.Message).To(Equal(narrative.DisplayMessage(narrative.ErrMissingCredentials)))
	})

	It("reports a remote failure as unavailable", func() {
		gen := &fakeGenerator{err: fmt.Errorf("%w: quota exceeded", narrative.ErrRemoteService)}
		ns := service.NewNarrativeService(gen, ps, writer)

		result, err := ns.ForPlan(context.TODO(), narrative.KindStrategy, req)
		Expect(err).To(BeNil())
		Expect(result.Available).To(BeFalse())
		Expect(result.Message).NotTo(BeEmpty())
	})

	It("rejects an unknown kind before calling the generator", func() {
		gen := &fakeGenerator{text: "unused"}
		ns := service.NewNarrativeService(gen, ps, writer)

		_, err := ns.ForPlan(context.TODO(), narrative.Kind("poem"), req)
		var invalid *service.ErrInvalidRequest
		Expect(errors.As(err, &invalid)).To(BeTrue())
		Expect(gen.requests).To(BeEmpty())
		Expect(writer.Events()).To(BeEmpty())
	})
})
