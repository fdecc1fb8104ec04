package narrative_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"google.golang.org/genai"

	"github.com/ahpgap/workforce-planner/internal/narrative"
)

type fakeModels struct {
	text      string
	err       error
	gotModel  string
	gotPrompt string
	calls     int
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.gotModel = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.gotPrompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}}},
		},
	}, nil
}

func summary() narrative.ScenarioSummary {
	return narrative.ScenarioSummary{
		TotalGap:           6_500_000,
		Years:              10,
		StrategyType:       "Proposed Strategy",
		BudgetCr:           461_777.34,
		GapClosurePct:      50,
		CurrentSupply:      4_100_000,
		RequiredSupply:     11_800_000,
		GapPct:             65.3,
		AnnualSalaryCr:     12_696.43,
		TrainingCostCr:     10_119.88,
		FirstYearCostCr:    27_379.57,
		TotalCostCr:        461_777.34,
		ProfessionalsAdded: 325_000,
		Categories: []narrative.CategoryPriority{
			{Name: "Nurses & Midwives", Gap: 3_400_000, GapPercentage: 44.2, AvgSalary: 360_000},
		},
		PriorityAreas: []string{"Rural access", "Retention"},
	}
}

var _ = Describe("Prompts", func() {
	It("renders every kind", func() {
		p, err := narrative.LoadPrompts()
		Expect(err).ToNot(HaveOccurred())
		for _, k := range narrative.Kinds() {
			text, err := p.Render(narrative.Request{Kind: k, Summary: summary()})
			Expect(err).ToNot(HaveOccurred(), string(k))
			Expect(text).To(ContainSubstring("6,500,000"), string(k))
		}
	})

	It("includes category lines and priority areas", func() {
		p := narrative.MustPrompts()
		text, err := p.Render(narrative.Request{Kind: narrative.KindPolicyRecommendations, Summary: summary()})
		Expect(err).ToNot(HaveOccurred())
		Expect(text).To(ContainSubstring("- Nurses & Midwives: 3,400,000 gap, 44.2% of total, ₹360,000 avg salary"))
		Expect(text).To(ContainSubstring("Budget Required: ₹461,777 crore"))

		text, err = p.Render(narrative.Request{Kind: narrative.KindStrategy, Summary: summary()})
		Expect(err).ToNot(HaveOccurred())
		Expect(text).To(ContainSubstring("Priority focus areas: Rural access, Retention"))
		Expect(text).To(ContainSubstring("Phase emphasis: balanced"))
		Expect(text).To(ContainSubstring("Years 6-10"))
	})

	It("rejects unknown kinds", func() {
		_, err := narrative.MustPrompts().Render(narrative.Request{Kind: "haiku"})
		var unsupported *narrative.ErrUnsupportedKind
		Expect(errors.As(err, &unsupported)).To(BeTrue())
		Expect(narrative.Kind("haiku").Valid()).To(BeFalse())
		Expect(narrative.KindExecutive.Valid()).To(BeTrue())
	})
})

var _ = Describe("GeminiGenerator", func() {
	It("sends the rendered prompt to the default model", func() {
		fake := &fakeModels{text: "  **Plan**  \n"}
		g := narrative.NewGeminiGeneratorForTest(fake, "")

		text, err := g.Generate(context.TODO(), narrative.Request{Kind: narrative.KindExecutive, Summary: summary()})
		Expect(err).ToNot(HaveOccurred())
		Expect(text).To(Equal("**Plan**"))
		Expect(fake.gotModel).To(Equal(narrative.DefaultModel))
		Expect(fake.gotPrompt).To(ContainSubstring("Professionals to Add: 325,000"))
	})

	It("wraps remote failures without retrying", func() {
		fake := &fakeModels{err: errors.New("quota exceeded")}
		g := narrative.NewGeminiGeneratorForTest(fake, "gemini-x")

		_, err := g.Generate(context.TODO(), narrative.Request{Kind: narrative.KindExecutive, Summary: summary()})
		Expect(err).To(MatchError(narrative.ErrRemoteService))
		Expect(err.Error()).To(ContainSubstring("quota exceeded"))
		Expect(fake.calls).To(Equal(1))
		Expect(fake.gotModel).To(Equal("gemini-x"))
	})

	It("treats an empty answer as a remote failure", func() {
		g := narrative.NewGeminiGeneratorForTest(&fakeModels{}, "")
		_, err := g.Generate(context.TODO(), narrative.Request{Kind: narrative.KindImplementation, Summary: summary()})
		Expect(err).To(MatchError(narrative.ErrRemoteService))
	})

	It("does not call the model for unsupported kinds", func() {
		fake := &fakeModels{text: "x"}
		g := narrative.NewGeminiGeneratorForTest(fake, "")
		_, err := g.Generate(context.TODO(), narrative.Request{Kind: "poem"})
		Expect(err).To(HaveOccurred())
		Expect(fake.calls).To(BeZero())
	})
})

var _ = Describe("Unavailable", func() {
	It("is returned without credentials and fails every call", func() {
		g := narrative.New(context.TODO(), narrative.Config{})
		Expect(g).To(BeAssignableToTypeOf(narrative.Unavailable{}))

		_, err := g.Generate(context.TODO(), narrative.Request{Kind: narrative.KindExecutive})
		Expect(err).To(MatchError(narrative.ErrMissingCredentials))
	})
})

var _ = Describe("DisplayMessage", func() {
	It("explains missing credentials", func() {
		Expect(narrative.DisplayMessage(narrative.ErrMissingCredentials)).To(ContainSubstring("GOOGLE_API_KEY"))
	})

	It("surfaces other errors", func() {
		Expect(narrative.DisplayMessage(errors.New("boom"))).To(Equal("Error generating narrative: boom"))
	})

	It("is empty without an error", func() {
		Expect(narrative.DisplayMessage(nil)).To(BeEmpty())
	})
})
