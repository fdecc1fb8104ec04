package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ahpgap/workforce-planner/internal/narrative"
	"github.com/ahpgap/workforce-planner/internal/service"
)

type NarrativeOptions struct {
	GlobalOptions

	Kind              string
	Years             int
	Target            float64
	StrategyType      string
	BudgetCr          float64
	BudgetConstraints string
	PriorityAreas     []string
	PhaseFocus        string
	TopCategories     int
	Model             string
	Output            string

	generator narrative.Generator
}

func DefaultNarrativeOptions() *NarrativeOptions {
	return &NarrativeOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Kind:          string(narrative.KindExecutive),
		Years:         10,
		Target:        100,
		StrategyType:  "Comprehensive",
		TopCategories: 3,
		Output:        tableFormat,
	}
}

func NewCmdNarrative() *cobra.Command {
	o := DefaultNarrativeOptions()
	cmd := &cobra.Command{
		Use:   "narrative",
		Short: "Generate policy prose for a gap closure plan. Requires GOOGLE_API_KEY.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func kindNames() []string {
	names := make([]string, 0, len(narrative.Kinds()))
	for _, k := range narrative.Kinds() {
		names = append(names, string(k))
	}
	return names
}

func (o *NarrativeOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Kind, "kind", "k", o.Kind, fmt.Sprintf("Narrative kind. One of: (%s).", strings.Join(kindNames(), ", ")))
	fs.IntVarP(&o.Years, "years", "y", o.Years, "Plan horizon in years")
	fs.Float64VarP(&o.Target, "target", "t", o.Target, "Share of the national gap to close, in percent")
	fs.StringVar(&o.StrategyType, "strategy", o.StrategyType, "Strategy label quoted in the prompt")
	fs.Float64Var(&o.BudgetCr, "budget", o.BudgetCr, "Available budget in crore (defaults to the plan's total cost)")
	fs.StringVar(&o.BudgetConstraints, "budget-constraints", o.BudgetConstraints, "Budget constraints for policy briefs")
	fs.StringSliceVar(&o.PriorityAreas, "priority", o.PriorityAreas, "Priority areas for policy briefs")
	fs.StringVar(&o.PhaseFocus, "phase", o.PhaseFocus, "Phase focus for implementation plans")
	fs.IntVar(&o.TopCategories, "top", o.TopCategories, "Number of largest category gaps to include")
	fs.StringVar(&o.Model, "model", o.Model, "Generative model (defaults to PLANNER_NARRATIVE_MODEL)")
	fs.StringVarP(&o.Output, "output", "o", o.Output, outputHelp(legalOutputTypes))
}

func (o *NarrativeOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	if o.Model == "" {
		o.Model = o.cfg.Narrative.Model
	}
	return nil
}

func (o *NarrativeOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if !narrative.Kind(o.Kind).Valid() {
		return narrative.NewErrUnsupportedKind(narrative.Kind(o.Kind))
	}
	if err := o.validateYears(o.Years); err != nil {
		return err
	}
	if o.Target < 0 || o.Target > 100 {
		return fmt.Errorf("target must be between 0 and 100")
	}
	if o.BudgetCr < 0 {
		return fmt.Errorf("budget must not be negative")
	}
	return validateOutput(o.Output, legalOutputTypes)
}

func (o *NarrativeOptions) Run(ctx context.Context, args []string) error {
	ps, err := o.projectionService()
	if err != nil {
		return err
	}

	g := o.generator
	if g == nil {
		g = narrative.New(ctx, narrative.Config{APIKey: o.cfg.Narrative.APIKey, Model: o.Model})
	}

	result, err := service.NewNarrativeService(g, ps, nil).ForPlan(ctx, narrative.Kind(o.Kind), service.SummaryRequest{
		Years:               o.Years,
		TargetGapClosurePct: o.Target,
		StrategyType:        o.StrategyType,
		BudgetCr:            o.BudgetCr,
		BudgetConstraints:   o.BudgetConstraints,
		PriorityAreas:       o.PriorityAreas,
		PhaseFocus:          o.PhaseFocus,
		TopCategories:       o.TopCategories,
	})
	if err != nil {
		return err
	}

	if o.Output != tableFormat && o.Output != "" {
		return printStructured(o.Out(), o.Output, result)
	}
	if !result.Available {
		_, err = fmt.Fprintln(o.Out(), result.Message)
		return err
	}
	_, err = fmt.Fprintln(o.Out(), strings.TrimSpace(result.Text))
	return err
}
