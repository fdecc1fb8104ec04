package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ahpgap/workforce-planner/internal/projection"
	"github.com/ahpgap/workforce-planner/internal/projection/trajectories"
	"github.com/ahpgap/workforce-planner/internal/service"
	"github.com/ahpgap/workforce-planner/internal/service/report/types"
	"github.com/ahpgap/workforce-planner/internal/views"
)

type ScenariosOptions struct {
	GlobalOptions

	Years                    int
	TrainingCapacityIncrease float64
	InfrastructureBoost      float64
	RetentionImprovement     float64
	Output                   string
	File                     string
}

func DefaultScenariosOptions() *ScenariosOptions {
	sp := trajectories.DefaultStrategyParams()
	return &ScenariosOptions{
		GlobalOptions:            DefaultGlobalOptions(),
		Years:                    10,
		TrainingCapacityIncrease: sp.TrainingCapacityIncrease,
		InfrastructureBoost:      sp.InfrastructureBoost,
		RetentionImprovement:     sp.RetentionImprovement,
		Output:                   tableFormat,
	}
}

func NewCmdScenarios() *cobra.Command {
	o := DefaultScenariosOptions()
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Project the baseline, no-intervention and proposed strategy gaps side by side.",
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

func (o *ScenariosOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.IntVarP(&o.Years, "years", "y", o.Years, "Projection horizon in years")
	fs.Float64Var(&o.TrainingCapacityIncrease, "capacity", o.TrainingCapacityIncrease, "Enhanced training capacity multiplier")
	fs.Float64Var(&o.InfrastructureBoost, "infrastructure", o.InfrastructureBoost, "Infrastructure boost multiplier")
	fs.Float64Var(&o.RetentionImprovement, "retention", o.RetentionImprovement, "Retention improvement, between 0 and 1")
	fs.StringVarP(&o.Output, "output", "o", o.Output, outputHelp(legalReportOutputTypes))
	fs.StringVarP(&o.File, "file", "f", o.File, "Write the output to this file")
}

func (o *ScenariosOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *ScenariosOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if err := o.validateYears(o.Years); err != nil {
		return err
	}
	if o.TrainingCapacityIncrease < 0 || o.InfrastructureBoost < 0 {
		return fmt.Errorf("multipliers must not be negative")
	}
	if o.RetentionImprovement < 0 || o.RetentionImprovement > 1 {
		return fmt.Errorf("retention improvement must be between 0 and 1")
	}
	return validateReportOutput(o.Output, o.File)
}

func (o *ScenariosOptions) strategy() trajectories.StrategyParams {
	return trajectories.StrategyParams{
		TrainingCapacityIncrease: o.TrainingCapacityIncrease,
		InfrastructureBoost:      o.InfrastructureBoost,
		RetentionImprovement:     o.RetentionImprovement,
	}
}

// scenarioRow is one year of the three trajectories.
type scenarioRow struct {
	Year           int     `json:"year"`
	Baseline       int64   `json:"baseline"`
	NoIntervention int64   `json:"no_intervention"`
	Proposed       int64   `json:"proposed"`
	ProposedPct    float64 `json:"proposed_closure_pct"`
}

func (o *ScenariosOptions) Run(ctx context.Context, args []string) error {
	ps, err := o.projectionService()
	if err != nil {
		return err
	}

	if isReportFormat(o.Output) {
		report, err := service.NewReportService(ps, nil, nil).GenerateReport(ctx, service.ReportRequest{
			Type:     types.ReportTypeScenarios,
			Format:   reportFormat(o.Output),
			Years:    o.Years,
			Strategy: o.strategy(),
		})
		if err != nil {
			return err
		}
		return writeReport(o.Out(), o.File, report)
	}

	points, err := ps.Compare(ctx, o.Years, o.strategy())
	if err != nil {
		return err
	}
	rows := pivotScenarios(points)

	if o.Output != tableFormat && o.Output != "" {
		return printStructured(o.Out(), o.Output, rows)
	}

	tw := newTabWriter(o.Out())
	fmt.Fprintln(tw, "YEAR\tBASELINE\tNO INTERVENTION\tPROPOSED\tCLOSURE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f%%\n",
			r.Year,
			views.GroupThousands(float64(r.Baseline)),
			views.GroupThousands(float64(r.NoIntervention)),
			views.GroupThousands(float64(r.Proposed)),
			r.ProposedPct,
		)
	}
	return tw.Flush()
}

// pivotScenarios turns the long-form comparison into one row per year, in
// year order.
func pivotScenarios(points []projection.ScenarioPoint) []scenarioRow {
	index := map[int]int{}
	rows := []scenarioRow{}
	for _, p := range points {
		i, ok := index[p.Year]
		if !ok {
			i = len(rows)
			index[p.Year] = i
			rows = append(rows, scenarioRow{Year: p.Year})
		}
		switch p.Scenario {
		case projection.Baseline:
			rows[i].Baseline = p.Gap
		case projection.NoIntervention:
			rows[i].NoIntervention = p.Gap
		case projection.ProposedStrategy:
			rows[i].Proposed = p.Gap
			rows[i].ProposedPct = p.GapClosurePct
		}
	}
	return rows
}
