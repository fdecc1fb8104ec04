package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ahpgap/workforce-planner/internal/projection/cost"
	"github.com/ahpgap/workforce-planner/internal/service"
	"github.com/ahpgap/workforce-planner/internal/service/report/types"
	"github.com/ahpgap/workforce-planner/internal/views"
)

type CostsOptions struct {
	GlobalOptions

	Target                      float64
	Years                       int
	TrainingCostMultiplier      float64
	SalaryGrowthRate            float64
	InfrastructureInvestmentPct float64
	NoRetention                 bool
	InflationRate               float64
	RemainderInFinalYear        bool
	FloorGapRemaining           bool
	Output                      string
	File                        string
}

func DefaultCostsOptions() *CostsOptions {
	p := cost.DefaultParams(100, 10)
	return &CostsOptions{
		GlobalOptions:               DefaultGlobalOptions(),
		Target:                      p.TargetGapClosurePct,
		Years:                       p.Years,
		TrainingCostMultiplier:      p.TrainingCostMultiplier,
		SalaryGrowthRate:            p.SalaryGrowthRate,
		InfrastructureInvestmentPct: p.InfrastructureInvestmentPct,
		InflationRate:               p.InflationRate,
		Output:                      tableFormat,
	}
}

func NewCmdCosts() *cobra.Command {
	o := DefaultCostsOptions()
	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Project the yearly cost of closing a share of the workforce gap.",
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

func (o *CostsOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.Float64VarP(&o.Target, "target", "t", o.Target, "Share of the national gap to close, in percent")
	fs.IntVarP(&o.Years, "years", "y", o.Years, "Projection horizon in years")
	fs.Float64Var(&o.TrainingCostMultiplier, "training-cost-multiplier", o.TrainingCostMultiplier, "Multiplier applied to per-head training cost")
	fs.Float64Var(&o.SalaryGrowthRate, "salary-growth", o.SalaryGrowthRate, "Yearly salary growth rate")
	fs.Float64Var(&o.InfrastructureInvestmentPct, "infrastructure-pct", o.InfrastructureInvestmentPct, "Infrastructure spend as a share of training cost")
	fs.BoolVar(&o.NoRetention, "no-retention", o.NoRetention, "Exclude retention incentives")
	fs.Float64Var(&o.InflationRate, "inflation", o.InflationRate, "Yearly inflation rate")
	fs.BoolVar(&o.RemainderInFinalYear, "remainder-in-final-year", o.RemainderInFinalYear, "Hire the rounding remainder in the final year")
	fs.BoolVar(&o.FloorGapRemaining, "floor-gap", o.FloorGapRemaining, "Never report a negative remaining gap")
	fs.StringVarP(&o.Output, "output", "o", o.Output, outputHelp(legalReportOutputTypes))
	fs.StringVarP(&o.File, "file", "f", o.File, "Write the output to this file")
}

func (o *CostsOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *CostsOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if err := o.validateYears(o.Years); err != nil {
		return err
	}
	if o.Target < 0 || o.Target > 100 {
		return fmt.Errorf("target must be between 0 and 100")
	}
	if o.TrainingCostMultiplier < 0 || o.SalaryGrowthRate < 0 || o.InfrastructureInvestmentPct < 0 || o.InflationRate < 0 {
		return fmt.Errorf("rates and multipliers must not be negative")
	}
	return validateReportOutput(o.Output, o.File)
}

func (o *CostsOptions) request() service.CostRequest {
	return service.CostRequest{
		Params: cost.Params{
			TargetGapClosurePct:         o.Target,
			Years:                       o.Years,
			TrainingCostMultiplier:      o.TrainingCostMultiplier,
			SalaryGrowthRate:            o.SalaryGrowthRate,
			InfrastructureInvestmentPct: o.InfrastructureInvestmentPct,
			IncludeRetention:            !o.NoRetention,
			InflationRate:               o.InflationRate,
		},
		RemainderInFinalYear: o.RemainderInFinalYear,
		FloorGapRemaining:    o.FloorGapRemaining,
	}
}

func (o *CostsOptions) Run(ctx context.Context, args []string) error {
	ps, err := o.projectionService()
	if err != nil {
		return err
	}
	req := o.request()

	if isReportFormat(o.Output) {
		report, err := service.NewReportService(ps, nil, nil).GenerateReport(ctx, service.ReportRequest{
			Type:   types.ReportTypeCosts,
			Format: reportFormat(o.Output),
			Years:  o.Years,
			Cost:   &req,
		})
		if err != nil {
			return err
		}
		return writeReport(o.Out(), o.File, report)
	}

	result, err := ps.Costs(ctx, req)
	if err != nil {
		return err
	}

	if o.Output != tableFormat && o.Output != "" {
		return printStructured(o.Out(), o.Output, result)
	}

	tw := newTabWriter(o.Out())
	fmt.Fprintln(tw, "YEAR\tTRAINING (CR)\tSALARY (CR)\tINFRA (CR)\tRETENTION (CR)\tTOTAL (CR)\tCUMULATIVE (CR)\tADDED\tGAP\tCLOSURE")
	for _, r := range result.Records {
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t%s\t%.1f%%\n",
			r.CalendarYear,
			r.TrainingCostCr,
			r.SalaryCostCr,
			r.InfrastructureCostCr,
			r.RetentionCostCr,
			r.TotalYearCostCr,
			r.CumulativeCostCr,
			views.GroupThousands(float64(r.ProfessionalsAdded)),
			views.GroupThousands(float64(r.GapRemaining)),
			r.GapClosurePct,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := result.Summary
	fmt.Fprintf(o.Out(), "\nTotal cost: %s over %d years (average %s a year)\n",
		views.FormatIndianCurrency(s.TotalCostCr*cost.Crore), s.Years, views.FormatIndianCurrency(s.AverageAnnualCostCr*cost.Crore))
	fmt.Fprintf(o.Out(), "Professionals added: %s, gap remaining: %s (%.1f%% closed)\n",
		views.GroupThousands(float64(s.ProfessionalsAdded)), views.GroupThousands(float64(s.FinalGapRemaining)), s.FinalGapClosurePct)
	return nil
}
