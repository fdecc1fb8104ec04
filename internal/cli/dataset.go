package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ahpgap/workforce-planner/internal/dataset"
	"github.com/ahpgap/workforce-planner/internal/service"
	"github.com/ahpgap/workforce-planner/internal/views"
)

// datasetView renders one view as structured data and as a table.
type datasetView struct {
	data  func(s *service.DatasetService) any
	table func(s *service.DatasetService) ([]string, [][]string)
}

var (
	datasetViews = map[string]datasetView{
		"categories": {
			data: func(s *service.DatasetService) any { return s.Categories() },
			table: func(s *service.DatasetService) ([]string, [][]string) {
				var rows [][]string
				for _, c := range s.Categories() {
					rows = append(rows, []string{c.Name, count(c.Current), count(c.Required), count(c.Gap), pct(c.GapPercentage), views.FormatIndianCurrency(c.AvgSalary)})
				}
				return []string{"CATEGORY", "CURRENT", "REQUIRED", "GAP", "GAP %", "AVG SALARY"}, rows
			},
		},
		"states": {
			data: func(s *service.DatasetService) any { return s.States() },
			table: func(s *service.DatasetService) ([]string, [][]string) {
				var rows [][]string
				for _, st := range s.States() {
					rows = append(rows, []string{st.Name, st.Region, count(st.CurrentAHP), count(st.RequiredAHP), count(st.Gap), fmt.Sprintf("%.2f", st.AHPPer10K)})
				}
				return []string{"STATE", "REGION", "CURRENT", "REQUIRED", "GAP", "AHP/10K"}, rows
			},
		},
		"regions": {
			data: func(s *service.DatasetService) any { return s.Regions() },
			table: func(s *service.DatasetService) ([]string, [][]string) {
				var rows [][]string
				for _, r := range s.Regions() {
					rows = append(rows, []string{r.Region, fmt.Sprint(r.States), count(r.CurrentAHP), count(r.RequiredAHP), count(r.Gap), pct(r.GapPct)})
				}
				return []string{"REGION", "STATES", "CURRENT", "REQUIRED", "GAP", "GAP %"}, rows
			},
		},
		"funding-sources": {
			data: func(s *service.DatasetService) any { return s.FundingSources() },
			table: func(s *service.DatasetService) ([]string, [][]string) {
				var rows [][]string
				for _, f := range s.FundingSources() {
					rows = append(rows, []string{f.Source, crore(f.CurrentAnnualCr), crore(f.PotentialAnnualCr), crore(f.AdditionalMobilizable), f.Feasibility})
				}
				return []string{"SOURCE", "CURRENT (CR)", "POTENTIAL (CR)", "ADDITIONAL (CR)", "FEASIBILITY"}, rows
			},
		},
		"budget-trend": {
			data: func(s *service.DatasetService) any { return s.BudgetTrend() },
			table: func(s *service.DatasetService) ([]string, [][]string) {
				var rows [][]string
				for _, b := range s.BudgetTrend() {
					rows = append(rows, []string{b.FinancialYear, crore(b.HealthBudgetCr), fmt.Sprintf("%.2f", b.HealthPctGDP), fmt.Sprintf("%.2f", b.HealthPctBudget)})
				}
				return []string{"YEAR", "HEALTH BUDGET (CR)", "% GDP", "% BUDGET"}, rows
			},
		},
		"global-comparison": {
			data: func(s *service.DatasetService) any { return s.GlobalComparison() },
			table: func(s *service.DatasetService) ([]string, [][]string) {
				var rows [][]string
				for _, c := range s.GlobalComparison() {
					rows = append(rows, []string{c.Country, pct(c.HealthPctGDP), pct(c.GovtHealthPctGDP), pct(c.OutOfPocketPct)})
				}
				return []string{"COUNTRY", "HEALTH % GDP", "GOVT % GDP", "OUT OF POCKET %"}, rows
			},
		},
		"strategies": {
			data: func(s *service.DatasetService) any { return s.Strategies() },
			table: func(s *service.DatasetService) ([]string, [][]string) {
				var rows [][]string
				for _, st := range s.Strategies() {
					rows = append(rows, []string{st.Phase, st.Strategy, count(st.TargetProfessionals), crore(st.AnnualCostCr), pct(st.GapReductionPct)})
				}
				return []string{"PHASE", "STRATEGY", "TARGET", "COST (CR/YR)", "GAP REDUCTION"}, rows
			},
		},
		"who-benchmarks": {
			data: func(s *service.DatasetService) any { return s.WHOBenchmarks() },
			table: func(s *service.DatasetService) ([]string, [][]string) {
				var rows [][]string
				for _, b := range s.WHOBenchmarks() {
					rows = append(rows, []string{b.Metric, fmt.Sprintf("%.2f", b.WHOTarget), fmt.Sprintf("%.2f", b.IndiaCurrent), pct(b.GapPct)})
				}
				return []string{"METRIC", "WHO TARGET", "INDIA", "GAP %"}, rows
			},
		},
		"demographics": {
			data: func(s *service.DatasetService) any { return s.Demographics() },
			table: func(s *service.DatasetService) ([]string, [][]string) {
				var rows [][]string
				for _, u := range s.Demographics().UrbanRural {
					rows = append(rows, []string{u.Segment, pct(u.PopulationPct), pct(u.AHPShare), pct(u.GapShare), fmt.Sprintf("%.1f", u.DensityPer10K)})
				}
				return []string{"SEGMENT", "POPULATION %", "AHP SHARE", "GAP SHARE", "DENSITY/10K"}, rows
			},
		},
	}

	datasetViewAliases = map[string]string{
		"funding": "funding-sources",
		"budget":  "budget-trend",
		"global":  "global-comparison",
		"who":     "who-benchmarks",
	}
)

func datasetViewNames() []string {
	names := make([]string, 0, len(datasetViews))
	for name := range datasetViews {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseDatasetView(arg string) (string, error) {
	if canonical, ok := datasetViewAliases[arg]; ok {
		arg = canonical
	}
	if _, ok := datasetViews[arg]; !ok {
		return "", fmt.Errorf("invalid dataset view: %s (one of %s)", arg, strings.Join(datasetViewNames(), ", "))
	}
	return arg, nil
}

type DatasetOptions struct {
	GlobalOptions

	Output string
}

func DefaultDatasetOptions() *DatasetOptions {
	return &DatasetOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Output:        tableFormat,
	}
}

func NewCmdDataset() *cobra.Command {
	o := DefaultDatasetOptions()
	cmd := &cobra.Command{
		Use:       "dataset VIEW",
		Short:     "Display a view of the reference dataset.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: datasetViewNames(),
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

func (o *DatasetOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, outputHelp(legalOutputTypes))
}

func (o *DatasetOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *DatasetOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if _, err := parseDatasetView(args[0]); err != nil {
		return err
	}
	return validateOutput(o.Output, legalOutputTypes)
}

func (o *DatasetOptions) Run(ctx context.Context, args []string) error {
	name, err := parseDatasetView(args[0])
	if err != nil {
		return err
	}
	d, err := dataset.Default()
	if err != nil {
		return fmt.Errorf("loading reference dataset: %w", err)
	}
	srv := service.NewDatasetService(d, o.BaseYear)
	view := datasetViews[name]

	if o.Output != tableFormat && o.Output != "" {
		return printStructured(o.Out(), o.Output, view.data(srv))
	}

	header, rows := view.table(srv)
	tw := newTabWriter(o.Out())
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}

func count(v int64) string {
	return views.GroupThousands(float64(v))
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func crore(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
