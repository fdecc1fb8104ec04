package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ahpgap/workforce-planner/internal/config"
	"github.com/ahpgap/workforce-planner/internal/dataset"
	"github.com/ahpgap/workforce-planner/internal/service"
)

// GlobalOptions are shared by every offline command. Settings not given on
// the command line come from the PLANNER_* environment.
type GlobalOptions struct {
	BaseYear int

	cfg *config.Config
	out io.Writer
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&o.BaseYear, "base-year", o.BaseYear, "Calendar year of projection year zero (defaults to PLANNER_BASE_YEAR)")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewDefault()
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	o.cfg = cfg
	if o.BaseYear == 0 {
		o.BaseYear = cfg.Service.BaseYear
	}
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if o.BaseYear <= 0 {
		return fmt.Errorf("base year must be positive")
	}
	return nil
}

func (o *GlobalOptions) Out() io.Writer {
	if o.out == nil {
		return os.Stdout
	}
	return o.out
}

func (o *GlobalOptions) maxYears() int {
	if o.cfg == nil {
		return 25
	}
	return o.cfg.Service.MaxProjectionYears
}

func (o *GlobalOptions) validateYears(years int) error {
	if years < 1 || years > o.maxYears() {
		return fmt.Errorf("years must be between 1 and %d", o.maxYears())
	}
	return nil
}

func (o *GlobalOptions) projectionService() (*service.ProjectionService, error) {
	d, err := dataset.Default()
	if err != nil {
		return nil, fmt.Errorf("loading reference dataset: %w", err)
	}
	return service.NewProjectionService(d, o.BaseYear), nil
}
