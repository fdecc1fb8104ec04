package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	api "github.com/ahpgap/workforce-planner/api/v1alpha1"
	"github.com/ahpgap/workforce-planner/internal/dataset"
	"github.com/ahpgap/workforce-planner/pkg/version"
)

type InfoOptions struct {
	GlobalOptions
	ServerUrl string
	Output    string
	Remote    bool
}

func DefaultInfoOptions() *InfoOptions {
	return &InfoOptions{
		GlobalOptions: DefaultGlobalOptions(),
		ServerUrl:     "http://localhost:3443",
		Output:        "",
		Remote:        false,
	}
}

func NewCmdInfo() *cobra.Command {
	o := DefaultInfoOptions()
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print Planner information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *InfoOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	fs.StringVarP(&o.ServerUrl, "server-url", "u", o.ServerUrl, "Address of the server")
	fs.StringVarP(&o.Output, "output", "o", o.Output, outputHelp(legalOutputTypes))
	fs.BoolVar(&o.Remote, "remote", o.Remote, "Get information from the remote service")
}

func (o *InfoOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *InfoOptions) Validate() error {
	if err := o.GlobalOptions.Validate([]string{}); err != nil {
		return err
	}
	return validateOutput(o.Output, legalOutputTypes)
}

func (o *InfoOptions) Run(ctx context.Context, args []string) error {
	var info api.Info
	var err error

	if o.Remote {
		info, err = o.getRemoteInfo(ctx)
		if err != nil {
			return fmt.Errorf("failed to get remote info: %w", err)
		}
	} else {
		info, err = o.getLocalInfo()
		if err != nil {
			return err
		}
	}

	return o.printInfo(info)
}

func (o *InfoOptions) getLocalInfo() (api.Info, error) {
	d, err := dataset.Default()
	if err != nil {
		return api.Info{}, fmt.Errorf("loading reference dataset: %w", err)
	}
	versionInfo := version.Get()
	return api.Info{
		VersionName:        versionInfo.GitVersion,
		GitCommit:          versionInfo.GitCommit,
		BaseYear:           o.BaseYear,
		TotalGap:           d.TotalGap,
		CategoryGapSum:     d.CategoryGapSum(),
		MaxProjectionYears: o.maxYears(),
		NarrativeKinds:     kindNames(),
		ReportFormats:      []string{csvFormat, htmlFormat, xlsxFormat},
	}, nil
}

func (o *InfoOptions) getRemoteInfo(ctx context.Context) (api.Info, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSuffix(o.ServerUrl, "/")+"/api/v1/info", nil)
	if err != nil {
		return api.Info{}, fmt.Errorf("creating request: %w", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return api.Info{}, fmt.Errorf("calling remote info endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return api.Info{}, fmt.Errorf("remote service returned status: %d", resp.StatusCode)
	}

	var info api.Info
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return api.Info{}, fmt.Errorf("decoding remote info: %w", err)
	}
	return info, nil
}

func (o *InfoOptions) printInfo(info api.Info) error {
	if o.Output == jsonFormat || o.Output == yamlFormat {
		return printStructured(o.Out(), o.Output, info)
	}

	source := "Local CLI"
	if o.Remote {
		source = "Remote Service"
	}
	w := o.Out()
	fmt.Fprintf(w, "AHP Workforce Planner %s Information:\n", source)
	fmt.Fprintf(w, "  Version Name:     %s\n", info.VersionName)
	fmt.Fprintf(w, "  Git Commit:       %s\n", info.GitCommit)
	fmt.Fprintf(w, "  Base Year:        %d\n", info.BaseYear)
	fmt.Fprintf(w, "  National Gap:     %d\n", info.TotalGap)
	fmt.Fprintf(w, "  Category Gap Sum: %d\n", info.CategoryGapSum)
	fmt.Fprintf(w, "  Max Horizon:      %d years\n", info.MaxProjectionYears)
	fmt.Fprintf(w, "  Narrative Kinds:  %s\n", strings.Join(info.NarrativeKinds, ", "))
	fmt.Fprintf(w, "  Report Formats:   %s\n", strings.Join(info.ReportFormats, ", "))
	return nil
}

