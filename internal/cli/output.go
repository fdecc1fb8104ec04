package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"

	"github.com/ahpgap/workforce-planner/internal/service"
	"github.com/ahpgap/workforce-planner/internal/service/report/types"
)

const (
	tableFormat = "table"
	jsonFormat  = "json"
	yamlFormat  = "yaml"
	csvFormat   = "csv"
	htmlFormat  = "html"
	xlsxFormat  = "xlsx"
)

var (
	legalOutputTypes       = []string{tableFormat, jsonFormat, yamlFormat}
	legalReportOutputTypes = []string{tableFormat, jsonFormat, yamlFormat, csvFormat, htmlFormat, xlsxFormat}
)

func validateOutput(output string, legal []string) error {
	if len(output) > 0 && !funk.Contains(legal, output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legal, ", "))
	}
	return nil
}

// validateReportOutput also requires a file for binary formats.
func validateReportOutput(output, file string) error {
	if err := validateOutput(output, legalReportOutputTypes); err != nil {
		return err
	}
	if output == xlsxFormat && file == "" {
		return fmt.Errorf("--file is required for %s output", xlsxFormat)
	}
	return nil
}

func outputHelp(legal []string) string {
	return fmt.Sprintf("Output format. One of: (%s).", strings.Join(legal, ", "))
}

func isReportFormat(output string) bool {
	return output == csvFormat || output == htmlFormat || output == xlsxFormat
}

func printStructured(w io.Writer, output string, v any) error {
	switch output {
	case jsonFormat:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case yamlFormat:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshalling to YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported structured output %q", output)
	}
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// writeReport writes the rendered report to file, or to w when file is empty.
func writeReport(w io.Writer, file string, report *service.Report) error {
	if file == "" {
		_, err := w.Write(report.Content)
		return err
	}
	if err := os.WriteFile(file, report.Content, 0o600); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	_, err := fmt.Fprintf(w, "Report written to %s\n", file)
	return err
}

func reportFormat(output string) types.ReportFormat {
	return types.ReportFormat(output)
}
