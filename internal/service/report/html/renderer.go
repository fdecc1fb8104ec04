package html

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/ahpgap/workforce-planner/internal/service/report/types"
	"github.com/ahpgap/workforce-planner/internal/views"
)

type Renderer struct {
	tmpl *template.Template
}

type summaryCard struct {
	Label string
	Value string
}

type templateData struct {
	CSS           template.CSS
	Title         string
	GeneratedDate string
	GeneratedTime string
	Cards         []summaryCard
	Tables        []types.Table
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"cell":    formatCell,
		"numeric": isNumeric,
	}
	return &Renderer{
		tmpl: template.Must(template.New("report").Funcs(funcs).Parse(htmlReportTemplate)),
	}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatHTML
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	td := templateData{
		CSS:           template.CSS(reportCSS),
		Title:         data.Title(),
		GeneratedDate: data.Timestamps.Generated,
		GeneratedTime: data.Timestamps.GeneratedTime,
		Cards:         r.summaryCards(data),
		Tables:        data.Tables(),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, td); err != nil {
		return nil, fmt.Errorf("failed to execute HTML template: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) summaryCards(data *types.ReportData) []summaryCard {
	if data.Options.Type == types.ReportTypeCosts {
		if data.CostSummary == nil {
			return nil
		}
		s := data.CostSummary
		return []summaryCard{
			{Label: "Total Investment", Value: views.FormatIndianCurrency(s.TotalCostCr * 1e7)},
			{Label: "First Year", Value: views.FormatIndianCurrency(s.FirstYearCostCr * 1e7)},
			{Label: "Professionals Added", Value: views.FormatLargeNumber(float64(s.ProfessionalsAdded))},
			{Label: "Gap Closure", Value: fmt.Sprintf("%.1f%%", s.FinalGapClosurePct)},
		}
	}

	// final sample of each scenario, in the order the scenarios appear
	var cards []summaryCard
	last := map[string]int{}
	for i, p := range data.Scenarios {
		name := string(p.Scenario)
		if _, seen := last[name]; !seen {
			cards = append(cards, summaryCard{Label: name})
		}
		last[name] = i
	}
	for i := range cards {
		p := data.Scenarios[last[cards[i].Label]]
		cards[i].Label = fmt.Sprintf("%s gap in %d", cards[i].Label, p.Year)
		cards[i].Value = views.FormatLargeNumber(float64(p.Gap))
	}
	return cards
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int64, float64:
		return true
	default:
		return false
	}
}

func formatCell(v any) string {
	switch c := v.(type) {
	case int64:
		return views.GroupThousands(float64(c))
	case float64:
		s := strconv.FormatFloat(c, 'f', 2, 64)
		whole, frac, _ := strings.Cut(s, ".")
		n, err := strconv.ParseFloat(whole, 64)
		if err != nil {
			return s
		}
		return views.GroupThousands(n) + "." + frac
	default:
		return types.CellString(v)
	}
}

const reportCSS = `
        body { font-family: Arial, sans-serif; margin: 20px; background: #f5f5f5; }
        .container { max-width: 1200px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 40px; }
        .header h1 { color: #2c3e50; margin-bottom: 10px; font-size: 2em; }
        .header p { color: #7f8c8d; font-size: 1.1em; }
        .summary-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; margin: 30px 0; }
        .summary-card { background: #16a085; color: white; padding: 20px; border-radius: 8px; text-align: center; }
        .summary-card h3 { margin: 0 0 10px 0; font-size: 1em; font-weight: normal; }
        .summary-card .value { font-size: 1.8em; font-weight: bold; }
        .section { margin: 40px 0; }
        .section h2 { color: #2c3e50; border-bottom: 2px solid #16a085; padding-bottom: 10px; }
        table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        th, td { padding: 8px 12px; text-align: left; border-bottom: 1px solid #ddd; }
        th { background-color: #f8f9fa; font-weight: bold; color: #2c3e50; }
        td.num { text-align: right; font-variant-numeric: tabular-nums; }
        tr:hover { background-color: #f5f5f5; }
`

const htmlReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{ .Title }}</title>
    <style>{{ .CSS }}</style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{ .Title }}</h1>
            <p>Generated: {{ .GeneratedDate }} at {{ .GeneratedTime }}</p>
        </div>
        {{- if .Cards }}
        <div class="summary-grid">
            {{- range .Cards }}
            <div class="summary-card"><h3>{{ .Label }}</h3><div class="value">{{ .Value }}</div></div>
            {{- end }}
        </div>
        {{- end }}
        {{- range .Tables }}
        <div class="section">
            <h2>{{ .Title }}</h2>
            <table>
                <thead><tr>{{ range .Header }}<th>{{ . }}</th>{{ end }}</tr></thead>
                <tbody>
                {{- range .Rows }}
                    <tr>{{ range . }}<td{{ if numeric . }} class="num"{{ end }}>{{ cell . }}</td>{{ end }}</tr>
                {{- end }}
                </tbody>
            </table>
        </div>
        {{- end }}
    </div>
</body>
</html>
`
