package narrative

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/ahpgap/workforce-planner/internal/views"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

var funcs = template.FuncMap{
	"count": func(v int64) string { return views.GroupThousands(float64(v)) },
	"money": func(v float64) string { return views.GroupThousands(v) },
	"join":  strings.Join,
	"default": func(def, v string) string {
		if v == "" {
			return def
		}
		return v
	},
}

// Prompts holds one parsed template per Kind.
type Prompts struct {
	templates map[Kind]*template.Template
}

var (
	promptsOnce sync.Once
	prompts     *Prompts
	promptsErr  error
)

// LoadPrompts parses the embedded prompt templates.
func LoadPrompts() (*Prompts, error) {
	p := &Prompts{templates: make(map[Kind]*template.Template)}
	for _, k := range Kinds() {
		name := fmt.Sprintf("prompts/%s.tmpl", k)
		t, err := template.New(string(k) + ".tmpl").Funcs(funcs).Option("missingkey=error").ParseFS(promptFS, name)
		if err != nil {
			return nil, fmt.Errorf("parsing prompt %s: %w", k, err)
		}
		p.templates[k] = t
	}
	return p, nil
}

// MustPrompts returns the process-wide parsed templates.
func MustPrompts() *Prompts {
	promptsOnce.Do(func() {
		prompts, promptsErr = LoadPrompts()
	})
	if promptsErr != nil {
		panic(promptsErr)
	}
	return prompts
}

// Render executes the template for req.Kind against req.Summary.
func (p *Prompts) Render(req Request) (string, error) {
	t, ok := p.templates[req.Kind]
	if !ok {
		return "", NewErrUnsupportedKind(req.Kind)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, req.Summary); err != nil {
		return "", fmt.Errorf("rendering prompt %s: %w", req.Kind, err)
	}
	return buf.String(), nil
}
