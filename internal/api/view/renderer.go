// Package view renders the HTML pages from embedded templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/loansewa/loansewa-web/internal/core/analytics"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	// lakh renders a rupee amount in lakh, e.g. {{lakh .Amount 2}} → "2.56".
	"lakh": analytics.Lakh,
	// pct formats a percentage value for style attributes.
	"pct": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	// prob renders a 0..1 probability as a percentage, e.g. 0.123 → "12.3%".
	"prob": func(p float64) string { return fmt.Sprintf("%.1f%%", p*100) },
	"date": func(t time.Time, layout string) string {
		return t.Format(layout)
	},
	// slug turns a display label into a css class fragment,
	// e.g. "Under Review" → "under-review".
	"slug": func(s any) string {
		return strings.ReplaceAll(strings.ToLower(fmt.Sprint(s)), " ", "-")
	},
}

// Renderer satisfies echo.Renderer over the embedded template set.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates. Parsing happens once at startup so a
// broken template fails the process immediately.
func New() (*Renderer, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Must is New for wiring paths where a parse failure is unrecoverable.
func Must() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
