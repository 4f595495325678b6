package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// グラフの色。セグメントごとに順に使う
var segmentColors = []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEEAD", "#D4A5A5", "#9EC1CF"}

type templateRenderer struct {
	templates *template.Template
}

func newTemplateRenderer() *templateRenderer {
	funcs := template.FuncMap{
		"segment": func(i int, p float64) template.CSS {
			return template.CSS(fmt.Sprintf("width:%.2f%%;background:%s", p, segmentColors[i%len(segmentColors)]))
		},
		"swatch": func(i int) template.CSS {
			return template.CSS("background:" + segmentColors[i%len(segmentColors)])
		},
		"percent": func(p float64) string {
			return fmt.Sprintf("%.1f%%", p)
		},
		"date": func(t time.Time, loc *time.Location) string {
			return t.In(loc).Format("2006-01-02")
		},
	}
	return &templateRenderer{
		templates: template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")),
	}
}

func (t *templateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}
