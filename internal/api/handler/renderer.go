package handler

import (
	"html/template"
	"io"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer satisfies echo.Renderer with stdlib html/template.
type TemplateRenderer struct {
	templates *template.Template
}

// NewRenderer parses every template under dir.
func NewRenderer(dir string) (*TemplateRenderer, error) {
	t, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{templates: t}, nil
}

func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}
