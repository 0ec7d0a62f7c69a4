// Package web holds the HTML templates of the account pages and the
// echo.Renderer that executes them.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templatesFS embed.FS

const layout = "base.html"

// Renderer renders a page template inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page under templates/ together with the layout.
// Pages are addressed by their path relative to templates/, e.g.
// "account/login.html".
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	err := fs.WalkDir(templatesFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := strings.TrimPrefix(path, "templates/")
		if d.IsDir() || name == layout {
			return nil
		}
		tmpl, err := template.ParseFS(templatesFS, "templates/"+layout, path)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = tmpl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Render satisfies the echo.Renderer interface.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, layout, data)
}
