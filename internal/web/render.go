package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	appmiddleware "github.com/avikko/greetweb/internal/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer holds the parsed page templates. Templates are parsed once at
// startup and are safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded page templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// render executes the named template into a buffer before touching the
// ResponseWriter, so a template failure still produces a clean 500 instead
// of a half-written page.
func (rn *Renderer) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := rn.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		appmiddleware.LogError(r.Context(), "template render failed", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		appmiddleware.LogError(r.Context(), "response write failed", err)
	}
}
