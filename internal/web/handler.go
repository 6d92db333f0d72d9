// Package web serves the HTML pages: a form asking for a name, and a
// greeting page with that name substituted in.
package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/avikko/greetweb/internal/greeting"
	appmiddleware "github.com/avikko/greetweb/internal/middleware"
)

// greetPage is the data for the greeting template.
type greetPage struct {
	Name string
}

// Register wires the page routes into the provided router.
func Register(r chi.Router, rn *Renderer) {
	r.Get("/", rn.formHandler)
	r.Post("/", rn.submitHandler)
	r.Get("/greet", rn.greetHandler)
}

// formHandler renders the static name form.
func (rn *Renderer) formHandler(w http.ResponseWriter, r *http.Request) {
	rn.render(w, r, "form.html", nil)
}

// submitHandler greets the name posted from the form. A blank field is
// treated the same as a missing one, so the default applies either way.
func (rn *Renderer) submitHandler(w http.ResponseWriter, r *http.Request) {
	// ParseForm errors leave r.PostForm empty, which resolves to the
	// default name rather than a failure.
	_ = r.ParseForm()
	name := greeting.OrDefault(r.PostFormValue("name"))
	appmiddleware.LogInfo(r.Context(), "greet form", zap.String("name", name))
	rn.render(w, r, "greet.html", greetPage{Name: name})
}

// greetHandler greets the name given in the query string.
func (rn *Renderer) greetHandler(w http.ResponseWriter, r *http.Request) {
	name := greeting.OrDefault(r.URL.Query().Get("name"))
	appmiddleware.LogInfo(r.Context(), "greet query", zap.String("name", name))
	rn.render(w, r, "greet.html", greetPage{Name: name})
}
