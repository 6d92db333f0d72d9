package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	appmiddleware "github.com/avikko/greetweb/internal/middleware"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	rn, err := NewRenderer()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		appmiddleware.RequestLogger(),
	)
	Register(router, rn)
	return router
}

func get(t *testing.T, router chi.Router, target string) *httptest.ResponseRecorder {
	t.Helper()
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, target, nil))
	return resp
}

func postForm(t *testing.T, router chi.Router, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestFormPage(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("unexpected content type %q", ct)
	}
	body := resp.Body.String()
	if !strings.Contains(body, `name="name"`) {
		t.Errorf("form page missing name input:\n%s", body)
	}
	if !strings.Contains(body, `method="post"`) {
		t.Errorf("form page must post back to the root path:\n%s", body)
	}
}

func TestGreetQuery(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"named", "/greet?name=Alice", "hello, Alice!"},
		{"absent", "/greet", "hello, world!"},
		{"empty", "/greet?name=", "hello, world!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, router, tt.target)
			if resp.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.Code)
			}
			if !strings.Contains(resp.Body.String(), tt.want) {
				t.Fatalf("body missing %q:\n%s", tt.want, resp.Body.String())
			}
		})
	}
}

func TestGreetFormPost(t *testing.T) {
	router := newTestRouter(t)

	resp := postForm(t, router, url.Values{"name": {"Bob"}})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "hello, Bob!") {
		t.Fatalf("body missing greeting:\n%s", resp.Body.String())
	}
}

func TestGreetFormPostBlankName(t *testing.T) {
	router := newTestRouter(t)

	// an explicitly blank field must behave like a missing one
	resp := postForm(t, router, url.Values{"name": {""}})
	body := resp.Body.String()
	if !strings.Contains(body, "hello, world!") {
		t.Fatalf("blank name must fall back to the default:\n%s", body)
	}
	if strings.Contains(body, "hello, !") {
		t.Fatalf("blank name leaked into the greeting:\n%s", body)
	}
}

func TestGreetFormPostMissingField(t *testing.T) {
	router := newTestRouter(t)

	resp := postForm(t, router, url.Values{})
	if !strings.Contains(resp.Body.String(), "hello, world!") {
		t.Fatalf("missing field must fall back to the default:\n%s", resp.Body.String())
	}
}

func TestGreetEscapesMarkup(t *testing.T) {
	router := newTestRouter(t)

	resp := get(t, router, "/greet?name="+url.QueryEscape("<b>x</b>"))
	body := resp.Body.String()
	if strings.Contains(body, "<b>x</b>") {
		t.Fatalf("user input rendered unescaped:\n%s", body)
	}
	if !strings.Contains(body, "&lt;b&gt;x&lt;/b&gt;") {
		t.Fatalf("expected escaped markup in body:\n%s", body)
	}
}
