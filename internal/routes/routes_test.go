package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	apiinternal "github.com/avikko/greetweb/internal/api"
	appmiddleware "github.com/avikko/greetweb/internal/middleware"
	"github.com/avikko/greetweb/internal/respond"
)

func newTestRouter() chi.Router {
	respond.Install()

	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		appmiddleware.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("RoutesTest", "test"))
	Register(api)
	return router
}

func decodeGreet(t *testing.T, body []byte) apiinternal.Envelope[GreetData] {
	t.Helper()
	var env apiinternal.Envelope[GreetData]
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode envelope: %v\n%s", err, body)
	}
	return env
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-health-req")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var env apiinternal.Envelope[HealthData]
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Data == nil || env.Data.Message != "healthy" {
		t.Fatalf("unexpected payload: %+v", env.Data)
	}
	if env.Error != nil {
		t.Fatalf("expected no error, got %+v", env.Error)
	}
	if env.Meta.RequestID == nil || *env.Meta.RequestID != "routes-health-req" {
		t.Fatalf("expected requestId routes-health-req, got %+v", env.Meta.RequestID)
	}
}

func TestGreetQueryRoute(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"named", "/api/v1/greet?name=Ada", "hello, Ada!"},
		{"absent", "/api/v1/greet", "hello, world!"},
		{"empty", "/api/v1/greet?name=", "hello, world!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if resp.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.Code)
			}
			env := decodeGreet(t, resp.Body.Bytes())
			if env.Data == nil || env.Data.Message != tt.want {
				t.Fatalf("message = %+v, want %q", env.Data, tt.want)
			}
		})
	}
}

func TestGreetCreateRoute(t *testing.T) {
	router := newTestRouter()

	body := bytes.NewReader([]byte(`{"name":"Bob"}`))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/greet", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	env := decodeGreet(t, resp.Body.Bytes())
	if env.Data == nil || env.Data.Message != "hello, Bob!" {
		t.Fatalf("unexpected payload: %+v", env.Data)
	}
}

func TestGreetCreateRouteDefaultsName(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/greet", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	env := decodeGreet(t, resp.Body.Bytes())
	if env.Data == nil || env.Data.Message != "hello, world!" {
		t.Fatalf("unexpected payload: %+v", env.Data)
	}
}

func TestGreetCBOR(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/greet?name=Ada", nil)
	req.Header.Set("Accept", "application/cbor")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/cbor" {
		t.Fatalf("expected application/cbor, got %s", ct)
	}

	var env apiinternal.Envelope[GreetData]
	if err := cbor.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("cbor unmarshal: %v", err)
	}
	if env.Data == nil || env.Data.Message != "hello, Ada!" {
		t.Fatalf("unexpected payload: %+v", env.Data)
	}
}
