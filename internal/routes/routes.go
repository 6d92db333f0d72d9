// Package routes registers the JSON/CBOR API surface mirroring the HTML
// pages: a health probe and the greeting operations.
package routes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/avikko/greetweb/internal/greeting"
	appmiddleware "github.com/avikko/greetweb/internal/middleware"
	"github.com/avikko/greetweb/internal/respond"
)

// Register wires all API routes into the provided router.
func Register(api huma.API) {
	registerHealth(api)
	registerGreet(api)
}

// HealthData models the success payload for the health route.
type HealthData struct {
	Message string `json:"message" doc:"Health status message" example:"healthy"`
}

func registerHealth(api huma.API) {
	huma.Get(api, "/health", func(ctx context.Context, _ *struct{}) (*respond.Body[HealthData], error) {
		appmiddleware.LogInfo(ctx, "health check", zap.String("path", "/health"))
		out := respond.Success(ctx, HealthData{Message: "healthy"})
		return &out, nil
	})
}

// GreetData models the response payload for the greeting routes.
type GreetData struct {
	Message string `json:"message" doc:"Greeting message" example:"hello, world!"`
}

// GreetQueryInput carries the optional name query parameter.
type GreetQueryInput struct {
	Name string `query:"name" doc:"Name to greet" example:"Alice" maxLength:"100" required:"false"`
}

// GreetCreateInput is the request body for creating a greeting. The name is
// optional; an absent or empty value resolves to the default.
type GreetCreateInput struct {
	Body struct {
		Name string `json:"name,omitempty" doc:"Name to greet" example:"Bob" maxLength:"100" required:"false"`
	}
}

func registerGreet(api huma.API) {
	huma.Get(api, "/api/v1/greet", func(ctx context.Context, input *GreetQueryInput) (*respond.Body[GreetData], error) {
		msg := greeting.Message(input.Name)
		appmiddleware.LogInfo(ctx, "greet get", zap.String("path", "/api/v1/greet"), zap.String("message", msg))
		out := respond.Success(ctx, GreetData{Message: msg})
		return &out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-greeting",
		Method:        http.MethodPost,
		Path:          "/api/v1/greet",
		Summary:       "Create a personalized greeting",
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *GreetCreateInput) (*respond.Body[GreetData], error) {
		msg := greeting.Message(input.Body.Name)
		appmiddleware.LogInfo(ctx, "greet post", zap.String("path", "/api/v1/greet"), zap.String("message", msg))
		out := respond.Success(ctx, GreetData{Message: msg})
		return &out, nil
	})
}
