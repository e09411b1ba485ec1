package router

import (
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/handler"
)

func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()

	e := echo.New()
	cfg := &config.Config{MaxUploadSize: "16M", StaticDir: t.TempDir()}
	jwtService := auth.NewJWTService("test-secret", time.Hour)

	Register(
		e,
		cfg,
		jwtService,
		handler.NewAuthHandler(nil),
		handler.NewProjectHandler(nil),
		handler.NewImageHandler(nil, nil),
		handler.NewHomepageHandler(nil),
		handler.NewStatsHandler(nil),
	)

	routes := map[string]bool{}
	for _, r := range e.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestRegister_AllEndpoints(t *testing.T) {
	routes := registeredRoutes(t)

	expected := []string{
		"GET /api/health",
		"POST /api/auth/login",
		"POST /api/auth/create-admin",
		"GET /api/auth/me",
		"POST /api/auth/change-password",
		"GET /api/projects",
		"POST /api/projects",
		"GET /api/projects/:id",
		"PUT /api/projects/:id",
		"DELETE /api/projects/:id",
		"POST /api/projects/:id/images",
		"PUT /api/projects/:id/images/reorder",
		"GET /api/images/:id",
		"PUT /api/images/:id/metadata",
		"DELETE /api/images/:id",
		"GET /api/homepage",
		"PUT /api/homepage",
		"GET /api/stats",
	}

	for _, route := range expected {
		assert.True(t, routes[route], "missing route %s", route)
	}
}
