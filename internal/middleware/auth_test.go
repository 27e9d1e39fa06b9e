package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"maitri/internal/config"
	"maitri/internal/models"
)

func newTestApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	sessionMiddleware, _ := session.NewWithStore()
	app.Use(sessionMiddleware)

	auth := NewAuthMiddleware(cfg)

	app.Post("/test/login", func(c fiber.Ctx) error {
		SetOperator(session.FromContext(c), &models.Operator{Sub: "abc", Email: "surgeon@example.com"})
		return c.SendString("ok")
	})
	whoami := func(c fiber.Ctx) error {
		return c.SendString(Operator(c).DisplayName())
	}
	app.Get("/private", auth.RequireAuth, whoami)
	app.Get("/api/v1/private", auth.RequireAuth, whoami)
	app.Get("/public", auth.OptionalAuth, whoami)
	return app
}

func TestRequireAuth_Disabled(t *testing.T) {
	app := newTestApp(&config.Config{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200 with login disabled", resp.StatusCode)
	}
}

func TestRequireAuth_Enabled(t *testing.T) {
	app := newTestApp(&config.Config{OIDCIssuer: "https://issuer.example.com"})

	tests := []struct {
		name       string
		path       string
		htmx       bool
		wantStatus int
		wantHeader string
	}{
		{"page redirects to login", "/private", false, fiber.StatusSeeOther, "Location"},
		{"htmx gets redirect header", "/private", true, fiber.StatusUnauthorized, "HX-Redirect"},
		{"api gets json 401", "/api/v1/private", false, fiber.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.htmx {
				req.Header.Set("HX-Request", "true")
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantHeader != "" && resp.Header.Get(tt.wantHeader) != "/login" {
				t.Errorf("%s = %q, want /login", tt.wantHeader, resp.Header.Get(tt.wantHeader))
			}
		})
	}
}

func TestRequireAuth_SignedIn(t *testing.T) {
	app := newTestApp(&config.Config{OIDCIssuer: "https://issuer.example.com"})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/test/login", nil))
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	for _, c := range resp.Cookies() {
		req.AddCookie(c)
	}
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK || string(body) != "surgeon@example.com" {
		t.Errorf("got %d %q, want 200 surgeon@example.com", resp.StatusCode, body)
	}
}

func TestOptionalAuth_Anonymous(t *testing.T) {
	app := newTestApp(&config.Config{OIDCIssuer: "https://issuer.example.com"})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/public", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK || len(body) != 0 {
		t.Errorf("got %d %q, want 200 with empty body", resp.StatusCode, body)
	}
}

func TestOperatorFromSession_Nil(t *testing.T) {
	if op := OperatorFromSession(nil); op != nil {
		t.Errorf("OperatorFromSession(nil) = %v, want nil", op)
	}
}
