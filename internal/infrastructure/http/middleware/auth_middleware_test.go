package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
)

func newContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequirePersona_AdminAllowed(t *testing.T) {
	c, _ := newContext(t)
	c.Set("user", entities.NewUser("admin@example.com", "Admin", entities.PersonaAdmin))

	called := false
	mw := RequirePersona(entities.PersonaAdmin)
	err := mw(func(c echo.Context) error {
		called = true
		return nil
	})(c)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("handler should run for an allowed persona")
	}
}

func TestRequirePersona_EmployeeForbidden(t *testing.T) {
	c, _ := newContext(t)
	c.Set("user", entities.NewUser("emp@example.com", "Emp", entities.PersonaEmployee))

	mw := RequirePersona(entities.PersonaAdmin)
	err := mw(func(c echo.Context) error { return nil })(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError got %v", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", httpErr.Code)
	}
}

func TestRequirePersona_Unauthenticated(t *testing.T) {
	c, _ := newContext(t)

	mw := RequirePersona(entities.PersonaAdmin)
	err := mw(func(c echo.Context) error { return nil })(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", httpErr.Code)
	}
}

func TestExtractToken(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	c := e.NewContext(req, httptest.NewRecorder())
	if got := extractToken(c); got != "tok-123" {
		t.Fatalf("expected bearer token got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-tok"})
	c = e.NewContext(req, httptest.NewRecorder())
	if got := extractToken(c); got != "cookie-tok" {
		t.Fatalf("expected cookie token got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	c = e.NewContext(req, httptest.NewRecorder())
	if got := extractToken(c); got != "" {
		t.Fatalf("expected empty token got %q", got)
	}
}
