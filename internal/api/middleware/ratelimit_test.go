package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	allowFn func(ctx context.Context, key string) (bool, error)
	lastKey string
}

func (s *stubLimiter) Allow(ctx context.Context, key string) (bool, error) {
	s.lastKey = key
	return s.allowFn(ctx, key)
}

func runRateLimit(t *testing.T, limiter *stubLimiter) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := LoginRateLimit(limiter, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, handler(c)
}

func TestLoginRateLimit_Allows(t *testing.T) {
	limiter := &stubLimiter{allowFn: func(context.Context, string) (bool, error) { return true, nil }}

	rec, err := runRateLimit(t, limiter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if limiter.lastKey != "203.0.113.7" {
		t.Fatalf("limiter keyed by %q, want client IP", limiter.lastKey)
	}
}

func TestLoginRateLimit_Blocks(t *testing.T) {
	limiter := &stubLimiter{allowFn: func(context.Context, string) (bool, error) { return false, nil }}

	_, err := runRateLimit(t, limiter)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
}

func TestLoginRateLimit_FailsOpen(t *testing.T) {
	limiter := &stubLimiter{allowFn: func(context.Context, string) (bool, error) {
		return false, errors.New("redis: connection refused")
	}}

	rec, err := runRateLimit(t, limiter)
	if err != nil {
		t.Fatalf("limiter outage should not block logins: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
