package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn    func(ctx context.Context, name, email, password string) (*domain.User, error)
	loginFn       func(ctx context.Context, email, password string) (string, *domain.User, error)
	currentUserFn func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.currentUserFn(ctx, userID)
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(_ context.Context, name, email, _ string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Name: name, Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"longenough"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.ID != "user-1" || resp.User.Email != "alice@example.com" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	called := false
	svc := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (*domain.User, error) {
			called = true
			return nil, nil
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newJSONContext(http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"short"}`)
	err := h.Register(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a short password, got %v", err)
	}
	if called {
		t.Fatalf("service should not be reached when validation fails")
	}
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"not-an-email","password":"longenough"}`)
	err := h.Register(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a bad email, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, email, _ string) (string, *domain.User, error) {
			return "signed.jwt.token", &domain.User{ID: "user-1", Name: "Alice", Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"longenough"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed.jwt.token" {
		t.Fatalf("token missing from response: %+v", resp)
	}
	if resp.User.Email != "alice@example.com" {
		t.Fatalf("unexpected user in response: %+v", resp.User)
	}
}

func TestAuthHandler_Login_BadCredentialsPassthrough(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newJSONContext(http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrongpass"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("domain error must flow to the error handler, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	svc := &stubAuthService{
		currentUserFn: func(_ context.Context, userID string) (*domain.User, error) {
			return &domain.User{ID: userID, Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(http.MethodGet, "/api/auth/me", "")
	c.Set("identity", ports.Identity{UserID: "user-1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser})

	if err := h.Me(c); err != nil {
		t.Fatalf("me failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "user-1" {
		t.Fatalf("unexpected user: %+v", resp)
	}
}

func TestAuthHandler_Me_NoIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(http.MethodGet, "/api/auth/me", "")
	err := h.Me(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %v", err)
	}
}
