package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/agrismart/marketplace-api/internal/api"
	"github.com/agrismart/marketplace-api/internal/api/handler"
	"github.com/agrismart/marketplace-api/internal/core/domain"
	"github.com/agrismart/marketplace-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	return s.loginFn(ctx, in)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	e.Validator = handler.NewValidator()
	return e
}

func doJSON(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Name != "Amina" || in.Role != "farmer" || in.Phone != "+254700000001" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{
				ID: "user_1", Name: in.Name, Phone: in.Phone, Role: in.Role,
				PasswordHash: "never-serialized",
			}, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	c, rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"Amina","password":"secret1","role":"farmer","phone":"+254700000001"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "Amina" || resp["role"] != "farmer" || resp["phone"] != "+254700000001" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, hasEmail := resp["email"]; hasEmail {
		t.Fatalf("blank email must be omitted: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "never-serialized") {
		t.Fatalf("password hash leaked into response")
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	e := newEcho()
	h := handler.NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	})

	c, rec := doJSON(e, http.MethodPost, "/auth/register", `{"name":"Bob"}`)
	if err := h.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	e := newEcho()
	h := handler.NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
		},
	})

	c, rec := doJSON(e, http.MethodPost, "/auth/register", `{"name":"Bob"}`)
	if err := h.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newEcho()
	h := handler.NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, rec := doJSON(e, http.MethodPost, "/auth/register", "not-json")
	if err := h.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	h := handler.NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
			if in.Phone != "+254700000001" || in.Password != "secret1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.LoginResult{
				Token: "token123",
				User:  &domain.User{ID: "user_1", Name: "Amina", Phone: in.Phone, Role: "farmer"},
			}, nil
		},
	})

	c, rec := doJSON(e, http.MethodPost, "/auth/login", `{"phone":"+254700000001","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" || resp["role"] != "farmer" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Amina" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	e := newEcho()
	h := handler.NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})

	c, rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":"a@b.c","password":"bad"}`)
	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	e := newEcho()
	h := handler.NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
			return nil, domain.ErrUserNotFound
		},
	})

	c, rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":"ghost@b.c","password":"pwd1234"}`)
	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuthHandler_Me_Success(t *testing.T) {
	e := newEcho()
	h := handler.NewAuthHandler(&stubAuthService{})

	c, rec := doJSON(e, http.MethodGet, "/auth/me", "")
	c.Set("identity", &domain.User{
		ID: "user_1", Name: "Amina", Phone: "+254700000001", Role: "farmer",
		PasswordHash: "never-serialized",
	})

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "Amina" || resp["phone"] != "+254700000001" || resp["role"] != "farmer" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "never-serialized") {
		t.Fatalf("password hash leaked into response")
	}
}

func TestAuthHandler_Me_NoIdentity(t *testing.T) {
	e := newEcho()
	h := handler.NewAuthHandler(&stubAuthService{})

	c, rec := doJSON(e, http.MethodGet, "/auth/me", "")
	if err := h.Me(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
