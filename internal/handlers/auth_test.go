package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cookiecash/trading-wallet/internal/handlers"
	"github.com/cookiecash/trading-wallet/internal/jwt"
	"github.com/cookiecash/trading-wallet/internal/logger"
	"github.com/cookiecash/trading-wallet/internal/middlewares"
	"github.com/cookiecash/trading-wallet/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func init() {
	_ = logger.Initialize("error")
}

// fakeTokener lets handler tests run behind a real AuthMiddleware without
// minting tokens.
type fakeTokener struct {
	claims *jwt.Claims
}

func (f *fakeTokener) GetTokenFromRequest(_ context.Context, _ *http.Request) (string, error) {
	if f.claims == nil {
		return "", errors.New("authorization header missing")
	}
	return "token", nil
}

func (f *fakeTokener) GetClaims(_ context.Context, _ string) (*jwt.Claims, error) {
	return f.claims, nil
}

// serveAuthed runs a handler behind AuthMiddleware carrying the given claims.
func serveAuthed(h http.Handler, claims *jwt.Claims, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	middlewares.AuthMiddleware(&fakeTokener{claims: claims})(h).ServeHTTP(rec, req)
	return rec
}

type fakeRegisterer struct {
	userID uuid.UUID
	err    error

	gotEmail    string
	gotPassword string
}

func (f *fakeRegisterer) Register(_ context.Context, email, password string) (uuid.UUID, error) {
	f.gotEmail = email
	f.gotPassword = password
	return f.userID, f.err
}

func TestRegisterHandler(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{
			name:       "successful registration",
			body:       `{"email": "alice@example.com", "password": "secret123"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "email already registered",
			body:       `{"email": "alice@example.com", "password": "secret123"}`,
			svcErr:     services.ErrUserAlreadyExists,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing @ in email",
			body:       `{"email": "alice", "password": "secret123"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short password",
			body:       `{"email": "alice@example.com", "password": "abc"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "service failure",
			body:       `{"email": "alice@example.com", "password": "secret123"}`,
			svcErr:     errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeRegisterer{userID: userID, err: tt.svcErr}
			handler := handlers.NewRegisterHandler(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader(tt.body))
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Contains(t, rec.Body.String(), userID.String())
			}
		})
	}
}

func TestRegisterHandler_NormalizesEmail(t *testing.T) {
	svc := &fakeRegisterer{userID: uuid.New()}
	handler := handlers.NewRegisterHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/register",
		strings.NewReader(`{"email": "  Alice@Example.COM ", "password": "secret123"}`))
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "alice@example.com", svc.gotEmail)
}

type fakeLoginer struct {
	token string
	err   error
}

func (f *fakeLoginer) Login(_ context.Context, _, _ string) (string, error) {
	return f.token, f.err
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		token      string
		svcErr     error
		wantStatus int
	}{
		{
			name:       "successful login",
			body:       `{"email": "alice@example.com", "password": "secret123"}`,
			token:      "jwt-token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid credentials",
			body:       `{"email": "alice@example.com", "password": "wrong"}`,
			svcErr:     services.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "blocked user",
			body:       `{"email": "blocked@example.com", "password": "secret123"}`,
			svcErr:     services.ErrUserBlocked,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "malformed body",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "service failure",
			body:       `{"email": "alice@example.com", "password": "secret123"}`,
			svcErr:     errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handlers.NewLoginHandler(&fakeLoginer{token: tt.token, err: tt.svcErr})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(tt.body))
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), tt.token)
			}
		})
	}
}
