package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"odontoflash-api/config"
	"odontoflash-api/internal/domain/entity"
	"odontoflash-api/pkg/jwt"

	"github.com/google/uuid"
)

func testUserForAuth() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Email:    "maria.gonzalez@email.com",
		UserType: entity.UserTypePatient,
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// These cases all fail before the session lookup, so no Redis is needed.
func TestAuthenticateRejectsBadHeaders(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	mw := NewAuthMiddleware(jwtService, nil)
	handler := mw.Authenticate(okHandler())

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no bearer prefix", "token-without-scheme"},
		{"wrong scheme", "Basic abc123"},
		{"malformed token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestAuthenticateRejectsForeignToken(t *testing.T) {
	signer := jwt.NewJWTService(config.JWTConfig{Secret: "other-secret", Expiry: time.Hour})
	token, _, err := signer.Generate(testUserForAuth())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	mw := NewAuthMiddleware(jwtService, nil)
	handler := mw.Authenticate(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestContextGetters(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := req.Context()

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("user id should be absent from a fresh context")
	}
	if _, ok := GetUserTypeFromContext(ctx); ok {
		t.Error("user type should be absent from a fresh context")
	}
	if _, ok := GetTokenIDFromContext(ctx); ok {
		t.Error("token id should be absent from a fresh context")
	}
}
