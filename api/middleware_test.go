package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func mintToken(t *testing.T, secret, scope string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   "admin",
		"scope": scope,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestAdminOnlyAllowsValidToken(t *testing.T) {
	SetJWTSecret("test-secret")

	called := false
	handler := AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("DELETE", "/api/v1/reports/abc", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "test-secret", "admin"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAdminOnlyRejectsMissingHeader(t *testing.T) {
	SetJWTSecret("test-secret")

	handler := AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest("DELETE", "/api/v1/reports/abc", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminOnlyRejectsWrongScope(t *testing.T) {
	SetJWTSecret("test-secret")

	handler := AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest("DELETE", "/api/v1/reports/abc", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "test-secret", "user"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminOnlyRejectsBadSignature(t *testing.T) {
	SetJWTSecret("test-secret")

	handler := AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest("DELETE", "/api/v1/reports/abc", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "other-secret", "admin"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
