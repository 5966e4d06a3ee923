package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/festivalops/report-api/api/handlers"
	"github.com/festivalops/report-api/config"
)

func adminWithPassword(t *testing.T, password string) handlers.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return handlers.Admin{Config: config.Config{
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
	}}
}

func TestAdmin_AdminLoginHandler(t *testing.T) {
	h := adminWithPassword(t, "gate-keeper")

	req := httptest.NewRequest("POST", "/api/v1/admin/login", bytes.NewReader([]byte(`{"password":"gate-keeper"}`)))
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.AdminLoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.Token)
}

func TestAdmin_AdminLoginHandlerWrongPassword(t *testing.T) {
	h := adminWithPassword(t, "gate-keeper")

	req := httptest.NewRequest("POST", "/api/v1/admin/login", bytes.NewReader([]byte(`{"password":"guess"}`)))
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.AdminLoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdmin_AdminLoginHandlerMissingPassword(t *testing.T) {
	h := adminWithPassword(t, "gate-keeper")

	req := httptest.NewRequest("POST", "/api/v1/admin/login", bytes.NewReader([]byte(`{}`)))
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.AdminLoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAdmin_AdminLoginHandlerUnconfigured(t *testing.T) {
	h := handlers.Admin{Config: config.Config{}}

	req := httptest.NewRequest("POST", "/api/v1/admin/login", bytes.NewReader([]byte(`{"password":"anything"}`)))
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.AdminLoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
