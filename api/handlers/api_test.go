package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/festivalops/report-api/api/handlers"
	"github.com/festivalops/report-api/config"
	"github.com/festivalops/report-api/databases"
)

func newTestApp(t *testing.T, mode databases.StorageMode) *handlers.App {
	t.Helper()
	store := databases.NewMemoryStore()
	a := &handlers.App{
		Config: config.Config{},
		RDB:    store,
		CDB:    databases.MemoryComments{MemoryStore: store},
		State:  databases.NewStorageState(mode),
		Live:   handlers.NewLiveHub(),
	}
	a.Router = a.New()
	return a
}

func TestHealthCheckHandlerMemoryMode(t *testing.T) {
	a := newTestApp(t, databases.MemoryOnly)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"alive":true,"storage":"memory"}`, rr.Body.String())
}

func TestHealthCheckHandlerRemoteMode(t *testing.T) {
	a := newTestApp(t, databases.RemotePreferred)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"alive":true,"storage":"remote"}`, rr.Body.String())
}

func TestRouterUnknownRoute(t *testing.T) {
	a := newTestApp(t, databases.MemoryOnly)

	req := httptest.NewRequest("GET", "/api/v1/unknown", nil)
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouterDeleteRequiresToken(t *testing.T) {
	a := newTestApp(t, databases.MemoryOnly)

	req := httptest.NewRequest("DELETE", "/api/v1/reports/some-id", nil)
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest("DELETE", "/api/v1/comments/some-id", nil)
	rr = httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouterUploadUnconfigured(t *testing.T) {
	a := newTestApp(t, databases.MemoryOnly)

	req := httptest.NewRequest("POST", "/api/v1/upload", bytes.NewReader(nil))
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
