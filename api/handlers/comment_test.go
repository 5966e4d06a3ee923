package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/festivalops/report-api/api/handlers"
	"github.com/festivalops/report-api/databases"
	"github.com/festivalops/report-api/models"
)

func newCommentHandler(t *testing.T) (handlers.Comment, *databases.MemoryStore) {
	t.Helper()
	store := databases.NewMemoryStore()
	seedStore(t, store, 1)
	return handlers.Comment{CDB: databases.MemoryComments{MemoryStore: store}, RDB: store}, store
}

func TestComment_CreateCommentHandler(t *testing.T) {
	h, _ := newCommentHandler(t)

	body := `{"content":"same thing happened at gate C","nickname":"visitor"}`
	req := httptest.NewRequest("POST", "/api/v1/reports/report-00/comments", bytes.NewReader([]byte(body)))
	req = mux.SetURLVars(req, map[string]string{"report_id": "report-00"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateCommentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    models.Comment `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.ID)
	assert.Equal(t, "report-00", resp.Data.ReportID)
	assert.Equal(t, "visitor", resp.Data.Nickname)
}

func TestComment_CreateCommentHandlerBlankContent(t *testing.T) {
	h, _ := newCommentHandler(t)

	req := httptest.NewRequest("POST", "/api/v1/reports/report-00/comments", bytes.NewReader([]byte(`{"content":"   "}`)))
	req = mux.SetURLVars(req, map[string]string{"report_id": "report-00"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateCommentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestComment_CreateCommentHandlerReportMissing(t *testing.T) {
	h, _ := newCommentHandler(t)

	req := httptest.NewRequest("POST", "/api/v1/reports/nope/comments", bytes.NewReader([]byte(`{"content":"hello"}`)))
	req = mux.SetURLVars(req, map[string]string{"report_id": "nope"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CreateCommentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestComment_CommentsByReportHandlerEmpty(t *testing.T) {
	h, _ := newCommentHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/reports/report-00/comments", nil)
	req = mux.SetURLVars(req, map[string]string{"report_id": "report-00"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.CommentsByReportHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	// an empty list serializes as [], never null
	assert.Contains(t, rr.Body.String(), `"data":[]`)
}

func TestComment_VoteCommentHandler(t *testing.T) {
	h, store := newCommentHandler(t)
	err := store.InsertComment(context.Background(), models.Comment{ID: "c1", ReportID: "report-00", Content: "hi", CreatedAt: time.Now()})
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/comments/c1/vote", bytes.NewReader([]byte(`{"action":"downvote"}`)))
	req = mux.SetURLVars(req, map[string]string{"comment_id": "c1"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.VoteCommentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data models.VoteCounts `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Data.Downvotes)
}

func TestComment_VoteCommentHandlerNotFound(t *testing.T) {
	h, _ := newCommentHandler(t)

	req := httptest.NewRequest("POST", "/api/v1/comments/nope/vote", bytes.NewReader([]byte(`{"action":"upvote"}`)))
	req = mux.SetURLVars(req, map[string]string{"comment_id": "nope"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.VoteCommentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestComment_DeleteCommentHandler(t *testing.T) {
	h, store := newCommentHandler(t)
	err := store.InsertComment(context.Background(), models.Comment{ID: "c1", ReportID: "report-00", Content: "hi", CreatedAt: time.Now()})
	assert.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/api/v1/comments/c1", nil)
	req = mux.SetURLVars(req, map[string]string{"comment_id": "c1"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.DeleteCommentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	http.HandlerFunc(h.DeleteCommentHandler).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
