package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/festivalops/report-api/api"
	"github.com/festivalops/report-api/config"
	"github.com/festivalops/report-api/databases"
	"github.com/festivalops/report-api/models"
)

// Comment exported for testing purposes
type Comment struct {
	CDB databases.CommentDatabase
	RDB databases.ReportDatabase
}

// CommentsByReportHandler returns every comment on a report, newest first
func (h Comment) CommentsByReportHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	comments, err := h.CDB.FindByReportID(ctx, reportID)
	if err != nil {
		config.ErrorStatus("failed to get comments", http.StatusInternalServerError, w, err)
		return
	}
	if len(comments) == 0 {
		comments = []models.Comment{}
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Data: comments})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateCommentHandler attaches a new comment to an existing report
func (h Comment) CreateCommentHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	var in models.CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	content := strings.TrimSpace(in.Content)
	if content == "" {
		config.ErrorStatus("invalid comment", http.StatusBadRequest, w, errors.New("content must not be blank"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	exists, err := h.RDB.Exists(ctx, reportID)
	if err != nil {
		config.ErrorStatus("failed to find report", http.StatusInternalServerError, w, err)
		return
	}
	if !exists {
		config.ErrorStatus("report not found", http.StatusNotFound, w, databases.ErrNotFound)
		return
	}

	now := time.Now().UTC()
	newComment := models.Comment{
		ID:        uuid.NewString(),
		ReportID:  reportID,
		Content:   content,
		Nickname:  strings.TrimSpace(in.Nickname),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.CDB.Insert(ctx, newComment); err != nil {
		config.ErrorStatus("failed to create new comment", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Data: newComment})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// DeleteCommentHandler removes a single comment, admin only
func (h Comment) DeleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["comment_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	deleted, err := h.CDB.Delete(ctx, commentID)
	if err != nil {
		config.ErrorStatus("failed to delete comment", http.StatusInternalServerError, w, err)
		return
	}
	if !deleted {
		config.ErrorStatus("comment not found", http.StatusNotFound, w, databases.ErrNotFound)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Message: "comment deleted"})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// VoteCommentHandler applies one vote action to a comment
func (h Comment) VoteCommentHandler(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["comment_id"]

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if !req.Action.Valid() {
		err := fmt.Errorf("unknown action %q", req.Action)
		config.ErrorStatus("invalid vote", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	counts, err := h.CDB.Vote(ctx, commentID, req.Action)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			config.ErrorStatus("comment not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to vote on comment", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Data: counts})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
