package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/festivalops/report-api/api"
	"github.com/festivalops/report-api/config"
	"github.com/festivalops/report-api/databases"
	"github.com/festivalops/report-api/models"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// Report exported for testing purposes
type Report struct {
	RDB  databases.ReportDatabase
	Live *LiveHub
}

// ReportsHandler returns one page of reports, newest first
func (h Report) ReportsHandler(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}
	pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize < 1 {
		zap.S().Debugf("pageSize not set, using default of %v", defaultPageSize)
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	reports, total, err := h.RDB.List(ctx, page, pageSize)
	if err != nil {
		config.ErrorStatus("failed to list reports", http.StatusInternalServerError, w, err)
		return
	}
	if len(reports) == 0 {
		reports = []models.Report{}
	}

	b, err := json.Marshal(models.APIResponse{
		Success: true,
		Data: models.PaginatedReports{
			Items:      reports,
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: databases.TotalPages(total, pageSize),
		},
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateReportHandler validates and stores a new incident report
func (h Report) CreateReportHandler(w http.ResponseWriter, r *http.Request) {
	var in models.CreateReportInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if missing := in.MissingFields(); len(missing) > 0 {
		err := fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
		config.ErrorStatus("invalid report", http.StatusBadRequest, w, err)
		return
	}
	if !in.Category.Valid() {
		err := fmt.Errorf("unknown category %q", in.Category)
		config.ErrorStatus("invalid report", http.StatusBadRequest, w, err)
		return
	}
	if len(in.Images) > models.MaxReportImages {
		err := fmt.Errorf("at most %d images allowed, got %d", models.MaxReportImages, len(in.Images))
		config.ErrorStatus("invalid report", http.StatusBadRequest, w, err)
		return
	}

	now := time.Now().UTC()
	newReport := models.Report{
		ID:         uuid.NewString(),
		Title:      strings.TrimSpace(in.Title),
		Category:   in.Category,
		Content:    in.Content,
		OccurredAt: in.OccurredAt,
		CreatedAt:  now,
		UpdatedAt:  now,
		Images:     in.Images,
		Reporter:   in.Reporter,
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.RDB.Insert(ctx, newReport); err != nil {
		config.ErrorStatus("failed to create new report", http.StatusInternalServerError, w, err)
		return
	}

	if h.Live != nil {
		h.Live.BroadcastReportCreated(newReport)
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Data: newReport})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// ReportByIDHandler returns a single report; every hit counts as a view
func (h Report) ReportByIDHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	report, err := h.RDB.FindByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			config.ErrorStatus("report not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to find report", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Data: report})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteReportHandler removes a report and its comments, admin only
func (h Report) DeleteReportHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	deleted, err := h.RDB.Delete(ctx, reportID)
	if err != nil {
		config.ErrorStatus("failed to delete report", http.StatusInternalServerError, w, err)
		return
	}
	if !deleted {
		config.ErrorStatus("report not found", http.StatusNotFound, w, databases.ErrNotFound)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Message: "report deleted"})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

type voteRequest struct {
	Action models.VoteAction `json:"action"`
}

// VoteReportHandler applies one vote action and returns the new counts
func (h Report) VoteReportHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

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

	counts, err := h.RDB.Vote(ctx, reportID, req.Action)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			config.ErrorStatus("report not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to vote on report", http.StatusInternalServerError, w, err)
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

type supportRequest struct {
	Support bool `json:"support"`
}

// SupportReportHandler adds or withdraws support and returns the new count
func (h Report) SupportReportHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	var req supportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	count, err := h.RDB.Support(ctx, reportID, req.Support)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			config.ErrorStatus("report not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to update support", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Data: models.SupportCountResponse{SupportCount: count}})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
