package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/festivalops/report-api/api"
	"github.com/festivalops/report-api/api/scheduler"
	"github.com/festivalops/report-api/config"
	"github.com/festivalops/report-api/databases"
	"github.com/festivalops/report-api/models"
)

// App stores the router and db connections, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	RDB       databases.ReportDatabase
	CDB       databases.CommentDatabase
	State     *databases.StorageState
	Live      *LiveHub
	Scheduler *scheduler.Scheduler
	cld       *cloudinary.Cloudinary
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	report := Report{RDB: a.RDB, Live: a.Live}
	comment := Comment{CDB: a.CDB, RDB: a.RDB}
	admin := Admin{Config: a.Config}
	upload := Upload{CLD: a.cld}

	// healthchex
	r.HandleFunc("/health", a.healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/reports", http.HandlerFunc(report.ReportsHandler)).Methods("GET")
	apiCreate.Handle("/reports", http.HandlerFunc(report.CreateReportHandler)).Methods("POST")
	apiCreate.Handle("/reports/{report_id}", http.HandlerFunc(report.ReportByIDHandler)).Methods("GET")
	apiCreate.Handle("/reports/{report_id}", api.AdminOnly(http.HandlerFunc(report.DeleteReportHandler))).Methods("DELETE")
	apiCreate.Handle("/reports/{report_id}/vote", http.HandlerFunc(report.VoteReportHandler)).Methods("POST")
	apiCreate.Handle("/reports/{report_id}/support", http.HandlerFunc(report.SupportReportHandler)).Methods("POST")

	apiCreate.Handle("/reports/{report_id}/comments", http.HandlerFunc(comment.CommentsByReportHandler)).Methods("GET")
	apiCreate.Handle("/reports/{report_id}/comments", http.HandlerFunc(comment.CreateCommentHandler)).Methods("POST")
	apiCreate.Handle("/comments/{comment_id}", api.AdminOnly(http.HandlerFunc(comment.DeleteCommentHandler))).Methods("DELETE")
	apiCreate.Handle("/comments/{comment_id}/vote", http.HandlerFunc(comment.VoteCommentHandler)).Methods("POST")

	apiCreate.Handle("/upload", http.HandlerFunc(upload.UploadHandler)).Methods("POST")

	apiCreate.Handle("/admin/login", http.HandlerFunc(admin.AdminLoginHandler)).Methods("POST")

	apiCreate.Handle("/live", http.HandlerFunc(a.Live.LiveHandler)).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {
	memory := databases.NewMemoryStore()

	var remoteRDB databases.ReportDatabase
	var remoteCDB databases.CommentDatabase
	a.State = databases.NewStorageState(databases.MemoryOnly)

	if a.Config.MongoURI != "" {
		client, err := databases.NewClient(&a.Config)
		if err != nil {
			zap.S().With(err).Warn("failed to create mongo client, running on the in-memory store")
		} else if err := client.Connect(context.Background()); err != nil {
			zap.S().With(err).Warn("failed to connect to mongo, running on the in-memory store")
		} else {
			dbHelper := databases.NewDatabase(&a.Config, client)
			remoteRDB = databases.NewReportDatabase(dbHelper)
			remoteCDB = databases.NewCommentDatabase(dbHelper)
			a.State = databases.NewStorageState(databases.RemotePreferred)
			zap.S().Info("report-api has connected to the database")
		}
	} else {
		zap.S().Warn("no mongo uri configured, reports will not survive a restart")
	}

	a.RDB = databases.NewFailoverReportDatabase(remoteRDB, memory, a.State)
	a.CDB = databases.NewFailoverCommentDatabase(remoteCDB, memory, a.State)

	api.SetJWTSecret(a.Config.JWTSecret)

	if a.Config.CloudinaryURL != "" {
		cld, err := cloudinary.NewFromURL(a.Config.CloudinaryURL)
		if err != nil {
			zap.S().With(err).Warn("failed to initialize cloudinary, image uploads disabled")
		} else {
			a.cld = cld
		}
	}

	a.Live = NewLiveHub()

	a.Scheduler = scheduler.New(a.RDB, a.CDB, a.Config)
	a.Scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func (a *App) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive:   true,
		Storage: a.State.Mode().String(),
	})
	_, _ = io.WriteString(w, string(b))
}
