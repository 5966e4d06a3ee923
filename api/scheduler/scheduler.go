package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/festivalops/report-api/config"
	"github.com/festivalops/report-api/databases"
	templates "github.com/festivalops/report-api/templates/html"
)

// Scheduler handles periodic background jobs for the report service
type Scheduler struct {
	cron *cron.Cron
	RDB  databases.ReportDatabase
	CDB  databases.CommentDatabase
	conf config.Config
}

// New creates a new scheduler instance
func New(rdb databases.ReportDatabase, cdb databases.CommentDatabase, conf config.Config) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		RDB:  rdb,
		CDB:  cdb,
		conf: conf,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	_, err := s.cron.AddFunc(s.conf.Digest.Cron, s.sendDailyDigest)
	if err != nil {
		zap.S().Errorw("failed to register daily digest job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Report digest scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Report digest scheduler stopped")
}

// sendDailyDigest counts the last 24 hours of activity and mails it to the
// operations inbox. The counts are always logged; the email only goes out
// when sendgrid and a recipient are configured.
func (s *Scheduler) sendDailyDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	since := time.Now().UTC().Add(-24 * time.Hour)

	reportCount, err := s.RDB.CountSince(ctx, since)
	if err != nil {
		zap.S().Errorw("failed to count reports for digest", "error", err)
		return
	}
	commentCount, err := s.CDB.CountSince(ctx, since)
	if err != nil {
		zap.S().Errorw("failed to count comments for digest", "error", err)
		return
	}

	zap.S().Infow("daily activity digest",
		"reports", reportCount,
		"comments", commentCount,
	)

	if s.conf.Digest.SendGridKey == "" || s.conf.Digest.To == "" {
		zap.S().Debug("digest email not configured, skipping send")
		return
	}

	subject := "Festival Report Daily Digest"
	plain := fmt.Sprintf("New reports in the last 24 hours: %d\nNew comments in the last 24 hours: %d", reportCount, commentCount)
	htmlContent := templates.RenderDailyDigestEmail(reportCount, commentCount)

	from := mail.NewEmail("Festival Report", s.conf.Digest.From)
	to := mail.NewEmail("", s.conf.Digest.To)
	message := mail.NewSingleEmail(from, subject, to, plain, htmlContent)

	client := sendgrid.NewSendClient(s.conf.Digest.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		zap.S().Errorw("failed to send digest email", "error", err)
		return
	}
	if resp.StatusCode >= 400 {
		zap.S().Errorw("sendgrid rejected digest email", "status", resp.StatusCode, "body", resp.Body)
		return
	}
	zap.S().Infow("digest email sent", "to", s.conf.Digest.To)
}
