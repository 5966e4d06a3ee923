package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/festivalops/report-api/config"
	"github.com/festivalops/report-api/databases/mocks"
)

func TestSendDailyDigestCountsActivity(t *testing.T) {
	rdb := mocks.NewReportDatabase(t)
	cdb := mocks.NewCommentDatabase(t)

	rdb.On("CountSince", mock.Anything, mock.Anything).Return(int64(3), nil)
	cdb.On("CountSince", mock.Anything, mock.Anything).Return(int64(5), nil)

	// no sendgrid key configured, so the job only logs the counts
	s := New(rdb, cdb, config.Config{})
	s.sendDailyDigest()
}

func TestSendDailyDigestStopsOnCountError(t *testing.T) {
	rdb := mocks.NewReportDatabase(t)
	// the comment database must not be touched when report counting fails
	cdb := mocks.NewCommentDatabase(t)

	rdb.On("CountSince", mock.Anything, mock.Anything).Return(int64(0), errors.New("mocked-error"))

	s := New(rdb, cdb, config.Config{})
	s.sendDailyDigest()
}

func TestSchedulerStartStop(t *testing.T) {
	rdb := mocks.NewReportDatabase(t)
	cdb := mocks.NewCommentDatabase(t)

	conf := config.Config{Digest: config.DigestConfig{Cron: "0 7 * * *"}}
	s := New(rdb, cdb, conf)
	s.Start()
	s.Stop()

	assert.NotNil(t, s.cron)
}
