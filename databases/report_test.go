package databases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/festivalops/report-api/databases"
	"github.com/festivalops/report-api/databases/mocks"
	"github.com/festivalops/report-api/models"
)

func TestReportDatabaseInsert(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("InsertOne", mock.Anything, mock.Anything).Return("inserted-id", nil)
	db.On("Collection", "reports").Return(conn)

	rdb := databases.NewReportDatabase(db)
	err := rdb.Insert(context.Background(), models.Report{ID: "a", Title: "t"})
	assert.NoError(t, err)
}

func TestReportDatabaseFindByIDIncrementsViews(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.Report)
		arg.ID = "a"
		arg.ViewCount = 4
	})
	conn.On("FindOneAndUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "reports").Return(conn)

	rdb := databases.NewReportDatabase(db)
	report, err := rdb.FindByID(context.Background(), "a")
	assert.NoError(t, err)
	assert.Equal(t, "a", report.ID)
	assert.Equal(t, int64(4), report.ViewCount)
}

func TestReportDatabaseFindByIDNotFound(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.On("FindOneAndUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "reports").Return(conn)

	rdb := databases.NewReportDatabase(db)
	_, err := rdb.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestReportDatabaseVote(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)
	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.Report)
		arg.Upvotes = 3
		arg.Downvotes = 1
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "reports").Return(conn)

	rdb := databases.NewReportDatabase(db)
	counts, err := rdb.Vote(context.Background(), "a", models.ActionUpvote)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), counts.Upvotes)
	assert.Equal(t, int64(1), counts.Downvotes)
}

func TestReportDatabaseVoteNotFound(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)
	singleResultHelper.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "reports").Return(conn)

	rdb := databases.NewReportDatabase(db)
	_, err := rdb.Vote(context.Background(), "missing", models.ActionDownvote)
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestReportDatabaseVoteUnknownAction(t *testing.T) {
	// no expectations: the collection must never be touched
	db := &mocks.DatabaseHelper{}

	rdb := databases.NewReportDatabase(db)
	_, err := rdb.Vote(context.Background(), "a", models.VoteAction("smash"))
	assert.Error(t, err)
	db.AssertExpectations(t)
}

func TestCommentDatabaseVoteUnknownAction(t *testing.T) {
	// no expectations: the collection must never be touched
	db := &mocks.DatabaseHelper{}

	cdb := databases.NewCommentDatabase(db)
	_, err := cdb.Vote(context.Background(), "c1", models.VoteAction("smash"))
	assert.Error(t, err)
	db.AssertExpectations(t)
}

func TestReportDatabaseDeleteCascades(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	reports := &mocks.CollectionHelper{}
	comments := &mocks.CollectionHelper{}

	reports.On("DeleteOne", mock.Anything, mock.Anything).Return(int64(1), nil)
	comments.On("DeleteMany", mock.Anything, mock.Anything).Return(int64(2), nil)
	db.On("Collection", "reports").Return(reports)
	db.On("Collection", "comments").Return(comments)

	rdb := databases.NewReportDatabase(db)
	deleted, err := rdb.Delete(context.Background(), "a")
	assert.NoError(t, err)
	assert.True(t, deleted)
	comments.AssertCalled(t, "DeleteMany", mock.Anything, mock.Anything)
}

func TestReportDatabaseDeleteMissing(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	reports := &mocks.CollectionHelper{}

	reports.On("DeleteOne", mock.Anything, mock.Anything).Return(int64(0), nil)
	db.On("Collection", "reports").Return(reports)

	rdb := databases.NewReportDatabase(db)
	deleted, err := rdb.Delete(context.Background(), "missing")
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestReportDatabaseListError(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), errors.New("mocked-error"))
	db.On("Collection", "reports").Return(conn)

	rdb := databases.NewReportDatabase(db)
	_, _, err := rdb.List(context.Background(), 1, 10)
	assert.Error(t, err)
}

func TestCommentDatabaseFindByReportID(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Comment)
		*arg = []models.Comment{
			{ID: "c2", ReportID: "a", CreatedAt: time.Now()},
			{ID: "c1", ReportID: "a", CreatedAt: time.Now().Add(-time.Minute)},
		}
	})
	conn.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursorHelper, nil)
	db.On("Collection", "comments").Return(conn)

	cdb := databases.NewCommentDatabase(db)
	comments, err := cdb.FindByReportID(context.Background(), "a")
	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.Equal(t, "c2", comments[0].ID)
}

func TestCommentDatabaseDelete(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("DeleteOne", mock.Anything, mock.Anything).Return(int64(1), nil)
	db.On("Collection", "comments").Return(conn)

	cdb := databases.NewCommentDatabase(db)
	deleted, err := cdb.Delete(context.Background(), "c1")
	assert.NoError(t, err)
	assert.True(t, deleted)
}
