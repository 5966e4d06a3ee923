package databases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/festivalops/report-api/models"
)

const reportName = "reports"

// ReportDatabase contains the methods to use with the report database
type ReportDatabase interface {
	Insert(ctx context.Context, report models.Report) error
	FindByID(ctx context.Context, id string) (*models.Report, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, page, pageSize int) ([]models.Report, int64, error)
	Delete(ctx context.Context, id string) (bool, error)
	Vote(ctx context.Context, id string, action models.VoteAction) (*models.VoteCounts, error)
	Support(ctx context.Context, id string, support bool) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type reportDatabase struct {
	db DatabaseHelper
}

// NewReportDatabase initializes a new instance of report database with the provided db connection
func NewReportDatabase(db DatabaseHelper) ReportDatabase {
	return &reportDatabase{
		db: db,
	}
}

func (c *reportDatabase) Insert(ctx context.Context, report models.Report) error {
	_, err := c.db.Collection(reportName).InsertOne(ctx, report)
	return err
}

// FindByID returns the report with its view count already incremented. The
// increment is a single $inc so concurrent reads never lose an update.
func (c *reportDatabase) FindByID(ctx context.Context, id string) (*models.Report, error) {
	report := &models.Report{}
	after := options.After
	err := c.db.Collection(reportName).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"viewCount": 1}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return report, nil
}

func (c *reportDatabase) Exists(ctx context.Context, id string) (bool, error) {
	count, err := c.db.Collection(reportName).CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (c *reportDatabase) List(ctx context.Context, page, pageSize int) ([]models.Report, int64, error) {
	total, err := c.db.Collection(reportName).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	cr, err := c.db.Collection(reportName).Find(ctx, bson.M{}, newMongoPaginate(pageSize, page).getPaginatedOpts())
	if err != nil {
		return nil, 0, err
	}

	var reports []models.Report
	if err := cr.Decode(&reports); err != nil {
		return nil, 0, err
	}

	comments := c.db.Collection(commentName)
	for i := range reports {
		count, err := comments.CountDocuments(ctx, bson.M{"reportId": reports[i].ID})
		if err != nil {
			return nil, 0, err
		}
		reports[i].CommentCount = count
	}
	return reports, total, nil
}

// Delete removes the report and cascades to every comment attached to it.
func (c *reportDatabase) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := c.db.Collection(reportName).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	if deleted == 0 {
		return false, nil
	}
	if _, err := c.db.Collection(commentName).DeleteMany(ctx, bson.M{"reportId": id}); err != nil {
		return false, err
	}
	return true, nil
}

func (c *reportDatabase) Vote(ctx context.Context, id string, action models.VoteAction) (*models.VoteCounts, error) {
	filter, update, err := voteUpdate(id, action)
	if err != nil {
		return nil, err
	}
	if _, err := c.db.Collection(reportName).UpdateOne(ctx, filter, update); err != nil {
		return nil, err
	}

	report := &models.Report{}
	err = c.db.Collection(reportName).FindOne(ctx, bson.M{"_id": id}).Decode(report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &models.VoteCounts{Upvotes: report.Upvotes, Downvotes: report.Downvotes}, nil
}

func (c *reportDatabase) Support(ctx context.Context, id string, support bool) (int64, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$inc": bson.M{"supportCount": 1}}
	if !support {
		// guard keeps the counter from going negative
		filter = bson.M{"_id": id, "supportCount": bson.M{"$gt": 0}}
		update = bson.M{"$inc": bson.M{"supportCount": -1}}
	}
	if _, err := c.db.Collection(reportName).UpdateOne(ctx, filter, update); err != nil {
		return 0, err
	}

	report := &models.Report{}
	err := c.db.Collection(reportName).FindOne(ctx, bson.M{"_id": id}).Decode(report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return report.SupportCount, nil
}

func (c *reportDatabase) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return c.db.Collection(reportName).CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since}})
}

// voteUpdate maps a vote action to its filter and atomic $inc update. Remove
// actions carry a floor guard so counters never drop below zero. Unknown
// actions are rejected so a caller can never decrement the wrong counter.
func voteUpdate(id string, action models.VoteAction) (bson.M, bson.M, error) {
	switch action {
	case models.ActionUpvote:
		return bson.M{"_id": id}, bson.M{"$inc": bson.M{"upvotes": 1}}, nil
	case models.ActionDownvote:
		return bson.M{"_id": id}, bson.M{"$inc": bson.M{"downvotes": 1}}, nil
	case models.ActionRemoveUpvote:
		return bson.M{"_id": id, "upvotes": bson.M{"$gt": 0}}, bson.M{"$inc": bson.M{"upvotes": -1}}, nil
	case models.ActionRemoveDownvote:
		return bson.M{"_id": id, "downvotes": bson.M{"$gt": 0}}, bson.M{"$inc": bson.M{"downvotes": -1}}, nil
	default:
		return nil, nil, fmt.Errorf("unknown vote action %q", action)
	}
}
