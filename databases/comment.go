package databases

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/festivalops/report-api/models"
)

const commentName = "comments"

// CommentDatabase contains the methods to use with the comment database
type CommentDatabase interface {
	Insert(ctx context.Context, comment models.Comment) error
	FindByReportID(ctx context.Context, reportID string) ([]models.Comment, error)
	Delete(ctx context.Context, id string) (bool, error)
	Vote(ctx context.Context, id string, action models.VoteAction) (*models.VoteCounts, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type commentDatabase struct {
	db DatabaseHelper
}

// NewCommentDatabase initializes a new instance of comment database with the provided db connection
func NewCommentDatabase(db DatabaseHelper) CommentDatabase {
	return &commentDatabase{
		db: db,
	}
}

func (c *commentDatabase) Insert(ctx context.Context, comment models.Comment) error {
	_, err := c.db.Collection(commentName).InsertOne(ctx, comment)
	return err
}

func (c *commentDatabase) FindByReportID(ctx context.Context, reportID string) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cr, err := c.db.Collection(commentName).Find(ctx, bson.M{"reportId": reportID}, opts)
	if err != nil {
		return nil, err
	}

	var comments []models.Comment
	if err := cr.Decode(&comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *commentDatabase) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := c.db.Collection(commentName).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

func (c *commentDatabase) Vote(ctx context.Context, id string, action models.VoteAction) (*models.VoteCounts, error) {
	filter, update, err := voteUpdate(id, action)
	if err != nil {
		return nil, err
	}
	if _, err := c.db.Collection(commentName).UpdateOne(ctx, filter, update); err != nil {
		return nil, err
	}

	comment := &models.Comment{}
	err = c.db.Collection(commentName).FindOne(ctx, bson.M{"_id": id}).Decode(comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &models.VoteCounts{Upvotes: comment.Upvotes, Downvotes: comment.Downvotes}, nil
}

func (c *commentDatabase) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return c.db.Collection(commentName).CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since}})
}
