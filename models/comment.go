package models

import "time"

// Comment holds the structure for the comments collection
type Comment struct {
	ID        string    `json:"id" bson:"_id"`
	ReportID  string    `json:"reportId" bson:"reportId"`
	Content   string    `json:"content" bson:"content"`
	Nickname  string    `json:"nickname,omitempty" bson:"nickname,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
	Upvotes   int64     `json:"upvotes" bson:"upvotes"`
	Downvotes int64     `json:"downvotes" bson:"downvotes"`
}

// CreateCommentInput is the request body for POST /reports/{id}/comments.
type CreateCommentInput struct {
	Content  string `json:"content"`
	Nickname string `json:"nickname,omitempty"`
}
