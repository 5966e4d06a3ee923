package models

import "time"

// Category is the fixed set of incident categories a report can carry.
type Category string

// Report categories.
const (
	CategoryOperationFailure Category = "operation-failure"
	CategorySafetyIssue      Category = "safety-issue"
	CategoryFacility         Category = "facility"
	CategoryTransportation   Category = "transportation"
	CategoryOther            Category = "other"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryOperationFailure, CategorySafetyIssue, CategoryFacility, CategoryTransportation, CategoryOther:
		return true
	}
	return false
}

// Reporter holds the optional submitter details; both fields may be empty
// for anonymous reports.
type Reporter struct {
	Nickname string `json:"nickname,omitempty" bson:"nickname,omitempty"`
	Contact  string `json:"contact,omitempty" bson:"contact,omitempty"`
}

// Report holds the structure for the reports collection
type Report struct {
	ID           string    `json:"id" bson:"_id"`
	Title        string    `json:"title" bson:"title"`
	Category     Category  `json:"category" bson:"category"`
	Content      string    `json:"content" bson:"content"`
	OccurredAt   time.Time `json:"occurredAt" bson:"occurredAt"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
	Images       []string  `json:"images,omitempty" bson:"images,omitempty"`
	Reporter     *Reporter `json:"reporter,omitempty" bson:"reporter,omitempty"`
	SupportCount int64     `json:"supportCount" bson:"supportCount"`
	ViewCount    int64     `json:"viewCount" bson:"viewCount"`
	Upvotes      int64     `json:"upvotes" bson:"upvotes"`
	Downvotes    int64     `json:"downvotes" bson:"downvotes"`

	// CommentCount is derived from the comment index at list time and is
	// never persisted.
	CommentCount int64 `json:"commentCount,omitempty" bson:"-"`
}

// CreateReportInput is the request body for POST /reports.
type CreateReportInput struct {
	Title      string    `json:"title"`
	Category   Category  `json:"category"`
	Content    string    `json:"content"`
	OccurredAt time.Time `json:"occurredAt"`
	Images     []string  `json:"images,omitempty"`
	Reporter   *Reporter `json:"reporter,omitempty"`
}

// MaxReportImages caps the image URLs attached to a single report.
const MaxReportImages = 5

// MissingFields returns the names of required fields that are absent.
func (in CreateReportInput) MissingFields() []string {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Category == "" {
		missing = append(missing, "category")
	}
	if in.Content == "" {
		missing = append(missing, "content")
	}
	if in.OccurredAt.IsZero() {
		missing = append(missing, "occurredAt")
	}
	return missing
}

// VoteAction is the action enum accepted by the vote endpoints.
type VoteAction string

// Vote actions.
const (
	ActionUpvote         VoteAction = "upvote"
	ActionDownvote       VoteAction = "downvote"
	ActionRemoveUpvote   VoteAction = "removeUpvote"
	ActionRemoveDownvote VoteAction = "removeDownvote"
)

// Valid reports whether a is one of the known vote actions.
func (a VoteAction) Valid() bool {
	switch a {
	case ActionUpvote, ActionDownvote, ActionRemoveUpvote, ActionRemoveDownvote:
		return true
	}
	return false
}

// VoteCounts is returned by the vote endpoints after a counter change.
type VoteCounts struct {
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
}
