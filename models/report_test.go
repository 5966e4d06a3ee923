package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCategoryValid(t *testing.T) {
	for _, c := range []Category{CategoryOperationFailure, CategorySafetyIssue, CategoryFacility, CategoryTransportation, CategoryOther} {
		assert.True(t, c.Valid(), "category %q should be valid", c)
	}
	assert.False(t, Category("").Valid())
	assert.False(t, Category("weather").Valid())
}

func TestVoteActionValid(t *testing.T) {
	for _, a := range []VoteAction{ActionUpvote, ActionDownvote, ActionRemoveUpvote, ActionRemoveDownvote} {
		assert.True(t, a.Valid(), "action %q should be valid", a)
	}
	assert.False(t, VoteAction("").Valid())
	assert.False(t, VoteAction("Upvote").Valid())
}

func TestCreateReportInputMissingFields(t *testing.T) {
	in := CreateReportInput{}
	assert.Equal(t, []string{"title", "category", "content", "occurredAt"}, in.MissingFields())

	in = CreateReportInput{
		Title:      "water station out of service",
		Category:   CategoryFacility,
		Content:    "the station by gate B has been dry since noon",
		OccurredAt: time.Now(),
	}
	assert.Empty(t, in.MissingFields())

	in.Content = ""
	assert.Equal(t, []string{"content"}, in.MissingFields())
}
