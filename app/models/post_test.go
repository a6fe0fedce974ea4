package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostValidation(t *testing.T) {
	tests := []struct {
		name    string
		post    *Post
		wantErr bool
	}{
		{
			name: "valid post",
			post: &Post{
				Title:    "Scholarship Season Opens",
				Content:  "Applications for the fall cohort are now open.",
				Category: "Announcements",
				Status:   PostStatusPublished,
			},
			wantErr: false,
		},
		{
			name: "empty status allowed, defaults later",
			post: &Post{
				Title:    "Untitled Draft",
				Content:  "Work in progress.",
				Category: "News",
			},
			wantErr: false,
		},
		{
			name: "missing title",
			post: &Post{
				Content:  "Body without a title.",
				Category: "News",
			},
			wantErr: true,
		},
		{
			name: "title too long",
			post: &Post{
				Title:    strings.Repeat("x", 201),
				Content:  "Body.",
				Category: "News",
			},
			wantErr: true,
		},
		{
			name: "missing content",
			post: &Post{
				Title:    "No Body",
				Category: "News",
			},
			wantErr: true,
		},
		{
			name: "missing category",
			post: &Post{
				Title:   "No Category",
				Content: "Body.",
			},
			wantErr: true,
		},
		{
			name: "excerpt too long",
			post: &Post{
				Title:    "Long Excerpt",
				Content:  "Body.",
				Excerpt:  strings.Repeat("x", 501),
				Category: "News",
			},
			wantErr: true,
		},
		{
			name: "malformed image URL",
			post: &Post{
				Title:    "Bad Image",
				Content:  "Body.",
				Category: "News",
				Image:    "not a url",
			},
			wantErr: true,
		},
		{
			name: "unknown status",
			post: &Post{
				Title:    "Bad Status",
				Content:  "Body.",
				Category: "News",
				Status:   "ARCHIVED",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostValidationErrorEnumeratesFields(t *testing.T) {
	post := &Post{Image: "not a url"}
	err := post.Validate()
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected a *ValidationError, got %T", err)

	fields := make(map[string]bool)
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["Title"])
	assert.True(t, fields["Content"])
	assert.True(t, fields["Category"])
	assert.True(t, fields["Image"])
}

func TestPostBeforeCreate(t *testing.T) {
	post := &Post{
		Title:    "Defaults",
		Content:  "Body.",
		Category: "News",
	}
	post.BeforeCreate()

	assert.Equal(t, PostStatusDraft, post.Status)
	assert.False(t, post.CreatedAt.IsZero())
	assert.False(t, post.UpdatedAt.IsZero())
	assert.False(t, post.PublishedAt.IsZero())

	// Explicit status survives
	published := &Post{Status: PostStatusPublished}
	published.BeforeCreate()
	assert.Equal(t, PostStatusPublished, published.Status)
}
