package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentValidation(t *testing.T) {
	tests := []struct {
		name    string
		comment *Comment
		wantErr bool
	}{
		{
			name: "valid comment",
			comment: &Comment{
				Content:   "Nice post!",
				UserEmail: "reader@example.com",
				PostID:    1,
			},
			wantErr: false,
		},
		{
			name: "missing content",
			comment: &Comment{
				UserEmail: "reader@example.com",
				PostID:    1,
			},
			wantErr: true,
		},
		{
			name: "missing post id",
			comment: &Comment{
				Content:   "Nice post!",
				UserEmail: "reader@example.com",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.comment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommentBeforeCreate(t *testing.T) {
	comment := &Comment{Content: "Nice post!", UserEmail: "reader@example.com", PostID: 1}
	comment.BeforeCreate()
	assert.False(t, comment.CreatedAt.IsZero())
}
