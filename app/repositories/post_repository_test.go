package repositories

import (
	"testing"

	"microblog/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepositoryCreate(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "author@example.com")
	repo := NewSQLPostRepository(db, "sqlite3")

	t.Run("assigns id and creation time", func(t *testing.T) {
		post := &models.Post{
			Title:     "First Post",
			Content:   "Hello world",
			UserEmail: "author@example.com",
		}
		require.NoError(t, repo.Create(post))
		assert.Equal(t, 1, post.ID)
		assert.False(t, post.CreatedAt.IsZero())
	})

	t.Run("owner existence is not checked at this layer", func(t *testing.T) {
		post := &models.Post{
			Title:     "Orphan Post",
			Content:   "No such owner",
			UserEmail: "nobody@example.com",
		}
		require.NoError(t, repo.Create(post))
		assert.NotZero(t, post.ID)
	})
}

func TestPostRepositoryGet(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "author@example.com")
	created := createTestPost(t, db, "author@example.com")
	repo := NewSQLPostRepository(db, "sqlite3")

	t.Run("existing post", func(t *testing.T) {
		post, err := repo.GetByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Test Post", post.Title)
		assert.Equal(t, "author@example.com", post.UserEmail)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := repo.GetByID(999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostRepositoryList(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "author@example.com")
	repo := NewSQLPostRepository(db, "sqlite3")

	posts, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, posts)

	createTestPost(t, db, "author@example.com")
	createTestPost(t, db, "author@example.com")

	posts, err = repo.List()
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestPostRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "author@example.com")
	created := createTestPost(t, db, "author@example.com")
	repo := NewSQLPostRepository(db, "sqlite3")

	t.Run("existing post", func(t *testing.T) {
		require.NoError(t, repo.Delete(created.ID))

		_, err := repo.GetByID(created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing post", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(created.ID), ErrNotFound)
	})
}

func TestPostRepositoryDeleteLeavesCommentsInPlace(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "author@example.com")
	post := createTestPost(t, db, "author@example.com")
	repo := NewSQLPostRepository(db, "sqlite3")
	commentRepo := NewSQLCommentRepository(db, "sqlite3")

	comment := &models.Comment{
		Content:   "soon to be orphaned",
		UserEmail: "author@example.com",
		PostID:    post.ID,
	}
	require.NoError(t, commentRepo.Create(comment))

	// Deleting a post with comments succeeds; the comments are not
	// cascaded and remain as orphans.
	require.NoError(t, repo.Delete(post.ID))

	_, err := repo.GetByID(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	orphans, err := commentRepo.ListByPost(post.ID)
	require.NoError(t, err)
	assert.Len(t, orphans, 1)
}
