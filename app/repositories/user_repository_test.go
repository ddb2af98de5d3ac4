package repositories

import (
	"testing"

	"microblog/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCreate(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLUserRepository(db, "sqlite3")

	t.Run("assigns id and creation time", func(t *testing.T) {
		user := &models.User{
			Name:           "Alice",
			Email:          "alice@example.com",
			HashedPassword: "hash",
		}
		require.NoError(t, repo.Create(user))
		assert.Equal(t, 1, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("duplicate email", func(t *testing.T) {
		user := &models.User{
			Name:           "Alice Again",
			Email:          "alice@example.com",
			HashedPassword: "hash",
		}
		err := repo.Create(user)
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestUserRepositoryGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLUserRepository(db, "sqlite3")
	created := createTestUser(t, db, "alice@example.com")

	t.Run("by id", func(t *testing.T) {
		user, err := repo.GetByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "Test User", user.Name)
	})

	t.Run("by email", func(t *testing.T) {
		user, err := repo.GetByEmail("alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.GetByID(999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := repo.GetByEmail("nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserRepositoryList(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLUserRepository(db, "sqlite3")

	users, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, users)

	createTestUser(t, db, "a@example.com")
	createTestUser(t, db, "b@example.com")

	users, err = repo.List()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLUserRepository(db, "sqlite3")
	created := createTestUser(t, db, "alice@example.com")

	t.Run("existing user", func(t *testing.T) {
		require.NoError(t, repo.Delete(created.ID))

		_, err := repo.GetByID(created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing user", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(created.ID), ErrNotFound)
	})
}

func TestUserRepositoryDeleteLeavesPostsInPlace(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLUserRepository(db, "sqlite3")
	user := createTestUser(t, db, "author@example.com")
	post := createTestPost(t, db, "author@example.com")

	// Deleting a user who owns posts succeeds; the posts are not
	// cascaded and keep their owner email.
	require.NoError(t, repo.Delete(user.ID))

	postRepo := NewSQLPostRepository(db, "sqlite3")
	orphan, err := postRepo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "author@example.com", orphan.UserEmail)
}
