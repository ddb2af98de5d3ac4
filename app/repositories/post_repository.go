package repositories

import (
	"database/sql"
	"errors"

	"microblog/app/models"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// SQLPostRepository implements PostRepository over a relational store
type SQLPostRepository struct {
	db *sqlx.DB
	sb squirrel.StatementBuilderType
}

// NewSQLPostRepository creates a new SQLPostRepository
func NewSQLPostRepository(db *sqlx.DB, driver string) *SQLPostRepository {
	return &SQLPostRepository{db: db, sb: statementBuilder(driver)}
}

// Create inserts a new post in its own transaction
func (r *SQLPostRepository) Create(post *models.Post) error {
	post.BeforeCreate()

	query, args, err := r.sb.Insert("posts").
		Columns("title", "content", "user_email", "created_at").
		Values(post.Title, post.Content, post.UserEmail, post.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	if err := tx.QueryRow(query, args...).Scan(&post.ID); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// GetByID retrieves a post by ID
func (r *SQLPostRepository) GetByID(id int) (*models.Post, error) {
	query, args, err := r.sb.Select("id", "title", "content", "user_email", "created_at").
		From("posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var post models.Post
	if err := r.db.Get(&post, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts
func (r *SQLPostRepository) List() ([]*models.Post, error) {
	query, args, err := r.sb.Select("id", "title", "content", "user_email", "created_at").
		From("posts").
		ToSql()
	if err != nil {
		return nil, err
	}

	posts := []*models.Post{}
	if err := r.db.Select(&posts, query, args...); err != nil {
		return nil, err
	}
	return posts, nil
}

// Delete removes a post by ID in its own transaction
func (r *SQLPostRepository) Delete(id int) error {
	query, args, err := r.sb.Delete("posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	result, err := tx.Exec(query, args...)
	if err != nil {
		tx.Rollback()
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		tx.Rollback()
		return ErrNotFound
	}
	return tx.Commit()
}
