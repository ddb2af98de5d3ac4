package repositories

import (
	"database/sql"
	"errors"

	"microblog/app/models"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// SQLCommentRepository implements CommentRepository over a relational store
type SQLCommentRepository struct {
	db *sqlx.DB
	sb squirrel.StatementBuilderType
}

// NewSQLCommentRepository creates a new SQLCommentRepository
func NewSQLCommentRepository(db *sqlx.DB, driver string) *SQLCommentRepository {
	return &SQLCommentRepository{db: db, sb: statementBuilder(driver)}
}

// Create inserts a new comment in its own transaction
func (r *SQLCommentRepository) Create(comment *models.Comment) error {
	comment.BeforeCreate()

	query, args, err := r.sb.Insert("comments").
		Columns("content", "user_email", "post_id", "created_at").
		Values(comment.Content, comment.UserEmail, comment.PostID, comment.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	if err := tx.QueryRow(query, args...).Scan(&comment.ID); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// GetByID retrieves a comment by ID
func (r *SQLCommentRepository) GetByID(id int) (*models.Comment, error) {
	query, args, err := r.selectComments().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var comment models.Comment
	if err := r.db.Get(&comment, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// List retrieves all comments
func (r *SQLCommentRepository) List() ([]*models.Comment, error) {
	query, args, err := r.selectComments().ToSql()
	if err != nil {
		return nil, err
	}

	comments := []*models.Comment{}
	if err := r.db.Select(&comments, query, args...); err != nil {
		return nil, err
	}
	return comments, nil
}

// ListByPost retrieves exactly the comments whose post_id equals postID
func (r *SQLCommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	query, args, err := r.selectComments().
		Where(squirrel.Eq{"post_id": postID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	comments := []*models.Comment{}
	if err := r.db.Select(&comments, query, args...); err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete removes a comment by ID in its own transaction
func (r *SQLCommentRepository) Delete(id int) error {
	query, args, err := r.sb.Delete("comments").
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

func (r *SQLCommentRepository) selectComments() squirrel.SelectBuilder {
	return r.sb.Select("id", "content", "user_email", "post_id", "created_at").
		From("comments")
}
