package repositories

import (
	"database/sql"
	"errors"

	"microblog/app/models"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// SQLUserRepository implements UserRepository over a relational store
type SQLUserRepository struct {
	db *sqlx.DB
	sb squirrel.StatementBuilderType
}

// NewSQLUserRepository creates a new SQLUserRepository
func NewSQLUserRepository(db *sqlx.DB, driver string) *SQLUserRepository {
	return &SQLUserRepository{db: db, sb: statementBuilder(driver)}
}

// Create inserts a new user in its own transaction. A duplicate email
// is reported as ErrDuplicateEmail.
func (r *SQLUserRepository) Create(user *models.User) error {
	user.BeforeCreate()

	query, args, err := r.sb.Insert("users").
		Columns("name", "email", "hashed_password", "created_at").
		Values(user.Name, user.Email, user.HashedPassword, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	if err := tx.QueryRow(query, args...).Scan(&user.ID); err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return tx.Commit()
}

// GetByID retrieves a user by ID
func (r *SQLUserRepository) GetByID(id int) (*models.User, error) {
	return r.getOne(squirrel.Eq{"id": id})
}

// GetByEmail retrieves a user by email
func (r *SQLUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.getOne(squirrel.Eq{"email": email})
}

func (r *SQLUserRepository) getOne(where squirrel.Eq) (*models.User, error) {
	query, args, err := r.sb.Select("id", "name", "email", "hashed_password", "created_at").
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := r.db.Get(&user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List retrieves all users
func (r *SQLUserRepository) List() ([]*models.User, error) {
	query, args, err := r.sb.Select("id", "name", "email", "hashed_password", "created_at").
		From("users").
		ToSql()
	if err != nil {
		return nil, err
	}

	users := []*models.User{}
	if err := r.db.Select(&users, query, args...); err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes a user by ID in its own transaction. No cascading
// delete: the user's posts and comments are left in place.
func (r *SQLUserRepository) Delete(id int) error {
	query, args, err := r.sb.Delete("users").
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
