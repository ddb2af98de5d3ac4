package repositories

import (
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is the absence sentinel: lookups return it instead of
	// failing, and only the handler boundary turns it into a 404.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when a user insert violates the
	// unique constraint on the email column.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Open connects to the database for the given driver. Supported drivers
// are "sqlite3" and "postgres".
func Open(driver, dsn string) (*sqlx.DB, error) {
	return sqlx.Open(driver, dsn)
}

// statementBuilder returns a squirrel builder using the placeholder
// format the driver expects.
func statementBuilder(driver string) squirrel.StatementBuilderType {
	if driver == "postgres" {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// EnsureSchema creates the users, posts and comments tables if they do
// not exist. Ownership of posts and comments is keyed by the user's
// email. Referential integrity is not enforced: deleting a user or a
// post always succeeds and leaves dependent rows in place.
func EnsureSchema(db *sqlx.DB, driver string) error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	timestampColumn := "DATETIME"
	if driver == "postgres" {
		idColumn = "SERIAL PRIMARY KEY"
		timestampColumn = "TIMESTAMPTZ"
	}

	queries := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
			id %s,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			hashed_password TEXT NOT NULL,
			created_at %s NOT NULL
		)`, idColumn, timestampColumn),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS posts (
			id %s,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			user_email TEXT NOT NULL,
			created_at %s NOT NULL
		)`, idColumn, timestampColumn),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS comments (
			id %s,
			content TEXT NOT NULL,
			user_email TEXT NOT NULL,
			post_id INTEGER NOT NULL,
			created_at %s NOT NULL
		)`, idColumn, timestampColumn),
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// isUniqueViolation reports whether err is a unique-constraint failure
// from either supported driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
