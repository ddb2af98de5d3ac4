package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User represents a registered account. The hashed password never
// leaves this layer in a response shape.
type User struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name" validate:"required"`
	Email          string    `db:"email" json:"email" validate:"required,email"`
	HashedPassword string    `db:"hashed_password" json:"-" validate:"required"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Post represents a blog post owned by a user, keyed by email.
type Post struct {
	ID        int       `db:"id" json:"id"`
	Title     string    `db:"title" json:"title" validate:"required"`
	Content   string    `db:"content" json:"content" validate:"required"`
	UserEmail string    `db:"user_email" json:"user_email" validate:"required,email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Comment represents a comment attached to a post.
type Comment struct {
	ID        int       `db:"id" json:"id"`
	Content   string    `db:"content" json:"content" validate:"required"`
	UserEmail string    `db:"user_email" json:"user_email" validate:"required,email"`
	PostID    int       `db:"post_id" json:"post_id" validate:"required,gt=0"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
